package service_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund-service/internal/model"
	"crowdfund-service/internal/service"
)

func fieldsOf(t *testing.T, err error) map[string][]string {
	t.Helper()
	var appErr *service.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	return appErr.Fields
}

func TestValidatePhaseTransition(t *testing.T) {
	tests := []struct {
		name    string
		current model.ProjectPhase
		next    model.ProjectPhase
		wantErr bool
	}{
		{"forward one step", model.PhaseProposal, model.PhasePlanning, false},
		{"skip ahead", model.PhaseProposal, model.PhaseReview, false},
		{"same phase", model.PhaseExecution, model.PhaseExecution, false},
		{"backwards", model.PhaseReview, model.PhasePlanning, true},
		{"unknown", model.PhaseProposal, model.ProjectPhase("archived"), true},
		{"empty", model.PhaseProposal, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePhaseTransition(tt.current, tt.next)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Contains(t, fieldsOf(t, err), "phase")
		})
	}
}

func TestValidateRequirements(t *testing.T) {
	err := service.ValidateRequirements(model.TeamRequirements{
		TeamSize: 0,
		Skills:   []string{"go", " ", strings.Repeat("x", 65)},
	})
	fields := fieldsOf(t, err)
	assert.Contains(t, fields, "team_size")
	assert.Contains(t, fields, "skills[1]")
	assert.Contains(t, fields, "skills[2]")
	assert.NotContains(t, fields, "skills[0]")

	assert.NoError(t, service.ValidateRequirements(model.TeamRequirements{TeamSize: 3, Skills: []string{"go"}}))
}

func TestValidateProject(t *testing.T) {
	assert.NoError(t, service.ValidateProject("River cleanup", ""))
	assert.Contains(t, fieldsOf(t, service.ValidateProject("   ", "")), "name")
	assert.Contains(t, fieldsOf(t, service.ValidateProject(strings.Repeat("n", 256), "")), "name")

	blank := ""
	assert.Contains(t, fieldsOf(t, service.ValidateProjectPatch(model.ProjectPatch{Name: &blank})), "name")
	assert.NoError(t, service.ValidateProjectPatch(model.ProjectPatch{}))
}
