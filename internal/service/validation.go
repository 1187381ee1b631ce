package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"crowdfund-service/internal/model"
)

const (
	maxNameLen        = 255
	maxDescriptionLen = 5000
	maxRoleLen        = 64
	maxSkillLen       = 64
	maxSkills         = 32
)

// fieldErrors накапливает ошибки валидации по полям.
type fieldErrors map[string][]string

func (fe fieldErrors) add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// err возвращает nil, если ошибок нет.
func (fe fieldErrors) err() error {
	if len(fe) == 0 {
		return nil
	}
	return ErrValidation(fe)
}

func validateName(fe fieldErrors, name string) {
	switch {
	case strings.TrimSpace(name) == "":
		fe.add("name", "This field may not be blank.")
	case utf8.RuneCountInString(name) > maxNameLen:
		fe.add("name", fmt.Sprintf("Ensure this field has no more than %d characters.", maxNameLen))
	}
}

func validateText(fe fieldErrors, field, value string, limit int) {
	if utf8.RuneCountInString(value) > limit {
		fe.add(field, fmt.Sprintf("Ensure this field has no more than %d characters.", limit))
	}
}

// ValidateProject проверяет поля проекта для создания и полного обновления.
func ValidateProject(name, description string) error {
	fe := fieldErrors{}
	validateName(fe, name)
	validateText(fe, "description", description, maxDescriptionLen)
	return fe.err()
}

// ValidateProjectPatch проверяет только переданные поля.
func ValidateProjectPatch(p model.ProjectPatch) error {
	fe := fieldErrors{}
	if p.Name != nil {
		validateName(fe, *p.Name)
	}
	if p.Description != nil {
		validateText(fe, "description", *p.Description, maxDescriptionLen)
	}
	return fe.err()
}

// ValidatePhaseTransition разрешает переход только на известный этап не раньше текущего.
func ValidatePhaseTransition(current, next model.ProjectPhase) error {
	fe := fieldErrors{}
	switch {
	case next == "":
		fe.add("phase", "This field is required.")
	case !next.Valid():
		fe.add("phase", fmt.Sprintf("%q is not a valid choice.", string(next)))
	case next.Before(current):
		fe.add("phase", fmt.Sprintf("Cannot move project back from %q to %q.", current, next))
	}
	return fe.err()
}

// ValidateRequirements проверяет требования к команде.
func ValidateRequirements(req model.TeamRequirements) error {
	fe := fieldErrors{}
	if req.TeamSize < 1 {
		fe.add("team_size", "Ensure this value is greater than or equal to 1.")
	}
	if len(req.Skills) > maxSkills {
		fe.add("skills", fmt.Sprintf("Ensure this field has no more than %d elements.", maxSkills))
	}
	for i, s := range req.Skills {
		if strings.TrimSpace(s) == "" {
			fe.add(fmt.Sprintf("skills[%d]", i), "This field may not be blank.")
		} else if utf8.RuneCountInString(s) > maxSkillLen {
			fe.add(fmt.Sprintf("skills[%d]", i), fmt.Sprintf("Ensure this field has no more than %d characters.", maxSkillLen))
		}
	}
	validateText(fe, "description", req.Description, maxDescriptionLen)
	return fe.err()
}

// ValidateMembership проверяет заявку на вступление в команду.
func ValidateMembership(role, motivation string) error {
	fe := fieldErrors{}
	validateText(fe, "role", role, maxRoleLen)
	validateText(fe, "motivation", motivation, maxDescriptionLen)
	return fe.err()
}
