// Package model содержит доменные структуры проектов, команд и кошельков участников.
package model

import "time"

// ProjectPhase представляет этап жизненного цикла проекта.
type ProjectPhase string

const (
	PhaseProposal  ProjectPhase = "proposal"
	PhasePlanning  ProjectPhase = "planning"
	PhaseExecution ProjectPhase = "execution"
	PhaseReview    ProjectPhase = "review"
	PhaseCompleted ProjectPhase = "completed"
)

// phaseOrder задаёт порядок этапов: переход возможен только вперёд.
var phaseOrder = map[ProjectPhase]int{
	PhaseProposal:  0,
	PhasePlanning:  1,
	PhaseExecution: 2,
	PhaseReview:    3,
	PhaseCompleted: 4,
}

// Valid сообщает, известен ли этап.
func (p ProjectPhase) Valid() bool {
	_, ok := phaseOrder[p]
	return ok
}

// Before сообщает, что этап p идёт раньше other.
func (p ProjectPhase) Before(other ProjectPhase) bool {
	return phaseOrder[p] < phaseOrder[other]
}

// Project описывает проект, предложенный пользователем платформы.
type Project struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	ProposedBy  int64        `json:"proposed_by"`
	Phase       ProjectPhase `json:"phase"`
	CreatedAt   *time.Time   `json:"created_at,omitempty"`
	UpdatedAt   *time.Time   `json:"updated_at,omitempty"`
}

// ProjectPatch содержит поля частичного обновления, nil означает "не менять".
type ProjectPatch struct {
	Name        *string
	Description *string
}

// ProjectFilter задаёт поиск и сортировку списка проектов.
type ProjectFilter struct {
	Search   string
	Ordering string
}

// TeamRequirements описывает требования к команде проекта.
type TeamRequirements struct {
	ProjectID   int64    `json:"project"`
	TeamSize    int      `json:"team_size"`
	Skills      []string `json:"skills"`
	Description string   `json:"description"`
}
