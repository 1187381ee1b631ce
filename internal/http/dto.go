// Package http реализует HTTP-обработчики и DTO поверх доменных сервисов.
package http

import "crowdfund-service/internal/model"

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type projectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type projectPatchRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type projectListResponse struct {
	Count   int             `json:"count"`
	Results []model.Project `json:"results"`
}

type phaseRequest struct {
	Phase model.ProjectPhase `json:"phase"`
}

type phaseResponse struct {
	ID    int64              `json:"id"`
	Name  string             `json:"name"`
	Phase model.ProjectPhase `json:"phase"`
}

type requirementsRequest struct {
	TeamSize    int      `json:"team_size"`
	Skills      []string `json:"skills"`
	Description string   `json:"description"`
}

type joinRequest struct {
	Role       string `json:"role"`
	Motivation string `json:"motivation"`
}

type teamListResponse struct {
	Project int64                  `json:"project"`
	Members []model.TeamMembership `json:"members"`
}

type profileResponse struct {
	Profile      model.Profile             `json:"profile"`
	Transactions []model.WalletTransaction `json:"transactions"`
}
