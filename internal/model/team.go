package model

import "time"

// TeamMembership связывает проект и участника его команды.
type TeamMembership struct {
	ID         int64      `json:"id"`
	ProjectID  int64      `json:"project"`
	MemberID   int64      `json:"member"`
	Username   string     `json:"username,omitempty"`
	Role       string     `json:"role"`
	Motivation string     `json:"motivation"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
}
