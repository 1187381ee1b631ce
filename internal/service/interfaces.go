// Package service содержит бизнес-логику проектов, команд и выплат по завершении проекта.
package service

import (
	"context"

	"crowdfund-service/internal/model"
)

// TransactionManager описывает интерфейс для управления транзакциями (чтобы можно было мокать).
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ProjectRepository описывает контракт репозитория проектов и требований к команде.
type ProjectRepository interface {
	Create(ctx context.Context, p model.Project) (model.Project, error)
	GetByID(ctx context.Context, id int64) (model.Project, error)
	LockByID(ctx context.Context, id int64) (model.Project, error)
	List(ctx context.Context, f model.ProjectFilter) ([]model.Project, error)
	Update(ctx context.Context, p model.Project) (model.Project, error)
	UpdatePhase(ctx context.Context, id int64, phase model.ProjectPhase) (model.Project, error)
	Delete(ctx context.Context, id int64) error
	CreateRequirements(ctx context.Context, req model.TeamRequirements) (model.TeamRequirements, error)
	GetRequirements(ctx context.Context, projectID int64) (model.TeamRequirements, error)
	UpdateRequirements(ctx context.Context, req model.TeamRequirements) (model.TeamRequirements, error)
}

// TeamRepository описывает контракт хранилища участников команд.
type TeamRepository interface {
	AddMember(ctx context.Context, m model.TeamMembership) (model.TeamMembership, error)
	GetMember(ctx context.Context, projectID, memberID int64) (model.TeamMembership, error)
	RemoveMember(ctx context.Context, projectID, memberID int64) error
	ListMembers(ctx context.Context, projectID int64) ([]model.TeamMembership, error)
}

// ProfileRepository описывает контракт хранилища профилей и журнала начислений.
type ProfileRepository interface {
	GetByOwner(ctx context.Context, ownerID int64) (model.Profile, error)
	CreditProfile(ctx context.Context, profileID, amount int64) (model.Profile, error)
	CreditOwner(ctx context.Context, ownerID, amount int64) ([]model.Profile, error)
	RecordTransactions(ctx context.Context, txs []model.WalletTransaction) error
	ListTransactions(ctx context.Context, profileID int64, limit int) ([]model.WalletTransaction, error)
}

// CompletionLocker не даёт запустить две выплаты по одному проекту одновременно.
type CompletionLocker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}
