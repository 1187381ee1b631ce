package model

import (
	"time"

	"github.com/google/uuid"
)

// Profile хранит баланс кошелька пользователя.
type Profile struct {
	ID       int64  `json:"id"`
	OwnerID  int64  `json:"owner"`
	Username string `json:"username"`
	Wallet   int64  `json:"my_wallet"`
}

// TransactionKind определяет причину начисления.
type TransactionKind string

const (
	KindManagerBonus TransactionKind = "manager_bonus"
	KindMemberPrize  TransactionKind = "member_prize"
)

// WalletTransaction: запись журнала начислений на кошелёк.
// ProjectID равен 0, если проект уже удалён.
type WalletTransaction struct {
	ID        uuid.UUID       `json:"id"`
	ProfileID int64           `json:"profile"`
	ProjectID int64           `json:"project,omitempty"`
	Amount    int64           `json:"amount"`
	Kind      TransactionKind `json:"kind"`
	CreatedAt *time.Time      `json:"created_at,omitempty"`
}

// CompletionSummary: итог выплат по завершённому проекту.
type CompletionSummary struct {
	ProjectID      int64  `json:"project"`
	TeamMembers    int    `json:"team_members"`
	PrizePerMember int64  `json:"prize_per_member"`
	ManagerBonus   int64  `json:"manager_bonus"`
	Manager        string `json:"manager"`
	Message        string `json:"message"`
}
