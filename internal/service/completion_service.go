package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"crowdfund-service/internal/lock"
	"crowdfund-service/internal/model"
	"crowdfund-service/internal/repository"
)

const payoutFailedMessage = "We couldn't finish project at this time. Try again later"

// CompletionService начисляет награды команде и автору при завершении проекта.
type CompletionService struct {
	projects  ProjectRepository
	team      TeamRepository
	profiles  ProfileRepository
	txManager TransactionManager
	locker    CompletionLocker
	prizePool int64
	log       *slog.Logger
}

// NewCompletionService создаёт сервис выплат. locker может быть lock.NopLocker, если Redis не настроен.
func NewCompletionService(
	projects ProjectRepository,
	team TeamRepository,
	profiles ProfileRepository,
	txManager TransactionManager,
	locker CompletionLocker,
	prizePool int64,
	log *slog.Logger,
) *CompletionService {
	return &CompletionService{
		projects:  projects,
		team:      team,
		profiles:  profiles,
		txManager: txManager,
		locker:    locker,
		prizePool: prizePool,
		log:       log,
	}
}

// CompleteProject выплачивает автору проекта ManagerBonus, а каждому участнику команды
// награду из ProjectPrize. Все начисления выполняются в одной транзакции: либо проходят все,
// либо ни одно. Проект при этом не удаляется, повторный вызов выплатит награды ещё раз.
func (s *CompletionService) CompleteProject(ctx context.Context, projectID int64) (model.CompletionSummary, error) {
	release, err := s.locker.Acquire(ctx, "project:"+strconv.FormatInt(projectID, 10)+":complete")
	if err != nil {
		if errors.Is(err, lock.ErrLocked) {
			completionsTotal.WithLabelValues("locked").Inc()
			return model.CompletionSummary{}, ErrDomain("COMPLETION_IN_PROGRESS", "project completion is already in progress")
		}
		completionsTotal.WithLabelValues("failed").Inc()
		return model.CompletionSummary{}, payoutFailed(err)
	}
	defer release()

	var (
		summary model.CompletionSummary
		ledger  []model.WalletTransaction
	)
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var errTx error
		summary, ledger, errTx = s.payout(ctx, projectID)
		return errTx
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProjectNotFound):
			completionsTotal.WithLabelValues("not_found").Inc()
			return model.CompletionSummary{}, ErrNotFound("project not found")
		case errors.Is(err, repository.ErrProfileNotFound):
			completionsTotal.WithLabelValues("not_found").Inc()
			return model.CompletionSummary{}, ErrNotFound("manager profile not found")
		default:
			completionsTotal.WithLabelValues("failed").Inc()
			s.log.Error("project payout failed", slog.Int64("project_id", projectID), slog.Any("err", err))
			return model.CompletionSummary{}, payoutFailed(err)
		}
	}

	completionsTotal.WithLabelValues("success").Inc()
	for kind, amount := range ledgerTotals(ledger) {
		coinsPaidTotal.WithLabelValues(string(kind)).Add(float64(amount))
	}

	s.log.Info("project completed",
		slog.Int64("project_id", projectID),
		slog.Int("team_members", summary.TeamMembers),
		slog.Int64("prize_per_member", summary.PrizePerMember),
	)
	return summary, nil
}

// payout выполняет начисления; вызывается только внутри транзакции.
// Вместе с итогом возвращает записанные записи журнала.
func (s *CompletionService) payout(ctx context.Context, projectID int64) (model.CompletionSummary, []model.WalletTransaction, error) {
	project, err := s.projects.LockByID(ctx, projectID)
	if err != nil {
		return model.CompletionSummary{}, nil, err
	}

	members, err := s.team.ListMembers(ctx, projectID)
	if err != nil {
		return model.CompletionSummary{}, nil, fmt.Errorf("list team: %w", err)
	}

	manager, err := s.profiles.GetByOwner(ctx, project.ProposedBy)
	if err != nil {
		return model.CompletionSummary{}, nil, err
	}

	teamMembers, prize := ProjectPrize(project, members, s.prizePool)

	manager, err = s.profiles.CreditProfile(ctx, manager.ID, ManagerBonus)
	if err != nil {
		return model.CompletionSummary{}, nil, fmt.Errorf("credit manager: %w", err)
	}
	ledger := []model.WalletTransaction{{
		ID:        uuid.New(),
		ProfileID: manager.ID,
		ProjectID: projectID,
		Amount:    ManagerBonus,
		Kind:      model.KindManagerBonus,
	}}

	for _, m := range members {
		credited, err := s.profiles.CreditOwner(ctx, m.MemberID, prize)
		if err != nil {
			return model.CompletionSummary{}, nil, fmt.Errorf("credit member %d: %w", m.MemberID, err)
		}
		for _, p := range credited {
			ledger = append(ledger, model.WalletTransaction{
				ID:        uuid.New(),
				ProfileID: p.ID,
				ProjectID: projectID,
				Amount:    prize,
				Kind:      model.KindMemberPrize,
			})
		}
	}

	if err := s.profiles.RecordTransactions(ctx, ledger); err != nil {
		return model.CompletionSummary{}, nil, fmt.Errorf("record ledger: %w", err)
	}

	return model.CompletionSummary{
		ProjectID:      projectID,
		TeamMembers:    teamMembers,
		PrizePerMember: prize,
		ManagerBonus:   ManagerBonus,
		Manager:        manager.Username,
		Message: fmt.Sprintf("Project was successfully completed. Each of %d team members received %d LeanCoins. "+
			"Additionally %d LeanCoins has been transferred to %s for successful project completion",
			teamMembers, prize, ManagerBonus, manager.Username),
	}, ledger, nil
}

// ledgerTotals суммирует фактически начисленные монеты по видам начислений.
func ledgerTotals(ledger []model.WalletTransaction) map[model.TransactionKind]int64 {
	totals := make(map[model.TransactionKind]int64, 2)
	for _, t := range ledger {
		totals[t.Kind] += t.Amount
	}
	return totals
}

func payoutFailed(err error) *AppError {
	return &AppError{
		Code:    "PAYOUT_FAILED",
		Message: payoutFailedMessage,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}
