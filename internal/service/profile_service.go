package service

import (
	"context"
	"errors"

	"crowdfund-service/internal/model"
	"crowdfund-service/internal/repository"
)

const recentTransactionsLimit = 20

// ProfileService отдаёт баланс кошелька и историю начислений.
type ProfileService struct {
	profiles ProfileRepository
}

// NewProfileService создаёт новый сервис профилей.
func NewProfileService(profiles ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// GetWallet возвращает профиль пользователя и последние начисления на него.
func (s *ProfileService) GetWallet(ctx context.Context, userID int64) (model.Profile, []model.WalletTransaction, error) {
	p, err := s.profiles.GetByOwner(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return model.Profile{}, nil, ErrNotFound("profile not found")
		}
		return model.Profile{}, nil, ErrInternal("failed to get profile", err)
	}

	txs, err := s.profiles.ListTransactions(ctx, p.ID, recentTransactionsLimit)
	if err != nil {
		return model.Profile{}, nil, ErrInternal("failed to list wallet transactions", err)
	}
	return p, txs, nil
}
