package adminservice

import (
	"context"

	"go.uber.org/zap"
)

//go:generate mockgen -source=adminservice.go -destination=mock_adminservice.go -package=adminservice

type Repo interface {
	Reset(ctx context.Context) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

// Reset wipes all purchase history: orders, ledger, library and redemptions.
// Accounts and promotion definitions survive with zeroed balances and usage.
func (s *Service) Reset(ctx context.Context) error {
	if err := s.repo.Reset(ctx); err != nil {
		zap.L().Error("reset failed", zap.Error(err))
		return err
	}
	zap.L().Warn("store reset")
	return nil
}
