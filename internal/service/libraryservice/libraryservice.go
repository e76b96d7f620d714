package libraryservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gameshop/internal/domain"
)

//go:generate mockgen -source=libraryservice.go -destination=mock_libraryservice.go -package=libraryservice

type Repo interface {
	Owned(ctx context.Context, userID int, gameIDs []int) ([]domain.LibraryEntry, error)
	List(ctx context.Context, userID int) ([]domain.LibraryEntry, error)
	Grant(ctx context.Context, userID, orderID int, items []domain.CartItem) (int, error)
}

// Service guards against buying a game twice and records ownership.
type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

// Check rejects the whole batch when the user owns any of the games, naming
// every offending one.
func (s *Service) Check(ctx context.Context, userID int, games []domain.Game) error {
	if len(games) == 0 {
		return nil
	}
	ids := make([]int, len(games))
	byID := make(map[int]domain.Game, len(games))
	for i, g := range games {
		ids[i] = g.ID
		byID[g.ID] = g
	}

	owned, err := s.repo.Owned(ctx, userID, ids)
	if err != nil {
		return err
	}
	if len(owned) == 0 {
		return nil
	}

	offending := make([]domain.Game, 0, len(owned))
	for _, e := range owned {
		g, ok := byID[e.GameID]
		if !ok || g.Name == "" {
			g = domain.Game{ID: e.GameID, Name: e.Name}
		}
		offending = append(offending, g)
	}
	return &domain.AlreadyOwnedError{Games: offending}
}

func (s *Service) Grant(ctx context.Context, userID, orderID int, items []domain.CartItem) error {
	granted, err := s.repo.Grant(ctx, userID, orderID, items)
	if err != nil {
		return err
	}
	if granted < len(items) {
		zap.L().Warn("some games were already owned at grant time",
			zap.Int("user_id", userID), zap.Int("order_id", orderID),
			zap.Int("granted", granted), zap.Int("items", len(items)))
	}
	return nil
}

func (s *Service) List(ctx context.Context, userID int) ([]domain.LibraryEntry, error) {
	entries, err := s.repo.List(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list library", zap.Error(err))
		return nil, err
	}
	return entries, nil
}
