package walletservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gameshop/internal/domain"
	"github.com/GlebRadaev/gameshop/internal/pg"
	"github.com/GlebRadaev/gameshop/internal/pricing"
)

//go:generate mockgen -source=walletservice.go -destination=mock_walletservice.go -package=walletservice

type WalletRepo interface {
	Get(ctx context.Context, userID int) (*domain.Wallet, error)
	GetForUpdate(ctx context.Context, userID int) (*domain.Wallet, error)
	Ensure(ctx context.Context, userID int) error
	Add(ctx context.Context, userID int, delta decimal.Decimal) (decimal.Decimal, error)
}

type LedgerRepo interface {
	Create(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
	History(ctx context.Context, userID int, f domain.LedgerFilter) ([]domain.LedgerEntry, int, error)
}

type UserRepo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	FindByID(ctx context.Context, userID int) (*domain.User, error)
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type Service struct {
	txManager pg.TXManager
	wallets   WalletRepo
	ledger    LedgerRepo
	users     UserRepo
}

func New(txManager pg.TXManager, wallets WalletRepo, ledger LedgerRepo, users UserRepo) *Service {
	return &Service{
		txManager: txManager,
		wallets:   wallets,
		ledger:    ledger,
		users:     users,
	}
}

// normalizeAmount rejects amounts that are not positive or carry more than
// two decimals.
func normalizeAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() || !amount.Equal(pricing.Round2(amount)) {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	return pricing.Round2(amount), nil
}

// Balance returns the user's wallet. A known user without a wallet row has a
// zero balance.
func (s *Service) Balance(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.wallets.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet != nil {
		return wallet, nil
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrAccountNotFound
	}
	return &domain.Wallet{UserID: userID, Balance: decimal.Zero}, nil
}

// Lock takes the wallet row lock inside the caller's transaction. A known
// user without a wallet gets an empty one first, so paying with no funds
// fails on the balance rather than on the account.
func (s *Service) Lock(ctx context.Context, userID int) (*domain.Wallet, error) {
	if err := s.wallets.Ensure(ctx, userID); err != nil {
		return nil, err
	}
	wallet, err := s.wallets.GetForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, domain.ErrAccountNotFound
	}
	return wallet, nil
}

func (s *Service) Credit(ctx context.Context, userID int, amount decimal.Decimal, note string) (*domain.Wallet, error) {
	amount, err := normalizeAmount(amount)
	if err != nil {
		return nil, err
	}

	var wallet *domain.Wallet
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.Lock(ctx, userID); err != nil {
			return err
		}
		balance, err := s.apply(ctx, userID, nil, domain.EntryCredit, amount, note, nil)
		if err != nil {
			return err
		}
		wallet = &domain.Wallet{UserID: userID, Balance: balance}
		return nil
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("wallet credited", zap.Int("user_id", userID), zap.String("amount", amount.StringFixed(2)))
	return wallet, nil
}

func (s *Service) Debit(ctx context.Context, userID int, amount decimal.Decimal, note string) (*domain.Wallet, error) {
	amount, err := normalizeAmount(amount)
	if err != nil {
		return nil, err
	}

	var wallet *domain.Wallet
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.debit(ctx, userID, nil, amount, note)
		if err != nil {
			return err
		}
		wallet = &domain.Wallet{UserID: userID, Balance: balance}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return wallet, nil
}

// DebitForOrder charges an order inside the caller's transaction. The
// wallet row is expected to be locked already; locking again is a no-op.
func (s *Service) DebitForOrder(ctx context.Context, userID, orderID int, amount decimal.Decimal) (decimal.Decimal, error) {
	amount, err := normalizeAmount(amount)
	if err != nil {
		return decimal.Zero, err
	}
	var balance decimal.Decimal
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		balance, err = s.debit(ctx, userID, &orderID, amount, fmt.Sprintf("order #%d", orderID))
		return err
	})
	return balance, err
}

func (s *Service) debit(ctx context.Context, userID int, orderID *int, amount decimal.Decimal, note string) (decimal.Decimal, error) {
	wallet, err := s.Lock(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	if wallet.Balance.LessThan(amount) {
		return decimal.Zero, domain.ErrInsufficientFunds
	}
	return s.apply(ctx, userID, orderID, domain.EntryDebit, amount, note, nil)
}

// apply moves the balance and appends the matching ledger row. Callers run
// it inside a transaction holding the wallet lock.
func (s *Service) apply(ctx context.Context, userID int, orderID *int, kind string, amount decimal.Decimal, note string, ref *uuid.UUID) (decimal.Decimal, error) {
	delta := amount
	if kind == domain.EntryDebit {
		delta = amount.Neg()
	}
	balance, err := s.wallets.Add(ctx, userID, delta)
	if err != nil {
		return decimal.Zero, err
	}
	entry := &domain.LedgerEntry{
		UserID:      userID,
		OrderID:     orderID,
		Type:        kind,
		Amount:      amount,
		Note:        note,
		TransferRef: ref,
	}
	if _, err := s.ledger.Create(ctx, entry); err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

// Transfer moves amount from one wallet to the wallet of toLogin. Both rows
// are locked in ascending user id order.
func (s *Service) Transfer(ctx context.Context, fromID int, toLogin string, amount decimal.Decimal, note string) (*domain.Transfer, error) {
	amount, err := normalizeAmount(amount)
	if err != nil {
		return nil, err
	}
	to, err := s.users.FindByLogin(ctx, toLogin)
	if err != nil {
		return nil, err
	}
	if to == nil {
		return nil, domain.ErrAccountNotFound
	}
	if to.ID == fromID {
		return nil, domain.ErrSelfTransfer
	}

	ref := uuid.New()
	res := &domain.Transfer{Ref: ref}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		first, second := fromID, to.ID
		if second < first {
			first, second = second, first
		}
		locked := make(map[int]*domain.Wallet, 2)
		for _, id := range []int{first, second} {
			w, err := s.Lock(ctx, id)
			if err != nil {
				return err
			}
			locked[id] = w
		}
		if locked[fromID].Balance.LessThan(amount) {
			return domain.ErrInsufficientFunds
		}

		if res.FromBalance, err = s.apply(ctx, fromID, nil, domain.EntryDebit, amount, note, &ref); err != nil {
			return err
		}
		if res.ToBalance, err = s.apply(ctx, to.ID, nil, domain.EntryCredit, amount, note, &ref); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("transfer completed",
		zap.Int("from", fromID), zap.Int("to", to.ID), zap.String("ref", ref.String()))
	return res, nil
}

func (s *Service) History(ctx context.Context, userID int, f domain.LedgerFilter) ([]domain.LedgerEntry, int, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = defaultPageSize
	}
	if f.PageSize > maxPageSize {
		f.PageSize = maxPageSize
	}
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		return nil, 0, &domain.Error{Kind: domain.ErrValidation, Msg: "from must not be after to"}
	}
	if _, err := s.Balance(ctx, userID); err != nil {
		return nil, 0, err
	}
	entries, total, err := s.ledger.History(ctx, userID, f)
	if err != nil {
		zap.L().Error("failed to fetch ledger history", zap.Error(err))
		return nil, 0, err
	}
	return entries, total, nil
}
