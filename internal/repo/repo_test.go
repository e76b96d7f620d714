package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gameshop/internal/pg"
	adminrepo "github.com/GlebRadaev/gameshop/internal/repo/admin-repo"
	ledgerrepo "github.com/GlebRadaev/gameshop/internal/repo/ledger-repo"
	libraryrepo "github.com/GlebRadaev/gameshop/internal/repo/library-repo"
	orderrepo "github.com/GlebRadaev/gameshop/internal/repo/order-repo"
	promorepo "github.com/GlebRadaev/gameshop/internal/repo/promo-repo"
	userrepo "github.com/GlebRadaev/gameshop/internal/repo/user-repo"
	walletrepo "github.com/GlebRadaev/gameshop/internal/repo/wallet-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB, pg.NewMockTXManager(ctrl)), mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &orderrepo.Repository{}, repo.OrderRepo)
	assert.IsType(t, &promorepo.Repository{}, repo.PromoRepo)
	assert.IsType(t, &walletrepo.Repository{}, repo.WalletRepo)
	assert.IsType(t, &ledgerrepo.Repository{}, repo.LedgerRepo)
	assert.IsType(t, &libraryrepo.Repository{}, repo.LibraryRepo)
	assert.IsType(t, &adminrepo.Repository{}, repo.AdminRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
