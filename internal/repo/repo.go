package repo

import (
	"github.com/GlebRadaev/gameshop/internal/pg"
	adminrepo "github.com/GlebRadaev/gameshop/internal/repo/admin-repo"
	ledgerrepo "github.com/GlebRadaev/gameshop/internal/repo/ledger-repo"
	libraryrepo "github.com/GlebRadaev/gameshop/internal/repo/library-repo"
	orderrepo "github.com/GlebRadaev/gameshop/internal/repo/order-repo"
	promorepo "github.com/GlebRadaev/gameshop/internal/repo/promo-repo"
	userrepo "github.com/GlebRadaev/gameshop/internal/repo/user-repo"
	walletrepo "github.com/GlebRadaev/gameshop/internal/repo/wallet-repo"
	"github.com/GlebRadaev/gameshop/internal/service/adminservice"
	"github.com/GlebRadaev/gameshop/internal/service/cartservice"
	"github.com/GlebRadaev/gameshop/internal/service/libraryservice"
	"github.com/GlebRadaev/gameshop/internal/service/paymentservice"
	"github.com/GlebRadaev/gameshop/internal/service/promoservice"
	"github.com/GlebRadaev/gameshop/internal/service/walletservice"
)

// OrderRepo is what both cart editing and settlement need from orders.
type OrderRepo interface {
	cartservice.OrderRepo
	paymentservice.OrderRepo
}

type PromoRepo interface {
	cartservice.PromoRepo
	paymentservice.PromoRepo
	promoservice.Repo
}

type Repositories struct {
	UserRepo    walletservice.UserRepo
	OrderRepo   OrderRepo
	PromoRepo   PromoRepo
	WalletRepo  walletservice.WalletRepo
	LedgerRepo  walletservice.LedgerRepo
	LibraryRepo libraryservice.Repo
	AdminRepo   adminservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:    userrepo.New(conn),
		OrderRepo:   orderrepo.New(conn, txManager),
		PromoRepo:   promorepo.New(conn),
		WalletRepo:  walletrepo.New(conn),
		LedgerRepo:  ledgerrepo.New(conn),
		LibraryRepo: libraryrepo.New(conn),
		AdminRepo:   adminrepo.New(conn, txManager),
	}
}
