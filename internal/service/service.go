package service

import (
	"github.com/GlebRadaev/gameshop/internal/handlers/admin"
	"github.com/GlebRadaev/gameshop/internal/handlers/library"
	"github.com/GlebRadaev/gameshop/internal/handlers/orders"
	"github.com/GlebRadaev/gameshop/internal/handlers/promo"
	"github.com/GlebRadaev/gameshop/internal/handlers/wallet"
	"github.com/GlebRadaev/gameshop/internal/pg"
	"github.com/GlebRadaev/gameshop/internal/repo"
	"github.com/GlebRadaev/gameshop/internal/service/adminservice"
	"github.com/GlebRadaev/gameshop/internal/service/cartservice"
	"github.com/GlebRadaev/gameshop/internal/service/libraryservice"
	"github.com/GlebRadaev/gameshop/internal/service/paymentservice"
	"github.com/GlebRadaev/gameshop/internal/service/promoservice"
	"github.com/GlebRadaev/gameshop/internal/service/walletservice"
	"github.com/GlebRadaev/gameshop/internal/sweeper"
)

type Catalog interface {
	cartservice.Catalog
	paymentservice.Catalog
}

type PromoService interface {
	promo.Service
	sweeper.Expirer
}

type Services struct {
	CartService    orders.CartService
	PaymentService orders.PaymentService
	WalletService  wallet.Service
	PromoService   PromoService
	LibraryService library.Service
	AdminService   admin.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, catalog Catalog, recorder paymentservice.Recorder) *Services {
	libraryService := libraryservice.New(repo.LibraryRepo)
	walletService := walletservice.New(txManager, repo.WalletRepo, repo.LedgerRepo, repo.UserRepo)

	return &Services{
		CartService:    cartservice.New(txManager, repo.OrderRepo, repo.PromoRepo, catalog, libraryService),
		PaymentService: paymentservice.New(txManager, repo.OrderRepo, repo.PromoRepo, walletService, libraryService, catalog, recorder),
		WalletService:  walletService,
		PromoService:   promoservice.New(txManager, repo.PromoRepo),
		LibraryService: libraryService,
		AdminService:   adminservice.New(repo.AdminRepo),
	}
}
