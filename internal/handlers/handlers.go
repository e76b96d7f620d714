package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/gameshop/docs"
	adminhandlers "github.com/GlebRadaev/gameshop/internal/handlers/admin"
	libraryhandlers "github.com/GlebRadaev/gameshop/internal/handlers/library"
	ordershandlers "github.com/GlebRadaev/gameshop/internal/handlers/orders"
	promohandlers "github.com/GlebRadaev/gameshop/internal/handlers/promo"
	wallethandlers "github.com/GlebRadaev/gameshop/internal/handlers/wallet"
	"github.com/GlebRadaev/gameshop/internal/service"
	"github.com/GlebRadaev/gameshop/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type OrderHandler interface {
	CreateDraft(w http.ResponseWriter, r *http.Request)
	ListOrders(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
	DeleteDraft(w http.ResponseWriter, r *http.Request)
	AddItem(w http.ResponseWriter, r *http.Request)
	RemoveItem(w http.ResponseWriter, r *http.Request)
	ApplyPromotion(w http.ResponseWriter, r *http.Request)
	ClearPromotion(w http.ResponseWriter, r *http.Request)
	Recalculate(w http.ResponseWriter, r *http.Request)
	Pay(w http.ResponseWriter, r *http.Request)
	BuyNow(w http.ResponseWriter, r *http.Request)
	TopSellers(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	TopUp(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	Transfer(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type PromoHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Remove(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
	ListActive(w http.ResponseWriter, r *http.Request)
	ValidateCode(w http.ResponseWriter, r *http.Request)
	Redemptions(w http.ResponseWriter, r *http.Request)
	MyRedemptions(w http.ResponseWriter, r *http.Request)
}

type LibraryHandler interface {
	GetLibrary(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Reset(w http.ResponseWriter, r *http.Request)
}

type Metrics interface {
	Middleware(next http.Handler) http.Handler
	Handler() http.Handler
}

type Handlers struct {
	OrderHandler   OrderHandler
	WalletHandler  WalletHandler
	PromoHandler   PromoHandler
	LibraryHandler LibraryHandler
	AdminHandler   AdminHandler

	jwt     auth.JWTServiceInterface
	metrics Metrics
}

func New(s *service.Services, jwt auth.JWTServiceInterface, metrics Metrics) *Handlers {
	return &Handlers{
		OrderHandler:   ordershandlers.New(s.CartService, s.PaymentService),
		WalletHandler:  wallethandlers.New(s.WalletService),
		PromoHandler:   promohandlers.New(s.PromoService),
		LibraryHandler: libraryhandlers.New(s.LibraryService),
		AdminHandler:   adminhandlers.New(s.AdminService),
		jwt:            jwt,
		metrics:        metrics,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		h.metrics.Middleware,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	r.Get("/api/promo/active", h.PromoHandler.ListActive)
	r.Get("/api/top-sellers", h.OrderHandler.TopSellers)

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(h.jwt))

		r.Route("/api/orders", func(r chi.Router) {
			r.Post("/", h.OrderHandler.CreateDraft)
			r.Get("/", h.OrderHandler.ListOrders)
			r.Post("/buy", h.OrderHandler.BuyNow)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.OrderHandler.GetOrder)
				r.Delete("/", h.OrderHandler.DeleteDraft)
				r.Post("/items", h.OrderHandler.AddItem)
				r.Delete("/items/{gameID}", h.OrderHandler.RemoveItem)
				r.Post("/promo", h.OrderHandler.ApplyPromotion)
				r.Delete("/promo", h.OrderHandler.ClearPromotion)
				r.Post("/recalculate", h.OrderHandler.Recalculate)
				r.Post("/pay", h.OrderHandler.Pay)
			})
		})

		r.Route("/api/wallet", func(r chi.Router) {
			r.Get("/balance", h.WalletHandler.GetBalance)
			r.Get("/balance/{userID}", h.WalletHandler.GetBalance)
			r.Get("/transactions", h.WalletHandler.GetHistory)
			r.Get("/transactions/{userID}", h.WalletHandler.GetHistory)
			r.Post("/topup", h.WalletHandler.TopUp)
			r.Post("/withdraw", h.WalletHandler.Withdraw)
			r.Post("/transfer", h.WalletHandler.Transfer)
		})

		r.Route("/api/promo", func(r chi.Router) {
			r.Post("/validate", h.PromoHandler.ValidateCode)
			r.Get("/me/redemptions", h.PromoHandler.MyRedemptions)

			r.Group(func(r chi.Router) {
				r.Use(auth.AdminOnly)
				r.Post("/", h.PromoHandler.Create)
				r.Get("/", h.PromoHandler.List)
				r.Get("/{id}", h.PromoHandler.Get)
				r.Patch("/{id}", h.PromoHandler.Update)
				r.Delete("/{id}", h.PromoHandler.Remove)
				r.Post("/{id}/deactivate", h.PromoHandler.Deactivate)
				r.Get("/{id}/redemptions", h.PromoHandler.Redemptions)
			})
		})

		r.Get("/api/library", h.LibraryHandler.GetLibrary)

		r.With(auth.AdminOnly).Delete("/api/admin/reset", h.AdminHandler.Reset)
	})

	return r
}
