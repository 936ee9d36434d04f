package http

import (
	"net/http"

	_ "github.com/DRSN-tech/storefront/docs" // описание API для swagger
	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Usecases: зависимости HTTP-слоя.
type Usecases struct {
	Catalog  usecase.CatalogUC
	Hours    usecase.HoursUC
	Cart     usecase.CartUC
	Checkout usecase.CheckoutUC
	Auth     usecase.AuthUC
	Admin    usecase.AdminUC
}

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(uc *Usecases, httpCfg *cfg.HTTPConfig, store *cfg.StoreCfg) {
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.RealIP)
	r.router.Use(LoggingMiddleware(r.logger))
	r.router.Use(middleware.Recoverer)

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(httpCfg.SwaggerURL),
	))

	r.router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		WriteSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	uploads := NewUploadsHandler(uc.Catalog, r.logger)
	r.router.Get("/uploads/{filename}", uploads.image)

	r.router.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(SessionMiddleware(store))

		registerCatalogRoutes(v1, NewCatalogHandler(uc.Catalog, uc.Hours, r.logger))
		registerCartRoutes(v1, NewCartHandler(uc.Cart, r.logger))
		registerCheckoutRoutes(v1, NewCheckoutHandler(uc.Checkout, uc.Hours, store.Location, r.logger))
		registerAuthRoutes(v1, NewAuthHandler(uc.Auth, r.logger))
		registerAdminRoutes(v1, NewAdminHandler(uc.Admin, r.logger))
	})
}

func registerCatalogRoutes(router chi.Router, h *CatalogHandler) {
	router.Route("/catalog", func(c chi.Router) {
		c.Get("/home", h.home)
		c.Get("/products", h.listProducts)
		c.Get("/products/{id}", h.getProduct)
		c.Get("/categories", h.listCategories)
	})
	router.Get("/hours/status", h.hoursStatus)
}

func registerCartRoutes(router chi.Router, h *CartHandler) {
	router.Route("/cart", func(c chi.Router) {
		c.Get("/", h.getCart)
		c.Delete("/", h.clear)
		c.Get("/count", h.count)
		c.Post("/items", h.addItem)
		c.Patch("/items/{productId}", h.updateQuantity)
		c.Delete("/items/{productId}", h.removeItem)
	})
}

func registerCheckoutRoutes(router chi.Router, h *CheckoutHandler) {
	router.Route("/checkout", func(c chi.Router) {
		c.Get("/quote", h.quote)
		c.Get("/history", h.history)
		c.Post("/", h.placeOrder)
	})
}

func registerAuthRoutes(router chi.Router, h *AuthHandler) {
	router.Route("/auth", func(a chi.Router) {
		a.Post("/request-code", h.requestCode)
		a.Post("/verify-code", h.verifyCode)
		a.Post("/logout", h.logout)
		a.Get("/profile", h.profile)
	})
}

func registerAdminRoutes(router chi.Router, h *AdminHandler) {
	router.Get("/orders/mine", h.myOrders)

	router.Route("/admin", func(a chi.Router) {
		a.Route("/products", func(p chi.Router) {
			p.Get("/", h.listProducts)
			p.Post("/", h.createProduct)
			p.Get("/barcode/{barcode}", h.productByBarcode)
			p.Put("/{id}", h.updateProduct)
			p.Patch("/{id}/active", h.setProductActive)
			p.Patch("/{id}/stock", h.adjustStock)
		})

		a.Route("/categories", func(c chi.Router) {
			c.Get("/", h.listCategories)
			c.Post("/", h.createCategory)
			c.Put("/{id}", h.updateCategory)
			c.Patch("/{id}/active", h.setCategoryActive)
		})

		a.Route("/orders", func(o chi.Router) {
			o.Get("/", h.listOrders)
			o.Patch("/{id}/status", h.updateOrderStatus)
			o.Post("/{id}/take", h.takeOrder)
			o.Post("/{id}/on-the-way", h.markOnTheWay)
		})

		a.Route("/users", func(u chi.Router) {
			u.Get("/", h.listUsers)
			u.Put("/{id}", h.updateUser)
			u.Patch("/{id}/role", h.changeUserRole)
		})

		a.Route("/locations", func(l chi.Router) {
			l.Get("/", h.listLocations)
			l.Post("/", h.createLocation)
			l.Put("/{id}", h.updateLocation)
			l.Delete("/{id}", h.deleteLocation)
		})

		a.Route("/hours", func(s chi.Router) {
			s.Get("/", h.listSchedule)
			s.Post("/", h.createScheduleEntry)
			s.Post("/initialize", h.initializeSchedule)
			s.Put("/{id}", h.updateScheduleEntry)
		})
	})
}
