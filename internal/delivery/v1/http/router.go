package http

import (
	"net/http"
	"time"

	_ "github.com/DRSN-tech/storefront/docs" // Описание API для swagger
	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(catalogUC usecase.CatalogUC, cartUC usecase.CartUC, catalogCfg *cfg.CatalogCfg, cartCfg *cfg.CartCfg) {
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.Recoverer)
	r.router.Use(r.requestLogger)

	r.router.Get("/healthz", healthz)
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	sessions := NewSessions(cartCfg.SessionCookie, cartCfg.SessionTTL)

	r.router.Route("/api/v1", func(v1 chi.Router) {
		catHandler := NewCatalogHandler(catalogUC, catalogCfg.Currency, r.logger)
		registerCatalogRoutes(v1, catHandler)

		cartHandler := NewCartHandler(cartUC, sessions, catalogCfg.Currency, r.logger)
		registerCartRoutes(v1, cartHandler, sessions)
	})
}

func registerCatalogRoutes(router chi.Router, catHandler *CatalogHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", catHandler.listProducts)
		pr.Get("/featured", catHandler.featured)
		pr.Get("/{id}", catHandler.productByID)
	})
	router.Get("/categories", catHandler.listCategories)
}

func registerCartRoutes(router chi.Router, cartHandler *CartHandler, sessions *Sessions) {
	router.Route("/cart", func(cr chi.Router) {
		cr.Use(sessions.Middleware)

		cr.Get("/", cartHandler.getCart)
		cr.Delete("/", cartHandler.endSession)
		cr.Post("/items", cartHandler.addItem)
		cr.Patch("/items/{productID}", cartHandler.updateItem)
		cr.Delete("/items/{productID}", cartHandler.removeItem)
	})
}

func (r *Router) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, req)

		r.logger.Debugf("%s %s -> %d (%s) request_id=%s",
			req.Method, req.URL.Path, ww.Status(), time.Since(start), middleware.GetReqID(req.Context()))
	})
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}
