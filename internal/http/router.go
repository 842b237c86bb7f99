package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/seuristic/image-ecommerce/internal/auth"
)

type RouterDeps struct {
	Auth     *AuthHandler
	Products *ProductHandler
	Orders   *OrderHandler
	Webhook  *WebhookHandler
	Media    *MediaHandler
	Tokens   *auth.TokenManager

	RequestTimeout time.Duration
}

func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(deps.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(SessionMiddleware(deps.Tokens))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", deps.Auth.Register)
			r.Post("/login", deps.Auth.Login)
			r.Post("/logout", deps.Auth.Logout)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", deps.Products.List)
			r.Get("/{id}", deps.Products.Get)
			r.With(RequireAdmin).Post("/", deps.Products.Create)
		})

		r.Route("/orders", func(r chi.Router) {
			r.With(RequireAuth).Post("/", deps.Orders.Create)
			r.With(RequireAuth).Get("/user", deps.Orders.ListMine)
		})

		// Authenticated by signature, not session.
		r.Post("/webhook/razorpay", deps.Webhook.HandleRazorpay)

		r.With(RequireAuth).Get("/media/auth", deps.Media.UploadAuth)
	})

	return r
}
