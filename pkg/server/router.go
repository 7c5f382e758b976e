package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"marwood.io/WhiskeyVault/pkg/auth"
)

type Servers struct {
	Auth       *AuthServer
	User       *UserServer
	Distillery *DistilleryServer
	Whiskey    *WhiskeyServer
	Collection *CollectionServer
	Tasting    *TastingServer
	Insight    *InsightServer
}

// NewRouter assembles the public /auth routes and the token-guarded /api
// routes onto one chi router.
func NewRouter(servers Servers, manager *auth.Manager) http.Handler {
	router := chi.NewRouter()

	router.Route("/auth", func(router chi.Router) {
		router.Post("/token", servers.Auth.Login)
		router.Post("/register", servers.Auth.Register)
	})

	router.Route("/api", func(router chi.Router) {
		router.Use(manager.Middleware)

		router.Route("/users", func(router chi.Router) {
			router.Get("/", servers.User.List)
			router.Get("/me", servers.User.Me)
			router.Put("/me", servers.User.UpdateMe)
			router.Get("/{id}", servers.User.Get)
			router.Put("/{id}", servers.User.Update)
		})

		router.Route("/distilleries", func(router chi.Router) {
			router.Get("/", servers.Distillery.List)
			router.Post("/", servers.Distillery.Create)
			router.Get("/search", servers.Distillery.Search)
			router.Get("/{id}", servers.Distillery.Get)
			router.Put("/{id}", servers.Distillery.Update)
			router.Delete("/{id}", servers.Distillery.Delete)
		})

		router.Route("/whiskeys", func(router chi.Router) {
			router.Get("/", servers.Whiskey.List)
			router.Post("/", servers.Whiskey.Create)
			router.Get("/{id}", servers.Whiskey.Get)
			router.Put("/{id}", servers.Whiskey.Update)
			router.Delete("/{id}", servers.Whiskey.Delete)
		})

		router.Route("/user-whiskeys", func(router chi.Router) {
			router.Get("/", servers.Collection.List)
			router.Post("/", servers.Collection.Create)
			router.Get("/{id}", servers.Collection.Get)
			router.Put("/{id}", servers.Collection.Update)
			router.Delete("/{id}", servers.Collection.Delete)
			router.Get("/{id}/tastings", servers.Collection.ListTastings)
		})

		router.Route("/tastings", func(router chi.Router) {
			router.Get("/", servers.Tasting.List)
			router.Post("/", servers.Tasting.Create)
			router.Get("/{id}", servers.Tasting.Get)
			router.Put("/{id}", servers.Tasting.Update)
			router.Delete("/{id}", servers.Tasting.Delete)
		})

		router.Route("/insights", func(router chi.Router) {
			router.Post("/whiskey", servers.Insight.Whiskey)
			router.Post("/analysis", servers.Insight.Analysis)
			router.Post("/recommendation", servers.Insight.Recommendation)
		})
	})

	return router
}
