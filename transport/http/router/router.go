package router

import (
	"cafe/internal/handlers/cafe"
	"cafe/internal/handlers/home"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Home home.Handler
	Cafe cafe.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts every domain at the root; the public API is unversioned.
func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Home.Router(router)
	r.DomainHandlers.Cafe.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
