package router

import (
	"petcare/internal/handlers/booking"
	"petcare/internal/handlers/petservice"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Booking    booking.Handler
	PetService petservice.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.PetService.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
