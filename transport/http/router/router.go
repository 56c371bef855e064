package router

import (
	"trekdesk/internal/handlers/analytics"
	"trekdesk/internal/handlers/auth"
	"trekdesk/internal/handlers/batch"
	"trekdesk/internal/handlers/booking"
	"trekdesk/internal/handlers/post"
	"trekdesk/internal/handlers/realtime"
	"trekdesk/internal/handlers/trek"
	"trekdesk/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth      auth.Handler
	Trek      trek.Handler
	Batch     batch.Handler
	Booking   booking.Handler
	User      user.Handler
	Analytics analytics.Handler
	Post      post.Handler
	Realtime  realtime.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Trek.Router(routerGroup)
		r.DomainHandlers.Batch.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Analytics.Router(routerGroup)
		r.DomainHandlers.Post.Router(routerGroup)
		r.DomainHandlers.Realtime.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
