package router

import (
	"net/http"
	"reception/infras/metrics"
	"reception/internal/handlers/billing"
	"reception/internal/handlers/clock"
	"reception/internal/handlers/guest"
	"reception/internal/handlers/navigation"
	"reception/internal/handlers/notification"
	"reception/internal/handlers/payment"
	"reception/internal/handlers/paymentlink"
	"reception/internal/handlers/profile"
	"reception/internal/handlers/room"
	"reception/internal/handlers/sync"
	"reception/transport/http/middleware"
	"reception/transport/http/response"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Billing      billing.Handler
	Payment      payment.Handler
	Sync         sync.Handler
	Clock        clock.Handler
	Notification notification.Handler
	PaymentLink  paymentlink.Handler
	Room         room.Handler
	Guest        guest.Handler
	Navigation   navigation.Handler
	Profile      profile.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Get("/health", func(writer http.ResponseWriter, _ *http.Request) {
		response.WithMessage(writer, http.StatusOK, "OK")
	})
	router.Handle("/metrics", metrics.Handler())
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.APIKey)
		routerGroup.Use(r.AuthRole.Auth)
		routerGroup.Use(r.AuthRole.RBAC)

		r.DomainHandlers.Navigation.Router(routerGroup)
		r.DomainHandlers.Billing.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Sync.Router(routerGroup)
		r.DomainHandlers.Clock.Router(routerGroup)
		r.DomainHandlers.Notification.Router(routerGroup)
		r.DomainHandlers.PaymentLink.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Profile.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthRole:       authRole,
	}
}
