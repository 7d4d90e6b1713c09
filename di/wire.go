//go:build wireinject
// +build wireinject

package di

import (
	"reception/config"
	"reception/infras/events"
	"reception/infras/hotelapi"
	"reception/infras/jwt"
	"reception/infras/kafka"
	"reception/infras/otel"
	"reception/infras/redis"
	"reception/infras/s3"
	"reception/infras/scheduler"
	"reception/infras/websocket"
	"reception/internal/worker"
	"reception/permissions"
	"reception/shared/cache"
	"reception/transport/http"
	"reception/transport/http/middleware"
	"reception/transport/http/router"

	"github.com/google/wire"

	billingRepository "reception/internal/domains/billing/repository"
	billingService "reception/internal/domains/billing/service"
	clockService "reception/internal/domains/clock/service"
	guestRepository "reception/internal/domains/guest/repository"
	guestService "reception/internal/domains/guest/service"
	navigationService "reception/internal/domains/navigation/service"
	notificationRepository "reception/internal/domains/notification/repository"
	notificationService "reception/internal/domains/notification/service"
	paymentRepository "reception/internal/domains/payment/repository"
	paymentService "reception/internal/domains/payment/service"
	paymentLinkRepository "reception/internal/domains/paymentlink/repository"
	paymentLinkService "reception/internal/domains/paymentlink/service"
	profileRepository "reception/internal/domains/profile/repository"
	profileService "reception/internal/domains/profile/service"
	roomRepository "reception/internal/domains/room/repository"
	roomService "reception/internal/domains/room/service"
	syncService "reception/internal/domains/sync/service"

	billingHandler "reception/internal/handlers/billing"
	clockHandler "reception/internal/handlers/clock"
	guestHandler "reception/internal/handlers/guest"
	navigationHandler "reception/internal/handlers/navigation"
	notificationHandler "reception/internal/handlers/notification"
	paymentHandler "reception/internal/handlers/payment"
	paymentLinkHandler "reception/internal/handlers/paymentlink"
	profileHandler "reception/internal/handlers/profile"
	roomHandler "reception/internal/handlers/room"
	syncHandler "reception/internal/handlers/sync"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	jwt.New,
	hotelapi.New,
	s3.New,
	kafka.New,
	websocket.New,
	events.New,
	scheduler.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var billingDomain = wire.NewSet(
	billingRepository.New,
	billingService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.NewFromConfig,
	paymentService.New,
)

var dashboardDomain = wire.NewSet(
	syncService.New,
	clockService.New,
	navigationService.New,
)

var notificationDomain = wire.NewSet(
	notificationRepository.New,
	notificationService.New,
)

var paymentLinkDomain = wire.NewSet(
	paymentLinkRepository.New,
	paymentLinkService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var profileDomain = wire.NewSet(
	profileRepository.New,
	profileService.New,
)

var domains = wire.NewSet(
	billingDomain,
	paymentDomain,
	dashboardDomain,
	notificationDomain,
	paymentLinkDomain,
	roomDomain,
	guestDomain,
	profileDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	billingHandler.New,
	paymentHandler.New,
	syncHandler.New,
	clockHandler.New,
	notificationHandler.New,
	paymentLinkHandler.New,
	roomHandler.New,
	guestHandler.New,
	navigationHandler.New,
	profileHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		worker.New,
		http.New,
	)

	return &http.HTTP{}, nil
}
