package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Room=MockRoomService

import (
	"context"
	"reception/config"
	"reception/infras/events"
	"reception/infras/hotelapi"
	"reception/infras/otel"
	"reception/infras/websocket"
	"reception/internal/domains/room/model"
	"reception/internal/domains/room/model/dto"
	"reception/internal/domains/room/repository"
	"reception/shared"
	"reception/shared/cache"
	"reception/shared/constant"
	"reception/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	msgRoomsSynced  = "Room statuses synchronized"
	msgRoomUpdated  = "Room status updated"
	triggerManual   = "manual"
	triggerSchedule = "schedule"
)

type Room interface {
	List(ctx context.Context, req dto.ListRoomsRequest) (dto.GetRoomsResponse, error)
	Sync(ctx context.Context) (dto.SyncResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomStatusRequest) (dto.UpdateRoomStatusResponse, error)
	SyncJob(ctx context.Context) error
}

type serviceImpl struct {
	repo  repository.Room
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	bus   events.Bus
	hub   websocket.Hub
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, bus events.Bus, hub websocket.Hub) Room {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		bus:   bus,
		hub:   hub,
	}
}

func (s *serviceImpl) List(ctx context.Context, req dto.ListRoomsRequest) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(model.EntityName, model.CacheKeyStatuses)

	var rooms []model.Room
	if err = s.cache.Get(ctx, cacheKey, &rooms); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for room statuses")
	} else {
		rooms, err = s.repo.Statuses(ctx)
		if err != nil {
			log.Error().Err(err).Msg("failed to get room statuses")

			return res, hotelapi.ToFailure(err)
		}

		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.cache.Save(c, cacheKey, rooms, s.cfg.Cache.TTL); err != nil {
				log.Error().Err(err).Msg("failed to save room statuses to cache")
			}
		}()
	}

	res.FromModels(rooms, req.ToFilter())

	return res, nil
}

func (s *serviceImpl) Sync(ctx context.Context) (res dto.SyncResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SyncRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.sync(ctx, triggerManual)
}

// SyncJob runs the scheduled sync with the service token.
func (s *serviceImpl) SyncJob(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelJobScopeName, constant.OtelJobScopeName+".SyncRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	if s.cfg.HotelAPI.ServiceToken != constant.Empty {
		ctx = hotelapi.WithToken(ctx, s.cfg.HotelAPI.ServiceToken)
	}

	_, err = s.sync(ctx, triggerSchedule)

	return err
}

func (s *serviceImpl) sync(ctx context.Context, trigger string) (res dto.SyncResponse, err error) {
	result, err := s.repo.Sync(ctx)
	if err != nil {
		log.Error().Err(err).Str("trigger", trigger).Msg("failed to sync room statuses")

		return res, hotelapi.ToFailure(err)
	}

	res.Message = result.Message
	if res.Message == constant.Empty {
		res.Message = msgRoomsSynced
	}

	res.SyncedAt = timezone.Now()
	res.Trigger = trigger

	s.invalidate(ctx)
	s.publish(ctx, events.RoomsSynced, trigger, res)

	if err = s.hub.Broadcast(websocket.TopicRoomStatus, res); err != nil {
		log.Warn().Err(err).Msg("failed to broadcast room sync")
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomStatusRequest) (res dto.UpdateRoomStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateRoomStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	result, err := s.repo.Update(ctx, req.ToModel(user))
	if err != nil {
		log.Error().Err(err).Str("room", req.RoomNumber).Str("status", req.Status).Msg("failed to update room status")

		return res, hotelapi.ToFailure(err)
	}

	res.RoomNumber = req.RoomNumber
	res.Status = req.Status
	res.Badge = model.BadgeFor(req.Status)
	res.Message = result.Message

	if res.Message == constant.Empty {
		res.Message = msgRoomUpdated
	}

	s.invalidate(ctx)
	s.publish(ctx, events.RoomStatusChanged, req.RoomNumber, res)

	if err = s.hub.Broadcast(websocket.TopicRoomStatus, res); err != nil {
		log.Warn().Err(err).Str("room", req.RoomNumber).Msg("failed to broadcast room status")
	}

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, model.EntityName)
	}()
}

func (s *serviceImpl) publish(ctx context.Context, eventType, subject string, payload any) {
	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	s.bus.Publish(ctx, events.Event{
		Type:    eventType,
		Actor:   actor,
		Subject: subject,
		Payload: payload,
	})
}
