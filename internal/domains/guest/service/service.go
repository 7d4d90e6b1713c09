package service

import (
	"context"
	"reception/config"
	"reception/infras/hotelapi"
	"reception/infras/otel"
	"reception/internal/domains/guest/model"
	"reception/internal/domains/guest/model/dto"
	"reception/internal/domains/guest/repository"
	"reception/shared"
	"reception/shared/cache"
	"reception/shared/constant"

	"github.com/rs/zerolog/log"
)

type Guest interface {
	Search(ctx context.Context, req dto.SearchGuestsRequest) (dto.SearchGuestsResponse, error)
}

type serviceImpl struct {
	repo  repository.Guest
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Guest, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Guest {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Search ranks guest history by name, phone and room. An empty query lists the most recent guests.
func (s *serviceImpl) Search(ctx context.Context, req dto.SearchGuestsRequest) (res dto.SearchGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SearchGuests")
	defer scope.End()
	defer scope.TraceIfError(err)

	guests, err := s.history(ctx)
	if err != nil {
		return res, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = constant.DefaultValueGuestLimit
	}

	res.Guests = []dto.GuestResponse{}

	if req.Query == constant.Empty {
		for _, guest := range guests[:min(limit, len(guests))] {
			var item dto.GuestResponse
			item.FromModel(guest, 0)
			res.Guests = append(res.Guests, item)
		}

		res.Total = len(guests)

		return res, nil
	}

	ranked := model.Rank(req.Query, guests)
	res.Total = len(ranked)

	for _, scored := range ranked[:min(limit, len(ranked))] {
		var item dto.GuestResponse
		item.FromModel(scored.Guest, scored.Score)
		res.Guests = append(res.Guests, item)
	}

	if len(ranked) == 0 {
		res.Suggestion = model.Suggest(req.Query, guests)
	}

	return res, nil
}

func (s *serviceImpl) history(ctx context.Context) ([]model.Guest, error) {
	cacheKey := shared.BuildCacheKey(model.EntityName, model.CacheKeyHistory)

	var guests []model.Guest
	if err := s.cache.Get(ctx, cacheKey, &guests); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for guest history")

		return guests, nil
	}

	guests, err := s.repo.History(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest history")

		return nil, hotelapi.ToFailure(err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, guests, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guest history to cache")
		}
	}()

	return guests, nil
}
