package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"reception/internal/domains/clock/model"
	"reception/internal/domains/clock/model/dto"
	"reception/shared/constant"
	"reception/shared/failure"
	"reception/shared/timezone"
	"time"
)

const tickInterval = time.Second

type Clock interface {
	Now(req dto.ClockRequest) (dto.ClockResponse, error)
	Run(ctx context.Context, fn func(now time.Time))
}

type serviceImpl struct {
	now      func() time.Time
	interval time.Duration
}

func New() Clock {
	return &serviceImpl{now: timezone.Now, interval: tickInterval}
}

// NewWithSource is used by tests to pin the local clock and speed up ticks.
func NewWithSource(now func() time.Time, interval time.Duration) Clock {
	return &serviceImpl{now: now, interval: interval}
}

func (s *serviceImpl) Now(req dto.ClockRequest) (res dto.ClockResponse, err error) {
	local := s.now()
	opts := req.Options()

	res.LocalTime = timezone.Format(local, constant.DateFormat)
	res.Display = model.FormatTime(local, opts)
	res.Date = model.FormatDate(local)
	res.Timezone = local.Location().String()

	if req.ServerTime == "" {
		return res, nil
	}

	server, err := timezone.ParseAPITime(req.ServerTime)
	if err != nil {
		return res, failure.FieldError(constant.RequestParamServerTS, fmt.Sprintf("invalid server time %q", req.ServerTime))
	}

	drift := model.Drift(local, server)

	res.ServerTime = timezone.Format(server, constant.DateFormat)
	res.DriftMinutes = &drift
	res.DriftStatus = string(model.Classify(drift))

	return res, nil
}

// Run calls fn once per interval until ctx is done. It never fetches anything.
func (s *serviceImpl) Run(ctx context.Context, fn func(now time.Time)) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn(s.now())
		}
	}
}
