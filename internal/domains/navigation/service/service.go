package service

import (
	"context"
	"fmt"
	"reception/infras/otel"
	"reception/internal/domains/navigation/model"
	"reception/internal/domains/navigation/model/dto"
	"reception/shared/constant"
)

type Navigation interface {
	Resolve(ctx context.Context, req dto.ResolveRequest) (dto.ShellResponse, error)
}

type serviceImpl struct {
	def  model.Definition
	otel otel.Otel
}

func New(otel otel.Otel) (Navigation, error) {
	def, err := model.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load billing navigation: %w", err)
	}

	return NewWithDefinition(def, otel), nil
}

func NewWithDefinition(def model.Definition, otel otel.Otel) Navigation {
	return &serviceImpl{def: def, otel: otel}
}

// Resolve selects exactly one active section for the caller's role and path.
func (s *serviceImpl) Resolve(ctx context.Context, req dto.ResolveRequest) (res dto.ShellResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResolveNavigation")
	defer scope.End()

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	base := s.def.Base(role)

	path := req.Path
	if path == constant.Empty {
		path = base
	}

	res.FromModel(s.def, base, s.def.Active(path, base))

	return res, nil
}
