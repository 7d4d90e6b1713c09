package service

import (
	"context"
	"reception/infras/hotelapi"
	"reception/infras/otel"
	"reception/internal/domains/profile/model/dto"
	"reception/internal/domains/profile/repository"
	"reception/shared/constant"
	"reception/shared/failure"
	"reception/shared/validator"

	"github.com/rs/zerolog/log"
)

const msgProfileUpdated = "Profile updated successfully"

type Profile interface {
	Me(ctx context.Context) (dto.ProfileResponse, error)
	Update(ctx context.Context, req dto.UpdateProfileRequest) (dto.ProfileResponse, error)
}

type serviceImpl struct {
	repo repository.Profile
	otel otel.Otel
}

func New(repo repository.Profile, otel otel.Otel) Profile {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Me echoes the identity carried by the staff token.
func (s *serviceImpl) Me(ctx context.Context) (res dto.ProfileResponse, err error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return res, failure.Unauthorized("missing staff identity")
	}

	res.ID = user
	res.Email, _ = ctx.Value(constant.ContextKeyUserEmail).(string)
	res.Role, _ = ctx.Value(constant.ContextKeyUserRole).(string)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateProfileRequest) (res dto.ProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateProfile")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return res, failure.Unauthorized("missing staff identity")
	}

	updateReq := req.ToModel(user)

	staff, result, err := s.repo.Update(ctx, updateReq)
	if err != nil {
		log.Error().Err(err).Str("user", user).Msg("failed to update profile")

		return res, hotelapi.ToFailure(err)
	}

	res.FromModel(staff, updateReq)
	if res.Role == constant.Empty {
		res.Role, _ = ctx.Value(constant.ContextKeyUserRole).(string)
	}

	res.Message = result.Message
	if res.Message == constant.Empty {
		res.Message = msgProfileUpdated
	}

	return res, nil
}
