package service

import (
	"context"
	"reception/infras/events"
	"reception/infras/hotelapi"
	billingModel "reception/internal/domains/billing/model"
	"reception/internal/domains/payment/model"
	"reception/internal/domains/payment/model/dto"
	"reception/shared"
	"reception/shared/constant"
	"reception/shared/currency"
	"strconv"

	"github.com/rs/zerolog/log"
)

// Checkout checks a guest out directly when nothing is owed. Otherwise it opens a
// checkout-mode payment flow; checkout then fires when that flow settles the balance.
func (s *serviceImpl) Checkout(ctx context.Context, bookingID int) (res dto.CheckoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Checkout")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.billing.Booking(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Int("booking_id", bookingID).Msg("failed to load booking for checkout")

		return res, hotelapi.ToFailure(err)
	}

	res.BookingID = bookingID
	res.Remaining = booking.Remaining()

	if res.Remaining > 0 {
		flow, err := s.open(ctx, model.ModeCheckout, booking)
		if err != nil {
			return res, err
		}

		flow.Lock()
		var flowRes dto.FlowResponse
		flowRes.FromModel(flow)
		flow.Unlock()

		res.Blocked = true
		res.Flow = &flowRes
		res.Message = "Outstanding balance of " + currency.Format(res.Remaining) + " must be paid before checkout"

		return res, nil
	}

	if err = s.checkout(ctx, bookingID); err != nil {
		return res, hotelapi.ToFailure(err)
	}

	shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, billingModel.EntityName)

	res.CheckedOut = true
	res.Message = "Guest checked out successfully"

	return res, nil
}

func (s *serviceImpl) checkout(ctx context.Context, bookingID int) error {
	if err := s.billing.Checkout(ctx, bookingID); err != nil {
		log.Error().Err(err).Int("booking_id", bookingID).Msg("checkout failed")

		return err
	}

	log.Info().Int("booking_id", bookingID).Msg("guest checked out")

	s.publish(ctx, events.CheckoutCompleted, strconv.Itoa(bookingID), map[string]any{
		"booking_id": bookingID,
	})

	return nil
}
