package commands

import (
	"context"
	"fmt"
	"io"
	"reception/config"
	"reception/infras/hotelapi"
	"reception/infras/otel"
	"text/tabwriter"

	"github.com/spf13/cobra"

	billingRepository "reception/internal/domains/billing/repository"
	paymentLinkRepository "reception/internal/domains/paymentlink/repository"
	roomRepository "reception/internal/domains/room/repository"
)

type clients struct {
	cfg         *config.Config
	billing     billingRepository.Billing
	rooms       roomRepository.Room
	paymentLink paymentLinkRepository.PaymentLink
}

func newClients() clients {
	cfg := config.Get()
	client := hotelapi.New(cfg, otel.New(cfg))

	return clients{
		cfg:         cfg,
		billing:     billingRepository.New(client),
		rooms:       roomRepository.New(client),
		paymentLink: paymentLinkRepository.New(client),
	}
}

// commandContext carries the --token flag, or the configured service token, to the hotel API.
func commandContext(cmd *cobra.Command, cfg *config.Config) (context.Context, error) {
	token, _ := cmd.Flags().GetString("token")
	if token == "" {
		token = cfg.HotelAPI.ServiceToken
	}

	if token == "" {
		return nil, fmt.Errorf("no token: pass --token or set HOTEL_API_SERVICE_TOKEN")
	}

	return hotelapi.WithToken(cmd.Context(), token), nil
}

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}
