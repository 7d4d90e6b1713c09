package commands

import (
	"errors"
	"fmt"
	"reception/shared/currency"

	"github.com/spf13/cobra"

	paymentLinkModel "reception/internal/domains/paymentlink/model"
)

func LinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Create a payment link for the outstanding balance of a booking",
		RunE: func(cmd *cobra.Command, args []string) error {
			bookingID, _ := cmd.Flags().GetInt("booking")
			amount, _ := cmd.Flags().GetString("amount")

			if bookingID <= 0 {
				return errors.New("--booking is required")
			}

			c := newClients()

			ctx, err := commandContext(cmd, c.cfg)
			if err != nil {
				return err
			}

			booking, err := c.billing.Booking(ctx, bookingID)
			if err != nil {
				return err
			}

			remaining := currency.Remaining(booking.TotalAmount.Float(), booking.PaidAmount.Float())
			if remaining <= 0 {
				return fmt.Errorf("booking %d has nothing left to pay", bookingID)
			}

			value := remaining
			if amount != "" {
				value = currency.ParseAmount(amount)
			}

			if value <= 0 || value > remaining {
				return fmt.Errorf("amount must be between 0 and %s", currency.Format(remaining))
			}

			link, err := c.paymentLink.Create(ctx, paymentLinkModel.CreateRequest{
				BookingID:     bookingID,
				Amount:        value,
				CustomerName:  booking.GuestName,
				CustomerPhone: booking.GuestPhone,
				Description:   fmt.Sprintf("Room %s stay", booking.RoomNumber),
			})
			if err != nil {
				return err
			}

			url := link.ShortURL
			if url == "" {
				url = link.PaymentLink
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s for %s (expires %s)\n", url, link.Amount, link.ExpiresAt)

			return nil
		},
	}

	cmd.Flags().Int("booking", 0, "Booking ID")
	cmd.Flags().String("amount", "", "Amount to collect, defaults to the remaining balance")

	return cmd
}
