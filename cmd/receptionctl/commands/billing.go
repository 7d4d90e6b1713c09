package commands

import (
	"errors"
	"fmt"
	"reception/shared/constant"
	"reception/shared/currency"
	"strconv"

	"github.com/spf13/cobra"

	billingModel "reception/internal/domains/billing/model"
)

func StatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show billing statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClients()

			ctx, err := commandContext(cmd, c.cfg)
			if err != nil {
				return err
			}

			stats, res, err := c.billing.Stats(ctx)
			if err != nil {
				return err
			}

			if res.NotConfigured() {
				fmt.Fprintln(cmd.OutOrStdout(), "Billing tables are not set up on the hotel backend")

				return nil
			}

			table := newTable(cmd.OutOrStdout())
			fmt.Fprintf(table, "Total revenue\t%s\n", stats.TotalRevenue)
			fmt.Fprintf(table, "Today revenue\t%s\n", stats.TodayRevenue)
			fmt.Fprintf(table, "Month revenue\t%s\n", stats.MonthRevenue)
			fmt.Fprintf(table, "Pending\t%s\n", stats.PendingAmount)
			fmt.Fprintf(table, "Refunds\t%s\n", stats.TotalRefunds)
			fmt.Fprintf(table, "Payments (today/total)\t%d/%d\n", stats.TodayPayments.Int(), stats.TotalPayments.Int())
			fmt.Fprintf(table, "Active bookings\t%d\n", stats.ActiveBookings.Int())

			return table.Flush()
		},
	}
}

func PaymentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payments",
		Short: "List recent payments",
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			if limit <= 0 || limit > constant.MaxValueHistoryLimit {
				return fmt.Errorf("limit must be between 1 and %d", constant.MaxValueHistoryLimit)
			}

			c := newClients()

			ctx, err := commandContext(cmd, c.cfg)
			if err != nil {
				return err
			}

			payments, err := c.billing.PaymentHistory(ctx, limit)
			if err != nil {
				return err
			}

			table := newTable(cmd.OutOrStdout())
			fmt.Fprintln(table, "RECEIPT\tBOOKING\tGUEST\tROOM\tMETHOD\tAMOUNT\tDATE")

			for _, p := range payments {
				fmt.Fprintf(table, "%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
					p.ReceiptNumber, p.BookingID.Int(), p.GuestName, p.RoomNumber, p.PaymentMethod, p.Amount, p.PaymentDate)
			}

			return table.Flush()
		},
	}

	cmd.Flags().Int("limit", constant.DefaultValueHistoryLimit, "Number of payments to show")

	return cmd
}

func PayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Record a walk-in payment against a booking",
		RunE: func(cmd *cobra.Command, args []string) error {
			bookingID, _ := cmd.Flags().GetInt("booking")
			amount, _ := cmd.Flags().GetString("amount")
			method, _ := cmd.Flags().GetString("method")
			notes, _ := cmd.Flags().GetString("notes")

			if bookingID <= 0 {
				return errors.New("--booking is required")
			}

			value := currency.ParseAmount(amount)
			if value <= 0 {
				return errors.New("--amount must be a positive number")
			}

			c := newClients()

			ctx, err := commandContext(cmd, c.cfg)
			if err != nil {
				return err
			}

			payment, err := c.billing.RecordPayment(ctx, billingModel.PaymentRequest{
				BookingID:     bookingID,
				Amount:        value,
				PaymentMethod: method,
				Notes:         notes,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s for booking %d, receipt %s\n", payment.Amount, bookingID, payment.ReceiptNumber)

			return nil
		},
	}

	cmd.Flags().Int("booking", 0, "Booking ID")
	cmd.Flags().String("amount", "", "Amount to record")
	cmd.Flags().String("method", "cash", "Payment method")
	cmd.Flags().String("notes", "", "Notes attached to the payment")

	return cmd
}

func CheckoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkout <booking-id>",
		Short: "Check a fully paid booking out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bookingID, err := strconv.Atoi(args[0])
			if err != nil || bookingID <= 0 {
				return fmt.Errorf("invalid booking id %q", args[0])
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
			if remaining > 0 {
				return fmt.Errorf("booking %d still owes %s", bookingID, currency.Format(remaining))
			}

			if err = c.billing.Checkout(ctx, bookingID); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Booking %d checked out\n", bookingID)

			return nil
		},
	}
}
