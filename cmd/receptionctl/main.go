package main

import (
	"fmt"
	"os"
	"reception/cmd/receptionctl/commands"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "receptionctl",
		Short: "Operator tool for the reception billing service",
	}

	rootCmd.PersistentFlags().String("token", "", "Bearer token forwarded to the hotel API (defaults to HOTEL_API_SERVICE_TOKEN)")

	rootCmd.AddCommand(
		commands.StatsCmd(),
		commands.PaymentsCmd(),
		commands.PayCmd(),
		commands.CheckoutCmd(),
		commands.RoomsCmd(),
		commands.LinkCmd(),
		commands.TokenCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
