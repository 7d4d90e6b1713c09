package commands_test

import (
	"bytes"
	"reception/cmd/receptionctl/commands"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func run(cmd *cobra.Command, args ...string) error {
	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	cmd.PersistentFlags().String("token", "", "")

	return cmd.Execute()
}

func TestArgumentValidation(t *testing.T) {
	tests := []struct {
		name    string
		cmd     *cobra.Command
		args    []string
		wantErr string
	}{
		{name: "pay without booking", cmd: commands.PayCmd(), args: []string{"--amount", "100"}, wantErr: "--booking is required"},
		{name: "pay with non numeric amount", cmd: commands.PayCmd(), args: []string{"--booking", "7", "--amount", "abc"}, wantErr: "--amount must be a positive number"},
		{name: "checkout with invalid id", cmd: commands.CheckoutCmd(), args: []string{"abc"}, wantErr: `invalid booking id "abc"`},
		{name: "checkout with zero id", cmd: commands.CheckoutCmd(), args: []string{"0"}, wantErr: `invalid booking id "0"`},
		{name: "payments limit above max", cmd: commands.PaymentsCmd(), args: []string{"--limit", "501"}, wantErr: "limit must be between 1 and 500"},
		{name: "link without booking", cmd: commands.LinkCmd(), wantErr: "--booking is required"},
		{name: "token without user", cmd: commands.TokenCmd(), wantErr: "--user is required"},
		{name: "token with unknown role", cmd: commands.TokenCmd(), args: []string{"--user", "7", "--role", "janitor"}, wantErr: "--role must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.cmd, tt.args...)

			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestCheckoutRequiresOneArgument(t *testing.T) {
	err := run(commands.CheckoutCmd())

	assert.Error(t, err)
}
