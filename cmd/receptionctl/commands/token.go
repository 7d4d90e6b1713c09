package commands

import (
	"errors"
	"reception/config"
	"reception/infras/jwt"
	"reception/shared/constant"
	"slices"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var roles = []string{constant.RoleSuperAdmin, constant.RoleAdmin, constant.RoleReception}

func TokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a staff token pair for local testing",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, _ := cmd.Flags().GetString("user")
			email, _ := cmd.Flags().GetString("email")
			name, _ := cmd.Flags().GetString("name")
			role, _ := cmd.Flags().GetString("role")

			if userID == "" {
				return errors.New("--user is required")
			}

			if !slices.Contains(roles, role) {
				return errors.New("--role must be one of superadmin, admin or reception")
			}

			pair, err := jwt.New(config.Get()).GenerateTokenPair(jwt.Staff{
				UserID: userID,
				Email:  email,
				Name:   name,
				Role:   role,
			})
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")

			return encoder.Encode(pair)
		},
	}

	cmd.Flags().String("user", "", "Staff user ID")
	cmd.Flags().String("email", "", "Staff email")
	cmd.Flags().String("name", "", "Staff display name")
	cmd.Flags().String("role", constant.RoleReception, "Staff role")

	return cmd
}
