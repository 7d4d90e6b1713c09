package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func RoomsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "Inspect and synchronise room statuses",
	}

	cmd.AddCommand(roomsListCmd(), roomsSyncCmd())

	return cmd
}

func roomsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List rooms with their effective status",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, _ := cmd.Flags().GetString("status")

			c := newClients()

			ctx, err := commandContext(cmd, c.cfg)
			if err != nil {
				return err
			}

			rooms, err := c.rooms.Statuses(ctx)
			if err != nil {
				return err
			}

			table := newTable(cmd.OutOrStdout())
			fmt.Fprintln(table, "ROOM\tFLOOR\tTYPE\tSTATUS\tGUEST")

			for _, room := range rooms {
				effective := room.EffectiveStatus
				if effective == "" {
					effective = room.Status
				}

				if status != "" && status != effective {
					continue
				}

				guest := "-"
				if room.Guest != nil {
					guest = room.Guest.Name
				}

				fmt.Fprintf(table, "%s\t%d\t%s\t%s\t%s\n", room.RoomNumber, room.Floor.Int(), room.RoomType, effective, guest)
			}

			return table.Flush()
		},
	}

	cmd.Flags().String("status", "", "Only show rooms in this status")

	return cmd
}

func roomsSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Reconcile room statuses with active bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClients()

			ctx, err := commandContext(cmd, c.cfg)
			if err != nil {
				return err
			}

			res, err := c.rooms.Sync(ctx)
			if err != nil {
				return err
			}

			message := res.Message
			if message == "" {
				message = "Room statuses synchronised"
			}

			fmt.Fprintln(cmd.OutOrStdout(), message)

			return nil
		},
	}
}
