package commands

import (
	"text/tabwriter"

	"github.com/spf13/cobra"

	"workspace-admin/internal/booking"
	bookingRepo "workspace-admin/internal/booking/repository/api"
	bookingUC "workspace-admin/internal/booking/usecase"
	transactionRepo "workspace-admin/internal/transaction/repository/api"
	transactionUC "workspace-admin/internal/transaction/usecase"
	workspaceRepo "workspace-admin/internal/workspace/repository/api"
	workspaceUC "workspace-admin/internal/workspace/usecase"
)

func (c *cli) bookings() booking.UseCase {
	return bookingUC.New(c.l, bookingUC.Deps{
		Repo:         bookingRepo.New(c.client, c.l),
		Workspaces:   workspaceUC.New(c.l, workspaceRepo.New(c.client, c.l)),
		Transactions: transactionUC.New(c.l, transactionRepo.New(c.client, c.l), c.calendar, defaultPerPage),
		Calendar:     c.calendar,
		PerPage:      defaultPerPage,
	})
}

func (c *cli) bookingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "Workspace bookings",
	}
	cmd.AddCommand(c.availabilityCmd(), c.slotsCmd())
	return cmd
}

func (c *cli) availabilityCmd() *cobra.Command {
	var input booking.AvailabilityInput
	cmd := &cobra.Command{
		Use:   "availability",
		Short: "Check whether a workspace is free for a slot or time range",
		Example: "  wsctl bookings availability --workspace 3 --date 2024-06-01 --slot 09:00-10:00\n" +
			"  wsctl bookings availability --workspace 3 --start 2024-06-01T09:00 --end 2024-06-01T11:30",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, sc, err := c.signedIn(cmd.Context())
			if err != nil {
				return err
			}
			avail, err := c.bookings().Availability(ctx, sc, input)
			if err != nil {
				return describe(err, "Failed to check availability")
			}

			if avail.Available {
				printf(cmd.OutOrStdout(), "Available\n")
				return nil
			}
			if avail.Message != "" {
				printf(cmd.OutOrStdout(), "Not available: %s\n", avail.Message)
				return nil
			}
			printf(cmd.OutOrStdout(), "Not available\n")
			return nil
		},
	}
	cmd.Flags().IntVar(&input.WorkspaceID, "workspace", 0, "workspace id")
	cmd.Flags().StringVar(&input.Date, "date", "", "date (YYYY-MM-DD, today, tomorrow...) used with --slot")
	cmd.Flags().StringVar(&input.Slot, "slot", "", "hourly slot such as 09:00-10:00")
	cmd.Flags().StringVar(&input.StartTime, "start", "", "start time, instead of --date/--slot")
	cmd.Flags().StringVar(&input.EndTime, "end", "", "end time, instead of --date/--slot")
	_ = cmd.MarkFlagRequired("workspace")
	return cmd
}

func (c *cli) slotsCmd() *cobra.Command {
	var input booking.SlotsInput
	cmd := &cobra.Command{
		Use:   "slots",
		Short: "List the hourly slots of a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, sc, err := c.signedIn(cmd.Context())
			if err != nil {
				return err
			}
			slots, err := c.bookings().Slots(ctx, sc, input)
			if err != nil {
				return describe(err, "Failed to list slots")
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			printf(w, "SLOT\tSTATUS\n")
			for _, s := range slots {
				status := "free"
				if !s.Available {
					status = "taken"
				}
				printf(w, "%s\t%s\n", s.Label, status)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&input.Date, "date", "today", "date (YYYY-MM-DD, today, tomorrow...)")
	cmd.Flags().IntVar(&input.WorkspaceID, "workspace", 0, "check each slot against this workspace")
	return cmd
}
