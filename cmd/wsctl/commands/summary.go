package commands

import (
	"text/tabwriter"

	"github.com/spf13/cobra"

	"workspace-admin/internal/dashboard"
	dashboardRepo "workspace-admin/internal/dashboard/repository/api"
	dashboardUC "workspace-admin/internal/dashboard/usecase"
	"workspace-admin/internal/view"
)

func (c *cli) dashboard() dashboard.UseCase {
	return dashboardUC.New(c.l, dashboardRepo.New(c.client, c.l), c.calendar)
}

func (c *cli) summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the dashboard summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, sc, err := c.signedIn(cmd.Context())
			if err != nil {
				return err
			}
			s, err := c.dashboard().Summary(ctx, sc)
			if err != nil {
				return describe(err, "Failed to load summary")
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			printf(w, "Today's bookings\t%d\n", s.TodayBookings)
			if !sc.IsAdmin() {
				return w.Flush()
			}
			printf(w, "Users\t%d\n", s.TotalUsers)
			printf(w, "Subscribers\t%d active / %d\n", s.ActiveSubscribers, s.TotalSubscribers)
			printf(w, "Workspaces\t%d\n", s.TotalWorkspaces)
			printf(w, "Bookings\t%d (%d pending)\n", s.TotalBookings, s.PendingBookings)
			printf(w, "Monthly revenue\t%s\n", view.Money(c.currency, s.MonthlyRevenue))
			printf(w, "Total revenue\t%s\n", view.Money(c.currency, s.TotalRevenue))
			printf(w, "Total expenses\t%s\n", view.Money(c.currency, s.TotalExpenses))
			printf(w, "Present today\t%d\n", s.TodayAttendance)
			printf(w, "Low stock products\t%d\n", s.LowStockProducts)
			return w.Flush()
		},
	}
}
