package commands

import (
	"text/tabwriter"

	"github.com/spf13/cobra"

	"workspace-admin/internal/user"
	userRepo "workspace-admin/internal/user/repository/api"
	userUC "workspace-admin/internal/user/usecase"
)

func (c *cli) usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "User accounts",
	}
	cmd.AddCommand(c.usersListCmd())
	return cmd
}

func (c *cli) usersListCmd() *cobra.Command {
	var input user.ListInput
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users (admin only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, sc, err := c.signedIn(cmd.Context())
			if err != nil {
				return err
			}
			uc := userUC.New(c.l, userRepo.New(c.client, c.l), defaultPerPage)
			out, err := uc.List(ctx, sc, input)
			if err != nil {
				return describe(err, "Failed to list users")
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			printf(w, "ID\tNAME\tEMAIL\tROLE\n")
			for _, u := range out.Users {
				printf(w, "%d\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if out.Pagination.TotalPages > 1 {
				printf(cmd.OutOrStdout(), "Page %d of %d\n", out.Pagination.Page, out.Pagination.TotalPages)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&input.Query, "query", "q", "", "filter by name or email")
	cmd.Flags().IntVar(&input.Page, "page", 1, "page number")
	cmd.Flags().IntVar(&input.PerPage, "per-page", defaultPerPage, "users per page")
	return cmd
}
