package commands

import (
	"bufio"
	"errors"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"workspace-admin/internal/auth"
	authRepo "workspace-admin/internal/auth/repository/api"
	authUC "workspace-admin/internal/auth/usecase"
)

func (c *cli) auth() auth.UseCase {
	return authUC.New(c.l, authRepo.New(c.client, c.l), c.store)
}

func (c *cli) loginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the API token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				printf(cmd.ErrOrStderr(), "Password: ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return errors.New("password required")
				}
				password = strings.TrimRight(line, "\r\n")
			}

			s, err := c.auth().Login(cmd.Context(), auth.LoginInput{Email: email, Password: password})
			if errors.Is(err, auth.ErrMissingCredentials) {
				return errors.New("email and password are required")
			}
			if err != nil {
				return describe(err, "Login failed")
			}
			printf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", s.User.Name, s.User.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when empty)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and remove the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, sc, err := c.signedIn(cmd.Context())
			if errors.Is(err, errNotSignedIn) {
				printf(cmd.OutOrStdout(), "Not signed in\n")
				return nil
			}
			if err != nil {
				return err
			}
			if err := c.auth().Logout(ctx, sc); err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "Signed out\n")
			return nil
		},
	}
}

func (c *cli) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, sc, err := c.signedIn(cmd.Context())
			if err != nil {
				return err
			}
			u, err := c.auth().Profile(ctx, sc)
			if err != nil {
				return describe(err, "Failed to load profile")
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			printf(w, "ID\t%d\n", u.ID)
			printf(w, "Name\t%s\n", u.Name)
			printf(w, "Email\t%s\n", u.Email)
			printf(w, "Role\t%s\n", u.Role)
			if u.Phone != "" {
				printf(w, "Phone\t%s\n", u.Phone)
			}
			return w.Flush()
		},
	}
}
