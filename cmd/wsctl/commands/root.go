package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"workspace-admin/internal/model"
	"workspace-admin/internal/session"
	"workspace-admin/pkg/backend"
	"workspace-admin/pkg/datemath"
	"workspace-admin/pkg/log"
)

const (
	defaultAPIURL   = "http://localhost:8000/api"
	defaultTimezone = "Africa/Cairo"
	credentialsFile = "credentials.json"
	defaultPerPage  = 20
)

var errNotSignedIn = errors.New("not signed in, run `wsctl login` first")

// cli holds the dependencies shared by every subcommand.
type cli struct {
	v       *viper.Viper
	home    string
	verbose bool

	l        log.Logger
	store    session.Store
	client   *backend.Client
	calendar *datemath.Calendar
	currency string
}

func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree. Flags override WSCTL_* variables.
func NewRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	root := &cobra.Command{
		Use:               "wsctl",
		Short:             "Command line client for the workspace management API",
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.home, "home", "", "config dir (default ~/.wsctl)")
	flags.String("api", defaultAPIURL, "API base URL")
	flags.String("timezone", defaultTimezone, "timezone for dates and slots")
	flags.String("currency", "EGP", "currency label for amounts")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "log API calls")

	c.v.SetEnvPrefix("wsctl")
	c.v.AutomaticEnv()
	_ = c.v.BindPFlag("api_url", flags.Lookup("api"))
	_ = c.v.BindPFlag("timezone", flags.Lookup("timezone"))
	_ = c.v.BindPFlag("currency", flags.Lookup("currency"))

	root.AddCommand(
		c.loginCmd(),
		c.logoutCmd(),
		c.whoamiCmd(),
		c.summaryCmd(),
		c.bookingsCmd(),
		c.attendanceCmd(),
		c.usersCmd(),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command, args []string) error {
	if c.home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		c.home = filepath.Join(dir, ".wsctl")
	}

	c.l = log.NewNop()
	if c.verbose {
		c.l = log.Init(log.ZapConfig{Level: "debug", Mode: "debug", Encoding: "console"})
	}

	cal, err := datemath.NewCalendar(c.v.GetString("timezone"))
	if err != nil {
		return err
	}
	c.calendar = cal
	c.currency = c.v.GetString("currency")

	c.store = session.NewFileStore(filepath.Join(c.home, credentialsFile))
	c.client = backend.NewClient(c.v.GetString("api_url"),
		backend.WithUserAgent("wsctl"),
		backend.WithUnauthorizedHook(session.ClearOnUnauthorized(c.store, c.l)),
	)
	return nil
}

// signedIn loads the stored credentials and returns a context that carries
// them to the API.
func (c *cli) signedIn(ctx context.Context) (context.Context, model.Scope, error) {
	s, err := c.store.Get(ctx, "")
	if errors.Is(err, session.ErrNotFound) || errors.Is(err, session.ErrExpired) {
		return ctx, model.Scope{}, errNotSignedIn
	}
	if err != nil {
		return ctx, model.Scope{}, err
	}

	ctx = backend.WithToken(ctx, s.Token)
	ctx = session.WithID(ctx, s.ID)
	return ctx, s.Scope(), nil
}

// describe turns API errors into a line for the terminal.
func describe(err error, fallback string) error {
	if errors.Is(err, backend.ErrUnauthorized) {
		return errors.New("session expired, run `wsctl login` again")
	}
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return errors.New(backend.Message(err, fallback))
	}
	return fmt.Errorf("%s: %w", fallback, err)
}

func printf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}
