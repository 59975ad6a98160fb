package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssisdev/sisctl/internal/app/navigation"
	"github.com/ssisdev/sisctl/internal/bootstrap"
	"github.com/ssisdev/sisctl/internal/pkg/apperrors"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the sisctl CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sisctl",
		Short: "sisctl - student information system admin client",
		Long: `sisctl is a terminal client for the student records backend.
It manages students, academic programs, and colleges, with access
gated behind a login session.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	cmd.AddCommand(NewLoginCmd())
	cmd.AddCommand(NewSignupCmd())
	cmd.AddCommand(NewLogoutCmd())
	cmd.AddCommand(NewWhoamiCmd())
	cmd.AddCommand(NewDashboardCmd())
	cmd.AddCommand(NewStudentCmd())
	cmd.AddCommand(NewProgramCmd())
	cmd.AddCommand(NewCollegeCmd())

	return cmd
}

// runGuarded wires the app, runs the route guard for dest, and only
// then hands control to fn. Denied navigation redirects the way the
// guard says: login for anonymous visitors to protected screens, home
// for logged-in visitors to guest-only ones.
func runGuarded(cmd *cobra.Command, dest navigation.Destination, fn func(ctx context.Context, app *bootstrap.App) error) error {
	app, err := bootstrap.NewApp(configFile, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	route, ok := navigation.Lookup(dest)
	if !ok {
		return apperrors.ErrUnknownRoute
	}

	decision := navigation.DecideRoute(route, app.Session.Authenticated())
	if !decision.Allow {
		app.Navigator.Navigate(decision.RedirectTo)
		if decision.RedirectTo == navigation.DestLogin {
			return fmt.Errorf("not logged in, run \"sisctl login\" first")
		}
		// Guest-only destination while already logged in: nothing to do.
		return nil
	}

	return fn(cmd.Context(), app)
}
