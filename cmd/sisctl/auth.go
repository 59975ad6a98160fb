package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ssisdev/sisctl/internal/app/navigation"
	"github.com/ssisdev/sisctl/internal/bootstrap"
)

// NewLoginCmd creates the login subcommand.
func NewLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the backend and store the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGuarded(cmd, navigation.DestLogin, func(ctx context.Context, app *bootstrap.App) error {
				var err error
				if password, err = promptIfEmpty(cmd, password, "Password"); err != nil {
					return err
				}

				res := app.Auth.Login(ctx, email, password)
				if !res.Success {
					return errors.New(res.Error)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

// NewSignupCmd creates the signup subcommand. Registering does not log
// the new account in; that is a separate login step.
func NewSignupCmd() *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a new account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGuarded(cmd, navigation.DestSignup, func(ctx context.Context, app *bootstrap.App) error {
				var err error
				if password, err = promptIfEmpty(cmd, password, "Password"); err != nil {
					return err
				}

				res := app.Auth.Signup(ctx, username, email, password)
				if !res.Success {
					return errors.New(res.Error)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "account username")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

// NewLogoutCmd creates the logout subcommand. Logout is local-only and
// never guarded: logging out while logged out is a harmless no-op.
func NewLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := bootstrap.NewApp(configFile, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			app.Auth.Logout()
			return nil
		},
	}
}

// NewWhoamiCmd creates the whoami subcommand, which shows the stored
// session and asks the backend whether the token still holds.
func NewWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session and verify it with the backend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := bootstrap.NewApp(configFile, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if !app.Session.Authenticated() {
				fmt.Fprintln(out, "Not logged in.")
				return nil
			}

			if user := app.Session.User(); user != nil {
				fmt.Fprintf(out, "Logged in as %s <%s>\n", user.Username, user.Email)
			}
			if claims, err := app.Session.Claims(); err == nil && !claims.ExpiresAt.IsZero() {
				fmt.Fprintf(out, "Token expires %s\n", claims.ExpiresAt.Format(time.RFC1123))
			}

			if app.Auth.VerifyToken(cmd.Context()) {
				fmt.Fprintln(out, "Session is valid.")
			}
			return nil
		},
	}
}

// promptIfEmpty returns value when set, otherwise reads one line from
// the command's input.
func promptIfEmpty(cmd *cobra.Command, value, label string) (string, error) {
	if value != "" {
		return value, nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: ", label)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading %s: %w", strings.ToLower(label), err)
	}
	return strings.TrimSpace(line), nil
}
