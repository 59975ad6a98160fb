package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssisdev/sisctl/internal/app/navigation"
	"github.com/ssisdev/sisctl/internal/bootstrap"
	"github.com/ssisdev/sisctl/internal/pkg/validation"
)

// NewProgramCmd creates the program command group.
func NewProgramCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "program",
		Short: "Manage academic programs",
	}

	cmd.AddCommand(newProgramListCmd())
	cmd.AddCommand(newProgramAddCmd())
	cmd.AddCommand(newProgramUpdateCmd())
	cmd.AddCommand(newProgramDeleteCmd())

	return cmd
}

func programFlags(cmd *cobra.Command, in *validation.ProgramInput) {
	cmd.Flags().StringVar(&in.ProgramCode, "code", "", "program code (2-10 letters)")
	cmd.Flags().StringVar(&in.ProgramName, "name", "", "program name")
	cmd.Flags().StringVar(&in.CollegeCode, "college", "", "college code reference")
}

func newProgramListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all programs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGuarded(cmd, navigation.DestPrograms, func(ctx context.Context, app *bootstrap.App) error {
				programs, err := app.Programs.List(ctx)
				if err != nil {
					return err
				}

				rows := make([][]string, 0, len(programs))
				for _, p := range programs {
					rows = append(rows, []string{p.ProgramCode, p.ProgramName, p.CollegeCode})
				}
				renderTable(cmd.OutOrStdout(), []string{"CODE", "NAME", "COLLEGE"}, rows)
				return nil
			})
		},
	}
}

func newProgramAddCmd() *cobra.Command {
	var in validation.ProgramInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new program",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGuarded(cmd, navigation.DestPrograms, func(ctx context.Context, app *bootstrap.App) error {
				created, err := app.Programs.Create(ctx, in)
				if err != nil {
					return err
				}
				app.Notifier.Success(fmt.Sprintf("Program %s added", created.ProgramCode))
				return nil
			})
		},
	}

	programFlags(cmd, &in)
	return cmd
}

func newProgramUpdateCmd() *cobra.Command {
	var in validation.ProgramInput

	cmd := &cobra.Command{
		Use:   "update <code>",
		Short: "Update an existing program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGuarded(cmd, navigation.DestPrograms, func(ctx context.Context, app *bootstrap.App) error {
				updated, err := app.Programs.Update(ctx, args[0], in)
				if err != nil {
					return err
				}
				app.Notifier.Success(fmt.Sprintf("Program %s updated", updated.ProgramCode))
				return nil
			})
		},
	}

	programFlags(cmd, &in)
	return cmd
}

func newProgramDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <code>",
		Short: "Delete a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGuarded(cmd, navigation.DestPrograms, func(ctx context.Context, app *bootstrap.App) error {
				deleted, err := app.Programs.Delete(ctx, args[0])
				if err != nil {
					return err
				}
				app.Notifier.Info(fmt.Sprintf("Program %s deleted", deleted.ProgramCode))
				return nil
			})
		},
	}
}
