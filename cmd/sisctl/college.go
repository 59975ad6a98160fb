package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ssisdev/sisctl/internal/app/navigation"
	"github.com/ssisdev/sisctl/internal/bootstrap"
	"github.com/ssisdev/sisctl/internal/pkg/validation"
)

// NewCollegeCmd creates the college command group.
func NewCollegeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "college",
		Short: "Manage colleges",
	}

	cmd.AddCommand(newCollegeListCmd())
	cmd.AddCommand(newCollegeAddCmd())
	cmd.AddCommand(newCollegeUpdateCmd())
	cmd.AddCommand(newCollegeDeleteCmd())
	cmd.AddCommand(newCollegeStatsCmd())

	return cmd
}

func collegeFlags(cmd *cobra.Command, in *validation.CollegeInput) {
	cmd.Flags().StringVar(&in.CollegeCode, "code", "", "college code (2-10 letters)")
	cmd.Flags().StringVar(&in.CollegeName, "name", "", "college name")
}

func newCollegeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all colleges",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGuarded(cmd, navigation.DestColleges, func(ctx context.Context, app *bootstrap.App) error {
				colleges, err := app.Colleges.List(ctx)
				if err != nil {
					return err
				}

				rows := make([][]string, 0, len(colleges))
				for _, c := range colleges {
					rows = append(rows, []string{c.CollegeCode, c.CollegeName})
				}
				renderTable(cmd.OutOrStdout(), []string{"CODE", "NAME"}, rows)
				return nil
			})
		},
	}
}

func newCollegeAddCmd() *cobra.Command {
	var in validation.CollegeInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new college",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGuarded(cmd, navigation.DestColleges, func(ctx context.Context, app *bootstrap.App) error {
				created, err := app.Colleges.Create(ctx, in)
				if err != nil {
					return err
				}
				app.Notifier.Success(fmt.Sprintf("College %s added", created.CollegeCode))
				return nil
			})
		},
	}

	collegeFlags(cmd, &in)
	return cmd
}

func newCollegeUpdateCmd() *cobra.Command {
	var in validation.CollegeInput

	cmd := &cobra.Command{
		Use:   "update <code>",
		Short: "Update an existing college",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGuarded(cmd, navigation.DestColleges, func(ctx context.Context, app *bootstrap.App) error {
				updated, err := app.Colleges.Update(ctx, args[0], in)
				if err != nil {
					return err
				}
				app.Notifier.Success(fmt.Sprintf("College %s updated", updated.CollegeCode))
				return nil
			})
		},
	}

	collegeFlags(cmd, &in)
	return cmd
}

func newCollegeDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <code>",
		Short: "Delete a college",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGuarded(cmd, navigation.DestColleges, func(ctx context.Context, app *bootstrap.App) error {
				deleted, err := app.Colleges.Delete(ctx, args[0])
				if err != nil {
					return err
				}
				app.Notifier.Info(fmt.Sprintf("College %s deleted", deleted.CollegeCode))
				return nil
			})
		},
	}
}

func newCollegeStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show program and student counts per college",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGuarded(cmd, navigation.DestColleges, func(ctx context.Context, app *bootstrap.App) error {
				stats, err := app.Colleges.Stats(ctx)
				if err != nil {
					return err
				}

				rows := make([][]string, 0, len(stats))
				for _, s := range stats {
					rows = append(rows, []string{
						s.CollegeCode, s.CollegeName,
						strconv.FormatInt(s.ProgramCount, 10),
						strconv.FormatInt(s.StudentCount, 10),
					})
				}
				renderTable(cmd.OutOrStdout(),
					[]string{"CODE", "NAME", "PROGRAMS", "STUDENTS"}, rows)
				return nil
			})
		},
	}
}
