package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ssisdev/sisctl/internal/app/models"
	"github.com/ssisdev/sisctl/internal/app/navigation"
	"github.com/ssisdev/sisctl/internal/bootstrap"
)

// NewDashboardCmd creates the dashboard command group. The bare command
// shows the combined summary; subcommands fetch the individual views.
func NewDashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show enrollment statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGuarded(cmd, navigation.DestDashboard, func(ctx context.Context, app *bootstrap.App) error {
				summary, err := app.Dashboard.Summary(ctx)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				printTotals(out, models.DashboardTotals{
					TotalStudents: summary.TotalStudents,
					TotalPrograms: summary.TotalPrograms,
					TotalColleges: summary.TotalColleges,
				})

				fmt.Fprintln(out, "\nStudents per college:")
				printCollegeEnrollment(out, summary.StudentsPerCollege)

				fmt.Fprintln(out, "\nTop programs:")
				printProgramEnrollment(out, summary.TopPrograms)
				return nil
			})
		},
	}

	cmd.AddCommand(newDashboardTotalsCmd())
	cmd.AddCommand(newDashboardCollegesCmd())
	cmd.AddCommand(newDashboardTopProgramsCmd())
	cmd.AddCommand(newDashboardCollegeStatsCmd())

	return cmd
}

func newDashboardTotalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "totals",
		Short: "Show headline counts only",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGuarded(cmd, navigation.DestDashboard, func(ctx context.Context, app *bootstrap.App) error {
				totals, err := app.Dashboard.Totals(ctx)
				if err != nil {
					return err
				}
				printTotals(cmd.OutOrStdout(), *totals)
				return nil
			})
		},
	}
}

func newDashboardCollegesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "colleges",
		Short: "Show the per-college enrollment breakdown",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGuarded(cmd, navigation.DestDashboard, func(ctx context.Context, app *bootstrap.App) error {
				rows, err := app.Dashboard.StudentsPerCollege(ctx)
				if err != nil {
					return err
				}
				printCollegeEnrollment(cmd.OutOrStdout(), rows)
				return nil
			})
		},
	}
}

func newDashboardTopProgramsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "top-programs",
		Short: "Show the programs with the highest enrollment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGuarded(cmd, navigation.DestDashboard, func(ctx context.Context, app *bootstrap.App) error {
				rows, err := app.Dashboard.TopPrograms(ctx)
				if err != nil {
					return err
				}
				printProgramEnrollment(cmd.OutOrStdout(), rows)
				return nil
			})
		},
	}
}

func newDashboardCollegeStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "college-stats",
		Short: "Show the full per-college statistics table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGuarded(cmd, navigation.DestDashboard, func(ctx context.Context, app *bootstrap.App) error {
				rows, err := app.Dashboard.CollegeStats(ctx)
				if err != nil {
					return err
				}

				table := make([][]string, 0, len(rows))
				for _, r := range rows {
					table = append(table, []string{
						r.CollegeCode, r.CollegeName,
						strconv.FormatInt(r.ProgramCount, 10),
						strconv.FormatInt(r.StudentCount, 10),
					})
				}
				renderTable(cmd.OutOrStdout(),
					[]string{"CODE", "NAME", "PROGRAMS", "STUDENTS"}, table)
				return nil
			})
		},
	}
}

func printTotals(out io.Writer, totals models.DashboardTotals) {
	fmt.Fprintf(out, "Students: %d  Programs: %d  Colleges: %d\n",
		totals.TotalStudents, totals.TotalPrograms, totals.TotalColleges)
}

func printCollegeEnrollment(out io.Writer, rows []models.CollegeEnrollment) {
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		table = append(table, []string{
			r.CollegeCode, r.CollegeName, strconv.FormatInt(r.StudentCount, 10),
		})
	}
	renderTable(out, []string{"CODE", "NAME", "STUDENTS"}, table)
}

func printProgramEnrollment(out io.Writer, rows []models.ProgramEnrollment) {
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		table = append(table, []string{
			r.ProgramCode, r.ProgramName, strconv.FormatInt(r.StudentCount, 10),
		})
	}
	renderTable(out, []string{"CODE", "NAME", "STUDENTS"}, table)
}
