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

// NewStudentCmd creates the student command group.
func NewStudentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "student",
		Short: "Manage student records",
	}

	cmd.AddCommand(newStudentListCmd())
	cmd.AddCommand(newStudentAddCmd())
	cmd.AddCommand(newStudentUpdateCmd())
	cmd.AddCommand(newStudentDeleteCmd())
	cmd.AddCommand(newStudentPerProgramCmd())

	return cmd
}

// studentFlags binds the shared add/update flag set onto cmd.
func studentFlags(cmd *cobra.Command, in *validation.StudentInput, picturePath *string) {
	cmd.Flags().StringVar(&in.IDNumber, "id", "", "student ID number (XXXX-XXXX or 8 digits)")
	cmd.Flags().StringVar(&in.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&in.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&in.YearLevel, "year-level", "", "year level")
	cmd.Flags().StringVar(&in.Gender, "gender", "", "gender")
	cmd.Flags().StringVar(&in.ProgramCode, "program", "", "program code reference")
	cmd.Flags().StringVar(picturePath, "picture", "", "path to a profile picture file")
}

func newStudentListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all students",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGuarded(cmd, navigation.DestStudents, func(ctx context.Context, app *bootstrap.App) error {
				students, err := app.Students.List(ctx)
				if err != nil {
					return err
				}

				rows := make([][]string, 0, len(students))
				for _, st := range students {
					rows = append(rows, []string{
						st.IDNumber, st.LastName, st.FirstName,
						st.YearLevel, st.Gender, st.ProgramCode,
					})
				}
				renderTable(cmd.OutOrStdout(),
					[]string{"ID NUMBER", "LAST NAME", "FIRST NAME", "YEAR", "GENDER", "PROGRAM"},
					rows)
				return nil
			})
		},
	}
}

func newStudentAddCmd() *cobra.Command {
	var in validation.StudentInput
	var picturePath string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new student",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGuarded(cmd, navigation.DestStudents, func(ctx context.Context, app *bootstrap.App) error {
				if picturePath != "" {
					picture, err := validation.LoadPicture(picturePath)
					if err != nil {
						return err
					}
					in.Picture = picture
				}

				created, err := app.Students.Create(ctx, in)
				if err != nil {
					return err
				}
				app.Notifier.Success(fmt.Sprintf("Student %s added", created.IDNumber))
				return nil
			})
		},
	}

	studentFlags(cmd, &in, &picturePath)
	return cmd
}

func newStudentUpdateCmd() *cobra.Command {
	var in validation.StudentInput
	var picturePath string

	cmd := &cobra.Command{
		Use:   "update <id-number>",
		Short: "Update an existing student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGuarded(cmd, navigation.DestStudents, func(ctx context.Context, app *bootstrap.App) error {
				if picturePath != "" {
					picture, err := validation.LoadPicture(picturePath)
					if err != nil {
						return err
					}
					in.Picture = picture
				}

				updated, err := app.Students.Update(ctx, args[0], in)
				if err != nil {
					return err
				}
				app.Notifier.Success(fmt.Sprintf("Student %s updated", updated.IDNumber))
				return nil
			})
		},
	}

	studentFlags(cmd, &in, &picturePath)
	return cmd
}

func newStudentDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id-number>",
		Short: "Delete a student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGuarded(cmd, navigation.DestStudents, func(ctx context.Context, app *bootstrap.App) error {
				deleted, err := app.Students.Delete(ctx, args[0])
				if err != nil {
					return err
				}
				app.Notifier.Info(fmt.Sprintf("Student %s deleted", deleted.IDNumber))
				return nil
			})
		},
	}
}

func newStudentPerProgramCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "per-program",
		Short: "Show enrollment counts per program",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGuarded(cmd, navigation.DestStudents, func(ctx context.Context, app *bootstrap.App) error {
				counts, err := app.Students.PerProgram(ctx)
				if err != nil {
					return err
				}

				rows := make([][]string, 0, len(counts))
				for _, c := range counts {
					rows = append(rows, []string{
						c.ProgramCode, c.ProgramName, strconv.FormatInt(c.StudentCount, 10),
					})
				}
				renderTable(cmd.OutOrStdout(),
					[]string{"PROGRAM", "NAME", "STUDENTS"}, rows)
				return nil
			})
		},
	}
}
