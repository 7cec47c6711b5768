package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"workspace-admin/internal/attendance"
	attendanceRepo "workspace-admin/internal/attendance/repository/api"
	attendanceUC "workspace-admin/internal/attendance/usecase"
	"workspace-admin/internal/model"
	"workspace-admin/internal/view"
)

func (c *cli) attendance() attendance.UseCase {
	return attendanceUC.New(c.l, attendanceRepo.New(c.client, c.l), c.calendar)
}

func (c *cli) attendanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attendance",
		Short: "Staff attendance",
	}
	cmd.AddCommand(
		c.checkCmd("check-in", "Record a check-in", "Checked in",
			func(uc attendance.UseCase) checkFunc { return uc.CheckIn }),
		c.checkCmd("check-out", "Record a check-out", "Checked out",
			func(uc attendance.UseCase) checkFunc { return uc.CheckOut }),
	)
	return cmd
}

type checkFunc func(ctx context.Context, sc model.Scope, input attendance.CheckInput) (model.AttendanceRecord, error)

func (c *cli) checkCmd(use, short, done string, pick func(attendance.UseCase) checkFunc) *cobra.Command {
	var input attendance.CheckInput
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, sc, err := c.signedIn(cmd.Context())
			if err != nil {
				return err
			}
			rec, err := pick(c.attendance())(ctx, sc, input)
			switch {
			case errors.Is(err, attendance.ErrNotSelf):
				return errors.New("only admins can record attendance for other employees")
			case errors.Is(err, attendance.ErrInvalidTime):
				return errors.New("invalid --at time")
			case err != nil:
				return describe(err, "Failed to record attendance")
			}

			at := rec.CheckIn
			if use == "check-out" {
				at = rec.CheckOut
			}
			printf(cmd.OutOrStdout(), "%s at %s\n", done, view.Clock(at))
			if rec.HoursWorked != nil {
				printf(cmd.OutOrStdout(), "Hours worked: %.2f\n", *rec.HoursWorked)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&input.EmployeeID, "employee", 0, "employee id (default: yourself)")
	cmd.Flags().StringVar(&input.At, "at", "", "time of the event (default: now)")
	return cmd
}
