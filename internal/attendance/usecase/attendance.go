package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"workspace-admin/internal/attendance"
	"workspace-admin/internal/attendance/repository"
	"workspace-admin/internal/model"
	"workspace-admin/pkg/datemath"
	"workspace-admin/pkg/filter"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input attendance.ListInput) ([]attendance.RecordView, error) {
	if input.EmployeeID < 0 {
		return nil, attendance.ErrInvalidEmployee
	}

	opt := repository.ListOptions{EmployeeID: input.EmployeeID}
	var err error
	if strings.TrimSpace(input.From) != "" {
		if opt.From, err = uc.date(input.From); err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(input.To) != "" {
		if opt.To, err = uc.date(input.To); err != nil {
			return nil, err
		}
	}
	if opt.From != "" && opt.To != "" && opt.From > opt.To {
		return nil, attendance.ErrDateOrder
	}

	records, err := uc.repo.List(ctx, opt)
	if err != nil {
		return nil, err
	}
	records = filter.Slice(records, input.Query, func(r model.AttendanceRecord) []string {
		if r.Employee == nil {
			return nil
		}
		return []string{r.Employee.Name, r.Employee.Email}
	})
	return uc.views(records), nil
}

func (uc *implUseCase) CheckIn(ctx context.Context, sc model.Scope, input attendance.CheckInput) (model.AttendanceRecord, error) {
	employeeID, at, err := uc.check(sc, input)
	if err != nil {
		return model.AttendanceRecord{}, err
	}

	rec, err := uc.repo.CheckIn(ctx, repository.CheckInOptions{EmployeeID: employeeID, CheckIn: at})
	if err != nil {
		return model.AttendanceRecord{}, err
	}

	uc.l.Infof(ctx, "attendance.usecase.CheckIn: employee=%d at=%s", employeeID, at)
	return rec, nil
}

func (uc *implUseCase) CheckOut(ctx context.Context, sc model.Scope, input attendance.CheckInput) (model.AttendanceRecord, error) {
	employeeID, at, err := uc.check(sc, input)
	if err != nil {
		return model.AttendanceRecord{}, err
	}

	rec, err := uc.repo.CheckOut(ctx, repository.CheckOutOptions{EmployeeID: employeeID, CheckOut: at})
	if err != nil {
		return model.AttendanceRecord{}, err
	}

	uc.l.Infof(ctx, "attendance.usecase.CheckOut: employee=%d at=%s", employeeID, at)
	return rec, nil
}

func (uc *implUseCase) Employee(ctx context.Context, sc model.Scope, employeeID int) ([]attendance.RecordView, error) {
	if employeeID <= 0 {
		return nil, attendance.ErrInvalidEmployee
	}
	records, err := uc.repo.Employee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return uc.views(records), nil
}

func (uc *implUseCase) Report(ctx context.Context, sc model.Scope) (model.AttendanceReport, error) {
	return uc.repo.Report(ctx)
}

func (uc *implUseCase) Today() string {
	return uc.cal.Today()
}

// check resolves who is checked and when. A missing employee means the
// caller; only admins may act for someone else.
func (uc *implUseCase) check(sc model.Scope, input attendance.CheckInput) (int, string, error) {
	employeeID := input.EmployeeID
	switch {
	case employeeID < 0:
		return 0, "", attendance.ErrInvalidEmployee
	case employeeID == 0:
		employeeID = sc.UserID
	case employeeID != sc.UserID && !sc.IsAdmin():
		return 0, "", attendance.ErrNotSelf
	}
	if employeeID <= 0 {
		return 0, "", attendance.ErrInvalidEmployee
	}

	at := uc.cal.Now()
	if strings.TrimSpace(input.At) != "" {
		t, err := uc.cal.ParseLocal(input.At)
		if err != nil {
			return 0, "", fmt.Errorf("%w: %v", attendance.ErrInvalidTime, err)
		}
		at = t
	}
	return employeeID, at.UTC().Format(time.RFC3339), nil
}

func (uc *implUseCase) date(expr string) (string, error) {
	d, err := uc.cal.Resolve(expr)
	if err != nil {
		return "", fmt.Errorf("%w: %v", attendance.ErrInvalidDate, err)
	}
	return d, nil
}

func (uc *implUseCase) views(records []model.AttendanceRecord) []attendance.RecordView {
	today := uc.cal.Today()
	out := make([]attendance.RecordView, 0, len(records))
	for _, r := range records {
		out = append(out, attendance.RecordView{
			AttendanceRecord: r,
			Hours:            datemath.HoursWorked(r.CheckIn, r.CheckOut),
			Status:           datemath.AttendanceStatus(r.CheckOut),
			Today:            uc.cal.SameDay(r.CheckIn, today),
		})
	}
	return out
}
