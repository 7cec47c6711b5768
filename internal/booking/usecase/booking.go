package usecase

import (
	"context"
	"fmt"
	"strings"

	"workspace-admin/internal/booking"
	"workspace-admin/internal/booking/repository"
	"workspace-admin/internal/model"
	"workspace-admin/internal/transaction"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input booking.ListInput) (booking.ListOutput, error) {
	if input.Status != "" && !input.Status.Valid() {
		return booking.ListOutput{}, booking.ErrInvalidStatus
	}

	opt := repository.ListOptions{
		UserID:      input.UserID,
		WorkspaceID: input.WorkspaceID,
		Status:      input.Status,
		Page:        input.Page,
		PerPage:     input.PerPage,
	}
	if !sc.IsAdmin() {
		opt.UserID = sc.UserID
	}
	if opt.Page < 1 {
		opt.Page = 1
	}
	if opt.PerPage <= 0 {
		opt.PerPage = uc.perPage
	}

	var err error
	if strings.TrimSpace(input.From) != "" {
		if opt.From, err = uc.date(input.From); err != nil {
			return booking.ListOutput{}, err
		}
	}
	if strings.TrimSpace(input.To) != "" {
		if opt.To, err = uc.date(input.To); err != nil {
			return booking.ListOutput{}, err
		}
	}

	bookings, totalPages, err := uc.repo.List(ctx, opt)
	if err != nil {
		return booking.ListOutput{}, err
	}
	if totalPages < 1 {
		totalPages = 1
	}

	return booking.ListOutput{
		Bookings:   bookings,
		Pagination: model.Pagination{Page: opt.Page, PerPage: opt.PerPage, TotalPages: totalPages},
	}, nil
}

// Create checks availability, records the deposit as a payment and then
// creates the booking.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input booking.CreateInput) (model.Booking, error) {
	if input.WorkspaceID <= 0 {
		return model.Booking{}, booking.ErrInvalidWorkspace
	}
	userID := input.UserID
	if !sc.IsAdmin() || userID <= 0 {
		userID = sc.UserID
	}
	if userID <= 0 {
		return model.Booking{}, booking.ErrInvalidUser
	}
	if input.Deposit < 0 || input.TotalPrice < 0 {
		return model.Booking{}, booking.ErrInvalidAmount
	}

	start, end, err := uc.interval(input.Interval)
	if err != nil {
		return model.Booking{}, err
	}

	avail, err := uc.repo.Availability(ctx, repository.AvailabilityOptions{
		WorkspaceID: input.WorkspaceID,
		StartTime:   wire(start),
		EndTime:     wire(end),
	})
	if err != nil {
		return model.Booking{}, err
	}
	if !avail.Available {
		return model.Booking{}, &booking.UnavailableError{Message: avail.Message}
	}

	if input.Deposit > 0 {
		if err := uc.recordDeposit(ctx, sc, input.WorkspaceID, userID, input.Deposit); err != nil {
			return model.Booking{}, err
		}
	}

	b, err := uc.repo.Create(ctx, repository.CreateOptions{
		WorkspaceID: input.WorkspaceID,
		UserID:      userID,
		StartTime:   wire(start),
		EndTime:     wire(end),
		Deposit:     input.Deposit,
		TotalPrice:  input.TotalPrice,
	})
	if err != nil {
		return model.Booking{}, err
	}

	uc.l.Infof(ctx, "booking.usecase.Create: workspace %d for user %d from %s", input.WorkspaceID, userID, wire(start))
	return b, nil
}

func (uc *implUseCase) recordDeposit(ctx context.Context, sc model.Scope, workspaceID, userID int, amount float64) error {
	ws, err := uc.workspaces.Detail(ctx, sc, workspaceID)
	if err != nil {
		return err
	}
	_, err = uc.transactions.Create(ctx, sc, transaction.CreateInput{
		UserID:      userID,
		Type:        model.TransactionPayment,
		Amount:      amount,
		Description: fmt.Sprintf("Deposit for %s booking", ws.Name),
	})
	return err
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int) (model.Booking, error) {
	if id <= 0 {
		return model.Booking{}, booking.ErrInvalidID
	}
	b, err := uc.repo.Detail(ctx, id)
	if err != nil {
		return model.Booking{}, err
	}
	if !sc.IsAdmin() && b.UserID != sc.UserID {
		return model.Booking{}, booking.ErrNotOwner
	}
	return b, nil
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input booking.UpdateInput) (model.Booking, error) {
	current, err := uc.Detail(ctx, sc, input.ID)
	if err != nil {
		return model.Booking{}, err
	}
	if (input.Deposit != nil && *input.Deposit < 0) || (input.TotalPrice != nil && *input.TotalPrice < 0) {
		return model.Booking{}, booking.ErrInvalidAmount
	}

	opt := repository.UpdateOptions{
		WorkspaceID: input.WorkspaceID,
		Deposit:     input.Deposit,
		TotalPrice:  input.TotalPrice,
	}
	if uc.hasInterval(input.Interval) {
		start, end, err := uc.interval(input.Interval)
		if err != nil {
			return model.Booking{}, err
		}
		opt.StartTime, opt.EndTime = wire(start), wire(end)
	}

	b, err := uc.repo.Update(ctx, current.ID, opt)
	if err != nil {
		return model.Booking{}, err
	}
	if b.Status == model.BookingConfirmed {
		uc.mirrorConfirmed(ctx, b)
	}
	return b, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id int) error {
	if _, err := uc.Detail(ctx, sc, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.mirrorCancelled(ctx, id)
	return nil
}

func (uc *implUseCase) UpdateStatus(ctx context.Context, sc model.Scope, id int, status model.BookingStatus) (model.Booking, error) {
	if !status.Valid() {
		return model.Booking{}, booking.ErrInvalidStatus
	}
	if _, err := uc.Detail(ctx, sc, id); err != nil {
		return model.Booking{}, err
	}

	b, err := uc.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return model.Booking{}, err
	}
	if b.ID == 0 {
		b.ID = id
	}
	if b.Status == "" {
		b.Status = status
	}

	switch status {
	case model.BookingConfirmed:
		uc.mirrorConfirmed(ctx, b)
	case model.BookingCancelled:
		uc.mirrorCancelled(ctx, id)
	}

	uc.l.Infof(ctx, "booking.usecase.UpdateStatus: booking %d is %s", id, status)
	return b, nil
}

func (uc *implUseCase) Availability(ctx context.Context, sc model.Scope, input booking.AvailabilityInput) (model.Availability, error) {
	if input.WorkspaceID <= 0 {
		return model.Availability{}, booking.ErrInvalidWorkspace
	}
	start, end, err := uc.interval(input.Interval)
	if err != nil {
		return model.Availability{}, err
	}

	avail, err := uc.repo.Availability(ctx, repository.AvailabilityOptions{
		WorkspaceID: input.WorkspaceID,
		StartTime:   wire(start),
		EndTime:     wire(end),
	})
	if err != nil {
		return model.Availability{}, err
	}
	if !avail.Available && avail.Message == "" {
		avail.Message = "The workspace is not available for the selected time slot."
	}
	return avail, nil
}

func (uc *implUseCase) date(expr string) (string, error) {
	d, err := uc.cal.Resolve(expr)
	if err != nil {
		return "", fmt.Errorf("%w: %v", booking.ErrInvalidTime, err)
	}
	return d, nil
}

// Mirror failures never fail the request; the remote API stays the source of
// truth.
func (uc *implUseCase) mirrorConfirmed(ctx context.Context, b model.Booking) {
	if uc.mirror == nil {
		return
	}
	if err := uc.mirror.Confirmed(ctx, b); err != nil {
		uc.l.Warnf(ctx, "booking.usecase.mirror: booking %d: %v", b.ID, err)
	}
}

func (uc *implUseCase) mirrorCancelled(ctx context.Context, id int) {
	if uc.mirror == nil {
		return
	}
	if err := uc.mirror.Cancelled(ctx, id); err != nil {
		uc.l.Warnf(ctx, "booking.usecase.mirror: booking %d: %v", id, err)
	}
}
