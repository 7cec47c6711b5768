package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"workspace-admin/internal/booking"
	"workspace-admin/internal/booking/repository"
	"workspace-admin/internal/model"
)

func (uc *implUseCase) Slots(ctx context.Context, sc model.Scope, input booking.SlotsInput) ([]booking.SlotView, error) {
	date, err := uc.date(input.Date)
	if err != nil {
		return nil, err
	}
	slots, err := uc.cal.TimeSlots(date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", booking.ErrInvalidTime, err)
	}

	out := make([]booking.SlotView, len(slots))
	for i, s := range slots {
		out[i] = booking.SlotView{Label: s.Label, StartTime: wire(s.Start), EndTime: wire(s.End), Available: true}
	}
	if input.WorkspaceID <= 0 {
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(slotCheckWorkers)
	for i := range out {
		g.Go(func() error {
			avail, err := uc.repo.Availability(gctx, repository.AvailabilityOptions{
				WorkspaceID: input.WorkspaceID,
				StartTime:   out[i].StartTime,
				EndTime:     out[i].EndTime,
			})
			if err != nil {
				return err
			}
			out[i].Available = avail.Available
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
