package usecase

import (
	"context"
	"fmt"
	"strings"

	"workspace-admin/internal/model"
	"workspace-admin/internal/subscriber"
	"workspace-admin/internal/subscriber/repository"
	"workspace-admin/pkg/datemath"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input subscriber.ListInput) (subscriber.ListOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	perPage := input.PerPage
	if perPage <= 0 {
		perPage = uc.perPage
	}

	subs, totalPages, err := uc.repo.List(ctx, repository.ListOptions{
		Page:    page,
		PerPage: perPage,
		Query:   strings.TrimSpace(input.Query),
	})
	if err != nil {
		return subscriber.ListOutput{}, err
	}
	if totalPages < 1 {
		totalPages = 1
	}

	return subscriber.ListOutput{
		Subscribers: subs,
		Pagination:  model.Pagination{Page: page, PerPage: perPage, TotalPages: totalPages},
	}, nil
}

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input subscriber.CreateInput) (model.Subscriber, error) {
	if input.UserID <= 0 {
		return model.Subscriber{}, subscriber.ErrInvalidUser
	}
	if input.PlanID <= 0 {
		return model.Subscriber{}, subscriber.ErrInvalidPlan
	}
	status, err := parseStatus(input.Status, model.SubscriberActive)
	if err != nil {
		return model.Subscriber{}, err
	}

	start, end, err := uc.period(ctx, sc, input.PlanID, input.StartDate, input.EndDate)
	if err != nil {
		return model.Subscriber{}, err
	}

	s, err := uc.repo.Create(ctx, repository.CreateOptions{
		UserID:    input.UserID,
		PlanID:    input.PlanID,
		StartDate: start,
		EndDate:   end,
		Status:    status,
	})
	if err != nil {
		return model.Subscriber{}, err
	}

	uc.l.Infof(ctx, "subscriber.usecase.Create: user %d on plan %d until %s", input.UserID, input.PlanID, end)
	return s, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int) (model.Subscriber, error) {
	if id <= 0 {
		return model.Subscriber{}, subscriber.ErrInvalidID
	}
	return uc.repo.Detail(ctx, id)
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input subscriber.UpdateInput) (model.Subscriber, error) {
	if input.ID <= 0 {
		return model.Subscriber{}, subscriber.ErrInvalidID
	}
	status, err := parseStatus(input.Status, "")
	if err != nil {
		return model.Subscriber{}, err
	}

	opt := repository.UpdateOptions{Status: status}
	if input.StartDate != "" {
		if opt.StartDate, err = uc.date(input.StartDate); err != nil {
			return model.Subscriber{}, err
		}
	}
	if input.EndDate != "" {
		if opt.EndDate, err = uc.date(input.EndDate); err != nil {
			return model.Subscriber{}, err
		}
	}
	if opt.StartDate != "" && opt.EndDate != "" && opt.EndDate < opt.StartDate {
		return model.Subscriber{}, subscriber.ErrDateOrder
	}

	return uc.repo.Update(ctx, input.ID, opt)
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id int) error {
	if id <= 0 {
		return subscriber.ErrInvalidID
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *implUseCase) ChangePlan(ctx context.Context, sc model.Scope, input subscriber.ChangePlanInput) (model.Subscriber, error) {
	if input.ID <= 0 {
		return model.Subscriber{}, subscriber.ErrInvalidID
	}
	if input.PlanID <= 0 {
		return model.Subscriber{}, subscriber.ErrInvalidPlan
	}

	start, end, err := uc.period(ctx, sc, input.PlanID, input.StartDate, input.EndDate)
	if err != nil {
		return model.Subscriber{}, err
	}

	return uc.repo.ChangePlan(ctx, input.ID, repository.ChangePlanOptions{
		PlanID:    input.PlanID,
		StartDate: start,
		EndDate:   end,
	})
}

// period resolves the subscription dates. A missing start is today and a
// missing end is start plus the plan duration.
func (uc *implUseCase) period(ctx context.Context, sc model.Scope, planID int, startExpr, endExpr string) (string, string, error) {
	start, err := uc.date(startExpr)
	if err != nil {
		return "", "", err
	}

	if strings.TrimSpace(endExpr) != "" {
		end, err := uc.date(endExpr)
		if err != nil {
			return "", "", err
		}
		if end < start {
			return "", "", subscriber.ErrDateOrder
		}
		return start, end, nil
	}

	p, err := uc.plans.Get(ctx, sc, planID)
	if err != nil {
		return "", "", fmt.Errorf("plan %d: %w", planID, err)
	}
	end, err := datemath.EndDate(start, p.DurationDays)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", subscriber.ErrInvalidDate, err)
	}
	return start, end, nil
}

// date normalises a form date. Timestamps are cut to their date part and
// relative expressions such as "tomorrow" are resolved.
func (uc *implUseCase) date(expr string) (string, error) {
	expr = strings.TrimSpace(expr)
	if len(expr) > len(datemath.DateLayout) && expr[len(datemath.DateLayout)] == 'T' {
		expr = expr[:len(datemath.DateLayout)]
	}
	d, err := uc.cal.Resolve(expr)
	if err != nil {
		return "", fmt.Errorf("%w: %v", subscriber.ErrInvalidDate, err)
	}
	return d, nil
}

func parseStatus(s model.SubscriberStatus, def model.SubscriberStatus) (model.SubscriberStatus, error) {
	s = model.SubscriberStatus(strings.ToLower(strings.TrimSpace(string(s))))
	switch s {
	case "":
		return def, nil
	case model.SubscriberActive, model.SubscriberExpired, model.SubscriberSuspended:
		return s, nil
	default:
		return "", subscriber.ErrInvalidStatus
	}
}
