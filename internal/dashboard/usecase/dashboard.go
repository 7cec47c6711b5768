package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"workspace-admin/internal/dashboard"
	"workspace-admin/internal/dashboard/repository"
	"workspace-admin/internal/model"
	"workspace-admin/pkg/datemath"
)

func (uc *implUseCase) Summary(ctx context.Context, sc model.Scope) (model.DashboardSummary, error) {
	return uc.repo.Summary(ctx)
}

// Overview loads the summary and, for admins, this month's usage in
// parallel. A usage failure is logged and leaves Usage nil.
func (uc *implUseCase) Overview(ctx context.Context, sc model.Scope) (dashboard.Overview, error) {
	var out dashboard.Overview
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s, err := uc.repo.Summary(gctx)
		if err != nil {
			return err
		}
		out.Summary = s
		return nil
	})

	if sc.IsAdmin() {
		g.Go(func() error {
			usage, err := uc.repo.Usage(gctx, repository.UsageOptions{From: uc.cal.MonthStart(), To: uc.cal.Today()})
			if err != nil {
				uc.l.Warnf(ctx, "dashboard.usecase.Overview: usage: %v", err)
				return nil
			}
			out.Usage = &usage
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return dashboard.Overview{}, err
	}
	return out, nil
}

// Financial defaults the range to the current month grouped by day and
// returns the range actually requested.
func (uc *implUseCase) Financial(ctx context.Context, sc model.Scope, rng model.ReportRange) (model.FinancialReport, model.ReportRange, error) {
	groupBy := strings.ToLower(strings.TrimSpace(rng.GroupBy))
	switch groupBy {
	case "":
		groupBy = "day"
	case "day", "month":
	default:
		return model.FinancialReport{}, rng, dashboard.ErrInvalidGroupBy
	}

	from, to, err := uc.resolveRange(rng.From, rng.To)
	if err != nil {
		return model.FinancialReport{}, rng, err
	}
	resolved := model.ReportRange{From: from, To: to, GroupBy: groupBy}

	rep, err := uc.repo.Financial(ctx, repository.FinancialOptions{From: from, To: to, GroupBy: groupBy})
	if err != nil {
		return model.FinancialReport{}, resolved, err
	}
	return rep, resolved, nil
}

func (uc *implUseCase) Usage(ctx context.Context, sc model.Scope, input dashboard.UsageInput) (model.UsageReport, error) {
	if input.WorkspaceID < 0 {
		return model.UsageReport{}, dashboard.ErrInvalidWorkspace
	}
	from, to, err := uc.resolveRange(input.From, input.To)
	if err != nil {
		return model.UsageReport{}, err
	}
	return uc.repo.Usage(ctx, repository.UsageOptions{WorkspaceID: input.WorkspaceID, From: from, To: to})
}

func (uc *implUseCase) resolveRange(from, to string) (string, string, error) {
	from, to, err := uc.cal.ResolveRange(from, to)
	if err != nil {
		if errors.Is(err, datemath.ErrRangeOrder) {
			return "", "", dashboard.ErrDateOrder
		}
		return "", "", fmt.Errorf("%w: %v", dashboard.ErrInvalidDate, err)
	}
	return from, to, nil
}
