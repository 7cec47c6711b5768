package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"workspace-admin/internal/model"
	"workspace-admin/internal/subscriber/repository"
)

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Subscriber, int, error) {
	q := url.Values{}
	if opt.Page > 0 {
		q.Set("page", strconv.Itoa(opt.Page))
	}
	if opt.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(opt.PerPage))
	}
	if opt.Query != "" {
		q.Set("q", opt.Query)
	}

	var subs []model.Subscriber
	totalPages, err := r.client.GetList(ctx, "/subscribers", q, "subscribers", &subs)
	if err != nil {
		return nil, 0, fmt.Errorf("subscribers.List: %w", err)
	}
	return subs, totalPages, nil
}

func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.Subscriber, error) {
	var out model.Subscriber
	if err := r.client.Post(ctx, "/subscribers", opt, &out); err != nil {
		return model.Subscriber{}, fmt.Errorf("subscribers.Create: %w", err)
	}
	return out, nil
}

func (r *implRepository) Detail(ctx context.Context, id int) (model.Subscriber, error) {
	var out model.Subscriber
	if err := r.client.Get(ctx, subscriberPath(id), nil, &out); err != nil {
		return model.Subscriber{}, fmt.Errorf("subscribers.Detail: %w", err)
	}
	return out, nil
}

func (r *implRepository) Update(ctx context.Context, id int, opt repository.UpdateOptions) (model.Subscriber, error) {
	var out model.Subscriber
	if err := r.client.Put(ctx, subscriberPath(id), opt, &out); err != nil {
		return model.Subscriber{}, fmt.Errorf("subscribers.Update: %w", err)
	}
	return out, nil
}

func (r *implRepository) Delete(ctx context.Context, id int) error {
	if err := r.client.Delete(ctx, subscriberPath(id), nil); err != nil {
		return fmt.Errorf("subscribers.Delete: %w", err)
	}
	return nil
}

func (r *implRepository) ChangePlan(ctx context.Context, id int, opt repository.ChangePlanOptions) (model.Subscriber, error) {
	var out model.Subscriber
	if err := r.client.Put(ctx, subscriberPath(id)+"/plan", opt, &out); err != nil {
		return model.Subscriber{}, fmt.Errorf("subscribers.ChangePlan: %w", err)
	}
	return out, nil
}

func subscriberPath(id int) string {
	return "/subscribers/" + strconv.Itoa(id)
}
