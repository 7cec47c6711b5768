package http

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"workspace-admin/internal/apptest"
	"workspace-admin/internal/model"
	"workspace-admin/internal/product"
	"workspace-admin/pkg/backend"
	"workspace-admin/pkg/log"
)

type fakeUseCase struct {
	product.UseCase
	sold  product.SellInput
	stock product.StockInput
}

func (f *fakeUseCase) List(ctx context.Context, sc model.Scope, input product.ListInput) ([]model.Product, error) {
	return []model.Product{
		{ID: 1, Name: "Coffee", Price: 25, Stock: 40},
		{ID: 2, Name: "Water", Price: 10, Stock: 0},
		{ID: 3, Name: "Snack bar", Price: 15, Stock: 6},
	}, nil
}

func (f *fakeUseCase) Sell(ctx context.Context, sc model.Scope, input product.SellInput) (model.Product, error) {
	f.sold = input
	if input.Quantity > 40 {
		return model.Product{}, &backend.APIError{StatusCode: http.StatusBadRequest, Message: "Insufficient stock"}
	}
	return model.Product{ID: input.ProductID, Stock: 40 - input.Quantity}, nil
}

func (f *fakeUseCase) UpdateStock(ctx context.Context, sc model.Scope, input product.StockInput) (model.Product, error) {
	f.stock = input
	return model.Product{ID: input.ID, Stock: input.Stock}, nil
}

func setup(t *testing.T) (*apptest.Env, *fakeUseCase) {
	env := apptest.New(t)
	uc := &fakeUseCase{}
	h := New(log.NewNop(), uc, "EGP")
	RegisterRoutes(env.Router.Group("/api/v1"), h, env.MW)
	RegisterPageRoutes(env.Router.Group("/app"), h, env.MW)
	return env, uc
}

func TestProductRoutes(t *testing.T) {
	env, uc := setup(t)

	t.Run("Admin only", func(t *testing.T) {
		if w := env.Do(t, model.RoleUser, http.MethodGet, "/api/v1/products", ""); w.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", w.Code)
		}
	})

	t.Run("List carries stock status", func(t *testing.T) {
		w := env.Do(t, model.RoleAdmin, http.MethodGet, "/api/v1/products", "")
		body := w.Body.String()
		if w.Code != http.StatusOK || !strings.Contains(body, `"stock_status":"Out of Stock"`) || !strings.Contains(body, `"stock_status":"Low Stock"`) {
			t.Errorf("unexpected list %d %s", w.Code, body)
		}
	})

	t.Run("Sell", func(t *testing.T) {
		if w := env.Do(t, model.RoleAdmin, http.MethodPost, "/api/v1/products/sell", `{"product_id":1,"user_id":4,"quantity":0}`); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
		w := env.Do(t, model.RoleAdmin, http.MethodPost, "/api/v1/products/sell", `{"product_id":1,"user_id":4,"quantity":3}`)
		if w.Code != http.StatusOK || uc.sold.UserID != 4 || !strings.Contains(w.Body.String(), `"stock":37`) {
			t.Errorf("unexpected sale %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("Sell shows remote message", func(t *testing.T) {
		w := env.Do(t, model.RoleAdmin, http.MethodPost, "/api/v1/products/sell", `{"product_id":1,"user_id":4,"quantity":90}`)
		if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "Insufficient stock") {
			t.Errorf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("Stock accepts zero", func(t *testing.T) {
		w := env.Do(t, model.RoleAdmin, http.MethodPut, "/api/v1/products/2/stock", `{"stock":0}`)
		if w.Code != http.StatusOK || uc.stock.ID != 2 || uc.stock.Stock != 0 {
			t.Errorf("unexpected stock update %d %+v", w.Code, uc.stock)
		}
		if w := env.Do(t, model.RoleAdmin, http.MethodPut, "/api/v1/products/2/stock", `{}`); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 without stock, got %d", w.Code)
		}
	})

	t.Run("Page", func(t *testing.T) {
		w := env.Do(t, model.RoleAdmin, http.MethodGet, "/app/products", "")
		body := w.Body.String()
		if w.Code != http.StatusOK || !strings.Contains(body, "In Stock") || !strings.Contains(body, "EGP 25.00") {
			t.Errorf("unexpected page %d", w.Code)
		}
	})
}
