package usecase

import (
	"context"
	"errors"
	"testing"

	"workspace-admin/internal/model"
	"workspace-admin/internal/product"
	"workspace-admin/internal/product/repository"
	"workspace-admin/pkg/log"
)

type mockRepo struct {
	products  []model.Product
	detailErr error
	sold      *repository.SellOptions
	consumed  *repository.ConsumeOptions
	updated   *repository.UpdateOptions
	stock     *repository.StockOptions
}

func (m *mockRepo) List(ctx context.Context) ([]model.Product, error) {
	return m.products, nil
}

func (m *mockRepo) Create(ctx context.Context, opt repository.CreateOptions) (model.Product, error) {
	return model.Product{ID: 9, Name: opt.Name, Price: opt.Price, Stock: opt.Stock}, nil
}

func (m *mockRepo) Detail(ctx context.Context, id int) (model.Product, error) {
	if m.detailErr != nil {
		return model.Product{}, m.detailErr
	}
	return model.Product{ID: id, Name: "Coffee", Stock: 38}, nil
}

func (m *mockRepo) Update(ctx context.Context, id int, opt repository.UpdateOptions) (model.Product, error) {
	m.updated = &opt
	return model.Product{ID: id}, nil
}

func (m *mockRepo) Delete(ctx context.Context, id int) error {
	return nil
}

func (m *mockRepo) Sell(ctx context.Context, opt repository.SellOptions) error {
	m.sold = &opt
	return nil
}

func (m *mockRepo) Consume(ctx context.Context, opt repository.ConsumeOptions) error {
	m.consumed = &opt
	return nil
}

func (m *mockRepo) UpdateStock(ctx context.Context, id int, opt repository.StockOptions) (model.Product, error) {
	m.stock = &opt
	return model.Product{ID: id, Stock: opt.Stock}, nil
}

func TestProductUseCase(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{products: []model.Product{
		{ID: 1, Name: "Coffee"},
		{ID: 2, Name: "Iced coffee"},
		{ID: 3, Name: "Water"},
	}}
	uc := New(log.NewNop(), repo)

	t.Run("List filters by name", func(t *testing.T) {
		out, err := uc.List(ctx, model.Scope{}, product.ListInput{Query: "COFFEE"})
		if err != nil || len(out) != 2 {
			t.Errorf("unexpected result %+v %v", out, err)
		}
	})

	t.Run("Create validates", func(t *testing.T) {
		if _, err := uc.Create(ctx, model.Scope{}, product.CreateInput{Name: "  "}); !errors.Is(err, product.ErrMissingName) {
			t.Errorf("expected ErrMissingName, got %v", err)
		}
		if _, err := uc.Create(ctx, model.Scope{}, product.CreateInput{Name: "Tea", Price: -1}); !errors.Is(err, product.ErrInvalidPrice) {
			t.Errorf("expected ErrInvalidPrice, got %v", err)
		}
		if _, err := uc.Create(ctx, model.Scope{}, product.CreateInput{Name: "Tea", Stock: -1}); !errors.Is(err, product.ErrInvalidStock) {
			t.Errorf("expected ErrInvalidStock, got %v", err)
		}
		p, err := uc.Create(ctx, model.Scope{}, product.CreateInput{Name: " Tea ", Price: 15, Stock: 0})
		if err != nil || p.Name != "Tea" {
			t.Errorf("unexpected create %+v %v", p, err)
		}
	})

	t.Run("Sell returns fresh stock", func(t *testing.T) {
		if _, err := uc.Sell(ctx, model.Scope{}, product.SellInput{ProductID: 1, Quantity: 2}); !errors.Is(err, product.ErrInvalidUser) {
			t.Errorf("expected ErrInvalidUser, got %v", err)
		}
		if _, err := uc.Sell(ctx, model.Scope{}, product.SellInput{ProductID: 1, UserID: 4}); !errors.Is(err, product.ErrInvalidQuantity) {
			t.Errorf("expected ErrInvalidQuantity, got %v", err)
		}
		p, err := uc.Sell(ctx, model.Scope{}, product.SellInput{ProductID: 1, UserID: 4, Quantity: 2})
		if err != nil || p.Stock != 38 || repo.sold.Quantity != 2 {
			t.Errorf("unexpected sale %+v %v", p, err)
		}
	})

	t.Run("Consume survives failed reload", func(t *testing.T) {
		if _, err := uc.Consume(ctx, model.Scope{}, product.ConsumeInput{ProductID: 1, Quantity: 1}); !errors.Is(err, product.ErrInvalidSubscriber) {
			t.Errorf("expected ErrInvalidSubscriber, got %v", err)
		}
		repo.detailErr = errors.New("boom")
		defer func() { repo.detailErr = nil }()
		p, err := uc.Consume(ctx, model.Scope{}, product.ConsumeInput{ProductID: 1, SubscriberID: 3, Quantity: 1})
		if err != nil || p.ID != 1 || repo.consumed.SubscriberID != 3 {
			t.Errorf("unexpected consume %+v %v", p, err)
		}
	})

	t.Run("Stock", func(t *testing.T) {
		if _, err := uc.UpdateStock(ctx, model.Scope{}, product.StockInput{ID: 1, Stock: -3}); !errors.Is(err, product.ErrInvalidStock) {
			t.Errorf("expected ErrInvalidStock, got %v", err)
		}
		p, err := uc.UpdateStock(ctx, model.Scope{}, product.StockInput{ID: 1, Stock: 0})
		if err != nil || p.Stock != 0 || repo.stock == nil {
			t.Errorf("unexpected stock %+v %v", p, err)
		}
	})

	t.Run("Update", func(t *testing.T) {
		price := -2.0
		if _, err := uc.Update(ctx, model.Scope{}, product.UpdateInput{ID: 1, Price: &price}); !errors.Is(err, product.ErrInvalidPrice) {
			t.Errorf("expected ErrInvalidPrice, got %v", err)
		}
		if _, err := uc.Update(ctx, model.Scope{}, product.UpdateInput{ID: 1, Name: " Latte "}); err != nil || repo.updated.Name != "Latte" {
			t.Errorf("unexpected update %+v %v", repo.updated, err)
		}
	})

	t.Run("Bad ids", func(t *testing.T) {
		if err := uc.Delete(ctx, model.Scope{}, 0); !errors.Is(err, product.ErrInvalidID) {
			t.Errorf("expected ErrInvalidID, got %v", err)
		}
		if _, err := uc.Detail(ctx, model.Scope{}, 0); !errors.Is(err, product.ErrInvalidID) {
			t.Errorf("expected ErrInvalidID, got %v", err)
		}
	})
}
