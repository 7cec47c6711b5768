package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"workspace-admin/internal/booking"
	"workspace-admin/internal/booking/repository"
	"workspace-admin/internal/model"
	"workspace-admin/internal/transaction"
	"workspace-admin/internal/workspace"
	"workspace-admin/pkg/datemath"
	"workspace-admin/pkg/log"
)

type mockRepo struct {
	mu        sync.Mutex
	bookings  map[int]model.Booking
	listOpt   repository.ListOptions
	created   *repository.CreateOptions
	updated   *repository.UpdateOptions
	checks    []repository.AvailabilityOptions
	busyStart string
	deleted   int
}

func newRepo() *mockRepo {
	return &mockRepo{bookings: map[int]model.Booking{
		1: {ID: 1, UserID: 7, Status: model.BookingPending, StartTime: "2024-06-21T09:00:00Z", EndTime: "2024-06-21T10:00:00Z"},
		2: {ID: 2, UserID: 8, Status: model.BookingPending},
	}}
}

func (m *mockRepo) List(ctx context.Context, opt repository.ListOptions) ([]model.Booking, int, error) {
	m.listOpt = opt
	return []model.Booking{m.bookings[1]}, 3, nil
}

func (m *mockRepo) Create(ctx context.Context, opt repository.CreateOptions) (model.Booking, error) {
	m.created = &opt
	return model.Booking{ID: 9, UserID: opt.UserID, StartTime: opt.StartTime, EndTime: opt.EndTime, Status: model.BookingPending}, nil
}

func (m *mockRepo) Detail(ctx context.Context, id int) (model.Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return model.Booking{}, errors.New("bookings.Detail: not found")
	}
	return b, nil
}

func (m *mockRepo) Update(ctx context.Context, id int, opt repository.UpdateOptions) (model.Booking, error) {
	m.updated = &opt
	b := m.bookings[id]
	return b, nil
}

func (m *mockRepo) Delete(ctx context.Context, id int) error {
	m.deleted = id
	return nil
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id int, status model.BookingStatus) (model.Booking, error) {
	b := m.bookings[id]
	b.Status = status
	return b, nil
}

func (m *mockRepo) Availability(ctx context.Context, opt repository.AvailabilityOptions) (model.Availability, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checks = append(m.checks, opt)
	if opt.StartTime == m.busyStart {
		return model.Availability{Available: false, Message: "Already booked"}, nil
	}
	return model.Availability{Available: true}, nil
}

type fakeWorkspaces struct {
	workspace.UseCase
}

func (f *fakeWorkspaces) Detail(ctx context.Context, sc model.Scope, id int) (model.Workspace, error) {
	return model.Workspace{ID: id, Name: "Board Room"}, nil
}

type fakeTransactions struct {
	transaction.UseCase
	created []transaction.CreateInput
	err     error
}

func (f *fakeTransactions) Create(ctx context.Context, sc model.Scope, input transaction.CreateInput) (model.Transaction, error) {
	if f.err != nil {
		return model.Transaction{}, f.err
	}
	f.created = append(f.created, input)
	return model.Transaction{ID: 1}, nil
}

type fakeMirror struct {
	confirmed []int
	cancelled []int
	err       error
}

func (f *fakeMirror) Confirmed(ctx context.Context, b model.Booking) error {
	f.confirmed = append(f.confirmed, b.ID)
	return f.err
}

func (f *fakeMirror) Cancelled(ctx context.Context, id int) error {
	f.cancelled = append(f.cancelled, id)
	return f.err
}

type fixture struct {
	uc     booking.UseCase
	repo   *mockRepo
	txs    *fakeTransactions
	mirror *fakeMirror
}

func newFixture() fixture {
	cal, _ := datemath.NewCalendar("UTC")
	cal = cal.WithNow(func() time.Time { return time.Date(2024, 6, 20, 10, 0, 0, 0, time.UTC) })

	f := fixture{repo: newRepo(), txs: &fakeTransactions{}, mirror: &fakeMirror{}}
	f.uc = New(log.NewNop(), Deps{
		Repo:         f.repo,
		Workspaces:   &fakeWorkspaces{},
		Transactions: f.txs,
		Mirror:       f.mirror,
		Calendar:     cal,
	})
	return f
}

var (
	admin = model.Scope{UserID: 1, Role: model.RoleAdmin}
	owner = model.Scope{UserID: 7, Role: model.RoleUser}
)

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("Non admin sees own bookings", func(t *testing.T) {
		f := newFixture()
		out, err := f.uc.List(ctx, owner, booking.ListInput{UserID: 99})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.repo.listOpt.UserID != 7 || f.repo.listOpt.PerPage != 10 || out.Pagination.TotalPages != 3 {
			t.Errorf("unexpected options %+v %+v", f.repo.listOpt, out.Pagination)
		}
	})

	t.Run("Admin filters freely", func(t *testing.T) {
		f := newFixture()
		if _, err := f.uc.List(ctx, admin, booking.ListInput{UserID: 99, Status: model.BookingConfirmed, From: "today"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.repo.listOpt.UserID != 99 || f.repo.listOpt.From != "2024-06-20" {
			t.Errorf("unexpected options %+v", f.repo.listOpt)
		}
	})

	t.Run("Invalid status", func(t *testing.T) {
		f := newFixture()
		if _, err := f.uc.List(ctx, admin, booking.ListInput{Status: "done"}); !errors.Is(err, booking.ErrInvalidStatus) {
			t.Errorf("expected ErrInvalidStatus, got %v", err)
		}
	})
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Slot with deposit", func(t *testing.T) {
		f := newFixture()
		b, err := f.uc.Create(ctx, owner, booking.CreateInput{
			Interval:    booking.Interval{Date: "tomorrow", Slot: "09:00-10:00"},
			WorkspaceID: 3,
			UserID:      99,
			Deposit:     50,
			TotalPrice:  150,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.ID != 9 || f.repo.created.StartTime != "2024-06-21T09:00:00Z" || f.repo.created.EndTime != "2024-06-21T10:00:00Z" {
			t.Errorf("unexpected booking %+v %+v", b, f.repo.created)
		}
		if f.repo.created.UserID != 7 {
			t.Errorf("non admin must book for themselves, got user %d", f.repo.created.UserID)
		}
		if len(f.repo.checks) != 1 || f.repo.checks[0].WorkspaceID != 3 {
			t.Errorf("expected one availability check, got %+v", f.repo.checks)
		}
		want := transaction.CreateInput{UserID: 7, Type: model.TransactionPayment, Amount: 50, Description: "Deposit for Board Room booking"}
		if len(f.txs.created) != 1 || f.txs.created[0] != want {
			t.Errorf("unexpected deposit %+v", f.txs.created)
		}
	})

	t.Run("Explicit times without deposit", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.Create(ctx, admin, booking.CreateInput{
			Interval:    booking.Interval{StartTime: "2024-06-22T13:00", EndTime: "2024-06-22T15:30"},
			WorkspaceID: 3,
			UserID:      12,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.repo.created.UserID != 12 || f.repo.created.EndTime != "2024-06-22T15:30:00Z" {
			t.Errorf("unexpected create %+v", f.repo.created)
		}
		if len(f.txs.created) != 0 {
			t.Errorf("no deposit expected, got %+v", f.txs.created)
		}
	})

	t.Run("Unavailable slot", func(t *testing.T) {
		f := newFixture()
		f.repo.busyStart = "2024-06-21T09:00:00Z"
		_, err := f.uc.Create(ctx, owner, booking.CreateInput{
			Interval:    booking.Interval{Date: "2024-06-21", Slot: "09:00-10:00"},
			WorkspaceID: 3,
			Deposit:     20,
		})
		var unavailable *booking.UnavailableError
		if !errors.As(err, &unavailable) || unavailable.Message != "Already booked" || !errors.Is(err, booking.ErrUnavailable) {
			t.Fatalf("expected UnavailableError, got %v", err)
		}
		if f.repo.created != nil || len(f.txs.created) != 0 {
			t.Errorf("nothing must be written for an unavailable slot")
		}
	})

	t.Run("Deposit failure stops booking", func(t *testing.T) {
		f := newFixture()
		f.txs.err = errors.New("transactions.Create: boom")
		_, err := f.uc.Create(ctx, owner, booking.CreateInput{
			Interval:    booking.Interval{Date: "2024-06-21", Slot: "10:00-11:00"},
			WorkspaceID: 3,
			Deposit:     20,
		})
		if err == nil || f.repo.created != nil {
			t.Errorf("expected error and no booking, got %v", err)
		}
	})

	t.Run("Validation", func(t *testing.T) {
		f := newFixture()
		cases := []struct {
			name  string
			input booking.CreateInput
			want  error
		}{
			{"No workspace", booking.CreateInput{Interval: booking.Interval{Slot: "09:00-10:00"}}, booking.ErrInvalidWorkspace},
			{"Negative deposit", booking.CreateInput{WorkspaceID: 1, Deposit: -1}, booking.ErrInvalidAmount},
			{"Unknown slot", booking.CreateInput{WorkspaceID: 1, Interval: booking.Interval{Slot: "07:00-08:00"}}, booking.ErrInvalidTime},
			{"Reversed times", booking.CreateInput{WorkspaceID: 1, Interval: booking.Interval{StartTime: "2024-06-22T15:00", EndTime: "2024-06-22T14:00"}}, booking.ErrTimeOrder},
		}
		for _, tc := range cases {
			if _, err := f.uc.Create(ctx, owner, tc.input); !errors.Is(err, tc.want) {
				t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
			}
		}
		if _, err := f.uc.Create(ctx, model.Scope{Role: model.RoleUser}, booking.CreateInput{WorkspaceID: 1}); !errors.Is(err, booking.ErrInvalidUser) {
			t.Errorf("expected ErrInvalidUser, got %v", err)
		}
	})
}

func TestOwnership(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	if _, err := f.uc.Detail(ctx, owner, 2); !errors.Is(err, booking.ErrNotOwner) {
		t.Errorf("expected ErrNotOwner, got %v", err)
	}
	if err := f.uc.Delete(ctx, owner, 2); !errors.Is(err, booking.ErrNotOwner) || f.repo.deleted != 0 {
		t.Errorf("expected ErrNotOwner without delete, got %v", err)
	}
	if _, err := f.uc.Detail(ctx, admin, 2); err != nil {
		t.Errorf("admin must see every booking, got %v", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Confirm mirrors", func(t *testing.T) {
		f := newFixture()
		b, err := f.uc.UpdateStatus(ctx, admin, 1, model.BookingConfirmed)
		if err != nil || b.Status != model.BookingConfirmed {
			t.Fatalf("unexpected result %+v %v", b, err)
		}
		if len(f.mirror.confirmed) != 1 || f.mirror.confirmed[0] != 1 {
			t.Errorf("expected mirror of booking 1, got %v", f.mirror.confirmed)
		}
	})

	t.Run("Cancel removes mirror", func(t *testing.T) {
		f := newFixture()
		if _, err := f.uc.UpdateStatus(ctx, owner, 1, model.BookingCancelled); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(f.mirror.cancelled) != 1 || len(f.mirror.confirmed) != 0 {
			t.Errorf("unexpected mirror calls %+v", f.mirror)
		}
	})

	t.Run("Mirror failure is not fatal", func(t *testing.T) {
		f := newFixture()
		f.mirror.err = errors.New("calendar down")
		if _, err := f.uc.UpdateStatus(ctx, admin, 1, model.BookingConfirmed); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("Invalid status", func(t *testing.T) {
		f := newFixture()
		if _, err := f.uc.UpdateStatus(ctx, admin, 1, "archived"); !errors.Is(err, booking.ErrInvalidStatus) {
			t.Errorf("expected ErrInvalidStatus, got %v", err)
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	price := 90.0
	if _, err := f.uc.Update(ctx, owner, booking.UpdateInput{ID: 1, TotalPrice: &price}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.repo.updated.StartTime != "" || *f.repo.updated.TotalPrice != 90 {
		t.Errorf("times must be kept when not given, got %+v", f.repo.updated)
	}

	if _, err := f.uc.Update(ctx, owner, booking.UpdateInput{ID: 1, Interval: booking.Interval{Date: "2024-06-23", Slot: "20:00-21:00"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.repo.updated.StartTime != "2024-06-23T20:00:00Z" || f.repo.updated.EndTime != "2024-06-23T21:00:00Z" {
		t.Errorf("unexpected times %+v", f.repo.updated)
	}
}

func TestAvailabilityAndSlots(t *testing.T) {
	ctx := context.Background()

	t.Run("Remote message kept", func(t *testing.T) {
		f := newFixture()
		f.repo.busyStart = "2024-06-20T08:00:00Z"
		a, err := f.uc.Availability(ctx, owner, booking.AvailabilityInput{WorkspaceID: 1, Interval: booking.Interval{Slot: "08:00-09:00"}})
		if err != nil || a.Available || a.Message != "Already booked" {
			t.Errorf("unexpected availability %+v %v", a, err)
		}
	})

	t.Run("Slots without workspace", func(t *testing.T) {
		f := newFixture()
		slots, err := f.uc.Slots(ctx, owner, booking.SlotsInput{Date: "today"})
		if err != nil || len(slots) != 13 || slots[0].Label != "08:00-09:00" || slots[12].Label != "20:00-21:00" {
			t.Fatalf("unexpected slots %+v %v", slots, err)
		}
		if len(f.repo.checks) != 0 {
			t.Errorf("no availability calls expected, got %d", len(f.repo.checks))
		}
	})

	t.Run("Slots with workspace", func(t *testing.T) {
		f := newFixture()
		f.repo.busyStart = "2024-06-20T12:00:00Z"
		slots, err := f.uc.Slots(ctx, owner, booking.SlotsInput{Date: "2024-06-20", WorkspaceID: 4})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(f.repo.checks) != 13 {
			t.Errorf("expected 13 checks, got %d", len(f.repo.checks))
		}
		for _, s := range slots {
			if want := s.Label != "12:00-13:00"; s.Available != want {
				t.Errorf("slot %s: available=%v", s.Label, s.Available)
			}
		}
	})
}
