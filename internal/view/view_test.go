package view_test

import (
	"bytes"
	"net/url"
	"strings"
	"testing"

	"workspace-admin/internal/model"
	"workspace-admin/internal/view"
)

func TestNavFor(t *testing.T) {
	t.Run("Admin sees everything", func(t *testing.T) {
		nav := view.NavFor(model.RoleAdmin, "/app/users")
		if len(nav) != 11 {
			t.Fatalf("expected 11 entries, got %d", len(nav))
		}
		for _, n := range nav {
			if n.Active != (n.Path == "/app/users") {
				t.Errorf("unexpected active flag on %s", n.Path)
			}
		}
	})

	t.Run("Non admin sees dashboard bookings attendance", func(t *testing.T) {
		for _, role := range []model.Role{model.RoleUser, model.RoleSubscriber} {
			nav := view.NavFor(role, "/app/bookings/create")
			var paths []string
			for _, n := range nav {
				paths = append(paths, n.Path)
				if n.Path == "/app/bookings" && !n.Active {
					t.Errorf("bookings should be active for nested path")
				}
			}
			if strings.Join(paths, ",") != "/app/dashboard,/app/bookings,/app/attendance" {
				t.Errorf("unexpected nav for %s: %v", role, paths)
			}
		}
	})
}

func TestFormatting(t *testing.T) {
	cases := []struct {
		got  string
		want string
	}{
		{view.Money("EGP", 0), "EGP 0.00"},
		{view.Money("EGP", 1234.5), "EGP 1,234.50"},
		{view.Money("EGP", 1234567.891), "EGP 1,234,567.89"},
		{view.Money("EGP", -50), "-EGP 50.00"},
		{view.SignedMoney("EGP", "payment", 100), "+EGP 100.00"},
		{view.SignedMoney("EGP", "withdrawal", 100), "-EGP 100.00"},
		{view.Date("2024-01-31T10:00:00Z"), "Jan 31, 2024"},
		{view.Date(""), "-"},
		{view.DateTime("2024-01-31T10:05"), "Jan 31, 2024 10:05"},
		{view.Clock("2024-01-31T17:30:00Z"), "17:30"},
		{view.Title("confirmed"), "Confirmed"},
		{view.Or("", "N/A"), "N/A"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("got %q, want %q", c.got, c.want)
		}
	}
}

func TestTemplates(t *testing.T) {
	tmpl, err := view.Templates()
	if err != nil {
		t.Fatalf("parse templates: %v", err)
	}

	t.Run("Page", func(t *testing.T) {
		page := view.NewPage(model.Scope{Name: "Mona", Role: model.RoleAdmin}, "/app/expenses", "Expenses")
		page.Tables = []view.NamedTable{{Table: view.Table{
			Columns: []string{"Name", "Amount"},
			Rows:    [][]string{{"Rent <script>", "EGP 10.00"}},
			Footer:  []string{"Total", "EGP 10.00"},
		}}}

		var buf bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buf, "page.html", page); err != nil {
			t.Fatalf("execute: %v", err)
		}
		out := buf.String()
		if !strings.Contains(out, "Rent &lt;script&gt;") {
			t.Errorf("expected escaped cell")
		}
		if !strings.Contains(out, `href="/app/expenses" class="active"`) {
			t.Errorf("expected active nav link")
		}
	})

	t.Run("Empty table", func(t *testing.T) {
		page := view.NewPage(model.Scope{Role: model.RoleUser}, "/app/bookings", "Bookings")
		page.Tables = []view.NamedTable{{Table: view.Table{Columns: []string{"A"}, Empty: "No bookings found"}}}

		var buf bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buf, "page.html", page); err != nil {
			t.Fatalf("execute: %v", err)
		}
		if !strings.Contains(buf.String(), "No bookings found") {
			t.Errorf("expected empty message")
		}
	})

	t.Run("Auth form", func(t *testing.T) {
		form := view.AuthForm{
			Title:  "Sign in",
			Action: "/auth/login",
			Fields: []view.Field{{Name: "email", Label: "Email", Type: "email"}},
			Errors: map[string]string{"email": "The email field is required."},
			Submit: "Sign in",
		}
		var buf bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buf, "auth.html", form); err != nil {
			t.Fatalf("execute: %v", err)
		}
		if !strings.Contains(buf.String(), "The email field is required.") {
			t.Errorf("expected field error")
		}
	})
}

func TestNewPager(t *testing.T) {
	u, _ := url.Parse("/app/users?q=mona&page=2")

	if view.NewPager(u, model.Pagination{Page: 1, TotalPages: 1}) != nil {
		t.Error("expected no pager for a single page")
	}

	p := view.NewPager(u, model.Pagination{Page: 2, PerPage: 10, TotalPages: 3})
	if p.PrevURL != "/app/users?page=1&q=mona" {
		t.Errorf("unexpected prev: %s", p.PrevURL)
	}
	if p.NextURL != "/app/users?page=3&q=mona" {
		t.Errorf("unexpected next: %s", p.NextURL)
	}

	last := view.NewPager(u, model.Pagination{Page: 3, TotalPages: 3})
	if last.NextURL != "" {
		t.Errorf("expected no next link on last page")
	}
}
