package view

import "workspace-admin/internal/model"

// NavItem is one entry of the sidebar.
type NavItem struct {
	Title  string
	Path   string
	Roles  []model.Role
	Active bool
}

// Card is a headline figure on a page.
type Card struct {
	Title string
	Value string
	Note  string
}

// Table is a rendered list. Rows hold pre-formatted cells.
type Table struct {
	Columns []string
	Rows    [][]string
	Empty   string
	Footer  []string
}

// Field is a filter input rendered above the table.
type Field struct {
	Name        string
	Label       string
	Type        string // text, date, select
	Value       string
	Placeholder string
	Options     []Option
}

// Option is a select choice.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Pager renders previous/next links.
type Pager struct {
	Page       int
	TotalPages int
	PrevURL    string
	NextURL    string
}

// Link is a button-style link in the page header.
type Link struct {
	Title string
	URL   string
}

// Page is the data of every authenticated HTML page.
type Page struct {
	Title    string
	Subtitle string
	User     model.Scope
	Nav      []NavItem
	Flash    string
	Error    string
	Filters  []Field
	Actions  []Link
	Cards    []Card
	Tables   []NamedTable
	Pager    *Pager
}

// NamedTable is a table with an optional heading.
type NamedTable struct {
	Heading string
	Table   Table
}

// AuthForm is the data of the public sign-in style pages.
type AuthForm struct {
	Title  string
	Action string
	Error  string
	Flash  string
	Fields []Field
	Submit string
	Links  []Link
	Errors map[string]string
}
