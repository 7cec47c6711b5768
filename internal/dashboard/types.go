package dashboard

import "workspace-admin/internal/model"

// UsageInput bounds the usage report. Blank dates default to the current
// month.
type UsageInput struct {
	WorkspaceID int
	From        string
	To          string
}

// Overview is the data of the dashboard landing page. Usage is only loaded
// for admins and stays nil when it could not be fetched.
type Overview struct {
	Summary model.DashboardSummary
	Usage   *model.UsageReport
}
