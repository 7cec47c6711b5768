package model

// Report payloads are rendered as returned; the remote API owns their
// aggregation. Known headline fields are decoded, the rest is kept in Raw.

// DashboardSummary is the answer of GET /dashboard/summary.
type DashboardSummary struct {
	TotalUsers         int            `json:"total_users"`
	TotalSubscribers   int            `json:"total_subscribers"`
	ActiveSubscribers  int            `json:"active_subscribers"`
	TotalWorkspaces    int            `json:"total_workspaces"`
	TotalBookings      int            `json:"total_bookings"`
	TodayBookings      int            `json:"today_bookings"`
	PendingBookings    int            `json:"pending_bookings"`
	TotalRevenue       float64        `json:"total_revenue"`
	MonthlyRevenue     float64        `json:"monthly_revenue"`
	TotalExpenses      float64        `json:"total_expenses"`
	TodayAttendance    int            `json:"today_attendance"`
	LowStockProducts   int            `json:"low_stock_products"`
	RecentBookings     []Booking      `json:"recent_bookings,omitempty"`
	RecentTransactions []Transaction  `json:"recent_transactions,omitempty"`
	Raw                map[string]any `json:"-"`
}

// PeriodAmount is one row of a grouped financial series. Date is the day or
// month of the group.
type PeriodAmount struct {
	Date     string  `json:"date"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
}

// Net is revenue minus expenses.
func (p PeriodAmount) Net() float64 {
	return p.Revenue - p.Expenses
}

// FinancialReport is the answer of GET /dashboard/financial.
type FinancialReport struct {
	TotalRevenue     float64        `json:"total_revenue"`
	TotalExpenses    float64        `json:"total_expenses"`
	NetProfit        float64        `json:"net_profit"`
	TransactionCount int            `json:"transaction_count"`
	DailyData        []PeriodAmount `json:"daily_data,omitempty"`
	Raw              map[string]any `json:"-"`
}

// WorkspaceUsage is one row of the usage report.
type WorkspaceUsage struct {
	WorkspaceID   int     `json:"workspace_id"`
	WorkspaceName string  `json:"workspace_name"`
	TotalBookings int     `json:"total_bookings"`
	TotalHours    float64 `json:"total_hours"`
	Revenue       float64 `json:"revenue"`
}

// UsageReport is the answer of GET /dashboard/usage.
type UsageReport struct {
	TotalBookings int              `json:"total_bookings"`
	TotalHours    float64          `json:"total_hours"`
	Workspaces    []WorkspaceUsage `json:"workspaces,omitempty"`
	Raw           map[string]any   `json:"-"`
}

// TransactionReport is the answer of GET /transactions/report.
type TransactionReport struct {
	TotalPayments    float64        `json:"total_payments"`
	TotalWithdrawals float64        `json:"total_withdrawals"`
	Net              float64        `json:"net"`
	Count            int            `json:"count"`
	DailyData        []PeriodAmount `json:"daily_data,omitempty"`
	Raw              map[string]any `json:"-"`
}

// ExpenseReport is the answer of GET /expenses/report.
type ExpenseReport struct {
	TotalAmount float64        `json:"total_amount"`
	Count       int            `json:"count"`
	Raw         map[string]any `json:"-"`
}

// EmployeeAttendance is one row of the attendance report.
type EmployeeAttendance struct {
	EmployeeName   string  `json:"employee_name"`
	TotalHours     float64 `json:"total_hours"`
	DaysPresent    int     `json:"days_present"`
	AttendanceRate float64 `json:"attendance_rate"`
}

// AttendanceReport is the answer of GET /attendance/report.
type AttendanceReport struct {
	TotalEmployees       int                  `json:"total_employees"`
	PresentToday         int                  `json:"present_today"`
	TotalHoursToday      float64              `json:"total_hours_today"`
	AverageHours         float64              `json:"average_hours"`
	AttendanceByEmployee []EmployeeAttendance `json:"attendance_by_employee,omitempty"`
	Raw                  map[string]any       `json:"-"`
}

// ReportRange bounds a report request. Empty fields are omitted.
type ReportRange struct {
	From    string
	To      string
	GroupBy string
}

// Export is a downloadable file.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}
