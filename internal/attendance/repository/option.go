package repository

// ListOptions are the query parameters of GET /attendance.
type ListOptions struct {
	EmployeeID int
	From       string
	To         string
}

// CheckInOptions is the body of POST /attendance/check-in.
type CheckInOptions struct {
	EmployeeID int    `json:"employee_id"`
	CheckIn    string `json:"check_in"`
}

// CheckOutOptions is the body of POST /attendance/check-out.
type CheckOutOptions struct {
	EmployeeID int    `json:"employee_id"`
	CheckOut   string `json:"check_out"`
}
