package model

// AttendanceRecord is one check-in of an employee.
type AttendanceRecord struct {
	ID          int      `json:"id"`
	EmployeeID  int      `json:"employee_id"`
	CheckIn     string   `json:"check_in"`
	CheckOut    string   `json:"check_out,omitempty"`
	Date        string   `json:"date"`
	HoursWorked *float64 `json:"hours_worked,omitempty"`
	Employee    *UserRef `json:"employee,omitempty"`
}
