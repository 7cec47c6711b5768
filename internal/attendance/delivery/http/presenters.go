package http

import (
	"workspace-admin/internal/attendance"
	"workspace-admin/internal/model"
)

// --- Request DTOs ---

type listReq struct {
	EmployeeID int    `form:"employee_id" binding:"gte=0"`
	From       string `form:"from"`
	To         string `form:"to"`
	Query      string `form:"q"`
}

func (r listReq) toInput() attendance.ListInput {
	return attendance.ListInput{EmployeeID: r.EmployeeID, From: r.From, To: r.To, Query: r.Query}
}

// checkInReq and checkOutReq leave employee_id and the time optional: the
// caller and now are used instead.
type checkInReq struct {
	EmployeeID int    `json:"employee_id" binding:"gte=0"`
	CheckIn    string `json:"check_in"`
}

type checkOutReq struct {
	EmployeeID int    `json:"employee_id" binding:"gte=0"`
	CheckOut   string `json:"check_out"`
}

// --- Response DTOs ---

type listResp struct {
	Records []attendance.RecordView `json:"records"`
}

func newListResp(records []attendance.RecordView) listResp {
	if records == nil {
		records = []attendance.RecordView{}
	}
	return listResp{Records: records}
}

type reportResp struct {
	model.AttendanceReport
	Extra map[string]any `json:"extra,omitempty"`
}

func newReportResp(rep model.AttendanceReport) reportResp {
	return reportResp{AttendanceReport: rep, Extra: rep.Raw}
}
