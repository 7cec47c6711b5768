package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"workspace-admin/internal/model"
)

const csvContentType = "text/csv"

// ExportReport downloads the report as CSV. When the remote API answers with
// JSON instead, the grouped rows are written out locally.
func (uc *implUseCase) ExportReport(ctx context.Context, sc model.Scope, rng model.ReportRange) (model.Export, error) {
	opt, err := uc.reportOptions(rng)
	if err != nil {
		return model.Export{}, err
	}

	raw, contentType, err := uc.repo.ExportReport(ctx, opt)
	if err != nil {
		return model.Export{}, err
	}

	out := model.Export{
		Filename:    fmt.Sprintf("financial-report-%s.csv", uc.cal.Today()),
		ContentType: csvContentType,
		Data:        raw,
	}
	if !isJSON(contentType, raw) {
		return out, nil
	}

	var rep model.TransactionReport
	if err := json.Unmarshal(unwrapData(raw), &rep); err != nil {
		return model.Export{}, fmt.Errorf("failed to decode report for export: %w", err)
	}
	if out.Data, err = reportCSV(rep); err != nil {
		return model.Export{}, err
	}

	uc.l.Debugf(ctx, "transaction.usecase.ExportReport: converted %d rows to csv", len(rep.DailyData))
	return out, nil
}

func isJSON(contentType string, raw []byte) bool {
	if strings.Contains(contentType, "json") {
		return true
	}
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '{'
}

func unwrapData(raw []byte) []byte {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 && env.Data[0] == '{' {
		return env.Data
	}
	return raw
}

func reportCSV(rep model.TransactionReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{{"date", "revenue", "expenses", "net"}}
	for _, p := range rep.DailyData {
		rows = append(rows, []string{p.Date, amount(p.Revenue), amount(p.Expenses), amount(p.Net())})
	}
	rows = append(rows, []string{"total", amount(rep.TotalPayments), amount(rep.TotalWithdrawals), amount(rep.Net)})

	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	return buf.Bytes(), nil
}

func amount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
