package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/sakshidhaba/pos-api/internal/config"
	"github.com/sakshidhaba/pos-api/internal/domain/entity"
	"github.com/sakshidhaba/pos-api/internal/domain/report"
)

// ExportService renders bills and statements into downloadable
// documents: CSV for spreadsheets, PDF for printable reports. It only
// reads fully-populated records; it never mutates state.
type ExportService struct {
	reports *ReportService
	receipt config.ReceiptConfig
}

// NewExportService creates a new export service.
func NewExportService(reports *ReportService, receipt config.ReceiptConfig) *ExportService {
	return &ExportService{reports: reports, receipt: receipt}
}

// BillsCSV exports every bill in the window (canceled bills included,
// flagged in the status column) as delimited text.
func (s *ExportService) BillsCSV(r report.Range) ([]byte, string, error) {
	all, _ := s.reports.WindowBills(r)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Bill ID", "Date", "Time", "Table No", "Customer Name", "Payment Mode", "Total Amount", "Status", "Items"}); err != nil {
		return nil, "", err
	}

	for _, b := range all {
		status := "Active"
		if b.IsCanceled {
			status = "Canceled"
		}
		lines := make([]string, len(b.Items))
		for i, it := range b.Items {
			lines[i] = fmt.Sprintf("%s (x%d)", it.Name, it.Quantity)
		}
		record := []string{
			b.ID,
			b.Timestamp.Format("02/01/2006"),
			b.Timestamp.Format("3:04:05 PM"),
			orDash(b.TableNo),
			orDash(b.CustomerName),
			string(b.PaymentMode),
			b.Total.Format(),
			status,
			strings.Join(lines, "; "),
		}
		if err := w.Write(record); err != nil {
			return nil, "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), fmt.Sprintf("%s_export_%s.csv", s.fileStem(), r), nil
}

// ReportPDF renders the business report for the window: a summary
// block followed by a table of active bills.
func (s *ExportService) ReportPDF(r report.Range) ([]byte, string, error) {
	_, active := s.reports.WindowBills(r)
	summary := report.Summarize(active)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, fmt.Sprintf("Business Report - %s", strings.ToUpper(string(r))))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(0, 8, fmt.Sprintf("Total Business: %s", summary.TotalSales.Format()), "", 1, "L", true, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Cash/Online Received: %s    Udhari Given: %s",
		summary.TotalReceived.Format(), summary.Udhari.Format()), "", 1, "L", true, 0, "")
	pdf.Ln(4)

	widths := []float64{30, 40, 30, 45, 30}
	headers := []string{"Time", "Bill ID", "Table", "Mode", "Amount"}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(234, 88, 12)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, b := range active {
		table := "-"
		if b.TableNo != "" {
			table = "Table " + b.TableNo
		}
		row := []string{
			b.Timestamp.Format("3:04 PM"),
			b.ShortID(),
			table,
			string(b.PaymentMode),
			b.Total.Format(),
		}
		for i, cell := range row {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("%s_report_%s.pdf", s.fileStem(), r), nil
}

// StatementPDF renders a customer's Udhari statement: header, current
// due, and one row per bill still on their history.
func (s *ExportService) StatementPDF(c entity.Customer) ([]byte, string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Udhari Statement", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, "Customer: "+c.Name, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, "Phone: "+orDash(c.Phone), "", 1, "L", false, 0, "")
	pdf.SetTextColor(220, 38, 38)
	pdf.CellFormat(0, 7, "Total Due: "+c.TotalDue.Format(), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(3)

	widths := []float64{50, 95, 30}
	headers := []string{"Date", "Items", "Amount"}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(234, 88, 12)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, b := range c.History {
		lines := make([]string, len(b.Items))
		for i, it := range b.Items {
			lines[i] = fmt.Sprintf("%s (%d)", it.Name, it.Quantity)
		}
		row := []string{
			b.Timestamp.Format("02/01/2006 3:04 PM"),
			strings.Join(lines, ", "),
			b.Total.Format(),
		}
		for i, cell := range row {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("Statement_%s.pdf", strings.ReplaceAll(c.Name, " ", "_")), nil
}

func (s *ExportService) fileStem() string {
	stem := strings.ToLower(strings.ReplaceAll(s.receipt.StoreName, " ", "_"))
	if stem == "" {
		stem = "pos"
	}
	return stem
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
