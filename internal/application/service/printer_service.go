package service

import (
	"log"

	"github.com/sakshidhaba/pos-api/internal/config"
	"github.com/sakshidhaba/pos-api/internal/domain/entity"
	"github.com/sakshidhaba/pos-api/pkg/printer"
)

// PrinterService formats bills as receipts and sends them to the
// thermal printer, when one is configured.
type PrinterService struct {
	printer     printer.Printer
	receipt     config.ReceiptConfig
	printerType string
}

// NewPrinterService creates a new printer service.
func NewPrinterService(p printer.Printer, receipt config.ReceiptConfig, printerType string) *PrinterService {
	return &PrinterService{printer: p, receipt: receipt, printerType: printerType}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// RenderReceipt composes the printable receipt value for a bill.
func (s *PrinterService) RenderReceipt(bill entity.Bill) entity.Receipt {
	items := make([]entity.ReceiptItem, len(bill.Items))
	for i, it := range bill.Items {
		items[i] = entity.ReceiptItem{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.Price.Rupees(),
			Total:     it.Total().Rupees(),
		}
	}
	return entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: s.receipt.StoreName,
			Address:   s.receipt.Address,
			Phone:     s.receipt.Phone,
		},
		BillNo:      bill.ShortID(),
		Date:        bill.Timestamp.Format("02/01/2006 3:04 PM"),
		TableNo:     bill.TableNo,
		Customer:    bill.CustomerName,
		PaymentMode: string(bill.PaymentMode),
		Items:       items,
		SubTotal:    bill.SubTotal.Rupees(),
		Total:       bill.Total.Rupees(),
		Canceled:    bill.IsCanceled,
		Notes:       bill.Notes,
	}
}

// PrintBill renders a bill and sends it to the printer. The receipt is
// returned either way so callers can show it even without hardware.
func (s *PrinterService) PrintBill(bill entity.Bill) (entity.Receipt, error) {
	receipt := s.RenderReceipt(bill)

	doc := printer.NewDocument(s.receipt.Width)
	doc.SetAlign(printer.AlignCenter).
		SetFontSize(printer.FontDouble).SetBold(true).
		Text(receipt.Header.StoreName).
		SetFontSize(printer.FontNormal).SetBold(false)
	if receipt.Header.Address != "" {
		doc.Text(receipt.Header.Address)
	}
	if receipt.Header.Phone != "" {
		doc.Text("Ph: " + receipt.Header.Phone)
	}
	doc.SetAlign(printer.AlignLeft).Separator('-')

	doc.KeyValue("Bill #", receipt.BillNo)
	doc.KeyValue("Date", receipt.Date)
	if receipt.TableNo != "" {
		doc.KeyValue("Table", receipt.TableNo)
	}
	if receipt.Customer != "" {
		doc.KeyValue("Customer", receipt.Customer)
	}
	doc.Separator('-')

	for _, it := range receipt.Items {
		doc.ItemLine(it.Quantity, it.Name, entity.PaiseFromRupees(it.Total).Format())
	}
	doc.Separator('-')

	doc.KeyValue("Subtotal", entity.PaiseFromRupees(receipt.SubTotal).Format())
	doc.SetBold(true).KeyValue("TOTAL", entity.PaiseFromRupees(receipt.Total).Format()).SetBold(false)
	doc.KeyValue("Mode", receipt.PaymentMode)
	if receipt.Canceled {
		doc.SetAlign(printer.AlignCenter).SetBold(true).Text("*** CANCELED ***").SetBold(false).SetAlign(printer.AlignLeft)
	}
	doc.SetAlign(printer.AlignCenter).
		FeedLines(1).
		Text("Thank you, visit again!").
		FeedLines(3).
		Cut()

	if err := s.printer.Print(doc.Bytes()); err != nil {
		// A dead printer must never block the till; the receipt still
		// renders on screen.
		log.Printf("printer: print failed: %v", err)
		return receipt, err
	}
	return receipt, nil
}
