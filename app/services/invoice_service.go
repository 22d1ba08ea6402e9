package services

import (
	"fmt"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/shashiranjanraj/kashvi-store/app/models"
	"github.com/shashiranjanraj/kashvi-store/config"
)

// InvoiceService renders order invoices as PDF documents.
type InvoiceService struct{}

func NewInvoiceService() *InvoiceService {
	return &InvoiceService{}
}

// Render produces the invoice PDF for an order. The order must have Items
// (with Gemstone) and User preloaded.
func (s *InvoiceService) Render(order models.Order) ([]byte, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	ink := color.Color{Red: 38, Green: 38, Blue: 34}
	muted := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("INVOICE", props.Text{Size: 24, Style: consts.Bold, Color: ink})
		})
	})

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text(config.StoreName(), props.Text{Size: 16, Style: consts.Bold, Color: ink})
		})
	})
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(config.StoreEmail(), props.Text{Size: 9, Color: muted})
		})
	})

	m.Row(8, func() {})

	customerName := ""
	customerEmail := ""
	if order.User != nil {
		customerName = order.User.Name
		customerEmail = order.User.Email
	}

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text("BILL TO", props.Text{Size: 8, Style: consts.Bold, Color: ink})
		})
		m.Col(6, func() {
			m.Text("INVOICE DETAILS", props.Text{Size: 8, Style: consts.Bold, Color: ink, Align: consts.Right})
		})
	})
	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(customerName, props.Text{Size: 10, Style: consts.Bold, Color: ink})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Invoice #%s", order.OrderNumber), props.Text{Size: 10, Color: ink, Align: consts.Right})
		})
	})
	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(customerEmail, props.Text{Size: 9, Color: muted})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Date: %s", order.CreatedAt.Format("Jan 02, 2006")), props.Text{Size: 9, Color: muted, Align: consts.Right})
		})
	})

	m.Row(8, func() {})

	m.Row(6, func() {
		m.Col(6, func() {
			m.Text("Description", props.Text{Size: 8, Style: consts.Bold, Color: ink})
		})
		m.Col(2, func() {
			m.Text("Qty", props.Text{Size: 8, Style: consts.Bold, Color: ink, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text("Price", props.Text{Size: 8, Style: consts.Bold, Color: ink, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text("Total", props.Text{Size: 8, Style: consts.Bold, Color: ink, Align: consts.Right})
		})
	})

	for _, item := range order.Items {
		name := fmt.Sprintf("Item #%d", item.GemstoneID)
		if item.Gemstone != nil {
			name = item.Gemstone.Name
		}
		lineTotal := item.Price * float64(item.Quantity)
		m.Row(6, func() {
			m.Col(6, func() {
				m.Text(name, props.Text{Size: 9, Color: ink})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%d", item.Quantity), props.Text{Size: 9, Color: ink, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("$%.2f", item.Price), props.Text{Size: 9, Color: ink, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("$%.2f", lineTotal), props.Text{Size: 9, Color: ink, Align: consts.Right})
			})
		})
	}

	m.Row(8, func() {})

	m.Row(8, func() {
		m.Col(8, func() {})
		m.Col(2, func() {
			m.Text("Total", props.Text{Size: 12, Style: consts.Bold, Color: ink, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text(fmt.Sprintf("$%.2f", order.Total), props.Text{Size: 12, Style: consts.Bold, Color: ink, Align: consts.Right})
		})
	})

	m.Row(12, func() {})
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("Thank you for your business!", props.Text{Size: 8, Style: consts.Bold, Color: ink})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("invoice: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
