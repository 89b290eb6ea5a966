package services

import (
	"bytes"
	"fmt"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/kartify-commerce/kartify-backend/models"
)

// GenerateOrderInvoicePDF renders an order invoice as an in-memory PDF.
func GenerateOrderInvoicePDF(order *models.Order, items []models.OrderItem, customer *models.User) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("INVOICE", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("KARTIFY STORE", props.Text{
				Size:  16,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("contact@kartify.shop", props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	m.Row(8, func() {})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text("BILL TO", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(6, func() {
			m.Text("INVOICE DETAILS", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})
	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(customer.Name, props.Text{Size: 10, Color: darkGray})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Invoice # %s", order.OrderNumber), props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
	})
	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(customer.Email, props.Text{Size: 9, Color: mediumGray})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Date: %s", order.CreatedAt.Format("Jan 02, 2006")), props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(10, func() {})

	m.SetBackgroundColor(darkGray)
	m.Row(8, func() {
		m.Col(6, func() {
			m.Text("ITEM", props.Text{Size: 8, Style: consts.Bold, Color: color.NewWhite(), Left: 2})
		})
		m.Col(2, func() {
			m.Text("QTY", props.Text{Size: 8, Style: consts.Bold, Color: color.NewWhite(), Align: consts.Center})
		})
		m.Col(2, func() {
			m.Text("PRICE", props.Text{Size: 8, Style: consts.Bold, Color: color.NewWhite(), Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text("TOTAL", props.Text{Size: 8, Style: consts.Bold, Color: color.NewWhite(), Align: consts.Right})
		})
	})
	m.SetBackgroundColor(color.NewWhite())

	var subtotal float64
	for _, item := range items {
		lineTotal := item.Price * float64(item.Quantity)
		subtotal += lineTotal
		m.Row(7, func() {
			m.Col(6, func() {
				m.Text(item.Name, props.Text{Size: 9, Color: darkGray, Left: 2})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%d", item.Quantity), props.Text{Size: 9, Color: darkGray, Align: consts.Center})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%.2f", item.Price), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%.2f", lineTotal), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
		})
	}

	m.Row(8, func() {})
	m.Row(7, func() {
		m.Col(10, func() {
			m.Text("TOTAL", props.Text{Size: 10, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text(fmt.Sprintf("%.2f", order.Total), props.Text{Size: 10, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("render invoice PDF: %w", err)
	}
	return &buf, nil
}
