// ════════════════════════════════════════════════════════════
// Path: controllers/order_controller/download_order_invoice_pdf.go
// Generate and download an order invoice PDF
// ════════════════════════════════════════════════════════════

package order_controller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/kartify-commerce/kartify-backend/models"
	"github.com/kartify-commerce/kartify-backend/services"
	"github.com/kartify-commerce/kartify-backend/store"
)

// OrderController serves order documents. Mailer may be nil; the email
// route is only registered when it is set.
type OrderController struct {
	Store  store.Store
	Mailer *services.ResendClient
}

// NewOrderController builds the controller over a store.
func NewOrderController(st store.Store, mailer *services.ResendClient) *OrderController {
	return &OrderController{Store: st, Mailer: mailer}
}

// invoiceData loads the order, its line items and the customer, writing
// the error response itself when anything is missing.
func (o *OrderController) invoiceData(c *gin.Context) (*models.Order, []models.OrderItem, *models.User, bool) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil || orderID <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return nil, nil, nil, false
	}

	ctx := c.Request.Context()
	var order models.Order
	err = o.Store.FindOne(ctx, &order, store.And(
		store.Eq("id", orderID),
		store.Eq("is_deleted", false)))
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return nil, nil, nil, false
	}
	if err != nil {
		log.Error().Err(err).Int("orderID", orderID).Msg("[order.invoice] database error")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return nil, nil, nil, false
	}

	var items []models.OrderItem
	if err := o.Store.FindAll(ctx, &items, store.Eq("order_id", order.ID)); err != nil {
		log.Error().Err(err).Int("orderID", orderID).Msg("[order.invoice] failed to fetch order items")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return nil, nil, nil, false
	}

	var customer models.User
	if err := o.Store.FindOne(ctx, &customer, store.Eq("id", order.CustomerID)); err != nil {
		log.Error().Err(err).Int("orderID", orderID).Msg("[order.invoice] failed to fetch customer")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return nil, nil, nil, false
	}
	return &order, items, &customer, true
}

// DownloadOrderInvoicePDF godoc
// @Summary Download an order invoice PDF
// @Description Generate the invoice for an order and return it as a PDF download
// @Tags Orders
// @Produce application/pdf
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {file} binary
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/order/invoice/{id} [get]
func (o *OrderController) DownloadOrderInvoicePDF(c *gin.Context) {
	order, items, customer, ok := o.invoiceData(c)
	if !ok {
		return
	}

	buf, err := services.GenerateOrderInvoicePDF(order, items, customer)
	if err != nil {
		log.Error().Err(err).Int("orderID", order.ID).Msg("[order.invoice] PDF generation failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", order.OrderNumber))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
