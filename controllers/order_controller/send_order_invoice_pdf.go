// ════════════════════════════════════════════════════════════
// Path: controllers/order_controller/send_order_invoice_pdf.go
// Email an order invoice PDF to the customer
// ════════════════════════════════════════════════════════════

package order_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/kartify-commerce/kartify-backend/models"
	"github.com/kartify-commerce/kartify-backend/services"
)

// SendOrderInvoicePDF godoc
// @Summary Email an order invoice to the customer
// @Description Generate the invoice PDF and email it to the order's customer with an HTML summary
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/order/invoice/{id}/send [post]
func (o *OrderController) SendOrderInvoicePDF(c *gin.Context) {
	order, items, customer, ok := o.invoiceData(c)
	if !ok {
		return
	}
	if customer.Email == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Customer has no email address"))
		return
	}

	buf, err := services.GenerateOrderInvoicePDF(order, items, customer)
	if err != nil {
		log.Error().Err(err).Int("orderID", order.ID).Msg("[order.invoice] PDF generation failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	if err := o.Mailer.SendOrderInvoicePDFEmail(c.Request.Context(), order, items, customer, buf.Bytes()); err != nil {
		log.Error().Err(err).Int("orderID", order.ID).Msg("[order.invoice] failed to email invoice")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to send invoice email"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Invoice sent successfully", nil))
}
