// controllers/invoice.go
package controllers

import (
	"fmt"
	"net/http"

	"blossom-invoice-backend/config"
	"blossom-invoice-backend/models"
	"blossom-invoice-backend/render"
	"blossom-invoice-backend/services"
	"blossom-invoice-backend/utils"

	"github.com/gin-gonic/gin"
)

// InvoiceController runs the invoice pipeline for one request:
// normalize → render → generate PDF → deliver (or return the bytes).
type InvoiceController struct {
	cfg      *config.Config
	renderer *render.Renderer
	pdf      services.PDFGenerator
	telegram services.DocumentSender
}

func NewInvoiceController(cfg *config.Config, renderer *render.Renderer, pdf services.PDFGenerator, telegram services.DocumentSender) *InvoiceController {
	return &InvoiceController{
		cfg:      cfg,
		renderer: renderer,
		pdf:      pdf,
		telegram: telegram,
	}
}

// SendInvoice builds the invoice PDF and delivers it to the admin chat.
func (ctl *InvoiceController) SendInvoice(c *gin.Context) {
	inv, pdfBytes, ok := ctl.buildDocument(c)
	if !ok {
		return
	}

	if ctl.cfg.BotToken == "" {
		utils.RespondWithError(c, http.StatusInternalServerError,
			(&services.ConfigError{Setting: "BLOSSOM_BOT_TOKEN"}).Error())
		return
	}
	if ctl.cfg.AdminChatID == "" {
		utils.RespondWithError(c, http.StatusInternalServerError,
			(&services.ConfigError{Setting: "ADMIN_CHAT_ID"}).Error())
		return
	}

	caption := fmt.Sprintf("Накладная %s • %s", inv.OrderID, inv.SalonName)
	receipt, err := ctl.telegram.SendDocument(ctl.cfg.AdminChatID, pdfBytes, invoiceFilename(inv), caption)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"order_id": inv.OrderID,
		"telegram": receipt,
	})
}

// GeneratePDF runs the same pipeline but returns the document directly,
// for preview use.
func (ctl *InvoiceController) GeneratePDF(c *gin.Context) {
	inv, pdfBytes, ok := ctl.buildDocument(c)
	if !ok {
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", invoiceFilename(inv)))
	c.Header("X-Order-Id", inv.OrderID)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// buildDocument normalizes the payload, renders the markup and generates
// the PDF. On failure it writes the error response and reports !ok.
// Normalization itself never fails: a malformed body is treated as an
// empty payload.
func (ctl *InvoiceController) buildDocument(c *gin.Context) (models.Invoice, []byte, bool) {
	var payload map[string]any
	_ = c.ShouldBindJSON(&payload)

	sender := models.SenderIdentity{Name: ctl.cfg.SenderName, Phone: ctl.cfg.SenderPhone}
	inv := models.NormalizeOrder(payload, sender, utils.InvoiceNow())

	html, err := ctl.renderer.RenderHTML(inv)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return models.Invoice{}, nil, false
	}

	pdfBytes, err := ctl.pdf.Generate(html)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return models.Invoice{}, nil, false
	}

	return inv, pdfBytes, true
}

func invoiceFilename(inv models.Invoice) string {
	return fmt.Sprintf("%s_%s_%s.pdf",
		utils.SafeFilename(inv.OrderID),
		utils.SafeFilename(inv.SalonName),
		utils.SafeFilename(utils.DateToken(inv.DisplayDate)))
}
