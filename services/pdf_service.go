// services/pdf_service.go
package services

import (
	"fmt"
	"strings"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
)

// PDFGenerator converts a rendered HTML document into PDF bytes.
type PDFGenerator interface {
	Generate(html string) ([]byte, error)
}

// PDFService drives the wkhtmltopdf engine. The engine is treated as an
// opaque external renderer: markup in, bytes out, may fail.
type PDFService struct{}

func NewPDFService() *PDFService {
	return &PDFService{}
}

// Generate renders an A4 document. Local file access is enabled so a
// configured logo asset resolves from disk.
func (s *PDFService) Generate(html string) ([]byte, error) {
	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("pdf engine unavailable: %w", err)
	}

	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA4)
	pdfg.MarginTop.Set(16)
	pdfg.MarginBottom.Set(16)
	pdfg.MarginLeft.Set(16)
	pdfg.MarginRight.Set(16)

	page := wkhtmltopdf.NewPageReader(strings.NewReader(html))
	page.EnableLocalFileAccess.Set(true)
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("pdf rendering failed: %w", err)
	}
	return pdfg.Bytes(), nil
}
