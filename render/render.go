// Package render turns a normalized invoice into the printable HTML
// document handed to the PDF engine. Rendering is pure: no I/O, no clock,
// equal invoices produce byte-identical markup.
package render

import (
	"html/template"
	"strings"

	"blossom-invoice-backend/models"
)

type Renderer struct {
	tmpl     *template.Template
	logoPath string
}

// New builds a renderer. logoPath may be empty, in which case the header
// carries no logo block.
func New(logoPath string) *Renderer {
	return &Renderer{
		tmpl:     template.Must(template.New("invoice").Parse(invoiceTemplate)),
		logoPath: logoPath,
	}
}

// RenderHTML produces the invoice document. All free-text fields pass
// through contextual HTML escaping; none is trusted as pre-sanitized.
func (r *Renderer) RenderHTML(inv models.Invoice) (string, error) {
	var sb strings.Builder
	if err := r.tmpl.Execute(&sb, newInvoiceView(inv, r.logoPath)); err != nil {
		return "", err
	}
	return sb.String(), nil
}

type rowView struct {
	Index  int
	Name   string
	Qty    string // no trailing zeros when integral
	Price  string // always two decimals
	Amount string // always two decimals
}

type invoiceView struct {
	SalonName       string
	SenderName      string
	SenderPhone     string
	OrderID         string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	DeliveryAddress string
	DisplayDate     string
	GeneratedAt     string
	LogoPath        string
	Rows            []rowView
	Total           string
	NoItems         string
}

func newInvoiceView(inv models.Invoice, logoPath string) invoiceView {
	v := invoiceView{
		SalonName:       inv.SalonName,
		SenderName:      inv.SenderName,
		SenderPhone:     inv.SenderPhone,
		OrderID:         inv.OrderID,
		CustomerName:    inv.CustomerName,
		CustomerEmail:   inv.CustomerEmail,
		CustomerPhone:   inv.CustomerPhone,
		DeliveryAddress: inv.DeliveryAddress,
		DisplayDate:     inv.DisplayDate,
		GeneratedAt:     inv.GeneratedAt,
		LogoPath:        logoPath,
		Total:           inv.TotalSum.StringFixed(2),
		NoItems:         models.PlaceholderNoItems,
	}
	for i, item := range inv.Items {
		v.Rows = append(v.Rows, rowView{
			Index:  i + 1,
			Name:   item.Name,
			Qty:    item.Quantity.String(),
			Price:  item.Price.StringFixed(2),
			Amount: item.Amount().StringFixed(2),
		})
	}
	return v
}

const invoiceTemplate = `<html>
  <head>
    <meta charset="utf-8">
    <style>
      @page { size: A4; margin: 16mm; }

      body {
        font-family: DejaVu Sans, Arial, sans-serif;
        color: #1a1a1a;
        margin: 0;
        padding: 0;
      }

      /* Header layout */
      .header {
        border-bottom: 3px solid #2c3e50;
        padding-bottom: 12px;
        margin-bottom: 14px;
        position: relative;
      }

      .date-top-right {
        position: absolute;
        top: 0;
        right: 0;
        font-size: 11px;
        color: #666;
      }

      .logo {
        position: absolute;
        top: 0;
        left: 0;
        max-height: 36px;
      }

      .title {
        text-align: center;
        margin: 0;
        font-size: 22px;
        font-weight: 800;
        letter-spacing: -0.4px;
        color: #2c3e50;
      }

      .order-id {
        margin-top: 8px;
        font-size: 12px;
        color: #666;
        text-align: center;
      }

      /* Sender block */
      .sender {
        margin: 12px 0 14px 0;
        border: 1px solid #d8e6f2;
        background: #eef6ff;
        border-radius: 10px;
        padding: 10px 12px;
      }
      .sender .label {
        font-size: 10px;
        font-weight: 800;
        text-transform: uppercase;
        letter-spacing: 0.6px;
        color: #2c3e50;
        margin-bottom: 4px;
      }
      .sender .value {
        font-size: 13px;
        font-weight: 800;
        color: #1a1a1a;
      }
      .sender .phone {
        font-weight: 700;
        color: #2c3e50;
      }

      /* Meta blocks */
      .meta-info {
        display: grid;
        grid-template-columns: 1fr 1fr;
        gap: 14px;
        margin-bottom: 14px;
        font-size: 11px;
      }
      .meta-section {
        border: 1px solid #e0e0e0;
        border-radius: 10px;
        padding: 10px 12px;
        background: #f9f9f9;
      }
      .meta-section .label {
        font-weight: 800;
        color: #555;
        font-size: 10px;
        text-transform: uppercase;
        letter-spacing: 0.5px;
        margin-bottom: 4px;
      }
      .meta-section .value {
        color: #1a1a1a;
        line-height: 1.4;
        word-break: break-word;
      }

      .section-title {
        font-weight: 900;
        font-size: 12px;
        color: #2c3e50;
        margin: 12px 0 8px 0;
        text-transform: uppercase;
        letter-spacing: 0.5px;
      }

      /* Table */
      table.items {
        width: 100%;
        border-collapse: collapse;
        table-layout: fixed;
        margin-bottom: 10px;
      }
      table.items thead th {
        background: #f0f0f0;
        text-align: left;
        font-size: 11px;
        font-weight: 800;
        color: #333;
        border-bottom: 2px solid #d0d0d0;
        padding: 10px 10px;
      }
      table.items tbody td {
        border-bottom: 1px solid #e8e8e8;
        padding: 9px 10px;
        font-size: 11px;
        vertical-align: top;
      }
      table.items tbody tr:nth-child(2n) td {
        background: #fafafa;
      }

      /* Fixed widths to align numbers neatly */
      .col-idx { width: 44px; text-align: right; }
      .col-name { width: auto; }
      .col-qty { width: 80px; }
      .col-price { width: 92px; }
      .col-amount { width: 98px; }

      .num {
        text-align: right;
        white-space: nowrap;
      }

      .muted {
        color: #888;
        font-style: italic;
        text-align: center;
      }

      /* Totals */
      .totals {
        margin-top: 10px;
        padding-top: 10px;
        border-top: 2px solid #d0d0d0;
      }
      .total-row {
        display: grid;
        grid-template-columns: 1fr 140px;
        gap: 12px;
        align-items: baseline;
      }
      .total-label {
        text-align: right;
        font-weight: 700;
        font-size: 12px;
        color: #333;
      }
      .total-amount {
        text-align: right;
        font-weight: 900;
        font-size: 16px;
        color: #2c3e50;
        white-space: nowrap;
      }

      /* Footer */
      .footer {
        margin-top: 18px;
        padding-top: 10px;
        border-top: 1px solid #ddd;
        font-size: 10px;
        color: #666;
        line-height: 1.35;
      }
    </style>
  </head>
  <body>

    <div class="header">
      {{if .LogoPath}}<img class="logo" src="file://{{.LogoPath}}">{{end}}
      <div class="date-top-right">{{.DisplayDate}}</div>
      <h1 class="title">Накладная для {{.SalonName}}</h1>
      <div class="order-id">Заказ: {{.OrderID}}</div>
    </div>

    <div class="sender">
      <div class="label">От кого</div>
      <div class="value">{{.SenderName}} <span class="phone">({{.SenderPhone}})</span></div>
    </div>

    <div class="meta-info">
      <div class="meta-section">
        <div class="label">Клиент</div>
        <div class="value">
          <strong>{{.CustomerName}}</strong><br>
          {{.CustomerEmail}}<br>
          {{.CustomerPhone}}
        </div>
      </div>

      <div class="meta-section">
        <div class="label">Адрес доставки</div>
        <div class="value">{{.DeliveryAddress}}</div>
      </div>
    </div>

    <div class="section-title">Товары</div>
    <table class="items">
      <thead>
        <tr>
          <th class="col-idx">№</th>
          <th class="col-name">Наименование</th>
          <th class="col-qty num">Кол-во</th>
          <th class="col-price num">Цена</th>
          <th class="col-amount num">Сумма</th>
        </tr>
      </thead>
      <tbody>
        {{range .Rows}}<tr>
          <td class="col-idx">{{.Index}}</td>
          <td class="col-name">{{.Name}}</td>
          <td class="col-qty num">{{.Qty}}</td>
          <td class="col-price num">{{.Price}}</td>
          <td class="col-amount num">{{.Amount}}</td>
        </tr>
        {{else}}<tr><td colspan="5" class="muted">{{.NoItems}}</td></tr>
        {{end}}
      </tbody>
    </table>

    <div class="totals">
      <div class="total-row">
        <div class="total-label">Итого к оплате:</div>
        <div class="total-amount">{{.Total}} ₽</div>
      </div>
    </div>

    <div class="footer">
      <div>Дата: {{.GeneratedAt}}</div>
      <div>@BlossomffBot • Автоматически сформировано системой</div>
    </div>

  </body>
</html>
`
