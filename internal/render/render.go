// Package render turns a document and its store into printable HTML using
// the store's document template. A QR code encoding the document number and
// total is embedded as a PNG data URI so the output is self-contained.
package render

import (
	"encoding/base64"
	"fmt"
	"html/template"
	"io"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/example/factogo/internal/ports/primary"
)

// defaultHTML renders any document when the template has no content of its
// own (the seeded templates start empty until customized).
const defaultHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Document.DocumentNumber}}</title></head>
<body>
<h1>{{.Store.Name}}</h1>
<h2>{{.Document.Type}} {{.Document.DocumentNumber}}</h2>
<p>Client: {{.Document.ClientName}}</p>
<p>Date: {{.Document.Date}}</p>
<table>
<tr><th>Description</th><th>Qty</th><th>Unit price</th></tr>
{{range .Document.Items}}<tr><td>{{.Description}}</td><td>{{.Quantity}}</td><td>{{.UnitPrice}}</td></tr>
{{end}}</table>
<p>Total: {{.Document.Total}}</p>
{{if .QRCode}}<img src="{{.QRCode}}" alt="verification code">{{end}}
</body>
</html>
`

// Data is the root object visible to document templates.
type Data struct {
	Document *primary.Document
	Store    *primary.Store

	// QRCode is a PNG data URI encoding the document number and total.
	QRCode template.URL
}

// HTML renders doc with the given template and writes the result to w.
// An empty template body falls back to the built-in layout.
func HTML(w io.Writer, tmpl *primary.Template, doc *primary.Document, store *primary.Store) error {
	body := tmpl.HTMLContent
	if body == "" {
		body = defaultHTML
	}

	t, err := template.New(tmpl.Name).Parse(body)
	if err != nil {
		return fmt.Errorf("parse template %q: %w", tmpl.Name, err)
	}

	qr, err := qrDataURI(doc)
	if err != nil {
		return err
	}

	data := Data{Document: doc, Store: store, QRCode: qr}
	if err := t.Execute(w, data); err != nil {
		return fmt.Errorf("render %s %s: %w", doc.Type, doc.DocumentNumber, err)
	}
	return nil
}

func qrDataURI(doc *primary.Document) (template.URL, error) {
	content := fmt.Sprintf("%s %s total=%.2f", doc.Type, doc.DocumentNumber, doc.Total)
	png, err := qrcode.Encode(content, qrcode.Medium, 128)
	if err != nil {
		return "", fmt.Errorf("generate qr code: %w", err)
	}
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png)), nil
}
