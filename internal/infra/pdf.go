package infra

// pdf.go — Printable order summary built with go-pdf/fpdf.
// Layout: title block (Cliente / Comercial / Fecha) followed by the line-item
// table [Código | Artículo | Cantidad | Color], one row per line, in the
// order supplied. The renderer returns bytes and never touches the disk;
// identical inputs produce identical output (creation date pinned, catalog
// resources sorted).

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/AndresGigant/pedidos-comerciales/internal/model"
)

// GenerarPedidoPDF renders the order summary document for a persisted pedido.
func GenerarPedidoPDF(cliente, comercial, fecha string, lineas []model.LineaPedido) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "Letter", "")
	// Sorted resource dictionaries plus a pinned creation date keep the
	// output byte-reproducible for identical inputs.
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(time.Unix(0, 0).UTC())
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 40

	// ── Título ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(contentW, 10, tr("Resumen del Pedido"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Datos del pedido ──────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 11)
	for _, linea := range []struct{ etiqueta, valor string }{
		{"Cliente", cliente},
		{"Comercial", comercial},
		{"Fecha", fecha},
	} {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(28, 6, tr(linea.etiqueta+":"), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(contentW-28, 6, tr(linea.valor), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// ── Tabla de artículos ────────────────────────────────────────────────────
	col1 := contentW * 0.18 // código
	col2 := contentW * 0.44 // artículo
	col3 := contentW * 0.16 // cantidad
	col4 := contentW * 0.22 // color

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(col1, 7, tr("Código"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(col2, 7, tr("Artículo"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(col3, 7, tr("Cantidad"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(col4, 7, tr("Color"), "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, ln := range lineas {
		pdf.CellFormat(col1, 7, tr(ln.Codigo), "1", 0, "C", false, 0, "")
		pdf.CellFormat(col2, 7, tr(ln.Articulo), "1", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 7, fmt.Sprintf("%d", ln.Cantidad), "1", 0, "C", false, 0, "")
		pdf.CellFormat(col4, 7, tr(ln.Color), "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render pedido: %w", err)
	}
	return buf.Bytes(), nil
}
