// Package pdf genera el reporte de estadísticas del inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Valor total | Cantidad total | N° productos        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Nombre | Categoría | Precio | Cant. | Subtotal   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/inventario-simple/internal/application/ports"
	"github.com/jhoicas/inventario-simple/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa ports.StockReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	printer  *message.Printer
	currency string
}

// NewMarotoReportGenerator construye el generador. locale es un tag BCP 47 (ej. "pt-BR");
// si no se puede parsear se usa inglés.
func NewMarotoReportGenerator(locale, currency string) *MarotoReportGenerator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &MarotoReportGenerator{printer: message.NewPrinter(tag), currency: currency}
}

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateStockReport(_ context.Context, report ports.StockReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estadísticas del inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range g.tableRows(report.Products) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoReportGenerator) headerRow(report ports.StockReport) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("Estadísticas del inventario", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func (g *MarotoReportGenerator) summaryRow(report ports.StockReport) core.Row {
	block := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Top: 6}),
		)
	}
	return row.New(16).Add(
		block("Valor total del inventario", g.money(report.TotalValue)),
		block("Cantidad total", g.printer.Sprintf("%d unidades", report.TotalQuantity)),
		block("Productos registrados", strconv.Itoa(len(report.Products))),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Nombre", 3, align.Left),
		h("Categoría", 3, align.Left),
		h("Precio", 2, align.Right),
		h("Cant.", 1, align.Center),
		h("Subtotal", 2, align.Right),
	)
}

// tableRows: una fila por producto, en orden de inserción.
func (g *MarotoReportGenerator) tableRows(products []entity.Product) []core.Row {
	if len(products) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(
			text.New("Sin productos registrados.", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		))}
	}
	result := make([]core.Row, 0, len(products))
	for i, p := range products {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(strconv.Itoa(i), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(p.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(p.Category, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(g.money(p.Price), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(strconv.Itoa(p.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(g.money(p.Value()), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

// money formatea con dos decimales y los separadores del locale configurado.
func (g *MarotoReportGenerator) money(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return g.currency + " " + g.printer.Sprintf("%.2f", f)
}
