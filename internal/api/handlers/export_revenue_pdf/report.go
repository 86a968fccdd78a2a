package export_revenue_pdf

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"

	"github.com/m04kA/AMC-BookingService/internal/usecase/monthly_revenue"
)

// Названия месяцев для заголовка отчета
var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// writeReport формирует PDF отчет по выручке за месяц
func writeReport(w io.Writer, rev *monthly_revenue.Response) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr(fmt.Sprintf("Reporte de ingresos - %s %d", monthNames[rev.Month-1], rev.Year)))
	pdf.Ln(14)

	// Таблица по отрезкам месяца
	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(60, 8, tr("Días"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(60, 8, tr("Ingresos cobrados"), "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, bucket := range rev.Buckets {
		pdf.CellFormat(60, 8, bucket.Label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, formatAmount(bucket.Total), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	// Итоги месяца
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, tr("Totales del mes"))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	writeTotalRow(pdf, tr, "Ingresos esperados", rev.ExpectedTotal)
	writeTotalRow(pdf, tr, "Cobrado en consultorio", rev.OnSiteTotal)
	writeTotalRow(pdf, tr, "Cobrado en línea", rev.OnlineTotal)

	pdf.SetFont("Arial", "B", 11)
	writeTotalRow(pdf, tr, "Total cobrado", rev.CollectedTotal)

	return pdf.Output(w)
}

func writeTotalRow(pdf *gofpdf.Fpdf, tr func(string) string, label string, amount float64) {
	pdf.CellFormat(60, 8, tr(label), "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, formatAmount(amount), "", 1, "R", false, 0, "")
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
