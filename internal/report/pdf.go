package report

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"

	"cold_load_calc/load"
)

const (
	pageMarginMM = 15.0
	labelWidthMM = 80.0
	valueWidthMM = 50.0
	shareWidthMM = 40.0
	lineHeightMM = 7.0
)

/*
Write a one page summary of a result.

	Args:
		w: destination of the PDF document
		title: heading of the page
		r: result to summarise
	Notes:
		Uses the core Helvetica font, so text is limited to Latin-1.
*/
func WritePDF(w io.Writer, title string, r load.LoadResult) error {
	if title == "" {
		title = "Cold Room Refrigeration Load"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMarginMM, pageMarginMM, pageMarginMM)
	pdf.SetTitle(title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(14)

	section(pdf, "Room")
	pair(pdf, "Dimensions (L x W x H)", fmt.Sprintf("%.2f x %.2f x %.2f m", r.Dimensions.Length, r.Dimensions.Width, r.Dimensions.Height))
	pair(pdf, "Volume", fmt.Sprintf("%.2f m3", r.Volume))
	pair(pdf, "Wall / ceiling / floor area", fmt.Sprintf("%.2f / %.2f / %.2f m2", r.Areas.Wall, r.Areas.Ceiling, r.Areas.Floor))
	pair(pdf, "Door area", fmt.Sprintf("%.2f m2", r.Areas.Door))
	pair(pdf, "Insulation", fmt.Sprintf("%s %g mm, U = %.3f W/m2K", r.InsulationType, r.InsulationThickness, r.UFactor))
	pair(pdf, "Temperature difference", fmt.Sprintf("%.1f K", r.TemperatureDifference))
	pdf.Ln(4)

	section(pdf, "Storage")
	pair(pdf, "Product / storage method", fmt.Sprintf("%s / %s", r.ProductType, r.StorageType))
	pair(pdf, "Max storage capacity", fmt.Sprintf("%.0f kg", r.Storage.MaxStorageCapacity))
	pair(pdf, "Storage utilization", fmt.Sprintf("%.1f %%", r.Storage.StorageUtilization))
	pdf.Ln(4)

	section(pdf, "Load breakdown")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(labelWidthMM, lineHeightMM, "Category", "1", 0, "L", false, 0, "")
	pdf.CellFormat(valueWidthMM, lineHeightMM, "Load (kW)", "1", 0, "R", false, 0, "")
	pdf.CellFormat(shareWidthMM, lineHeightMM, "Share (%)", "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range r.Breakdown() {
		pdf.CellFormat(labelWidthMM, lineHeightMM, row.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(valueWidthMM, lineHeightMM, fmt.Sprintf("%.3f", row.Load), "1", 0, "R", false, 0, "")
		pdf.CellFormat(shareWidthMM, lineHeightMM, fmt.Sprintf("%.1f", row.Share), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	section(pdf, "Totals")
	pair(pdf, "Total load", fmt.Sprintf("%.3f kW", r.TotalLoad))
	pair(pdf, "Safety factor", fmt.Sprintf("%.2f", r.SafetyFactor))
	pair(pdf, "Total load with safety", fmt.Sprintf("%.3f kW", r.TotalLoadWithSafety))
	pdf.SetFont("Helvetica", "B", 12)
	pair(pdf, "Refrigeration capacity", fmt.Sprintf("%.2f TR", r.RefrigerationTons))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func section(pdf *gofpdf.Fpdf, name string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, lineHeightMM+1, name)
	pdf.Ln(lineHeightMM + 1)
	pdf.SetFont("Helvetica", "", 10)
}

func pair(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(labelWidthMM, lineHeightMM, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, lineHeightMM, value, "", 1, "L", false, 0, "")
}
