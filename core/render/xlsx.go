package render

import (
	"fmt"

	"github.com/gaurav-prasanna/pagescope/core"
	"github.com/xuri/excelize/v2"
)

// XLSXRenderer exports the analysis as an Excel workbook with one sheet
// per report section.
type XLSXRenderer struct{}

// NewXLSXRenderer creates an XLSXRenderer.
func NewXLSXRenderer() *XLSXRenderer {
	return &XLSXRenderer{}
}

// table is one worksheet: a header row followed by data rows.
type table struct {
	sheet  string
	header []string
	rows   [][]any
	widths []float64
}

// Render builds the workbook. The error variant yields a single Error sheet.
func (r *XLSXRenderer) Render(result *core.AnalysisResult) ([]byte, error) {
	var tables []table
	if result.Failed() {
		tables = []table{{
			sheet:  "Error",
			header: []string{"Error"},
			rows:   [][]any{{result.Error}},
			widths: []float64{80},
		}}
	} else {
		tables = workbookTables(result.Page)
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E0E0E0"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating header style: %w", err)
	}

	for i, t := range tables {
		index, err := f.NewSheet(t.sheet)
		if err != nil {
			return nil, fmt.Errorf("creating sheet %s: %w", t.sheet, err)
		}
		if i == 0 {
			f.SetActiveSheet(index)
		}
		if err := writeTable(f, t, headerStyle); err != nil {
			return nil, err
		}
	}

	// Delete default sheet
	f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for Excel output.
func (r *XLSXRenderer) Extension() string {
	return ".xlsx"
}

func writeTable(f *excelize.File, t table, headerStyle int) error {
	for col, title := range t.header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(t.sheet, cell, title); err != nil {
			return fmt.Errorf("writing %s!%s: %w", t.sheet, cell, err)
		}
		if err := f.SetCellStyle(t.sheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("styling %s!%s: %w", t.sheet, cell, err)
		}
	}

	for rowIdx, row := range t.rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(t.sheet, cell, value); err != nil {
				return fmt.Errorf("writing %s!%s: %w", t.sheet, cell, err)
			}
		}
	}

	for col, width := range t.widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(t.sheet, name, name, width); err != nil {
			return fmt.Errorf("sizing %s column %s: %w", t.sheet, name, err)
		}
	}
	return nil
}

func workbookTables(page *core.PageAnalysis) []table {
	withAlt, missing := altStats(page.Images)
	summary := table{
		sheet:  "Summary",
		header: []string{"Metric", "Value"},
		rows: [][]any{
			{"URL", page.URL},
			{"Total images", page.Images.Total},
			{"Images with alt text", withAlt},
			{"Images missing alt text", missing},
			{"Total links", page.Links.Total},
			{"Internal links", page.Links.InternalCount},
			{"External links", page.Links.ExternalCount},
			{"Approx. word count", page.Metrics.WordCount},
			{"Paragraphs", page.Metrics.ParagraphCount},
			{"External stylesheets", page.Metrics.StylesheetCount},
			{"External scripts", page.Metrics.ScriptCount},
		},
		widths: []float64{28, 60},
	}

	meta := table{sheet: "Meta", header: []string{"Tag", "Content"}, widths: []float64{30, 80}}
	for _, tag := range page.Meta.Entries() {
		meta.rows = append(meta.rows, []any{tag.Key, tag.Value()})
	}

	headings := table{sheet: "Headings", header: []string{"Level", "Text"}, widths: []float64{10, 80}}
	for _, level := range core.HeadingLevels {
		for _, text := range page.Headings[level] {
			headings.rows = append(headings.rows, []any{level, text})
		}
	}

	images := table{sheet: "Images", header: []string{"Source", "Alt", "Width", "Height"}, widths: []float64{60, 40, 10, 10}}
	for _, img := range page.Images.Images {
		images.rows = append(images.rows, []any{img.Src, img.Alt, img.Width, img.Height})
	}

	links := table{sheet: "Links", header: []string{"Type", "Text", "URL"}, widths: []float64{12, 40, 60}}
	for _, link := range page.Links.Internal {
		links.rows = append(links.rows, []any{"internal", link.Text, link.Href})
	}
	for _, link := range page.Links.External {
		links.rows = append(links.rows, []any{"external", link.Text, link.Href})
	}

	return []table{summary, meta, headings, images, links}
}
