package export

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/endovision/depth-rater/internal/apperr"
	"github.com/endovision/depth-rater/internal/domain"
)

const sheet = "Sheet1"

// header is the fixed column order of the result workbook.
var header = []string{"rater_name", "filename", "category", "chosen_model"}

// XlsxExporter serializes a judgment log to an Excel workbook at a fixed path.
type XlsxExporter struct {
	path string
}

func NewXlsxExporter(path string) *XlsxExporter {
	return &XlsxExporter{
		path: path,
	}
}

func (e *XlsxExporter) Path() string {
	return e.path
}

// Export writes the judgments to the configured workbook path in log order.
// On failure the log is untouched and the export can be retried.
func (e *XlsxExporter) Export(judgments []domain.Judgment) error {
	f, err := build(judgments)
	if err != nil {
		return apperr.NewExportWrap("build results workbook", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("Closing workbook failed", "error", err)
		}
	}()

	if err := f.SaveAs(e.path); err != nil {
		return apperr.NewExportWrap(fmt.Sprintf("write results workbook %s", e.path), err)
	}
	slog.Info("Results exported", "path", e.path, "judgments", len(judgments))
	return nil
}

// WriteTo streams the workbook to w, e.g. for an HTTP download.
func (e *XlsxExporter) WriteTo(w io.Writer, judgments []domain.Judgment) error {
	f, err := build(judgments)
	if err != nil {
		return apperr.NewExportWrap("build results workbook", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("Closing workbook failed", "error", err)
		}
	}()

	if err := f.Write(w); err != nil {
		return apperr.NewExportWrap("stream results workbook", err)
	}
	return nil
}

func build(judgments []domain.Judgment) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, j := range judgments {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []string{j.RaterName, j.Filename, j.Category, j.ChosenModel}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	return f, nil
}
