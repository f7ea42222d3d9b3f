package export

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/endovision/depth-rater/internal/apperr"
	"github.com/endovision/depth-rater/internal/domain"
)

func sampleJudgments() []domain.Judgment {
	return []domain.Judgment{
		{RaterName: "alice", Filename: "a.png", Category: "high", ChosenModel: "DepthPro"},
		{RaterName: "alice", Filename: "b.png", Category: "mid", ChosenModel: "EndoDac"},
		{RaterName: "alice", Filename: "c.png", Category: "low", ChosenModel: "DepthPro"},
	}
}

func TestXlsxExporter_Export(t *testing.T) {
	t.Run("writes header and rows in log order", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "evaluation_results.xlsx")
		exporter := NewXlsxExporter(path)

		require.NoError(t, exporter.Export(sampleJudgments()))

		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows("Sheet1")
		require.NoError(t, err)
		require.Len(t, rows, 4)
		assert.Equal(t, []string{"rater_name", "filename", "category", "chosen_model"}, rows[0])
		assert.Equal(t, []string{"alice", "a.png", "high", "DepthPro"}, rows[1])
		assert.Equal(t, []string{"alice", "b.png", "mid", "EndoDac"}, rows[2])
		assert.Equal(t, []string{"alice", "c.png", "low", "DepthPro"}, rows[3])
	})

	t.Run("empty log yields header-only workbook", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.xlsx")
		exporter := NewXlsxExporter(path)

		require.NoError(t, exporter.Export(nil))

		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows("Sheet1")
		require.NoError(t, err)
		require.Len(t, rows, 1)
	})

	t.Run("unwritable sink surfaces an export error", func(t *testing.T) {
		exporter := NewXlsxExporter(filepath.Join(t.TempDir(), "missing", "nested", "out.xlsx"))

		err := exporter.Export(sampleJudgments())
		require.Error(t, err)

		var ee *apperr.ExportError
		assert.ErrorAs(t, err, &ee)
	})
}

func TestXlsxExporter_WriteTo(t *testing.T) {
	exporter := NewXlsxExporter("unused.xlsx")

	var buf bytes.Buffer
	require.NoError(t, exporter.WriteTo(&buf, sampleJudgments()))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "a.png", rows[1][1])
}
