package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"labelcheck/internal/domain"
)

func strp(s string) *string { return &s }

func sampleResults() []domain.VerificationResult {
	return []domain.VerificationResult{
		{
			OverallStatus:  domain.OverallStatusApproved,
			IsAlcoholLabel: true,
			ImageQuality:   domain.ImageQualityGood,
			Confidence:     0.95,
			Fields: []domain.FieldResult{
				{
					Name:        "Brand Name",
					Key:         domain.FieldBrandName,
					Expected:    "Old Tom Reserve",
					Extracted:   strp("Old Tom Reserve"),
					Status:      domain.FieldStatusMatch,
					Explanation: "Exact match",
				},
				{
					Name:        "Net Contents",
					Key:         domain.FieldNetContents,
					Expected:    "750 mL",
					Extracted:   strp("750mL"),
					Status:      domain.FieldStatusMatch,
					Explanation: "Values match after normalization",
				},
			},
			GovernmentWarningCheck: &domain.GovernmentWarningCheck{
				TextMatch: true,
			},
			ProcessingTimeMs: 1200,
		},
		{
			OverallStatus:    domain.OverallStatusRejected,
			IsAlcoholLabel:   false,
			ImageQuality:     domain.ImageQualityPoor,
			Confidence:       0.3,
			ProcessingTimeMs: 800,
		},
	}
}

func TestWriter_WritesHeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteResults(sampleResults()))
	w.Flush()
	require.NoError(t, w.Error())

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	// header + 2 field rows + 1 summary-only row
	require.Len(t, records, 4)
	assert.Equal(t, columns, records[0])

	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, "approved", records[1][1])
	assert.Equal(t, "Yes", records[1][2])
	assert.Equal(t, "Brand Name", records[1][6])
	assert.Equal(t, "Old Tom Reserve", records[1][7])
	assert.Equal(t, "match", records[1][9])
	assert.Equal(t, "Yes", records[1][11])

	assert.Equal(t, "Net Contents", records[2][6])

	// result with no fields still gets one row
	assert.Equal(t, "2", records[3][0])
	assert.Equal(t, "rejected", records[3][1])
	assert.Equal(t, "No", records[3][2])
	assert.Empty(t, records[3][6])
}

func TestWriter_NilExtractedRendersEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	results := []domain.VerificationResult{
		{
			OverallStatus: domain.OverallStatusNeedsReview,
			Fields: []domain.FieldResult{
				{
					Name:     "Producer Name",
					Key:      domain.FieldProducerName,
					Expected: "Old Tom Distilling Co.",
					Status:   domain.FieldStatusNotFound,
				},
			},
		},
	}
	require.NoError(t, w.WriteResults(results))
	w.Flush()
	require.NoError(t, w.Error())

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0][8])
	assert.Equal(t, "not_found", records[0][9])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleResults()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, "Verification #", rows[0][0])
	assert.Equal(t, "Brand Name", rows[1][6])
	assert.Equal(t, "approved", rows[1][1])
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "report", "report"},
		{"spaces", "label report", "label_report"},
		{"special chars", "label/report:2026?", "label_report_2026"},
		{"consecutive", "a   b///c", "a_b_c"},
		{"truncate", strings.Repeat("x", 150), strings.Repeat("x", 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.in))
		})
	}
}

func TestBuildFilename(t *testing.T) {
	got := BuildFilename("label report", "csv")
	assert.Regexp(t, `^label_report_\d{4}-\d{2}-\d{2}\.csv$`, got)
}
