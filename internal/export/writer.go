package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"labelcheck/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row. One row per field result; verification-
// level columns repeat on every row of the same verification.
var columns = []string{
	"Verification #",
	"Overall Status",
	"Is Alcohol Label",
	"Image Quality",
	"Confidence",
	"Processing Time (ms)",
	"Field",
	"Expected",
	"Extracted",
	"Field Status",
	"Explanation",
	"Warning Text Match",
	"Warning Issues",
	"Verification ID",
}

// Writer wraps csv.Writer for exporting verification results as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteResults converts a batch of verification results to CSV rows and
// writes them. Results with no compared fields still get one row carrying the
// verification-level columns.
func (w *Writer) WriteResults(results []domain.VerificationResult) error {
	for i := range results {
		for _, row := range resultToRows(i+1, &results[i]) {
			if err := w.csv.Write(row); err != nil {
				return err
			}
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func resultToRows(num int, res *domain.VerificationResult) [][]string {
	base := func() []string {
		row := make([]string, len(columns))
		row[0] = strconv.Itoa(num)
		row[1] = string(res.OverallStatus)
		row[2] = formatBool(res.IsAlcoholLabel)
		row[3] = string(res.ImageQuality)
		row[4] = strconv.FormatFloat(res.Confidence, 'f', 2, 64)
		row[5] = strconv.FormatInt(res.ProcessingTimeMs, 10)
		if res.GovernmentWarningCheck != nil {
			row[11] = formatBool(res.GovernmentWarningCheck.TextMatch)
			row[12] = strings.Join(res.GovernmentWarningCheck.Issues, "; ")
		}
		row[13] = res.ID
		return row
	}

	if len(res.Fields) == 0 {
		return [][]string{base()}
	}

	rows := make([][]string, 0, len(res.Fields))
	for _, f := range res.Fields {
		row := base()
		row[6] = f.Name
		row[7] = f.Expected
		if f.Extracted != nil {
			row[8] = *f.Extracted
		}
		row[9] = string(f.Status)
		row[10] = f.Explanation
		rows = append(rows, row)
	}
	return rows
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a report name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for the Content-Disposition
// header. Format: {sanitized_name}_{YYYY-MM-DD}.{ext}
func BuildFilename(name, ext string) string {
	return fmt.Sprintf("%s_%s.%s", SanitizeFilename(name), time.Now().Format("2006-01-02"), ext)
}
