package stats

import (
	"strconv"
	"strings"
)

// csvHeader is the fixed export column order.
const csvHeader = "Date,Mood Scale,Mood Emoji,Notes"

// ExportCSV renders records as the export projection: header plus one
// comma-joined row per record in list order, newline-separated. Fields are not
// quoted, matching the original export format: notes containing commas will
// misalign columns. That is a known limitation of the format, preserved
// deliberately and pinned by tests.
func ExportCSV(records []Record) string {
	var b strings.Builder
	b.WriteString(csvHeader)

	for _, r := range records {
		b.WriteByte('\n')
		b.WriteString(r.DateKey())
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(r.Scale))
		b.WriteByte(',')
		b.WriteString(r.Emoji)
		b.WriteByte(',')
		b.WriteString(r.Notes)
	}

	return b.String()
}
