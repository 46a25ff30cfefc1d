package report

import (
	"io"
	"math"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Table collects the header and rows of one report section before it is drawn.
type Table struct {
	headers []string
	data    [][]string
}

// NewTable returns a report section with the given header and initial rows.
func NewTable(headers []string, data [][]string) *Table {
	return &Table{
		headers,
		data,
	}
}

// Append adds a row.
func (t *Table) Append(row ...string) {
	t.data = append(t.data, row)
}

// Draw renders the table to w.
func (t *Table) Draw(w io.Writer) {
	output := tablewriter.NewWriter(w)
	output.SetHeader(t.headers)
	output.SetAutoFormatHeaders(false)
	output.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, v := range t.data {
		output.Append(v)
	}
	output.Render()
}

// number formats v with the shortest representation that round-trips.
func number(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "+inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func fixed(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}
