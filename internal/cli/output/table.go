package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// TableRenderer is implemented by results that render as a table.
type TableRenderer interface {
	// Headers returns the column headers for the table.
	Headers() []string
	// Rows returns the data rows for the table.
	Rows() [][]string
}

// PrintTable writes data as a borderless, left-aligned table.
func PrintTable(w io.Writer, data TableRenderer) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader(data.Headers())

	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	table.AppendBulk(data.Rows())
	table.Render()
	return nil
}

// Fields is an ordered list of name/value pairs describing one record, such
// as the attributes read from a single path. It renders as a two-column
// FIELD/VALUE table.
type Fields [][2]string

// Add appends a pair. Empty values are shown as "-".
func (f *Fields) Add(name, value string) {
	if value == "" {
		value = "-"
	}
	*f = append(*f, [2]string{name, value})
}

// Headers implements TableRenderer.
func (f Fields) Headers() []string {
	return []string{"Field", "Value"}
}

// Rows implements TableRenderer.
func (f Fields) Rows() [][]string {
	rows := make([][]string, len(f))
	for i, pair := range f {
		rows[i] = []string{pair[0], pair[1]}
	}
	return rows
}
