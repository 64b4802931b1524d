package export

// Column is one table column. A zero Width shares the remaining page width.
type Column struct {
	Header string
	Width  float64
}

// Section is a headed block of rows; Heading may be empty.
type Section struct {
	Heading string
	Rows    [][]string
}

// Document is tabular export content shared by every renderer.
type Document struct {
	Title    string
	Subtitle string
	Columns  []Column
	Sections []Section
}

// Headers returns the column headers in order.
func (d Document) Headers() []string {
	headers := make([]string, len(d.Columns))
	for i, col := range d.Columns {
		headers[i] = col.Header
	}
	return headers
}
