// Package display holds the result types commands hand to a ui.Renderer.
// Every type carries json tags so editor integrations can consume the
// JSON format directly.
package display

// Expansion is the outcome of expanding or wrapping with an abbreviation
type Expansion struct {
	Abbreviation string `json:"abbreviation"`
	DocType      string `json:"docType"`
	Profile      string `json:"profile"`
	Output       string `json:"output"`

	// Caret is the marker the output uses for caret positions
	Caret string `json:"caret,omitempty"`
}

// LineMatch is an abbreviation located in an editor line
type LineMatch struct {
	Line         string `json:"line"`
	Caret        int    `json:"caret"`
	Abbreviation string `json:"abbreviation"`
	Start        int    `json:"start"`
}

// Found reports whether an abbreviation was located
func (m LineMatch) Found() bool {
	return m.Abbreviation != ""
}

// Edit is a buffer replacement produced by an editor action
type Edit struct {
	Action string `json:"action"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Text   string `json:"text"`
	Caret  int    `json:"caret"`

	// Select marks a selection of start:end rather than a replacement
	Select bool `json:"select,omitempty"`
}

// Table is a titled grid of rows, rendered as a table in terminals
type Table struct {
	Title   string     `json:"title,omitempty"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.Rows)
}

// AddRow appends a row
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}
