package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_AddRow(t *testing.T) {
	table := &Table{Headers: []string{"name", "type"}}
	assert.Equal(t, 0, table.Len())

	table.AddRow("html:5", "snippet")
	table.AddRow("a", "element")

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []string{"a", "element"}, table.Rows[1])
}

func TestLineMatch_Found(t *testing.T) {
	assert.True(t, LineMatch{Abbreviation: "ul>li"}.Found())
	assert.False(t, LineMatch{Line: "plain text"}.Found())
}
