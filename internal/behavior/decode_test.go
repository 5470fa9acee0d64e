package behavior

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_MatrixObject(t *testing.T) {
	m, err := Decode([]byte(`{
		"amount": {
			"entry":   {"mode": "editable", "required": true},
			"approve": {"mode": "readonly", "required": false}
		}
	}`))
	require.NoError(t, err)

	assert.Equal(t, Cell{Mode: ModeEditable, Required: true}, m.Lookup("amount", "entry"))
	assert.Equal(t, Cell{Mode: ModeReadOnly, Required: false}, m.Lookup("amount", "approve"))
}

func TestDecode_BundleArray(t *testing.T) {
	m, err := Decode([]byte(`[
		{"state": "entry", "action": "update", "rows": [
			{"field_name": "amount", "action_context": "update", "visible": true, "required": true},
			{"field_name": "notes", "action_context": "view", "visible": false, "required": false}
		]}
	]`))
	require.NoError(t, err)

	assert.Equal(t, Cell{Mode: ModeEditable, Required: true}, m.Lookup("amount", "entry"))
	assert.Equal(t, Cell{Mode: ModeHidden}, m.Lookup("notes", "entry"))
}

// Both []  and {} decode to an empty matrix, but through different paths.
func TestDecode_EmptyDocuments(t *testing.T) {
	fromArray, err := Decode([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, fromArray)

	fromObject, err := Decode([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, fromObject)
}

func TestDecode_BundleWithZeroRowsInventsNoFields(t *testing.T) {
	m, err := Decode([]byte(`[{"state": "entry", "action": "view", "rows": []}]`))
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestDecode_LeadingWhitespace(t *testing.T) {
	m, err := Decode([]byte("\n\t []"))
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestDecode_Rejects(t *testing.T) {
	_, err := Decode(nil)
	assert.Error(t, err)

	_, err = Decode([]byte(`"just a string"`))
	assert.Error(t, err)

	_, err = Decode([]byte(`[{"state": 42}]`))
	assert.Error(t, err)
}
