package validate

import (
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequired(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"value", "x", false},
		{"empty string", "", true},
		{"only spaces", "   ", true},
		{"only tabs", "\t\t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Required(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "Required(%q) error = %v", tt.input, err)
		})
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"default name", "nuevo-archivo.txt", false},
		{"with spaces", "my notes.txt", false},
		{"no extension", "README", false},
		{"empty", "", true},
		{"forward slash", "dir/a.txt", true},
		{"backslash", `dir\a.txt`, true},
		{"dot", ".", true},
		{"dot dot", "..", true},
		{"nul byte", "a\x00.txt", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FileName(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "FileName(%q) error = %v", tt.input, err)
		})
	}
}

func TestFileNameField(t *testing.T) {
	err := FileNameField("default_name", "a/b.txt")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "default_name", fieldErrs[0].Field)

	assert.NoError(t, FileNameField("default_name", "b.txt"))
}
