package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected [][]float32
	}{
		{"Simple", `[[1,2],[3,4]]`, [][]float32{{1, 2}, {3, 4}}},
		{"Floats", `[[0.5,-1.25]]`, [][]float32{{0.5, -1.25}}},
		{"Empty", `[]`, [][]float32{}},
		{"EmptyRow", `[[]]`, [][]float32{{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Vectors("features.json", strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestVectorsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"NotJSON", `{`},
		{"WrongShape", `[1,2,3]`},
		{"StringElement", `[["a","b"]]`},
		{"Object", `{"rows": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Vectors("features.json", strings.NewReader(tt.input))
			var malformed *ErrMalformedInput
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, "features.json", malformed.Name)
		})
	}
}

func TestLabels(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Strings", `["a","b","a"]`, []string{"a", "b", "a"}},
		{"Integers", `[1,2,1]`, []string{"1", "2", "1"}},
		{"KeepsLiteral", `[1.0, 2.50]`, []string{"1.0", "2.50"}},
		{"Mixed", `["spam", 0]`, []string{"spam", "0"}},
		{"Empty", `[]`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Labels("labels.json", strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLabelsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"NotJSON", `not json`},
		{"NestedArray", `[[1],[2]]`},
		{"Null", `[null]`},
		{"Bool", `[true]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Labels("labels.json", strings.NewReader(tt.input))
			var malformed *ErrMalformedInput
			assert.ErrorAs(t, err, &malformed)
		})
	}
}
