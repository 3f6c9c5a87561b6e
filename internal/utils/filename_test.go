package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain name", "Ana Pop", "Ana Pop"},
		{"path separators", "Ana/Pop\\Jr", "AnaPopJr"},
		{"reserved characters", `An<a>:"P|o?p*`, "AnaPop"},
		{"newlines and tabs", "Ana\nPop\tJr", "Ana Pop Jr"},
		{"collapsed spaces", "Ana    Pop", "Ana Pop"},
		{"surrounding whitespace", "  Ana Pop  ", "Ana Pop"},
		{"empty input", "", "Client"},
		{"only invalid characters", `/\:*?`, "Client"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestSanitizeFilename_TruncatesLongNames(t *testing.T) {
	long := strings.Repeat("a", 300)
	result := SanitizeFilename(long)
	assert.LessOrEqual(t, len(result), 200)
	assert.NotEmpty(t, result)
}
