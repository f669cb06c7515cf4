package verify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"labelcheck/internal/verify"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims_and_lowercases", "  Old Tom RESERVE  ", "old tom reserve"},
		{"collapses_whitespace", "old\t tom\n\nreserve", "old tom reserve"},
		{"empty", "", ""},
		{"only_whitespace", "   \t ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, verify.Normalize(tt.in))
		})
	}
}

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"street_abbreviation", "123 Main St", "123 main street"},
		{"compass_abbreviation", "100 N Main St", "100 north main street"},
		{"punctuation_stripped", "123 Main St., Bardstown, KY", "123 main street bardstown ky"},
		{"suite_and_floor", "500 Oak Blvd Ste 2, Fl 3", "500 oak boulevard suite 2 floor 3"},
		{"unknown_tokens_pass_through", "742 Evergreen Terrace", "742 evergreen terrace"},
		{"diagonal_compass", "12 SW Pine Ave", "12 southwest pine avenue"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, verify.NormalizeAddress(tt.in))
		})
	}
}

func TestNormalizeNetContents(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"unspaced_unit", "750ml", "750 ml"},
		{"spaced_unit_unchanged", "750 mL", "750 ml"},
		{"mixed", "1L (33.8FL OZ)", "1 l (33.8 fl oz)"},
		{"bare_number", "750", "750"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, verify.NormalizeNetContents(tt.in))
		})
	}
}

func TestExtractCountry(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"product_of", "Product of France", "france"},
		{"made_in", "MADE IN Mexico", "mexico"},
		{"produced_in", "Produced in Scotland", "scotland"},
		{"imported_from", "Imported From Japan", "japan"},
		{"bare_country", "France", "france"},
		{"prefix_only_inside_text_kept", "fine product of france", "fine product of france"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, verify.ExtractCountry(tt.in))
		})
	}
}

func TestNormalizeWhitespace_PreservesCase(t *testing.T) {
	assert.Equal(t, "GOVERNMENT WARNING: text", verify.NormalizeWhitespace("  GOVERNMENT   WARNING:\ttext "))
}
