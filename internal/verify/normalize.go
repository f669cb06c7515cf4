package verify

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	digitLetter   = regexp.MustCompile(`(\d)([a-zA-Z])`)
	countryPrefix = regexp.MustCompile(`(?i)^(product of|made in|produced in|imported from)\s+`)
	addressPunct  = strings.NewReplacer(".", " ", ",", " ", ";", " ")
)

// Street and compass abbreviations expanded during address normalization.
// Tokens are matched after stripping trailing periods.
var addressAbbreviations = map[string]string{
	"st":   "street",
	"ave":  "avenue",
	"blvd": "boulevard",
	"dr":   "drive",
	"ln":   "lane",
	"rd":   "road",
	"ct":   "court",
	"pl":   "place",
	"sq":   "square",
	"pkwy": "parkway",
	"hwy":  "highway",
	"ste":  "suite",
	"apt":  "apartment",
	"fl":   "floor",
	"n":    "north",
	"s":    "south",
	"e":    "east",
	"w":    "west",
	"ne":   "northeast",
	"nw":   "northwest",
	"se":   "southeast",
	"sw":   "southwest",
}

// Normalize trims, lowercases, and collapses internal whitespace runs to a
// single space.
func Normalize(s string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), " ")
}

// NormalizeWhitespace collapses whitespace but preserves case. Used for the
// government warning, where capitalization is itself under test.
func NormalizeWhitespace(s string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(s), " ")
}

// NormalizeAddress lowercases an address, strips punctuation, and expands
// common street and compass abbreviations token by token. Unrecognized tokens
// pass through unchanged, preserving order.
func NormalizeAddress(s string) string {
	cleaned := whitespaceRun.ReplaceAllString(addressPunct.Replace(Normalize(s)), " ")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return ""
	}

	tokens := strings.Split(cleaned, " ")
	for i, tok := range tokens {
		if full, ok := addressAbbreviations[strings.TrimRight(tok, ".")]; ok {
			tokens[i] = full
		}
	}
	return strings.Join(tokens, " ")
}

// NormalizeNetContents normalizes text and inserts a space at every
// digit-followed-by-letter boundary so "750ml" and "750 ml" compare equal.
func NormalizeNetContents(s string) string {
	return digitLetter.ReplaceAllString(Normalize(s), "$1 $2")
}

// ExtractCountry isolates the bare country name by stripping a leading
// "product of" / "made in" style phrase.
func ExtractCountry(s string) string {
	return countryPrefix.ReplaceAllString(Normalize(s), "")
}
