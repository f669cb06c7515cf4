package verify

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"labelcheck/internal/domain"
)

// proofCrossCheckTolerance is the allowed drift between a stated proof and
// twice the stated ABV before the combined format is flagged as inconsistent.
const proofCrossCheckTolerance = 0.1

// ParseNote is an annotation produced while parsing alcohol content.
type ParseNote struct {
	Text  string           `json:"text"`
	Level domain.NoteLevel `json:"level"`
}

// ParsedAlcoholContent is the ephemeral result of parsing a free-form alcohol
// content statement. Nil ABV means no recognized format matched and the caller
// should fall back to text comparison.
type ParsedAlcoholContent struct {
	RawText                string
	ABV                    *float64
	Proof                  *float64
	InferredFromBareNumber bool
	Notes                  []ParseNote
}

// alcoholPattern pairs a regex with its handler. Patterns are tried in order;
// the first match wins.
type alcoholPattern struct {
	re     *regexp.Regexp
	handle func(parsed *ParsedAlcoholContent, groups []string)
}

var alcoholPatterns = []alcoholPattern{
	{
		// Combined ABV + proof: "40% Alc./Vol. (80 Proof)". Qualifier words
		// between the percent and the parenthetical are free-form.
		re: regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*%[^()]*\(\s*(\d+(?:\.\d+)?)\s*proof\s*\)`),
		handle: func(parsed *ParsedAlcoholContent, groups []string) {
			abv := mustFloat(groups[1])
			proof := mustFloat(groups[2])
			parsed.ABV = &abv
			parsed.Proof = &proof
			if math.Abs(proof-2*abv) > proofCrossCheckTolerance {
				parsed.Notes = append(parsed.Notes, ParseNote{
					Text:  fmt.Sprintf("stated proof %g does not equal twice the stated ABV %g%%", proof, abv),
					Level: domain.NoteLevelCaution,
				})
			}
		},
	},
	{
		// Proof only: "80 Proof". ABV derived via the US statutory relation.
		re: regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*proof\b`),
		handle: func(parsed *ParsedAlcoholContent, groups []string) {
			proof := mustFloat(groups[1])
			abv := proof / 2
			parsed.Proof = &proof
			parsed.ABV = &abv
			parsed.Notes = append(parsed.Notes, ParseNote{
				Text:  fmt.Sprintf("derived %g%% ABV from %g proof", abv, proof),
				Level: domain.NoteLevelInfo,
			})
		},
	},
	{
		// Percent, with or without qualifier words ("ABV", "alc./vol.",
		// "percent alcohol by volume").
		re: regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:%|percent)`),
		handle: func(parsed *ParsedAlcoholContent, groups []string) {
			abv := mustFloat(groups[1])
			parsed.ABV = &abv
		},
	},
	{
		// Bare number with no unit token at all. Assume ABV, but flag the
		// inference so comparisons never silently treat it as certain.
		re: regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)\s*$`),
		handle: func(parsed *ParsedAlcoholContent, groups []string) {
			abv := mustFloat(groups[1])
			parsed.ABV = &abv
			parsed.InferredFromBareNumber = true
			parsed.Notes = append(parsed.Notes, ParseNote{
				Text:  fmt.Sprintf("no unit found on %q, assumed %% ABV", parsed.RawText),
				Level: domain.NoteLevelCaution,
			})
		},
	},
}

// ParseAlcoholContent extracts ABV/proof from free text. Recognized formats
// are tried in strict order; when none matches, all numeric fields stay nil.
func ParseAlcoholContent(text string) *ParsedAlcoholContent {
	parsed := &ParsedAlcoholContent{RawText: text}
	for _, p := range alcoholPatterns {
		if groups := p.re.FindStringSubmatch(text); groups != nil {
			p.handle(parsed, groups)
			return parsed
		}
	}
	return parsed
}

// mustFloat converts a regex-captured decimal. Captures are guaranteed
// numeric by the patterns, so conversion cannot fail.
func mustFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
