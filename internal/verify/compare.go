package verify

import (
	"fmt"
	"math"
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"labelcheck/internal/domain"
)

// abvTolerance is the maximum ABV difference still considered a match.
const abvTolerance = 0.001

// Display labels for field results.
var fieldNames = map[string]string{
	domain.FieldBeverageType:      "Beverage Type",
	domain.FieldBrandName:         "Brand Name",
	domain.FieldClassType:         "Class/Type",
	domain.FieldAlcoholContent:    "Alcohol Content",
	domain.FieldNetContents:       "Net Contents",
	domain.FieldProducerName:      "Producer Name",
	domain.FieldProducerAddress:   "Producer Address",
	domain.FieldCountryOfOrigin:   "Country of Origin",
	domain.FieldGovernmentWarning: "Government Warning",
}

// notFoundResult is the common verdict when extraction detected nothing for a
// field the applicant provided. It precedes all field-specific logic.
func notFoundResult(key, expected string) *domain.FieldResult {
	return &domain.FieldResult{
		Name:        fieldNames[key],
		Key:         key,
		Expected:    expected,
		Status:      domain.FieldStatusNotFound,
		Explanation: fmt.Sprintf("%s not found on the label", fieldNames[key]),
	}
}

func missing(extracted *string) bool {
	return extracted == nil || strings.TrimSpace(*extracted) == ""
}

// CompareBrandName matches brand names with a three-tier ladder: exact,
// case-insensitive, then substring containment in either direction.
func CompareBrandName(expected string, extracted *string) *domain.FieldResult {
	if missing(extracted) {
		return notFoundResult(domain.FieldBrandName, expected)
	}
	r := &domain.FieldResult{
		Name:      fieldNames[domain.FieldBrandName],
		Key:       domain.FieldBrandName,
		Expected:  expected,
		Extracted: extracted,
	}

	if strings.TrimSpace(expected) == strings.TrimSpace(*extracted) {
		r.Status = domain.FieldStatusMatch
		r.Explanation = "Brand name matches exactly"
		return r
	}

	normExp, normExt := Normalize(expected), Normalize(*extracted)
	switch {
	case normExp == normExt:
		r.Status = domain.FieldStatusWarning
		r.Explanation = "Brand name matches ignoring case and spacing"
	case strings.Contains(normExt, normExp) || strings.Contains(normExp, normExt):
		r.Status = domain.FieldStatusWarning
		r.Explanation = fmt.Sprintf("Brand name partially matches: expected %q, found %q", expected, *extracted)
	default:
		r.Status = domain.FieldStatusMismatch
		similarity := levenshtein.RatioForStrings([]rune(normExp), []rune(normExt), levenshtein.DefaultOptions)
		r.Explanation = fmt.Sprintf("Brand name does not match: expected %q, found %q (similarity %.0f%%)",
			expected, *extracted, similarity*100)
	}
	return r
}

// compareNormalizedEqual is the shared rule for fields with no partial-match
// tier: normalized equality or mismatch.
func compareNormalizedEqual(key, expected string, extracted *string, normalizer func(string) string) *domain.FieldResult {
	if missing(extracted) {
		return notFoundResult(key, expected)
	}
	r := &domain.FieldResult{
		Name:      fieldNames[key],
		Key:       key,
		Expected:  expected,
		Extracted: extracted,
	}
	if normalizer(expected) == normalizer(*extracted) {
		r.Status = domain.FieldStatusMatch
		r.Explanation = fmt.Sprintf("%s matches", fieldNames[key])
	} else {
		r.Status = domain.FieldStatusMismatch
		r.Explanation = fmt.Sprintf("%s does not match: expected %q, found %q", fieldNames[key], expected, *extracted)
	}
	return r
}

// CompareClassType matches the class/type designation case-insensitively.
func CompareClassType(expected string, extracted *string) *domain.FieldResult {
	return compareNormalizedEqual(domain.FieldClassType, expected, extracted, Normalize)
}

// CompareProducerName matches the producer name case-insensitively.
func CompareProducerName(expected string, extracted *string) *domain.FieldResult {
	return compareNormalizedEqual(domain.FieldProducerName, expected, extracted, Normalize)
}

// CompareBeverageType matches the beverage category case-insensitively.
func CompareBeverageType(expected string, extracted *string) *domain.FieldResult {
	return compareNormalizedEqual(domain.FieldBeverageType, expected, extracted, Normalize)
}

// CompareCountryOfOrigin matches countries after stripping "product of" style
// prefixes from both sides, so phrasing differences never fail the match.
func CompareCountryOfOrigin(expected string, extracted *string) *domain.FieldResult {
	return compareNormalizedEqual(domain.FieldCountryOfOrigin, expected, extracted, ExtractCountry)
}

// CompareNetContents compares net contents textually after unit-spacing
// normalization. No cross-unit volume conversion happens here: "750" and
// "750 mL" are different statements.
func CompareNetContents(expected string, extracted *string) *domain.FieldResult {
	return compareNormalizedEqual(domain.FieldNetContents, expected, extracted, NormalizeNetContents)
}

// CompareAlcoholContent parses both sides and compares numerically when
// possible, falling back to normalized text equality when either side has no
// recognizable format. A match that relied on bare-number unit inference is
// downgraded to a warning.
func CompareAlcoholContent(expected string, extracted *string) *domain.FieldResult {
	if missing(extracted) {
		return notFoundResult(domain.FieldAlcoholContent, expected)
	}
	r := &domain.FieldResult{
		Name:      fieldNames[domain.FieldAlcoholContent],
		Key:       domain.FieldAlcoholContent,
		Expected:  expected,
		Extracted: extracted,
	}

	expParsed := ParseAlcoholContent(expected)
	extParsed := ParseAlcoholContent(*extracted)

	if expParsed.ABV == nil || extParsed.ABV == nil {
		if Normalize(expected) == Normalize(*extracted) {
			r.Status = domain.FieldStatusMatch
			r.Explanation = "Alcohol content matches textually"
		} else {
			r.Status = domain.FieldStatusMismatch
			r.Explanation = fmt.Sprintf("Alcohol content does not match: expected %q, found %q", expected, *extracted)
		}
		return r
	}

	diff := math.Abs(*expParsed.ABV - *extParsed.ABV)
	r.Detail = &domain.NormalizationDetail{
		ExpectedValue:  *expParsed.ABV,
		ExtractedValue: *extParsed.ABV,
		Diff:           diff,
		Unit:           "% ABV",
	}

	if diff < abvTolerance {
		if expParsed.InferredFromBareNumber || extParsed.InferredFromBareNumber {
			r.Status = domain.FieldStatusWarning
			r.Explanation = fmt.Sprintf("Alcohol content matches at %g%% ABV, but the unit was inferred from a bare number", *expParsed.ABV)
		} else {
			r.Status = domain.FieldStatusMatch
			r.Explanation = fmt.Sprintf("Alcohol content matches at %g%% ABV", *expParsed.ABV)
		}
	} else {
		r.Status = domain.FieldStatusMismatch
		r.Explanation = fmt.Sprintf("Alcohol content differs by %.3g%% ABV: expected %g%%, found %g%%",
			diff, *expParsed.ABV, *extParsed.ABV)
	}
	return r
}

// CompareProducerAddress matches addresses after abbreviation expansion. When
// the normalized strings differ, expected tokens are checked against the
// extracted token set (whole words only, order-independent) so reordered
// addresses still match and "Mainstream" never satisfies "Main".
func CompareProducerAddress(expected string, extracted *string) *domain.FieldResult {
	if missing(extracted) {
		return notFoundResult(domain.FieldProducerAddress, expected)
	}
	r := &domain.FieldResult{
		Name:      fieldNames[domain.FieldProducerAddress],
		Key:       domain.FieldProducerAddress,
		Expected:  expected,
		Extracted: extracted,
	}

	normExp := NormalizeAddress(expected)
	normExt := NormalizeAddress(*extracted)
	if normExp == normExt {
		r.Status = domain.FieldStatusMatch
		r.Explanation = "Producer address matches"
		return r
	}

	extTokens := make(map[string]bool)
	for _, tok := range strings.Fields(normExt) {
		extTokens[tok] = true
	}

	var missingWords []string
	for _, tok := range strings.Fields(normExp) {
		if len(tok) > 1 && !extTokens[tok] {
			missingWords = append(missingWords, tok)
		}
	}

	switch {
	case len(missingWords) == 0:
		r.Status = domain.FieldStatusMatch
		r.Explanation = "Producer address matches with different formatting"
	case len(missingWords) <= 2:
		r.Status = domain.FieldStatusWarning
		r.Explanation = fmt.Sprintf("Producer address mostly matches; missing: %s", strings.Join(missingWords, ", "))
	default:
		r.Status = domain.FieldStatusMismatch
		r.Explanation = fmt.Sprintf("Producer address does not match: expected %q, found %q", expected, *extracted)
	}
	return r
}

// CompareGovernmentWarning requires case-exact text equality; the warning's
// standard prefix is legally required to be capitalized, so a
// case-insensitive-only match is a mismatch, not a warning. Exact text with
// formatting problems (explicitly detected non-caps or non-bold) downgrades
// to a warning.
func CompareGovernmentWarning(expected string, extracted *string, allCapsCorrect, boldCorrect *bool) *domain.FieldResult {
	if missing(extracted) {
		return notFoundResult(domain.FieldGovernmentWarning, expected)
	}
	r := &domain.FieldResult{
		Name:      fieldNames[domain.FieldGovernmentWarning],
		Key:       domain.FieldGovernmentWarning,
		Expected:  expected,
		Extracted: extracted,
	}

	normExp := NormalizeWhitespace(expected)
	normExt := NormalizeWhitespace(*extracted)

	if normExp != normExt {
		r.Status = domain.FieldStatusMismatch
		if strings.EqualFold(normExp, normExt) {
			r.Explanation = "Government warning text matches only when ignoring case; the standard requires exact capitalization"
		} else {
			r.Explanation = "Government warning text does not match the expected text"
		}
		return r
	}

	var issues []string
	if allCapsCorrect != nil && !*allCapsCorrect {
		issues = append(issues, "\"GOVERNMENT WARNING\" prefix is not in all capitals")
	}
	if boldCorrect != nil && !*boldCorrect {
		issues = append(issues, "warning text does not appear bold")
	}
	if len(issues) > 0 {
		r.Status = domain.FieldStatusWarning
		r.Explanation = fmt.Sprintf("Government warning text matches but has formatting issues: %s", strings.Join(issues, "; "))
	} else {
		r.Status = domain.FieldStatusMatch
		r.Explanation = "Government warning matches"
	}
	return r
}
