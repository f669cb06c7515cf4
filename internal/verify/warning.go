package verify

import (
	"strings"

	"labelcheck/internal/domain"
)

// StandardGovernmentWarning is the warning text mandated by 27 CFR Part 16
// for alcoholic beverage labels. Comparisons run against this exact string.
const StandardGovernmentWarning = "GOVERNMENT WARNING: (1) According to the Surgeon General, women should not drink alcoholic beverages during pregnancy because of the risk of birth defects. (2) Consumption of alcoholic beverages impairs your ability to drive a car or operate machinery, and may cause health problems."

// manualAdvisoryPrefix tags issues that call for a human look rather than an
// automatic needs-review escalation. Bold detection from an image is too
// unreliable to gate a decision on.
const manualAdvisoryPrefix = "MANUAL CHECK: "

// IsManualAdvisory reports whether a compliance issue is a soft
// manual-verification advisory rather than a hard issue.
func IsManualAdvisory(issue string) bool {
	return strings.HasPrefix(issue, manualAdvisoryPrefix)
}

// CheckGovernmentWarning validates the extracted warning text against the
// fixed legal standard. It runs independently of any expected data supplied
// by the applicant, whenever the image is an alcohol label.
func CheckGovernmentWarning(extracted *domain.ExtractedRecord) *domain.GovernmentWarningCheck {
	if extracted.GovernmentWarning == nil || strings.TrimSpace(*extracted.GovernmentWarning) == "" {
		return &domain.GovernmentWarningCheck{
			TextMatch: false,
			Issues:    []string{"Government warning not found on the label"},
		}
	}

	check := &domain.GovernmentWarningCheck{
		AllCapsCorrect: extracted.GovernmentWarningAllCaps,
		BoldCorrect:    extracted.GovernmentWarningBold,
		ExtractedText:  extracted.GovernmentWarning,
		Issues:         []string{},
	}

	normExt := NormalizeWhitespace(*extracted.GovernmentWarning)
	check.TextMatch = strings.EqualFold(normExt, StandardGovernmentWarning)
	switch {
	case !check.TextMatch:
		check.Issues = append(check.Issues, "Government warning text deviates from the required standard text")
	case normExt != StandardGovernmentWarning:
		check.Issues = append(check.Issues, "Government warning text matches but capitalization deviates from the required standard")
	}

	if check.AllCapsCorrect != nil && !*check.AllCapsCorrect {
		check.Issues = append(check.Issues, "\"GOVERNMENT WARNING\" prefix must appear in capital letters")
	}
	if check.BoldCorrect != nil && !*check.BoldCorrect {
		check.Issues = append(check.Issues, manualAdvisoryPrefix+"warning text may not be bold; verify against the physical label")
	}

	return check
}
