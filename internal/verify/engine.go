package verify

import (
	"labelcheck/internal/domain"
)

// Engine aggregates per-field comparisons into a single verification verdict.
// It is stateless and safe for concurrent use; every call reads only its
// inputs and allocates fresh output structures.
type Engine struct{}

// NewEngine creates a verification engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Verify compares an extracted record against its expected reference data.
// Only fields with a non-empty expected value are compared, in a fixed order.
// The government warning compliance check runs independently whenever the
// image is an alcohol label at all.
func (e *Engine) Verify(expected *domain.ExpectedRecord, extracted *domain.ExtractedRecord) *domain.VerificationResult {
	var beverageType *string
	if extracted.BeverageType != nil {
		s := string(*extracted.BeverageType)
		beverageType = &s
	}

	comparisons := []struct {
		expected string
		run      func() *domain.FieldResult
	}{
		{string(expected.BeverageType), func() *domain.FieldResult {
			return CompareBeverageType(string(expected.BeverageType), beverageType)
		}},
		{expected.BrandName, func() *domain.FieldResult {
			return CompareBrandName(expected.BrandName, extracted.BrandName)
		}},
		{expected.ClassType, func() *domain.FieldResult {
			return CompareClassType(expected.ClassType, extracted.ClassType)
		}},
		{expected.AlcoholContent, func() *domain.FieldResult {
			return CompareAlcoholContent(expected.AlcoholContent, extracted.AlcoholContent)
		}},
		{expected.NetContents, func() *domain.FieldResult {
			return CompareNetContents(expected.NetContents, extracted.NetContents)
		}},
		{expected.ProducerName, func() *domain.FieldResult {
			return CompareProducerName(expected.ProducerName, extracted.ProducerName)
		}},
		{expected.ProducerAddress, func() *domain.FieldResult {
			return CompareProducerAddress(expected.ProducerAddress, extracted.ProducerAddress)
		}},
		{expected.CountryOfOrigin, func() *domain.FieldResult {
			return CompareCountryOfOrigin(expected.CountryOfOrigin, extracted.CountryOfOrigin)
		}},
		{expected.GovernmentWarning, func() *domain.FieldResult {
			return CompareGovernmentWarning(expected.GovernmentWarning, extracted.GovernmentWarning,
				extracted.GovernmentWarningAllCaps, extracted.GovernmentWarningBold)
		}},
	}

	fields := make([]domain.FieldResult, 0, len(comparisons))
	for _, c := range comparisons {
		if c.expected == "" {
			continue
		}
		fields = append(fields, *c.run())
	}

	var warningCheck *domain.GovernmentWarningCheck
	if extracted.IsAlcoholLabel {
		warningCheck = CheckGovernmentWarning(extracted)
	}

	return &domain.VerificationResult{
		OverallStatus:          overallStatus(extracted.IsAlcoholLabel, fields, warningCheck),
		IsAlcoholLabel:         extracted.IsAlcoholLabel,
		Fields:                 fields,
		GovernmentWarningCheck: warningCheck,
		ImageQuality:           extracted.ImageQuality,
		Confidence:             extracted.Confidence,
		Notes:                  extracted.Notes,
	}
}

// overallStatus folds field verdicts and compliance issues into one decision.
// Rules are evaluated in precedence order; the first that applies wins.
func overallStatus(isAlcoholLabel bool, fields []domain.FieldResult, warningCheck *domain.GovernmentWarningCheck) domain.OverallStatus {
	if !isAlcoholLabel {
		return domain.OverallStatusRejected
	}

	for _, f := range fields {
		if f.Status == domain.FieldStatusMismatch {
			return domain.OverallStatusRejected
		}
	}
	for _, f := range fields {
		if f.Status == domain.FieldStatusWarning || f.Status == domain.FieldStatusNotFound {
			return domain.OverallStatusNeedsReview
		}
	}

	if warningCheck != nil {
		for _, issue := range warningCheck.Issues {
			if !IsManualAdvisory(issue) {
				return domain.OverallStatusNeedsReview
			}
		}
	}

	// Nothing was compared at all; approval needs at least one compared field.
	if len(fields) == 0 {
		return domain.OverallStatusNeedsReview
	}

	return domain.OverallStatusApproved
}
