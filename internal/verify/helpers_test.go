package verify_test

import (
	"labelcheck/internal/domain"
	"labelcheck/internal/verify"
)

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }

func bevp(b domain.BeverageType) *domain.BeverageType { return &b }

// validExpected returns reference data for a spirits label that fully matches
// the record from validExtracted.
func validExpected() *domain.ExpectedRecord {
	return &domain.ExpectedRecord{
		BrandName:         "Old Tom Reserve",
		ClassType:         "Kentucky Straight Bourbon Whiskey",
		AlcoholContent:    "40% Alc./Vol. (80 Proof)",
		NetContents:       "750 mL",
		ProducerName:      "Old Tom Distilling Co",
		ProducerAddress:   "123 Main St, Bardstown, KY",
		CountryOfOrigin:   "USA",
		GovernmentWarning: verify.StandardGovernmentWarning,
		BeverageType:      domain.BeverageTypeDistilledSpirits,
	}
}

// validExtracted returns an extraction that matches validExpected on every
// field, with a fully compliant government warning.
func validExtracted() *domain.ExtractedRecord {
	return &domain.ExtractedRecord{
		BrandName:                strp("Old Tom Reserve"),
		ClassType:                strp("Kentucky Straight Bourbon Whiskey"),
		AlcoholContent:           strp("40% Alc./Vol. (80 Proof)"),
		NetContents:              strp("750 mL"),
		ProducerName:             strp("Old Tom Distilling Co"),
		ProducerAddress:          strp("123 Main Street, Bardstown, KY"),
		CountryOfOrigin:          strp("Product of USA"),
		GovernmentWarning:        strp(verify.StandardGovernmentWarning),
		GovernmentWarningAllCaps: boolp(true),
		GovernmentWarningBold:    boolp(true),
		BeverageType:             bevp(domain.BeverageTypeDistilledSpirits),
		IsAlcoholLabel:           true,
		ImageQuality:             domain.ImageQualityGood,
		Confidence:               0.95,
		Notes:                    []string{},
	}
}
