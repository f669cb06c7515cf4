package domain

// FieldStatus is the per-field comparison verdict.
type FieldStatus string

const (
	FieldStatusMatch    FieldStatus = "match"
	FieldStatusWarning  FieldStatus = "warning"
	FieldStatusMismatch FieldStatus = "mismatch"
	FieldStatusNotFound FieldStatus = "not_found"
)

// OverallStatus is the aggregated decision for a verification.
type OverallStatus string

const (
	OverallStatusApproved    OverallStatus = "approved"
	OverallStatusNeedsReview OverallStatus = "needs_review"
	OverallStatusRejected    OverallStatus = "rejected"
)

// BeverageType enumerates the TTB commodity categories collected on the form.
type BeverageType string

const (
	BeverageTypeBeer             BeverageType = "beer"
	BeverageTypeWine             BeverageType = "wine"
	BeverageTypeDistilledSpirits BeverageType = "distilled_spirits"
)

// AllowedBeverageTypes maps accepted input strings to BeverageType.
var AllowedBeverageTypes = map[string]BeverageType{
	"beer":              BeverageTypeBeer,
	"wine":              BeverageTypeWine,
	"distilled_spirits": BeverageTypeDistilledSpirits,
}

// ImageQuality is the extraction collaborator's assessment of the source image.
type ImageQuality string

const (
	ImageQualityGood ImageQuality = "good"
	ImageQualityFair ImageQuality = "fair"
	ImageQualityPoor ImageQuality = "poor"
)

// NoteLevel classifies parser notes attached to alcohol-content parsing.
type NoteLevel string

const (
	NoteLevelInfo    NoteLevel = "info"
	NoteLevelCaution NoteLevel = "caution"
)
