package domain

// Machine field identifiers shared by records, results, and exports.
const (
	FieldBeverageType      = "beverageType"
	FieldBrandName         = "brandName"
	FieldClassType         = "classType"
	FieldAlcoholContent    = "alcoholContent"
	FieldNetContents       = "netContents"
	FieldProducerName      = "producerName"
	FieldProducerAddress   = "producerAddress"
	FieldCountryOfOrigin   = "countryOfOrigin"
	FieldGovernmentWarning = "governmentWarning"
)

// ExpectedRecord is the reference data supplied by the applicant form.
// An empty string means "not provided" and excludes the field from comparison.
type ExpectedRecord struct {
	BrandName         string       `json:"brand_name"`
	ClassType         string       `json:"class_type"`
	AlcoholContent    string       `json:"alcohol_content"`
	NetContents       string       `json:"net_contents"`
	ProducerName      string       `json:"producer_name"`
	ProducerAddress   string       `json:"producer_address"`
	CountryOfOrigin   string       `json:"country_of_origin"`
	GovernmentWarning string       `json:"government_warning"`
	BeverageType      BeverageType `json:"beverage_type"`
}

// ExtractedRecord is what the external vision-model extraction produced from
// the label image. Nil pointers mean "not detected", a distinct signal from
// the expected record's empty-string "not provided" sentinel.
type ExtractedRecord struct {
	BrandName                *string       `json:"brand_name"`
	ClassType                *string       `json:"class_type"`
	AlcoholContent           *string       `json:"alcohol_content"`
	NetContents              *string       `json:"net_contents"`
	ProducerName             *string       `json:"producer_name"`
	ProducerAddress          *string       `json:"producer_address"`
	CountryOfOrigin          *string       `json:"country_of_origin"`
	GovernmentWarning        *string       `json:"government_warning"`
	GovernmentWarningAllCaps *bool         `json:"government_warning_all_caps"`
	GovernmentWarningBold    *bool         `json:"government_warning_bold"`
	BeverageType             *BeverageType `json:"beverage_type"`
	IsAlcoholLabel           bool          `json:"is_alcohol_label"`
	ImageQuality             ImageQuality  `json:"image_quality"`
	Confidence               float64       `json:"confidence"`
	Notes                    []string      `json:"notes"`
}

// NormalizationDetail carries the parsed numeric values behind an
// alcohol-content comparison, for display alongside the verdict.
type NormalizationDetail struct {
	ExpectedValue  float64 `json:"expected_value"`
	ExtractedValue float64 `json:"extracted_value"`
	Diff           float64 `json:"diff"`
	Unit           string  `json:"unit"`
}

// FieldResult is the verdict for a single compared label field.
type FieldResult struct {
	Name        string               `json:"name"`
	Key         string               `json:"key"`
	Expected    string               `json:"expected"`
	Extracted   *string              `json:"extracted"`
	Status      FieldStatus          `json:"status"`
	Explanation string               `json:"explanation"`
	Detail      *NormalizationDetail `json:"detail,omitempty"`
}

// GovernmentWarningCheck is the result of validating the extracted warning
// text against the fixed TTB standard, independent of any expected data.
type GovernmentWarningCheck struct {
	TextMatch      bool     `json:"text_match"`
	AllCapsCorrect *bool    `json:"all_caps_correct"`
	BoldCorrect    *bool    `json:"bold_correct"`
	ExtractedText  *string  `json:"extracted_text"`
	Issues         []string `json:"issues"`
}

// VerificationResult is the full outcome of comparing one extracted record
// against its expected reference data.
type VerificationResult struct {
	ID                     string                  `json:"id"`
	OverallStatus          OverallStatus           `json:"overall_status"`
	IsAlcoholLabel         bool                    `json:"is_alcohol_label"`
	Fields                 []FieldResult           `json:"fields"`
	GovernmentWarningCheck *GovernmentWarningCheck `json:"government_warning_check"`
	ImageQuality           ImageQuality            `json:"image_quality"`
	Confidence             float64                 `json:"confidence"`
	Notes                  []string                `json:"notes"`
	ProcessingTimeMs       int64                   `json:"processing_time_ms"`
}

// VerificationRequest pairs the expected reference data with the extraction
// output for one label. Extracted must be present; ProcessingTimeMs is
// optional upstream extraction time passed through to the result.
type VerificationRequest struct {
	Expected         ExpectedRecord   `json:"expected"`
	Extracted        *ExtractedRecord `json:"extracted"`
	ProcessingTimeMs int64            `json:"processing_time_ms,omitempty"`
}
