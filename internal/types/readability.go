package types

// Band is a categorical interpretation of a continuous readability score,
// derived via ordered thresholds.
type Band string

// Band values, from easiest to hardest. BandTooShort marks a text below the
// minimum analyzable length and must not be conflated with a genuinely very
// easy score of 0.
const (
	BandTooShort        Band = "too_short"
	BandVeryEasy        Band = "very_easy"
	BandEasy            Band = "easy"
	BandFairlyEasy      Band = "fairly_easy"
	BandStandard        Band = "standard"
	BandFairlyDifficult Band = "fairly_difficult"
	BandDifficult       Band = "difficult"
	BandVeryDifficult   Band = "very_difficult"
)

// Description returns the human-facing interpretation for a grade-level band.
func (b Band) Description() string {
	switch b {
	case BandTooShort:
		return "Text too short to analyze"
	case BandVeryEasy:
		return "Very Easy (Elementary School)"
	case BandEasy:
		return "Easy (Middle School)"
	case BandFairlyEasy:
		return "Fairly Easy (High School)"
	case BandStandard:
		return "Standard (College Freshman)"
	case BandFairlyDifficult:
		return "Fairly Difficult (College)"
	case BandDifficult:
		return "Difficult (College Graduate)"
	case BandVeryDifficult:
		return "Very Difficult (Professional/Academic)"
	default:
		return string(b)
	}
}

// ReadabilityReport holds six classical readability scores plus two
// categorical interpretations. A report is computed fresh for a given text
// and never mutated; before/after reports are compared by the caller, never
// merged.
type ReadabilityReport struct {
	GradeLevel  float64 `json:"grade_level"`  // Flesch-Kincaid Grade
	FogIndex    float64 `json:"fog_index"`    // Gunning Fog
	ReadingEase float64 `json:"reading_ease"` // Flesch Reading Ease (0-100, higher is easier)
	Smog        float64 `json:"smog"`         // SMOG Index
	ARI         float64 `json:"ari"`          // Automated Readability Index
	ColemanLiau float64 `json:"coleman_liau"` // Coleman-Liau Index

	GradeBand Band `json:"grade_band"`
	EaseBand  Band `json:"ease_band"`
}

// TooShort reports whether this is the sentinel report for un-analyzable
// input.
func (r ReadabilityReport) TooShort() bool {
	return r.GradeBand == BandTooShort && r.EaseBand == BandTooShort
}
