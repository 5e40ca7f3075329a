package readability

import (
	"math"
	"strings"

	"github.com/jonathan/legal-simplifier/internal/types"
)

// minAnalyzableLength is the minimum trimmed length a text must have to be
// scored. Shorter texts get the sentinel report so they are never confused
// with a genuinely very easy score of 0.
const minAnalyzableLength = 10

// Analyze computes the full readability report for a text. Each formula
// degrades to 0.0 when its denominators are unavailable rather than
// failing, so one malformed metric never blocks the rest of the report.
// Scores are rounded to two decimal places for presentation; band mapping
// uses the unrounded values.
func Analyze(text string) types.ReadabilityReport {
	if len(strings.TrimSpace(text)) < minAnalyzableLength {
		return types.ReadabilityReport{
			GradeBand: types.BandTooShort,
			EaseBand:  types.BandTooShort,
		}
	}

	st := gatherStats(text)

	grade := fleschKincaidGrade(st)
	ease := fleschReadingEase(st)

	return types.ReadabilityReport{
		GradeLevel:  round2(grade),
		FogIndex:    round2(gunningFog(st)),
		ReadingEase: round2(ease),
		Smog:        round2(smogIndex(st)),
		ARI:         round2(automatedReadabilityIndex(st)),
		ColemanLiau: round2(colemanLiauIndex(st)),
		GradeBand:   gradeBandFor(grade),
		EaseBand:    easeBandFor(ease),
	}
}

// fleschKincaidGrade = 0.39*(W/S) + 11.8*(Y/W) - 15.59
func fleschKincaidGrade(st textStats) float64 {
	if st.words == 0 || st.sentences == 0 {
		return 0
	}
	w, s, y := float64(st.words), float64(st.sentences), float64(st.syllables)
	return 0.39*(w/s) + 11.8*(y/w) - 15.59
}

// gunningFog = 0.4*[(W/S) + 100*(P/W)]
func gunningFog(st textStats) float64 {
	if st.words == 0 || st.sentences == 0 {
		return 0
	}
	w, s, p := float64(st.words), float64(st.sentences), float64(st.complexWords)
	return 0.4 * ((w / s) + 100*(p/w))
}

// fleschReadingEase = 206.835 - 1.015*(W/S) - 84.6*(Y/W)
func fleschReadingEase(st textStats) float64 {
	if st.words == 0 || st.sentences == 0 {
		return 0
	}
	w, s, y := float64(st.words), float64(st.sentences), float64(st.syllables)
	return 206.835 - 1.015*(w/s) - 84.6*(y/w)
}

// smogIndex = 1.043*sqrt(30*(P/S)) + 3.1291
func smogIndex(st textStats) float64 {
	if st.sentences == 0 {
		return 0
	}
	s, p := float64(st.sentences), float64(st.complexWords)
	return 1.043*math.Sqrt(30*(p/s)) + 3.1291
}

// automatedReadabilityIndex = 4.71*(C/W) + 0.5*(W/S) - 21.43
func automatedReadabilityIndex(st textStats) float64 {
	if st.words == 0 || st.sentences == 0 {
		return 0
	}
	w, s, c := float64(st.words), float64(st.sentences), float64(st.characters)
	return 4.71*(c/w) + 0.5*(w/s) - 21.43
}

// colemanLiauIndex = 0.0588*(100*C/W) - 0.296*(100*S/W) - 15.8
func colemanLiauIndex(st textStats) float64 {
	if st.words == 0 {
		return 0
	}
	w, s, c := float64(st.words), float64(st.sentences), float64(st.characters)
	return 0.0588*(100*c/w) - 0.296*(100*s/w) - 15.8
}

// gradeBandFor maps a Flesch-Kincaid grade to its interpretation band.
// Thresholds are strictly ordered; first match wins.
func gradeBandFor(grade float64) types.Band {
	switch {
	case grade < 6:
		return types.BandVeryEasy
	case grade < 9:
		return types.BandEasy
	case grade < 12:
		return types.BandFairlyEasy
	case grade < 14:
		return types.BandStandard
	case grade < 16:
		return types.BandFairlyDifficult
	case grade < 18:
		return types.BandDifficult
	default:
		return types.BandVeryDifficult
	}
}

// easeBandFor maps a Flesch Reading Ease score to its interpretation band.
func easeBandFor(score float64) types.Band {
	switch {
	case score >= 90:
		return types.BandVeryEasy
	case score >= 80:
		return types.BandEasy
	case score >= 70:
		return types.BandFairlyEasy
	case score >= 60:
		return types.BandStandard
	case score >= 50:
		return types.BandFairlyDifficult
	case score >= 30:
		return types.BandDifficult
	default:
		return types.BandVeryDifficult
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
