package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/legal-simplifier/internal/types"
)

func TestPrintReadabilityReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &types.ReadabilityReport{
		GradeLevel:  12.35,
		FogIndex:    15.2,
		ReadingEase: 42.18,
		Smog:        13.01,
		ARI:         11.76,
		ColemanLiau: 12.9,
		GradeBand:   types.BandDifficult,
		EaseBand:    types.BandDifficult,
	}

	p.PrintReadabilityReport("ORIGINAL READABILITY", report)
	output := buf.String()

	assert.Contains(t, output, "ORIGINAL READABILITY")
	assert.Contains(t, output, "12.35")
	assert.Contains(t, output, "42.18")
	assert.Contains(t, output, "Grade band:")
}

func TestPrintReadabilityReport_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintReadabilityReport("ORIGINAL READABILITY", nil)

	assert.Empty(t, buf.String())
}

func TestPrintReadabilityReport_TooShort(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &types.ReadabilityReport{
		GradeBand: types.BandTooShort,
		EaseBand:  types.BandTooShort,
	}

	p.PrintReadabilityReport("ORIGINAL READABILITY", report)
	output := buf.String()

	assert.Contains(t, output, "too short")
	assert.NotContains(t, output, "Flesch-Kincaid")
}

func TestPrintChunks(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	chunks := []types.Chunk{
		{Text: "The first sentence. The second sentence.", SentenceIndices: []int{0, 1}},
		{Text: "The third sentence.", SentenceIndices: []int{2}},
	}

	p.PrintChunks(chunks)
	output := buf.String()

	assert.Contains(t, output, "DOCUMENT CHUNKS")
	assert.Contains(t, output, "Total chunks: 2")
	assert.Contains(t, output, "2 sentences")
}

func TestPrintChunks_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintChunks(nil)

	assert.Empty(t, buf.String())
}

func TestPrintMatches(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	matches := []types.Match{
		{SurfaceText: "Indemnification", Explanation: "Compensation for harm or loss", Start: 4, End: 19},
	}

	p.PrintMatches(matches)
	output := buf.String()

	assert.Contains(t, output, "GLOSSARY TERMS")
	assert.Contains(t, output, "Indemnification")
	assert.Contains(t, output, "[4:19]")
}

func TestPrintMatches_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatches(nil)

	assert.Contains(t, buf.String(), "No glossary terms found")
}
