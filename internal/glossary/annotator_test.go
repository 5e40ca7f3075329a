package glossary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/legal-simplifier/internal/types"
)

func TestIdentifyWordBoundaries(t *testing.T) {
	dict := map[string]string{"tort": "A wrongful act"}

	// "tortoise" must not match "tort".
	assert.Empty(t, Identify("This is a tortoise.", dict))

	matches := Identify("This is a tort claim.", dict)
	require.Len(t, matches, 1)
	assert.Equal(t, "tort", matches[0].SurfaceText)
	assert.Equal(t, 10, matches[0].Start)
	assert.Equal(t, 14, matches[0].End)
	assert.Equal(t, "A wrongful act", matches[0].Explanation)
}

func TestIdentifyMultiWordPhrase(t *testing.T) {
	dict := map[string]string{"force majeure": "Unforeseeable circumstances"}
	text := "The Force Majeure clause applies."

	matches := Identify(text, dict)
	require.Len(t, matches, 1)
	assert.Equal(t, "Force Majeure", matches[0].SurfaceText, "surface text preserves original casing")
	assert.Equal(t, 4, matches[0].Start)
	assert.Equal(t, 17, matches[0].End)
	assert.Equal(t, matches[0].SurfaceText, text[matches[0].Start:matches[0].End])
}

func TestIdentifyCaseInsensitive(t *testing.T) {
	dict := map[string]string{"plaintiff": "The suing party"}

	matches := Identify("PLAINTIFF, Plaintiff, plaintiff.", dict)
	require.Len(t, matches, 3)
	assert.Equal(t, "PLAINTIFF", matches[0].SurfaceText)
	assert.Equal(t, "Plaintiff", matches[1].SurfaceText)
	assert.Equal(t, "plaintiff", matches[2].SurfaceText)
}

func TestIdentifySortedByStart(t *testing.T) {
	dict := DefaultTerms()
	text := "The defendant sued the plaintiff over a breach of covenant."

	matches := Identify(text, dict)
	require.Len(t, matches, 4)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i].Start, matches[i-1].Start)
	}
	assert.Equal(t, "defendant", matches[0].SurfaceText)
	assert.Equal(t, "plaintiff", matches[1].SurfaceText)
	assert.Equal(t, "breach", matches[2].SurfaceText)
	assert.Equal(t, "covenant", matches[3].SurfaceText)
}

func TestIdentifyOverlappingKeysAllRetained(t *testing.T) {
	// Keys overlap in the source span; both matches are kept, no term takes
	// priority over another.
	dict := map[string]string{
		"civil law": "Law of private rights",
		"law suit":  "A claim brought to court",
	}
	text := "A civil law suit followed."

	matches := Identify(text, dict)
	require.Len(t, matches, 2)
	assert.Equal(t, "civil law", matches[0].SurfaceText)
	assert.Equal(t, "law suit", matches[1].SurfaceText)
	assert.True(t, matches[0].Overlaps(matches[1]))
}

func TestIdentifyPrefixKeyDoesNotMatchInsideLongerWord(t *testing.T) {
	dict := map[string]string{
		"indemnify":       "To compensate for harm",
		"indemnification": "Protection against loss",
	}

	matches := Identify("The indemnification clause survives.", dict)
	require.Len(t, matches, 1, `"indemnify" must not match inside "indemnification"`)
	assert.Equal(t, "indemnification", matches[0].SurfaceText)
}

func TestIdentifyEmptyInputs(t *testing.T) {
	assert.Empty(t, Identify("", map[string]string{"tort": "x"}))
	assert.Empty(t, Identify("some text", nil))
	assert.Empty(t, Identify("some text", map[string]string{}))
}

func TestIdentifyStableTieOrder(t *testing.T) {
	// Two keys matching at the same start: the longer key is reported
	// first, deterministically.
	dict := map[string]string{
		"force":         "x",
		"force majeure": "y",
	}
	text := "A force majeure event."

	for i := 0; i < 10; i++ {
		matches := Identify(text, dict)
		require.Len(t, matches, 2)
		assert.Equal(t, "force majeure", matches[0].SurfaceText)
		assert.Equal(t, "force", matches[1].SurfaceText)
	}
}

func TestOverlaps(t *testing.T) {
	a := types.Match{Start: 0, End: 5}
	b := types.Match{Start: 4, End: 9}
	c := types.Match{Start: 5, End: 9}

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
	assert.False(t, a.Overlaps(c), "half-open ranges touching at the edge do not overlap")
}
