package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gentle-giraffe-apps/GentleDesignSystem/internal/spec"
	"github.com/gentle-giraffe-apps/GentleDesignSystem/internal/token"
)

func TestGapsIntentVocabularyMapsOntoRamp(t *testing.T) {
	t.Parallel()

	scale := spec.Scale{XS: 2, S: 4, M: 8, L: 12, XL: 16, XXL: 24}
	gaps := NewGaps(scale)

	assert.Equal(t, 0.0, gaps.None())
	assert.Equal(t, scale.XS, gaps.Micro())
	assert.Equal(t, scale.S, gaps.Tight())
	assert.Equal(t, scale.M, gaps.Regular())
	assert.Equal(t, scale.L, gaps.Ample())
	assert.Equal(t, scale.XL, gaps.Loose())
	assert.Equal(t, scale.XXL, gaps.Expansive())
}

func TestGapsIntentLookup(t *testing.T) {
	t.Parallel()

	gaps := NewGaps(spec.Scale{XS: 1, S: 2, M: 3, L: 4, XL: 5, XXL: 6})

	cases := []struct {
		intent token.GapIntent
		want   float64
	}{
		{token.GapNone, 0},
		{token.GapMicro, 1},
		{token.GapTight, 2},
		{token.GapRegular, 3},
		{token.GapAmple, 4},
		{token.GapLoose, 5},
		{token.GapExpansive, 6},
		{token.GapIntent("unknown"), 3},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, gaps.Intent(tc.intent), "intent %s", tc.intent)
	}
}

func TestGapsRawTokens(t *testing.T) {
	t.Parallel()

	gaps := NewGaps(spec.Scale{XS: 1, S: 2, M: 3, L: 4, XL: 5, XXL: 6})

	assert.Equal(t, 1.0, gaps.XS())
	assert.Equal(t, 6.0, gaps.XXL())
	assert.Equal(t, 4.0, gaps.Token(token.ScaleL))
}
