package term_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdview/internal/ui/term"
)

func TestTypesetterRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		formula  string
		expected string
	}{
		{name: "plain formula", formula: "x + 1", expected: "x + 1"},
		{name: "greek letters", formula: `\alpha + \beta`, expected: "α + β"},
		{name: "operators", formula: `a \le b \ne c`, expected: "a ≤ b ≠ c"},
		{name: "braces stripped", formula: "x^{2}", expected: "x^2"},
		{name: "sum with limits", formula: `\sum_{i}^{n} i`, expected: "∑_i^n i"},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := term.Typesetter{}.Render(testCase.formula, false)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, got)
		})
	}
}

func TestTypesetterRejectsUnbalancedBraces(t *testing.T) {
	t.Parallel()

	for _, formula := range []string{"a{b", "a}b", "{{x}"} {
		_, err := term.Typesetter{}.Render(formula, false)
		assert.Error(t, err, "formula %q", formula)
	}
}

func TestStylesColorToggle(t *testing.T) {
	t.Parallel()

	plain := term.NewStyles(false)
	assert.Equal(t, "x", plain.Strong.Render("x"), "colorless styles must not emit escape codes")
}
