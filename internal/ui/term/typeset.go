package term

import (
	"fmt"
	"strings"
)

// Typesetter is a minimal terminal formula typesetter. It substitutes
// common TeX commands with their unicode forms and rejects formulas with
// unbalanced braces, which the renderer degrades to raw text tagged with
// the error style.
type Typesetter struct{}

// texReplacer maps common TeX commands to unicode.
var texReplacer = strings.NewReplacer(
	`\alpha`, "α", `\beta`, "β", `\gamma`, "γ", `\delta`, "δ",
	`\epsilon`, "ε", `\lambda`, "λ", `\mu`, "μ", `\pi`, "π",
	`\sigma`, "σ", `\phi`, "φ", `\omega`, "ω",
	`\infty`, "∞", `\sum`, "∑", `\prod`, "∏", `\int`, "∫",
	`\sqrt`, "√", `\cdot`, "·", `\pm`, "±", `\times`, "×",
	`\le`, "≤", `\ge`, "≥", `\ne`, "≠", `\to`, "→",
	`\approx`, "≈", `\in`, "∈", `\forall`, "∀", `\exists`, "∃",
)

// Render typesets formula text. Display mode adds no terminal-specific
// treatment; the replaced span already occupies its own lines.
func (Typesetter) Render(formula string, _ bool) (string, error) {
	depth := 0
	for _, ch := range formula {
		switch ch {
		case '{':
			depth++
		case '}':
			depth--
		}
		if depth < 0 {
			return "", fmt.Errorf("unbalanced braces in formula %q", formula)
		}
	}
	if depth != 0 {
		return "", fmt.Errorf("unbalanced braces in formula %q", formula)
	}

	out := texReplacer.Replace(formula)
	out = strings.ReplaceAll(out, "{", "")
	out = strings.ReplaceAll(out, "}", "")
	return out, nil
}
