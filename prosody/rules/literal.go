package rules

import (
	"strings"

	"github.com/omars-kassem/arudy/internal/diacritic"
)

// literalReplacements is rule 3: apply the replacement table, then globally
// expand "آ" to its hamza+fatḥa+alif+sukūn spelling.
func (e *Engine) literalReplacements(s string) string {
	s = e.table.Apply(s)
	expanded := string(diacritic.Hamza) + string(diacritic.Fatha) + string(diacritic.Alef) + string(diacritic.Sukun)
	return strings.ReplaceAll(s, string(diacritic.AlefMadda), expanded)
}

// tehMarbutaToTeh is rule 9.
func tehMarbutaToTeh(s string) string {
	return strings.ReplaceAll(s, string(diacritic.TehMarbuta), string(diacritic.Teh))
}
