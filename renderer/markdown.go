package renderer

import (
	"fmt"
	"strings"
)

// AssembleMarkdown joins verified sections into one Markdown document in
// the given order. Bodies are kept byte-for-byte apart from outer
// whitespace trimming; sections with no text are skipped.
func AssembleMarkdown(country string, secs []SectionText) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# GEF-8 PROJECT IDENTIFICATION FORM (PIF) — %s\n\n", country)
	for _, sec := range secs {
		body := strings.TrimSpace(sec.Body)
		if body == "" {
			continue
		}
		fmt.Fprintf(&sb, "## %s\n\n", sec.Title)
		sb.WriteString(body)
		sb.WriteString("\n\n")
	}
	return sb.String()
}
