package renderer

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
)

// AssembleHTML converts the assembled Markdown document to HTML for portals
// that accept pasted rich text, with headings rewritten as styled
// paragraphs so the sizing survives sanitizers that strip heading tags.
func AssembleHTML(country string, secs []SectionText) (string, error) {
	md := AssembleMarkdown(country, secs)
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return normalizeHeadings(buf.String()), nil
}

var headingRe = regexp.MustCompile(`(?s)<h([1-6])[^>]*>(.*?)</h[1-6]>`)

var headingSizes = map[string]string{
	"1": "24px",
	"2": "20px",
	"3": "18px",
	"4": "16px",
	"5": "15px",
	"6": "14px",
}

func normalizeHeadings(html string) string {
	return headingRe.ReplaceAllStringFunc(html, func(block string) string {
		parts := headingRe.FindStringSubmatch(block)
		if len(parts) != 3 {
			return block
		}
		size := headingSizes[parts[1]]
		if size == "" {
			size = "16px"
		}
		text := strings.TrimSpace(parts[2])
		return fmt.Sprintf(`<p style="font-size:%s;font-weight:700;margin:1em 0 0.6em;">%s</p>`, size, text)
	})
}
