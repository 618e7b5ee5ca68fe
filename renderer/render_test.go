package renderer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSections() []SectionText {
	return []SectionText{
		{Title: "A. PROJECT RATIONALE", Body: "Opening narrative.\n\nSecond paragraph with **bold** text."},
		{Title: "ii. National Policy Framework", Body: "The National Strategy was adopted in 2020. It binds ministries.", PolicyStyle: true},
		{Title: "Key barriers", Body: "- limited data\n- weak mandates"},
	}
}

func TestAssembleMarkdownPreservesOrderAndBodies(t *testing.T) {
	md := AssembleMarkdown("Cuba", sampleSections())
	assert.True(t, strings.HasPrefix(md, "# GEF-8 PROJECT IDENTIFICATION FORM (PIF) — Cuba"))

	i := strings.Index(md, "## A. PROJECT RATIONALE")
	j := strings.Index(md, "## ii. National Policy Framework")
	k := strings.Index(md, "## Key barriers")
	require.True(t, i >= 0 && j >= 0 && k >= 0)
	assert.Less(t, i, j)
	assert.Less(t, j, k)

	// body text is carried byte-for-byte
	assert.Contains(t, md, "Second paragraph with **bold** text.")
}

func TestAssembleMarkdownSkipsEmptySections(t *testing.T) {
	md := AssembleMarkdown("Cuba", []SectionText{
		{Title: "Present", Body: "text"},
		{Title: "Absent", Body: "   "},
	})
	assert.Contains(t, md, "## Present")
	assert.NotContains(t, md, "## Absent")
}

func TestAssembleHTMLNormalizesHeadings(t *testing.T) {
	html, err := AssembleHTML("Cuba", sampleSections())
	require.NoError(t, err)
	assert.NotContains(t, html, "<h1")
	assert.NotContains(t, html, "<h2")
	assert.Contains(t, html, "font-size:24px")
	assert.Contains(t, html, "font-weight:700")
	assert.Contains(t, html, "A. PROJECT RATIONALE")
}

func TestRenderPDFWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cuba_pif.pdf")
	require.NoError(t, RenderPDF("Cuba", sampleSections(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	head := make([]byte, 5)
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = f.Read(head)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(head))
}
