package renderer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitRunsRoundTrip(t *testing.T) {
	// balanced markers: concatenated run text reproduces the input with
	// markers stripped
	cases := []string{
		"plain text with no markers",
		"**all bold**",
		"lead **bold** tail",
		"**a** mid **b** end",
		"edge **bold**",
		"",
	}
	for _, in := range cases {
		runs := SplitRuns(in)
		assert.Equal(t, strings.ReplaceAll(in, "**", ""), JoinRuns(runs), "input %q", in)
	}
}

func TestSplitRunsAlternatingStyles(t *testing.T) {
	runs := SplitRuns("lead **bold** tail")
	require.Len(t, runs, 3)
	assert.Equal(t, Run{Text: "lead ", Bold: false}, runs[0])
	assert.Equal(t, Run{Text: "bold", Bold: true}, runs[1])
	assert.Equal(t, Run{Text: " tail", Bold: false}, runs[2])
}

func TestSplitRunsUnterminatedMarkerIsLiteral(t *testing.T) {
	runs := SplitRuns("claim **without close")
	require.Len(t, runs, 1)
	assert.Equal(t, "claim **without close", runs[0].Text)
	assert.False(t, runs[0].Bold)

	// a balanced pair followed by a dangling opener
	runs = SplitRuns("**a** b **c")
	require.Len(t, runs, 2)
	assert.Equal(t, Run{Text: "a", Bold: true}, runs[0])
	assert.Equal(t, Run{Text: " b **c", Bold: false}, runs[1])
}

func TestParseBlocksBulletWithBoldLabel(t *testing.T) {
	blocks := ParseBlocks("- **Decree 86 (2019):** Summary text.")
	require.Len(t, blocks, 1)
	b := blocks[0]
	assert.Equal(t, BlockBullet, b.Kind)
	require.Len(t, b.Runs, 2)
	assert.Equal(t, Run{Text: "Decree 86 (2019):", Bold: true}, b.Runs[0])
	assert.Equal(t, Run{Text: " Summary text.", Bold: false}, b.Runs[1])
}

func TestParseBlocksBulletGlyphVariants(t *testing.T) {
	for _, in := range []string{"- item", "* item", "• item"} {
		blocks := ParseBlocks(in)
		require.Len(t, blocks, 1, "input %q", in)
		assert.Equal(t, BlockBullet, blocks[0].Kind, "input %q", in)
		assert.Equal(t, "item", JoinRuns(blocks[0].Runs), "input %q", in)
	}
}

func TestParseBlocksTableFallback(t *testing.T) {
	text := strings.Join([]string{
		"| Institution | Role |",
		"| --- | --- |",
		"| CITMA | Lead ministry |",
	}, "\n")
	blocks := ParseBlocks(text)
	require.Len(t, blocks, 1)
	assert.Equal(t, BlockBullet, blocks[0].Kind)
	assert.Equal(t, "CITMA: Lead ministry", JoinRuns(blocks[0].Runs))
}

func TestParseBlocksTableToleratesRaggedPipes(t *testing.T) {
	text := strings.Join([]string{
		"| Institution | Role |",
		"|---|---|",
		"| CITMA | Lead ministry",   // missing trailing pipe
		"|| MINEM || Energy data |", // extra pipes, empty cells filtered
		"| INSMET | Met service | Observations |",
	}, "\n")
	blocks := ParseBlocks(text)
	require.Len(t, blocks, 3)
	assert.Equal(t, "CITMA: Lead ministry", JoinRuns(blocks[0].Runs))
	assert.Equal(t, "MINEM: Energy data", JoinRuns(blocks[1].Runs))
	assert.Equal(t, "INSMET: Met service; Observations", JoinRuns(blocks[2].Runs))
}

func TestParseBlocksBlankLinesBecomeSpacers(t *testing.T) {
	blocks := ParseBlocks("para one\n\n\npara two")
	require.Len(t, blocks, 4)
	assert.Equal(t, BlockParagraph, blocks[0].Kind)
	assert.Equal(t, BlockSpacer, blocks[1].Kind)
	assert.Equal(t, BlockSpacer, blocks[2].Kind)
	assert.Equal(t, BlockParagraph, blocks[3].Kind)
}

func TestParseBlocksIdempotent(t *testing.T) {
	text := "intro paragraph\n\n- **Law 150:** environment law.\n| A | B |\n| --- | --- |\n| x | y |"
	first := ParseBlocks(text)
	second := ParseBlocks(text)
	assert.Equal(t, first, second)
}

func TestClassifyLine(t *testing.T) {
	cases := map[string]LineKind{
		"":                LineBlank,
		"   ":             LineBlank,
		"- bullet":        LineBullet,
		"• bullet":        LineBullet,
		"| a | b |":       LineTable,
		"a | b | c":       LineTable,
		"plain prose":     LinePlain,
		"a | single pipe": LinePlain,
	}
	for in, want := range cases {
		assert.Equal(t, want, ClassifyLine(in), "input %q", in)
	}
}
