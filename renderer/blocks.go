package renderer

import (
	"regexp"
	"strings"
)

// BlockKind tags the laid-out form of one line of verified section text.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockBullet
	BlockSpacer
)

// Run is one styled fragment of a visual line.
type Run struct {
	Text string
	Bold bool
}

// Block is the renderer-internal representation of one line: a kind plus
// its ordered styled runs. Blocks are derived on demand and never persisted.
type Block struct {
	Kind BlockKind
	Runs []Run
}

// LineKind classifies raw lines before block conversion.
type LineKind int

const (
	LinePlain LineKind = iota
	LineBullet
	LineTable
	LineBlank
)

const boldMarker = "**"

var (
	bulletRe    = regexp.MustCompile(`^\s*[-*•]\s+`)
	tableCellRe = regexp.MustCompile(`^:?-{3,}:?$`)
)

// ClassifyLine maps a raw line to its structural kind. Table detection
// tolerates missing leading/trailing pipes as long as the line still reads
// as cells.
func ClassifyLine(line string) LineKind {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return LineBlank
	case bulletRe.MatchString(line):
		return LineBullet
	case strings.HasPrefix(trimmed, "|") || strings.Count(trimmed, "|") >= 2:
		return LineTable
	default:
		return LinePlain
	}
}

// SplitRuns splits a line on paired ** markers into alternating bold and
// plain runs. An opening marker with no later close is literal text for the
// remainder of the line; this never fails. For balanced input,
// concatenating the run texts reproduces the line with markers stripped.
func SplitRuns(line string) []Run {
	var runs []Run
	rest := line
	bold := false
	for {
		i := strings.Index(rest, boldMarker)
		if i < 0 {
			if rest != "" {
				runs = append(runs, Run{Text: rest, Bold: bold})
			}
			return runs
		}
		if !bold && !strings.Contains(rest[i+len(boldMarker):], boldMarker) {
			// unterminated opener: keep the rest, marker included
			runs = append(runs, Run{Text: rest, Bold: false})
			return runs
		}
		if i > 0 {
			runs = append(runs, Run{Text: rest[:i], Bold: bold})
		}
		bold = !bold
		rest = rest[i+len(boldMarker):]
	}
}

// JoinRuns concatenates run texts in order (markers already stripped).
func JoinRuns(runs []Run) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// ParseBlocks converts a verified section body into render blocks. The
// function is pure: calling it twice on the same text yields the same block
// sequence. Blank lines become spacer blocks (paragraph gap), bullet lines
// become bullets, and contiguous pipe-table lines are converted to bullets
// by the fallback below.
func ParseBlocks(text string) []Block {
	var blocks []Block
	var table []string
	flush := func() {
		if len(table) > 0 {
			blocks = append(blocks, tableToBullets(table)...)
			table = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		switch ClassifyLine(line) {
		case LineTable:
			table = append(table, line)
		case LineBlank:
			flush()
			blocks = append(blocks, Block{Kind: BlockSpacer})
		case LineBullet:
			flush()
			content := bulletRe.ReplaceAllString(line, "")
			blocks = append(blocks, Block{Kind: BlockBullet, Runs: SplitRuns(content)})
		default:
			flush()
			blocks = append(blocks, Block{Kind: BlockParagraph, Runs: SplitRuns(strings.TrimSpace(line))})
		}
	}
	flush()
	return blocks
}

// tableToBullets is the best-effort fallback for pipe tables the renderer
// does not natively support. Separator rows and the first remaining row
// (the header) are discarded; every data row becomes one bullet of the form
// "<first cell>: <remaining cells joined>". Empty trimmed cells are
// filtered, which tolerates missing or extra pipes.
func tableToBullets(lines []string) []Block {
	var blocks []Block
	headerSeen := false
	for _, line := range lines {
		var cells []string
		for _, c := range strings.Split(line, "|") {
			c = strings.TrimSpace(c)
			if c != "" {
				cells = append(cells, c)
			}
		}
		if len(cells) == 0 || isSeparatorRow(cells) {
			continue
		}
		if !headerSeen {
			headerSeen = true
			continue
		}
		text := cells[0]
		if len(cells) > 1 {
			text += ": " + strings.Join(cells[1:], "; ")
		}
		blocks = append(blocks, Block{Kind: BlockBullet, Runs: SplitRuns(text)})
	}
	return blocks
}

func isSeparatorRow(cells []string) bool {
	for _, c := range cells {
		if !tableCellRe.MatchString(c) {
			return false
		}
	}
	return true
}

// HasBullets reports whether any block in the sequence is a bullet.
func HasBullets(blocks []Block) bool {
	for _, b := range blocks {
		if b.Kind == BlockBullet {
			return true
		}
	}
	return false
}
