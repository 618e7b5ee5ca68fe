package renderer

import (
	"github.com/go-pdf/fpdf"
)

// SectionText is one titled body ready for layout, in final document order.
type SectionText struct {
	Title       string
	Body        string
	PolicyStyle bool
}

const (
	bodySize     = 11
	titleSize    = 12
	docTitleSize = 14
	lineHeight   = 5.5
	titleLead    = 8.0
	paraGap      = 2.5
	bulletIndent = 6.0
	pageMargin   = 25.4 // 1 inch
)

// Document writes sections onto a paginated Letter canvas. Position only
// advances; writing the same section twice duplicates content.
type Document struct {
	pdf      *fpdf.Fpdf
	tr       func(string) string
	sections int
}

// NewDocument opens a canvas with the document title line already placed.
func NewDocument(country string) *Document {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	d := &Document{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pdf.AddPage()
	pdf.SetFont("Times", "B", docTitleSize)
	pdf.Write(7, d.tr("GEF-8 PROJECT IDENTIFICATION FORM (PIF) — "+country))
	pdf.Ln(12)
	return d
}

// AddSection starts the section on a fresh page (sections are separated by
// an explicit page break), writes the bold title line, then lays out the
// body blocks. Policy-style bodies without explicit bullets are re-bulleted
// by the grouping heuristic.
func (d *Document) AddSection(sec SectionText) {
	if d.sections > 0 {
		d.pdf.AddPage()
	}
	d.sections++
	d.pdf.SetFont("Times", "B", titleSize)
	d.pdf.Write(6, d.tr(sec.Title))
	d.pdf.Ln(titleLead)

	blocks := ParseBlocks(sec.Body)
	if sec.PolicyStyle && !HasBullets(blocks) {
		blocks = GroupPolicyBullets(sec.Body)
	}
	d.writeBlocks(blocks)
}

func (d *Document) writeBlocks(blocks []Block) {
	left, _, _, _ := d.pdf.GetMargins()
	for _, b := range blocks {
		switch b.Kind {
		case BlockSpacer:
			// blank source lines widen the paragraph gap instead of vanishing
			d.pdf.Ln(paraGap)
		case BlockBullet:
			d.pdf.SetX(left)
			d.pdf.SetFont("Times", "", bodySize)
			d.pdf.Write(lineHeight, d.tr("• "))
			// raising the left margin keeps wrapped continuation lines on
			// the bullet indent
			d.pdf.SetLeftMargin(left + bulletIndent)
			d.writeRuns(b.Runs)
			d.pdf.Ln(lineHeight)
			d.pdf.SetLeftMargin(left)
		case BlockParagraph:
			if len(b.Runs) == 0 {
				continue
			}
			d.writeRuns(b.Runs)
			d.pdf.Ln(lineHeight)
		}
	}
}

// writeRuns places alternating styled runs on the same visual line; the
// line break is withheld until after the final run.
func (d *Document) writeRuns(runs []Run) {
	for _, r := range runs {
		style := ""
		if r.Bold {
			style = "B"
		}
		d.pdf.SetFont("Times", style, bodySize)
		d.pdf.Write(lineHeight, d.tr(r.Text))
	}
}

// Output writes the finished document and closes the canvas.
func (d *Document) Output(path string) error {
	return d.pdf.OutputFileAndClose(path)
}

// RenderPDF lays out all sections in the given order and writes one file.
func RenderPDF(country string, secs []SectionText, path string) error {
	doc := NewDocument(country)
	for _, sec := range secs {
		doc.AddSection(sec)
	}
	return doc.Output(path)
}
