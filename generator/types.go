package generator

import "time"

// Section describes one named subdivision of the PIF before drafting.
// The catalog order is significant and survives concurrent execution.
type Section struct {
	Key          string
	Title        string
	Instructions string
	WordLimit    int

	// StandardText is fixed boilerplate that must appear verbatim in the
	// section body, bracketed by the marker pair.
	StandardText string

	// NoNumberedHeadings forbids the model from emitting numbered headings
	// inside the body.
	NoNumberedHeadings bool

	// PolicyStyle marks sections the renderer may re-bullet when the model
	// returns flat prose instead of a list.
	PolicyStyle bool
}

// Draft is the first-pass text for a section. It is superseded, not
// mutated, by a Verified result.
type Draft struct {
	SectionKey string
	Text       string
	CreatedAt  time.Time
}

// Verified is the second-pass text after the compliance rewrite.
type Verified struct {
	SectionKey string
	Text       string
	CheckedAt  time.Time
}
