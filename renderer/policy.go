package renderer

import (
	"regexp"
	"strings"
)

// policyKeywordRe matches the legal/instrument nouns that anchor synthetic
// bullets in policy-style sections.
var policyKeywordRe = regexp.MustCompile(`(?i)\b(decree|law|act|resolution|strategy|plan|policy|programme|program|ndc|convention|agreement)s?\b`)

var sentenceEndRe = regexp.MustCompile(`[.!?]+(\s+|$)`)

const (
	maxGroupSentences = 3
	maxClauseLabel    = 60
)

// GroupPolicyBullets re-bullets flat prose in a policy-style section.
// Sentences are scanned left to right; a sentence containing a bold span or
// a policy keyword anchors a group of up to three contiguous sentences,
// which becomes one synthetic bullet. Consumed sentences are never reused.
// Unconsumed sentences between groups stay as plain paragraphs so no text
// is dropped.
func GroupPolicyBullets(text string) []Block {
	sents := splitSentences(text)
	var blocks []Block
	var pending []string
	flushPending := func() {
		if len(pending) > 0 {
			blocks = append(blocks, Block{Kind: BlockParagraph, Runs: SplitRuns(strings.Join(pending, " "))})
			pending = nil
		}
	}

	for i := 0; i < len(sents); {
		if !isPolicyAnchor(sents[i]) {
			pending = append(pending, sents[i])
			i++
			continue
		}
		flushPending()
		end := i + maxGroupSentences
		if end > len(sents) {
			end = len(sents)
		}
		label := bulletLabel(sents[i])
		body := strings.Join(sents[i:end], " ")
		line := "**" + label + ":** " + stripBoldMarkers(body)
		blocks = append(blocks, Block{Kind: BlockBullet, Runs: SplitRuns(line)})
		i = end
	}
	flushPending()
	return blocks
}

func isPolicyAnchor(sentence string) bool {
	if len(SplitRuns(sentence)) > 1 && strings.Contains(sentence, boldMarker) {
		return true
	}
	return policyKeywordRe.MatchString(sentence)
}

// bulletLabel prefers the first bold span of the anchor sentence; otherwise
// it truncates the leading clause at the first comma or colon, capped at a
// fixed width on a word boundary.
func bulletLabel(sentence string) string {
	for _, r := range SplitRuns(sentence) {
		if r.Bold {
			return strings.TrimSuffix(strings.TrimSpace(r.Text), ":")
		}
	}
	clause := stripBoldMarkers(sentence)
	if i := strings.IndexAny(clause, ",:"); i > 0 {
		clause = clause[:i]
	}
	clause = strings.TrimSpace(clause)
	if len(clause) > maxClauseLabel {
		cut := strings.LastIndex(clause[:maxClauseLabel], " ")
		if cut <= 0 {
			cut = maxClauseLabel
		}
		clause = clause[:cut]
	}
	return strings.TrimRight(clause, ".!?")
}

func stripBoldMarkers(s string) string {
	return JoinRuns(SplitRuns(s))
}

// splitSentences is a whitespace-collapsing sentence splitter good enough
// for model prose; terminators stay attached to their sentence.
func splitSentences(text string) []string {
	compact := strings.Join(strings.Fields(text), " ")
	if compact == "" {
		return nil
	}
	var sents []string
	last := 0
	for _, loc := range sentenceEndRe.FindAllStringIndex(compact, -1) {
		sent := strings.TrimSpace(compact[last:loc[1]])
		if sent != "" {
			sents = append(sents, sent)
		}
		last = loc[1]
	}
	if rest := strings.TrimSpace(compact[last:]); rest != "" {
		sents = append(sents, rest)
	}
	return sents
}
