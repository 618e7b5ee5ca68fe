package generator

import (
	"fmt"
	"strings"
)

const countryPlaceholder = "{Country}"

const draftSystem = "You are a technical drafter preparing sections of a GEF-8 Project Identification Form (PIF) " +
	"for a UN climate transparency project. Write formal, factual prose. Output Markdown restricted to bold " +
	"spans (**...**), bullet lines, and paragraphs. No extra commentary."

const verifySystem = "You are a compliance reviewer for GEF-8 PIF sections. You rewrite drafts to meet sourcing " +
	"and structural rules; you never add new unsourced claims."

// ExpandCountry substitutes the {Country} placeholder. Whether this runs on
// instruction text is a configuration choice; titles are always expanded.
func ExpandCountry(s, country string) string {
	return strings.ReplaceAll(s, countryPlaceholder, country)
}

// BuildDraftPrompt composes the single outbound request for a section draft:
// fixed preamble, caller instructions, optional grounding text, fixed
// source-restriction and formatting rules, and flag-derived addenda.
func BuildDraftPrompt(sec Section, country, grounding string, expandPlaceholder bool) Prompt {
	var sb strings.Builder
	title := ExpandCountry(sec.Title, country)
	fmt.Fprintf(&sb, "SECTION TITLE: %s\n", title)
	fmt.Fprintf(&sb, "COUNTRY: %s\n\n", country)

	if sec.StandardText != "" {
		std := sec.StandardText
		if expandPlaceholder {
			std = ExpandCountry(std, country)
		}
		sb.WriteString("Begin the section with this standard text, reproduced verbatim including both markers:\n")
		sb.WriteString(WrapStandardText(std))
		sb.WriteString("\n\n")
	}

	if sec.Instructions != "" {
		instr := sec.Instructions
		if expandPlaceholder {
			instr = ExpandCountry(instr, country)
		}
		sb.WriteString("Instructions:\n")
		sb.WriteString(instr)
		sb.WriteString("\n\n")
	}

	if grounding != "" {
		sb.WriteString("Additional context extracted from official reports (use as grounding, cite conservatively):\n")
		sb.WriteString(grounding)
		sb.WriteString("\n\n")
	}

	sb.WriteString("Rules:\n")
	sb.WriteString("- Rely only on official UNFCCC submissions and the approved source list; use conservative language otherwise.\n")
	sb.WriteString("- Include an ISO date (YYYY or YYYY-MM-DD) for every cited figure or document.\n")
	sb.WriteString("- Do not invent statistics, institutions, or legal instruments.\n")
	sb.WriteString("- Markdown is limited to **bold** spans, bullet lines (- ), and blank-line paragraph breaks.\n")
	if sec.WordLimit > 0 {
		fmt.Fprintf(&sb, "- Word limit: %d.\n", sec.WordLimit)
	}
	if sec.NoNumberedHeadings {
		sb.WriteString("- Do not use numbered headings; write continuous prose with paragraph breaks.\n")
	}

	return Prompt{System: draftSystem, User: sb.String()}
}

// BuildVerifyPrompt composes the compliance/fact-check pass over a draft.
func BuildVerifyPrompt(sec Section, country, draft string, approvedSources []string) Prompt {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SECTION TITLE: %s\n", ExpandCountry(sec.Title, country))
	fmt.Fprintf(&sb, "COUNTRY: %s\n\n", country)

	sb.WriteString("Approved sources:\n")
	for _, s := range approvedSources {
		fmt.Fprintf(&sb, "- %s\n", s)
	}
	sb.WriteString("\n")

	sb.WriteString("Rewrite the draft below so that it complies with every rule:\n")
	sb.WriteString("- Any claim that cannot be verified against the approved sources must be tagged [UNVERIFIED] instead of asserted.\n")
	fmt.Fprintf(&sb, "- Any text between %s and %s markers, including the markers themselves, must survive unmodified.\n",
		StandardTextBegin, StandardTextEnd)
	sb.WriteString("- Flag sources older than ten years by appending (dated) to the citation.\n")
	if sec.Key == "baseline_institutional" {
		sb.WriteString("- Each institution must be exactly one bullet of the form '- **Name:** role.'\n")
	}
	sb.WriteString("- Keep numeric values verbatim unless demonstrably incorrect.\n")
	sb.WriteString("\nAfter the revised section, append a short block starting with 'Compliance notes:' summarizing what was changed or tagged.\n")

	sb.WriteString("\nDraft:\n")
	sb.WriteString(draft)

	return Prompt{System: verifySystem, User: sb.String()}
}
