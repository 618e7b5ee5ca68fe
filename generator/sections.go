package generator

import "strings"

// Marker pair bracketing required standard text. Both markers must survive
// every rewriting step unchanged.
const (
	StandardTextBegin = "[BEGIN STANDARD TEXT]"
	StandardTextEnd   = "[END STANDARD TEXT]"
)

// WrapStandardText brackets fixed boilerplate with the marker pair.
func WrapStandardText(text string) string {
	return StandardTextBegin + "\n" + text + "\n" + StandardTextEnd
}

// HasMarkerPair reports whether text carries a complete, ordered marker pair.
func HasMarkerPair(text string) bool {
	i := strings.Index(text, StandardTextBegin)
	if i < 0 {
		return false
	}
	return strings.Index(text[i:], StandardTextEnd) >= 0
}

// MarkerPairPreserved reports whether every marker-bracketed span in the
// draft survives verbatim in the revised text.
func MarkerPairPreserved(draft, revised string) bool {
	rest := draft
	for {
		i := strings.Index(rest, StandardTextBegin)
		if i < 0 {
			return true
		}
		j := strings.Index(rest[i:], StandardTextEnd)
		if j < 0 {
			return true
		}
		span := rest[i : i+j+len(StandardTextEnd)]
		if !strings.Contains(revised, span) {
			return false
		}
		rest = rest[i+j+len(StandardTextEnd):]
	}
}

// sections is the static catalog, in final document order.
var sections = []Section{
	{
		Key:   "rationale_intro",
		Title: "A. PROJECT RATIONALE",
		Instructions: "Write a multi-paragraph narrative covering context, drivers, project objective, " +
			"baseline without the project, envisioned outcomes, barriers, stakeholders, investment landscape, " +
			"and alignment with national priorities for {Country}.",
		NoNumberedHeadings: true,
	},
	{
		Key:   "paris_etf",
		Title: "The Paris Agreement and the Enhanced Transparency Framework",
		StandardText: "As part of the UNFCCC, the Paris Agreement (2015) strengthened the global response to " +
			"climate change. Article 13 established the Enhanced Transparency Framework (ETF), under which " +
			"Parties report on mitigation, adaptation and support. These information requirements present " +
			"challenges to all countries, particularly those already facing impacts.",
	},
	{
		Key:       "climate_transparency_country",
		Title:     "Climate Transparency in {Country}",
		WordLimit: 350,
		Instructions: "Explain where {Country} is not yet fully complying with ETF requirements, actions to date, " +
			"and a 'without project' trajectory. Identify the drivers that sustain the status quo and motivate " +
			"urgency, including population, geography, climate profile, and current emission trends.",
	},
	{
		Key:   "baseline_national_tf_header",
		Title: "1. National transparency framework",
		StandardText: "{Country} signed the UNFCCC and subsequently ratified it, together with the Kyoto Protocol " +
			"and the Paris Agreement. The following sections describe {Country}'s institutional framework for " +
			"climate action, key legislation and policies, stakeholders, and ongoing transparency initiatives.",
		Instructions: "Fill in the signature and ratification dates for the UNFCCC, the Kyoto Protocol, and the " +
			"Paris Agreement, keeping the standard text otherwise as given.",
	},
	{
		Key:       "baseline_institutional",
		Title:     "i. Institutional Framework for Climate Action",
		WordLimit: 500,
		Instructions: "Describe the governmental institutional framework: lead ministry or agency, " +
			"inter-ministerial coordination, legal mandates, data sharing arrangements, and subnational roles. " +
			"List each institution with its role in data collection, finance tracking, or policy.",
		PolicyStyle: true,
	},
	{
		Key:       "baseline_policy",
		Title:     "ii. National Policy Framework",
		WordLimit: 500,
		Instructions: "Describe national climate vision and targets (NDCs, LT-LEDS, climate acts, decrees, state " +
			"plans) and their alignment with ETF mandates. Close with next steps for updates or remaining gaps.",
		PolicyStyle: true,
	},
	{
		Key:          "baseline_stakeholders",
		Title:        "iii. Other key stakeholders for Climate Action",
		StandardText: "Non-government stakeholders for climate action are presented in Table 1.",
		Instructions: "Summarize non-government stakeholders: civil society, private sector, academia and research " +
			"organizations, financial institutions and MDBs, and international organizations, with their existing " +
			"activities and leverage points in {Country}.",
	},
	{
		Key:          "baseline_unfccc_reporting",
		Title:        "iv. Official reporting to the UNFCCC",
		StandardText: "To meet its obligations under the UNFCCC, the country has submitted several documents related to its socio-economic development objectives (see Table 2).",
		Instructions: "Summarize {Country}'s major submissions (NCs, BURs, BTRs, NIRs, NDCs) with years, " +
			"standardized report names, and gaps relevant to CBIT scope.",
	},
	{
		Key:          "module_header",
		Title:        "2. Progress on the four Modules of the Enhanced Transparency Framework",
		StandardText: "The sections below outline status, progress, and challenges across the four core ETF modules.",
	},
	{
		Key:   "module_ghg",
		Title: "i. GHG Inventory Module",
		Instructions: "Describe progress and gaps in the GHG inventory: IPCC 2006 guidelines, tiers, key " +
			"categories, QA/QC, uncertainty, data systems, and institutionalization in {Country}.",
	},
	{
		Key:       "module_adaptation",
		Title:     "ii. Adaptation and Vulnerability Module",
		WordLimit: 400,
		Instructions: "State whether an Adaptation Communication has been submitted. Summarize vulnerabilities, " +
			"MRV status, data gaps, capacity, and integration into planning.",
	},
	{
		Key:       "module_ndc_tracking",
		Title:     "iii. NDC Tracking Module",
		WordLimit: 400,
		Instructions: "Generate the NDC tracking baseline: current coordination, pilots, templates, integration " +
			"with planning, gaps in mandates, tools and reporting cycles, subnational coverage, and recommendations.",
	},
	{
		Key:       "module_support",
		Title:     "iv. Support Needed and Received Module",
		WordLimit: 400,
		Instructions: "Generate the support needed and received baseline: finance needs and flows, tracking " +
			"systems and templates, institutional mandates, gaps (disaggregation, alignment, off-budget flows), " +
			"and next steps.",
	},
	{
		Key:   "other_baseline_initiatives",
		Title: "Other baseline initiatives",
		Instructions: "Summarize relevant transparency initiatives (GEF, GCF, ICAT, NDC Partnership, PMI, REDD+, " +
			"SDGs) active in {Country} and their linkage to the ETF.",
	},
	{
		Key:   "key_barriers",
		Title: "Key barriers",
		Instructions: "Summarize barriers around organizing climate data, incomplete ETF modules and capacity, " +
			"and reliance on one-off projects and external consultants with limited use in planning.",
		PolicyStyle: true,
	},
}

// Catalog returns the ordered section specs for one run.
func Catalog() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// SectionKeys returns catalog keys in document order.
func SectionKeys() []string {
	keys := make([]string, len(sections))
	for i, s := range sections {
		keys[i] = s.Key
	}
	return keys
}
