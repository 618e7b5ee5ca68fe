package grounding

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultSources is used when no sources directory is configured for the
// country. The list is injected into verification prompts; model output is
// never validated against it here.
var DefaultSources = []string{
	"UNFCCC National Communications (NC)",
	"Biennial Update Reports (BUR)",
	"Biennial Transparency Reports (BTR)",
	"National Inventory Reports (NIR)",
	"UNFCCC NDC Registry",
	"PATPA (Partnership on Transparency in the Paris Agreement)",
	"ICAT (Initiative for Climate Action Transparency)",
	"GEF CBIT project documents",
	"NDC Partnership country pages",
}

// LoadApprovedSources merges sources/_common.txt with the country file,
// common first. Blank lines are skipped. When neither file yields anything
// the built-in defaults are returned.
func LoadApprovedSources(dir, country string) []string {
	var out []string
	for _, name := range []string{"_common.txt", CountryKey(country) + ".txt"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		for _, row := range strings.Split(string(data), "\n") {
			row = strings.TrimSpace(row)
			if row == "" {
				continue
			}
			out = append(out, row)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), DefaultSources...)
	}
	return out
}

// CountryKey normalizes a country name for use in file names.
func CountryKey(country string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(country)), " ", "_")
}
