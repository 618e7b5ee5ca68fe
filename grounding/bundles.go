package grounding

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadBundle reads extracted-text bundles that an external scraper left in
// dir for the given country. Files whose name contains both the country key
// and the section key are preferred; when none match, country-wide bundles
// are used instead. A missing directory or bundle means "no additional
// context" and returns the empty string.
func LoadBundle(dir, country, sectionKey string) string {
	if dir == "" {
		return ""
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	key := CountryKey(country)

	var sectionFiles, countryFiles []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := strings.ToLower(e.Name())
		if !strings.Contains(name, key) {
			continue
		}
		if sectionKey != "" && strings.Contains(name, sectionKey) {
			sectionFiles = append(sectionFiles, e.Name())
		} else {
			countryFiles = append(countryFiles, e.Name())
		}
	}

	names := sectionFiles
	if len(names) == 0 {
		names = countryFiles
	}

	var parts []string
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		text := strings.TrimSpace(string(data))
		if text == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("[From %s]:\n%s", name, text))
	}
	return strings.Join(parts, "\n\n")
}
