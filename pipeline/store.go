package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gef_pif_generator/grounding"
)

// SchemaVersion of the persisted Run Output. Reload refuses any other
// version instead of failing later on a missing field.
const SchemaVersion = 1

// RunOutput is the unit of recoverability: the full set of verified section
// texts for one country, persisted as one JSON object. A run can stop after
// Save and be rendered later from this structure alone.
type RunOutput struct {
	SchemaVersion int               `json:"schema_version"`
	RunID         string            `json:"run_id"`
	Country       string            `json:"country"`
	GeneratedAt   time.Time         `json:"generated_at"`
	Sections      map[string]string `json:"sections"`
}

// Store persists Run Outputs under a directory, one file per country.
// Concurrent runs against the same path are not coordinated; the last
// writer wins.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Path(country string) string {
	return filepath.Join(s.dir, grounding.CountryKey(country)+"_run.json")
}

// Save writes the Run Output as a single atomic unit: temp file in the same
// directory, then rename. No partial Run Output ever becomes visible.
func (s *Store) Save(out *RunOutput) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	final := s.Path(out.Country)
	tmp, err := os.CreateTemp(s.dir, ".run-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), final)
}

// Load reloads a persisted Run Output and fails loudly when the on-disk
// shape does not match expectations: wrong schema version or any required
// section missing.
func (s *Store) Load(country string, requiredSections []string) (*RunOutput, error) {
	path := s.Path(country)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("no persisted run for %s at %s; run without --render-only first", country, path)
		}
		return nil, err
	}
	var out RunOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse run output %s: %w", path, err)
	}
	if out.SchemaVersion != SchemaVersion {
		return nil, fmt.Errorf("run output %s has schema version %d, want %d", path, out.SchemaVersion, SchemaVersion)
	}
	for _, key := range requiredSections {
		if _, ok := out.Sections[key]; !ok {
			return nil, fmt.Errorf("run output %s is missing section %q", path, key)
		}
	}
	return &out, nil
}
