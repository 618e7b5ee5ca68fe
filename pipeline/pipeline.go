package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gef_pif_generator/config"
	"gef_pif_generator/generator"
	"gef_pif_generator/grounding"
	"gef_pif_generator/renderer"
)

// Pipeline sequences generation, verification, persistence, and rendering
// for one run. Sections fan out up to the configured concurrency; within a
// section the draft strictly precedes the verify. Final output is always in
// catalog order, never completion order.
type Pipeline struct {
	agent *generator.Agent
	store *Store
	cfg   config.Config
	log   *zap.SugaredLogger

	mu    sync.Mutex
	state State
}

func New(agent *generator.Agent, store *Store, cfg config.Config, log *zap.SugaredLogger) *Pipeline {
	return &Pipeline{agent: agent, store: store, cfg: cfg, log: log, state: StateIdle}
}

func (p *Pipeline) setState(s State) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if s <= p.state {
		return
	}
	p.state = s
	p.log.Infow("run state", "state", s.String())
}

// State reports the current run state.
func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Run drafts and verifies every catalog section, then persists the Run
// Output as one atomic unit. Any draft or verify failure aborts the whole
// run with nothing persisted; there are no retries.
func (p *Pipeline) Run(ctx context.Context, country string) (*RunOutput, error) {
	secs := generator.Catalog()
	approved := grounding.LoadApprovedSources(p.cfg.SourcesDir, country)
	results := make([]string, len(secs))

	start := time.Now()
	p.setState(StateDrafting)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Concurrency)
	for i, sec := range secs {
		i, sec := i, sec
		g.Go(func() error {
			bundle := grounding.LoadBundle(p.cfg.DataDir, country, sec.Key)

			t0 := time.Now()
			draft, err := p.agent.Draft(ctx, sec, country, bundle)
			if err != nil {
				return fmt.Errorf("draft %s: %w", sec.Key, err)
			}
			p.log.Infow("section drafted", "section", sec.Key, "elapsed", time.Since(t0))

			p.setState(StateVerifying)
			t1 := time.Now()
			verified, err := p.agent.Verify(ctx, sec, country, draft, approved)
			if err != nil {
				return fmt.Errorf("verify %s: %w", sec.Key, err)
			}
			p.log.Infow("section verified", "section", sec.Key, "elapsed", time.Since(t1))

			// each task writes only its own slot, exactly once
			results[i] = verified.Text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &RunOutput{
		SchemaVersion: SchemaVersion,
		RunID:         uuid.NewString(),
		Country:       country,
		GeneratedAt:   time.Now().UTC(),
		Sections:      make(map[string]string, len(secs)),
	}
	for i, sec := range secs {
		out.Sections[sec.Key] = results[i]
	}

	if err := p.store.Save(out); err != nil {
		return nil, fmt.Errorf("persist run output: %w", err)
	}
	p.setState(StatePersisted)
	p.log.Infow("run persisted", "country", country, "run_id", out.RunID,
		"sections", len(secs), "elapsed", time.Since(start))
	return out, nil
}

// Render lays out a Run Output as PDF, Markdown, and HTML files in catalog
// order and returns the PDF path.
func (p *Pipeline) Render(out *RunOutput) (string, error) {
	start := time.Now()
	secs := sectionTexts(out)

	if err := os.MkdirAll(p.cfg.OutDir, 0o755); err != nil {
		return "", err
	}
	stem := filepath.Join(p.cfg.OutDir, grounding.CountryKey(out.Country)+"_pif")

	pdfPath := stem + ".pdf"
	if err := renderer.RenderPDF(out.Country, secs, pdfPath); err != nil {
		return "", fmt.Errorf("render pdf: %w", err)
	}
	if err := os.WriteFile(stem+".md", []byte(renderer.AssembleMarkdown(out.Country, secs)), 0o644); err != nil {
		return "", err
	}
	html, err := renderer.AssembleHTML(out.Country, secs)
	if err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	if err := os.WriteFile(stem+".html", []byte(html), 0o644); err != nil {
		return "", err
	}

	p.setState(StateRendered)
	p.log.Infow("run rendered", "country", out.Country, "pdf", pdfPath, "elapsed", time.Since(start))
	return pdfPath, nil
}

// RenderOnly reloads a previously persisted Run Output and renders it
// without repeating any model call. A missing or mismatched file is a
// descriptive error before anything is written.
func (p *Pipeline) RenderOnly(country string) (string, error) {
	out, err := p.store.Load(country, generator.SectionKeys())
	if err != nil {
		return "", err
	}
	return p.Render(out)
}

// sectionTexts orders persisted texts by the static catalog, expanding
// {Country} in titles for display.
func sectionTexts(out *RunOutput) []renderer.SectionText {
	var secs []renderer.SectionText
	for _, sec := range generator.Catalog() {
		secs = append(secs, renderer.SectionText{
			Title:       generator.ExpandCountry(sec.Title, out.Country),
			Body:        out.Sections[sec.Key],
			PolicyStyle: sec.PolicyStyle,
		})
	}
	return secs
}
