// Package generate drives the documentation pipeline: it resolves each
// catalog service against the classification registry, optionally enriches
// it from the external fact provider, renders the leaf document, plans the
// output tree, and hands the planned documents to an emitter.
//
// A single service's failure never aborts the batch; the run report
// tallies per-service outcomes.
package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/c360studio/servicedocs/catalog"
	"github.com/c360studio/servicedocs/enrich"
	"github.com/c360studio/servicedocs/layout"
	"github.com/c360studio/servicedocs/naics"
	"github.com/c360studio/servicedocs/render"
)

// Generator runs the documentation pipeline for a batch of services.
type Generator struct {
	registry        *naics.Registry
	renderer        *render.Renderer
	provider        enrich.Provider
	emitter         Emitter
	mode            layout.Mode
	filter          *Filter
	includeExamples bool
	logger          *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithProvider sets the enrichment fact provider. Without one, documents
// are generated from classification data alone.
func WithProvider(p enrich.Provider) Option {
	return func(g *Generator) {
		g.provider = p
	}
}

// WithFilter sets the service include/exclude filter.
func WithFilter(f *Filter) Option {
	return func(g *Generator) {
		g.filter = f
	}
}

// WithExamples controls the usage-example section of leaf documents.
func WithExamples(include bool) Option {
	return func(g *Generator) {
		g.includeExamples = include
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// NewGenerator creates a generator writing through emitter in the given
// layout mode.
func NewGenerator(registry *naics.Registry, emitter Emitter, mode layout.Mode, opts ...Option) *Generator {
	g := &Generator{
		registry:        registry,
		renderer:        render.NewRenderer(),
		emitter:         emitter,
		mode:            mode,
		includeExamples: true,
		logger:          slog.Default(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Run generates documents for every service in the batch and emits the
// planned tree. The returned report tallies successes and failures;
// Run returns an error only for batch-level problems (an unknown mode or
// an emitter failure), never for a single bad record.
func (g *Generator) Run(ctx context.Context, services []catalog.Service) (*Report, error) {
	report := newReport(string(g.mode))
	defer func() {
		report.Duration = time.Since(report.StartedAt)
	}()

	var items []layout.Item

	for _, svc := range services {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		if !g.filter.Admit(svc) {
			report.Skipped++
			continue
		}

		content, err := g.renderService(ctx, svc)
		if err != nil {
			g.logger.Warn("Service generation failed",
				"service", svc.Name,
				"code", svc.NAICS,
				"error", err)
			report.Failures = append(report.Failures, Failure{
				Service: svc.Name,
				Code:    svc.NAICS,
				Reason:  err.Error(),
			})
			continue
		}

		items = append(items, layout.Item{
			Name:        svc.Name,
			Category:    svc.Category,
			Subcategory: svc.Subcategory,
			Content:     content,
		})
	}

	plan, err := layout.NewPlan(items, g.mode)
	if err != nil {
		return report, fmt.Errorf("plan layout: %w", err)
	}

	if err := g.emitter.Emit(plan.Documents); err != nil {
		return report, fmt.Errorf("emit documents: %w", err)
	}

	report.Generated = len(items)
	report.Indexes = len(plan.Documents) - plan.LeafCount()

	g.logger.Info("Generation complete",
		"run_id", report.RunID,
		"mode", report.Mode,
		"generated", report.Generated,
		"indexes", report.Indexes,
		"skipped", report.Skipped,
		"failed", report.Failed())

	return report, nil
}

// renderService produces the leaf document text for one service.
func (g *Generator) renderService(ctx context.Context, svc catalog.Service) (string, error) {
	record, err := g.registry.Resolve(svc.NAICS)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", svc.NAICS, err)
	}

	facts := g.lookupFacts(ctx, svc)

	doc, err := g.renderer.Render(record, facts, render.Options{
		IncludeExamples: g.includeExamples,
		UNSPSC:          svc.UNSPSC,
	})
	if err != nil {
		return "", err
	}

	return render.MDX(doc), nil
}

// lookupFacts fetches enrichment facts when a provider and identifier are
// available. Lookup misses and provider failures both degrade to an
// unenriched render; a provider failure is logged, a miss is not.
func (g *Generator) lookupFacts(ctx context.Context, svc catalog.Service) *enrich.Facts {
	if g.provider == nil || svc.Wikidata == "" {
		return nil
	}

	facts, err := g.provider.Lookup(ctx, svc.Wikidata)
	if err != nil {
		if !errors.Is(err, enrich.ErrNotFound) {
			g.logger.Warn("Enrichment lookup failed",
				"service", svc.Name,
				"identifier", svc.Wikidata,
				"error", err)
		}
		return nil
	}

	return facts
}
