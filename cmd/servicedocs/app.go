package main

import (
	"fmt"
	"net/http"

	"github.com/c360studio/servicedocs/catalog"
	"github.com/c360studio/servicedocs/config"
	"github.com/c360studio/servicedocs/enrich"
	"github.com/c360studio/servicedocs/enrich/wikidata"
	"github.com/c360studio/servicedocs/generate"
	"github.com/c360studio/servicedocs/layout"
	"github.com/c360studio/servicedocs/naics"
)

// App wires the generation pipeline together from configuration.
type App struct {
	cfg      *config.Config
	registry *naics.Registry
	services []catalog.Service
	mode     layout.Mode
}

// loadConfig resolves the effective configuration from an optional file.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newApp loads configuration, the classification registry, and the
// service catalog.
func newApp(configPath string) (*App, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	mode, err := layout.ParseMode(cfg.Output.Mode)
	if err != nil {
		return nil, err
	}

	services := catalog.Builtin()
	if cfg.Catalog.Path != "" {
		services, err = catalog.Load(cfg.Catalog.Path)
		if err != nil {
			return nil, err
		}
	}

	return &App{
		cfg:      cfg,
		registry: naics.NewRegistry(),
		services: services,
		mode:     mode,
	}, nil
}

// provider builds the enrichment provider, or nil when enrichment is
// disabled.
func (a *App) provider() enrich.Provider {
	if !a.cfg.Enrichment.Enabled {
		return nil
	}

	opts := []wikidata.ClientOption{
		wikidata.WithHTTPClient(&http.Client{Timeout: a.cfg.Enrichment.Timeout}),
	}
	if a.cfg.Enrichment.Endpoint != "" {
		opts = append(opts, wikidata.WithEndpoint(a.cfg.Enrichment.Endpoint))
	}
	if a.cfg.Enrichment.UserAgent != "" {
		opts = append(opts, wikidata.WithUserAgent(a.cfg.Enrichment.UserAgent))
	}

	return wikidata.NewClient(opts...)
}

// generator assembles the batch generator writing to the configured
// output directory.
func (a *App) generator() (*generate.Generator, error) {
	filter, err := generate.NewFilter(a.cfg.Filter.Include, a.cfg.Filter.Exclude)
	if err != nil {
		return nil, err
	}

	opts := []generate.Option{
		generate.WithFilter(filter),
		generate.WithExamples(a.cfg.Output.IncludeExamples),
	}
	if p := a.provider(); p != nil {
		opts = append(opts, generate.WithProvider(p))
	}

	emitter := generate.NewDirEmitter(a.cfg.Output.Dir)
	return generate.NewGenerator(a.registry, emitter, a.mode, opts...), nil
}
