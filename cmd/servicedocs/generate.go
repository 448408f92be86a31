package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c360studio/servicedocs/generate"
	"github.com/c360studio/servicedocs/layout"
)

func generateCmd(flags *rootFlags) *cobra.Command {
	var (
		outputDir string
		mode      string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the service documentation tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(flags.configPath)
			if err != nil {
				return err
			}

			if outputDir != "" {
				app.cfg.Output.Dir = outputDir
			}
			if mode != "" {
				app.cfg.Output.Mode = mode
				if app.mode, err = layout.ParseMode(mode); err != nil {
					return err
				}
			}

			gen, err := app.generator()
			if err != nil {
				return err
			}

			report, err := gen.Run(cmd.Context(), app.services)
			if err != nil {
				return err
			}

			printReport(report, app.cfg.Output.Dir)
			if report.Failed() > 0 {
				return fmt.Errorf("%d service(s) failed", report.Failed())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (overrides config)")
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "Layout mode: flat, nested, nested-subcategory (overrides config)")

	return cmd
}

func watchCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate on catalog or config changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(flags.configPath)
			if err != nil {
				return err
			}

			var paths []string
			if flags.configPath != "" {
				paths = append(paths, flags.configPath)
			}
			if app.cfg.Catalog.Path != "" {
				paths = append(paths, app.cfg.Catalog.Path)
			}
			if len(paths) == 0 {
				return fmt.Errorf("watch needs a config file (--config) or a catalog file to watch")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			run := func(runCtx context.Context) error {
				// Reload inputs so catalog edits take effect.
				app, err := newApp(flags.configPath)
				if err != nil {
					return err
				}
				gen, err := app.generator()
				if err != nil {
					return err
				}
				report, err := gen.Run(runCtx, app.services)
				if err != nil {
					return err
				}
				printReport(report, app.cfg.Output.Dir)
				return nil
			}

			watcher := generate.NewWatcher(paths, app.cfg.Watch.Debounce, run, nil)

			err = watcher.Watch(ctx)
			if err != nil && ctx.Err() != nil {
				return nil // Clean shutdown
			}
			return err
		},
	}

	return cmd
}

func printReport(report *generate.Report, outputDir string) {
	fmt.Printf("Generated %d document(s) and %d index(es) in %s (%s mode, run %s)\n",
		report.Generated, report.Indexes, outputDir, report.Mode, report.RunID)
	if report.Skipped > 0 {
		fmt.Printf("Skipped %d service(s) by filter\n", report.Skipped)
	}
	for _, f := range report.Failures {
		fmt.Printf("FAILED %s (%s): %s\n", f.Service, f.Code, f.Reason)
	}
}
