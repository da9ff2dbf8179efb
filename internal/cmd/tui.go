package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/chromasynth/go-seadream/internal/cases"
	"github.com/chromasynth/go-seadream/internal/client"
	"github.com/chromasynth/go-seadream/internal/config"
	"github.com/chromasynth/go-seadream/internal/i18n"
	"github.com/chromasynth/go-seadream/internal/tui"
	"github.com/chromasynth/go-seadream/internal/tuilog"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive playground",
	Long: `Compose creative briefs and browse generated prompts in a
three-column terminal interface.

Column 1: Preset cases from the catalog
Column 2: Brief composer and generated results
Column 3: Session history with all/liked tabs`,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	if logPath != "" {
		if err := tuilog.Init(logPath); err != nil {
			return err
		}
		defer tuilog.Log.Close()
	}

	cfg, err := config.Load()
	if err != nil {
		tuilog.Log.Warn("config load failed, using defaults", "error", err)
		cfg = config.Default()
	}
	i18n.Init(i18n.ResolveLocale(cfg.Language))

	base := cfg.BackendURL
	if backendURL != "" {
		base = backendURL
	}
	gw := client.New(base)

	catalog := cases.NewCatalog(cfg.CasesPath)

	var events <-chan struct{}
	if cfg.WatchCases {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		watcher, werr := cases.NewWatcher(catalog.Path())
		if werr != nil {
			tuilog.Log.Warn("catalog watcher unavailable", "error", werr)
		} else {
			events, werr = watcher.Start(ctx)
			if werr != nil {
				tuilog.Log.Warn("catalog watcher failed to start", "error", werr)
				events = nil
			}
		}
	}

	return tui.Run(tui.Options{
		Gateway:      gw,
		Catalog:      catalog,
		CaseEvents:   events,
		UITheme:      cfg.Theme,
		DefaultModel: cfg.Model,
	})
}
