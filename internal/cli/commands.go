// Package cli wires configuration, logging, pages and the UI into the
// pageswipe command line.
package cli

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pageswipe/internal/config"
	"pageswipe/internal/eventbus"
	"pageswipe/internal/logging"
	"pageswipe/internal/pages"
	"pageswipe/internal/replay"
	"pageswipe/internal/session"
	"pageswipe/internal/ui"
)

type options struct {
	configFile string
}

// NewRootCommand creates the pageswipe command
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "pageswipe [dir]",
		Short:         "Swipe through a directory of pages in the terminal",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.Pages.Dir = args[0]
			}
			return runTUI(cmd.Context(), cfg)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "config file path")
	cmd.AddCommand(newReplayCommand(opts))
	return cmd
}

func newReplayCommand(opts *options) *cobra.Command {
	var width float64

	cmd := &cobra.Command{
		Use:   "replay <file>",
		Short: "Replay a scripted gesture file and print every frame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}
			params, err := cfg.CarouselParams()
			if err != nil {
				return err
			}

			logger, closeLog, err := logging.New(cfg.Log)
			if err != nil {
				return err
			}
			defer closeLog()

			script, err := replay.Load(args[0])
			if err != nil {
				return err
			}
			if width > 0 {
				script.Width = width
			}

			steps, err := replay.Run(script, params, logger)
			if err != nil {
				return fmt.Errorf("replay %s: %w", args[0], err)
			}
			return replay.Print(cmd.OutOrStdout(), steps)
		},
	}

	cmd.Flags().Float64VarP(&width, "width", "w", 0, "container width, overrides the script")
	return cmd
}

func runTUI(ctx context.Context, cfg *config.Config) error {
	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	log := logger.WithField("dir", cfg.Pages.Dir)
	bus := eventbus.New(logger)

	found, err := pages.Discover(ctx, cfg.Pages.Dir, cfg.Pages.Pattern)
	if err != nil {
		if errors.Is(err, pages.ErrEmpty) {
			return fmt.Errorf("no pages matching %q in %s", cfg.Pages.Pattern, cfg.Pages.Dir)
		}
		return err
	}
	log.WithField("pages", len(found)).Info("pages discovered")

	startAt := 0
	if cfg.Session.File != "" {
		store, err := session.Open(cfg.Session.File, cfg.Pages.Dir)
		if err != nil {
			// A broken session file should not keep the pages from opening
			log.WithError(err).Warn("session not loaded")
		} else {
			if cfg.Session.Restore {
				startAt = store.Focus()
			}
			defer session.Track(bus, store, logger)()
		}
	}

	model, err := ui.NewModel(ui.Options{
		Pages:   found,
		Config:  cfg,
		Bus:     bus,
		Logger:  logger,
		StartAt: startAt,
	})
	if err != nil {
		return err
	}

	programOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	}
	if cfg.UI.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, programOpts...)
	model.SetProgram(p)
	defer model.Close()

	if cfg.Pages.Watch {
		w := pages.NewWatcher(cfg.Pages.Dir, cfg.Pages.Pattern, bus, logger)
		if err := w.Start(ctx); err != nil {
			log.WithError(err).Warn("page watch disabled")
		} else {
			defer w.Close()
		}
	}

	log.Info("starting UI")
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			log.Info("interrupted")
			return nil
		}
		return fmt.Errorf("run UI: %w", err)
	}
	log.WithField("page", model.Carousel().State().FocusedIndex).Info("UI exited normally")
	return nil
}
