package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"folio/internal/config"
	"folio/internal/contact"
	"folio/internal/content"
	"folio/internal/logging"
	"folio/internal/telemetry"
	"folio/internal/ui"
	"folio/internal/ui/markdown"
)

// Version is set via ldflags at build time.
var Version = "dev"

type rootOptions struct {
	configPath  string
	contentPath string
	watch       bool
	instant     bool
	verbose     bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "folio",
		Short: "A single-page portfolio in your terminal",
		Long: `folio shows a personal portfolio page in the terminal: a hero banner,
a project gallery, an about section and a contact form, with a sticky
header that jumps to each section.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", config.DefaultPath, "config file path")
	pf.StringVar(&opts.contentPath, "content", "", "content YAML file (default: built-in page)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "reload the content file when it changes")
	cmd.Flags().BoolVar(&opts.instant, "instant", false, "jump to sections without animating")

	cmd.AddCommand(newRenderCmd(opts), newContentCmd(opts), newVersionCmd())
	return cmd
}

// loadConfig reads the config file and environment, then applies flags
// the user set explicitly.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("content") {
		cfg.ContentPath = opts.contentPath
	}
	if flags.Changed("watch") {
		cfg.Watch = opts.watch
	}
	if flags.Changed("instant") {
		cfg.SmoothScroll = !opts.instant
	}
	if opts.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, opts *rootOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	tp, err := telemetry.New(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			logger.Warn("telemetry shutdown", zap.Error(err))
		}
	}()

	site, err := content.Load(cfg.ContentPath)
	if err != nil {
		return err
	}

	out := ui.NewTerminalOutput(os.Stdout)
	model := ui.NewAppModel(ui.Options{
		Site:       site,
		Breakpoint: cfg.Breakpoint,
		Smooth:     cfg.SmoothScroll,
		Relay:      newRelay(cfg, logger, tp),
		Logger:     logger,
		Markdown:   markdown.New(resolveGlamourStyle(cfg.GlamourStyle)),
		Clipboard:  ui.OSC52Clipboard{Out: out},
		Context:    ctx,
	})
	p := tea.NewProgram(model.AsTeaModel(),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
		tea.WithOutput(out),
	)

	if cfg.Watch && cfg.ContentPath != "" {
		w, err := content.Watch(cfg.ContentPath, content.WatchOptions{
			OnChange: func(s content.Site) { p.Send(ui.ContentReloadedMsg{Site: s}) },
			OnError:  func(err error) { p.Send(ui.ContentErrorMsg{Err: err}) },
		})
		if err != nil {
			return err
		}
		defer w.Close()
	}

	logger.Info("starting",
		zap.String("version", Version),
		zap.String("content", cfg.ContentPath),
		zap.Bool("watch", cfg.Watch),
		zap.Bool("telemetry", tp.Enabled()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}

// newRelay picks the contact relay and wraps it in a span.
func newRelay(cfg *config.Config, logger *zap.Logger, tp *telemetry.Provider) contact.Relay {
	var next contact.Relay = &contact.LogRelay{Logger: logger}
	if cfg.Relay == config.RelayNone {
		next = contact.DiscardRelay{}
	}
	return &contact.TracingRelay{Next: next, Tracer: tp.Tracer()}
}

// resolveGlamourStyle settles "auto" before the program starts; the
// background query cannot run once the UI owns the terminal.
func resolveGlamourStyle(style string) string {
	if style != markdown.StyleAuto {
		return style
	}
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of folio",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "folio %s\n", Version)
		},
	}
}
