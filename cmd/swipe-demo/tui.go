package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ytget/swipecell/internal/config"
	"github.com/ytget/swipecell/internal/i18n"
	"github.com/ytget/swipecell/internal/logging"
	"github.com/ytget/swipecell/internal/mailbox"
	"github.com/ytget/swipecell/internal/model"
	"github.com/ytget/swipecell/internal/platform"
	"github.com/ytget/swipecell/internal/tui"
)

type tuiFlags struct {
	speed      float64
	haptics    bool
	touchCols  int
	touchLines int
}

func newTUICmd(f *flags) *cobra.Command {
	tf := &tuiFlags{}
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the demo in the terminal",
		Long: `Run the demo in the terminal. Drag rows with the mouse, or select a row
and swipe it with the arrow keys.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), f, tf)
		},
	}
	cmd.Flags().Float64Var(&tf.speed, "speed", config.DefaultAnimationSpeed, "animation speed, 0 disables animations")
	cmd.Flags().BoolVar(&tf.haptics, "haptics", config.DefaultHaptics, "flash the header when a swipe crosses the expansion threshold")
	cmd.Flags().IntVar(&tf.touchCols, "touch-cols", 80, "terminal columns the touchscreen spans")
	cmd.Flags().IntVar(&tf.touchLines, "touch-lines", 24, "terminal lines the touchscreen spans")
	return cmd
}

func runTUI(ctx context.Context, f *flags, tf *tuiFlags) error {
	if f.logFile == "" {
		// stderr would draw over the terminal UI
		f.logFile = "swipe-demo.log"
	}
	f.setupLogging()
	defer logging.Close()
	logger := logging.Logger()
	logger.Info("starting swipe demo", "version", version, "frontend", "tui")

	fileOptions, err := f.fileOptions()
	if err != nil {
		return err
	}
	options := config.DefaultSwipeOptions()
	if fileOptions != nil {
		options = *fileOptions
	}

	dbPath, err := f.databasePath("")
	if err != nil {
		return err
	}
	demo, err := mailbox.OpenDemo(ctx, dbPath, f.seed)
	if err != nil {
		return fmt.Errorf("open mailbox %s: %w", dbPath, err)
	}
	defer demo.Close()

	loc := i18n.New()
	loc.SetLanguage(f.language)

	m := tui.New(tui.Config{
		Mailbox:      demo.Service,
		Localization: loc,
		Options:      options.For,
		Speed:        tf.speed,
		Haptics:      tf.haptics,
		Reseed:       demo.Reseed,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	screen := model.Size{Width: float64(tf.touchCols), Height: float64(tf.touchLines)}
	if err := startTouch(ctx, f, screen, func(s platform.Sample) {
		p.Send(tui.TouchMsg(s))
	}); err != nil {
		return err
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
