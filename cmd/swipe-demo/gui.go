package main

import (
	"context"
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/ytget/swipecell/internal/config"
	"github.com/ytget/swipecell/internal/logging"
	"github.com/ytget/swipecell/internal/mailbox"
	"github.com/ytget/swipecell/internal/model"
	"github.com/ytget/swipecell/internal/platform"
	"github.com/ytget/swipecell/internal/ui"
)

const (
	AppID = "com.ytget.swipecell"

	WindowWidth  = 420
	WindowHeight = 720
)

func newGUICmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the demo window",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGUI(cmd.Context(), f)
		},
	}
}

func runGUI(ctx context.Context, f *flags) error {
	f.setupLogging()
	defer logging.Close()
	logger := logging.Logger()
	logger.Info("starting swipe demo", "version", version, "frontend", "gui")

	fileOptions, err := f.fileOptions()
	if err != nil {
		return err
	}

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	settings := config.NewSettings(myApp)
	if f.language != "" {
		settings.SetLanguage(f.language)
	}

	dbPath, err := f.databasePath(settings.GetDatabasePath())
	if err != nil {
		return err
	}
	demo, err := mailbox.OpenDemo(ctx, dbPath, f.seed)
	if err != nil {
		return fmt.Errorf("open mailbox %s: %w", dbPath, err)
	}
	defer demo.Close()

	myWindow := myApp.NewWindow("")
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	root := ui.NewRootUI(myWindow, myApp, ui.RootOptions{
		Mailbox:     demo.Service,
		FileOptions: fileOptions,
		Reseed:      demo.Reseed,
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if err := startTouch(ctx, f, model.Size{Width: WindowWidth, Height: WindowHeight}, func(s platform.Sample) {
		fyne.Do(func() { root.TouchRouter().Handle(s) })
	}); err != nil {
		return err
	}

	myWindow.ShowAndRun()
	return nil
}

// startTouch reads the touchscreen named by the flags until ctx is done.
// Samples are scaled to screen.
func startTouch(ctx context.Context, f *flags, screen model.Size, fn func(platform.Sample)) error {
	path, err := f.touchPath()
	if err != nil || path == "" {
		return err
	}
	dev, err := platform.OpenTouch(path, screen)
	if err != nil {
		return err
	}

	logger := logging.Logger()
	go func() {
		defer dev.Close()
		if err := dev.Run(ctx, fn); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("touch input stopped", "device", path, "error", err)
		}
	}()
	return nil
}
