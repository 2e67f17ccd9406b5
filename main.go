package main

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/swipecell/internal/config"
	"github.com/ytget/swipecell/internal/logging"
	"github.com/ytget/swipecell/internal/mailbox"
	"github.com/ytget/swipecell/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.swipecell"
	AppName = "Swipe Mail"

	WindowWidth  = 420
	WindowHeight = 720
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	logging.SetRawLogLevel(settings.GetLogLevel())
	defer logging.Close()

	demo, err := mailbox.OpenDemo(context.Background(), settings.GetDatabasePath(), mailbox.DefaultDemoSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open mailbox: %v\n", err)
		os.Exit(1)
	}
	defer demo.Close()

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, ui.RootOptions{
		Mailbox: demo.Service,
		Reseed:  demo.Reseed,
	})

	// Show and run
	myWindow.ShowAndRun()
}
