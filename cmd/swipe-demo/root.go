package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ytget/swipecell/internal/config"
	"github.com/ytget/swipecell/internal/logging"
	"github.com/ytget/swipecell/internal/mailbox"
	"github.com/ytget/swipecell/internal/platform"
)

// flags shared by every subcommand
type flags struct {
	optionsPath string
	dbPath      string
	language    string
	logLevel    string
	logFile     string
	seed        int
	touch       string
}

func (f *flags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.optionsPath, "options", "", "TOML file with the swipe options of both sides")
	fs.StringVar(&f.dbPath, "db", "", "mailbox database (default <data dir>/"+config.DefaultDatabaseName+")")
	fs.StringVar(&f.language, "lang", "", "interface language: en, ru, pt or system")
	fs.StringVar(&f.logLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&f.logFile, "log-file", "", "write logs to this file instead of stderr")
	fs.IntVar(&f.seed, "seed", mailbox.DefaultDemoSize, "number of sample messages in a new inbox")
	fs.StringVar(&f.touch, "touch", "", `evdev touchscreen to read, "auto" to detect one`)
}

// setupLogging applies the log flags; the caller closes the log file
func (f *flags) setupLogging() {
	if f.logFile != "" {
		logging.SetLogPath(f.logFile)
	}
	logging.SetRawLogLevel(f.logLevel)
}

// fileOptions loads the options file, nil when none was given
func (f *flags) fileOptions() (*config.SwipeOptions, error) {
	if f.optionsPath == "" {
		return nil, nil
	}
	options, err := config.LoadOptions(f.optionsPath)
	if err != nil {
		return nil, err
	}
	return &options, nil
}

// databasePath returns the --db flag or fallback, then the data directory default
func (f *flags) databasePath(fallback string) (string, error) {
	if f.dbPath != "" {
		return f.dbPath, nil
	}
	if fallback != "" {
		return fallback, nil
	}
	dir, err := platform.GetDataDir()
	if err != nil {
		return "", fmt.Errorf("resolve data directory: %w", err)
	}
	return filepath.Join(dir, config.DefaultDatabaseName), nil
}

// touchPath resolves the --touch flag to a device path, empty when disabled
func (f *flags) touchPath() (string, error) {
	switch f.touch {
	case "":
		return "", nil
	case "auto":
		return platform.FindTouchscreen()
	default:
		return f.touch, nil
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:     "swipe-demo",
		Short:   "Swipeable mail rows",
		Long:    `swipe-demo shows a mail inbox whose rows reveal actions when swiped left or right.`,
		Version: version,
		// bare invocation opens the window
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGUI(cmd.Context(), f)
		},
		SilenceUsage: true,
	}
	f.register(root.PersistentFlags())

	root.AddCommand(newGUICmd(f), newTUICmd(f))
	return root
}
