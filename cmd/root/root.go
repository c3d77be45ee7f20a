// Package root contains the root command for the application
package root

import (
	"errors"
	"fmt"
	"sync"

	"fjacquet/syp-convert/internal/config"
	"fjacquet/syp-convert/internal/container"
	"fjacquet/syp-convert/internal/logging"
	"fjacquet/syp-convert/internal/render"

	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands. It is replaced by the
	// configured logger once PersistentPreRunE has run.
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// App holds the dependencies of the running command.
	App *container.Container

	// ConfigFile is the --config flag.
	ConfigFile string

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "syp-convert",
		Short: "A converter between the old and the new Syrian pound.",
		Long: `syp-convert converts amounts between the old Syrian pound and the new
Syrian pound (100 old = 1 new) and works out what is left to pay, in new
pounds, when part of a bill is settled in old notes.

Language (Arabic or English) and dark mode are remembered between runs.
Run without a command to show the converter in the saved language.`,
		SilenceUsage:      true,
		RunE:              showFunc,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if App == nil {
				return
			}
			if err := App.Close(); err != nil {
				Log.WithError(err).Warn("Failed to close preference storage")
			}
			App = nil
		},
	}

	initOnce sync.Once
)

// Init initializes the root command and all flags. Calling it again has no
// effect.
func Init() {
	initOnce.Do(func() {
		flags := Cmd.PersistentFlags()
		flags.StringVar(&ConfigFile, "config", "", "Config file (default $HOME/.syp-convert/config.yaml)")
		flags.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
		flags.String("log-format", "text", "Log format (text or json)")
		flags.String("storage", "file", "Preference storage backend (file, sqlite or memory)")
		flags.String("storage-path", "", "Preference storage location (default under $HOME/.syp-convert)")
		flags.String("csv-delimiter", ",", "CSV field delimiter for batch files")
		flags.Bool("color", false, "Colour the converter output")
	})
}

func setup(cmd *cobra.Command, args []string) error {
	// PersistentPostRun is skipped when a command fails.
	if App != nil {
		_ = App.Close()
		App = nil
	}

	cfg, err := config.Load(ConfigFile, cmd.Flags())
	if err != nil {
		return err
	}

	app, err := container.NewContainer(cfg, container.WithLogOutput(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}

	App = app
	Log = app.GetLogger()
	Log.Debug("Configuration loaded",
		logging.Field{Key: logging.FieldOperation, Value: cmd.CommandPath()},
		logging.Field{Key: logging.FieldBackend, Value: cfg.Storage.Backend})
	return nil
}

// Container returns the dependencies of the running command, or an error
// when the command runs outside the root command's hooks.
func Container() (*container.Container, error) {
	if App == nil {
		return nil, errors.New("application not initialized")
	}
	return App, nil
}

// RenderOptions returns the output options from configuration.
func RenderOptions() render.Options {
	if App == nil {
		return render.Options{}
	}
	return render.Options{Color: App.GetConfig().Display.Color}
}

func showFunc(cmd *cobra.Command, args []string) error {
	app, err := Container()
	if err != nil {
		return err
	}
	if err := render.Text(cmd.OutOrStdout(), app.NewController().View(), RenderOptions()); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	return nil
}
