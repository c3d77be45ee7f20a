package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fjacquet/syp-convert/cmd/batch"
	"fjacquet/syp-convert/cmd/convert"
	"fjacquet/syp-convert/cmd/interactive"
	"fjacquet/syp-convert/cmd/mixed"
	"fjacquet/syp-convert/cmd/prefs"
	"fjacquet/syp-convert/cmd/root"
	"fjacquet/syp-convert/internal/config"
	"fjacquet/syp-convert/internal/logging"

	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load .env first, before anything reads the environment
	config.LoadEnv()

	// 2. Configure the global log level before any logger is created
	configureLogLevelDirectly()

	// 3. Initialize root command and add all subcommands
	root.Init()
	root.Cmd.AddCommand(convert.Cmd)
	root.Cmd.AddCommand(mixed.Cmd)
	root.Cmd.AddCommand(prefs.Cmd)
	root.Cmd.AddCommand(interactive.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
}

// configureLogLevelDirectly sets the global logrus level from LOG_LEVEL.
func configureLogLevelDirectly() {
	level, _ := logging.ParseLevel(os.Getenv("LOG_LEVEL"))
	logrus.SetLevel(level)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.Cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
