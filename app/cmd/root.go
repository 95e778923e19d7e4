package main

import (
	"context"
	"fmt"
	"github.com/ribgsilva/notes/persistence/v1/database"
	"github.com/ribgsilva/notes/platform/logger"
	"github.com/ribgsilva/notes/sys"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"os"
)

var verbose bool

// rootCmd is the notes admin tool, talking straight to the database
var rootCmd = &cobra.Command{
	Use:           "notes-admin",
	Short:         "Administration tasks for the notes database",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command line. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log the configuration being used")
}

func newLogger() *zap.SugaredLogger {
	if !verbose {
		return zap.NewNop().Sugar()
	}
	log, err := logger.New("Notes-Admin")
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return log
}

// connect opens the database configured through env vars
func connect(ctx context.Context) (*database.Conn, sys.Config, error) {
	log := newLogger()
	if err := sys.Bootstrap(ctx, log); err != nil {
		return nil, sys.Config{}, err
	}
	cfg := sys.Load(log)
	conn, err := database.Open(ctx, cfg.Database.ConnectionURL, cfg.Database.Name, cfg.Database.PingTimeout)
	if err != nil {
		return nil, sys.Config{}, err
	}
	return conn, cfg, nil
}
