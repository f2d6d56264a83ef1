// Package cli implements the timeit command line interface.
package cli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"timekit/internal/config"
)

var (
	cfgFile string
	cfg     = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "timeit",
	Short: "Time commands with labeled stopwatches",
	Long: `timeit measures how long commands take and reports the elapsed time
in fractional milliseconds, one line per measurement:

  <label>: <elapsed>ms [- <message>]

Defaults are read from $HOME/.config/timeit/config.yaml; flags win.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. A child process failure propagates the
// child's exit code; every other error exits with 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "timeit: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.config/timeit/config.yaml)")
}

func initConfig() {
	path := cfgFile
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			// No home directory; run on built-in defaults.
			return
		}
		path = p
	}

	loaded, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "timeit: %v\n", err)
		os.Exit(1)
	}
	cfg = loaded
}
