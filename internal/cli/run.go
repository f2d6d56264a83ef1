package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"timekit/internal/config"
	"timekit/internal/stopwatch"
)

var (
	runLabel   string
	runMessage string
	runSilent  bool
	runColor   string
)

var runCmd = &cobra.Command{
	Use:   "run [flags] -- command [args...]",
	Short: "Run a command and report its elapsed time",
	Example: `  timeit run -- sleep 1
  timeit run --label build --message "cold cache" -- make all
  timeit run --silent -- ./script.sh`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCommand,
}

func init() {
	runCmd.Flags().StringVarP(&runLabel, "label", "l", "", "timer label (default: command base name)")
	runCmd.Flags().StringVarP(&runMessage, "message", "m", "", "message appended to the timing line")
	runCmd.Flags().BoolVarP(&runSilent, "silent", "s", false, "suppress the timing line")
	runCmd.Flags().StringVar(&runColor, "color", "", "color mode: auto, always or never")

	rootCmd.AddCommand(runCmd)
}

func runCommand(cmd *cobra.Command, args []string) error {
	label := runLabel
	if label == "" {
		label = defaultLabel(args[0])
	}
	silent := runSilent || cfg.Silent
	mode := runColor
	if mode == "" {
		mode = cfg.Color
	}

	watch := stopwatch.NewWithOutput(io.Discard, os.Stderr)

	child := exec.Command(args[0], args[1:]...)
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr

	watch.Start(label)
	runErr := child.Run()
	elapsed := watch.Stop(label, stopwatch.Silent())

	if !silent {
		fmt.Fprintln(cmd.OutOrStdout(), renderLine(label, elapsed, runMessage, mode))
	}

	// Lets Execute propagate the child's exit code.
	return runErr
}

// defaultLabel derives a timer label from the command path.
func defaultLabel(command string) string {
	return filepath.Base(command)
}

// renderLine formats the canonical timing line, coloring the label according
// to the given mode. In auto mode fatih/color decides from the terminal.
func renderLine(label string, ms float64, message, mode string) string {
	c := color.New(color.FgCyan, color.Bold)
	switch mode {
	case config.ColorAlways:
		c.EnableColor()
	case config.ColorNever:
		c.DisableColor()
	}

	line := fmt.Sprintf("%s: %.3fms", c.Sprint(label), ms)
	if message != "" {
		line += " - " + message
	}
	return line
}
