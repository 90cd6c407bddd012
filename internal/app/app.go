package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sancognition/memsniff/internal/output"
	"github.com/sancognition/memsniff/internal/proc"
	"github.com/sancognition/memsniff/internal/tui"
)

// Overridden at build time:
// go build -ldflags "-X github.com/sancognition/memsniff/internal/app.version=v0.1.0"
var version = "dev"

// defaultTop is how many processes the report shows when --top is not
// given.
const defaultTop = 10

var (
	topFlag         int
	jsonFlag        bool
	noColorFlag     bool
	interactiveFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "memsniff",
	Short: "Snapshot running processes ranked by physical memory",
	Long: `memsniff takes one snapshot of the running processes on this host,
reads each one's memory counters (working set and private bytes), and
prints the top consumers. Processes that deny access are skipped; a scan
that can inspect nothing still reports an empty table.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().IntVarP(&topFlag, "top", "n", defaultTop, "number of processes to show")
	rootCmd.Flags().BoolVar(&jsonFlag, "json", false, "output as JSON")
	rootCmd.Flags().BoolVar(&noColorFlag, "no-color", false, "disable colorized output")
	rootCmd.Flags().BoolVarP(&interactiveFlag, "interactive", "i", false, "interactive TUI mode")
	rootCmd.Version = version
}

func run(cmd *cobra.Command, args []string) error {
	if topFlag <= 0 {
		return fmt.Errorf("--top must be positive, got %d", topFlag)
	}

	if interactiveFlag {
		return tui.Run()
	}

	records, err := proc.Collect()
	if err != nil {
		return err
	}

	if jsonFlag {
		return output.PrintJSON(cmd.OutOrStdout(), records, topFlag)
	}
	output.RenderTable(cmd.OutOrStdout(), records, topFlag, !noColorFlag)
	return nil
}

// Execute runs the root command and returns its error for the caller to
// map onto an exit status.
func Execute() error {
	return rootCmd.Execute()
}
