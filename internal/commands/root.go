package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/moasq/claudelint/internal/lint"
	"github.com/moasq/claudelint/internal/terminal"
)

// Version is set at build time.
var Version = "0.3.1"

// errFindings signals a run that completed but found problems. Its message
// is already on stderr, so Execute does not print it again. The exit code
// matches the not-a-directory failure; callers can tell the two apart only
// by message.
var errFindings = errors.New("validation failed")

var rootCmd = &cobra.Command{
	Use:   "claudelint [path]",
	Short: "Validate a .claude/ directory structure",
	Long: "Claudelint checks a .claude/ workspace against the layering rules:\n" +
		"global context stays non-procedural, agents express perspective without\n" +
		"workflows, skills describe capabilities without success criteria, and\n" +
		"references are elective.",
	Version:       Version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := lint.DefaultRoot
		if len(args) == 1 {
			root = args[0]
		}
		return runCheck(cmd, root)
	},
}

func runCheck(cmd *cobra.Command, root string) error {
	stdout := terminal.NewPrinter(cmd.OutOrStdout())
	stderr := terminal.NewPrinter(cmd.ErrOrStderr())

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		stderr.Errorf("%s is not a directory", root)
		return errFindings
	}

	report := lint.Check(os.DirFS(root), root)
	if !report.HasIssues() {
		stdout.Okf("%s passes all checks", root)
		return nil
	}

	for _, issue := range report.Issues {
		stderr.Errorf("%s", issue.Message)
	}
	stderr.Plainf("\n%d error(s)\n", len(report.Issues))
	return errFindings
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errFindings) {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
