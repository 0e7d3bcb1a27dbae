package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/canvas/internal/logger"
)

var (
	skipConfirm bool
	cleanConfig bool

	cleanLogPath = logger.DefaultLogPath
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the debug log, and optionally the config file",
	Long: `Removes the debug log written to /tmp. With --config the config file is
removed too, so the next start uses the defaults.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCleanWithReader(os.Stdin, cmd.OutOrStdout())
	},
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	cleanCmd.Flags().BoolVar(&cleanConfig, "config", false, "Also remove the config file")
	rootCmd.AddCommand(cleanCmd)
}

// cleanTargets lists the files clean would remove that exist.
func cleanTargets() ([]string, error) {
	candidates := []string{cleanLogPath}
	if cleanConfig {
		path, err := resolveConfigPath()
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, path)
	}

	var targets []string
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			targets = append(targets, path)
		}
	}
	return targets, nil
}

// runCleanWithReader allows injecting a reader for testing
func runCleanWithReader(input io.Reader, w io.Writer) error {
	targets, err := cleanTargets()
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		fmt.Fprintln(w, "Nothing to clean.")
		return nil
	}

	fmt.Fprintln(w, "This will remove:")
	for _, path := range targets {
		fmt.Fprintf(w, "  - %s\n", path)
	}

	if !skipConfirm {
		if !confirm(input, w, "Continue?") {
			fmt.Fprintln(w, "Aborted.")
			return nil
		}
	}

	removed := 0
	for _, path := range targets {
		if err := os.Remove(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: error removing %s: %v\n", path, err)
			continue
		}
		removed++
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Removed %d file(s).\n", removed)
	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, w io.Writer, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Fprintf(w, "%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
