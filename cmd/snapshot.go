package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/zhubert/canvas/internal/demo"
	"github.com/zhubert/canvas/internal/workspace"
)

var (
	snapshotWorkspace string
	snapshotTheme     string
	snapshotWidth     int
	snapshotHeight    int
	snapshotPlain     bool
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print one rendered frame of a workspace",
	Long: `Renders a seeded workspace at the given size and prints the frame without
starting the interactive UI. Useful for checking layouts and themes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSnapshot(cmd.OutOrStdout())
	},
}

func init() {
	snapshotCmd.Flags().StringVar(&snapshotWorkspace, "workspace", "ws-1", "Workspace to render")
	snapshotCmd.Flags().StringVar(&snapshotTheme, "theme", "", "Theme to render with")
	snapshotCmd.Flags().IntVarP(&snapshotWidth, "width", "w", 120, "Terminal width")
	snapshotCmd.Flags().IntVarP(&snapshotHeight, "height", "H", 40, "Terminal height")
	snapshotCmd.Flags().BoolVar(&snapshotPlain, "plain", false, "Strip colors and styles")
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(w io.Writer) error {
	if _, err := workspace.Seed().Get(snapshotWorkspace); err != nil {
		return err
	}

	setup := demo.DefaultSetup()
	setup.Workspace = snapshotWorkspace
	setup.Theme = snapshotTheme

	frames, err := demo.NewExecutor(demo.DefaultExecutorConfig()).Run(&demo.Scenario{
		Name:   "snapshot",
		Width:  snapshotWidth,
		Height: snapshotHeight,
		Setup:  setup,
	})
	if err != nil {
		return fmt.Errorf("error rendering snapshot: %w", err)
	}

	content := frames[len(frames)-1].Content
	if snapshotPlain {
		content = ansi.Strip(content)
	}
	_, err = fmt.Fprintln(w, content)
	return err
}
