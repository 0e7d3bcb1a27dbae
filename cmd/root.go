package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/canvas/internal/app"
	"github.com/zhubert/canvas/internal/config"
	"github.com/zhubert/canvas/internal/logger"
	"github.com/zhubert/canvas/internal/workspace"
)

var (
	debugMode             bool
	quietMode             bool
	configPath            string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "canvas",
	Short: "Chat workspaces on a pannable, zoomable canvas",
	Long: `Canvas is a terminal workspace for chats. Each workspace is an infinite
canvas of chat panels you can drag, resize, branch and maximize, with a
resizable sidebar to switch between workspaces.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.canvas/config.yaml)")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("canvas %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("canvas %s\n", version)
}

// resolveConfigPath returns the --config flag, or the default location.
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath()
}

func loadConfig() (*config.Config, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return nil, fmt.Errorf("error locating config: %w", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := logger.Init(logger.DefaultLogPath); err != nil {
		return fmt.Errorf("error opening log: %w", err)
	}
	defer logger.Close()

	m := app.New(cfg, workspace.Seed(), version)
	defer m.Close()
	p := tea.NewProgram(m)

	// Live reload: edits to the file reach the model as a message. A bad
	// edit arrives as an error and the running settings stay.
	path := cfg.Path()
	stop, err := config.Watch(path, func() {
		next, err := config.Load(path)
		p.Send(app.ConfigReloadedMsg{Config: next, Err: err})
	})
	if err != nil {
		logger.WithComponent("cmd").Warn("config reload disabled", "error", err)
	} else {
		defer stop()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
