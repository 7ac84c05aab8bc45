package main

import (
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/audio-queue/internal/config"
	"github.com/nguyentantai21042004/audio-queue/internal/logger"
)

// commandContext carries the flags shared by every subcommand.
type commandContext struct {
	configPath string
	rootDir    string
	logLevel   string
}

// loadConfig reads the config file. Without --config a missing default file
// falls back to built-in defaults. --root and --log-level override the file.
func (c *commandContext) loadConfig() (*config.Config, error) {
	path := c.configPath
	optional := path == ""
	if optional {
		path = config.DefaultPath
	}

	cfg, err := config.LoadOrDefault(path, optional)
	if err != nil {
		return nil, err
	}
	if c.rootDir != "" {
		cfg.Paths.Root = c.rootDir
	}
	if c.logLevel != "" {
		cfg.Logging.Level = c.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *commandContext) loadLayout() (*config.Config, config.Layout, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, config.Layout{}, err
	}
	layout, err := cfg.Layout()
	if err != nil {
		return nil, config.Layout{}, err
	}
	return cfg, layout, nil
}

func (c *commandContext) logger(cfg *config.Config) logger.Logger {
	return logger.New(cfg.Logging.Level)
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "audioqueue",
		Short:         "Folder-based audio transcription queue",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&ctx.configPath, "config", "c", "", "Configuration file path (default "+config.DefaultPath+" if present)")
	rootCmd.PersistentFlags().StringVar(&ctx.rootDir, "root", "", "Queue root directory")
	rootCmd.PersistentFlags().StringVar(&ctx.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newWorkerCommand(ctx))
	rootCmd.AddCommand(newEnqueueCommand(ctx))
	rootCmd.AddCommand(newStatusCommand(ctx))
	rootCmd.AddCommand(newInitCommand(ctx))

	return rootCmd
}
