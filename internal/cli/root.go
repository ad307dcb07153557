// Package cli wires the cobra commands that drive the client core. Commands
// decide between cached and live data by consulting the core's rate limiter
// before each fetch.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Red1144/VRChatAppi/internal/api"
	"github.com/Red1144/VRChatAppi/internal/store"
)

var (
	cfgFile string
	verbose bool
	cfg     *Config
	core    *api.Client
)

var rootCmd = &cobra.Command{
	Use:           "vrcdesk",
	Short:         "Desktop companion for the VRChat web API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initCore)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/vrcdesk/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func initCore() {
	var err error
	path := cfgFile
	if path == "" {
		path, err = GetConfigPath()
		if err != nil {
			fmt.Println("Error getting config path:", err)
			os.Exit(1)
		}
	}

	cfg, err = LoadConfig(path)
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir, err = store.DefaultDir()
		if err != nil {
			// Last resort: keep durable records next to the config file.
			dataDir = filepath.Dir(path)
		}
	}

	core = api.New(store.New(dataDir), api.Options{
		BaseURL: cfg.ServerURL,
		Logger:  logger,
	})
	if err := core.LoadLocal(); err != nil {
		logger.Warn().Err(err).Msg("could not load local records")
	}
}

// GetRootCmd exposes the root command for tests.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

// ensureSession restores the persisted session when not yet authenticated.
func ensureSession(ctx context.Context) error {
	if core.IsAuthenticated() {
		return nil
	}
	had, err := core.LoadSession(ctx)
	if err != nil {
		return err
	}
	if !had {
		return errors.New("not logged in, run 'vrcdesk login' first")
	}
	return nil
}
