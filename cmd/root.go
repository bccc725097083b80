package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/josephlewis42/esh/core/config"
	"github.com/josephlewis42/esh/core/shell"
	"github.com/josephlewis42/esh/core/vos"
	"github.com/spf13/cobra"
)

var (
	cfgPath     string
	commandLine string
)

// errLineFailed is returned when a -c line fails, its diagnostics were
// already printed by the shell.
var errLineFailed = errors.New("command failed")

func configDir() (string, error) {
	if cfgPath != "" {
		return cfgPath, nil
	}
	return config.DefaultDir()
}

func loadConfig(logger *log.Logger) (*config.Configuration, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}

	configuration, err := config.Load(dir)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Printf("Couldn't load config from %q: did you run init? Using defaults.", dir)
		return config.Default(), nil
	}

	return configuration, err
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "esh",
	Short: "Interactive command shell",
	Long: `An interactive command shell with builtin file, process, environment
and system commands. Builtins run in the shell, pipelines run external
programs.`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		logger := log.New(cmd.ErrOrStderr(), "[esh] ", 0)
		configuration, err := loadConfig(logger)
		if err != nil {
			return err
		}

		sh, err := shell.New(vos.NewHostOS(), configuration, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), logger)
		if err != nil {
			return err
		}

		if commandLine != "" {
			if err := sh.RunLine(cmd.Context(), commandLine); err != nil {
				return errLineFailed
			}
			return nil
		}

		return sh.RunInteractive(cmd.Context(), configuration.HistoryPath())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SilenceErrors = true
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errLineFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config directory (default is $XDG_CONFIG_HOME/esh)")
	rootCmd.Flags().StringVarP(&commandLine, "command", "c", "", "run a single line and exit")
}
