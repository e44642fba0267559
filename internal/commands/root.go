// internal/commands/root.go
package agential

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/mwiater/agential/internal/appconfig"
	"github.com/mwiater/agential/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
	appVersion    = "dev"
	appCommit     = "none"
	appDate       = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "agential",
	Short:        "agential: answer normalization, exact-match scoring and LLM output parsing",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		for _, name := range []string{"debug", "jsonMode"} {
			if !cmd.Flags().Changed(name) {
				val := viper.GetBool(name)
				_ = cmd.Flags().Set(name, strconv.FormatBool(val))
			}
		}
		for _, name := range []string{"logFile", "resultsDir"} {
			if !cmd.Flags().Changed(name) {
				_ = cmd.Flags().Set(name, viper.GetString(name))
			}
		}
		if !cmd.Flags().Changed("truncate") {
			_ = cmd.Flags().Set("truncate", strconv.Itoa(viper.GetInt("truncate")))
		}

		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		cfg.ConfigPath = viper.ConfigFileUsed()
		currentConfig = &cfg

		if err := logging.Init(currentConfig.LogFilePath(), currentConfig.Debug); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	err := rootCmd.Execute()
	_ = logging.Close()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging to stderr")
	rootCmd.PersistentFlags().Bool("jsonMode", false, "print JSON documents instead of text")
	rootCmd.PersistentFlags().String("logFile", "", "path to the log file")
	rootCmd.PersistentFlags().String("resultsDir", "", "directory score results are appended to")
	rootCmd.PersistentFlags().Int("truncate", 0, "max runes of an answer shown in text output (0 = default, <0 = off)")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("jsonMode", rootCmd.PersistentFlags().Lookup("jsonMode"))
	_ = viper.BindPFlag("logFile", rootCmd.PersistentFlags().Lookup("logFile"))
	_ = viper.BindPFlag("resultsDir", rootCmd.PersistentFlags().Lookup("resultsDir"))
	_ = viper.BindPFlag("truncate", rootCmd.PersistentFlags().Lookup("truncate"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
	viper.SetEnvPrefix("AGENTIAL")
	viper.AutomaticEnv()
}

// ensureConfigLoaded reads the config. A missing file is not an error.
func ensureConfigLoaded() error {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	return currentConfig
}

// DebugEnabled returns true if debug mode is enabled.
func DebugEnabled() bool { return viper.GetBool("debug") }

// JSONModeEnabled returns true if JSON mode is enabled.
func JSONModeEnabled() bool { return viper.GetBool("jsonMode") }

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}
