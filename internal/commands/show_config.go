package agential

import (
	"github.com/mwiater/agential/internal/appconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// showConfigCmd implements the 'show config' command, which displays the current configuration settings.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON configs are loaded properly and overridden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		fallback := appconfig.Config{
			Debug:      viper.GetBool("debug"),
			JSONMode:   viper.GetBool("jsonMode"),
			LogFile:    viper.GetString("logFile"),
			ResultsDir: viper.GetString("resultsDir"),
			Truncate:   viper.GetInt("truncate"),
		}
		appconfig.ShowConfig(cmd.OutOrStdout(), viper.ConfigFileUsed(), GetConfig(), fallback)
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
