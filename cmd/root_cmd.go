package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/netlify/gozones/conf"
	"github.com/netlify/gozones/models"
)

var configFile = ""

var rootCmd = cobra.Command{
	Use:  "gozones",
	Long: "A library and tooling for resolving tax and shipping zones for addresses.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// RootCmd will add flags and subcommands to the different commands
func RootCmd() *cobra.Command {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "The configuration file")
	rootCmd.AddCommand(&migrateCmd, &seedCmd, &versionCmd)
	return &rootCmd
}

func execWithConfig(cmd *cobra.Command, fn func(config *conf.Configuration, log *logrus.Entry)) {
	config, err := conf.Load(configFile)
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %+v", err)
	}

	log, err := conf.ConfigureLogging(config)
	if err != nil {
		logrus.Fatalf("Failed to configure logging: %+v", err)
	}

	if config.DB.Namespace != "" {
		models.Namespace = config.DB.Namespace
	}
	fn(config, log)
}
