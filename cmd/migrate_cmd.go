package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/netlify/gozones/conf"
	"github.com/netlify/gozones/models"
)

var migrateCmd = cobra.Command{
	Use:  "migrate",
	Long: "Migrate database structures. This will create new tables and add missing columns and indexes.",
	Run: func(cmd *cobra.Command, args []string) {
		execWithConfig(cmd, migrate)
	},
}

func migrate(config *conf.Configuration, log *logrus.Entry) {
	db, err := models.Connect(config)
	if err != nil {
		log.Fatalf("Error opening database: %+v", err)
	}
	defer db.Close()

	db.AutoMigrate(models.Country{})
	db.AutoMigrate(models.State{})
	db.AutoMigrate(models.Address{})
	db.AutoMigrate(models.Zone{})
	db.AutoMigrate(models.ZoneMember{})

	log.Info("Database migration complete")
}
