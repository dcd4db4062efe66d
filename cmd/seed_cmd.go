package cmd

import (
	"github.com/jinzhu/gorm"
	"github.com/pariz/gountries"
	"github.com/pborman/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/netlify/gozones/conf"
	"github.com/netlify/gozones/models"
)

var seedCmd = cobra.Command{
	Use:  "seed",
	Long: "Populate the geographic catalog with ISO 3166 countries and subdivisions.",
	Run: func(cmd *cobra.Command, args []string) {
		execWithConfig(cmd, seed)
	},
}

func seed(config *conf.Configuration, log *logrus.Entry) {
	db, err := models.Connect(config)
	if err != nil {
		log.Fatalf("Error opening database: %+v", err)
	}
	defer db.Close()

	query := gountries.New()
	countries := 0
	states := 0

	for _, data := range query.FindAllCountries() {
		country, err := findOrCreateCountry(db, data.Alpha2, data.Name.Common)
		if err != nil {
			log.Fatalf("Error seeding country %s: %+v", data.Alpha2, err)
		}
		countries++

		for _, sub := range data.SubDivisions() {
			if _, err := findOrCreateState(db, country, sub.Code, sub.Name); err != nil {
				log.Fatalf("Error seeding state %s-%s: %+v", data.Alpha2, sub.Code, err)
			}
			states++
		}
	}

	log.WithFields(logrus.Fields{
		"countries": countries,
		"states":    states,
	}).Info("Seeded geographic catalog")
}

func findOrCreateCountry(db *gorm.DB, code, name string) (*models.Country, error) {
	country := &models.Country{}
	result := db.First(country, "code = ?", code)
	if result.Error == nil {
		return country, nil
	}
	if !result.RecordNotFound() {
		return nil, result.Error
	}

	country = &models.Country{
		ID:   uuid.NewRandom().String(),
		Code: code,
		Name: name,
	}
	if result := db.Create(country); result.Error != nil {
		return nil, result.Error
	}
	return country, nil
}

func findOrCreateState(db *gorm.DB, country *models.Country, code, name string) (*models.State, error) {
	state := &models.State{}
	result := db.First(state, "country_id = ? AND code = ?", country.ID, code)
	if result.Error == nil {
		return state, nil
	}
	if !result.RecordNotFound() {
		return nil, result.Error
	}

	state = &models.State{
		ID:        uuid.NewRandom().String(),
		Code:      code,
		Name:      name,
		CountryID: country.ID,
	}
	if result := db.Create(state); result.Error != nil {
		return nil, result.Error
	}
	return state, nil
}
