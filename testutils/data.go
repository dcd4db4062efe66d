package testutils

import (
	"github.com/jinzhu/gorm"

	"github.com/netlify/gozones/models"
)

var TestUS *models.Country
var TestCA *models.Country
var TestNY *models.State
var TestWA *models.State

var USZone *models.Zone
var NYZone *models.Zone

// LoadTestData seeds a small catalog: two countries, two US states, a US
// country zone flagged as the default tax zone, and a narrower New York
// state zone.
func LoadTestData(db *gorm.DB) error {
	TestUS = &models.Country{ID: "us", Code: "US", Name: "United States"}
	TestCA = &models.Country{ID: "ca", Code: "CA", Name: "Canada"}
	TestNY = &models.State{ID: "ny", Code: "NY", Name: "New York", CountryID: TestUS.ID}
	TestWA = &models.State{ID: "wa", Code: "WA", Name: "Washington", CountryID: TestUS.ID}

	for _, m := range []interface{}{TestUS, TestCA, TestNY, TestWA} {
		if result := db.Create(m); result.Error != nil {
			return result.Error
		}
	}

	USZone = models.NewZone("United States")
	USZone.AddCountry(TestUS)
	USZone.DefaultTax = true
	if err := models.SaveZone(db, USZone); err != nil {
		return err
	}

	NYZone = models.NewZone("New York")
	NYZone.AddState(TestNY)
	return models.SaveZone(db, NYZone)
}
