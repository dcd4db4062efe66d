package testutils

import "github.com/netlify/gozones/models"

func GetTestAddress() *models.Address {
	return &models.Address{
		LastName:  "parker",
		FirstName: "Peter",
		Address1:  "123 spidey lane",
		City:      "new york",
		Zip:       "10007",

		CountryID: "us",
		StateID:   "ny",
	}
}
