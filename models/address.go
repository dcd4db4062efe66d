package models

import (
	"time"

	"github.com/jinzhu/gorm"
)

// Address is a customer address pointing into the geographic catalog. The
// state reference is optional; when set it must belong to the referenced
// country.
type Address struct {
	ID string `json:"id"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	Company  string `json:"company"`
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	City     string `json:"city"`
	Zip      string `json:"zip"`

	CountryID string `json:"country_id" sql:"index"`
	StateID   string `json:"state_id"`

	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}

func (Address) TableName() string {
	return tableName("addresses")
}

func (a *Address) Valid() bool {
	if a.LastName == "" {
		return false
	}
	if a.Address1 == "" {
		return false
	}
	if a.CountryID == "" || a.City == "" || a.Zip == "" {
		return false
	}
	return true
}

// ValidateAddress checks the address against the catalog: the country must
// exist and the state, if any, must belong to that country.
func ValidateAddress(db *gorm.DB, addr *Address) error {
	if addr == nil || !addr.Valid() {
		return InvalidAddressError{reason: "missing required fields"}
	}

	country := &Country{}
	if result := db.First(country, "id = ?", addr.CountryID); result.Error != nil {
		if result.RecordNotFound() {
			return InvalidAddressError{reason: "unknown country " + addr.CountryID}
		}
		return result.Error
	}

	if addr.StateID != "" {
		state := &State{}
		if result := db.First(state, "id = ?", addr.StateID); result.Error != nil {
			if result.RecordNotFound() {
				return InvalidAddressError{reason: "unknown state " + addr.StateID}
			}
			return result.Error
		}
		if state.CountryID != addr.CountryID {
			return InvalidAddressError{reason: "state " + state.Code + " does not belong to country " + country.Code}
		}
	}

	return nil
}
