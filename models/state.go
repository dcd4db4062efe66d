package models

import "time"

// State is immutable reference data from the geographic catalog. Every
// state belongs to exactly one country.
type State struct {
	ID   string `json:"id"`
	Code string `json:"code" sql:"index"`
	Name string `json:"name"`

	Country   *Country `json:"country,omitempty"`
	CountryID string   `json:"country_id" sql:"index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (State) TableName() string {
	return tableName("states")
}
