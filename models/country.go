package models

import "time"

// Country is immutable reference data from the geographic catalog.
type Country struct {
	ID   string `json:"id"`
	Code string `json:"code" sql:"index"`
	Name string `json:"name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Country) TableName() string {
	return tableName("countries")
}
