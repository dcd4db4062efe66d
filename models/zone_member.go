package models

import (
	"time"

	"github.com/pborman/uuid"
)

// KindCountry and KindState are the two member kinds a zone can be built
// from. A zone never mixes them.
const (
	KindCountry = "country"
	KindState   = "state"
)

// ZoneMember links a zone to a single zoneable: either a country or a
// state, tagged by ZoneableType. The hydrated Country/State pointers are
// filled in by the catalog on load and are never persisted.
type ZoneMember struct {
	ID     string `json:"id"`
	ZoneID string `json:"-" sql:"index"`

	ZoneableType string `json:"zoneable_type"`
	ZoneableID   string `json:"zoneable_id" sql:"index"`

	Country *Country `json:"country,omitempty" sql:"-"`
	State   *State   `json:"state,omitempty" sql:"-"`

	CreatedAt time.Time `json:"created_at"`
}

func (ZoneMember) TableName() string {
	return tableName("zone_members")
}

// NewCountryMember builds a hydrated member referencing a country.
func NewCountryMember(country *Country) *ZoneMember {
	return &ZoneMember{
		ID:           uuid.NewRandom().String(),
		ZoneableType: KindCountry,
		ZoneableID:   country.ID,
		Country:      country,
	}
}

// NewStateMember builds a hydrated member referencing a state.
func NewStateMember(state *State) *ZoneMember {
	return &ZoneMember{
		ID:           uuid.NewRandom().String(),
		ZoneableType: KindState,
		ZoneableID:   state.ID,
		State:        state,
	}
}

// OwningCountryID returns the ID of the country this member covers: the
// referenced country itself, or the owning country of the referenced state.
func (m *ZoneMember) OwningCountryID() string {
	switch m.ZoneableType {
	case KindCountry:
		return m.ZoneableID
	case KindState:
		if m.State != nil {
			return m.State.CountryID
		}
	}
	return ""
}
