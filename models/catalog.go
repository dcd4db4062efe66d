package models

import (
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

// Catalog is a read-only view over the zone tables. It satisfies the
// resolver's Catalog interface.
type Catalog struct {
	db *gorm.DB
}

// NewCatalog wraps a database connection in a catalog view.
func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

// Zones returns every zone in the catalog with hydrated members.
func (c *Catalog) Zones() ([]*Zone, error) {
	return AllZones(c.db)
}

// ListCountries returns the reference countries ordered by code.
func ListCountries(db *gorm.DB) ([]*Country, error) {
	countries := []*Country{}
	if result := db.Order("code asc").Find(&countries); result.Error != nil {
		return nil, errors.Wrap(result.Error, "error loading countries")
	}
	return countries, nil
}

// ListStates returns the states belonging to a country, ordered by code.
func ListStates(db *gorm.DB, countryID string) ([]*State, error) {
	states := []*State{}
	if result := db.Where("country_id = ?", countryID).Order("code asc").Find(&states); result.Error != nil {
		return nil, errors.Wrap(result.Error, "error loading states")
	}
	return states, nil
}

// CountryForAddress resolves the address's country reference.
func CountryForAddress(db *gorm.DB, addr *Address) (*Country, error) {
	if addr == nil || addr.CountryID == "" {
		return nil, nil
	}
	country := &Country{}
	result := db.First(country, "id = ?", addr.CountryID)
	if result.RecordNotFound() {
		return nil, ModelNotFoundError{modelName: "country"}
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "error loading country")
	}
	return country, nil
}

// StateForAddress resolves the address's state reference, nil when the
// address has none.
func StateForAddress(db *gorm.DB, addr *Address) (*State, error) {
	if addr == nil || addr.StateID == "" {
		return nil, nil
	}
	state := &State{}
	result := db.First(state, "id = ?", addr.StateID)
	if result.RecordNotFound() {
		return nil, ModelNotFoundError{modelName: "state"}
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "error loading state")
	}
	return state, nil
}

// AllZones loads all zones with their members resolved against the
// reference tables, ordered by creation time.
func AllZones(db *gorm.DB) ([]*Zone, error) {
	zones := []*Zone{}
	if result := db.Order("created_at asc, id asc").Find(&zones); result.Error != nil {
		return nil, errors.Wrap(result.Error, "error loading zones")
	}
	if err := loadMembers(db, zones); err != nil {
		return nil, err
	}
	return zones, nil
}

// LoadZone loads a single zone with hydrated members.
func LoadZone(db *gorm.DB, id string) (*Zone, error) {
	zone := &Zone{}
	result := db.First(zone, "id = ?", id)
	if result.RecordNotFound() {
		return nil, ModelNotFoundError{modelName: "zone"}
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "error loading zone")
	}
	if err := loadMembers(db, []*Zone{zone}); err != nil {
		return nil, err
	}
	return zone, nil
}

// DefaultTaxZone returns the zone flagged as the tax fallback, or nil when
// no zone carries the flag.
func DefaultTaxZone(db *gorm.DB) (*Zone, error) {
	zone := &Zone{}
	result := db.First(zone, "default_tax = ?", true)
	if result.RecordNotFound() {
		return nil, nil
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "error loading default tax zone")
	}
	if err := loadMembers(db, []*Zone{zone}); err != nil {
		return nil, err
	}
	return zone, nil
}

// loadMembers bulk-loads the member rows for the given zones and resolves
// every zoneable reference. A member pointing at a missing country or state
// is a data-integrity violation and fails the whole read.
func loadMembers(db *gorm.DB, zones []*Zone) error {
	if len(zones) == 0 {
		return nil
	}

	byZone := map[string]*Zone{}
	zoneIDs := []string{}
	for _, zone := range zones {
		zone.Members = []*ZoneMember{}
		byZone[zone.ID] = zone
		zoneIDs = append(zoneIDs, zone.ID)
	}

	members := []*ZoneMember{}
	if result := db.Where("zone_id in (?)", zoneIDs).Order("created_at asc, id asc").Find(&members); result.Error != nil {
		return errors.Wrap(result.Error, "error loading zone members")
	}

	stateIDs := []string{}
	for _, member := range members {
		if member.ZoneableType == KindState {
			stateIDs = append(stateIDs, member.ZoneableID)
		}
	}
	states := map[string]*State{}
	if len(stateIDs) > 0 {
		rows := []*State{}
		if result := db.Where("id in (?)", stateIDs).Find(&rows); result.Error != nil {
			return errors.Wrap(result.Error, "error loading member states")
		}
		for _, state := range rows {
			states[state.ID] = state
		}
	}

	countryIDs := []string{}
	for _, member := range members {
		if member.ZoneableType == KindCountry {
			countryIDs = append(countryIDs, member.ZoneableID)
		}
	}
	for _, state := range states {
		countryIDs = append(countryIDs, state.CountryID)
	}
	countries := map[string]*Country{}
	if len(countryIDs) > 0 {
		rows := []*Country{}
		if result := db.Where("id in (?)", countryIDs).Find(&rows); result.Error != nil {
			return errors.Wrap(result.Error, "error loading member countries")
		}
		for _, country := range rows {
			countries[country.ID] = country
		}
	}

	for _, member := range members {
		zone, ok := byZone[member.ZoneID]
		if !ok {
			continue
		}
		switch member.ZoneableType {
		case KindCountry:
			country, ok := countries[member.ZoneableID]
			if !ok {
				return ZoneDataError{ZoneID: member.ZoneID, Message: "member references unknown country " + member.ZoneableID}
			}
			member.Country = country
		case KindState:
			state, ok := states[member.ZoneableID]
			if !ok {
				return ZoneDataError{ZoneID: member.ZoneID, Message: "member references unknown state " + member.ZoneableID}
			}
			if state.Country == nil {
				country, ok := countries[state.CountryID]
				if !ok {
					return ZoneDataError{ZoneID: member.ZoneID, Message: "state " + state.ID + " has no resolvable country"}
				}
				state.Country = country
			}
			member.State = state
		default:
			return ZoneDataError{ZoneID: member.ZoneID, Message: "unknown zoneable type " + member.ZoneableType}
		}
		zone.Members = append(zone.Members, member)
	}

	return nil
}
