package models

import (
	"time"

	"github.com/pborman/uuid"
)

// Zone is a named set of geographic members used to match addresses for tax
// and shipping purposes. All members of a zone share one kind: they either
// all reference countries or all reference states.
type Zone struct {
	ID          string `json:"id"`
	Name        string `json:"name" sql:"index"`
	Description string `json:"description"`

	// DefaultTax marks the fallback zone for tax calculation. At most one
	// zone in the catalog holds it; the save path enforces that.
	DefaultTax bool `json:"default_tax"`

	// Members is kept in insertion order. The save path uses the order to
	// decide which kind survives when members were mixed behind its back.
	Members []*ZoneMember `json:"members" sql:"-"`

	CreatedAt time.Time  `json:"created_at" sql:"index"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-" sql:"index"`
}

func (Zone) TableName() string {
	return tableName("zones")
}

// NewZone creates an empty zone with the given name.
func NewZone(name string) *Zone {
	return &Zone{
		ID:   uuid.NewRandom().String(),
		Name: name,
	}
}

// AddCountry appends a country member.
func (z *Zone) AddCountry(country *Country) {
	member := NewCountryMember(country)
	member.ZoneID = z.ID
	z.Members = append(z.Members, member)
}

// AddState appends a state member.
func (z *Zone) AddState(state *State) {
	member := NewStateMember(state)
	member.ZoneID = z.ID
	z.Members = append(z.Members, member)
}

// Kind returns the homogeneous member kind of the zone, "country" or
// "state". A zone without members has no kind and returns "".
func (z *Zone) Kind() string {
	if len(z.Members) == 0 {
		return ""
	}
	return z.Members[0].ZoneableType
}

// CountryList returns the countries the zone covers, deduplicated, in
// insertion order of first occurrence. For a state zone these are the owning
// countries of its states.
func (z *Zone) CountryList() []*Country {
	seen := map[string]bool{}
	countries := []*Country{}
	for _, member := range z.Members {
		var country *Country
		switch member.ZoneableType {
		case KindCountry:
			country = member.Country
		case KindState:
			if member.State != nil {
				country = member.State.Country
			}
		}
		if country == nil || seen[country.ID] {
			continue
		}
		seen[country.ID] = true
		countries = append(countries, country)
	}
	return countries
}

// Includes returns whether the zone matches the address. A country zone
// matches any address in one of its countries. A state zone matches only
// through an exact state member, never through the address's country alone.
func (z *Zone) Includes(addr *Address) bool {
	if addr == nil {
		return false
	}

	inCountryList := false
	for _, country := range z.CountryList() {
		if country.ID == addr.CountryID {
			inCountryList = true
			break
		}
	}
	if !inCountryList {
		return false
	}

	if z.Kind() == KindState {
		if addr.StateID == "" {
			return false
		}
		for _, member := range z.Members {
			if member.ZoneableType == KindState && member.ZoneableID == addr.StateID {
				return true
			}
		}
		return false
	}

	return true
}

// Contains returns whether every geographic unit covered by target is also
// covered by the zone. A zone always contains itself. A state zone never
// contains a country zone: a finite set of states cannot cover an entire
// country. Aside from the identity case, a zone without members contains
// nothing and is contained by nothing.
func (z *Zone) Contains(target *Zone) bool {
	if target == nil {
		return false
	}
	if z.ID == target.ID {
		return true
	}
	if len(z.Members) == 0 || len(target.Members) == 0 {
		return false
	}

	switch z.Kind() {
	case KindCountry:
		countries := map[string]bool{}
		for _, member := range z.Members {
			countries[member.ZoneableID] = true
		}
		for _, member := range target.Members {
			if !countries[member.OwningCountryID()] {
				return false
			}
		}
		return true
	case KindState:
		if target.Kind() == KindCountry {
			return false
		}
		states := map[string]bool{}
		for _, member := range z.Members {
			states[member.ZoneableID] = true
		}
		for _, member := range target.Members {
			if !states[member.ZoneableID] {
				return false
			}
		}
		return true
	}
	return false
}

// SharesCountryWith returns whether the two zones cover at least one common
// country.
func (z *Zone) SharesCountryWith(other *Zone) bool {
	if other == nil {
		return false
	}
	covered := map[string]bool{}
	for _, country := range z.CountryList() {
		covered[country.ID] = true
	}
	for _, country := range other.CountryList() {
		if covered[country.ID] {
			return true
		}
	}
	return false
}
