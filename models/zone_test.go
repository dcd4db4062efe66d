package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOfCountryZone(t *testing.T) {
	us := testCountry("us", "US")
	zone := NewZone("United States")
	zone.AddCountry(us)

	assert.Equal(t, KindCountry, zone.Kind())
}

func TestKindOfStateZone(t *testing.T) {
	us := testCountry("us", "US")
	zone := NewZone("New York")
	zone.AddState(testState("ny", "NY", us))

	assert.Equal(t, KindState, zone.Kind())
}

func TestKindOfEmptyZone(t *testing.T) {
	zone := NewZone("nothing here")
	assert.Equal(t, "", zone.Kind())
}

func TestCountryListOfCountryZone(t *testing.T) {
	us := testCountry("us", "US")
	ca := testCountry("ca", "CA")

	zone := NewZone("North America")
	zone.AddCountry(us)
	zone.AddCountry(ca)
	zone.AddCountry(us) // duplicates collapse

	list := zone.CountryList()
	assert.Len(t, list, 2)
	assert.Equal(t, "us", list[0].ID)
	assert.Equal(t, "ca", list[1].ID)
}

func TestCountryListOfStateZoneDerivesOwningCountries(t *testing.T) {
	us := testCountry("us", "US")
	ca := testCountry("ca", "CA")

	zone := NewZone("Coastal")
	zone.AddState(testState("ny", "NY", us))
	zone.AddState(testState("wa", "WA", us))
	zone.AddState(testState("bc", "BC", ca))

	list := zone.CountryList()
	assert.Len(t, list, 2)
	assert.Equal(t, "us", list[0].ID)
	assert.Equal(t, "ca", list[1].ID)
}

func TestCountryZoneIncludesAnyAddressInItsCountries(t *testing.T) {
	us := testCountry("us", "US")
	zone := NewZone("United States")
	zone.AddCountry(us)

	addr := &Address{CountryID: "us", StateID: "ny"}
	assert.True(t, zone.Includes(addr))

	noState := &Address{CountryID: "us"}
	assert.True(t, zone.Includes(noState))

	elsewhere := &Address{CountryID: "ca"}
	assert.False(t, zone.Includes(elsewhere))
}

func TestStateZoneRequiresExactStateMember(t *testing.T) {
	us := testCountry("us", "US")
	zone := NewZone("New York")
	zone.AddState(testState("ny", "NY", us))

	assert.True(t, zone.Includes(&Address{CountryID: "us", StateID: "ny"}))

	// same country is not enough
	assert.False(t, zone.Includes(&Address{CountryID: "us", StateID: "wa"}))
	assert.False(t, zone.Includes(&Address{CountryID: "us"}))
}

func TestIncludesNilAddress(t *testing.T) {
	us := testCountry("us", "US")
	zone := NewZone("United States")
	zone.AddCountry(us)

	assert.False(t, zone.Includes(nil))
}

func TestContainsIsReflexive(t *testing.T) {
	empty := NewZone("empty")
	assert.True(t, empty.Contains(empty))

	us := testCountry("us", "US")
	zone := NewZone("United States")
	zone.AddCountry(us)
	assert.True(t, zone.Contains(zone))
}

func TestContainsCountryOverCountry(t *testing.T) {
	us := testCountry("us", "US")
	ca := testCountry("ca", "CA")

	na := NewZone("North America")
	na.AddCountry(us)
	na.AddCountry(ca)

	usOnly := NewZone("United States")
	usOnly.AddCountry(us)

	assert.True(t, na.Contains(usOnly))
	assert.False(t, usOnly.Contains(na))
}

func TestContainsCountryOverState(t *testing.T) {
	us := testCountry("us", "US")
	ca := testCountry("ca", "CA")

	usOnly := NewZone("United States")
	usOnly.AddCountry(us)

	ny := NewZone("New York")
	ny.AddState(testState("ny", "NY", us))

	bc := NewZone("British Columbia")
	bc.AddState(testState("bc", "BC", ca))

	assert.True(t, usOnly.Contains(ny))
	assert.False(t, usOnly.Contains(bc))
}

func TestStateZoneNeverContainsCountryZone(t *testing.T) {
	us := testCountry("us", "US")

	everyState := NewZone("every state")
	everyState.AddState(testState("ny", "NY", us))
	everyState.AddState(testState("wa", "WA", us))

	usOnly := NewZone("United States")
	usOnly.AddCountry(us)

	assert.False(t, everyState.Contains(usOnly))
}

func TestContainsStateOverState(t *testing.T) {
	us := testCountry("us", "US")
	ny := testState("ny", "NY", us)
	wa := testState("wa", "WA", us)

	coasts := NewZone("Coasts")
	coasts.AddState(ny)
	coasts.AddState(wa)

	nyOnly := NewZone("New York")
	nyOnly.AddState(ny)

	assert.True(t, coasts.Contains(nyOnly))
	assert.False(t, nyOnly.Contains(coasts))
}

func TestContainsWithEmptyMembers(t *testing.T) {
	us := testCountry("us", "US")
	zone := NewZone("United States")
	zone.AddCountry(us)

	empty := NewZone("empty")

	assert.False(t, zone.Contains(empty))
	assert.False(t, empty.Contains(zone))
	assert.False(t, zone.Contains(nil))
}

func TestSharesCountryAcrossKinds(t *testing.T) {
	us := testCountry("us", "US")
	ca := testCountry("ca", "CA")

	usOnly := NewZone("United States")
	usOnly.AddCountry(us)

	ny := NewZone("New York")
	ny.AddState(testState("ny", "NY", us))

	bc := NewZone("British Columbia")
	bc.AddState(testState("bc", "BC", ca))

	assert.True(t, usOnly.SharesCountryWith(ny))
	assert.True(t, ny.SharesCountryWith(usOnly))
	assert.False(t, usOnly.SharesCountryWith(bc))
	assert.False(t, usOnly.SharesCountryWith(nil))
}

func TestNormalizeKeepsMostRecentlyAddedKind(t *testing.T) {
	us := testCountry("us", "US")
	ca := testCountry("ca", "CA")

	zone := NewZone("mixed up")
	zone.AddState(testState("ny", "NY", us))
	zone.AddState(testState("wa", "WA", us))
	zone.AddCountry(ca)

	normalizeMemberKinds(zone)

	assert.Len(t, zone.Members, 1)
	assert.Equal(t, KindCountry, zone.Kind())
	assert.Equal(t, "ca", zone.Members[0].ZoneableID)
}

func TestNormalizeLeavesHomogeneousMembersAlone(t *testing.T) {
	us := testCountry("us", "US")

	zone := NewZone("states")
	zone.AddState(testState("ny", "NY", us))
	zone.AddState(testState("wa", "WA", us))

	normalizeMemberKinds(zone)

	assert.Len(t, zone.Members, 2)
	assert.Equal(t, KindState, zone.Kind())
}

func testCountry(id, code string) *Country {
	return &Country{ID: id, Code: code, Name: code}
}

func testState(id, code string, country *Country) *State {
	return &State{ID: id, Code: code, Name: code, CountryID: country.ID, Country: country}
}
