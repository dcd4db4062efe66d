// Package resolver picks the zones that apply to an address. It is a pure
// set of algorithms over a catalog snapshot; persistence stays behind the
// Catalog interface.
package resolver

import (
	"sort"

	"github.com/netlify/gozones/models"
	"github.com/sirupsen/logrus"
)

// Catalog is the read side the resolver needs: a point-in-time listing of
// all zones with hydrated members.
type Catalog interface {
	Zones() ([]*models.Zone, error)
}

// ForAddress returns every zone that includes the address. The result may
// contain overlapping zones, e.g. a country zone and a narrower state zone
// matching simultaneously. A nil address matches nothing.
func ForAddress(catalog Catalog, addr *models.Address, log logrus.FieldLogger) ([]*models.Zone, error) {
	matches := []*models.Zone{}
	if addr == nil {
		return matches, nil
	}

	zones, err := catalog.Zones()
	if err != nil {
		return nil, err
	}

	for _, zone := range zones {
		if zone.Includes(addr) {
			matches = append(matches, zone)
		}
	}

	log.WithFields(logrus.Fields{
		"action":     "zones_for_address",
		"country_id": addr.CountryID,
		"state_id":   addr.StateID,
		"candidates": len(matches),
	}).Info("resolved candidate zones")

	return matches, nil
}

// Match resolves the address down to the single best zone, or nil when no
// zone includes it. Candidates are ranked by the Less total order.
func Match(catalog Catalog, addr *models.Address, log logrus.FieldLogger) (*models.Zone, error) {
	candidates, err := ForAddress(catalog, addr, log)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return Less(candidates[i], candidates[j])
	})

	best := candidates[0]
	log.WithFields(logrus.Fields{
		"action":    "match_zone",
		"zone_id":   best.ID,
		"zone_kind": best.Kind(),
	}).Info("matched zone")

	return best, nil
}

// WithSharedMembers returns every other zone whose coverage overlaps the
// reference zone's, comparing at the country level: a state zone counts as
// covering its states' owning countries, so a state zone and a country zone
// can be flagged as sharing. Each overlapping zone appears once. A nil or
// memberless reference zone shares with nothing.
func WithSharedMembers(catalog Catalog, zone *models.Zone) ([]*models.Zone, error) {
	shared := []*models.Zone{}
	if zone == nil || len(zone.Members) == 0 {
		return shared, nil
	}

	zones, err := catalog.Zones()
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	for _, other := range zones {
		if other.ID == zone.ID || seen[other.ID] || len(other.Members) == 0 {
			continue
		}
		if zone.SharesCountryWith(other) {
			seen[other.ID] = true
			shared = append(shared, other)
		}
	}

	return shared, nil
}
