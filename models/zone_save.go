package models

import (
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

// SaveZone persists a zone and its members in one transaction. It enforces
// the invariants readers depend on:
//
//   - members stay homogeneous: if both kinds are present, only members of
//     the most-recently-added kind survive,
//   - at most one zone in the catalog carries DefaultTax; setting it here
//     clears it everywhere else in the same transaction,
//   - zone names are unique,
//   - every member resolves against the catalog. A dangling reference is
//     reported as a ZoneDataError instead of being written.
func SaveZone(db *gorm.DB, zone *Zone) error {
	if zone == nil {
		return errors.New("no zone provided")
	}

	normalizeMemberKinds(zone)

	tx := db.Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "error starting zone transaction")
	}

	if err := saveZoneInTransaction(tx, zone); err != nil {
		tx.Rollback()
		return err
	}

	if result := tx.Commit(); result.Error != nil {
		return errors.Wrap(result.Error, "error committing zone")
	}
	return nil
}

// normalizeMemberKinds drops the minority kind from a mixed member set. The
// member slice is insertion-ordered, so the kind of the last member is the
// most recently added one and wins.
func normalizeMemberKinds(zone *Zone) {
	if len(zone.Members) == 0 {
		return
	}

	surviving := zone.Members[len(zone.Members)-1].ZoneableType
	mixed := false
	for _, member := range zone.Members {
		if member.ZoneableType != surviving {
			mixed = true
			break
		}
	}
	if !mixed {
		return
	}

	kept := zone.Members[:0]
	for _, member := range zone.Members {
		if member.ZoneableType == surviving {
			kept = append(kept, member)
		}
	}
	zone.Members = kept
}

func saveZoneInTransaction(tx *gorm.DB, zone *Zone) error {
	taken := 0
	if result := tx.Model(&Zone{}).Where("name = ? AND id <> ?", zone.Name, zone.ID).Count(&taken); result.Error != nil {
		return errors.Wrap(result.Error, "error checking zone name")
	}
	if taken > 0 {
		return ZoneNameTakenError{Name: zone.Name}
	}

	if err := resolveMembers(tx, zone); err != nil {
		return err
	}

	if zone.DefaultTax {
		if result := tx.Model(&Zone{}).Where("id <> ?", zone.ID).Update("default_tax", false); result.Error != nil {
			return errors.Wrap(result.Error, "error clearing default tax flags")
		}
	}

	existing := &Zone{}
	result := tx.First(existing, "id = ?", zone.ID)
	if result.RecordNotFound() {
		if result := tx.Create(zone); result.Error != nil {
			return errors.Wrap(result.Error, "error creating zone")
		}
	} else if result.Error != nil {
		return errors.Wrap(result.Error, "error loading zone")
	} else {
		if result := tx.Save(zone); result.Error != nil {
			return errors.Wrap(result.Error, "error updating zone")
		}
	}

	if result := tx.Where("zone_id = ?", zone.ID).Delete(&ZoneMember{}); result.Error != nil {
		return errors.Wrap(result.Error, "error removing old zone members")
	}
	for _, member := range zone.Members {
		member.ZoneID = zone.ID
		if result := tx.Create(member); result.Error != nil {
			return errors.Wrap(result.Error, "error saving zone member")
		}
	}

	return nil
}

// resolveMembers checks every member against the catalog and hydrates the
// country/state pointers from the same point-in-time read.
func resolveMembers(tx *gorm.DB, zone *Zone) error {
	for _, member := range zone.Members {
		switch member.ZoneableType {
		case KindCountry:
			country := &Country{}
			result := tx.First(country, "id = ?", member.ZoneableID)
			if result.RecordNotFound() {
				return ZoneDataError{ZoneID: zone.ID, Message: "member references unknown country " + member.ZoneableID}
			}
			if result.Error != nil {
				return errors.Wrap(result.Error, "error resolving country member")
			}
			member.Country = country
		case KindState:
			state := &State{}
			result := tx.First(state, "id = ?", member.ZoneableID)
			if result.RecordNotFound() {
				return ZoneDataError{ZoneID: zone.ID, Message: "member references unknown state " + member.ZoneableID}
			}
			if result.Error != nil {
				return errors.Wrap(result.Error, "error resolving state member")
			}
			country := &Country{}
			result = tx.First(country, "id = ?", state.CountryID)
			if result.RecordNotFound() {
				return ZoneDataError{ZoneID: zone.ID, Message: "state " + state.ID + " has no resolvable country"}
			}
			if result.Error != nil {
				return errors.Wrap(result.Error, "error resolving owning country")
			}
			state.Country = country
			member.State = state
		default:
			return ZoneDataError{ZoneID: zone.ID, Message: "unknown zoneable type " + member.ZoneableType}
		}
	}
	return nil
}
