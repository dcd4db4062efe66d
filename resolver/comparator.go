package resolver

import "github.com/netlify/gozones/models"

// Less is the total order used to pick the best zone among candidates that
// all match the same address:
//
//  1. kind: state zones outrank country zones, a zone built from states
//     targets the narrower geography,
//  2. member count ascending, fewer members means a more targeted zone,
//  3. creation time ascending, the earliest-defined zone is authoritative,
//  4. zone ID ascending, so resolution stays deterministic even for zones
//     created in the same instant.
func Less(a, b *models.Zone) bool {
	ra, rb := kindRank(a.Kind()), kindRank(b.Kind())
	if ra != rb {
		return ra < rb
	}
	if len(a.Members) != len(b.Members) {
		return len(a.Members) < len(b.Members)
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}

func kindRank(kind string) int {
	switch kind {
	case models.KindState:
		return 0
	case models.KindCountry:
		return 1
	}
	return 2
}
