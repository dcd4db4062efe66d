package models

// IsNotFoundError returns whether an error represents a "not found" error.
func IsNotFoundError(err error) bool {
	switch err.(type) {
	case ModelNotFoundError:
		return true
	}
	return false
}

// ModelNotFoundError represents when an instance is not found.
type ModelNotFoundError struct {
	modelName string
}

func (e ModelNotFoundError) Error() string {
	return e.modelName + " not found"
}

// IsZoneDataError returns whether an error represents corrupt zone data.
func IsZoneDataError(err error) bool {
	switch err.(type) {
	case ZoneDataError:
		return true
	}
	return false
}

// ZoneDataError represents a data-integrity violation in a zone's members,
// e.g. a state member whose owning country cannot be resolved. It is
// surfaced rather than swallowed because it would corrupt country lists and
// containment results.
type ZoneDataError struct {
	ZoneID  string
	Message string
}

func (e ZoneDataError) Error() string {
	return "zone " + e.ZoneID + ": " + e.Message
}

// ZoneNameTakenError is returned from the save path when another zone
// already uses the requested name.
type ZoneNameTakenError struct {
	Name string
}

func (e ZoneNameTakenError) Error() string {
	return "zone name already taken: " + e.Name
}

// InvalidAddressError represents an address that fails catalog validation.
type InvalidAddressError struct {
	reason string
}

func (e InvalidAddressError) Error() string {
	return "invalid address: " + e.reason
}
