package models

// Namespace is prefixed to all table names. It is useful when several
// environments share one database.
var Namespace string

func tableName(defaultName string) string {
	if Namespace != "" {
		return Namespace + "_" + defaultName
	}
	return defaultName
}
