package repository

import (
	"encoding/json"
	"errors"
	"strings"
)

// DeletionPolicy declares what Delete means for a repository. The tenant
// repository is the only soft-deleting one; everything else removes rows
// outright.
type DeletionPolicy string

const (
	SoftDelete DeletionPolicy = "soft"
	HardDelete DeletionPolicy = "hard"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// JSONValue marshals a slice value for a map-based partial update.
// gorm's field serializer only runs for struct writes; columns declared
// `serializer:json` must receive their JSON text form when updated
// through Updates(map[string]any).
func JSONValue(v any) string {
	b, _ := json.Marshal(v)
	return string(b)
}

// matchesTerm reports whether any of the fields contains term,
// case-insensitively. An empty term matches everything.
func matchesTerm(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
