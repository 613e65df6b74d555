// Package handler provides the HTTP handlers for the recipe feature.
package handler

import (
	"errors"
	"strconv"
	"strings"
)

// errMalformedIDList is returned when a comma-separated id parameter holds
// anything that is not a positive integer.
var errMalformedIDList = errors.New("must be a comma-separated list of numeric ids")

// parseIDList parses a "1,2,3" query value into ids. An empty value means no
// filter. Non-numeric entries are an error, never silently dropped.
func parseIDList(raw string) ([]uint, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, errMalformedIDList
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

// parseBoolFlag parses a "0"/"1"/"true"/"false" query value, defaulting to
// false when absent.
func parseBoolFlag(raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}
