package dto

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	// MaxPageSize is the hard ceiling applied to every list query no matter
	// what the caller requests.
	MaxPageSize = 100
	// DefaultContentPageSize is the default limit for insights and projects.
	DefaultContentPageSize = 20
	// DefaultContactPageSize is the default limit for the admin contacts list.
	DefaultContactPageSize = 50
)

// Page is a parsed limit/skip window.
type Page struct {
	Limit  int
	Offset int
}

// ParsePage reads limit and skip query parameters. The limit defaults per
// entity and is clamped to MaxPageSize; an explicit limit of zero yields an
// empty page. Skip has no ceiling.
func ParsePage(values url.Values, defaultLimit int) Page {
	limit := defaultLimit
	if raw := values.Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			limit = v
		}
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	offset := 0
	if raw := values.Get("skip"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			offset = v
		}
	}

	return Page{Limit: limit, Offset: offset}
}

// ParseOptionalBool reads a tri-state boolean filter: a missing parameter
// means no filter, a present one parses human-friendly truthy values
// ("true", "1", "yes", "on") and treats everything else as false.
func ParseOptionalBool(values url.Values, key string) *bool {
	if !values.Has(key) {
		return nil
	}
	v := parseHumanBool(values.Get(key))
	return &v
}

func parseHumanBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}
