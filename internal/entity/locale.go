package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// LocaleEN is the default and fallback locale.
	LocaleEN = "en"
	// LocaleID is the Indonesian locale.
	LocaleID = "id"
)

// SupportedLocales lists the locales content is authored in. LocalizedText
// columns may carry additional keys; only these are required and consumed.
var SupportedLocales = []string{LocaleEN, LocaleID}

// LocalizedText is a locale code to string mapping stored as a JSON column.
// Keys outside SupportedLocales are preserved on round trips.
type LocalizedText map[string]string

// Resolve returns the value for the requested locale, falling back to the
// English entry, then to an empty string. A missing translation never errors.
func (lt LocalizedText) Resolve(locale string) string {
	if lt == nil {
		return ""
	}
	if v, ok := lt[locale]; ok && v != "" {
		return v
	}
	return lt[LocaleEN]
}

// HasAllLocales reports whether every supported locale has a non-empty entry.
func (lt LocalizedText) HasAllLocales() bool {
	for _, code := range SupportedLocales {
		if strings.TrimSpace(lt[code]) == "" {
			return false
		}
	}
	return true
}

// MissingLocales returns the supported locales without a non-empty entry.
func (lt LocalizedText) MissingLocales() []string {
	var missing []string
	for _, code := range SupportedLocales {
		if strings.TrimSpace(lt[code]) == "" {
			missing = append(missing, code)
		}
	}
	return missing
}

// ContainsFold reports whether any supported locale's value contains the
// needle, case-insensitively. Used by list filters with OR-across-locales
// semantics.
func (lt LocalizedText) ContainsFold(needle string) bool {
	needle = strings.ToLower(needle)
	for _, code := range SupportedLocales {
		if strings.Contains(strings.ToLower(lt[code]), needle) {
			return true
		}
	}
	return false
}

// Key returns a canonical representation over the supported locales, used to
// deduplicate locale maps as whole values.
func (lt LocalizedText) Key() string {
	parts := make([]string, 0, len(SupportedLocales))
	for _, code := range SupportedLocales {
		parts = append(parts, lt[code])
	}
	return strings.Join(parts, "\x00")
}

// Value implements driver.Valuer, serializing the map to JSON.
func (lt LocalizedText) Value() (driver.Value, error) {
	if lt == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(lt)
}

// Scan implements sql.Scanner for JSON columns.
func (lt *LocalizedText) Scan(src any) error {
	if src == nil {
		*lt = LocalizedText{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for LocalizedText: %T", src)
	}
	if len(data) == 0 {
		*lt = LocalizedText{}
		return nil
	}
	return json.Unmarshal(data, lt)
}
