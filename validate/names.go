// Package validate implements the naming and sizing rules from spec §4.5
// that gate every outbound request before a single byte is sent.
package validate

import (
	"regexp"
	"unicode/utf8"

	"github.com/go-tablestore/tablestore/tserrors"
)

// wideColumnName is rule R1 (spec §4.5.1): ASCII [A-Za-z_][A-Za-z0-9_]{0,254}.
var wideColumnName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,254}$`)

// timeseriesIdentifier is R1 capped at 128 bytes for time-series table,
// index, and analytical-store names.
var timeseriesIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,127}$`)

// tsFieldName matches spec §4.5.1's time-series field name rule.
var tsFieldName = regexp.MustCompile(`^[a-z_][a-z0-9_]{0,127}$`)

// timezoneOffset matches spec §4.5.1's date-histogram timezone rule.
var timezoneOffset = regexp.MustCompile(`^[+-]\d{2}:\d{2}$`)

var reservedTsFieldSubstrings = []string{
	"_m_name", "_data_source", "_tags", "_time", "_meta_update_time", "_attributes",
}

// TableName validates a wide-column table name (≤255 bytes, rule R1).
func TableName(name string) error { return wideColumn("table name", name) }

// ColumnName validates a wide-column primary-key or defined-column name.
func ColumnName(name string) error { return wideColumn("column name", name) }

// IndexName validates a secondary index name.
func IndexName(name string) error { return wideColumn("index name", name) }

// SearchIndexName validates a search index name.
func SearchIndexName(name string) error { return wideColumn("search index name", name) }

func wideColumn(what, name string) error {
	if name == "" {
		return tserrors.NewValidationFailed("%s must not be empty", what)
	}
	if len(name) > 255 {
		return tserrors.NewValidationFailed("%s must be at most 255 bytes, got %d", what, len(name))
	}
	if !wideColumnName.MatchString(name) {
		return tserrors.NewValidationFailed("%s %q must match [A-Za-z_][A-Za-z0-9_]*", what, name)
	}
	return nil
}

// TimeseriesTableName validates a time-series table name (≤128 bytes).
func TimeseriesTableName(name string) error { return timeseriesName("timeseries table name", name) }

// LastpointIndexName validates a lastpoint index name (≤128 bytes).
func LastpointIndexName(name string) error { return timeseriesName("lastpoint index name", name) }

// AnalyticalStoreName validates an analytical store name (≤128 bytes).
func AnalyticalStoreName(name string) error { return timeseriesName("analytical store name", name) }

func timeseriesName(what, name string) error {
	if name == "" {
		return tserrors.NewValidationFailed("%s must not be empty", what)
	}
	if len(name) > 128 {
		return tserrors.NewValidationFailed("%s must be at most 128 bytes, got %d", what, len(name))
	}
	if !timeseriesIdentifier.MatchString(name) {
		return tserrors.NewValidationFailed("%s %q must match [A-Za-z_][A-Za-z0-9_]*", what, name)
	}
	return nil
}

// Measurement validates a time-series measurement name: UTF-8, ≤128
// bytes, no whitespace, no '#'.
func Measurement(name string) error {
	if name == "" {
		return tserrors.NewValidationFailed("measurement must not be empty")
	}
	if len(name) > 128 {
		return tserrors.NewValidationFailed("measurement must be at most 128 bytes, got %d", len(name))
	}
	if !utf8.ValidString(name) {
		return tserrors.NewValidationFailed("measurement must be valid UTF-8")
	}
	for _, r := range name {
		if r == '#' {
			return tserrors.NewValidationFailed("measurement must not contain '#'")
		}
		if isSpace(r) {
			return tserrors.NewValidationFailed("measurement must not contain whitespace")
		}
	}
	return nil
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// Datasource validates a time-series datasource: UTF-8, ≤256 bytes, any
// bytes otherwise.
func Datasource(name string) error {
	if len(name) > 256 {
		return tserrors.NewValidationFailed("datasource must be at most 256 bytes, got %d", len(name))
	}
	if !utf8.ValidString(name) {
		return tserrors.NewValidationFailed("datasource must be valid UTF-8")
	}
	return nil
}

// FieldName validates a time-series field name: [a-z_][a-z0-9_]{0,127},
// and must not contain any reserved primary-key substring.
func FieldName(name string) error {
	if !tsFieldName.MatchString(name) {
		return tserrors.NewValidationFailed("field name %q must match [a-z_][a-z0-9_]*", name)
	}
	for _, r := range reservedTsFieldSubstrings {
		if contains(name, r) {
			return tserrors.NewValidationFailed("field name %q must not contain reserved name %q", name, r)
		}
	}
	return nil
}

func contains(s, substr string) bool {
	if len(substr) == 0 {
		return true
	}
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}

// TagName validates a time-series tag name: visible ASCII (0x21..0x7E),
// ≤128 bytes.
func TagName(name string) error {
	if name == "" {
		return tserrors.NewValidationFailed("tag name must not be empty")
	}
	if len(name) > 128 {
		return tserrors.NewValidationFailed("tag name must be at most 128 bytes, got %d", len(name))
	}
	for i := 0; i < len(name); i++ {
		b := name[i]
		if b < 0x21 || b > 0x7E {
			return tserrors.NewValidationFailed("tag name %q must be visible ASCII", name)
		}
	}
	return nil
}

// TagValue validates a time-series tag value: UTF-8, non-empty, ≤256
// bytes, no '"' or '='.
func TagValue(value string) error {
	if value == "" {
		return tserrors.NewValidationFailed("tag value must not be empty")
	}
	if len(value) > 256 {
		return tserrors.NewValidationFailed("tag value must be at most 256 bytes, got %d", len(value))
	}
	if !utf8.ValidString(value) {
		return tserrors.NewValidationFailed("tag value must be valid UTF-8")
	}
	for _, r := range value {
		if r == '"' || r == '=' {
			return tserrors.NewValidationFailed("tag value %q must not contain '\"' or '='", value)
		}
	}
	return nil
}

// DateHistogramTimezone validates a timezone offset string like "+08:00".
func DateHistogramTimezone(tz string) error {
	if !timezoneOffset.MatchString(tz) {
		return tserrors.NewValidationFailed("timezone %q must match [+-]DD:DD", tz)
	}
	return nil
}
