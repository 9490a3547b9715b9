package specification

import (
	"fmt"
	"strconv"
	"time"

	"medichat-be/internal/apperror"

	"github.com/google/uuid"
)

// FieldKind is the declared type of a filterable field. The kind decides
// the comparison: strings match by substring, numerics/booleans/uuids by
// equality, times by greater-or-equal.
type FieldKind int

const (
	String FieldKind = iota
	Int
	Bool
	Time
	UUID
)

// FieldSchema is registered once per entity and validates caller-supplied
// filter maps before any query is built. Unknown keys are rejected instead
// of being resolved by runtime attribute lookup.
type FieldSchema map[string]FieldKind

const (
	DefaultPageSize = 10
	MaxPageSize     = 100

	pageKey     = "page"
	pageSizeKey = "page_size"
)

var timeLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseFilters converts raw key/value query parameters into typed
// specifications validated against the schema. Pagination keys are handled
// by ParsePage and skipped here.
func ParseFilters(schema FieldSchema, values map[string]string) ([]Specification, error) {
	specs := make([]Specification, 0, len(values))
	for key, raw := range values {
		if key == pageKey || key == pageSizeKey {
			continue
		}
		kind, ok := schema[key]
		if !ok {
			return nil, apperror.UnknownField(key)
		}

		switch kind {
		case String:
			specs = append(specs, Like{Field: key, Value: raw})
		case Int:
			v, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return nil, apperror.InvalidFilterValue(key, err)
			}
			specs = append(specs, Equals{Field: key, Value: v})
		case Bool:
			v, err := strconv.ParseBool(raw)
			if err != nil {
				return nil, apperror.InvalidFilterValue(key, err)
			}
			specs = append(specs, Equals{Field: key, Value: v})
		case UUID:
			v, err := uuid.Parse(raw)
			if err != nil {
				return nil, apperror.InvalidFilterValue(key, err)
			}
			specs = append(specs, Equals{Field: key, Value: v})
		case Time:
			v, err := parseTime(raw)
			if err != nil {
				return nil, apperror.InvalidFilterValue(key, err)
			}
			specs = append(specs, Since{Field: key, Value: v})
		}
	}
	return specs, nil
}

// ParsePage reads the canonical page/page_size pagination parameters.
func ParsePage(values map[string]string) (Page, error) {
	page := 0
	pageSize := DefaultPageSize

	if raw, ok := values[pageKey]; ok {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return Page{}, apperror.InvalidFilterValue(pageKey, err)
		}
		page = v
	}
	if raw, ok := values[pageSizeKey]; ok {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return Page{}, apperror.InvalidFilterValue(pageSizeKey, err)
		}
		if v > MaxPageSize {
			v = MaxPageSize
		}
		pageSize = v
	}
	return Page{Page: page, PageSize: pageSize}, nil
}

func parseTime(raw string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time value %q", raw)
}
