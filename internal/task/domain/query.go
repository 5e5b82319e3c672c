package domain

import (
	"net/url"
	"strconv"
	"strings"
)

// SortField is a task attribute a listing can be ordered by
type SortField string

const (
	SortByDescription SortField = "description"
	SortByCompleted   SortField = "completed"
	SortByCreatedAt   SortField = "createdAt"
	SortByUpdatedAt   SortField = "updatedAt"
)

// Column returns the database column backing the sort field.
func (f SortField) Column() string {
	switch f {
	case SortByDescription:
		return "description"
	case SortByCompleted:
		return "completed"
	case SortByCreatedAt:
		return "created_at"
	case SortByUpdatedAt:
		return "updated_at"
	}
	return ""
}

// Sort is a single ordering key
type Sort struct {
	Field SortField
	Desc  bool
}

// ListQuery holds the optional filter, ordering and pagination of a task listing
type ListQuery struct {
	Completed *bool
	Sort      *Sort
	Limit     int // 0 means no limit
	Skip      int
}

// ParseListQuery builds a ListQuery from the GET /tasks querystring.
// Unrecognised or malformed values are ignored rather than rejected.
func ParseListQuery(values url.Values) ListQuery {
	var q ListQuery

	switch values.Get("completed") {
	case "true":
		completed := true
		q.Completed = &completed
	case "false":
		completed := false
		q.Completed = &completed
	}

	q.Sort = parseSort(values.Get("sortBy"))
	q.Limit = parseNonNegative(values.Get("limit"))
	q.Skip = parseNonNegative(values.Get("skip"))

	return q
}

// parseSort accepts "<field>_asc" or "<field>_desc".
func parseSort(raw string) *Sort {
	i := strings.LastIndex(raw, "_")
	if i < 0 {
		return nil
	}

	field := SortField(raw[:i])
	if field.Column() == "" {
		return nil
	}

	switch raw[i+1:] {
	case "asc":
		return &Sort{Field: field}
	case "desc":
		return &Sort{Field: field, Desc: true}
	}
	return nil
}

func parseNonNegative(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
