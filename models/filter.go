package models

import "time"

// Pagination defaults applied when a list request omits page/limit or
// supplies values that cannot be used (non-numeric, zero, negative).
const (
	DefaultPage  = 1
	DefaultLimit = 50
)

// MatchKind enumerates the predicate types a Filter can carry.
// The store layer translates each kind into the corresponding SQL form.
type MatchKind int

const (
	// MatchExact compares a column to a single value.
	MatchExact MatchKind = iota

	// MatchContains is a case-insensitive substring match.
	MatchContains

	// MatchIn is set membership over identifiers. An empty set is a valid
	// predicate that matches no rows.
	MatchIn

	// MatchTimeRange is an inclusive [From, To] range over a timestamp column.
	MatchTimeRange
)

// SortKey selects the ordering of list results. Both supported orderings are
// descending by recency.
type SortKey int

const (
	// SortUpdatedDesc orders by last-update time, newest first. This is the
	// fallback for any unrecognized sort token.
	SortUpdatedDesc SortKey = iota

	// SortCreatedDesc orders by creation time, newest first.
	SortCreatedDesc
)

// Matcher is a single database-agnostic predicate attached to a field.
// Only the fields relevant to Kind are populated.
type Matcher struct {
	Kind  MatchKind
	Value any
	In    []int64
	From  time.Time
	To    time.Time
}

// Exact builds an exact-equality matcher.
func Exact(value any) Matcher {
	return Matcher{Kind: MatchExact, Value: value}
}

// Contains builds a case-insensitive substring matcher.
func Contains(substring string) Matcher {
	return Matcher{Kind: MatchContains, Value: substring}
}

// In builds a set-membership matcher over identifiers. An empty or nil set
// produces a matcher that matches nothing.
func In(ids []int64) Matcher {
	return Matcher{Kind: MatchIn, In: ids}
}

// TimeRange builds an inclusive timestamp-range matcher.
func TimeRange(from, to time.Time) Matcher {
	return Matcher{Kind: MatchTimeRange, From: from, To: to}
}

// Filter is the normalized, database-agnostic representation of a list/search
// request: field predicates plus pagination and sort order.
//
// Page and Limit are always positive after normalization; see
// [DefaultPage] and [DefaultLimit].
type Filter struct {
	Predicates map[string]Matcher
	Page       int
	Limit      int
	Sort       SortKey
}

// Offset returns the number of rows to skip for the filter's page.
func (f Filter) Offset() int {
	return (f.Page - 1) * f.Limit
}
