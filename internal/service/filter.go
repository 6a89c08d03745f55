package service

import (
	"context"
	"strconv"
	"time"

	"github.com/minhng-dev/taskblog/internal/store"
	"github.com/minhng-dev/taskblog/models"
)

// List-query translation: raw query-string parameters become a
// [models.Filter]. Unknown parameters are ignored; malformed pagination
// values fall back to defaults instead of rejecting the request.

// parsePositiveInt parses raw as a positive integer, returning fallback when
// raw is absent, non-numeric, zero or negative.
func parsePositiveInt(raw string, fallback int) int {
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

// parseSortKey maps the sort token to a [models.SortKey]. Only "ctime"
// selects creation-time ordering; everything else, including an absent
// token, orders by last update.
func parseSortKey(token string) models.SortKey {
	if token == "ctime" {
		return models.SortCreatedDesc
	}
	return models.SortUpdatedDesc
}

// newFilter builds a Filter with normalized pagination and sorting from the
// shared query parameters.
func newFilter(query map[string]string) models.Filter {
	return models.Filter{
		Predicates: make(map[string]models.Matcher),
		Page:       parsePositiveInt(query["page"], models.DefaultPage),
		Limit:      parsePositiveInt(query["limit"], models.DefaultLimit),
		Sort:       parseSortKey(query["sort"]),
	}
}

// buildTodoFilter translates a todo list query. The "search" parameter spans
// title and description with a case-insensitive substring match.
func buildTodoFilter(query map[string]string) models.Filter {
	filter := newFilter(query)

	if search := query["search"]; search != "" {
		filter.Predicates["search"] = models.Contains(search)
	}
	if status := query["status"]; status != "" {
		filter.Predicates["status"] = models.Exact(status)
	}
	if createdBy := query["createdBy"]; createdBy != "" {
		filter.Predicates["createdBy"] = models.Exact(createdBy)
	}

	return filter
}

// buildPostFilter translates a post list query.
//
// The "author" parameter accepts either a numeric user ID (exact match) or a
// name, which is resolved through the user repository to a set of IDs; an
// empty set still yields a membership matcher that matches no rows.
//
// "isCurrentMonth" is honored only when an author filter is present and
// restricts creation time to the current calendar month in server-local
// time.
func buildPostFilter(ctx context.Context, query map[string]string, users store.UserRepository) (models.Filter, error) {
	filter := newFilter(query)

	if title := query["title"]; title != "" {
		filter.Predicates["title"] = models.Contains(title)
	}
	if status := query["status"]; status != "" {
		if published, err := strconv.ParseBool(status); err == nil {
			filter.Predicates["status"] = models.Exact(published)
		}
	}

	hasAuthor := false
	if author := query["author"]; author != "" {
		hasAuthor = true
		if authorID, err := strconv.ParseInt(author, 10, 64); err == nil {
			filter.Predicates["author"] = models.Exact(authorID)
		} else {
			ids, lookupErr := users.FindUserIDsByUsername(ctx, author)
			if lookupErr != nil {
				return models.Filter{}, lookupErr
			}
			filter.Predicates["author"] = models.In(ids)
		}
	}

	if query["isCurrentMonth"] != "" && hasAuthor {
		from, to := currentMonthBounds(time.Now())
		filter.Predicates["createdAt"] = models.TimeRange(from, to)
	}

	return filter, nil
}

// currentMonthBounds returns the inclusive range covering now's calendar
// month: the first day at 00:00:00.000 through the last day at 23:59:59.999.
func currentMonthBounds(now time.Time) (time.Time, time.Time) {
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0).Add(-time.Millisecond)
	return from, to
}
