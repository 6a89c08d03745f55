package store

import (
	"fmt"
	"sort"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/minhng-dev/taskblog/models"
)

// joinColumns renders a column list for a SELECT or RETURNING clause.
func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}

// psql is the shared statement builder configured for PostgreSQL
// positional placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// todoColumns maps sanitized payload keys to todos table columns.
var todoColumns = map[string]string{
	"title":       "title",
	"description": "description",
	"status":      "status",
	"dueDate":     "due_date",
	"createdBy":   "created_by",
}

// postColumns maps sanitized payload keys to posts table columns.
var postColumns = map[string]string{
	"title":     "title",
	"content":   "content",
	"status":    "status",
	"author":    "author_id",
	"createdAt": "created_at",
}

// toColumns converts a sanitized payload field map into a column→value map
// using the given key→column translation. Keys without a known column are
// rejected so a stray payload key can never reach the SQL layer.
func toColumns(fields map[string]any, columns map[string]string) (map[string]any, error) {
	out := make(map[string]any, len(fields))
	for key, value := range fields {
		column, ok := columns[key]
		if !ok {
			return nil, fmt.Errorf("%w: unknown field %q", ErrBuildingSQLQuery, key)
		}
		out[column] = value
	}

	return out, nil
}

// matcherToSqlizer translates one predicate into its SQL form.
func matcherToSqlizer(column string, m models.Matcher) sq.Sqlizer {
	switch m.Kind {
	case models.MatchContains:
		return sq.ILike{column: fmt.Sprintf("%%%v%%", m.Value)}
	case models.MatchIn:
		if len(m.In) == 0 {
			// an empty identifier set matches no rows
			return sq.Expr("FALSE")
		}
		return sq.Eq{column: m.In}
	case models.MatchTimeRange:
		return sq.And{sq.GtOrEq{column: m.From}, sq.LtOrEq{column: m.To}}
	default:
		return sq.Eq{column: m.Value}
	}
}

// applyFilter attaches the filter's predicates, ordering, and pagination to a
// SELECT builder. Predicate keys are translated through columns; the reserved
// "search" key spans every column in searchColumns with a case-insensitive
// substring match. Keys are applied in sorted order so the generated SQL is
// deterministic.
func applyFilter(qb sq.SelectBuilder, filter models.Filter, columns map[string]string, searchColumns []string) (sq.SelectBuilder, error) {
	keys := make([]string, 0, len(filter.Predicates))
	for key := range filter.Predicates {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		matcher := filter.Predicates[key]

		if key == "search" && len(searchColumns) > 0 {
			or := make(sq.Or, 0, len(searchColumns))
			for _, column := range searchColumns {
				or = append(or, sq.ILike{column: fmt.Sprintf("%%%v%%", matcher.Value)})
			}
			qb = qb.Where(or)
			continue
		}

		column, ok := columns[key]
		if !ok {
			return qb, fmt.Errorf("%w: unknown filter field %q", ErrBuildingSQLQuery, key)
		}
		qb = qb.Where(matcherToSqlizer(column, matcher))
	}

	switch filter.Sort {
	case models.SortCreatedDesc:
		qb = qb.OrderBy("created_at DESC")
	default:
		qb = qb.OrderBy("updated_at DESC")
	}

	return qb.
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset())), nil
}
