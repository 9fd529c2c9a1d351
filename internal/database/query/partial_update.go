// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package query

import (
	"github.com/lib/pq"
	"github.com/qolzam/jobly/internal/apierrors"
)

// ErrNoData is the message returned for an empty partial update.
const ErrNoData = "No data"

// FieldUpdate is one client-facing field and its new value.
type FieldUpdate struct {
	Field string
	Value interface{}
}

// FieldUpdates keeps updates in the order they were supplied; that order
// decides placeholder numbering.
type FieldUpdates []FieldUpdate

// Add appends a field update and returns the extended list.
func (u FieldUpdates) Add(field string, value interface{}) FieldUpdates {
	return append(u, FieldUpdate{Field: field, Value: value})
}

// Columns maps client-facing field names to storage column names. Fields
// missing from the map are stored under their own name.
type Columns map[string]string

// Column resolves a field to its column name.
func (c Columns) Column(field string) string {
	if column, ok := c[field]; ok {
		return column
	}
	return field
}

// QuoteIdentifier quotes a column name so reserved words and mixed case survive.
func QuoteIdentifier(name string) string {
	return pq.QuoteIdentifier(name)
}

// PartialUpdate builds the SET list of an UPDATE touching only the supplied
// fields. Continue numbering at clause.NextPlaceholder() for the row key:
//
//	set, _ := query.PartialUpdate(updates, columns)
//	sql := fmt.Sprintf("UPDATE users SET %s WHERE username = $%d", set.Set(), set.NextPlaceholder())
//	db.Exec(sql, set.Args(username)...)
func PartialUpdate(updates FieldUpdates, columns Columns) (*Clause, error) {
	if len(updates) == 0 {
		return nil, apierrors.NewBadRequestError(ErrNoData)
	}

	clause := NewClause()
	for _, update := range updates {
		clause.Assign(columns.Column(update.Field), update.Value)
	}
	return clause, nil
}
