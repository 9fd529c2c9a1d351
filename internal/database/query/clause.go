// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package query builds the dynamic parts of parameterized Postgres statements:
// SET lists for partial updates and WHERE clauses for filtered listings.
// Values are never interpolated into the SQL text; every predicate references
// exactly one positional placeholder.
package query

import (
	"fmt"
	"strings"
)

// Clause is an ordered list of predicates paired with their bound values.
// Placeholder n of predicate i is always i+1, so len(Predicates) == len(Values).
type Clause struct {
	predicates []string
	values     []interface{}
}

// NewClause returns an empty clause.
func NewClause() *Clause {
	return &Clause{
		predicates: []string{},
		values:     []interface{}{},
	}
}

// Compare appends "column operator $n" bound to value.
func (c *Clause) Compare(column, operator string, value interface{}) *Clause {
	return c.append(fmt.Sprintf("%s %s %s", column, operator, c.placeholder()), value)
}

// Assign appends a quoted assignment `"column"=$n` bound to value.
func (c *Clause) Assign(column string, value interface{}) *Clause {
	return c.append(fmt.Sprintf("%s=%s", QuoteIdentifier(column), c.placeholder()), value)
}

func (c *Clause) append(predicate string, value interface{}) *Clause {
	c.predicates = append(c.predicates, predicate)
	c.values = append(c.values, value)
	return c
}

func (c *Clause) placeholder() string {
	return fmt.Sprintf("$%d", c.NextPlaceholder())
}

// NextPlaceholder is the index the caller must use for the next parameter it
// appends after the clause, e.g. the row key of an UPDATE.
func (c *Clause) NextPlaceholder() int {
	return len(c.values) + 1
}

// Len returns the number of predicates.
func (c *Clause) Len() int {
	return len(c.predicates)
}

// IsEmpty reports whether no predicate was appended.
func (c *Clause) IsEmpty() bool {
	return len(c.predicates) == 0
}

// Predicates returns a copy of the predicate list.
func (c *Clause) Predicates() []string {
	out := make([]string, len(c.predicates))
	copy(out, c.predicates)
	return out
}

// Values returns a copy of the bound values, in placeholder order.
func (c *Clause) Values() []interface{} {
	out := make([]interface{}, len(c.values))
	copy(out, c.values)
	return out
}

// Set renders the predicates as a SET list.
func (c *Clause) Set() string {
	return strings.Join(c.predicates, ", ")
}

// Where renders "WHERE p1 AND p2 ..." or "" when the clause is empty.
func (c *Clause) Where() string {
	if c.IsEmpty() {
		return ""
	}
	return "WHERE " + strings.Join(c.predicates, " AND ")
}

// Args appends extra trailing arguments (row keys, limits) to the bound values.
// The extras must use placeholders starting at NextPlaceholder().
func (c *Clause) Args(extra ...interface{}) []interface{} {
	return append(c.Values(), extra...)
}
