// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package query

import (
	"fmt"

	"github.com/qolzam/jobly/internal/apierrors"
)

// Rule maps one criteria key of C to a predicate. Value reports whether the
// key is present and, if so, the value to bind.
type Rule[C any] struct {
	Key      string
	Column   string
	Operator string
	Value    func(criteria C) (interface{}, bool)
}

// Range is an inclusive min/max pair of C that must not be inverted.
type Range[C any] struct {
	MinKey string
	MaxKey string
	Bounds func(criteria C) (min, max *int)
}

// Filter turns a fixed-shape criteria record into a WHERE clause. Rules are
// applied in declaration order so output never depends on the caller.
type Filter[C any] struct {
	rules  []Rule[C]
	ranges []Range[C]
}

// NewFilter declares a filter from its rules.
func NewFilter[C any](rules ...Rule[C]) *Filter[C] {
	return &Filter[C]{rules: rules}
}

// WithRange adds a bound-ordering check run before any predicate is built.
func (f *Filter[C]) WithRange(r Range[C]) *Filter[C] {
	f.ranges = append(f.ranges, r)
	return f
}

// Keys lists the recognized criteria keys in application order.
func (f *Filter[C]) Keys() []string {
	keys := make([]string, 0, len(f.rules))
	for _, r := range f.rules {
		keys = append(keys, r.Key)
	}
	return keys
}

// Build validates the criteria and returns the clause. An empty clause renders
// as "" so the caller can splice Where() unconditionally.
func (f *Filter[C]) Build(criteria C) (*Clause, error) {
	for _, r := range f.ranges {
		min, max := r.Bounds(criteria)
		if min != nil && max != nil && *min > *max {
			return nil, apierrors.NewBadRequestError(
				fmt.Sprintf("%s cannot be greater than %s", r.MinKey, r.MaxKey))
		}
	}

	clause := NewClause()
	for _, r := range f.rules {
		if value, ok := r.Value(criteria); ok {
			clause.Compare(r.Column, r.Operator, value)
		}
	}
	return clause, nil
}

// Contains matches a non-empty string case-insensitively anywhere in column.
func Contains[C any](key, column string, get func(C) *string) Rule[C] {
	return Rule[C]{
		Key:      key,
		Column:   column,
		Operator: "ILIKE",
		Value: func(criteria C) (interface{}, bool) {
			s := get(criteria)
			if s == nil || *s == "" {
				return nil, false
			}
			return "%" + *s + "%", true
		},
	}
}

// AtLeast is an inclusive lower bound on column.
func AtLeast[C any](key, column string, get func(C) *int) Rule[C] {
	return intRule(key, column, ">=", get)
}

// AtMost is an inclusive upper bound on column.
func AtMost[C any](key, column string, get func(C) *int) Rule[C] {
	return intRule(key, column, "<=", get)
}

func intRule[C any](key, column, operator string, get func(C) *int) Rule[C] {
	return Rule[C]{
		Key:      key,
		Column:   column,
		Operator: operator,
		Value: func(criteria C) (interface{}, bool) {
			n := get(criteria)
			if n == nil {
				return nil, false
			}
			return *n, true
		},
	}
}

// WhenTrue applies "column operator value" only when the flag is set and
// true. A false flag is the same as no flag.
func WhenTrue[C any](key, column, operator string, value interface{}, get func(C) *bool) Rule[C] {
	return Rule[C]{
		Key:      key,
		Column:   column,
		Operator: operator,
		Value: func(criteria C) (interface{}, bool) {
			b := get(criteria)
			if b == nil || !*b {
				return nil, false
			}
			return value, true
		},
	}
}
