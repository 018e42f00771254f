// Package match implements the matcher algebra: polymorphic boolean
// predicates over a store object, built by composing comparisons, regular
// expressions, null tests, boolean connectives, structural child-set
// quantifiers, and set membership.
package match

import (
	"regexp"
	"time"

	"github.com/cuemby/sysdb/pkg/datum"
	"github.com/cuemby/sysdb/pkg/expr"
	"github.com/cuemby/sysdb/pkg/store"
)

// Matcher evaluates a boolean predicate against a store object. A type
// mismatch or evaluation error inside a sub-expression is treated as a
// non-match rather than propagated — matchers never fail, only miss.
type Matcher interface {
	Match(obj store.Object, now time.Time) bool
}

// CmpOp identifies a comparison operator.
type CmpOp int

const (
	Eq CmpOp = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

// Cmp evaluates LHS and RHS and compares them with the datum comparator. A
// type mismatch between the two operand kinds makes the match false.
type Cmp struct {
	Op       CmpOp
	LHS, RHS expr.Expr
}

func (m Cmp) Match(obj store.Object, now time.Time) bool {
	l, err := m.LHS.Eval(obj, now)
	if err != nil {
		return false
	}
	r, err := m.RHS.Eval(obj, now)
	if err != nil {
		return false
	}
	c, ok := l.Compare(r)
	if !ok {
		return false
	}
	switch m.Op {
	case Eq:
		return c == 0
	case Ne:
		return c != 0
	case Lt:
		return c < 0
	case Le:
		return c <= 0
	case Gt:
		return c > 0
	case Ge:
		return c >= 0
	default:
		return false
	}
}

// Regex matches LHS, which must be string-valued, against Pattern. Negate
// implements nregex.
type Regex struct {
	LHS     expr.Expr
	Pattern *regexp.Regexp
	Negate  bool
}

func (m Regex) Match(obj store.Object, now time.Time) bool {
	v, err := m.LHS.Eval(obj, now)
	if err != nil || v.Kind() != datum.KindString {
		return false
	}
	hit := m.Pattern.MatchString(v.Str())
	if m.Negate {
		return !hit
	}
	return hit
}

// IsNull tests whether Expr evaluates to the null datum. Negate implements
// isnnull.
type IsNull struct {
	Expr   expr.Expr
	Negate bool
}

func (m IsNull) Match(obj store.Object, now time.Time) bool {
	v, err := m.Expr.Eval(obj, now)
	isNull := err != nil || v.IsNull()
	if m.Negate {
		return !isNull
	}
	return isNull
}

// And is a short-circuiting conjunction; an empty And matches everything.
type And []Matcher

func (m And) Match(obj store.Object, now time.Time) bool {
	for _, sub := range m {
		if !sub.Match(obj, now) {
			return false
		}
	}
	return true
}

// Or is a short-circuiting disjunction; an empty Or matches nothing.
type Or []Matcher

func (m Or) Match(obj store.Object, now time.Time) bool {
	for _, sub := range m {
		if sub.Match(obj, now) {
			return true
		}
	}
	return false
}

// Not negates a sub-matcher.
type Not struct{ Sub Matcher }

func (m Not) Match(obj store.Object, now time.Time) bool {
	return !m.Sub.Match(obj, now)
}

// In tests whether LHS equals one element of the array RHS evaluates to.
type In struct {
	LHS, RHS expr.Expr
}

func (m In) Match(obj store.Object, now time.Time) bool {
	l, err := m.LHS.Eval(obj, now)
	if err != nil {
		return false
	}
	r, err := m.RHS.Eval(obj, now)
	if err != nil || r.Kind() != datum.KindArray {
		return false
	}
	for _, e := range r.Elements() {
		if l.Equal(e) {
			return true
		}
	}
	return false
}
