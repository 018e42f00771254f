// Package expr implements the expression engine: field references, literal
// constants, and binary arithmetic, each evaluated against a store object to
// produce a datum. Evaluation never mutates the object it is evaluated
// against.
package expr

import (
	"errors"
	"time"

	"github.com/cuemby/sysdb/pkg/datum"
	"github.com/cuemby/sysdb/pkg/store"
)

var (
	// ErrTypeMismatch is returned when an arithmetic expression's operands
	// are not compatible with the requested operator.
	ErrTypeMismatch = errors.New("expr: type mismatch")
	// ErrDivByZero is returned by Div and Mod on a zero RHS.
	ErrDivByZero = errors.New("expr: division by zero")
)

// Expr is a node in the expression tree. Eval is pure: it reads obj and now,
// and returns a freshly-constructed datum.
type Expr interface {
	Eval(obj store.Object, now time.Time) (datum.Datum, error)
}

// Field references one of the generic fields on the object being evaluated.
type Field struct {
	ID store.FieldID
}

func (f Field) Eval(obj store.Object, now time.Time) (datum.Datum, error) {
	return obj.GetField(f.ID, now), nil
}

// Const wraps a literal datum.
type Const struct {
	Value datum.Datum
}

func (c Const) Eval(store.Object, time.Time) (datum.Datum, error) {
	return c.Value, nil
}

// Op identifies a binary arithmetic operator.
type Op int

const (
	Add Op = iota
	Sub
	Mul
	Div
	Mod
	Concat
)

// Arith is a binary arithmetic expression. Numeric operands follow the
// integer-promotes-to-decimal rule: if either side is a decimal, both sides
// are evaluated as float64 and the result is a decimal; otherwise the
// operation is done in int64. Concat requires both sides to be strings.
type Arith struct {
	Op       Op
	LHS, RHS Expr
}

func (a Arith) Eval(obj store.Object, now time.Time) (datum.Datum, error) {
	l, err := a.LHS.Eval(obj, now)
	if err != nil {
		return datum.Null(), err
	}
	r, err := a.RHS.Eval(obj, now)
	if err != nil {
		return datum.Null(), err
	}

	if a.Op == Concat {
		if l.Kind() != datum.KindString || r.Kind() != datum.KindString {
			return datum.Null(), ErrTypeMismatch
		}
		return datum.String(l.Str() + r.Str()), nil
	}

	if !isNumeric(l) || !isNumeric(r) {
		return datum.Null(), ErrTypeMismatch
	}

	if l.Kind() == datum.KindDecimal || r.Kind() == datum.KindDecimal {
		lf, rf := asFloat(l), asFloat(r)
		v, err := evalFloat(a.Op, lf, rf)
		if err != nil {
			return datum.Null(), err
		}
		return datum.Decimal(v), nil
	}

	v, err := evalInt(a.Op, l.Int(), r.Int())
	if err != nil {
		return datum.Null(), err
	}
	return datum.Int(v), nil
}

func isNumeric(d datum.Datum) bool {
	return d.Kind() == datum.KindInteger || d.Kind() == datum.KindDecimal
}

func asFloat(d datum.Datum) float64 {
	if d.Kind() == datum.KindInteger {
		return float64(d.Int())
	}
	return d.Float()
}

func evalFloat(op Op, l, r float64) (float64, error) {
	switch op {
	case Add:
		return l + r, nil
	case Sub:
		return l - r, nil
	case Mul:
		return l * r, nil
	case Div:
		if r == 0 {
			return 0, ErrDivByZero
		}
		return l / r, nil
	case Mod:
		return 0, ErrTypeMismatch // mod requires integer operands
	default:
		return 0, ErrTypeMismatch
	}
}

func evalInt(op Op, l, r int64) (int64, error) {
	switch op {
	case Add:
		return l + r, nil
	case Sub:
		return l - r, nil
	case Mul:
		return l * r, nil
	case Div:
		if r == 0 {
			return 0, ErrDivByZero
		}
		return l / r, nil
	case Mod:
		if r == 0 {
			return 0, ErrDivByZero
		}
		return l % r, nil
	default:
		return 0, ErrTypeMismatch
	}
}
