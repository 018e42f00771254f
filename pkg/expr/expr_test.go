package expr

import (
	"context"
	"testing"
	"time"

	"github.com/cuemby/sysdb/pkg/datum"
	"github.com/cuemby/sysdb/pkg/store"
)

func testHost(t *testing.T) *store.Host {
	t.Helper()
	s := store.New()
	if _, err := s.StoreHost(context.Background(), "web01", 1_000_000); err != nil {
		t.Fatal(err)
	}
	h, _ := s.GetHost("web01")
	return h
}

func TestFieldEval(t *testing.T) {
	h := testHost(t)
	v, err := (Field{ID: store.FieldName}).Eval(h, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if v.Str() != "web01" {
		t.Fatalf("FieldName = %q, want web01", v.Str())
	}
}

func TestConstEval(t *testing.T) {
	h := testHost(t)
	v, err := (Const{Value: datum.Int(42)}).Eval(h, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if v.Int() != 42 {
		t.Fatalf("Const = %d, want 42", v.Int())
	}
}

func TestArithIntegerPromotion(t *testing.T) {
	h := testHost(t)
	e := Arith{Op: Add, LHS: Const{Value: datum.Int(2)}, RHS: Const{Value: datum.Decimal(0.5)}}
	v, err := e.Eval(h, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if v.Kind() != datum.KindDecimal || v.Float() != 2.5 {
		t.Fatalf("Arith(2, 0.5) = %v, want decimal 2.5", v)
	}
}

func TestArithIntegerDivision(t *testing.T) {
	h := testHost(t)
	e := Arith{Op: Div, LHS: Const{Value: datum.Int(7)}, RHS: Const{Value: datum.Int(2)}}
	v, err := e.Eval(h, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if v.Kind() != datum.KindInteger || v.Int() != 3 {
		t.Fatalf("Arith(7/2) = %v, want integer 3", v)
	}
}

func TestArithDivByZero(t *testing.T) {
	h := testHost(t)
	e := Arith{Op: Div, LHS: Const{Value: datum.Int(1)}, RHS: Const{Value: datum.Int(0)}}
	if _, err := e.Eval(h, time.Now()); err != ErrDivByZero {
		t.Fatalf("Eval() err = %v, want ErrDivByZero", err)
	}
}

func TestArithConcat(t *testing.T) {
	h := testHost(t)
	e := Arith{Op: Concat, LHS: Const{Value: datum.String("foo")}, RHS: Const{Value: datum.String("bar")}}
	v, err := e.Eval(h, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if v.Str() != "foobar" {
		t.Fatalf("Concat = %q, want foobar", v.Str())
	}
}

func TestArithConcatRequiresStrings(t *testing.T) {
	h := testHost(t)
	e := Arith{Op: Concat, LHS: Const{Value: datum.Int(1)}, RHS: Const{Value: datum.String("x")}}
	if _, err := e.Eval(h, time.Now()); err != ErrTypeMismatch {
		t.Fatalf("Eval() err = %v, want ErrTypeMismatch", err)
	}
}

func TestArithModRequiresIntegers(t *testing.T) {
	h := testHost(t)
	e := Arith{Op: Mod, LHS: Const{Value: datum.Decimal(3.5)}, RHS: Const{Value: datum.Int(2)}}
	if _, err := e.Eval(h, time.Now()); err != ErrTypeMismatch {
		t.Fatalf("Eval() err = %v, want ErrTypeMismatch", err)
	}
}
