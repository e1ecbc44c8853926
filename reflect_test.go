package purecurry

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"testing"
)

func add8(a, b, c, d, e, f, g, h int) int {
	return a + b + c + d + e + f + g + h
}

// ============================================================================
// FromFunc Tests
// ============================================================================

func TestFromFunc_Arity(t *testing.T) {
	tests := []struct {
		name  string
		fn    any
		arity int
	}{
		{"no params", func() int { return 42 }, 0},
		{"two params", func(a, b int) int { return a + b }, 2},
		{"eight params", add8, 8},
		{"variadic only", func(xs ...int) int { return len(xs) }, 0},
		{"fixed and variadic", fmt.Sprintf, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, arity, err := FromFunc(tt.fn)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if arity != tt.arity {
				t.Errorf("expected arity %d, got %d", tt.arity, arity)
			}
		})
	}
}

func TestFromFunc_NotFunc(t *testing.T) {
	var nilFunc func(int) int

	for _, v := range []any{nil, 42, "f", nilFunc} {
		if _, _, err := FromFunc(v); !errors.Is(err, ErrNotFunc) {
			t.Errorf("%#v: expected ErrNotFunc, got %v", v, err)
		}
	}
}

func TestFromFunc_DropsExcess(t *testing.T) {
	f, _, _ := FromFunc(func(a, b int) int { return a - b })

	v, err := f.Call(10, 3, 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 7 {
		t.Errorf("expected 7, got %v", v)
	}
}

func TestFromFunc_GathersVariadic(t *testing.T) {
	f, _, _ := FromFunc(func(prefix string, xs ...int) string {
		return prefix + strconv.Itoa(len(xs))
	})

	v, err := f.Call("n=", 1, 2, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "n=3" {
		t.Errorf("expected n=3, got %v", v)
	}
}

func TestFromFunc_TooFewArgs(t *testing.T) {
	f, _, _ := FromFunc(func(a, b int) int { return a + b })

	if _, err := f.Call(1); !errors.Is(err, ErrArgCount) {
		t.Errorf("expected ErrArgCount, got %v", err)
	}
}

func TestFromFunc_ArgType(t *testing.T) {
	f, _, _ := FromFunc(func(a, b int) int { return a + b })

	_, err := f.Call(1, "two")
	if !errors.Is(err, ErrArgType) {
		t.Fatalf("expected ErrArgType, got %v", err)
	}
}

func TestFromFunc_NilArgIsZero(t *testing.T) {
	f, _, _ := FromFunc(func(err error, n int) string {
		return fmt.Sprintf("%v %d", err, n)
	})

	v, err := f.Call(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "<nil> 0" {
		t.Errorf("expected '<nil> 0', got %v", v)
	}
}

func TestFromFunc_InterfaceParam(t *testing.T) {
	f, _, _ := FromFunc(func(s fmt.Stringer) string { return s.String() })

	v, err := f.Call(Curry(1, sumInts))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "curry(1)[]" {
		t.Errorf("expected curry(1)[], got %v", v)
	}
}

func TestFromFunc_Results(t *testing.T) {
	expectedErr := errors.New("parse failed")

	tests := []struct {
		name    string
		fn      any
		want    any
		wantErr error
	}{
		{"no results", func() {}, nil, nil},
		{"only nil error", func() error { return nil }, nil, nil},
		{"only error", func() error { return expectedErr }, nil, expectedErr},
		{"value and nil error", func() (int, error) { return 1, nil }, 1, nil},
		{"value and error", func() (int, error) { return 0, expectedErr }, 0, expectedErr},
		{"two values", func() (int, string) { return 1, "a" }, []any{1, "a"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _, err := FromFunc(tt.fn)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			v, err := f.Call()
			if err != tt.wantErr {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
			if !reflect.DeepEqual(v, tt.want) {
				t.Errorf("expected %#v, got %#v", tt.want, v)
			}
		})
	}
}

// ============================================================================
// CurryReflect Tests
// ============================================================================

func TestCurryReflect_Add8(t *testing.T) {
	c, err := CurryReflect(add8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c = c.Call(1).Call(2, 2).Call(2, 1).Call(1)
	if c.Done() {
		t.Fatal("chain resolved too early")
	}
	c = c.Call(1, 2, 3)

	v, err := c.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 12 {
		t.Errorf("expected 12 with the ninth argument dropped, got %v", v)
	}
	if c.Len() != 9 {
		t.Errorf("expected 9 collected args, got %d", c.Len())
	}
}

func TestCurryReflect_NotFunc(t *testing.T) {
	if _, err := CurryReflect("add"); !errors.Is(err, ErrNotFunc) {
		t.Errorf("expected ErrNotFunc, got %v", err)
	}
}

func TestMustCurry_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustCurry(3)
}

func TestMustCurry_ArityZero(t *testing.T) {
	v, err := MustCurry(func() int { return 42 }).Call().Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 42 {
		t.Errorf("expected 42, got %v", v)
	}
}
