package lispy

import "testing"

func Test_Types_OnlyFalseIsFalsy(t *testing.T) {
	falsy := []Value{Bool(false)}
	truthy := []Value{
		Bool(true),
		Int(0), Int(1), Int(-1),
		Num(0.0), Num(1.5),
		Sym("x"), Sym(""),
		List(nil), List([]Value{Int(1)}),
		None,
	}
	for _, v := range falsy {
		if Truthy(v) {
			t.Fatalf("want falsy, got truthy: %#v", v)
		}
	}
	for _, v := range truthy {
		if !Truthy(v) {
			t.Fatalf("want truthy, got falsy: %#v", v)
		}
	}
}

func Test_Types_Constructors(t *testing.T) {
	wantInt(t, Int(7), 7)
	wantNum(t, Num(2.5), 2.5)
	wantBool(t, Bool(true), true)
	wantSym(t, Sym("abc"), "abc")
	wantNone(t, None)

	v := List([]Value{Int(1), Sym("two")})
	if v.Tag != VTList || len(v.Data.([]Value)) != 2 {
		t.Fatalf("want 2-element list, got %#v", v)
	}
}

func Test_Types_CallableCoversBothProcedureKinds(t *testing.T) {
	env := StandardEnv()
	builtinCar, _ := env.Get("car")
	closure := evalIn(t, env, "(lambda (x) x)")

	for _, v := range []Value{builtinCar, closure} {
		if !callable(v) {
			t.Fatalf("want callable, got %#v", v)
		}
	}
	for _, v := range []Value{Int(1), Sym("car"), List(nil), None, Bool(true)} {
		if callable(v) {
			t.Fatalf("want not callable, got %#v", v)
		}
	}
}
