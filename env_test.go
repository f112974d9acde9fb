// env_test.go
package lispy

import "testing"

func Test_Env_Define_Then_Get(t *testing.T) {
	env := NewEnv(nil)
	env.Define("x", Int(10))
	v, err := env.Get("x")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	wantInt(t, v, 10)
}

func Test_Env_Get_Undefined_IsNameError(t *testing.T) {
	env := NewEnv(nil)
	_, err := env.Get("nope")
	if err == nil || !IsNameError(err) {
		t.Fatalf("want name error, got %v", err)
	}
	mustContain(t, err.Error(), "undefined variable: nope")
}

func Test_Env_Lookup_WalksOutward(t *testing.T) {
	outer := NewEnv(nil)
	outer.Define("x", Int(1))
	inner := NewEnv(outer)
	v, err := inner.Get("x")
	if err != nil {
		t.Fatalf("Get through outer failed: %v", err)
	}
	wantInt(t, v, 1)
}

func Test_Env_Shadowing_InnerWins(t *testing.T) {
	outer := NewEnv(nil)
	outer.Define("x", Int(1))
	inner := NewEnv(outer)
	inner.Define("x", Int(2))

	v, _ := inner.Get("x")
	wantInt(t, v, 2)
	v, _ = outer.Get("x")
	wantInt(t, v, 1)
}

func Test_Env_Set_UpdatesNearestFrame(t *testing.T) {
	outer := NewEnv(nil)
	outer.Define("x", Int(1))
	inner := NewEnv(outer)

	if err := inner.Set("x", Int(99)); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	v, _ := outer.Get("x")
	wantInt(t, v, 99)
}

func Test_Env_Set_DoesNotDefine(t *testing.T) {
	env := NewEnv(nil)
	err := env.Set("ghost", Int(1))
	if err == nil || !IsNameError(err) {
		t.Fatalf("set! of an unbound name must fail, got %v", err)
	}
	if _, err := env.Get("ghost"); err == nil {
		t.Fatalf("failed Set must not create a binding")
	}
}

func Test_Env_NewCallEnv_BindsPositionally(t *testing.T) {
	outer := NewEnv(nil)
	env, err := NewCallEnv([]string{"a", "b"}, []Value{Int(1), Int(2)}, outer)
	if err != nil {
		t.Fatalf("NewCallEnv error: %v", err)
	}
	a, _ := env.Get("a")
	b, _ := env.Get("b")
	wantInt(t, a, 1)
	wantInt(t, b, 2)
}

func Test_Env_NewCallEnv_ArityMismatch(t *testing.T) {
	_, err := NewCallEnv([]string{"a", "b"}, []Value{Int(1)}, nil)
	if err == nil || !IsArityError(err) {
		t.Fatalf("want arity error, got %v", err)
	}
	mustContain(t, err.Error(), "expects 2 arguments, got 1")

	_, err = NewCallEnv(nil, []Value{Int(1)}, nil)
	if err == nil || !IsArityError(err) {
		t.Fatalf("want arity error for zero-parameter procedure, got %v", err)
	}
}
