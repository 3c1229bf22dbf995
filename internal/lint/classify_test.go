package lint_test

import (
	"testing"

	"typelint/internal/ast"
	"typelint/internal/lint"
	"typelint/internal/types"
)

// internerOracle answers every classification question straight from a
// types.Interner, with no syntax tree behind it.
type internerOracle struct {
	in *types.Interner
}

func (o internerOracle) TypeAt(ast.ExprID) types.TypeID { return types.NoTypeID }

func (o internerOracle) CallSignatures(t types.TypeID) []types.Signature {
	return o.in.CallSignatures(t)
}

func (o internerOracle) ConstructSignatures(t types.TypeID) []types.Signature {
	return o.in.ConstructSignatures(t)
}

func (o internerOracle) ChosenSignature(ast.ExprID) (types.Signature, bool) {
	return types.Signature{}, false
}

func (o internerOracle) TypeInterner() *types.Interner { return o.in }

func fnReturning(in *types.Interner, results ...types.TypeID) types.TypeID {
	sigs := make([]types.Signature, len(results))
	for i, res := range results {
		sigs[i] = types.Signature{Result: res}
	}
	return in.RegisterFn(sigs)
}

func TestReturnTypeEquals(t *testing.T) {
	in := types.NewInterner()
	o := internerOracle{in: in}
	b := in.Builtins()

	voidFn := fnReturning(in, b.Void)
	neverFn := fnReturning(in, b.Never)
	numberFn := fnReturning(in, b.Number)
	voidOverloads := fnReturning(in, b.Void, b.Void)
	mixedOverloads := fnReturning(in, b.Void, b.Number)
	unionResultFn := fnReturning(in, in.MakeUnion([]types.TypeID{b.Void, b.Number}))
	voidFnUnion := in.MakeUnion([]types.TypeID{voidFn, voidOverloads})
	mixedFnUnion := in.MakeUnion([]types.TypeID{voidFn, numberFn})
	nestedUnion := in.MakeUnion([]types.TypeID{voidFnUnion, fnReturning(in, b.Void)})

	tests := []struct {
		name string
		t    types.TypeID
		kind types.Kind
		want bool
	}{
		{"any passes for void", b.Any, types.KindVoid, true},
		{"any passes for never", b.Any, types.KindNever, true},
		{"non-callable primitive", b.Number, types.KindVoid, false},
		{"invalid type", types.NoTypeID, types.KindVoid, false},
		{"void function", voidFn, types.KindVoid, true},
		{"void function is not never", voidFn, types.KindNever, false},
		{"never function", neverFn, types.KindNever, true},
		{"number function", numberFn, types.KindVoid, false},
		{"all overloads void", voidOverloads, types.KindVoid, true},
		{"one overload returns number", mixedOverloads, types.KindVoid, false},
		{"union result disqualifies", unionResultFn, types.KindVoid, false},
		{"union of void functions", voidFnUnion, types.KindVoid, true},
		{"union with non-void member", mixedFnUnion, types.KindVoid, false},
		{"nested union of void functions", nestedUnion, types.KindVoid, true},
		{"union of primitives", in.MakeUnion([]types.TypeID{b.Number, b.String}), types.KindVoid, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lint.ReturnTypeEquals(o, tt.t, tt.kind)
			if got != tt.want {
				t.Errorf("ReturnTypeEquals(%v, %v) = %v, want %v", tt.t, tt.kind, got, tt.want)
			}
		})
	}
}

func TestReturnTypeEquals_AnyInsideUnion(t *testing.T) {
	in := types.NewInterner()
	o := internerOracle{in: in}
	b := in.Builtins()

	// any as a member satisfies any kind, so the union outcome follows
	// the remaining members.
	mixed := in.MakeUnion([]types.TypeID{b.Any, fnReturning(in, b.Void)})
	if !lint.ReturnTypeEquals(o, mixed, types.KindVoid) {
		t.Errorf("union of any and void fn should classify as void")
	}
	broken := in.MakeUnion([]types.TypeID{b.Any, fnReturning(in, b.Number)})
	if lint.ReturnTypeEquals(o, broken, types.KindVoid) {
		t.Errorf("union containing a number fn must not classify as void")
	}
}
