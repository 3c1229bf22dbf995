package sema_test

import (
	"testing"

	"typelint/internal/ast"
	"typelint/internal/diag"
	"typelint/internal/parser"
	"typelint/internal/sema"
	"typelint/internal/source"
	"typelint/internal/types"
)

type checked struct {
	b       *ast.Builder
	fileID  ast.FileID
	checker *sema.Checker
	bag     *diag.Bag
}

func check(t *testing.T, src string) checked {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.tl", []byte(src)))
	strs := source.NewInterner()
	b := ast.NewBuilder(ast.Hints{})
	bag := diag.NewBag(64)
	reporter := diag.NewDedupReporter(diag.BagReporter{Bag: bag})

	fileID := parser.ParseFile(b, strs, file, reporter)
	checker := sema.Check(b, strs, fileID, reporter)
	return checked{b: b, fileID: fileID, checker: checker, bag: bag}
}

func checkClean(t *testing.T, src string) checked {
	t.Helper()
	c := check(t, src)
	if c.bag.HasErrors() {
		t.Fatalf("unexpected errors in %q: %v", src, c.bag.Items())
	}
	return c
}

// stmtExpr returns the root expression of the n-th top-level statement,
// which must be an expression statement.
func (c checked) stmtExpr(t *testing.T, n int) ast.ExprID {
	t.Helper()
	f := c.b.Files.Get(c.fileID)
	if n >= len(f.Stmts) {
		t.Fatalf("statement %d out of range (%d)", n, len(f.Stmts))
	}
	data, ok := c.b.Stmts.Expr(f.Stmts[n])
	if !ok {
		t.Fatalf("statement %d is not an expression statement", n)
	}
	return data.Expr
}

func (c checked) hasCode(code diag.Code) bool {
	for _, d := range c.bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

func TestCheck_UnknownName(t *testing.T) {
	c := check(t, "missing;")
	if !c.hasCode(diag.SemaUnknownName) {
		t.Errorf("expected SEM3001 for an unresolved identifier")
	}
}

func TestCheck_DuplicateDeclaration(t *testing.T) {
	c := check(t, "let x: number; let x: string;")
	if !c.hasCode(diag.SemaDuplicateSymbol) {
		t.Errorf("expected SEM3003 for a duplicate declaration")
	}
}

func TestCheck_UnknownType(t *testing.T) {
	c := check(t, "let x: Junk;")
	if !c.hasCode(diag.SemaUnknownType) {
		t.Errorf("expected SEM3002 for an unknown type name")
	}
}

func TestCheck_BadTypeArgs(t *testing.T) {
	c := check(t, "let a: Array<number, string>;")
	if !c.hasCode(diag.SemaBadTypeArgs) {
		t.Errorf("expected SEM3007 for too many type arguments")
	}
}

func TestCheck_VoidInference(t *testing.T) {
	c := checkClean(t, "function f() { let x = 1; }\nf;")
	in := c.checker.TypeInterner()

	fnType := c.checker.TypeAt(c.stmtExpr(t, 1))
	sigs := c.checker.CallSignatures(fnType)
	if len(sigs) != 1 {
		t.Fatalf("expected one signature, got %d", len(sigs))
	}
	if in.KindOf(sigs[0].Result) != types.KindVoid {
		t.Errorf("a function without valued returns must be void, got %v", in.KindOf(sigs[0].Result))
	}
}

func TestCheck_UnannotatedValueReturnIsAny(t *testing.T) {
	c := checkClean(t, "function f() { return 1; }\nf;")
	in := c.checker.TypeInterner()

	sigs := c.checker.CallSignatures(c.checker.TypeAt(c.stmtExpr(t, 1)))
	if len(sigs) != 1 {
		t.Fatalf("expected one signature, got %d", len(sigs))
	}
	if in.KindOf(sigs[0].Result) != types.KindAny {
		t.Errorf("an unannotated valued return stays any, got %v", in.KindOf(sigs[0].Result))
	}
}

func TestCheck_OverloadGrouping(t *testing.T) {
	c := checkClean(t, `
function f(x: number): void;
function f(): number;
function f(x: any): any {}
f;
`)
	sigs := c.checker.CallSignatures(c.checker.TypeAt(c.stmtExpr(t, 3)))
	if len(sigs) != 2 {
		t.Errorf("bodiless declarations form the overload set, got %d signatures", len(sigs))
	}
}

func TestCheck_ChosenSignatureByArity(t *testing.T) {
	c := checkClean(t, `
function f(x: number): void;
function f(): number;
function f(x: any): any {}
f();
`)
	in := c.checker.TypeInterner()

	callID := c.stmtExpr(t, 3)
	sig, ok := c.checker.ChosenSignature(callID)
	if !ok {
		t.Fatalf("expected a chosen signature")
	}
	if in.KindOf(sig.Result) != types.KindNumber {
		t.Errorf("arity 0 must pick the zero-parameter overload, got result %v", in.KindOf(sig.Result))
	}
	if in.KindOf(c.checker.TypeAt(callID)) != types.KindNumber {
		t.Errorf("the call's type must be the chosen result")
	}
}

func TestCheck_NoOverloadMatches(t *testing.T) {
	c := check(t, `
function f(x: number): void;
function f(): number;
function f(x: any): any {}
f(1, 2, 3);
`)
	if !c.hasCode(diag.SemaNoOverload) {
		t.Errorf("expected SEM3006 when no overload matches the arity")
	}
}

func TestCheck_NotCallable(t *testing.T) {
	c := check(t, "let n: number;\nn();")
	if !c.hasCode(diag.SemaNotCallable) {
		t.Errorf("expected SEM3005 for calling a number")
	}
}

func TestCheck_UnionAnnotationCollapses(t *testing.T) {
	c := checkClean(t, "let v: number | number;\nv;")
	in := c.checker.TypeInterner()
	if in.KindOf(c.checker.TypeAt(c.stmtExpr(t, 1))) != types.KindNumber {
		t.Errorf("a one-member union collapses to its member")
	}
}

func TestCheck_ContainerInstancesInterned(t *testing.T) {
	c := checkClean(t, "let a: Array<number>;\nlet b: Array<number>;\nlet s: Array<string>;\na; b; s;")
	tA := c.checker.TypeAt(c.stmtExpr(t, 3))
	tB := c.checker.TypeAt(c.stmtExpr(t, 4))
	tS := c.checker.TypeAt(c.stmtExpr(t, 5))
	if tA != tB {
		t.Errorf("Array<number> must intern to one TypeID, got %v and %v", tA, tB)
	}
	if tA == tS {
		t.Errorf("Array<number> and Array<string> must differ")
	}
}

func TestCheck_ContainerMemberTypes(t *testing.T) {
	c := checkClean(t, "let m: Map<string, number>;\nlet v = m.get(\"k\");\nv;")
	in := c.checker.TypeInterner()

	got := c.checker.TypeAt(c.stmtExpr(t, 2))
	members := in.UnionMembers(got)
	if len(members) != 2 {
		t.Fatalf("get must return value|undefined, got %v", in.KindOf(got))
	}
	if in.KindOf(members[0]) != types.KindNumber || in.KindOf(members[1]) != types.KindUndefined {
		t.Errorf("get members: got %v and %v", in.KindOf(members[0]), in.KindOf(members[1]))
	}
}

func TestCheck_UnknownMember(t *testing.T) {
	c := check(t, "let a: Array<number>;\na.frobnicate();")
	if !c.hasCode(diag.SemaUnknownMember) {
		t.Errorf("expected SEM3004 for an unknown container member")
	}
}

func TestCheck_ClassConstruction(t *testing.T) {
	c := checkClean(t, `
class A { constructor(x: number) {} }
let a = A(1);
a;
A;
`)
	in := c.checker.TypeInterner()

	instType := c.checker.TypeAt(c.stmtExpr(t, 2))
	if _, ok := in.InstanceInfo(instType); !ok {
		t.Fatalf("constructing a class must yield its instance type")
	}
	classType := c.checker.TypeAt(c.stmtExpr(t, 3))
	if in.SymbolOf(instType) != in.SymbolOf(classType) {
		t.Errorf("instance and class must share a nominal symbol")
	}
	ctors := c.checker.ConstructSignatures(classType)
	if len(ctors) != 1 || len(ctors[0].Params) != 1 {
		t.Errorf("expected the declared one-parameter constructor, got %v", ctors)
	}
}

func TestCheck_ImplicitConstructor(t *testing.T) {
	c := checkClean(t, "class A {}\nA;")
	ctors := c.checker.ConstructSignatures(c.checker.TypeAt(c.stmtExpr(t, 1)))
	if len(ctors) != 1 || len(ctors[0].Params) != 0 {
		t.Errorf("a class without constructors gets an implicit zero-argument one, got %v", ctors)
	}
}

func TestCheck_ClassMemberAccess(t *testing.T) {
	c := checkClean(t, `
class P { value: number; name(): string { return "p"; } }
let p = P();
p.value;
`)
	in := c.checker.TypeInterner()
	if in.KindOf(c.checker.TypeAt(c.stmtExpr(t, 2))) != types.KindNumber {
		t.Errorf("field access must yield the declared field type")
	}
}

func TestCheck_ArrowInference(t *testing.T) {
	c := checkClean(t, "let f = (x: number) => x + 1;\nf;")
	in := c.checker.TypeInterner()

	sigs := c.checker.CallSignatures(c.checker.TypeAt(c.stmtExpr(t, 1)))
	if len(sigs) != 1 {
		t.Fatalf("expected one signature, got %d", len(sigs))
	}
	if in.KindOf(sigs[0].Result) != types.KindNumber {
		t.Errorf("expression-body arrow returns its value type, got %v", in.KindOf(sigs[0].Result))
	}
	if len(sigs[0].Params) != 1 || in.KindOf(sigs[0].Params[0]) != types.KindNumber {
		t.Errorf("annotated parameter type must survive, got %v", sigs[0].Params)
	}
}

func TestCheck_BlockArrowReturnUnion(t *testing.T) {
	c := checkClean(t, "let f = (b: boolean) => { b && true; return 1; return \"s\"; };\nf;")
	in := c.checker.TypeInterner()

	sigs := c.checker.CallSignatures(c.checker.TypeAt(c.stmtExpr(t, 1)))
	if len(sigs) != 1 {
		t.Fatalf("expected one signature, got %d", len(sigs))
	}
	members := in.UnionMembers(sigs[0].Result)
	if len(members) != 2 {
		t.Errorf("two distinct valued returns union, got %v", in.KindOf(sigs[0].Result))
	}
}

func TestCheck_CallMemberForwards(t *testing.T) {
	c := checkClean(t, "function q(): number { return 1; }\nq.call;")
	in := c.checker.TypeInterner()

	sigs := c.checker.CallSignatures(c.checker.TypeAt(c.stmtExpr(t, 1)))
	if len(sigs) != 1 || !sigs[0].Variadic {
		t.Fatalf("call member must be a single variadic signature, got %v", sigs)
	}
	if in.KindOf(sigs[0].Result) != types.KindNumber {
		t.Errorf("call member result follows the receiver, got %v", in.KindOf(sigs[0].Result))
	}
}

func TestCheck_LocalShadowsTopLevel(t *testing.T) {
	// The local let must get its own binding even though the name is
	// already declared at top level; calling it resolves the local type.
	c := checkClean(t, `
let n: number = 1;
function f(): void {
  let n: () => void;
  n();
}
f;
`)
	if c.hasCode(diag.SemaNotCallable) {
		t.Errorf("the call must resolve to the shadowing local, not the outer number")
	}
}

func TestCheck_LocalFuncShadowsTopLevel(t *testing.T) {
	c := checkClean(t, `
let h: number = 1;
function f(): void {
  function h(): void {}
  h();
}
f;
`)
	if c.hasCode(diag.SemaNotCallable) {
		t.Errorf("the nested function must shadow the outer binding")
	}
}

func TestCheck_RestParamBindsAsArray(t *testing.T) {
	c := checkClean(t, "function f(...xs: number) { xs.push(1); }\nf;")
	// The body typed without errors: xs is Array<number> inside f.
	in := c.checker.TypeInterner()
	sigs := c.checker.CallSignatures(c.checker.TypeAt(c.stmtExpr(t, 1)))
	if len(sigs) != 1 || !sigs[0].Variadic {
		t.Fatalf("expected one variadic signature, got %v", sigs)
	}
	if in.KindOf(sigs[0].Params[0]) != types.KindNumber {
		t.Errorf("the signature stores the element type, got %v", in.KindOf(sigs[0].Params[0]))
	}
}
