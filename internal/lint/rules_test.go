package lint_test

import (
	"fmt"
	"reflect"
	"testing"

	"typelint/internal/ast"
	"typelint/internal/diag"
	"typelint/internal/lint"
	"typelint/internal/parser"
	"typelint/internal/sema"
	"typelint/internal/source"
	"typelint/internal/types"
)

// analyze runs the full pipeline over one virtual file and returns the
// lint diagnostics. Any lexical, syntax or semantic error fails the test:
// every snippet here is meant to be well-formed.
func analyze(t *testing.T, src string, ruleNames []string) []diag.Diagnostic {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.tl", []byte(src)))
	strs := source.NewInterner()
	b := ast.NewBuilder(ast.Hints{})
	bag := diag.NewBag(64)
	reporter := diag.NewDedupReporter(diag.BagReporter{Bag: bag})

	fileID := parser.ParseFile(b, strs, file, reporter)
	checker := sema.Check(b, strs, fileID, reporter)
	rules, err := lint.Rules(checker, ruleNames)
	if err != nil {
		t.Fatalf("Rules(%v): %v", ruleNames, err)
	}
	lint.Run(checker, b, strs, fileID, rules, reporter)

	if bag.HasErrors() {
		t.Fatalf("unexpected errors in %q:\n%s", src, dumpBag(bag))
	}
	var out []diag.Diagnostic
	for _, d := range bag.Items() {
		if d.Code >= 4000 {
			out = append(out, d)
		}
	}
	return out
}

func dumpBag(bag *diag.Bag) string {
	s := ""
	for _, d := range bag.Items() {
		s += fmt.Sprintf("  [%s] %s\n", d.Code.ID(), d.Message)
	}
	return s
}

func expectCodes(t *testing.T, src string, want ...diag.Code) {
	t.Helper()
	got := analyze(t, src, nil)
	codes := make([]diag.Code, 0, len(got))
	for _, d := range got {
		codes = append(codes, d.Code)
	}
	if len(codes) != len(want) {
		t.Fatalf("got %d diagnostics, want %d\nsource:\n%s\ngot: %v\nwant: %v",
			len(codes), len(want), src, codes, want)
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("diagnostic %d: got %s, want %s", i, codes[i].ID(), want[i].ID())
		}
	}
}

func TestUnusedReturn_FlagsDiscardedCall(t *testing.T) {
	expectCodes(t, `
function doSomething(): number { return 1; }
doSomething();
`, diag.LintUnusedReturn)
}

func TestUnusedReturn_VoidAndNeverAreQuiet(t *testing.T) {
	expectCodes(t, `
function log(): void {}
function fail(): never {}
log();
fail();
`)
}

func TestUnusedReturn_InferredVoidIsQuiet(t *testing.T) {
	expectCodes(t, `
function touch() { let x = 1; }
touch();
`)
}

func TestUnusedReturn_MutatorAllowList(t *testing.T) {
	expectCodes(t, `
let arr: Array<number>;
arr.push(1);
arr.sort();
arr.reverse();
arr.indexOf(1);
`, diag.LintUnusedReturn)
}

func TestUnusedReturn_MapAndSetMutators(t *testing.T) {
	expectCodes(t, `
let m: Map<string, number>;
let s: Set<number>;
m.set("a", 1);
m.delete("a");
s.add(2);
s.delete(2);
m.get("a");
`, diag.LintUnusedReturn)
}

func TestUnusedReturn_LogicalOperands(t *testing.T) {
	expectCodes(t, `
function ok(): boolean { return true; }
function run(): number { return 1; }
ok() && run();
`, diag.LintUnusedReturn, diag.LintUnusedReturn)
}

func TestUnusedReturn_NestedLogicalChain(t *testing.T) {
	expectCodes(t, `
function a(): boolean { return true; }
function b(): boolean { return false; }
function c(): number { return 1; }
a() || b() && c();
`, diag.LintUnusedReturn, diag.LintUnusedReturn, diag.LintUnusedReturn)
}

func TestUnusedReturn_UsedValueIsQuiet(t *testing.T) {
	expectCodes(t, `
function doSomething(): number { return 1; }
let x = doSomething();
`)
}

func TestUnusedReturn_CallApplyRewrite(t *testing.T) {
	expectCodes(t, `
function doSomething(): number { return 1; }
function log(): void {}
doSomething.call();
log.apply();
`, diag.LintUnusedReturn)
}

func TestUnusedReturn_ShadowedLocalIsFlagged(t *testing.T) {
	// The local g returns number even though the top-level g is void;
	// the rule must see the shadowing binding.
	expectCodes(t, `
function g(): void {}
function f(): void {
  let g: () => number;
  g();
}
f();
`, diag.LintUnusedReturn)
}

func TestUnusedReturn_ShadowedLocalIsQuiet(t *testing.T) {
	expectCodes(t, `
function g(): number { return 1; }
function f(): void {
  let g: () => void;
  g();
}
f();
`)
}

func TestReturnToVoid_BlockBodyArrow(t *testing.T) {
	expectCodes(t, `
let list: Array<number>;
list.forEach(x => { return x * 2; });
`, diag.LintReturnToVoid)
}

func TestReturnToVoid_ExpressionBodyArrow(t *testing.T) {
	expectCodes(t, `
let list: Array<number>;
list.forEach(x => x * 2);
`, diag.LintReturnToVoid)
}

func TestReturnToVoid_FunctionExpression(t *testing.T) {
	expectCodes(t, `
let list: Array<number>;
list.forEach(function (x) { return 1; });
`, diag.LintReturnToVoid)
}

func TestReturnToVoid_NoReturnConforms(t *testing.T) {
	expectCodes(t, `
let list: Array<number>;
list.forEach(x => { x + 1; });
`)
}

func TestReturnToVoid_DeclaredVoidParam(t *testing.T) {
	expectCodes(t, `
function each(f: (x: number) => void): void {}
each(x => { return x * 2; });
`, diag.LintReturnToVoid)
}

func TestReturnToVoid_RestSlotAbstains(t *testing.T) {
	expectCodes(t, `
function each(...fs: () => void): void {}
each(() => { return 1; });
`)
}

func TestReturnToVoid_BeyondArityAbstains(t *testing.T) {
	expectCodes(t, `
function run(f: (x: number) => void): void {}
run(x => { x; }, y => { return 1; });
`)
}

func TestReturnToVoid_ChosenOverloadDecides(t *testing.T) {
	src := `
function on(f: (x: number) => void): void;
function on(f: (x: number) => number, extra: number): void;
function on(f: any, extra: any): void {}
`
	expectCodes(t, src+`
on(x => { return 1; });
`, diag.LintReturnToVoid)
	expectCodes(t, src+`
on(x => { return 1; }, 5);
`)
}

func TestInstanceof_MatchingMemberIsQuiet(t *testing.T) {
	expectCodes(t, `
class A {}
class B {}
let u: A | B;
u instanceof A;
`)
}

func TestInstanceof_NonUnionLeft(t *testing.T) {
	expectCodes(t, `
class A {}
class B {}
let a: A;
a instanceof B;
`, diag.LintNotAUnion)
}

func TestInstanceof_NonClassRight(t *testing.T) {
	expectCodes(t, `
class A {}
class B {}
let u: A | B;
let n: number;
u instanceof n;
`, diag.LintNotAClass)
}

func TestInstanceof_NoMemberMatches(t *testing.T) {
	expectCodes(t, `
class A {}
class B {}
class C {}
let u: A | B;
u instanceof C;
`, diag.LintUnnecessaryCheck)
}

func TestInstanceof_NominalNotStructural(t *testing.T) {
	// P, Q and R are structurally identical; identity is the declaring
	// symbol, so the check is still dead.
	expectCodes(t, `
class P { value: number; }
class Q { value: number; }
class R { value: number; }
let v: P | Q;
v instanceof R;
`, diag.LintUnnecessaryCheck)
}

func TestInstanceof_AnyEscapesSilently(t *testing.T) {
	expectCodes(t, `
class A {}
let e: any;
e instanceof A;
`)
	expectCodes(t, `
class A {}
class B {}
let w: A | any;
w instanceof B;
`)
}

func TestDeprecatedAlias_SameHandler(t *testing.T) {
	src := `
class A {}
class B {}
class C {}
let u: A | B;
u instanceof C;
`
	current := analyze(t, src, []string{"no-unnecessary-instanceof"})
	alias := analyze(t, src, []string{lint.AliasInstanceofMember})
	if !reflect.DeepEqual(current, alias) {
		t.Errorf("alias diagnostics differ:\ncurrent: %v\nalias: %v", current, alias)
	}
	if len(current) != 1 || current[0].Code != diag.LintUnnecessaryCheck {
		t.Errorf("expected one LNT4005 diagnostic, got %v", current)
	}
}

func TestRules_NilOracleDeactivates(t *testing.T) {
	rules, err := lint.Rules(nil, []string{"no-ignored-return"})
	if err != nil {
		t.Fatalf("Rules with nil oracle: %v", err)
	}
	if rules != nil {
		t.Errorf("expected no rules for a nil oracle, got %d", len(rules))
	}
}

func TestRules_UnknownName(t *testing.T) {
	o := internerOracle{in: types.NewInterner()}
	if _, err := lint.Rules(o, []string{"no-such-rule"}); err == nil {
		t.Errorf("expected an error for an unknown rule name")
	}
}

func TestRules_AliasDedup(t *testing.T) {
	o := internerOracle{in: types.NewInterner()}
	rules, err := lint.Rules(o, []string{
		"no-unnecessary-instanceof", lint.AliasInstanceofMember,
	})
	if err != nil {
		t.Fatalf("Rules: %v", err)
	}
	if len(rules) != 1 {
		t.Errorf("alias and current name must resolve to one handler, got %d", len(rules))
	}
}

func TestRules_EmptySelectsAll(t *testing.T) {
	o := internerOracle{in: types.NewInterner()}
	rules, err := lint.Rules(o, nil)
	if err != nil {
		t.Fatalf("Rules: %v", err)
	}
	if len(rules) != 3 {
		t.Errorf("expected all 3 rules, got %d", len(rules))
	}
}

func TestRegistry_Names(t *testing.T) {
	names := lint.Names()
	want := []string{
		"no-ignored-return",
		"no-return-to-void",
		"no-unnecessary-instanceof",
		"require-instanceof-member",
	}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Names() = %v, want %v", names, want)
	}
	if !lint.IsDeprecated(lint.AliasInstanceofMember) {
		t.Errorf("alias must be reported deprecated")
	}
	if lint.IsDeprecated("no-unnecessary-instanceof") {
		t.Errorf("current name must not be deprecated")
	}
}

func TestRun_Idempotent(t *testing.T) {
	src := `
function doSomething(): number { return 1; }
let list: Array<number>;
doSomething();
list.forEach(x => { return x; });
`
	first := analyze(t, src, nil)
	second := analyze(t, src, nil)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two runs disagree:\nfirst: %v\nsecond: %v", first, second)
	}
	if len(first) != 2 {
		t.Errorf("expected 2 diagnostics, got %d: %v", len(first), first)
	}
}
