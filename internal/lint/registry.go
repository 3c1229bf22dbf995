package lint

import (
	"fmt"
	"sort"

	"typelint/internal/ast"
	"typelint/internal/diag"
)

// Rule is a single handler: a pure mapping from an expression node plus
// the context's oracle to zero or one diagnostic.
type Rule interface {
	Name() string
	Doc() string
	Check(ctx *Context, id ast.ExprID) (diag.Diagnostic, bool)
}

// AliasInstanceofMember is the deprecated historical name of
// no-unnecessary-instanceof; both resolve to the same handler.
const AliasInstanceofMember = "require-instanceof-member"

// registry maps every addressable rule name to its handler. The alias
// entry shares the handler instance with the current name.
var registry = func() map[string]Rule {
	instanceofRule := unnecessaryInstanceof{}
	m := map[string]Rule{}
	for _, rule := range []Rule{unusedReturn{}, returnToVoid{}, instanceofRule} {
		m[rule.Name()] = rule
	}
	m[AliasInstanceofMember] = instanceofRule
	return m
}()

// Names returns every registered rule name, aliases included, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// IsDeprecated reports whether the name is a deprecated alias.
func IsDeprecated(name string) bool {
	return name == AliasInstanceofMember
}

// Lookup resolves a rule name, following the deprecated alias.
func Lookup(name string) (Rule, bool) {
	rule, ok := registry[name]
	return rule, ok
}

// Rules resolves the requested rule names to handlers. A nil oracle
// deactivates linting entirely: the capability the rules depend on is
// absent, so no handlers register. An empty name list selects every rule
// once; a name and its alias select the shared handler once.
func Rules(o Oracle, names []string) ([]Rule, error) {
	if o == nil {
		return nil, nil
	}
	if len(names) == 0 {
		names = []string{
			unusedReturn{}.Name(),
			returnToVoid{}.Name(),
			unnecessaryInstanceof{}.Name(),
		}
	}
	var out []Rule
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		rule, ok := registry[name]
		if !ok {
			return nil, fmt.Errorf("unknown rule %q", name)
		}
		if _, dup := seen[rule.Name()]; dup {
			continue
		}
		seen[rule.Name()] = struct{}{}
		out = append(out, rule)
	}
	return out, nil
}
