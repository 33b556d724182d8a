package vm

import (
	"cmp"

	"github.com/zurustar/mybash/pkg/compiler/token"
	"github.com/zurustar/mybash/pkg/value"
)

// Compare evaluates left op right.
// Two integers compare numerically; anything involving a string compares
// the canonical text forms lexically.
func Compare(left, right value.Value, op token.Operator) bool {
	if l, ok := left.AsInt(); ok {
		if r, ok := right.AsInt(); ok {
			return compareOrdered(l, r, op)
		}
	}
	return compareOrdered(left.String(), right.String(), op)
}

func compareOrdered[T cmp.Ordered](l, r T, op token.Operator) bool {
	c := cmp.Compare(l, r)
	switch op {
	case token.EQ:
		return c == 0
	case token.NOT_EQ:
		return c != 0
	case token.LT:
		return c < 0
	case token.LTE:
		return c <= 0
	case token.GT:
		return c > 0
	case token.GTE:
		return c >= 0
	}
	return false
}
