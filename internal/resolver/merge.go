package resolver

import (
	"fmt"
	"strings"
)

// Strategy is the rule used to combine two values of one field.
type Strategy int

const (
	// StrategyScalar accepts one modified value; two different ones conflict.
	StrategyScalar Strategy = iota
	// StrategyList accepts a list from at most one side.
	StrategyList
	// StrategyFlag ORs booleans.
	StrategyFlag
)

// String returns the string representation of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyScalar:
		return "scalar"
	case StrategyList:
		return "list"
	case StrategyFlag:
		return "flag"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

func mergeFlag(a, b bool) bool {
	return a || b
}

func mergeScalar(field, a, b string) (string, error) {
	switch {
	case a == "":
		return b, nil
	case b == "", a == b:
		return a, nil
	default:
		return "", fieldConflict(field, StrategyScalar, a, b)
	}
}

// mergeList never inspects contents: two non-empty lists conflict even
// when equal.
func mergeList(field string, a, b []string) ([]string, error) {
	switch {
	case len(a) == 0 && len(b) == 0:
		return nil, nil
	case len(a) == 0:
		return b, nil
	case len(b) == 0:
		return a, nil
	default:
		return nil, fieldConflict(field, StrategyList, formatList(a), formatList(b))
	}
}

func formatList(l []string) string {
	return "[" + strings.Join(l, ", ") + "]"
}
