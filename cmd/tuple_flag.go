package cmd

import (
	"fmt"
	"strings"
)

// tupleValue is a repeatable flag taking exactly n comma-separated values
// per occurrence, flattened in order into dest. Enforcing the arity here
// means the migration compiler downstream always sees correctly grouped
// lists.
type tupleValue struct {
	n    int
	dest *[]string
}

func newTupleValue(n int, dest *[]string) *tupleValue {
	return &tupleValue{n: n, dest: dest}
}

func (v *tupleValue) Set(raw string) error {
	parts := strings.Split(raw, ",")
	if len(parts) != v.n {
		return fmt.Errorf("expected %d comma-separated values, got %d", v.n, len(parts))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
		if parts[i] == "" {
			return fmt.Errorf("value %d of %q is empty", i+1, raw)
		}
	}
	*v.dest = append(*v.dest, parts...)
	return nil
}

func (v *tupleValue) String() string {
	return strings.Join(*v.dest, ",")
}

func (v *tupleValue) Type() string {
	return "tuple"
}
