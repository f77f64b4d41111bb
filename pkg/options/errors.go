package options

import (
	"fmt"
	"sort"
	"strings"
)

// UnknownKeyError reports a lookup key that is not in its option table.
// It is raised before any bytes are sent to the robot.
type UnknownKeyError struct {
	// Table names the option table, e.g. "side".
	Table string

	// Key is the offending lookup key.
	Key string

	// Valid lists the table's keys, sorted.
	Valid []string
}

// Error implements the error interface.
func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("options: unknown %s %q (valid: %s)",
		e.Table, e.Key, strings.Join(e.Valid, ", "))
}

// lookup resolves key in table, failing with *UnknownKeyError on a miss.
func lookup[K ~string](table string, codes map[K]byte, key K) (byte, error) {
	code, ok := codes[key]
	if !ok {
		return 0, &UnknownKeyError{Table: table, Key: string(key), Valid: keys(codes)}
	}
	return code, nil
}

// keys returns the table's keys, sorted for stable error messages.
func keys[K ~string](codes map[K]byte) []string {
	out := make([]string, 0, len(codes))
	for k := range codes {
		out = append(out, string(k))
	}
	sort.Strings(out)
	return out
}
