package core

import (
	"fmt"
	"strings"
)

// KVList collects repeatable key=value flags. It implements flag.Value.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one pair, rejecting values without '='.
func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("override %q is not key=value", value)
	}
	*l = append(*l, value)
	return nil
}

// Map splits the pairs, trimming spaces. Later keys win.
func (l KVList) Map() (map[string]string, error) {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("override %q is not key=value", kv)
		}
		out[key] = strings.TrimSpace(value)
	}
	return out, nil
}
