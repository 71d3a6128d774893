package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ajroetker/go-mathfn/mathfn/bridge"
)

// parseValue converts one positional argument string into the Value
// kind the function signature requires. Sequences are comma-separated;
// an empty string parses as an empty sequence.
func parseValue(kind bridge.Kind, s string) (bridge.Value, error) {
	switch kind {
	case bridge.Int:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return bridge.Value{}, fmt.Errorf("parse %q as int: %w", s, err)
		}
		return bridge.IntOf(n), nil

	case bridge.Float:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return bridge.Value{}, fmt.Errorf("parse %q as float: %w", s, err)
		}
		return bridge.FloatOf(f), nil

	case bridge.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return bridge.Value{}, fmt.Errorf("parse %q as bool: %w", s, err)
		}
		return bridge.BoolOf(b), nil

	case bridge.IntSlice:
		parts := splitSeq(s)
		ns := make([]int64, len(parts))
		for i, p := range parts {
			n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
			if err != nil {
				return bridge.Value{}, fmt.Errorf("parse element %d %q as int: %w", i, p, err)
			}
			ns[i] = n
		}
		return bridge.IntsOf(ns), nil

	case bridge.FloatSlice:
		parts := splitSeq(s)
		fs := make([]float64, len(parts))
		for i, p := range parts {
			f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return bridge.Value{}, fmt.Errorf("parse element %d %q as float: %w", i, p, err)
			}
			fs[i] = f
		}
		return bridge.FloatsOf(fs), nil
	}
	return bridge.Value{}, fmt.Errorf("unsupported argument kind %v", kind)
}

func splitSeq(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, ",")
}
