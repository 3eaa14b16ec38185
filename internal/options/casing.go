package options

import (
	"fmt"
	"strings"
)

// FixCasing returns a matcher that maps arbitrary-case input onto one of the
// canonical spellings in names. The list may contain case-variant duplicates
// ("hex" and "HEX" both present); precedence is:
//
//  1. an exact match against a canonical spelling wins outright,
//  2. otherwise a unique case-insensitive match returns that spelling,
//  3. otherwise the input case-insensitively matches several distinct
//     canonical casings and none of them exactly: ambiguous, rejected.
func FixCasing(names []string) func(string) (string, error) {
	return func(arg string) (string, error) {
		lowered := make([]string, len(names))
		counts := make(map[string]int, len(names))
		for i, name := range names {
			lowered[i] = strings.ToLower(name)
			counts[lowered[i]]++
		}

		argLower := strings.ToLower(arg)
		if counts[argLower] == 0 {
			return "", fmt.Errorf("invalid choice %q, choose from %v", arg, names)
		}

		for _, name := range names {
			if name == arg {
				return name, nil
			}
		}

		if counts[argLower] == 1 {
			for i, low := range lowered {
				if low == argLower {
					return names[i], nil
				}
			}
		}

		var candidates []string
		for i, low := range lowered {
			if low == argLower {
				candidates = append(candidates, names[i])
			}
		}
		return "", fmt.Errorf("ambiguous choice %q, unable to decide between %v", arg, candidates)
	}
}
