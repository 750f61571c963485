package secret

import (
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"
)

var bracedVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// ExpandEnvStrict expands environment variables in s.
//
// Semantics:
//   - Only `${VAR}` is expanded. A bare `$` and `$name` are kept literally,
//     so passwords containing `$` pass through unchanged.
//   - If `${VAR}` is present but VAR is unset, it errors naming every such VAR.
//   - `$$` emits a literal `$`, so `$${VAR}` yields the text `${VAR}`.
func ExpandEnvStrict(s string) (string, error) {
	segments := strings.Split(s, "$$")

	var missing []string
	for i, seg := range segments {
		segments[i] = bracedVarPattern.ReplaceAllStringFunc(seg, func(m string) string {
			name := m[2 : len(m)-1]
			v, ok := os.LookupEnv(name)
			if !ok {
				missing = append(missing, name)
			}
			return v
		})
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return "", fmt.Errorf("%w: %s", ErrMissingEnv, strings.Join(slices.Compact(missing), ", "))
	}
	return strings.Join(segments, "$"), nil
}
