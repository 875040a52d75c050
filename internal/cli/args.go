package cli

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/katalvlaran/gridwalk/gridpath"
)

var errBadInteger = errors.New("not an integer")

// argNames labels the positional arguments in order.
var argNames = [positionalArgs]string{"max_distance", "robot_x", "robot_y", "treasure_x", "treasure_y"}

// request is one parsed invocation.
type request struct {
	MaxRun int
	Start  gridpath.Position
	Target gridpath.Position
}

// parseRequest converts the five positional arguments. In permissive mode
// every argument is read like C atoi: optional leading whitespace and sign,
// then digits up to the first non-digit, and 0 if there are none. In strict
// mode each argument must be a complete base-10 integer.
func parseRequest(args []string, strict bool) (request, error) {
	var vals [positionalArgs]int
	for i, a := range args {
		if !strict {
			vals[i] = atoi(a)
			continue
		}
		n, err := strconv.Atoi(a)
		if err != nil {
			return request{}, fmt.Errorf("%s %q: %w", argNames[i], a, errBadInteger)
		}
		vals[i] = n
	}

	return request{
		MaxRun: vals[0],
		Start:  gridpath.Position{X: vals[1], Y: vals[2]},
		Target: gridpath.Position{X: vals[3], Y: vals[4]},
	}, nil
}

func (r request) validate() error {
	return gridpath.Validate(r.Start, r.Target, r.MaxRun)
}

// positionalize inserts "--" before the first argument that looks like a
// negative number so the flag parser keeps it positional. Flags that take a
// separate value (e.g. "--limit -1") keep their value. Once a plain
// positional is seen nothing is changed: the flag set must not be
// interspersed, so everything after it is positional already.
func positionalize(fs *flag.FlagSet, args []string) []string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			return args
		case isNegativeNumber(a):
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")

			return append(out, args[i:]...)
		case strings.HasPrefix(a, "-") && len(a) > 1:
			if takesValue(fs, a) {
				i++
			}
		default:
			return args
		}
	}

	return args
}

// isNegativeNumber reports whether a starts like a negative integer.
func isNegativeNumber(a string) bool {
	return len(a) > 1 && a[0] == '-' && a[1] >= '0' && a[1] <= '9'
}

// takesValue reports whether flag argument a consumes the next argument.
func takesValue(fs *flag.FlagSet, a string) bool {
	if name, ok := strings.CutPrefix(a, "--"); ok {
		if strings.Contains(name, "=") {
			return false
		}
		f := fs.Lookup(name)

		return f != nil && f.NoOptDefVal == ""
	}

	// Shorthand group such as "-vo": the first letter that wants a value
	// takes the rest of the group, or the next argument when nothing is left.
	group := a[1:]
	for i := 0; i < len(group); i++ {
		f := fs.ShorthandLookup(group[i : i+1])
		if f == nil {
			return false
		}
		if f.NoOptDefVal == "" {
			return i == len(group)-1
		}
	}

	return false
}

// atoi parses the longest leading integer prefix of s and clamps to the
// int32 range, like the C library function on common platforms.
func atoi(s string) int {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	n := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
		if n > math.MaxInt32 {
			n = math.MaxInt32 + 1
			break
		}
	}
	if neg {
		n = -n
	}

	return max(math.MinInt32, min(n, math.MaxInt32))
}
