package scripthx

import (
	"strings"

	"github.com/me/takt/internal/schedule"
)

// Resolve turns a heuristic spec into a dispatch strategy. A spec of
// the form "js:<expr>" compiles the expression; anything else is a
// built-in heuristic name. The returned check func reports runtime
// errors after a solve (always nil for built-ins).
func Resolve(spec string) (schedule.Heuristic, func() error, error) {
	if expr, ok := strings.CutPrefix(spec, "js:"); ok {
		c, err := Compile(expr)
		if err != nil {
			return nil, nil, err
		}
		return c.Heuristic(), c.Err, nil
	}
	h, err := schedule.ByName(spec)
	if err != nil {
		return nil, nil, err
	}
	return h, func() error { return nil }, nil
}
