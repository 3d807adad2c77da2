// Package options turns find-style arguments into a filter configuration.
package options

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/taigrr/gofind/internal/filter"
	"github.com/taigrr/gofind/internal/types"
)

// Usage is printed when no start path is given.
const Usage = "Usage: find <path> [-name <pattern> | -iname <pattern>] [-type f|d]"

// Result is the outcome of parsing the arguments that follow the start path.
type Result struct {
	Config types.FilterConfig
	// Diagnostics are non-fatal complaints, one line each, meant for stderr.
	Diagnostics []string
}

// Parse scans args left to right. -name, -iname and -type each consume the
// next argument; the last occurrence of each wins. A flag in last position
// has no value and is ignored, as is any unrecognized argument. An invalid
// -type value produces a diagnostic and leaves the type constraint as it was.
func Parse(args []string) Result {
	var res Result

	for i := 0; i < len(args); i++ {
		if i+1 >= len(args) {
			break
		}

		switch args[i] {
		case "-name":
			res.Config.NamePattern = []byte(args[i+1])
			i++
		case "-iname":
			res.Config.INamePattern = []byte(filter.Fold(args[i+1]))
			i++
		case "-type":
			if t, ok := types.ParseTypeFilter(args[i+1]); ok {
				res.Config.Type = t
			} else {
				res.Diagnostics = append(res.Diagnostics,
					fmt.Sprintf("find: invalid argument to '-type': %s", args[i+1]))
			}
			i++
		}
	}

	return res
}

// FromParams builds a filter configuration from structured parameters, as
// received by the MCP tool. Unlike Parse, an invalid type is an error.
func FromParams(p types.FindParams) (types.FilterConfig, error) {
	var cfg types.FilterConfig

	if p.Name != "" {
		cfg.NamePattern = []byte(p.Name)
	}
	if p.IName != "" {
		cfg.INamePattern = []byte(filter.Fold(p.IName))
	}
	if p.Type != "" {
		t, ok := types.ParseTypeFilter(p.Type)
		if !ok {
			return types.FilterConfig{}, errors.Newf("invalid type %q: want \"f\" or \"d\"", p.Type)
		}
		cfg.Type = t
	}

	return cfg, nil
}
