// Package flagx lets several components read their own flags from os.Args
// without tripping over each other's definitions.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs keeps only the flags listed in allowed, together with their values.
//
// Accepted forms are "-flag value" and "-flag=value". Flags listed in
// boolFlags never consume the following argument, so "-m -a :80" keeps
// "-m" alone; use "-m=false" to switch such a flag off.
func FilterArgs(args []string, allowed []string, boolFlags ...string) []string {
	known := make(map[string]bool, len(allowed))
	for _, f := range allowed {
		known[f] = false
	}
	for _, f := range boolFlags {
		if _, ok := known[f]; ok {
			known[f] = true
		}
	}

	out := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, found := strings.Cut(arg, "="); found && strings.HasPrefix(arg, "-") {
			if _, ok := known[name]; ok {
				out = append(out, arg)
			}
			continue
		}

		isBool, ok := known[arg]
		if !ok {
			continue
		}
		out = append(out, arg)

		if !isBool && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}

	return out
}

// ConfigFilePath returns the JSON config path given with -c or -config,
// or "" when neither is present.
func ConfigFilePath() string {
	var path string

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "Path to config file")
	fs.StringVar(&path, "c", "", "Path to config file (short)")
	_ = fs.Parse(FilterArgs(os.Args[1:], []string{"-c", "-config"}))

	return path
}
