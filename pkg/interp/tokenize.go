package interp

import "strings"

// Tokenize splits one raw input line into a command name and its argument
// tokens. The first whitespace-delimited token is the name, the rest are
// the args in original order. Runs of whitespace collapse, so no token is
// ever empty. There is no quoting or escaping of any kind.
//
// A blank or all-whitespace line yields name == "" and nil args; the loop
// treats that as a no-op cycle rather than a dispatch.
func Tokenize(line string) (name string, args []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}
