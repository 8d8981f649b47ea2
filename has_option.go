package argparser

import (
	"strings"

	"github.com/cardinalby/go-arg-parser/cmdargs"
)

// HasOption reports whether the option was specified before "--" in any of the forms:
// `-short`, `--long`, `--long=value` or as a part of joined short options cluster (`-rf`).
// An empty `short` or `long` means the option has no such form
func (p *Parser) HasOption(short, long string) (has bool) {
	if short == "" && long == "" {
		return false
	}
	p.mainTokens(func(token cmdargs.Token) bool {
		has = (short != "" && token.Arg == "-"+short) ||
			token.HasShort(short) ||
			(long != "" && isLongOption(token.Arg, long))
		return !has
	})
	return has
}

func isLongOption(arg, long string) bool {
	return arg == "--"+long || strings.HasPrefix(arg, "--"+long+"=")
}
