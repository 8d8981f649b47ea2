package argparser

import (
	"slices"

	"github.com/cardinalby/go-arg-parser/cmdargs"
)

// Parser answers queries about a raw argument list, typically os.Args.
// Everything after the first "--" is not parsed and is available via ExtraArgs.
// Parser never changes after New, so it's safe for concurrent use.
type Parser struct {
	args       []string
	main       []string
	extra      []string
	terminated bool
}

// New creates a Parser over a copy of `args`. By convention args[0] is the program name
// and takes part in index lookups as index 0.
func New(args []string) *Parser {
	p := &Parser{
		args: slices.Clone(args),
	}
	p.main, p.extra, p.terminated = cmdargs.Split(p.args)
	return p
}

// Args returns the tokens preceding the first "--"
func (p *Parser) Args() []string {
	return slices.Clone(p.main)
}

// ExtraArgs returns the tokens following the first "--" in the original order.
// The result is empty if there was no "--"
func (p *Parser) ExtraArgs() []string {
	res := make([]string, len(p.extra))
	copy(res, p.extra)
	return res
}

// HasTerminator reports whether "--" was present
func (p *Parser) HasTerminator() bool {
	return p.terminated
}

// Tokens calls `yield` for each classified token of the whole input until it returns false
func (p *Parser) Tokens(yield func(token cmdargs.Token) bool) {
	cmdargs.NewArgs(p.args).IterateTokens(yield)
}

// mainTokens iterates over the classified tokens of the main segment only
func (p *Parser) mainTokens(yield func(token cmdargs.Token) bool) {
	cmdargs.NewArgs(p.main).IterateTokens(yield)
}
