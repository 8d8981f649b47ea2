package cmdargs

import "slices"

// Terminator is the token that ends options. Everything after it is an extra argument.
const Terminator = "--"

type Args struct {
	Args []string
}

func NewArgs(args []string) Args {
	return Args{
		Args: args,
	}
}

// Main returns the tokens preceding the first Terminator
func (args Args) Main() []string {
	main, _, _ := Split(args.Args)
	return main
}

// Extra returns the tokens following the first Terminator
func (args Args) Extra() []string {
	_, extra, _ := Split(args.Args)
	return extra
}

// Split cuts `args` at the first Terminator. The terminator itself belongs to neither part,
// `terminated` reports whether it was present.
// Returned slices share the backing array with `args`.
func Split(args []string) (main, extra []string, terminated bool) {
	i := slices.Index(args, Terminator)
	if i < 0 {
		return args, nil, false
	}
	return args[:i], args[i+1:], true
}
