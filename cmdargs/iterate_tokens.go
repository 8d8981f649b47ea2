package cmdargs

// IterateTokens calls `yield` for each token in order until it returns false.
// The first Terminator is reported with RoleTerminator, all following tokens
// are reported as RoleExtra without classification.
func (args Args) IterateTokens(yield func(token Token) bool) {
	isExtra := false
	for i, arg := range args.Args {
		var token Token
		if isExtra {
			token = Token{
				Arg:  arg,
				Role: RoleExtra,
			}
		} else {
			token = Classify(arg)
			isExtra = token.Role == RoleTerminator
		}
		token.Index = i
		if !yield(token) {
			return
		}
	}
}
