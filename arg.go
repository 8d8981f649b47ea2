package argparser

import (
	"errors"
	"fmt"
)

var ErrIndexOutOfRange = errors.New("argument index out of range")

// Arg returns the argument at `index` among the arguments preceding "--".
// Negative `index` counts from the end: -1 is the last argument.
// It's the only query that fails: ErrIndexOutOfRange is returned if there is no such argument
func (p *Parser) Arg(index int) (string, error) {
	resolved := index
	if index < 0 {
		resolved = len(p.main) + index
	}
	if resolved < 0 || resolved >= len(p.main) {
		return "", fmt.Errorf("%w: %d, have %d arguments", ErrIndexOutOfRange, index, len(p.main))
	}
	return p.main[resolved], nil
}
