package cmdargs

import "strings"

type Role int

func (r Role) Has(role Role) bool {
	return r&role != 0
}

const (
	RoleShort      Role = 1 << iota
	RoleLong            = 1 << iota
	RoleInline          = 1 << iota // modifies RoleLong
	RolePositional      = 1 << iota
	RoleTerminator      = 1 << iota
	RoleExtra           = 1 << iota
)

func (r Role) String() string {
	switch {
	case r.Has(RoleExtra):
		return "extra"
	case r.Has(RoleTerminator):
		return "terminator"
	case r.Has(RoleLong) && r.Has(RoleInline):
		return "long-inline"
	case r.Has(RoleLong):
		return "long"
	case r.Has(RoleShort):
		return "short"
	case r.Has(RolePositional):
		return "positional"
	default:
		return "unknown"
	}
}

type Token struct {
	Arg string
	// Index is the position of Arg in the original input
	Index int
	// Name is the option name without dashes and without inline value.
	// For a joined cluster (`-rf`) it's all the bundled characters
	Name        string
	InlineValue string
	// Role is sum of Role constants. Possible values:
	// RoleShort                // `-x` or joined cluster `-rf`
	// RoleLong                 // `--name`
	// RoleLong | RoleInline    // `--name=value`, contains InlineValue
	// RolePositional           // anything else, including "" and "-"
	// RoleTerminator           // the first "--"
	// RoleExtra                // any token after the terminator, never parsed
	Role Role
}

// IsCluster reports whether the token bundles several short options, e.g. `-rf`
func (t Token) IsCluster() bool {
	return t.Role.Has(RoleShort) && len(t.Name) > 1
}

// HasShort reports whether `short` is among the bundled characters of a short token.
// The check is done against the whole Arg so `-x` matches "x" as well as `-rxf` does.
func (t Token) HasShort(short string) bool {
	return short != "" && t.Role.Has(RoleShort) && strings.Contains(t.Arg, short)
}

// Classify determines the role of a single token that precedes the terminator
func Classify(arg string) Token {
	token := Token{
		Arg: arg,
	}
	switch {
	case arg == Terminator:
		token.Role = RoleTerminator
	case len(arg) < 2 || arg[0] != '-':
		token.Role = RolePositional
	case arg[1] == '-':
		token.Role = RoleLong
		name, value, hasValue := strings.Cut(arg[2:], "=")
		token.Name = name
		if hasValue {
			token.Role |= RoleInline
			token.InlineValue = value
		}
	default:
		token.Role = RoleShort
		token.Name = arg[1:]
	}
	return token
}
