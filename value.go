package argparser

import (
	"strings"
)

// OptionValue holds the values collected for an option in order of appearance.
// Zero values means the option has no value, one value is a scalar option, more values
// are a repeated option
type OptionValue []string

func (v OptionValue) IsSet() bool {
	return len(v) > 0
}

func (v OptionValue) IsMultiple() bool {
	return len(v) > 1
}

// Single returns the value if exactly one value was collected
func (v OptionValue) Single() (string, bool) {
	if len(v) != 1 {
		return "", false
	}
	return v[0], true
}

func (v OptionValue) Strings() []string {
	return v
}

func (v OptionValue) String() string {
	return strings.Join(v, " ")
}

// Value collects the values of the option specified before "--" as `-short value` or
// `--long=value`, in order of appearance. The value of `--long=a=b` is "a=b".
// `-short` followed by another option or by nothing has no value and is skipped.
// An empty `short` or `long` means the option has no such form
func (p *Parser) Value(short, long string) (res OptionValue) {
	shortArg := "-" + short
	longPrefix := "--" + long + "="
	for i := 0; i < len(p.main); i++ {
		arg := p.main[i]
		if short != "" && arg == shortArg && i+1 < len(p.main) && !strings.HasPrefix(p.main[i+1], "-") {
			i++
			res = append(res, p.main[i])
		} else if long != "" && strings.HasPrefix(arg, longPrefix) {
			_, value, _ := strings.Cut(arg, "=")
			res = append(res, value)
		}
	}
	return res
}

// Values is like Value but always returns a slice. It's nil if there are no values
func (p *Parser) Values(short, long string) []string {
	return p.Value(short, long).Strings()
}
