package argparser

import (
	"os"
)

// CommandLine is a default Parser over os.Args that is used by the package functions.
// It follows the same pattern as flag.CommandLine in the stdlib.
var CommandLine = New(os.Args)

// HasOption reports whether the option was passed to the program.
// See Parser.HasOption
func HasOption(short, long string) bool {
	return CommandLine.HasOption(short, long)
}

// Value collects the values of the option passed to the program.
// See Parser.Value
func Value(short, long string) OptionValue {
	return CommandLine.Value(short, long)
}

// Values collects the values of the option passed to the program.
// See Parser.Values
func Values(short, long string) []string {
	return CommandLine.Values(short, long)
}

// Arg returns the program argument at `index`, 0 is the program name.
// See Parser.Arg
func Arg(index int) (string, error) {
	return CommandLine.Arg(index)
}

// ExtraArgs returns the program arguments following "--"
func ExtraArgs() []string {
	return CommandLine.ExtraArgs()
}
