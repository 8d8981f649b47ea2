package cmdargs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func collectTokens(args []string) []Token {
	var res []Token
	NewArgs(args).IterateTokens(func(token Token) bool {
		res = append(res, token)
		return true
	})
	return res
}

func TestArgs_IterateTokens(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		args     []string
		expected []Token
	}{
		{
			name:     "empty",
			args:     []string{},
			expected: nil,
		},
		{
			name: "options and positionals",
			args: []string{"script", "-a", "abc", "--long", "--x=4", "-rf"},
			expected: []Token{
				{Arg: "script", Index: 0, Role: RolePositional},
				{Arg: "-a", Index: 1, Name: "a", Role: RoleShort},
				{Arg: "abc", Index: 2, Role: RolePositional},
				{Arg: "--long", Index: 3, Name: "long", Role: RoleLong},
				{Arg: "--x=4", Index: 4, Name: "x", InlineValue: "4", Role: RoleLong | RoleInline},
				{Arg: "-rf", Index: 5, Name: "rf", Role: RoleShort},
			},
		},
		{
			name: "terminator",
			args: []string{"-f", "--", "--abc", "--", "-x"},
			expected: []Token{
				{Arg: "-f", Index: 0, Name: "f", Role: RoleShort},
				{Arg: "--", Index: 1, Role: RoleTerminator},
				{Arg: "--abc", Index: 2, Role: RoleExtra},
				{Arg: "--", Index: 3, Role: RoleExtra},
				{Arg: "-x", Index: 4, Role: RoleExtra},
			},
		},
		{
			name: "short tokens",
			args: []string{"-", "", "x"},
			expected: []Token{
				{Arg: "-", Index: 0, Role: RolePositional},
				{Arg: "", Index: 1, Role: RolePositional},
				{Arg: "x", Index: 2, Role: RolePositional},
			},
		},
		{
			name: "inline value with equals signs",
			args: []string{"--name=a=b", "--empty="},
			expected: []Token{
				{Arg: "--name=a=b", Index: 0, Name: "name", InlineValue: "a=b", Role: RoleLong | RoleInline},
				{Arg: "--empty=", Index: 1, Name: "empty", Role: RoleLong | RoleInline},
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, collectTokens(tc.args))
		})
	}
}

func TestArgs_IterateTokens_Stop(t *testing.T) {
	t.Parallel()

	var seen []string
	NewArgs([]string{"-a", "b", "--c"}).IterateTokens(func(token Token) bool {
		seen = append(seen, token.Arg)
		return token.Arg != "b"
	})
	require.Equal(t, []string{"-a", "b"}, seen)
}
