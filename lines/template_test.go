package lines

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderTemplate(t *testing.T) {
	testCases := []struct {
		name     string
		template string
		params   Params
		expected string
	}{
		{
			name:     "no params returns template verbatim",
			template: "value is {not substituted}",
			params:   nil,
			expected: "value is {not substituted}",
		},
		{
			name:     "named placeholders",
			template: "{greeting}, {name}!",
			params:   Params{"greeting": "Hello", "name": "World"},
			expected: "Hello, World!",
		},
		{
			name:     "same placeholder twice",
			template: "{x} and {x}",
			params:   Params{"x": 1},
			expected: "1 and 1",
		},
		{
			name:     "format spec passes through to fmt",
			template: "[{percent:.2f}%] {count:04d}",
			params:   Params{"percent": 12.5, "count": 7},
			expected: "[12.50%] 0007",
		},
		{
			name:     "doubled braces are literals",
			template: "{{literal}} {value}",
			params:   Params{"value": "x"},
			expected: "{literal} x",
		},
		{
			name:     "unterminated placeholder kept as-is",
			template: "stuck {here",
			params:   Params{"here": "nope"},
			expected: "stuck {here",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			rendered, err := renderTemplate(testCase.template, testCase.params)
			require.NoError(t, err)
			require.Equal(t, testCase.expected, rendered)
		})
	}
}

func TestRenderTemplateMissingParam(t *testing.T) {
	_, err := renderTemplate("{present} {absent}", Params{"present": 1})
	require.ErrorIs(t, err, ErrMissingParam)
	require.Contains(t, err.Error(), "absent")
}
