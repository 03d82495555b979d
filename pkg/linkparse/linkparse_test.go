package linkparse

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "empty",
			in:   "",
			want: []string{""},
		},
		{
			name: "just_one_delimiter",
			in:   ".",
			want: []string{"", ""},
		},
		{
			name: "just_two_delimiters",
			in:   "..",
			want: []string{"", "", ""},
		},
		{
			name: "one_elem",
			in:   "one",
			want: []string{"one"},
		},
		{
			name: "two_elem",
			in:   "one.two",
			want: []string{"one", "two"},
		},
		{
			name: "three_elem",
			in:   "one.two.three",
			want: []string{"one", "two", "three"},
		},
		{
			name: "escaped_delimiter",
			in:   `one\.two`,
			want: []string{"one.two"},
		},
		{
			name: "two_escaped_delimiters",
			in:   `one\.two\.three`,
			want: []string{"one.two.three"},
		},
		{
			name: "series_of_escaped_delimiters",
			in:   `one\.\.\.two\.\.three`,
			want: []string{"one...two..three"},
		},
		{
			name: "series_of_escaped_backslashes_and_delimiters",
			in:   `one\.\.\\.two\.\.\three`,
			want: []string{`one..\.two..\three`},
		},
		{
			name: "starts_with_delimiter",
			in:   ".two.three",
			want: []string{"", "two", "three"},
		},
		{
			name: "starts_with_escaped_delimiter",
			in:   `\..two.three`,
			want: []string{".", "two", "three"},
		},
		{
			name: "starts_with_two_delimiters",
			in:   "..three",
			want: []string{"", "", "three"},
		},
		{
			name: "ends_with_delimiter",
			in:   "one.two.",
			want: []string{"one", "two", ""},
		},
		{
			name: "ends_with_two_delimiters",
			in:   "one..",
			want: []string{"one", "", ""},
		},
		{
			name: "trailing_lone_backslash",
			in:   `one\`,
			want: []string{`one\`},
		},
		{
			name: "backslash_before_ordinary_char",
			in:   `one\two`,
			want: []string{`one\two`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplitDelim(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		delim byte
		want  []string
	}{
		{
			name:  "semicolon",
			in:    "a;b;c",
			delim: ';',
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "escaped_semicolon",
			in:    `a\;b;c`,
			delim: ';',
			want:  []string{"a;b", "c"},
		},
		{
			name:  "dot_is_ordinary_under_other_delim",
			in:    "a.b;c",
			delim: ';',
			want:  []string{"a.b", "c"},
		},
		{
			name:  "backslash_before_non_delim_stays",
			in:    `a\.b;c`,
			delim: ';',
			want:  []string{`a\.b`, "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitDelim(tt.in, tt.delim)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitDelim(%q, %q) = %q, want %q", tt.in, tt.delim, got, tt.want)
			}
		})
	}
}
