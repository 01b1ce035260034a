package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTokenization(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		spec string
		want Rules
	}{
		{name: "empty", spec: "", want: Rules{}},
		{name: "blank", spec: "   ", want: Rules{}},
		{name: "single", spec: "app", want: Rules{{Pattern: "app"}}},
		{name: "single trimmed", spec: "\tapp\n", want: Rules{{Pattern: "app"}}},
		{name: "spaces", spec: "a  b", want: Rules{{Pattern: "a"}, {Pattern: "b"}}},
		{name: "commas", spec: "a,,b,", want: Rules{{Pattern: "a"}, {Pattern: "b"}}},
		{name: "commas trimmed", spec: "a,\tb", want: Rules{{Pattern: "a"}, {Pattern: "b"}}},
		{
			name: "space wins over comma",
			spec: "a,b c",
			want: Rules{{Pattern: "a,b"}, {Pattern: "c"}},
		},
		{
			name: "negations and wildcards",
			spec: "*,-secret,-db:*",
			want: Rules{{Pattern: "*"}, {Negate: true, Pattern: "secret"}, {Negate: true, Pattern: "db:*"}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Parse(tc.spec))
		})
	}
}

func TestMatchPrecedence(t *testing.T) {
	t.Parallel()

	rules := Rules{{Negate: true, Pattern: "b"}, {Pattern: "a"}, {Pattern: "b"}}
	assert.False(t, rules.Match("b"), "negation must win over an explicit inclusion")
	assert.True(t, rules.Match("a"))

	assert.False(t, Match("b -b", "b"), "negation wins regardless of token order")
}

func TestMatchSemantics(t *testing.T) {
	t.Parallel()

	cases := []struct {
		spec  string
		label string
		want  bool
	}{
		{spec: "foo*", label: "foo", want: true},
		{spec: "foo*", label: "foobar", want: true},
		{spec: "foo*", label: "fo", want: false},
		{spec: "foo*", label: "xfoo", want: false},
		{spec: "foo", label: "foo", want: true},
		{spec: "foo", label: "foobar", want: false},
		{spec: "foo", label: "fo", want: false},
		{spec: "*", label: "anything", want: true},
		{spec: "*", label: "", want: true},
		{spec: "*,-secret", label: "secret", want: false},
		{spec: "*,-secret", label: "secretive", want: true},
		{spec: "*,-secret*", label: "secretive", want: false},
		{spec: "* -*", label: "app", want: false},
		{spec: "app:*", label: "app:db:query", want: true},
		{spec: "app:* -app:db*", label: "app:db:query", want: false},
		{spec: "app:* -app:db*", label: "app:http", want: true},
		{spec: "-secret", label: "public", want: false},
		{spec: "-foo*", label: "-foox", want: false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Match(tc.spec, tc.label), "spec %q label %q", tc.spec, tc.label)
	}
}

func TestDefaultDeny(t *testing.T) {
	t.Parallel()

	for _, spec := range []string{"", " ", ",", ",,"} {
		rules := Parse(spec)
		require.True(t, rules.Empty(), "spec %q", spec)
		for _, label := range []string{"", "a", "app:db", "*"} {
			assert.False(t, rules.Match(label), "spec %q label %q", spec, label)
		}
	}
}

func TestRulesString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a -b c*", Parse("a,-b,c*").String())
	assert.Equal(t, "", Parse("").String())
}

func FuzzParseMatch(f *testing.F) {
	f.Add("a b", "a")
	f.Add("*,-secret", "secret")
	f.Add("-x*", "xy")
	f.Fuzz(func(t *testing.T, spec, label string) {
		rules := Parse(spec)
		for _, r := range rules {
			if r.Negate && r.Match(label) && rules.Match(label) {
				t.Fatalf("excluded label %q matched spec %q", label, spec)
			}
		}
		if rules.Empty() && rules.Match(label) {
			t.Fatalf("empty rules matched %q", label)
		}
	})
}
