package ansi

import "testing"

func TestColorizeWrapsAndResets(t *testing.T) {
	got := Colorize(197, "db:query")
	want := "\x1b[1;38;5;197mdb:query\x1b[0m"
	if got != want {
		t.Fatalf("colorize mismatch: got %q want %q", got, want)
	}
	if Foreground256(0) != "\x1b[1;38;5;0m" {
		t.Fatalf("unexpected foreground sequence %q", Foreground256(0))
	}
}

func TestStripRemovesEscapes(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "plain"},
		{in: Colorize(20, "label") + " msg", want: "label msg"},
		{in: Bold + "bold" + Reset, want: "bold"},
		{in: "trailing\x1b[", want: "trailing"},
		{in: "lone \x1b escape stays intact", want: "lone \x1b escape stays intact"},
	}
	for _, tc := range cases {
		if got := Strip(tc.in); got != tc.want {
			t.Fatalf("Strip(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
