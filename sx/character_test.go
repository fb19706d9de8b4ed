package sx_test

import (
	"testing"

	"gscheme.dev/gscheme/sx"
)

func TestCharacterString(t *testing.T) {
	t.Parallel()

	cases := []struct {
		ch   sx.Character
		want string
	}{
		{' ', `#\space`},
		{'\n', `#\newline`},
		{'a', `#\a`},
	}
	for _, c := range cases {
		if got := c.ch.String(); got != c.want {
			t.Errorf("Character(%q).String() = %q, want %q", rune(c.ch), got, c.want)
		}
	}
}

func TestCharacterIsEqv(t *testing.T) {
	t.Parallel()

	if !sx.Character('a').IsEqv(sx.Character('a')) {
		t.Error("equal characters must be eqv")
	}
	if sx.Character('a').IsEqv(sx.Character('b')) {
		t.Error("different characters must not be eqv")
	}
}
