package text

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain ascii unchanged", "Hello, world!", "Hello, world!"},
		{"tabs become five spaces", "a\tb", "a     b"},
		{"crlf collapses", "one\r\ntwo", "one\ntwo"},
		{"lone cr collapses", "one\rtwo", "one\ntwo"},
		{"form feed collapses", "one\ftwo", "one\ntwo"},
		{"vertical tab collapses", "one\vtwo", "one\ntwo"},
		{"outer whitespace trimmed", "  hi  \n", "hi"},
		{"umlaut transliterated", "über", "uber"},
		{"eszett transliterated", "Straße", "Strasse"},
		{"accents transliterated", "café", "cafe"},
		{"interior newlines kept", "a\n\nb", "a\n\nb"},
		{"unrepresentable dropped", "a\x00b", "ab"},
		{"empty stays empty", "", ""},
		{"whitespace only trims to empty", " \t \r\n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Hello, world!",
		"line one\nline two\n\nline four",
		"punctuation: !@#$%^&*()_+-=[]{};:'\",.<>/?",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

func TestNormalizeOutputInAlphabet(t *testing.T) {
	// Everything normalization emits must be renderable.
	in := "Grüße from 北京 — tabs\tand\rall\fthe\vrest\x01"
	out := Normalize(in)
	for _, r := range out {
		if r != '\n' && (r < ' ' || r > '~') {
			t.Fatalf("Normalize output contains unsupported rune %q in %q", r, out)
		}
	}
	if !strings.Contains(out, "Grusse") {
		t.Errorf("expected German transliteration in %q", out)
	}
}
