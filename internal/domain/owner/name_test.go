package owner

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"  John Smith ": "john smith",
		"PRINCE":        "prince",
		"":              "",
		"\tMary Ann\n":  "mary ann",
	}
	for input, want := range cases {
		if got := Normalize(input); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestMask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "two tokens", input: "john smith", want: "john s."},
		{name: "single token", input: "prince", want: "prince"},
		{name: "middle name dropped", input: "mary ann jones", want: "mary j."},
		{name: "extra whitespace", input: "  john   smith ", want: "john s."},
		{name: "multibyte initial", input: "jose ñunez", want: "jose ñ."},
		{name: "empty", input: "", want: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Mask(tc.input, true); got != tc.want {
				t.Fatalf("Mask(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestMask_Disabled(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"john smith", "prince", " Odd  Spacing ", ""} {
		if got := Mask(input, false); got != input {
			t.Fatalf("Mask(%q, false) = %q, want identity", input, got)
		}
	}
}

func TestMask_Idempotent(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"john smith", "mary ann jones", "a b", "jose ñunez"} {
		once := Mask(input, true)
		if twice := Mask(once, true); twice != once {
			t.Fatalf("Mask not idempotent for %q: once=%q twice=%q", input, once, twice)
		}
	}
}

func TestDisplay(t *testing.T) {
	t.Parallel()

	if got := Display(" John SMITH ", true); got != "john s." {
		t.Fatalf("unexpected safe display: %q", got)
	}
	if got := Display(" John SMITH ", false); got != "john smith" {
		t.Fatalf("unexpected display: %q", got)
	}
}
