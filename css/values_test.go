package css

import (
	"slices"
	"testing"
)

func TestVarClassName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"var(--Blues-Lights-30, #D0DCF0)", "blues-lights-30"},
		{"var(--Secondary_Blue_100)", "secondary-blue-100"},
		{"#D0DCF0", "#D0DCF0"},
		{"linear-gradient(var(--A, #fff), var(--B))", "linear-gradient(a, b)"},
		{"var(--broken", "var(--broken"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := VarClassName(tt.input); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestVarFallback(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"var(--S, 0.25rem)", "0.25rem"},
		{"var(--S,0.25rem)", "0.25rem"},
		{"var(--S)", "var(--S)"},
		{"0.25rem", "0.25rem"},
		{"calc(var(--S, 1rem) + 2px)", "calc(1rem + 2px)"},
		{"var(--a, var(--b, 1rem))", "1rem"},
		{"var(--S, 0.25rem", "var(--S, 0.25rem"},
		{"var(--S, )", "var(--S, )"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := VarFallback(tt.input); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestHasVar(t *testing.T) {
	if !HasVar("var(--x)") {
		t.Error("expected var reference")
	}
	if HasVar("#fff") {
		t.Error("unexpected var reference")
	}
}

func TestSplitValues(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"1rem", []string{"1rem"}},
		{"  1rem   2rem ", []string{"1rem", "2rem"}},
		{"var(--XS, 0.125rem) var(--Edge, 0.375rem)", []string{"var(--XS, 0.125rem)", "var(--Edge, 0.375rem)"}},
		{"0 0 0 1px rgba(0, 0, 0, 0.5)", []string{"0", "0", "0", "1px", "rgba(0, 0, 0, 0.5)"}},
		{"a) b", []string{"a)", "b"}},
		{"calc(1px + (2px * 3)) 4px", []string{"calc(1px + (2px * 3))", "4px"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := SplitValues(tt.input); !slices.Equal(got, tt.want) {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList("to right, rgba(0, 0, 0, 0.5) 10%, var(--B, #fff)")
	want := []string{"to right", "rgba(0, 0, 0, 0.5) 10%", "var(--B, #fff)"}
	if !slices.Equal(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestParseFunction(t *testing.T) {
	tests := []struct {
		input string
		name  string
		args  string
		ok    bool
	}{
		{"blur(4px)", "blur", "4px", true},
		{"translateX( -50% )", "translatex", "-50%", true},
		{"rgba(0, 0, 0, 0.5)", "rgba", "0, 0, 0, 0.5", true},
		{"4px", "", "", false},
		{"(4px)", "", "", false},
		{"blur(4px", "", "", false},
		{"a b(1)", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			name, args, ok := ParseFunction(tt.input)
			if ok != tt.ok || name != tt.name || args != tt.args {
				t.Errorf("expected (%q, %q, %v), got (%q, %q, %v)", tt.name, tt.args, tt.ok, name, args, ok)
			}
		})
	}
}
