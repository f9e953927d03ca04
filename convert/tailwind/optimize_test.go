package tailwind

import (
	"slices"
	"testing"
)

func TestOptimize(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"empty", nil, []string{}},
		{"no spacing", []string{"flex", "items-center"}, []string{"flex", "items-center"}},
		{"vertical", []string{"pt-1", "pb-1"}, []string{"py-1"}},
		{"horizontal", []string{"pr-2", "pl-2"}, []string{"px-2"}},
		{"uniform", []string{"mt-2", "mr-2", "mb-2", "ml-2"}, []string{"m-2"}},
		{"single side", []string{"pt-1"}, []string{"pt-1"}},
		{"corner", []string{"pt-2", "pl-2"}, []string{"pt-2", "pl-2"}},
		{"three sides", []string{"pt-1", "pb-1", "pl-1"}, []string{"pt-1", "pb-1", "pl-1"}},
		{"duplicates", []string{"pt-1", "pt-1"}, []string{"pt-1"}},
		{"duplicates merged", []string{"pt-1", "pb-1", "pt-1"}, []string{"py-1"}},
		{"different values", []string{"pt-1", "pb-2"}, []string{"pt-1", "pb-2"}},
		{"families kept apart", []string{"pt-4", "mb-4", "pb-4", "mt-4"}, []string{"py-4", "my-4"}},
		{
			"groups go last",
			[]string{"pt-1", "flex", "pb-1", "mt-2", "mr-2", "mb-2", "ml-2", "text-sm"},
			[]string{"flex", "text-sm", "py-1", "m-2"},
		},
		{"arbitrary values", []string{"pt-[13px]", "pb-[13px]"}, []string{"py-[13px]"}},
		{"auto", []string{"ml-auto", "mr-auto"}, []string{"mx-auto"}},
		{"negative untouched", []string{"-mt-4", "-mb-4"}, []string{"-mt-4", "-mb-4"}},
		{"axis untouched", []string{"px-2", "pt-2"}, []string{"px-2", "pt-2"}},
		{"not spacing", []string{"pointer-events-none", "mb"}, []string{"pointer-events-none", "mb"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Optimize(tt.input); !slices.Equal(got, tt.expected) {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestApplyPrefix(t *testing.T) {
	opts := Options{UsePrefix: true, Prefix: "cv"}
	input := []string{"flex", "[display:grid]", "md:flex", "bg-blues-lights-30", "p-[1px 2px 3px]"}
	want := []string{"cv:flex", "[display:grid]", "md:flex", "cv:bg-blues-lights-30", "cv:p-[1px 2px 3px]"}

	once := ApplyPrefix(input, opts)
	if !slices.Equal(once, want) {
		t.Fatalf("expected %q, got %q", want, once)
	}
	if twice := ApplyPrefix(once, opts); !slices.Equal(twice, once) {
		t.Errorf("prefixing is not idempotent: %q", twice)
	}

	for _, o := range []Options{{}, {UsePrefix: true}, {Prefix: "cv"}} {
		if got := ApplyPrefix(input, o); !slices.Equal(got, input) {
			t.Errorf("%+v: expected no changes, got %q", o, got)
		}
	}
}

func TestFontClassName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"New/Paragraph/P3 Semibold", "paragraph-p3-semibold"},
		{"Heading/H1 Bold", "heading-h1-bold"},
		{"  Title   2 (Bold) ", "title-2-bold"},
		{"NEW-Display", "display"},
		{"new", "new"},
		{"Caption Small", "caption-small"},
		{"Über Schrift", "ber-schrift"},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := FontClassName(tt.input); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
