package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "01-01-2023", "2023/01/01", "", "yesterday"}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsClockAbsent(t *testing.T) {
	absent := []string{"", "   ", "--:-- --", "  --:-- --  "}
	present := []string{"08:15 AM", "05:30 PM", "garbage"}
	for _, s := range absent {
		if !IsClockAbsent(s) {
			t.Errorf("IsClockAbsent(%q) = false, want true", s)
		}
	}
	for _, s := range present {
		if IsClockAbsent(s) {
			t.Errorf("IsClockAbsent(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"csv", "xlsx"}
	if !IsInSlice("csv", slice) {
		t.Error("IsInSlice(csv) = false, want true")
	}
	if IsInSlice("pdf", slice) {
		t.Error("IsInSlice(pdf) = true, want false")
	}
}
