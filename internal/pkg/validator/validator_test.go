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

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00", "08:00", "17:30", "23:59"}
	invalid := []string{"24:00", "8:0", "08:60", "0800", "", "noon"}
	for _, ts := range valid {
		if !IsValidClockTime(ts) {
			t.Errorf("IsValidClockTime(%q) = false, want true", ts)
		}
	}
	for _, ts := range invalid {
		if IsValidClockTime(ts) {
			t.Errorf("IsValidClockTime(%q) = true, want false", ts)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-01-31"); !ok {
		t.Error(`IsValidDate("2025-01-31") = false, want true`)
	}
	for _, ds := range []string{"2025-13-01", "2025-1-1", "31-01-2025", ""} {
		if _, ok := IsValidDate(ds); ok {
			t.Errorf("IsValidDate(%q) = true, want false", ds)
		}
	}
}

func TestIsValidFraction(t *testing.T) {
	valid := []string{"0", "0.0", "0.85", "1", "1.0"}
	invalid := []string{"-0.1", "1.01", "85%", "", "abc"}
	for _, s := range valid {
		if !IsValidFraction(s) {
			t.Errorf("IsValidFraction(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidFraction(s) {
			t.Errorf("IsValidFraction(%q) = true, want false", s)
		}
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"admin", "jane.doe", "user_01", "a-b-c"}
	invalid := []string{"ab", "has space", "bad!char", ""}
	for _, u := range valid {
		if !IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = false, want true", u)
		}
	}
	for _, u := range invalid {
		if IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = true, want false", u)
		}
	}
}
