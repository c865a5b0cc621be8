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

func TestIsValidInviteToken(t *testing.T) {
	valid := []string{
		"9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08",
		"0000000000000000000000000000000000000000000000000000000000000000",
	}
	invalid := []string{
		"9F86D081884C7D659A2FEAA0C55AD015A3BF4F1B2B0B822CD15D6C15B0F00A08", // uppercase
		"9f86d081884c7d659a2feaa0c55ad015",                                 // too short
		"zz86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08", // invalid hex
		"",
	}
	for _, token := range valid {
		if !IsValidInviteToken(token) {
			t.Errorf("IsValidInviteToken(%q) = false, want true", token)
		}
	}
	for _, token := range invalid {
		if IsValidInviteToken(token) {
			t.Errorf("IsValidInviteToken(%q) = true, want false", token)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	if !IsNumeric("01234") {
		t.Error("IsNumeric(\"01234\") = false, want true")
	}
	if IsNumeric("12a4") {
		t.Error("IsNumeric(\"12a4\") = true, want false")
	}
	if IsNumeric("") {
		t.Error("IsNumeric(\"\") = true, want false")
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-06-15"); !ok {
		t.Error("IsValidDate(\"2024-06-15\") = false, want true")
	}
	if _, ok := IsValidDate("15/06/2024"); ok {
		t.Error("IsValidDate(\"15/06/2024\") = true, want false")
	}
}

func TestIsInSlice(t *testing.T) {
	roles := []string{"organizer", "team_member"}
	if !IsInSlice("organizer", roles) {
		t.Error("IsInSlice(\"organizer\") = false, want true")
	}
	if IsInSlice("admin", roles) {
		t.Error("IsInSlice(\"admin\") = true, want false")
	}
}
