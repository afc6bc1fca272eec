package redact

import (
	"strings"
	"testing"
)

func TestRedactEmail(t *testing.T) {
	input := "Contact me at jane.doe+hotel@example.co.uk if you disagree"
	got := Redact(input)
	if strings.Contains(got, "jane.doe") {
		t.Error("email should be redacted")
	}
	if !strings.Contains(got, Placeholder) {
		t.Error("expected [REDACTED] replacement")
	}
}

func TestRedactPhone(t *testing.T) {
	tests := []string{
		"call me on +1 555-123-4567 please",
		"front desk (020) 7946 0958 never answered",
		"my number is 555.123.4567",
	}
	for _, input := range tests {
		got := Redact(input)
		if !strings.Contains(got, Placeholder) {
			t.Errorf("phone not redacted in %q: %q", input, got)
		}
	}
}

func TestRedactCardNumber(t *testing.T) {
	got := Redact("They charged 4111 1111 1111 1111 twice")
	if strings.Contains(got, "4111") {
		t.Errorf("card number should be redacted: %q", got)
	}
}

func TestRedactBookingReference(t *testing.T) {
	tests := []string{
		"booking ref: HX77312 was lost",
		"Confirmation #AB-99812 never arrived",
		"reservation number 1234567",
	}
	for _, input := range tests {
		got := Redact(input)
		if !strings.Contains(got, Placeholder) {
			t.Errorf("booking reference not redacted in %q: %q", input, got)
		}
	}
}

func TestRedactRoomNumber(t *testing.T) {
	got := Redact("Room 412 had a broken heater")
	if strings.Contains(got, "412") {
		t.Errorf("room number should be redacted: %q", got)
	}
}

func TestRedactNoFalsePositive(t *testing.T) {
	input := "The booking process was smooth, we stayed 3 nights and paid 120 euros. The room was spotless."
	got := Redact(input)
	if got != input {
		t.Errorf("plain review should not change:\n got: %s\nwant: %s", got, input)
	}
	if Changed(input) {
		t.Error("Changed should report false for plain review")
	}
}

func TestChanged(t *testing.T) {
	if !Changed("email me: guest@example.com") {
		t.Error("Changed should report true when an email is present")
	}
}
