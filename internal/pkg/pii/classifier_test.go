package pii

import (
	"reflect"
	"testing"
)

func TestClassifyEmailAlwaysHigh(t *testing.T) {
	texts := []string{
		"reach me at foo@bar.com",
		"john.smith@example.com",
		"forwarded from admin@club-mail.co.uk yesterday",
	}
	for _, text := range texts {
		result := Classify(text)
		if !result.HasPII {
			t.Errorf("Classify(%q).HasPII = false, want true", text)
		}
		if !contains(result.DetectedTypes, TypeEmail) {
			t.Errorf("Classify(%q) did not detect %s", text, TypeEmail)
		}
		if result.Confidence != ConfidenceHigh {
			t.Errorf("Classify(%q).Confidence = %s, want %s", text, result.Confidence, ConfidenceHigh)
		}
	}
}

func TestClassifyPhoneIsHigh(t *testing.T) {
	result := Classify("call 0171-555-1234 if it happens again")
	if !result.HasPII {
		t.Fatal("HasPII = false, want true")
	}
	if !contains(result.DetectedTypes, TypePhone) {
		t.Errorf("DetectedTypes = %v, want %s detected", result.DetectedTypes, TypePhone)
	}
	if result.Confidence != ConfidenceHigh {
		t.Errorf("Confidence = %s, want %s", result.Confidence, ConfidenceHigh)
	}
}

func TestClassifyNoMatches(t *testing.T) {
	texts := []string{
		"",
		"nothing to see here",
		"the gate was left open during teardown",
	}
	for _, text := range texts {
		result := Classify(text)
		if result.HasPII {
			t.Errorf("Classify(%q).HasPII = true, want false", text)
		}
		if len(result.DetectedTypes) != 0 {
			t.Errorf("Classify(%q).DetectedTypes = %v, want empty", text, result.DetectedTypes)
		}
		if result.Confidence != ConfidenceLow {
			t.Errorf("Classify(%q).Confidence = %s, want %s", text, result.Confidence, ConfidenceLow)
		}
	}
}

func TestClassifySingleNameIsMedium(t *testing.T) {
	result := Classify("reported by John Smith")
	if !result.HasPII {
		t.Fatal("HasPII = false, want true")
	}
	if !reflect.DeepEqual(result.DetectedTypes, []string{TypePotentialName}) {
		t.Errorf("DetectedTypes = %v, want [%s]", result.DetectedTypes, TypePotentialName)
	}
	if result.Confidence != ConfidenceMedium {
		t.Errorf("Confidence = %s, want %s", result.Confidence, ConfidenceMedium)
	}
}

func TestClassifyThreeMatchesIsHigh(t *testing.T) {
	// Three name matches, no email or phone: the total alone pushes it high.
	result := Classify("John Smith met Mary Jones and Bob Brown")
	if !reflect.DeepEqual(result.DetectedTypes, []string{TypePotentialName}) {
		t.Errorf("DetectedTypes = %v, want [%s]", result.DetectedTypes, TypePotentialName)
	}
	if result.Confidence != ConfidenceHigh {
		t.Errorf("Confidence = %s, want %s", result.Confidence, ConfidenceHigh)
	}
}

func TestClassifyIncidentExample(t *testing.T) {
	result := Classify("Contact John Smith at john.smith@example.com, DOB 14/03/1990")
	if !result.HasPII {
		t.Fatal("HasPII = false, want true")
	}
	if !contains(result.DetectedTypes, TypeEmail) {
		t.Errorf("DetectedTypes = %v, want %s detected", result.DetectedTypes, TypeEmail)
	}
	if !contains(result.DetectedTypes, TypeDateOfBirth) {
		t.Errorf("DetectedTypes = %v, want %s detected", result.DetectedTypes, TypeDateOfBirth)
	}
	if result.Confidence != ConfidenceHigh {
		t.Errorf("Confidence = %s, want %s", result.Confidence, ConfidenceHigh)
	}
}

func TestClassifyTagOrderIsEvaluationOrder(t *testing.T) {
	// The name appears before the email in the input; tags still come out in
	// rule order.
	result := Classify("John Smith john@x.com")
	want := []string{TypeEmail, TypePotentialName}
	if !reflect.DeepEqual(result.DetectedTypes, want) {
		t.Errorf("DetectedTypes = %v, want %v", result.DetectedTypes, want)
	}

	result = Classify("ID 12345678901")
	want = []string{TypePhone, TypeNationalID}
	if !reflect.DeepEqual(result.DetectedTypes, want) {
		t.Errorf("DetectedTypes = %v, want %v", result.DetectedTypes, want)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	text := "Frau Schneider, wohnhaft 22 Garden Street, 10115, card 4111 1111 1111 1111"
	first := Classify(text)
	second := Classify(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Classify not deterministic: %+v vs %+v", first, second)
	}
	if !first.HasPII {
		t.Error("HasPII = false, want true")
	}
}

func TestWarningMessage(t *testing.T) {
	if msg := WarningMessage(Result{}); msg != "" {
		t.Errorf("WarningMessage(no PII) = %q, want empty", msg)
	}

	result := Classify("mail foo@bar.com")
	msg := WarningMessage(result)
	if msg == "" {
		t.Fatal("WarningMessage = empty, want warning text")
	}
}
