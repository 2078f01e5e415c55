package crisis

import "testing"

func TestDetectEmergencyIsHighSeverity(t *testing.T) {
	d := NewKeywordDetector()
	verdict := d.Detect("I feel hopeless and want to die")

	if !verdict.HasCrisisContent {
		t.Fatal("expected crisis content")
	}
	if !verdict.IsEmergency {
		t.Fatal("expected emergency")
	}
	if verdict.Severity != SeverityHigh {
		t.Fatalf("expected high severity, got %s", verdict.Severity)
	}
}

func TestDetectKeywordsPreserveListOrder(t *testing.T) {
	d := NewKeywordDetector()
	verdict := d.Detect("I feel hopeless and want to die")

	// "want to die" precedes "hopeless" in the keyword list.
	want := []string{"want to die", "hopeless"}
	if len(verdict.Keywords) != len(want) {
		t.Fatalf("expected %d keywords, got %v", len(want), verdict.Keywords)
	}
	for i, kw := range want {
		if verdict.Keywords[i] != kw {
			t.Fatalf("keyword %d: got %q want %q", i, verdict.Keywords[i], kw)
		}
	}
}

func TestDetectCrisisWithoutEmergencyIsMedium(t *testing.T) {
	d := NewKeywordDetector()
	verdict := d.Detect("I'm having a panic attack right now")

	if !verdict.HasCrisisContent {
		t.Fatal("expected crisis content")
	}
	if verdict.IsEmergency {
		t.Fatal("did not expect emergency")
	}
	if verdict.Severity != SeverityMedium {
		t.Fatalf("expected medium severity, got %s", verdict.Severity)
	}
}

func TestDetectAnxiousIsMedium(t *testing.T) {
	d := NewKeywordDetector()
	verdict := d.Detect("I'm anxious about my exam")

	if verdict.Severity != SeverityMedium {
		t.Fatalf("expected medium severity, got %s", verdict.Severity)
	}
	if verdict.IsEmergency {
		t.Fatal("did not expect emergency")
	}
}

func TestDetectPlainMessageIsLow(t *testing.T) {
	d := NewKeywordDetector()
	verdict := d.Detect("I had a nice walk this morning")

	if verdict.HasCrisisContent || verdict.IsEmergency {
		t.Fatalf("unexpected verdict: %+v", verdict)
	}
	if verdict.Severity != SeverityLow {
		t.Fatalf("expected low severity, got %s", verdict.Severity)
	}
	if len(verdict.Keywords) != 0 {
		t.Fatalf("expected no keywords, got %v", verdict.Keywords)
	}
}

func TestDetectIsCaseInsensitive(t *testing.T) {
	d := NewKeywordDetector()
	if !d.Detect("I WANT TO DIE").IsEmergency {
		t.Fatal("expected emergency regardless of case")
	}
}

func TestDetectSubstringFalsePositiveIsIntentional(t *testing.T) {
	d := NewKeywordDetector()
	verdict := d.Detect("crisis averted, all good now")

	if !verdict.HasCrisisContent {
		t.Fatal("substring matching should flag embedded keywords")
	}
	if verdict.Severity != SeverityMedium {
		t.Fatalf("expected medium severity, got %s", verdict.Severity)
	}
}

func TestEmergencyKeywordsAreSubsetOfCrisis(t *testing.T) {
	crisis := make(map[string]bool, len(crisisKeywords))
	for _, kw := range crisisKeywords {
		crisis[kw] = true
	}
	for _, kw := range emergencyKeywords {
		if !crisis[kw] {
			t.Fatalf("emergency keyword %q missing from crisis list", kw)
		}
	}
}

func TestDetectIsDeterministic(t *testing.T) {
	d := NewKeywordDetector()
	first := d.Detect("feeling worthless and unsafe")
	second := d.Detect("feeling worthless and unsafe")

	if first.Severity != second.Severity || len(first.Keywords) != len(second.Keywords) {
		t.Fatalf("detector not deterministic: %+v vs %+v", first, second)
	}
}
