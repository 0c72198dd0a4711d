package contract

import "testing"

func TestValidSeverity(t *testing.T) {
	for _, s := range []Severity{SeverityNone, SeverityLow, SeverityMedium, SeverityHigh} {
		if !ValidSeverity(s) {
			t.Errorf("ValidSeverity(%q) = false", s)
		}
	}
	if ValidSeverity("critical") {
		t.Error("ValidSeverity should reject unknown tiers")
	}
}

func TestValidSource(t *testing.T) {
	for _, s := range []Source{SourceClause, SourceInsight, SourceRedline, SourceSearch, SourceOCR} {
		if !ValidSource(s) {
			t.Errorf("ValidSource(%q) = false", s)
		}
	}
	if ValidSource("manual") {
		t.Error("ValidSource should reject unknown sources")
	}
	if ValidSource("") {
		t.Error("ValidSource should reject the empty source")
	}
}

func TestIndex_ByAnchor(t *testing.T) {
	ix := NewIndex()

	clause, ok := ix.ByAnchor("clause-5-service-levels")
	if !ok {
		t.Fatal("clause-5-service-levels not found")
	}
	if clause.Type != TypeServiceLevels {
		t.Errorf("Type = %q, want Service Levels", clause.Type)
	}

	if _, ok := ix.ByAnchor("clause-99"); ok {
		t.Error("unknown anchor should not resolve")
	}
}

func TestIndex_DocumentOrder(t *testing.T) {
	ix := NewIndex()

	want := []string{
		"clause-2-term",
		"clause-5-service-levels",
		"clause-4-payment",
		"clause-8-liability",
		"clause-12-governing-law",
	}

	all := ix.All()
	if len(all) != len(want) {
		t.Fatalf("Len = %d, want %d", len(all), len(want))
	}
	for i, id := range want {
		if all[i].ID != id {
			t.Errorf("All()[%d].ID = %q, want %q", i, all[i].ID, id)
		}
	}
}

func TestIndex_Types(t *testing.T) {
	types := NewIndex().Types()
	if len(types) != 5 {
		t.Fatalf("len(types) = %d, want 5", len(types))
	}
	if types[0] != TypeTerm {
		t.Errorf("types[0] = %q, want Term (document order)", types[0])
	}
}

func TestIndex_TypesDeduplicates(t *testing.T) {
	ix := NewIndexFor([]Clause{
		{ID: "a", Type: TypePayment},
		{ID: "b", Type: TypePayment},
		{ID: "c", Type: TypeLiability},
	})

	types := ix.Types()
	if len(types) != 2 {
		t.Errorf("len(types) = %d, want 2", len(types))
	}
}
