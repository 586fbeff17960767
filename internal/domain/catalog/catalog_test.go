package catalog

import (
	"strings"
	"testing"
)

func TestValidate_TablesComplete(t *testing.T) {
	c := New()
	if err := c.Validate(); err != nil {
		t.Fatalf("catalog incomplete: %v", err)
	}
}

func TestCandidates_KnownCombination(t *testing.T) {
	c := New()
	meds := c.Candidates(CategoryFever, TierModerate, AgeAdult)
	if len(meds) == 0 {
		t.Fatal("expected fever/moderate/adult candidates")
	}
	if !strings.Contains(strings.ToLower(meds[0].Name), "paracetamol") {
		t.Errorf("expected paracetamol first, got %s", meds[0].Name)
	}
	for _, m := range meds {
		if m.Dosage == "" || m.MaxDaily == "" || m.Source == "" {
			t.Errorf("candidate %s missing dosage/max/source", m.Name)
		}
	}
}

func TestCandidates_MissingCombination(t *testing.T) {
	c := New()
	if meds := c.Candidates("unknown_category", TierMild, AgeAdult); len(meds) != 0 {
		t.Errorf("expected no candidates for unknown category, got %d", len(meds))
	}
}

func TestCandidates_ReturnsCopies(t *testing.T) {
	c := New()
	first := c.Candidates(CategoryHeadache, TierMild, AgeAdult)
	if len(first) == 0 {
		t.Fatal("expected headache/mild/adult candidates")
	}
	first[0].Name = "mutated"
	again := c.Candidates(CategoryHeadache, TierMild, AgeAdult)
	if again[0].Name == "mutated" {
		t.Error("catalog state leaked through returned slice")
	}
}

func TestCandidates_OrderStable(t *testing.T) {
	c := New()
	a := c.Candidates(CategoryAllergy, TierModerate, AgeAdult)
	b := c.Candidates(CategoryAllergy, TierModerate, AgeAdult)
	if len(a) != len(b) {
		t.Fatalf("lookup not stable: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Name != b[i].Name {
			t.Errorf("order changed at %d: %s vs %s", i, a[i].Name, b[i].Name)
		}
	}
}

func TestImmediateActions_Fallback(t *testing.T) {
	c := New()
	actions := c.ImmediateActions(CategoryDiarrhea)
	if len(actions) != len(defaultImmediateActions) {
		t.Errorf("expected default actions for diarrhea, got %d", len(actions))
	}
	fever := c.ImmediateActions(CategoryFever)
	if len(fever) == 0 || !strings.HasPrefix(fever[0], "RIGHT NOW") {
		t.Errorf("expected fever-specific actions, got %v", fever)
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		severity int
		want     Tier
	}{
		{0, TierMild},
		{3, TierMild},
		{4, TierModerate},
		{6, TierModerate},
	}
	for _, tt := range tests {
		if got := TierFor(tt.severity); got != tt.want {
			t.Errorf("TierFor(%d) = %s, want %s", tt.severity, got, tt.want)
		}
	}
}

func TestAgeGroupFor(t *testing.T) {
	if AgeGroupFor(15) != AgeChild {
		t.Error("15 should be child")
	}
	if AgeGroupFor(18) != AgeAdult {
		t.Error("18 should be adult")
	}
}

func TestDoctorGuidance_Bands(t *testing.T) {
	if !strings.Contains(DoctorGuidance(6), "TODAY") {
		t.Error("severity 6 should say TODAY")
	}
	if !strings.Contains(DoctorGuidance(4), "24-48") {
		t.Error("severity 4 should say 24-48 hours")
	}
	if !strings.Contains(DoctorGuidance(2), "3 days") {
		t.Error("severity 2 should say 3 days")
	}
}

func TestRecoveryTimeline_Bands(t *testing.T) {
	if !strings.Contains(RecoveryTimeline(2), "24-48") {
		t.Error("severity 2 should promise 24-48 hours")
	}
	if !strings.Contains(RecoveryTimeline(5), "3-5 days") {
		t.Error("severity 5 should promise 3-5 days")
	}
}

func TestRuleSubstancesPresent(t *testing.T) {
	// The safety rules name these substances; the catalog must actually
	// carry them somewhere or the rules are dead tables.
	c := New()
	substances := []string{"aspirin", "ibuprofen", "dextromethorphan", "pseudoephedrine", "paracetamol", "loperamide"}
	found := make(map[string]bool)
	for _, category := range c.Categories() {
		for _, tier := range []Tier{TierMild, TierModerate} {
			for _, age := range []AgeGroup{AgeChild, AgeAdult} {
				for _, m := range c.Candidates(category, tier, age) {
					name := strings.ToLower(m.Name)
					for _, s := range substances {
						if strings.Contains(name, s) {
							found[s] = true
						}
					}
				}
			}
		}
	}
	for _, s := range substances {
		if !found[s] {
			t.Errorf("substance %s not present anywhere in the catalog", s)
		}
	}
}
