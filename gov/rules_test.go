package gov

import (
	"encoding/json"
	"testing"
)

// Preset guards: if a constant drifts, these fail immediately.

func TestRulesPresets(t *testing.T) {
	main := MainNetRules()
	if main.Name != "main" || main.HomeDomainID != MainHomeDomainID || main.RemoteDomainID != MainRemoteDomainID {
		t.Fatalf("unexpected main rules: %s", main)
	}
	if main.RequireEndedResults {
		t.Fatal("main rules must preserve the permissive results policy")
	}

	test := TestNetRules()
	if test.Name != "test" || test.HomeDomainID == main.HomeDomainID {
		t.Fatalf("test rules overlap main: %s", test)
	}

	fake := FakeNetRules()
	if fake.Name != "fake" {
		t.Fatalf("unexpected fake rules: %s", fake)
	}
	if !fake.RequireEndedResults {
		t.Fatal("fake rules should enable the strict results policy")
	}

	// Domain ids must be pairwise distinct and never the reserved zero.
	seen := map[uint32]bool{}
	for _, r := range []Rules{main, test, fake} {
		for _, id := range []uint32{r.HomeDomainID, r.RemoteDomainID} {
			if id == 0 {
				t.Fatalf("%s uses reserved domain id 0", r.Name)
			}
			if seen[id] {
				t.Fatalf("domain id %d used twice", id)
			}
			seen[id] = true
		}
	}
}

func TestRulesByName(t *testing.T) {
	for _, name := range []string{"main", "test", "fake"} {
		r, err := RulesByName(name)
		if err != nil {
			t.Fatalf("RulesByName(%q): %v", name, err)
		}
		if r.Name != name {
			t.Fatalf("RulesByName(%q) = %s", name, r)
		}
	}
	if _, err := RulesByName("nope"); err == nil {
		t.Fatal("expected error for unknown preset")
	}
}

func TestRulesStringIsJSON(t *testing.T) {
	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(FakeNetRules().String()), &decoded); err != nil {
		t.Fatalf("Rules.String() is not valid JSON: %v", err)
	}
	if decoded["Name"] != "fake" {
		t.Fatalf("unexpected Name in dump: %v", decoded)
	}
}
