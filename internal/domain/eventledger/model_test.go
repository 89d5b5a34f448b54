package eventledger

import "testing"

func TestKey_Deterministic(t *testing.T) {
	t.Parallel()

	first := Key(EventGoal, "fx-001", "pl-010", 55, "")
	second := Key(EventGoal, "fx-001", "pl-010", 55, "")
	if first != second {
		t.Fatalf("expected identical keys, got %q vs %q", first, second)
	}
	if first != "goal:fx-001:pl-010:55" {
		t.Fatalf("unexpected key format: %q", first)
	}
}

func TestKey_DisambiguatorSeparatesSubKinds(t *testing.T) {
	t.Parallel()

	cleanSheetHome := Key(EventCleanSheet, "fx-001", "pl-010", 0, "team_tm-home")
	cleanSheetAway := Key(EventCleanSheet, "fx-001", "pl-010", 0, "team_tm-away")
	if cleanSheetHome == cleanSheetAway {
		t.Fatalf("expected different keys for different team disambiguators")
	}
}

func TestKey_DistinctAcrossMinutes(t *testing.T) {
	t.Parallel()

	if Key(EventGoal, "fx-001", "pl-010", 10, "") == Key(EventGoal, "fx-001", "pl-010", 55, "") {
		t.Fatalf("expected different keys for different minutes")
	}
}
