package team

import "testing"

func TestTeam_Validate(t *testing.T) {
	valid := Team{ID: 1, LeagueID: "esp-liga-endesa-2025", Name: "Real Madrid"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for name, bad := range map[string]Team{
		"missing id":     {LeagueID: "esp", Name: "x"},
		"missing league": {ID: 1, Name: "x"},
		"missing name":   {ID: 1, LeagueID: "esp"},
	} {
		if err := bad.Validate(); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}
