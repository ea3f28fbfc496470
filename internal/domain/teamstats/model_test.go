package teamstats

import "testing"

func TestAverages_Validate(t *testing.T) {
	tests := []struct {
		name    string
		in      Averages
		wantErr bool
	}{
		{name: "zero value", in: Averages{TeamID: 1}},
		{name: "regular", in: Averages{TeamID: 1, Games: 4, PointsPerGame: 89.5, Efficiency: -1}},
		{name: "negative games", in: Averages{TeamID: 1, Games: -1}, wantErr: true},
		{name: "negative points", in: Averages{TeamID: 1, Games: 4, PointsPerGame: -0.5}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.in.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() err=%v wantErr=%v", err, tt.wantErr)
			}
		})
	}
}
