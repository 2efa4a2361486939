package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	tests := []struct {
		name      string
		current   Cell
		neighbors int
		want      Cell
	}{
		{"alive isolated 0", Alive, 0, Dead},
		{"alive isolated 1", Alive, 1, Dead},
		{"alive survives 2", Alive, 2, Alive},
		{"alive survives 3", Alive, 3, Alive},
		{"alive overcrowded 4", Alive, 4, Dead},
		{"alive overcrowded 8", Alive, 8, Dead},
		{"dead stays 2", Dead, 2, Dead},
		{"dead born 3", Dead, 3, Alive},
		{"dead stays 4", Dead, 4, Dead},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyConwayRules(tt.neighbors, tt.current); got != tt.want {
				t.Fatalf("ApplyConwayRules(%d, %v) = %v, want %v", tt.neighbors, tt.current, got, tt.want)
			}
		})
	}
}

func TestApplyConwayRulesTotal(t *testing.T) {
	for _, c := range []Cell{Dead, Alive} {
		for n := 0; n <= 8; n++ {
			if got := ApplyConwayRules(n, c); got != Dead && got != Alive {
				t.Fatalf("ApplyConwayRules(%d, %v) = %d, outside the two-state domain", n, c, got)
			}
		}
	}
}

func TestCellFromInt(t *testing.T) {
	if c, err := CellFromInt(1); err != nil || c != Alive {
		t.Fatalf("CellFromInt(1) = %v, %v", c, err)
	}
	if c, err := CellFromInt(0); err != nil || c != Dead {
		t.Fatalf("CellFromInt(0) = %v, %v", c, err)
	}
	if _, err := CellFromInt(2); err == nil {
		t.Fatal("CellFromInt(2) should fail")
	}
}

func TestCellString(t *testing.T) {
	if Alive.String() != "1" || Dead.String() != "0" {
		t.Fatalf("unexpected strings %q %q", Alive.String(), Dead.String())
	}
}
