package grammar

import (
	"testing"

	"github.com/convolab/lessonsmith/internal/lang"
)

func TestRegistryIntegrity(t *testing.T) {
	points := AllPoints()
	if len(points) != 12 {
		t.Fatalf("taxonomy has %d points, want 12", len(points))
	}

	seen := make(map[string]bool)
	for _, p := range points {
		if p.ID == "" || p.Name == "" || p.Description == "" {
			t.Errorf("point %q has empty fields: %+v", p.ID, p)
		}
		if seen[p.ID] {
			t.Errorf("duplicate point ID %q", p.ID)
		}
		seen[p.ID] = true
		if !lang.ValidLevel(p.Level, lang.Japanese) {
			t.Errorf("point %q has level %q outside the JLPT scale", p.ID, p.Level)
		}
	}
}

func TestGetPoint(t *testing.T) {
	p := GetPoint("ha_vs_ga")
	if p == nil {
		t.Fatal("ha_vs_ga should exist")
	}
	if p.Level != lang.N5 {
		t.Errorf("ha_vs_ga level = %q, want N5", p.Level)
	}
	if p.Category != CategoryParticles {
		t.Errorf("ha_vs_ga category = %q, want particles", p.Category)
	}

	if GetPoint("nonexistent") != nil {
		t.Error("unknown ID should return nil")
	}
}

func TestPointsByLevel(t *testing.T) {
	for _, level := range []lang.Level{lang.N5, lang.N4, lang.N3} {
		points := PointsByLevel(level)
		if len(points) != 4 {
			t.Errorf("PointsByLevel(%s) = %d points, want 4", level, len(points))
		}
		for _, p := range points {
			if p.Level != level {
				t.Errorf("point %q in level %s bucket has level %s", p.ID, level, p.Level)
			}
		}
	}

	if got := PointsByLevel(lang.N1); len(got) != 0 {
		t.Errorf("PointsByLevel(N1) = %d points, want 0", len(got))
	}
}

func TestValidForLevel(t *testing.T) {
	tests := []struct {
		id    string
		level lang.Level
		want  bool
	}{
		{"ha_vs_ga", lang.N5, true},
		{"ha_vs_ga", lang.N4, false},
		{"ba_vs_tara", lang.N3, true},
		{"nonexistent", lang.N5, false},
	}
	for _, tt := range tests {
		if got := ValidForLevel(tt.id, tt.level); got != tt.want {
			t.Errorf("ValidForLevel(%q, %s) = %v, want %v", tt.id, tt.level, got, tt.want)
		}
	}
}
