package gamedata

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLoadAbilities(t *testing.T) {
	abilities, err := LoadAbilities()
	if err != nil {
		t.Fatalf("LoadAbilities() error = %v", err)
	}

	if len(abilities) != 3 {
		t.Fatalf("LoadAbilities() returned %d abilities, want 3", len(abilities))
	}

	kinds := map[AbilityKind]string{}
	for _, a := range abilities {
		if !a.Kind.Valid() {
			t.Errorf("ability %q has invalid kind %q", a.Title, a.Kind)
		}
		kinds[a.Kind] = a.Title
	}

	for _, k := range []AbilityKind{KindTrail, KindVeil, KindOrb} {
		if _, ok := kinds[k]; !ok {
			t.Errorf("no ability of kind %q in catalog", k)
		}
	}

	if kinds[KindTrail] != "Onchain Trail" {
		t.Errorf("trail title = %q, want %q", kinds[KindTrail], "Onchain Trail")
	}
}

func TestTrailTuningMatchesCadence(t *testing.T) {
	abilities, err := LoadAbilities()
	if err != nil {
		t.Fatalf("LoadAbilities() error = %v", err)
	}
	for _, a := range abilities {
		switch a.Kind {
		case KindTrail:
			if a.Tuning.CadenceMs != 500 {
				t.Errorf("trail cadence = %d, want 500", a.Tuning.CadenceMs)
			}
		case KindVeil:
			if a.Tuning.BaseEvasion != 20 || a.Tuning.EvasionPerLevel != 3 {
				t.Errorf("veil evasion = %v + %v/level, want 20 + 3/level",
					a.Tuning.BaseEvasion, a.Tuning.EvasionPerLevel)
			}
		}
	}
}

func TestAbilityKindValid(t *testing.T) {
	tests := []struct {
		kind AbilityKind
		want bool
	}{
		{KindTrail, true},
		{KindVeil, true},
		{KindOrb, true},
		{AbilityKind("laser"), false},
		{AbilityKind(""), false},
	}

	for _, tt := range tests {
		if got := tt.kind.Valid(); got != tt.want {
			t.Errorf("AbilityKind(%q).Valid() = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestEnemyRegistry(t *testing.T) {
	registry, err := LoadEnemyRegistry()
	if err != nil {
		t.Fatalf("LoadEnemyRegistry() error = %v", err)
	}

	if registry.Count() != 4 {
		t.Errorf("Count() = %d, want 4", registry.Count())
	}

	drone := registry.GetByID("drone")
	if drone == nil {
		t.Fatal("GetByID(drone) = nil")
	}
	if len(drone.Abilities) == 0 || drone.Abilities[0].Title != "Onchain Trail" {
		t.Errorf("drone abilities = %v, want Onchain Trail first", drone.Abilities)
	}

	if registry.GetByID("dragon") != nil {
		t.Error("GetByID(dragon) should be nil")
	}

	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))
	for i := 0; i < 10; i++ {
		a, b := registry.SpawnRandom(rng1).ID, registry.SpawnRandom(rng2).ID
		if a != b {
			t.Errorf("spawn %d mismatch: %s != %s", i, a, b)
		}
	}
}

func TestSpawnRandomEmptyRegistry(t *testing.T) {
	registry := NewEnemyRegistry(nil)
	if def := registry.SpawnRandom(rand.New(rand.NewSource(1))); def != nil {
		t.Errorf("SpawnRandom() on empty registry = %v, want nil", def)
	}
}

func TestLoadPlayer(t *testing.T) {
	player, err := LoadPlayer()
	if err != nil {
		t.Fatalf("LoadPlayer() error = %v", err)
	}
	if player.Health <= 0 {
		t.Errorf("player health = %d, want > 0", player.Health)
	}
	if player.GlyphRune() != '@' {
		t.Errorf("GlyphRune() = %c, want @", player.GlyphRune())
	}
	if len(player.Abilities) == 0 {
		t.Error("player should start with at least one ability")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load[PlayerDef]("missing.json"); err == nil {
		t.Error("Load(missing.json) should fail")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"00FF00", true},
		{"#7FDBFF", true},
		{"invalid", false},
		{"#FFF", false},
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestEnemyDefMethods(t *testing.T) {
	def := EnemyDef{ID: "test", Glyph: "T", Color: "#FF0000"}

	if def.GlyphRune() != 'T' {
		t.Errorf("GlyphRune() = %c, want T", def.GlyphRune())
	}
	if TCellColor(def.Color) == tcell.ColorWhite {
		t.Errorf("TCellColor(%q) fell back to white", def.Color)
	}
	if TCellColor("nope") != tcell.ColorWhite {
		t.Error("TCellColor() of an invalid color did not fall back to white")
	}

	empty := EnemyDef{Color: "nope"}
	if empty.GlyphRune() != '?' {
		t.Errorf("GlyphRune() on empty glyph = %c, want ?", empty.GlyphRune())
	}
}
