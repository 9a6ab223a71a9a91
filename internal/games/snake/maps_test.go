package snake

import (
	"reflect"
	"testing"
)

func TestBuiltinMaps(t *testing.T) {
	wantIDs := []string{"classic", "maze", "cave", "arena"}
	maps := Maps()
	if len(maps) != len(wantIDs) {
		t.Fatalf("got %d maps, expected %d", len(maps), len(wantIDs))
	}

	startCells := []Position{{15, 10}, {14, 10}, {13, 10}, {16, 10}}
	for i, m := range maps {
		if m.ID != wantIDs[i] {
			t.Errorf("map %d id = %q, expected %q", i, m.ID, wantIDs[i])
		}
		if m.Difficulty < 1 || m.Difficulty > 5 {
			t.Errorf("%s: difficulty %d out of range", m.ID, m.Difficulty)
		}
		walls := m.WallSet()
		for _, w := range m.Walls {
			if !w.InBounds() {
				t.Errorf("%s: wall out of bounds %v", m.ID, w)
			}
		}
		for _, p := range startCells {
			if walls[p] {
				t.Errorf("%s: wall on start cell %v", m.ID, p)
			}
		}
	}

	if len(maps[0].Walls) != 0 {
		t.Error("classic should have no walls")
	}
}

func TestMapGeneratorsDeterministic(t *testing.T) {
	for name, gen := range map[string]func() []Position{
		"cross": crossWalls,
		"cave":  caveWalls,
		"arena": arenaWalls,
	} {
		if !reflect.DeepEqual(gen(), gen()) {
			t.Errorf("%s generator is not deterministic", name)
		}
	}
}

func TestMazeLayout(t *testing.T) {
	walls := ResolveMap("maze").WallSet()
	for _, p := range []Position{{5, 10}, {12, 10}, {18, 10}, {24, 10}, {15, 3}, {15, 7}, {15, 13}, {15, 16}} {
		if !walls[p] {
			t.Errorf("expected wall at %v", p)
		}
	}
	for _, p := range []Position{{13, 10}, {15, 10}, {17, 10}, {15, 8}, {15, 12}, {4, 10}, {25, 10}} {
		if walls[p] {
			t.Errorf("unexpected wall at %v", p)
		}
	}
}

func TestResolveMapFallback(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"classic", "classic"},
		{"arena", "arena"},
		{"", "classic"},
		{"volcano", "classic"},
		{DailyMapID, DailyMapID},
	}
	for _, tt := range tests {
		if got := ResolveMapAt(tt.id, t0).ID; got != tt.want {
			t.Errorf("ResolveMapAt(%q) = %q, expected %q", tt.id, got, tt.want)
		}
	}
}

func TestResolveDailyUsesDate(t *testing.T) {
	m := ResolveMapOn(DailyMapID, "2026-03-01")
	if !reflect.DeepEqual(m.Walls, GenerateDailyWalls("2026-03-01")) {
		t.Error("daily map resolved for the wrong date")
	}
	if got := ResolveMapAt(DailyMapID, t0).Name; got != "Daily Challenge "+DateString(t0) {
		t.Errorf("name = %q", got)
	}
}

func TestMapIDs(t *testing.T) {
	ids := MapIDs()
	if ids[len(ids)-1] != DailyMapID {
		t.Errorf("daily should be listed last: %v", ids)
	}
	for _, id := range ids {
		if !IsMapID(id) {
			t.Errorf("IsMapID(%q) = false", id)
		}
	}
	if IsMapID("volcano") {
		t.Error("IsMapID accepted an unknown id")
	}
}

func TestModes(t *testing.T) {
	if ParseMode("timed") != ModeTimed || ParseMode("fog") != ModeFog || ParseMode("???") != ModeClassic {
		t.Error("ParseMode mismatch")
	}

	head := Position{X: 10, Y: 10}
	tests := []struct {
		mode GameMode
		p    Position
		want bool
	}{
		{ModeClassic, Position{X: 0, Y: 0}, true},
		{ModeFog, Position{X: 15, Y: 15}, true},
		{ModeFog, Position{X: 16, Y: 10}, false},
		{ModeFog, Position{X: 5, Y: 5}, true},
		{ModeFog, Position{X: 10, Y: 4}, false},
	}
	for _, tt := range tests {
		if got := tt.mode.Visible(head, tt.p); got != tt.want {
			t.Errorf("%s.Visible(%v) = %v, expected %v", tt.mode, tt.p, got, tt.want)
		}
	}
}

func TestPowerUpCatalog(t *testing.T) {
	types := PowerUpTypes()
	if len(types) != 6 {
		t.Fatalf("catalog has %d entries, expected 6", len(types))
	}
	for _, pt := range types {
		switch pt.Kind {
		case EffectDuration:
			if pt.Duration <= 0 {
				t.Errorf("%s: duration effect without duration", pt.ID)
			}
		case EffectInstant:
			if pt.Duration != 0 {
				t.Errorf("%s: instant effect with duration", pt.ID)
			}
		default:
			t.Errorf("%s: unknown kind %q", pt.ID, pt.Kind)
		}
		if got, ok := PowerUpByID(pt.ID); !ok || got != pt {
			t.Errorf("PowerUpByID(%q) mismatch", pt.ID)
		}
	}
	if _, ok := PowerUpByID("laser"); ok {
		t.Error("PowerUpByID found an unknown id")
	}
}
