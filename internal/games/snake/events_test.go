package snake

import (
	"reflect"
	"testing"
)

func TestDiffEvents(t *testing.T) {
	playing := newTestState("classic", horizontal(5, 5, 3)...)

	paused := playing
	paused.Status = StatusPaused

	menu := playing
	menu.Status = StatusMenu

	ate := playing
	ate.FoodEaten = 1

	levelled := playing
	levelled.FoodEaten = 5
	levelled.Level = 2
	levelled.PowerUpsCollected = 1

	over := ate
	over.Status = StatusGameOver

	finished := playing
	finished.Status = StatusGameOver
	finished.FoodEaten = 12
	finished.Level = 3

	tests := []struct {
		name       string
		prev, next GameState
		want       []Event
	}{
		{"idle tick", playing, playing, nil},
		{"start", menu, playing, []Event{EventStart}},
		{"restart after game over", finished, playing, []Event{EventStart}},
		{"pause", playing, paused, []Event{EventPause}},
		{"resume", paused, playing, []Event{EventResume}},
		{"eat", playing, ate, []Event{EventEat}},
		{"eat, power-up and level up", playing, levelled, []Event{EventEat, EventPowerUp, EventLevelUp}},
		{"crash", playing, over, []Event{EventEat, EventGameOver}},
		{"already over", over, over, nil},
		{"back to menu", finished, menu, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiffEvents(tt.prev, tt.next)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DiffEvents = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestEventString(t *testing.T) {
	if EventLevelUp.String() != "levelup" || Event(99).String() != "unknown" {
		t.Error("Event.String mismatch")
	}
}
