package service

import (
	"errors"
	"testing"

	"github.com/mgearhart/clickchess-backend/internal/model"
)

func TestGameManagerCreateAndGet(t *testing.T) {
	gm := NewGameManager()

	if err := gm.CreateGame("g1"); err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	if err := gm.CreateGame("g1"); !errors.Is(err, ErrGameExists) {
		t.Errorf("duplicate CreateGame = %v, want ErrGameExists", err)
	}
	if _, err := gm.GetGame("g1"); err != nil {
		t.Errorf("GetGame: %v", err)
	}
	if _, err := gm.GetGame("missing"); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("GetGame(missing) = %v, want ErrGameNotFound", err)
	}
	if _, err := gm.GetGameState("missing"); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("GetGameState(missing) = %v, want ErrGameNotFound", err)
	}
}

func TestGameManagerHandleClick(t *testing.T) {
	gm := NewGameManager()
	if err := gm.CreateGame("g1"); err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	event, err := gm.HandleClick("g1", model.Coord{X: 4, Y: 1})
	if err != nil {
		t.Fatalf("HandleClick: %v", err)
	}
	if event.Type != model.EventSelected {
		t.Errorf("event = %s, want %s", event.Type, model.EventSelected)
	}

	if _, err := gm.HandleClick("missing", model.Coord{X: 4, Y: 1}); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("HandleClick(missing) = %v, want ErrGameNotFound", err)
	}
	if _, err := gm.HandleClick("g1", model.Coord{X: 9, Y: 1}); !errors.Is(err, model.ErrOutOfBounds) {
		t.Errorf("HandleClick(off-board) = %v, want ErrOutOfBounds", err)
	}
}

func TestGameServiceCreateGame(t *testing.T) {
	gs := NewGameService(NewGameManager())

	id, err := gs.CreateGame()
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	if id == "" {
		t.Fatal("CreateGame returned empty ID")
	}
	if _, err := gs.GetGameState(id); err != nil {
		t.Errorf("GetGameState(%s): %v", id, err)
	}
}
