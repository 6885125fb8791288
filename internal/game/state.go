package game

import (
	"fmt"
	"math/rand"
)

// Phase is the top-level mode of the game
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Score counts points per player
type Score struct {
	Player1 int
	Player2 int
}

// GameState is the authoritative model of a match. It is owned by the frame
// loop and passed by pointer into Step and the renderer.
type GameState struct {
	Dims  Dimensions
	Left  *Paddle
	Right *Paddle
	Ball  Ball
	Score Score
	Phase Phase

	rng *rand.Rand
}

// NewGameState creates an idle game sized to dims
func NewGameState(dims Dimensions, rng *rand.Rand) *GameState {
	gs := &GameState{
		Dims:  dims,
		Left:  NewPaddle(SideLeft, Player1Controls),
		Right: NewPaddle(SideRight, Player2Controls),
		Phase: PhaseIdle,
		rng:   rng,
	}
	gs.Init()
	return gs
}

// Init centers both paddles and kicks off a fresh ball. Phase and score are
// left alone.
func (gs *GameState) Init() {
	gs.Left.Center(gs.Dims)
	gs.Right.Center(gs.Dims)
	gs.Ball = NewKickoff(gs.Dims, gs.rng)
}

// Toggle handles a press of the start/pause key
func (gs *GameState) Toggle() []Event {
	switch gs.Phase {
	case PhaseIdle:
		gs.Phase = PhasePlaying
		gs.Init()
		return []Event{EventStart}
	case PhasePlaying:
		gs.Phase = PhaseIdle
	case PhaseGameOver:
		// Restart goes through idle straight back into play
		gs.Phase = PhaseIdle
		gs.Score = Score{}
		return gs.Toggle()
	}
	return nil
}

// Finish ends the match. No scoring rule calls it; it is the entry point for
// a win condition layered on top of the game.
func (gs *GameState) Finish() []Event {
	if gs.Phase == PhaseGameOver {
		return nil
	}
	gs.Phase = PhaseGameOver
	return []Event{EventGameOver}
}

// Resize adopts new dimensions and restarts the rally
func (gs *GameState) Resize(dims Dimensions) {
	gs.Dims = dims
	gs.Init()
}

// ServeBall replaces the ball with a centered one heading in dir
func (gs *GameState) ServeBall(dir float64) {
	gs.Ball = NewServe(gs.Dims, dir, gs.rng)
}

// Constants returns the derived constants for the current dimensions
func (gs *GameState) Constants() Constants {
	return gs.Dims.Constants()
}
