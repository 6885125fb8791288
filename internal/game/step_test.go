package game

import (
	"math"
	"math/rand"
	"testing"
)

func playingState(t *testing.T) *GameState {
	t.Helper()
	gs := newTestState()
	gs.Toggle()
	if gs.Phase != PhasePlaying {
		t.Fatalf("expected phase playing, got %v", gs.Phase)
	}
	return gs
}

func hasEvent(events []Event, want Event) bool {
	for _, e := range events {
		if e == want {
			return true
		}
	}
	return false
}

func TestStep_PhaseGating(t *testing.T) {
	for _, phase := range []Phase{PhaseIdle, PhaseGameOver} {
		t.Run(phase.String(), func(t *testing.T) {
			gs := newTestState()
			gs.Phase = phase
			in := NewInputTracker()
			in.KeyDown(KeyW)
			in.KeyDown(KeyArrowDown)

			ball, left, right := gs.Ball, gs.Left.Y, gs.Right.Y
			for i := 0; i < 30; i++ {
				if events := Step(gs, in); events != nil {
					t.Fatalf("expected no events, got %v", events)
				}
			}

			if gs.Ball != ball {
				t.Errorf("expected ball unchanged, got %+v", gs.Ball)
			}
			if gs.Left.Y != left || gs.Right.Y != right {
				t.Error("expected paddles unchanged")
			}
		})
	}
}

func TestStep_PaddleClampInvariant(t *testing.T) {
	gs := playingState(t)
	in := NewInputTracker()
	rng := rand.New(rand.NewSource(42))
	keys := []Key{KeyW, KeyS, KeyArrowUp, KeyArrowDown}
	maxY := gs.Dims.MaxPaddleY()

	for frame := 0; frame < 2000; frame++ {
		k := keys[rng.Intn(len(keys))]
		if rng.Intn(2) == 0 {
			in.KeyDown(k)
		} else {
			in.KeyUp(k)
		}

		Step(gs, in)

		for _, p := range []*Paddle{gs.Left, gs.Right} {
			if p.Y < 0 || p.Y > maxY {
				t.Fatalf("frame %d: %v paddle Y=%f outside [0, %f]", frame, p.Side, p.Y, maxY)
			}
		}
	}
}

func TestStep_WallBounce(t *testing.T) {
	gs := playingState(t)
	c := gs.Constants()
	gs.Ball = Ball{X: 350, Y: c.BallRadius + 1, DX: 2, DY: -3}

	events := Step(gs, NewInputTracker())

	if !hasEvent(events, EventWallBounce) {
		t.Errorf("expected wall-bounce event, got %v", events)
	}
	if gs.Ball.DY != 3 {
		t.Errorf("expected DY flipped to 3, got %f", gs.Ball.DY)
	}
	if gs.Ball.Y < c.BallRadius || gs.Ball.Y > gs.Dims.Height-c.BallRadius {
		t.Errorf("expected Y within [%f, %f], got %f", c.BallRadius, gs.Dims.Height-c.BallRadius, gs.Ball.Y)
	}

	// Next frame moves away from the wall without flipping again
	events = Step(gs, NewInputTracker())
	if hasEvent(events, EventWallBounce) {
		t.Error("expected a single bounce")
	}
	if gs.Ball.DY != 3 {
		t.Errorf("expected DY to stay 3, got %f", gs.Ball.DY)
	}
}

func TestStep_BallStaysBetweenWalls(t *testing.T) {
	gs := playingState(t)
	c := gs.Constants()
	gs.Ball = Ball{X: 350, Y: 200, DX: 0, DY: 7}

	for i := 0; i < 500; i++ {
		Step(gs, NewInputTracker())
		if gs.Ball.Y < c.BallRadius || gs.Ball.Y > gs.Dims.Height-c.BallRadius {
			t.Fatalf("frame %d: Y=%f outside court", i, gs.Ball.Y)
		}
	}
}

func TestStep_PaddleHit(t *testing.T) {
	gs := playingState(t)
	c := gs.Constants()
	gs.Ball = Ball{X: 50, Y: gs.Left.CenterY(c), DX: -3, DY: 0}

	events := Step(gs, NewInputTracker())

	if !hasEvent(events, EventPaddleHit) {
		t.Fatalf("expected paddle-hit event, got %v", events)
	}
	if math.Abs(gs.Ball.DX-3*SpeedIncrement) > 1e-9 {
		t.Errorf("expected |DX| scaled by %f to %f, got %f", SpeedIncrement, 3*SpeedIncrement, gs.Ball.DX)
	}
	if wantX := c.LeftPaddleX + c.PaddleWidth + c.BallRadius; gs.Ball.X != wantX {
		t.Errorf("expected ball flush at %f, got %f", wantX, gs.Ball.X)
	}
	if speedOf(gs.Ball) > c.MaxBallSpeed {
		t.Errorf("expected speed <= %f, got %f", c.MaxBallSpeed, speedOf(gs.Ball))
	}
}

func TestStep_RightPaddleHit(t *testing.T) {
	gs := playingState(t)
	c := gs.Constants()
	gs.Ball = Ball{X: 645, Y: gs.Right.CenterY(c), DX: 3, DY: 0}

	events := Step(gs, NewInputTracker())

	if !hasEvent(events, EventPaddleHit) {
		t.Fatalf("expected paddle-hit event, got %v", events)
	}
	if gs.Ball.DX >= 0 {
		t.Errorf("expected DX < 0 after the right paddle, got %f", gs.Ball.DX)
	}
	if wantX := c.RightPaddleX - c.BallRadius; gs.Ball.X != wantX {
		t.Errorf("expected ball flush at %f, got %f", wantX, gs.Ball.X)
	}
}

func TestStep_PaddleHitSpeedCap(t *testing.T) {
	gs := playingState(t)
	c := gs.Constants()
	gs.Ball = Ball{X: 60, Y: gs.Left.CenterY(c) + 20, DX: -20, DY: 4}

	if speedOf(gs.Ball) <= c.MaxBallSpeed {
		t.Fatal("incoming ball must exceed the cap")
	}

	events := Step(gs, NewInputTracker())

	if !hasEvent(events, EventPaddleHit) {
		t.Fatalf("expected paddle-hit event, got %v", events)
	}
	if speedOf(gs.Ball) > c.MaxBallSpeed+1e-9 {
		t.Errorf("expected speed <= %f, got %f", c.MaxBallSpeed, speedOf(gs.Ball))
	}
}

func TestStep_ScoreLeftEdge(t *testing.T) {
	gs := playingState(t)
	gs.Ball = Ball{X: 2, Y: 200, DX: -3, DY: 0}

	events := Step(gs, NewInputTracker())

	if !hasEvent(events, EventScore) {
		t.Errorf("expected score event, got %v", events)
	}
	if gs.Score != (Score{Player1: 0, Player2: 1}) {
		t.Errorf("expected score 0-1, got %+v", gs.Score)
	}
	if gs.Ball.X != 350 || gs.Ball.Y != 200 {
		t.Errorf("expected ball centered, got (%f, %f)", gs.Ball.X, gs.Ball.Y)
	}
	vx, vy := court.ServeSpeed()
	if gs.Ball.DX != vx {
		t.Errorf("expected DX=%f, got %f", vx, gs.Ball.DX)
	}
	if math.Abs(gs.Ball.DY) > vy {
		t.Errorf("expected |DY| <= %f, got %f", vy, gs.Ball.DY)
	}
}

func TestStep_ScoreRightEdge(t *testing.T) {
	gs := playingState(t)
	gs.Ball = Ball{X: 698, Y: 200, DX: 3, DY: 0}

	events := Step(gs, NewInputTracker())

	if !hasEvent(events, EventScore) {
		t.Errorf("expected score event, got %v", events)
	}
	if gs.Score != (Score{Player1: 1, Player2: 0}) {
		t.Errorf("expected score 1-0, got %+v", gs.Score)
	}
	if gs.Ball.X != 350 || gs.Ball.Y != 200 {
		t.Errorf("expected ball centered, got (%f, %f)", gs.Ball.X, gs.Ball.Y)
	}
	if vx, _ := court.ServeSpeed(); gs.Ball.DX != -vx {
		t.Errorf("expected DX=%f, got %f", -vx, gs.Ball.DX)
	}
	if gs.Phase != PhasePlaying {
		t.Errorf("expected to keep playing, got %v", gs.Phase)
	}
}

func TestStep_EndToEnd(t *testing.T) {
	gs := newTestState()
	in := NewInputTracker()

	if gs.Phase != PhaseIdle {
		t.Fatalf("expected to start idle, got %v", gs.Phase)
	}

	gs.Toggle()
	if gs.Phase != PhasePlaying {
		t.Fatalf("expected phase playing, got %v", gs.Phase)
	}
	want := 400.0/2 - gs.Constants().PaddleHeight/2
	if gs.Left.Y != want || gs.Right.Y != want {
		t.Fatalf("expected paddles at %f, got %f and %f", want, gs.Left.Y, gs.Right.Y)
	}

	// Aim the serve at player 1, who moves out of the way
	gs.Ball.DX = -math.Abs(gs.Ball.DX)
	gs.Ball.DY = 0
	in.KeyDown(KeyW)

	for frame := 0; frame < 1000 && gs.Score == (Score{}); frame++ {
		Step(gs, in)
	}

	if gs.Score != (Score{Player1: 0, Player2: 1}) {
		t.Fatalf("expected score 0-1, got %+v", gs.Score)
	}
	if gs.Ball.X != 350 || gs.Ball.Y != 200 {
		t.Errorf("expected ball re-centered, got (%f, %f)", gs.Ball.X, gs.Ball.Y)
	}
	if gs.Ball.DX <= 0 {
		t.Errorf("expected DX > 0 after player 2 scores, got %f", gs.Ball.DX)
	}
}

func TestEvent_String(t *testing.T) {
	if EventPaddleHit.String() != "paddle-hit" {
		t.Errorf("unexpected name %q", EventPaddleHit.String())
	}
	if Event(99).String() != "unknown" {
		t.Errorf("unexpected name %q", Event(99).String())
	}
}
