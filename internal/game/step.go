package game

// Event is a side effect produced by the simulation for collaborators such
// as audio.
type Event int

const (
	EventPaddleHit Event = iota
	EventWallBounce
	EventScore
	EventStart
	EventGameOver
)

func (e Event) String() string {
	switch e {
	case EventPaddleHit:
		return "paddle-hit"
	case EventWallBounce:
		return "wall-bounce"
	case EventScore:
		return "score"
	case EventStart:
		return "start"
	case EventGameOver:
		return "gameover"
	}
	return "unknown"
}

// Step advances the game by one frame. Nothing moves unless the game is
// playing. Checks run in a fixed order: paddles, ball, walls, left paddle,
// right paddle, scoring.
func Step(gs *GameState, in *InputTracker) []Event {
	if gs.Phase != PhasePlaying {
		return nil
	}

	var events []Event
	c := gs.Constants()

	gs.Left.Move(in, gs.Dims)
	gs.Right.Move(in, gs.Dims)

	ball := &gs.Ball
	ball.Move()

	if ball.BounceWalls(c.BallRadius, gs.Dims.Height) {
		events = append(events, EventWallBounce)
	}

	hitLeft := gs.Left.Hit(ball, c)
	hitRight := gs.Right.Hit(ball, c)
	if hitLeft || hitRight {
		paddle := gs.Right
		if hitLeft {
			paddle = gs.Left
		}
		ball.BounceOffPaddle(paddle, c)
		events = append(events, EventPaddleHit)
	}

	if ball.X < 0 {
		gs.Score.Player2++
		gs.ServeBall(1)
		events = append(events, EventScore)
	} else if ball.X > gs.Dims.Width {
		gs.Score.Player1++
		gs.ServeBall(-1)
		events = append(events, EventScore)
	}

	return events
}
