package game

import (
	"log/slog"
	"math"
)

// Outcome is the round result.
type Outcome int

const (
	InProgress Outcome = iota
	ChaserWins
	SnakeWins
)

func (o Outcome) String() string {
	switch o {
	case ChaserWins:
		return "chaser wins"
	case SnakeWins:
		return "snake wins"
	default:
		return "in progress"
	}
}

// Session owns one round: both players, the arena, the cameras and the
// outcome. All mutation happens inside Step and Restart.
type Session struct {
	cfg Config
	rng *Rand

	World  *World
	Snake  *Snake
	Chaser *Chaser

	SnakeCam  Camera
	ChaserCam Camera

	Score        int
	Outcome      Outcome
	OutcomeTimer float64 // seconds since the outcome was decided

	Events *EventBus
	Log    *slog.Logger
}

// NewSession creates a session and starts the first round.
func NewSession(cfg Config) *Session {
	cfg = cfg.normalized()
	rng := NewRand(cfg.Seed)
	s := &Session{
		cfg:    cfg,
		rng:    rng,
		World:  NewWorld(cfg, rng),
		Events: NewEventBus(),
		Log:    slog.Default(),
	}
	s.reset()
	return s
}

// NewSessionWith creates a session with explicit starting entities and no
// random placement. Useful for scripted scenarios.
func NewSessionWith(cfg Config, snake *Snake, chaser *Chaser) *Session {
	cfg = cfg.normalized()
	rng := NewRand(cfg.Seed)
	s := &Session{
		cfg:    cfg,
		rng:    rng,
		World:  NewWorld(cfg, rng),
		Snake:  snake,
		Chaser: chaser,
		Events: NewEventBus(),
		Log:    slog.Default(),
	}
	s.SnakeCam = NewCamera(snake.Head())
	s.ChaserCam = NewCamera(chaser.Pos())
	return s
}

func (s *Session) Config() Config { return s.cfg }

func (s *Session) reset() {
	s.Snake = SpawnSnake(s.rng)
	s.Chaser = SpawnChaser(s.rng, s.Snake.Head())
	s.SnakeCam = NewCamera(s.Snake.Head())
	s.ChaserCam = NewCamera(s.Chaser.Pos())
	s.Score = 0
	s.Outcome = InProgress
	s.OutcomeTimer = 0
}

// Restart begins a fresh round with new entities and a refilled food field.
func (s *Session) Restart() {
	s.World.Reset()
	s.reset()
	s.Log.Debug("round restarted", "foods", len(s.World.Foods))
	s.Events.Emit(Event{Type: EventRestart})
}

// Step advances the session by dt seconds.
func (s *Session) Step(in Input, dt float64) {
	if in.Restart {
		s.Restart()
	}
	dt = ClampDelta(dt)
	if dt == 0 {
		return
	}
	frames := FrameScale(dt)

	if s.Outcome == InProgress {
		s.simulate(in, dt)
	} else {
		s.OutcomeTimer += dt
	}
	s.followCameras(frames)
}

func (s *Session) simulate(in Input, dt float64) {
	arena := s.World.Radius

	s.Snake.Update(in, dt, arena)
	s.World.Advance(dt)
	head := s.Snake.Head()
	for _, f := range s.World.EatNear(head, s.Snake.EatReach()) {
		gained := int(math.Round(FoodScoreBase + f.Radius*FoodScorePerSize))
		s.Score += gained
		s.Snake.Grow(f)
		s.Events.Emit(Event{Type: EventFoodEaten, X: f.X, Y: f.Y, Data: gained})
	}

	s.Chaser.Update(in, dt, arena)

	switch {
	case s.chaserTouchesSnake():
		s.finish(ChaserWins)
	case SnakeEncircles(s.Snake, s.Chaser):
		s.finish(SnakeWins)
	}
}

// chaserTouchesSnake checks the chaser against every other body point.
func (s *Session) chaserTouchesSnake() bool {
	c := s.Chaser.Pos()
	path := s.Snake.Path
	for i := 0; i < path.Len(); i += 2 {
		rr := s.Chaser.Radius + s.Snake.ContactRadius(i)
		if path.At(i).Pos().Dist2(c) < rr*rr {
			return true
		}
	}
	return false
}

func (s *Session) finish(o Outcome) {
	s.Outcome = o
	s.OutcomeTimer = 0
	s.Log.Info("round over", "outcome", o.String(), "score", s.Score, "length", int(s.Snake.LengthTarget))

	t := EventChaserWins
	p := s.Chaser.Pos()
	if o == SnakeWins {
		t = EventSnakeWins
	}
	s.Events.Emit(Event{Type: t, X: p.X, Y: p.Y, Data: s.Score})
}

func (s *Session) followCameras(frames float64) {
	s.SnakeCam.Follow(s.Snake.Head(), SnakeZoom(s.Snake.LengthTarget, s.Snake.Boosting), CameraLerp, CameraLerp, frames)
	s.ChaserCam.Follow(s.Chaser.Pos(), 1, CameraLerp, ChaserZoomLerp, frames)
}

// Fade returns the endgame overlay opacity in [0, 1].
func (s *Session) Fade() float64 {
	if s.Outcome == InProgress {
		return 0
	}
	return math.Min(1, s.OutcomeTimer/OutcomeFadeTime)
}
