package game

import (
	"math"
	"testing"
)

func emptyConfig() Config {
	cfg := DefaultConfig()
	cfg.FoodCount = 0
	return cfg
}

func TestChaserCatchesSnakeHeadOn(t *testing.T) {
	const gap = 500.0
	snake := NewSnake(Vec2{}, 0)
	chaser := NewChaser(Vec2{X: gap}, math.Pi)
	s := NewSessionWith(emptyConfig(), snake, chaser)

	var events []Event
	s.Events.Subscribe(EventChaserWins, func(e Event) { events = append(events, e) })

	in := Input{ChaserDirX: -1}
	ticks := 0
	for ; ticks < 400 && s.Outcome == InProgress; ticks++ {
		s.Step(in, tick)
	}
	if s.Outcome != ChaserWins {
		t.Fatalf("outcome = %v after %d ticks", s.Outcome, ticks)
	}
	reach := ChaserRadius + SnakeBaseRadius
	want := int(math.Ceil((gap - reach) / (SnakeBaseSpeed + ChaserSpeed)))
	if ticks < want-1 || ticks > want+1 {
		t.Fatalf("caught after %d ticks, want %d±1", ticks, want)
	}
	if len(events) != 1 {
		t.Fatalf("chaser-wins events = %d, want 1", len(events))
	}
}

func TestChaserAloneClosesGap(t *testing.T) {
	// The snake runs straight away from the chaser along the same line.
	snake := NewSnake(Vec2{}, math.Pi)
	chaser := NewChaser(Vec2{X: 500}, math.Pi)
	s := NewSessionWith(emptyConfig(), snake, chaser)
	ticks := 0
	for ; ticks < 2000 && s.Outcome == InProgress; ticks++ {
		s.Step(Input{}, tick)
	}
	if s.Outcome != ChaserWins {
		t.Fatalf("outcome = %v", s.Outcome)
	}
	// The chaser reaches the snake tail first.
	tailGap := 500 - 65 - ChaserRadius - SnakeBaseRadius*ContactBodyLeniency
	if ticks > int(math.Ceil(tailGap/(ChaserSpeed-SnakeBaseSpeed)))+2 {
		t.Fatalf("caught after %d ticks", ticks)
	}
}

func TestOutcomeIsTerminal(t *testing.T) {
	snake := NewSnake(Vec2{}, 0)
	chaser := NewChaser(Vec2{X: 10}, math.Pi)
	s := NewSessionWith(emptyConfig(), snake, chaser)
	s.Step(Input{}, tick)
	if s.Outcome != ChaserWins {
		t.Fatalf("outcome = %v, want chaser wins on overlap", s.Outcome)
	}
	head := s.Snake.Head()
	for i := 0; i < 120; i++ {
		s.Step(Input{TurnLeft: true, ChaserDirY: 1}, tick)
	}
	if s.Snake.Head() != head {
		t.Fatalf("snake moved after the round ended")
	}
	if s.Outcome != ChaserWins {
		t.Fatalf("outcome changed to %v", s.Outcome)
	}
	if !approx(s.OutcomeTimer, 2, 1e-9) {
		t.Fatalf("OutcomeTimer = %v, want 2", s.OutcomeTimer)
	}
	if s.Fade() != 1 {
		t.Fatalf("fade = %v, want 1", s.Fade())
	}
}

func TestSnakeWinsByEncircling(t *testing.T) {
	snake := NewSnake(Vec2{}, 0)
	snake.Path = ringPath(Vec2{}, 150)
	snake.LengthTarget = snake.Path.Length() + 50
	snake.Heading = snake.Path.At(0).Heading
	chaser := NewChaser(Vec2{}, 0)
	s := NewSessionWith(emptyConfig(), snake, chaser)

	won := 0
	s.Events.Subscribe(EventSnakeWins, func(Event) { won++ })
	s.Step(Input{}, tick)
	if s.Outcome != SnakeWins || won != 1 {
		t.Fatalf("outcome = %v events = %d, want snake wins", s.Outcome, won)
	}
}

func TestEatingScoresAndGrows(t *testing.T) {
	snake := NewSnake(Vec2{}, 0)
	chaser := NewChaser(Vec2{X: -2000}, math.Pi)
	s := NewSessionWith(emptyConfig(), snake, chaser)
	s.World.Foods = append(s.World.Foods, Food{X: SnakeBaseSpeed + 3, Radius: 3})
	s.World.indexDirty = true

	var got []Event
	s.Events.Subscribe(EventFoodEaten, func(e Event) { got = append(got, e) })
	s.Step(Input{}, tick)

	if s.Score != 11 {
		t.Fatalf("score = %d, want 11", s.Score)
	}
	if s.Snake.LengthTarget != SnakeStartLength+26 {
		t.Fatalf("LengthTarget = %v", s.Snake.LengthTarget)
	}
	if len(got) != 1 || got[0].Data != 11 {
		t.Fatalf("food events = %+v", got)
	}
	if s.World.Pending() != 1 {
		t.Fatalf("pending respawns = %d, want 1", s.World.Pending())
	}
}

func TestRestartResetsRound(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FoodCount = 50
	s := NewSession(cfg)
	s.Snake.LengthTarget = 900
	s.Score = 77
	s.World.EatNear(Vec2{}, 2*s.World.Radius)
	s.finish(ChaserWins)

	restarts := 0
	s.Events.Subscribe(EventRestart, func(Event) { restarts++ })
	s.Step(Input{Restart: true}, 0)

	if s.Outcome != InProgress || s.OutcomeTimer != 0 {
		t.Fatalf("outcome = %v timer = %v after restart", s.Outcome, s.OutcomeTimer)
	}
	if s.Snake.LengthTarget != SnakeStartLength {
		t.Fatalf("LengthTarget = %v, want %v", s.Snake.LengthTarget, SnakeStartLength)
	}
	if s.Score != 0 || len(s.World.Foods) != 50 || s.World.Pending() != 0 {
		t.Fatalf("score=%d foods=%d pending=%d", s.Score, len(s.World.Foods), s.World.Pending())
	}
	if restarts != 1 {
		t.Fatalf("restart events = %d", restarts)
	}
}

func TestSessionDeterministicPerSeed(t *testing.T) {
	run := func() Snapshot {
		s := NewSession(DefaultConfig())
		in := Input{}
		for i := 0; i < 300; i++ {
			in.TurnLeft = i%60 < 20
			in.ChaserDirX, in.ChaserDirY = ChaserDir(i%80 < 40, i%80 >= 40, false, i%30 < 10)
			s.Step(in, tick)
		}
		return s.Snapshot()
	}
	a, b := run(), run()
	if a.Score != b.Score || a.Snake.Head() != b.Snake.Head() || a.Chaser.Pos() != b.Chaser.Pos() {
		t.Fatalf("same seed diverged: %+v vs %+v", a.Snake.Head(), b.Snake.Head())
	}
}

func TestStepClampsLongFrames(t *testing.T) {
	s := NewSessionWith(emptyConfig(), NewSnake(Vec2{}, 0), NewChaser(Vec2{X: -2000}, math.Pi))
	s.Step(Input{}, 5)
	want := SnakeBaseSpeed * FrameScale(MaxFrameDelta)
	if h := s.Snake.Head(); !approx(h.X, want, 1e-9) {
		t.Fatalf("head moved %v, want %v", h.X, want)
	}
}
