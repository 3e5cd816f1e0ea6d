package game

import "math"

// Role selects which player's viewport is being drawn.
type Role int

const (
	RoleSnake Role = iota
	RoleChaser
)

func (r Role) String() string {
	if r == RoleChaser {
		return "chaser"
	}
	return "snake"
}

// SnakeState is a read-only copy of the snake.
type SnakeState struct {
	Points   []PathPoint
	Heading  float64
	Radius   float64
	Boosting bool
	Color    RGB
}

func (s SnakeState) Head() Vec2 {
	if len(s.Points) == 0 {
		return Vec2{}
	}
	return s.Points[0].Pos()
}

// ChaserState is a read-only copy of the chaser.
type ChaserState struct {
	X, Y       float64
	Heading    float64
	Radius     float64
	MouthPhase float64
}

func (c ChaserState) Pos() Vec2 { return Vec2{X: c.X, Y: c.Y} }

// Mouth returns the half-angle of the mouth opening in radians.
func (c ChaserState) Mouth() float64 {
	return 0.1 + math.Abs(math.Sin(c.MouthPhase))*0.35
}

// Snapshot is everything a renderer needs for one frame. It shares no
// memory with the session.
type Snapshot struct {
	WorldRadius  float64
	Snake        SnakeState
	Chaser       ChaserState
	Foods        []Food
	SnakeCam     Camera
	ChaserCam    Camera
	Outcome      Outcome
	OutcomeTimer float64
	Fade         float64
	Score        int
	Length       int
}

// Snapshot deep-copies the current session state.
func (s *Session) Snapshot() Snapshot {
	foods := make([]Food, len(s.World.Foods))
	copy(foods, s.World.Foods)
	return Snapshot{
		WorldRadius: s.World.Radius,
		Snake: SnakeState{
			Points:   s.Snake.Path.Points(),
			Heading:  s.Snake.Heading,
			Radius:   s.Snake.RadiusActual,
			Boosting: s.Snake.Boosting,
			Color:    s.Snake.Color,
		},
		Chaser: ChaserState{
			X:          s.Chaser.X,
			Y:          s.Chaser.Y,
			Heading:    s.Chaser.Heading,
			Radius:     s.Chaser.Radius,
			MouthPhase: s.Chaser.MouthPhase,
		},
		Foods:        foods,
		SnakeCam:     s.SnakeCam,
		ChaserCam:    s.ChaserCam,
		Outcome:      s.Outcome,
		OutcomeTimer: s.OutcomeTimer,
		Fade:         s.Fade(),
		Score:        s.Score,
		Length:       int(math.Round(s.Snake.LengthActual)),
	}
}

// Indicator is the arrow drawn beside a player's own entity pointing at
// the opponent.
type Indicator struct {
	X, Y  float64 // world-space arrow centre
	Angle float64
	Size  float64
	Color RGB
}

// View is the per-viewport render input.
type View struct {
	Role      Role
	Camera    Camera
	Indicator Indicator
}

// View returns the camera and enemy indicator for the given role.
func (s Snapshot) View(role Role) View {
	var from, to Vec2
	var base float64
	var cam Camera
	var col RGB
	switch role {
	case RoleChaser:
		from, to = s.Chaser.Pos(), s.Snake.Head()
		base = s.Chaser.Radius
		cam = s.ChaserCam
		col = Palette.ChaserArrow
	default:
		from, to = s.Snake.Head(), s.Chaser.Pos()
		base = s.Snake.Radius
		cam = s.SnakeCam
		col = Palette.SnakeArrow
	}
	angle := to.Sub(from).Angle()
	at := from.Add(FromAngle(angle).Scale(base + IndicatorPadding))
	return View{
		Role:   role,
		Camera: cam,
		Indicator: Indicator{
			X:     at.X,
			Y:     at.Y,
			Angle: angle,
			Size:  clampF(base*1.05, 10, 18),
			Color: col,
		},
	}
}

// VisibleFoods returns the pellets inside the given world rectangle.
func (s Snapshot) VisibleFoods(r RectF) []Food {
	out := make([]Food, 0, len(s.Foods)/4)
	for _, f := range s.Foods {
		if RectAround(f.Pos(), f.Radius).Intersects(r) {
			out = append(out, f)
		}
	}
	return out
}

// VisibleRect is the world rectangle a camera shows in a viewport of the
// given pixel size, padded by margin world units.
func (c Camera) VisibleRect(w, h, margin float64) RectF {
	z := c.Zoom
	if z <= 0 {
		z = 1
	}
	hw, hh := w/2/z+margin, h/2/z+margin
	return RectF{X0: c.X - hw, Y0: c.Y - hh, X1: c.X + hw, Y1: c.Y + hh}
}
