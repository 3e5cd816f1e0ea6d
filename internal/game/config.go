package game

// Arena.
const (
	WorldRadius    = 3500.0
	WorldEdgeRatio = 0.995 // containment kicks in beyond this fraction of the radius
	FoodSpawnRatio = 0.96  // pellets spawn inside this fraction of the radius
)

// Timing. Speeds and rates below are expressed per 60 Hz reference frame;
// FrameScale converts a real dt into that unit.
const (
	ReferenceFPS  = 60.0
	MaxFrameDelta = 0.05 // seconds; longer pauses are treated as one 50ms frame
)

// Snake constants.
const (
	SnakeBaseSpeed      = 2.4
	SnakeBoostMult      = 1.8
	SnakeSpeedUpMult    = 1.2
	SnakeSpeedDownMult  = 0.8
	SnakeTurnRate       = 0.075 // rad per reference frame
	SnakeKeyTurnReach   = 10.0  // key steering aims this many turn steps ahead
	SnakeSegmentSpacing = 6.5
	SnakeBaseRadius     = 6.0
	SnakeMaxRadius      = 28.0
	SnakeRadiusGrowth   = 0.02 // radius gained per unit of length above the start length
	SnakeRadiusEase     = 0.09
	SnakeStartLength    = 70.0
	SnakeSpawnSpread    = 200.0
	SnakeEatMargin      = 4.0
	SnakeWallInset      = 2.0
	SnakeWallBias       = 0.12 // extra inward push when sliding along the wall
	SnakeWallStep       = 0.5
	SnakePathCap        = 512
)

// Chaser constants.
const (
	ChaserSpeed       = 2.8
	ChaserRadius      = 12.0
	ChaserMouthRate   = 0.14
	ChaserSpawnSpread = 600.0
	ChaserSpawnClear  = 500.0 // preferred minimum spawn distance from the snake head
	ChaserSpawnTries  = 10
)

// Food constants.
const (
	FoodCount         = 650
	FoodRadiusMin     = 2.2
	FoodRadiusMax     = 4.8
	FoodRespawnDelay  = 3.5 // seconds
	FoodRespawnJitter = 2.5 // seconds
	FoodScoreBase     = 5.0
	FoodScorePerSize  = 2.0
	FoodGrowthBase    = 14.0
	FoodGrowthPerSize = 4.0
)

// Contact and encirclement tuning. These are empirically tuned values kept
// as-is for behaviour parity.
const (
	ContactBodyLeniency = 0.8 // non-head points use this fraction of the body radius
	EncircleMinLength   = 520.0
	EncircleRays        = 24
	EncircleMaxDist     = 700.0
	EncircleFraction    = 0.85
	EncircleThickness   = 0.95
)

// Camera.
const (
	CameraLerp       = 0.065
	ChaserZoomLerp   = 0.08
	MinZoom          = 0.5
	MaxZoom          = 1.1
	ZoomLengthScale  = 2400.0
	ZoomLengthMax    = 0.5
	BoostZoomFactor  = 0.95
	OutcomeFadeTime  = 1.3 // seconds until the endgame overlay is fully faded in
	IndicatorPadding = 18.0
)

// Config holds the tunables a session is created with.
type Config struct {
	Seed        uint64
	WorldRadius float64
	FoodCount   int
}

// DefaultConfig returns the standard arena configuration.
func DefaultConfig() Config {
	return Config{
		Seed:        1,
		WorldRadius: WorldRadius,
		FoodCount:   FoodCount,
	}
}

func (c Config) normalized() Config {
	if c.Seed == 0 {
		c.Seed = 1
	}
	if c.WorldRadius <= 0 {
		c.WorldRadius = WorldRadius
	}
	if c.FoodCount < 0 {
		c.FoodCount = 0
	}
	return c
}

// FrameScale converts dt seconds into reference frames.
func FrameScale(dt float64) float64 {
	return dt * ReferenceFPS
}
