package shot

// Court reference frame for normalized shot coordinates. The rim sits at
// (RimX, RimY); values outside the frame are kept and clipped at render time.
const (
	CourtWidth  = 500.0
	CourtHeight = 470.0
	RimX        = 250.0
	RimY        = 52.5
)

type Shot struct {
	ID     string
	GameID string
	TeamID int64
	X      float64
	Y      float64
	Made   bool
}

func (s Shot) InBounds() bool {
	return s.X >= 0 && s.X <= CourtWidth && s.Y >= 0 && s.Y <= CourtHeight
}
