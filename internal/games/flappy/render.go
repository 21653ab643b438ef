package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	CoinChar      = '●'
	BirdBodyChar  = '■'
	StarChar      = '·'
	GroundFill    = '▒'
)

var groundPattern = [...]rune{'▚', '▞'}

// viewport maps world units onto terminal cells.
type viewport struct {
	sx, sy   float64
	floorRow int
}

func newViewport(dst *core.Screen, world config.FlappyWorld) viewport {
	v := viewport{sx: 1, sy: 1}
	if world.Width > 0 {
		v.sx = float64(dst.Width()) / world.Width
	}
	if h := world.Height(); h > 0 {
		v.sy = float64(dst.Height()) / h
	}
	v.floorRow = int(math.Round(world.FloorY * v.sy))
	return v
}

// cell returns the smallest cell rectangle covering r, at least one cell in size.
func (v viewport) cell(r core.RectF) core.Rect {
	x0 := int(math.Floor(r.X * v.sx))
	y0 := int(math.Floor(r.Y * v.sy))
	x1 := int(math.Ceil(r.Right() * v.sx))
	y1 := int(math.Ceil(r.Bottom() * v.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Render draws a snapshot scaled to dst.
func Render(dst *core.Screen, snap Snapshot, world config.FlappyWorld) {
	dst.Clear()
	v := newViewport(dst, world)

	drawSky(dst, v, snap.Background)
	for _, o := range snap.Obstacles {
		drawObstacle(dst, v, o)
	}
	drawGround(dst, v, snap.GroundOffset)
	drawBird(dst, v, snap.Bird)
	drawHUD(dst, snap)

	switch snap.Phase {
	case PhaseMainMenu:
		drawCenteredMessage(dst, "FLAPPY BIRD",
			fmt.Sprintf("< %s >", snap.Difficulty.Title()),
			"Enter start  ←/→ difficulty")
	case PhaseGetReady:
		c := core.ColorYellow
		if snap.BlinkFrame {
			c = core.ColorBrightYellow
		}
		mid := v.floorRow / 2
		dst.DrawTextCenteredColored(mid-1, "GET READY", c)
		dst.DrawTextCenteredColored(mid+1, "Space or click to flap", core.ColorGray)
	case PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

func drawSky(dst *core.Screen, v viewport, background string) {
	c := core.ColorGray
	switch background {
	case "night":
	case "impossible":
		c = core.ColorRed
	default:
		return
	}
	for y := 0; y < v.floorRow; y++ {
		for x := 0; x < dst.Width(); x++ {
			if (x*7+y*13)%29 == 0 {
				dst.SetColored(x, y, StarChar, c)
			}
		}
	}
}

func drawObstacle(dst *core.Screen, v viewport, o ObstacleView) {
	top := v.cell(o.Lower)
	bottom := v.cell(o.Upper)

	fillPipe(dst, top, v.floorRow)
	fillPipe(dst, bottom, v.floorRow)

	if top.Bottom() > 0 {
		dst.DrawHLine(top.X, top.Bottom()-1, top.W, PipeCapTop, core.ColorBrightGreen)
	}
	if bottom.Y < v.floorRow {
		dst.DrawHLine(bottom.X, bottom.Y, bottom.W, PipeCapBottom, core.ColorBrightGreen)
	}

	if o.CollectibleVisible {
		coin := v.cell(o.Collectible)
		dst.SetColored(coin.X, coin.Y, CoinChar, core.ColorBrightYellow)
	}
}

// fillPipe paints r above the floor row.
func fillPipe(dst *core.Screen, r core.Rect, floorRow int) {
	y1 := core.Min(r.Bottom(), floorRow)
	for y := core.Max(r.Y, 0); y < y1; y++ {
		dst.DrawHLine(r.X, y, r.W, PipeChar, core.ColorGreen)
	}
}

func drawGround(dst *core.Screen, v viewport, offset float64) {
	shift := int(math.Floor(-offset * v.sx))
	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, v.floorRow, groundPattern[(x+shift)%len(groundPattern)], core.ColorOrange)
	}
	for y := v.floorRow + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), GroundFill, core.ColorYellow)
	}
}

func drawBird(dst *core.Screen, v viewport, b BirdView) {
	r := v.cell(b.Rect)
	for y := r.Y; y < r.Bottom(); y++ {
		dst.DrawHLine(r.X, y, r.W, BirdBodyChar, core.ColorBrightYellow)
	}

	wing := '─'
	switch b.Frame {
	case FrameWingUp:
		wing = '▀'
	case FrameWingDown:
		wing = '▄'
	}
	dst.SetColored(r.X, r.Y, wing, core.ColorWhite)

	beak := '▶'
	switch {
	case b.Angle > 4:
		beak = '↘'
	case b.Angle < -4:
		beak = '↗'
	}
	dst.SetColored(r.Right()-1, r.Y, beak, core.ColorOrange)
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	if snap.Phase == PhaseRunning || snap.Phase == PhaseGameOver {
		dst.DrawTextCenteredColored(0, fmt.Sprintf(" %d ", snap.Score), core.ColorBrightWhite)
	}

	label := " " + snap.Difficulty.Title() + " "
	dst.DrawTextColored(dst.Width()-len(label), 0, label, core.ColorGray)

	if snap.Paused {
		dst.DrawTextCenteredColored(1, " PAUSED ", core.ColorBrightCyan)
	}
}

// drawCenteredMessage draws a boxed message in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextCenteredColored(box.Y+1, title, core.ColorBrightWhite)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+3+i, l)
	}
}
