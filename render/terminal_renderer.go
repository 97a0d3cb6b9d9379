package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snakefx/components"
	"github.com/lixenwraith/snakefx/constants"
	"github.com/lixenwraith/snakefx/engine"
)

// View is everything one frame draws
type View struct {
	Snapshot engine.Snapshot
	Phase    engine.GamePhase
	Muted    bool
	Dt       time.Duration // Wall time since the previous frame, drives cosmetics
}

// Layout is the screen placement of the board interior
type Layout struct {
	OriginX, OriginY int // Top-left interior cell
	Cols, Rows       int // Interior size in terminal cells
	Fits             bool
}

// TerminalRenderer draws the board and HUD with tcell and owns cosmetic state
type TerminalRenderer struct {
	screen    tcell.Screen
	particles *ParticleSystem
	shake     *Shake
	frame     int64
}

// NewTerminalRenderer creates a renderer; seed 0 uses a time-based cosmetic seed
func NewTerminalRenderer(screen tcell.Screen, seed int64) *TerminalRenderer {
	return &TerminalRenderer{
		screen:    screen,
		particles: NewParticleSystem(seed),
		shake:     NewShake(seed),
	}
}

// Particles exposes the particle system
func (r *TerminalRenderer) Particles() *ParticleSystem {
	return r.particles
}

// Shake exposes the shake state
func (r *TerminalRenderer) Shake() *Shake {
	return r.shake
}

// OnFeedback turns drained burst and shake requests into cosmetic state
func (r *TerminalRenderer) OnFeedback(batch engine.FeedbackBatch) {
	for _, b := range batch.Bursts {
		r.particles.Burst(b)
	}
	if batch.Shake > 0 {
		r.shake.Add(batch.Shake)
	}
}

// ComputeLayout centers a grid of gw x gh cells on a w x h screen
func ComputeLayout(w, h, gw, gh int) Layout {
	cols := gw * constants.CellWidth
	rows := gh
	totalH := rows + 2 + constants.HUDTopRows + constants.HUDBottomRows
	totalW := cols + 2

	l := Layout{Cols: cols, Rows: rows, Fits: w >= totalW && h >= totalH}
	l.OriginX = max((w-totalW)/2, 0) + 1
	l.OriginY = max((h-totalH)/2, 0) + constants.HUDTopRows + 1
	return l
}

// Draw renders one frame
func (r *TerminalRenderer) Draw(v View) {
	r.frame++
	r.particles.Update(v.Dt)
	r.shake.Update(v.Dt)

	bg := tcell.StyleDefault.Background(RgbBackground)
	r.screen.SetStyle(bg)
	r.screen.Clear()

	w, h := r.screen.Size()
	snap := v.Snapshot
	l := ComputeLayout(w, h, snap.GridWidth, snap.GridHeight)
	if !l.Fits {
		r.drawText(0, 0, "terminal too small", bg.Foreground(RgbDanger))
		r.screen.Show()
		return
	}

	r.drawBorder(l, bg)

	dx, dy := r.shake.Offset()
	r.drawGrid(l, bg)
	r.drawItems(l, snap, dx, dy, bg)
	r.drawSnake(l, snap, dx, dy, bg)
	r.drawParticles(l, dx, dy, bg)

	r.drawTopHUD(l, snap, v.Muted, bg)
	r.drawBottomHUD(l, snap, bg)

	switch v.Phase {
	case engine.PhaseIdle:
		r.drawOverlay(l, bg, "SNAKE FX",
			"Eat gems, chain them for combo",
			"Arrows/WASD move  Space pause",
			"Enter to start")
	case engine.PhasePaused:
		r.drawOverlay(l, bg, "PAUSED", "Space to resume")
	case engine.PhaseEnded:
		r.drawOverlay(l, bg, "GAME OVER",
			fmt.Sprintf("Score %d  Record %d", snap.Score, max(snap.HighScore, snap.Score)),
			"Enter to play again")
	}

	r.screen.Show()
}

// cellToScreen maps a board cell plus shake to its left terminal column and row
func (r *TerminalRenderer) cellToScreen(l Layout, x, y, dx, dy int) (sx, sy int, ok bool) {
	sx = l.OriginX + x*constants.CellWidth + dx
	sy = l.OriginY + y + dy
	ok = sx >= l.OriginX && sx+constants.CellWidth <= l.OriginX+l.Cols && sy >= l.OriginY && sy < l.OriginY+l.Rows
	return sx, sy, ok
}

func (r *TerminalRenderer) drawBorder(l Layout, bg tcell.Style) {
	st := bg.Foreground(RgbBorder)
	x0, y0 := l.OriginX-1, l.OriginY-1
	x1, y1 := l.OriginX+l.Cols, l.OriginY+l.Rows
	for x := x0 + 1; x < x1; x++ {
		r.screen.SetContent(x, y0, '─', nil, st)
		r.screen.SetContent(x, y1, '─', nil, st)
	}
	for y := y0 + 1; y < y1; y++ {
		r.screen.SetContent(x0, y, '│', nil, st)
		r.screen.SetContent(x1, y, '│', nil, st)
	}
	r.screen.SetContent(x0, y0, '╭', nil, st)
	r.screen.SetContent(x1, y0, '╮', nil, st)
	r.screen.SetContent(x0, y1, '╰', nil, st)
	r.screen.SetContent(x1, y1, '╯', nil, st)
}

func (r *TerminalRenderer) drawGrid(l Layout, bg tcell.Style) {
	st := bg.Foreground(RgbGridDot)
	for y := 0; y < l.Rows; y++ {
		for x := 0; x < l.Cols; x += constants.CellWidth {
			r.screen.SetContent(l.OriginX+x, l.OriginY+y, '·', nil, st)
		}
	}
}

func (r *TerminalRenderer) drawItems(l Layout, snap engine.Snapshot, dx, dy int, bg tcell.Style) {
	for _, it := range snap.Items {
		sx, sy, ok := r.cellToScreen(l, it.Pos.X, it.Pos.Y, dx, dy)
		if !ok {
			continue
		}
		st := bg.Foreground(ColorForKind(it.Kind)).Bold(true)
		// Blink during the last second of life
		if remaining := it.SpawnedAt + it.TTL - snap.Now; remaining < time.Second && (r.frame/8)%2 == 0 {
			st = st.Dim(true)
		}
		r.screen.SetContent(sx, sy, GlyphForKind(it.Kind), nil, st)
	}
}

func (r *TerminalRenderer) drawSnake(l Layout, snap engine.Snapshot, dx, dy int, bg tcell.Style) {
	n := len(snap.Snake)
	for i, c := range snap.Snake {
		sx, sy, ok := r.cellToScreen(l, c.X, c.Y, dx, dy)
		if !ok {
			continue
		}
		color := SnakeColor(i, n)
		glyph := '█'
		if i == n-1 {
			color = RgbNeonPink
			if snap.Ended {
				color = RgbDanger
			}
		}
		st := bg.Foreground(color)
		r.screen.SetContent(sx, sy, glyph, nil, st)
		r.screen.SetContent(sx+1, sy, glyph, nil, st)
	}
}

func (r *TerminalRenderer) drawParticles(l Layout, dx, dy int, bg tcell.Style) {
	for _, p := range r.particles.Particles() {
		sx := l.OriginX + int(p.X*constants.CellWidth) + dx
		sy := l.OriginY + int(p.Y) + dy
		if p.X < 0 || p.Y < 0 || sx < l.OriginX || sx >= l.OriginX+l.Cols || sy < l.OriginY || sy >= l.OriginY+l.Rows {
			continue
		}
		glyph := '•'
		if p.Life < p.MaxLife/3 {
			glyph = '·'
		}
		r.screen.SetContent(sx, sy, glyph, nil, bg.Foreground(p.Color))
	}
}

func (r *TerminalRenderer) drawTopHUD(l Layout, snap engine.Snapshot, muted bool, bg tcell.Style) {
	y := l.OriginY - 2
	x := l.OriginX - 1
	x = r.drawText(x, y, fmt.Sprintf("Score %d", snap.Score), bg.Foreground(RgbWhite).Bold(true))
	x = r.drawText(x+2, y, fmt.Sprintf("Record %d", max(snap.HighScore, snap.Score)), bg.Foreground(RgbRecordAmber))
	x = r.drawText(x+2, y, fmt.Sprintf("x%d", max(1, snap.Multiplier)), bg.Foreground(RgbNeonPink).Bold(true))
	if muted {
		r.drawText(x+2, y, "muted", bg.Foreground(RgbMutedText))
	}

	// Effect icons right-aligned
	icons := effectIcons(snap)
	right := l.OriginX + l.Cols + 1
	for i := len(icons) - 1; i >= 0; i-- {
		right -= len([]rune(icons[i].text)) + 1
		r.drawText(right, y, icons[i].text, bg.Foreground(ColorForKind(icons[i].kind)))
	}
}

type icon struct {
	kind components.ItemKind
	text string
}

func effectIcons(snap engine.Snapshot) []icon {
	icons := make([]icon, 0, len(snap.Effects))
	for _, e := range snap.Effects {
		if e.Kind == components.KindShield && e.Charges <= 0 {
			continue
		}
		secs := int((e.Remaining(snap.Now) + time.Second - 1) / time.Second)
		text := fmt.Sprintf("%c%d", GlyphForKind(e.Kind), secs)
		if e.Kind == components.KindShield {
			text = fmt.Sprintf("%c%d×%d", GlyphForKind(e.Kind), secs, e.Charges)
		}
		icons = append(icons, icon{kind: e.Kind, text: text})
	}
	return icons
}

func (r *TerminalRenderer) drawBottomHUD(l Layout, snap engine.Snapshot, bg tcell.Style) {
	y := l.OriginY + l.Rows + 1
	barW := int(float64(l.Cols) * constants.ComboBarFraction)
	x0 := l.OriginX + (l.Cols-barW)/2
	filled := int(float64(barW)*snap.ComboFraction + 0.5)

	for i := 0; i < barW; i++ {
		if i < filled {
			c := LerpColor(RgbNeonCyan, RgbNeonPink, float64(i)/float64(max(barW-1, 1)))
			r.screen.SetContent(x0+i, y, '▰', nil, bg.Foreground(c))
		} else {
			r.screen.SetContent(x0+i, y, '▱', nil, bg.Foreground(RgbBarTrack))
		}
	}

	help := "arrows/wasd move  space pause  r reset  m sound  q quit"
	if len(help) <= l.Cols+2 {
		r.drawText(l.OriginX+(l.Cols-len(help))/2, y+1, help, bg.Foreground(RgbMutedText))
	}
}

func (r *TerminalRenderer) drawOverlay(l Layout, bg tcell.Style, title string, lines ...string) {
	width := len([]rune(title))
	for _, s := range lines {
		width = max(width, len([]rune(s)))
	}
	width += 4
	height := len(lines) + 4

	x0 := l.OriginX + (l.Cols-width)/2
	y0 := l.OriginY + (l.Rows-height)/2
	box := bg.Background(RgbOverlayBg)
	for y := y0; y < y0+height; y++ {
		for x := x0; x < x0+width; x++ {
			r.screen.SetContent(x, y, ' ', nil, box)
		}
	}

	center := func(y int, s string, st tcell.Style) {
		r.drawText(x0+(width-len([]rune(s)))/2, y, s, st)
	}
	center(y0+1, title, box.Foreground(RgbNeonPink).Bold(true))
	for i, s := range lines {
		center(y0+3+i, s, box.Foreground(RgbWhite))
	}
}

// drawText writes s from (x,y) and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, s string, st tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, st)
		x++
	}
	return x
}
