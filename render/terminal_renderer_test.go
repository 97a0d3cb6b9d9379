package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snakefx/components"
	"github.com/lixenwraith/snakefx/engine"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Expected simulation screen init, got %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func screenText(screen tcell.Screen) string {
	w, h := screen.Size()
	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ch, _, _, _ := screen.GetContent(x, y)
			if ch == 0 {
				ch = ' '
			}
			sb.WriteRune(ch)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestComputeLayoutCentersBoard(t *testing.T) {
	l := ComputeLayout(80, 30, 28, 20)
	if !l.Fits {
		t.Fatal("Expected 28x20 board to fit 80x30")
	}
	if l.OriginX != 12 || l.OriginY != 4 {
		t.Errorf("Expected origin (12,4), got (%d,%d)", l.OriginX, l.OriginY)
	}
	if l.Cols != 56 || l.Rows != 20 {
		t.Errorf("Expected 56x20 interior, got %dx%d", l.Cols, l.Rows)
	}

	if ComputeLayout(40, 30, 28, 20).Fits {
		t.Error("Expected board not to fit 40 columns")
	}
}

func TestDrawPlacesSnakeHead(t *testing.T) {
	screen := newSimScreen(t, 80, 30)
	r := NewTerminalRenderer(screen, 1)
	w := engine.NewTestWorld(28, 20, nil)

	r.Draw(View{Snapshot: w.Snapshot(), Phase: engine.PhaseRunning})

	// Head (9,10) -> column 12+18, row 4+10
	ch, _, style, _ := screen.GetContent(30, 14)
	if ch != '█' {
		t.Fatalf("Expected head glyph at (30,14), got %q", ch)
	}
	fg, _, _ := style.Decompose()
	if fg != RgbNeonPink {
		t.Errorf("Expected head colored neon pink, got %v", fg)
	}

	text := screenText(screen)
	if !strings.Contains(text, "Score 0") {
		t.Error("Expected score in HUD")
	}
	if strings.Contains(text, "PAUSED") {
		t.Error("Expected no overlay while running")
	}
}

func TestDrawItemsAndEffects(t *testing.T) {
	screen := newSimScreen(t, 80, 30)
	r := NewTerminalRenderer(screen, 1)
	w := engine.NewTestWorld(28, 20, nil)
	engine.PlaceItem(w, components.KindStar, components.Point{X: 0, Y: 0})
	w.Effects.Apply(components.KindShield, 0)
	w.Effects.Apply(components.KindShield, 0)

	r.Draw(View{Snapshot: w.Snapshot(), Phase: engine.PhaseRunning, Muted: true})

	if ch, _, _, _ := screen.GetContent(12, 4); ch != GlyphForKind(components.KindStar) {
		t.Errorf("Expected star glyph at board origin, got %q", ch)
	}
	text := screenText(screen)
	if !strings.Contains(text, "◎10×2") {
		t.Error("Expected shield icon with remaining seconds and charges")
	}
	if !strings.Contains(text, "muted") {
		t.Error("Expected muted marker")
	}
}

func TestDrawOverlays(t *testing.T) {
	tests := []struct {
		phase engine.GamePhase
		want  string
	}{
		{engine.PhaseIdle, "Enter to start"},
		{engine.PhasePaused, "PAUSED"},
		{engine.PhaseEnded, "GAME OVER"},
	}

	for _, tt := range tests {
		t.Run(tt.phase.String(), func(t *testing.T) {
			screen := newSimScreen(t, 80, 30)
			r := NewTerminalRenderer(screen, 1)
			w := engine.NewTestWorld(28, 20, nil)

			r.Draw(View{Snapshot: w.Snapshot(), Phase: tt.phase})

			if !strings.Contains(screenText(screen), tt.want) {
				t.Errorf("Expected %q on screen", tt.want)
			}
		})
	}
}

func TestDrawTooSmall(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	r := NewTerminalRenderer(screen, 1)
	w := engine.NewTestWorld(28, 20, nil)

	r.Draw(View{Snapshot: w.Snapshot(), Phase: engine.PhaseRunning})

	if !strings.Contains(screenText(screen), "terminal too small") {
		t.Error("Expected size warning")
	}
}

func TestOnFeedbackFeedsCosmetics(t *testing.T) {
	screen := newSimScreen(t, 80, 30)
	r := NewTerminalRenderer(screen, 1)

	r.OnFeedback(engine.FeedbackBatch{
		Bursts: []components.BurstRequest{{Pos: components.Point{X: 3, Y: 3}, Category: components.BurstGem, Count: 5}},
		Shake:  8,
	})

	if r.Particles().Len() != 5 {
		t.Errorf("Expected 5 particles, got %d", r.Particles().Len())
	}
	if r.Shake().Magnitude() != 8 {
		t.Errorf("Expected shake 8, got %f", r.Shake().Magnitude())
	}

	w := engine.NewTestWorld(28, 20, nil)
	r.Draw(View{Snapshot: w.Snapshot(), Phase: engine.PhaseRunning, Dt: 2 * time.Second})

	if r.Particles().Len() != 0 {
		t.Errorf("Expected particles expired, got %d", r.Particles().Len())
	}
	if r.Shake().Magnitude() != 0 {
		t.Errorf("Expected shake decayed, got %f", r.Shake().Magnitude())
	}
}
