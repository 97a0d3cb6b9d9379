package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snakefx/components"
)

// Palette
var (
	RgbBackground = tcell.NewRGBColor(10, 10, 15)
	RgbGridDot    = tcell.NewRGBColor(28, 28, 40)
	RgbBorder     = tcell.NewRGBColor(70, 60, 110)

	RgbNeonCyan    = tcell.NewRGBColor(0, 245, 212)   // Snake tail end
	RgbNeonViolet  = tcell.NewRGBColor(123, 47, 247)  // Snake head end
	RgbNeonPink    = tcell.NewRGBColor(247, 37, 133)  // Head
	RgbWhite       = tcell.NewRGBColor(255, 255, 255) // HUD text
	RgbDanger      = tcell.NewRGBColor(255, 77, 109)
	RgbBarTrack    = tcell.NewRGBColor(17, 24, 39)
	RgbOverlayBg   = tcell.NewRGBColor(15, 23, 42)
	RgbMutedText   = tcell.NewRGBColor(148, 163, 184)
	RgbRecordAmber = tcell.NewRGBColor(251, 191, 36)

	// Item colors
	RgbGem    = tcell.NewRGBColor(255, 209, 102)
	RgbStar   = tcell.NewRGBColor(255, 215, 0)
	RgbBolt   = tcell.NewRGBColor(142, 243, 87)
	RgbSnow   = tcell.NewRGBColor(160, 196, 255)
	RgbMagnet = tcell.NewRGBColor(144, 205, 244)
	RgbShield = tcell.NewRGBColor(114, 221, 247)
)

// ColorForKind returns the display color of an item kind
func ColorForKind(k components.ItemKind) tcell.Color {
	switch k {
	case components.KindStar:
		return RgbStar
	case components.KindBolt:
		return RgbBolt
	case components.KindSnow:
		return RgbSnow
	case components.KindMagnet:
		return RgbMagnet
	case components.KindShield:
		return RgbShield
	default:
		return RgbGem
	}
}

// ColorForBurst returns the particle color of a burst category
func ColorForBurst(c components.BurstCategory) tcell.Color {
	switch c {
	case components.BurstStar:
		return RgbStar
	case components.BurstBolt:
		return RgbBolt
	case components.BurstSnow:
		return RgbSnow
	case components.BurstMagnet:
		return RgbMagnet
	case components.BurstShield:
		return RgbShield
	case components.BurstCrash:
		return RgbDanger
	default:
		return RgbGem
	}
}

// GlyphForKind returns the board glyph of an item kind
func GlyphForKind(k components.ItemKind) rune {
	switch k {
	case components.KindStar:
		return '★'
	case components.KindBolt:
		return '↯'
	case components.KindSnow:
		return '✻'
	case components.KindMagnet:
		return '∩'
	case components.KindShield:
		return '◎'
	default:
		return '◆'
	}
}

// LerpColor blends two RGB colors, t in [0,1]
func LerpColor(a, b tcell.Color, t float64) tcell.Color {
	t = min(max(t, 0), 1)
	ar, ag, ab := a.RGB()
	br, bg, bb := b.RGB()
	return tcell.NewRGBColor(
		ar+int32(float64(br-ar)*t),
		ag+int32(float64(bg-ag)*t),
		ab+int32(float64(bb-ab)*t),
	)
}

// SnakeColor returns the body color of segment i of n, tail-first
func SnakeColor(i, n int) tcell.Color {
	if n <= 1 {
		return RgbNeonCyan
	}
	return LerpColor(RgbNeonCyan, RgbNeonViolet, float64(i)/float64(n))
}
