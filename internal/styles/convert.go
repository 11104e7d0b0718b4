// Package styles maps raw node visuals (fills, strokes, effects, typography)
// into a canonical property bag and a CSS-like projection.
//
// Color convention: surface colors (fills, strokes) become 6-digit hex;
// effect colors become rgba() strings so shadow translucency survives. This
// asymmetry is deliberate and load-bearing for downstream consumers.
package styles

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/figwing/figwing/models"
)

// NodeStyles is the canonical property bag of one node.
type NodeStyles struct {
	Width        float64           `json:"width,omitempty"`
	Height       float64           `json:"height,omitempty"`
	Opacity      float64           `json:"opacity"`
	Visible      bool              `json:"visible"`
	Fills        []string          `json:"fills,omitempty"`   // hex, visible solid paints only
	Strokes      []string          `json:"strokes,omitempty"` // hex, visible solid paints only
	CornerRadius float64           `json:"cornerRadius,omitempty"`
	Typography   *models.TypeStyle `json:"typography,omitempty"`
}

// EffectCSS is the projection of a node's effect list.
type EffectCSS struct {
	BoxShadow      string `json:"boxShadow,omitempty"`
	Filter         string `json:"filter,omitempty"`
	BackdropFilter string `json:"backdropFilter,omitempty"`
}

// ColorToHex converts a normalized-float color to a 6-digit hex string.
// Alpha is dropped; hex is the surface-color form.
func ColorToHex(c models.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

// ColorToRGBA converts a normalized-float color to an rgba() string with
// 0-255 integer channels and full-precision alpha.
func ColorToRGBA(c models.Color) string {
	alpha := strconv.FormatFloat(c.A, 'f', -1, 64)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", channel(c.R), channel(c.G), channel(c.B), alpha)
}

func channel(v float64) int {
	n := int(math.Round(v * 255))
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}

// Extract builds the canonical property bag for a single node.
func Extract(node *models.DesignNode) NodeStyles {
	s := NodeStyles{
		Opacity: 1,
		Visible: node.IsVisible(),
	}
	if node.Opacity != nil {
		s.Opacity = *node.Opacity
	}
	if box := node.AbsoluteBoundingBox; box != nil {
		s.Width = box.Width
		s.Height = box.Height
	}
	s.Fills = solidColors(node.Fills)
	s.Strokes = solidColors(node.Strokes)
	s.CornerRadius = node.CornerRadius
	if node.Style != nil {
		ts := *node.Style
		s.Typography = &ts
	}
	return s
}

func solidColors(paints []models.Paint) []string {
	var out []string
	for _, p := range paints {
		if !p.IsVisible() {
			continue
		}
		switch p.Type {
		case models.PaintSolid:
			if p.Color != nil {
				out = append(out, ColorToHex(*p.Color))
			}
		default:
			// gradients and images have no single surface color
		}
	}
	return out
}

// CSS projects a node onto CSS-like property names. Only properties the node
// actually carries are emitted.
func CSS(node *models.DesignNode) map[string]string {
	css := make(map[string]string)

	if c := firstSolid(node.Fills); c != nil {
		css["backgroundColor"] = ColorToHex(*c)
	}
	if c := firstSolid(node.Strokes); c != nil {
		css["borderColor"] = ColorToHex(*c)
		css["borderStyle"] = "solid"
		if node.StrokeWeight > 0 {
			css["borderWidth"] = px(node.StrokeWeight)
		}
	}
	if node.CornerRadius > 0 {
		css["borderRadius"] = px(node.CornerRadius)
	}
	if ts := node.Style; ts != nil {
		if ts.FontFamily != "" {
			css["fontFamily"] = ts.FontFamily
		}
		if ts.FontSize > 0 {
			css["fontSize"] = px(ts.FontSize)
		}
		if ts.FontWeight > 0 {
			css["fontWeight"] = formatNumber(ts.FontWeight)
		}
		if ts.LineHeightPx > 0 {
			css["lineHeight"] = px(ts.LineHeightPx)
		}
	}
	if box := node.AbsoluteBoundingBox; box != nil {
		css["width"] = px(box.Width)
		css["height"] = px(box.Height)
	}
	if node.Opacity != nil && *node.Opacity < 1 {
		css["opacity"] = formatNumber(*node.Opacity)
	}
	if !node.IsVisible() {
		css["visibility"] = "hidden"
	}

	effects := ConvertEffects(node.Effects)
	if effects.BoxShadow != "" {
		css["boxShadow"] = effects.BoxShadow
	}
	if effects.Filter != "" {
		css["filter"] = effects.Filter
	}
	if effects.BackdropFilter != "" {
		css["backdropFilter"] = effects.BackdropFilter
	}

	return css
}

func firstSolid(paints []models.Paint) *models.Color {
	for _, p := range paints {
		if p.IsVisible() && p.Type == models.PaintSolid && p.Color != nil {
			return p.Color
		}
	}
	return nil
}

// ConvertEffects folds a node's effect list into CSS. Shadows combine into a
// single comma-joined list in input order; blur effects combine into a
// space-joined filter list. Invisible effects contribute nothing.
func ConvertEffects(effects []models.Effect) EffectCSS {
	var shadows, filters, backdrops []string

	for _, e := range effects {
		if !e.IsVisible() {
			continue
		}
		switch e.Type {
		case models.EffectDropShadow:
			shadows = append(shadows, shadowValue(e, false))
		case models.EffectInnerShadow:
			shadows = append(shadows, shadowValue(e, true))
		case models.EffectLayerBlur:
			filters = append(filters, fmt.Sprintf("blur(%dpx)", roundPx(e.Radius)))
		case models.EffectBackgroundBlur:
			backdrops = append(backdrops, fmt.Sprintf("blur(%dpx)", roundPx(e.Radius)))
		}
	}

	return EffectCSS{
		BoxShadow:      strings.Join(shadows, ", "),
		Filter:         strings.Join(filters, " "),
		BackdropFilter: strings.Join(backdrops, " "),
	}
}

// EffectStrings converts each visible effect independently, preserving order.
func EffectStrings(effects []models.Effect) []string {
	var out []string
	for _, e := range effects {
		if !e.IsVisible() {
			continue
		}
		switch e.Type {
		case models.EffectDropShadow:
			out = append(out, shadowValue(e, false))
		case models.EffectInnerShadow:
			out = append(out, shadowValue(e, true))
		case models.EffectLayerBlur, models.EffectBackgroundBlur:
			out = append(out, fmt.Sprintf("blur(%dpx)", roundPx(e.Radius)))
		}
	}
	return out
}

func shadowValue(e models.Effect, inset bool) string {
	var x, y float64
	if e.Offset != nil {
		x = e.Offset.X
		y = e.Offset.Y
	}
	color := "rgba(0, 0, 0, 1)"
	if e.Color != nil {
		color = ColorToRGBA(*e.Color)
	}
	value := fmt.Sprintf("%dpx %dpx %dpx %dpx %s", roundPx(x), roundPx(y), roundPx(e.Radius), roundPx(e.Spread), color)
	if inset {
		return "inset " + value
	}
	return value
}

func roundPx(v float64) int {
	return int(math.Round(v))
}

func px(v float64) string {
	return formatNumber(v) + "px"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
