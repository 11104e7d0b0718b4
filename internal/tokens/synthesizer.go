// Package tokens merges legacy published styles and modern variables into a
// unified, categorized design-token collection.
package tokens

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/figwing/figwing/figma"
	"github.com/figwing/figwing/internal/cache"
	"github.com/figwing/figwing/internal/styles"
	"github.com/figwing/figwing/models"
)

const collectionTTL = 24 * time.Hour

// Service synthesizes and caches token collections per file.
type Service struct {
	api   figma.Client
	cache cache.Store
	log   *logrus.Logger
}

// NewService wires a synthesizer over the given API client and cache.
func NewService(api figma.Client, store cache.Store, log *logrus.Logger) *Service {
	if log == nil {
		log = logrus.New()
	}
	return &Service{api: api, cache: store, log: log}
}

// CacheKey is the stable cache key for a file's token collection.
func CacheKey(fileID string) string {
	return "tokens:" + fileID
}

// Collection returns the file's token collection, synthesizing on cache
// miss. tokenTypes filters the returned buckets post-cache; empty or "all"
// returns everything. A 403 on the variables endpoint degrades to
// styles-only synthesis flagged in Meta rather than failing.
func (s *Service) Collection(ctx context.Context, fileID string, tokenTypes []string) (*models.TokenCollection, error) {
	key := CacheKey(fileID)
	if cached, ok := cache.Typed[*models.TokenCollection](s.cache, key); ok {
		s.log.WithField("fileId", fileID).Debug("token cache hit")
		return filterCollection(cached, tokenTypes), nil
	}

	styleRecords, err := s.api.GetStyles(ctx, fileID)
	if err != nil {
		return nil, err
	}

	collection := &models.TokenCollection{
		Colors:     []models.DesignToken{},
		Typography: []models.DesignToken{},
		Spacing:    []models.DesignToken{},
		Effects:    []models.DesignToken{},
		Variables:  []models.DesignToken{},
		Meta:       models.TokenMeta{VariablesAvailable: true},
	}
	appendStyleTokens(collection, styleRecords)

	payload, err := s.api.GetVariables(ctx, fileID)
	switch {
	case err == nil:
		appendVariableTokens(collection, payload)
	case figma.IsForbidden(err):
		collection.Meta = models.TokenMeta{
			VariablesAvailable: false,
			VariablesMessage:   "Variables are not accessible with the current token or plan; tokens were built from styles only.",
			PlanRequired:       "enterprise",
		}
		s.log.WithField("fileId", fileID).Warn("variables endpoint forbidden, degrading to styles only")
	default:
		return nil, err
	}

	s.cache.Set(key, collection, collectionTTL)
	return filterCollection(collection, tokenTypes), nil
}

// appendStyleTokens converts legacy styles: FILL to a color token from the
// first solid fill, TEXT to a typography token, EFFECT to an effect token
// from the first effect. Styles without a usable value yield nothing.
func appendStyleTokens(collection *models.TokenCollection, records []models.StyleRecord) {
	for _, record := range records {
		switch record.StyleType {
		case models.StyleFill:
			if token, ok := fillToken(record); ok {
				collection.Colors = append(collection.Colors, token)
			}
		case models.StyleText:
			if token, ok := textToken(record); ok {
				collection.Typography = append(collection.Typography, token)
			}
		case models.StyleEffect:
			if token, ok := effectToken(record); ok {
				collection.Effects = append(collection.Effects, token)
			}
		}
	}
}

func fillToken(record models.StyleRecord) (models.DesignToken, bool) {
	for _, paint := range record.Fills {
		if paint.IsVisible() && paint.Type == models.PaintSolid && paint.Color != nil {
			return models.DesignToken{
				Name:     NormalizeName(record.Name),
				Value:    styles.ColorToHex(*paint.Color),
				Type:     models.TokenColor,
				Category: colorCategory(record.Name),
			}, true
		}
	}
	return models.DesignToken{}, false
}

func textToken(record models.StyleRecord) (models.DesignToken, bool) {
	ts := record.TypeStyle
	if ts == nil {
		return models.DesignToken{}, false
	}

	// Line height falls back from px to percent-of-font-size to 1.2x.
	lineHeight := ts.LineHeightPx
	if lineHeight == 0 && ts.LineHeightPercent > 0 {
		lineHeight = ts.FontSize * ts.LineHeightPercent / 100
	}
	if lineHeight == 0 {
		lineHeight = ts.FontSize * 1.2
	}

	value := map[string]any{
		"fontFamily":    ts.FontFamily,
		"fontSize":      px(ts.FontSize),
		"fontWeight":    ts.FontWeight,
		"lineHeight":    px(lineHeight),
		"letterSpacing": px(ts.LetterSpacing),
	}
	return models.DesignToken{
		Name:     NormalizeName(record.Name),
		Value:    value,
		Type:     models.TokenTypography,
		Category: typographyCategory(record.Name),
	}, true
}

func effectToken(record models.StyleRecord) (models.DesignToken, bool) {
	converted := styles.EffectStrings(record.Effects)
	if len(converted) == 0 {
		return models.DesignToken{}, false
	}
	return models.DesignToken{
		Name:     NormalizeName(record.Name),
		Value:    converted[0],
		Type:     models.TokenEffect,
		Category: effectCategory(record.Name),
	}, true
}

// appendVariableTokens resolves each variable against its collection's
// default mode. Variables with no value in that mode are skipped silently.
// Every variable token also lands in the matching legacy bucket so
// consumers can read one shape regardless of source.
func appendVariableTokens(collection *models.TokenCollection, payload *models.VariablePayload) {
	if payload == nil {
		return
	}

	collections := make(map[string]models.VariableCollection, len(payload.Collections))
	for _, col := range payload.Collections {
		collections[col.ID] = col
	}

	for _, variable := range payload.Variables {
		col, ok := collections[variable.VariableCollectionID]
		if !ok {
			continue
		}
		raw, ok := variable.ValuesByMode[col.DefaultModeID]
		if !ok {
			continue
		}
		value, tokenType, category, ok := convertVariableValue(variable, raw)
		if !ok {
			continue
		}

		token := models.DesignToken{
			Name:           NormalizeName(col.Name + "-" + variable.Name),
			Value:          value,
			Type:           tokenType,
			Category:       category,
			CollectionName: col.Name,
			VariableID:     variable.ID,
		}
		if len(col.Modes) > 1 {
			token.Modes = make(map[string]any, len(variable.ValuesByMode))
			for modeID, modeRaw := range variable.ValuesByMode {
				if modeValue, _, _, ok := convertVariableValue(variable, modeRaw); ok {
					token.Modes[modeID] = modeValue
				}
			}
		}

		collection.Variables = append(collection.Variables, token)
		switch {
		case tokenType == models.TokenColor:
			collection.Colors = append(collection.Colors, token)
		case tokenType == models.TokenSpacing:
			collection.Spacing = append(collection.Spacing, token)
		case tokenType == models.TokenContent && category == "font-family":
			collection.Typography = append(collection.Typography, token)
		case tokenType == models.TokenEffect:
			collection.Effects = append(collection.Effects, token)
		}
	}
}

func convertVariableValue(variable models.Variable, raw any) (any, models.TokenType, string, bool) {
	switch variable.ResolvedType {
	case models.VariableColor:
		color, ok := colorValue(raw)
		if !ok {
			return nil, models.TokenUnknown, "", false
		}
		return styles.ColorToHex(color), models.TokenColor, colorCategory(variable.Name), true
	case models.VariableFloat:
		number, ok := raw.(float64)
		if !ok {
			return nil, models.TokenUnknown, "", false
		}
		return px(number), models.TokenSpacing, spacingCategory(variable.Name), true
	case models.VariableString:
		text, ok := raw.(string)
		if !ok {
			return nil, models.TokenUnknown, "", false
		}
		category := "content"
		if containsAny(strings.ToLower(variable.Name), "font", "family", "typeface") {
			category = "font-family"
		}
		return text, models.TokenContent, category, true
	case models.VariableBoolean:
		flag, ok := raw.(bool)
		if !ok {
			return nil, models.TokenUnknown, "", false
		}
		return flag, models.TokenBoolean, "toggle", true
	default:
		return nil, models.TokenUnknown, "", false
	}
}

// colorValue accepts both a decoded models.Color and the raw JSON map shape.
func colorValue(raw any) (models.Color, bool) {
	switch v := raw.(type) {
	case models.Color:
		return v, true
	case map[string]any:
		number := func(key string) float64 {
			f, _ := v[key].(float64)
			return f
		}
		c := models.Color{R: number("r"), G: number("g"), B: number("b"), A: number("a")}
		if _, ok := v["a"]; !ok {
			c.A = 1
		}
		return c, true
	default:
		return models.Color{}, false
	}
}

// filterCollection applies a tokenTypes filter post-cache, returning a copy
// so the cached value stays complete. Meta always survives filtering.
func filterCollection(collection *models.TokenCollection, tokenTypes []string) *models.TokenCollection {
	if len(tokenTypes) == 0 {
		return collection
	}
	want := make(map[string]bool, len(tokenTypes))
	for _, t := range tokenTypes {
		name := strings.ToLower(strings.TrimSpace(t))
		if name == "all" {
			return collection
		}
		want[name] = true
	}

	filtered := &models.TokenCollection{Meta: collection.Meta}
	if want["colors"] {
		filtered.Colors = collection.Colors
	}
	if want["typography"] {
		filtered.Typography = collection.Typography
	}
	if want["spacing"] {
		filtered.Spacing = collection.Spacing
	}
	if want["effects"] {
		filtered.Effects = collection.Effects
	}
	if want["variables"] {
		filtered.Variables = collection.Variables
	}
	return filtered
}

var slugNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeName converts a style or variable name to a lowercase hyphenated
// slug, e.g. "Primary / Button BG" -> "primary-button-bg".
func NormalizeName(name string) string {
	slug := slugNonAlnum.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

func colorCategory(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "primary"):
		return "primary"
	case strings.Contains(lower, "secondary"):
		return "secondary"
	case containsAny(lower, "neutral", "gray", "grey"):
		return "neutral"
	case containsAny(lower, "success", "error", "warning", "danger", "info"):
		return "semantic"
	case strings.Contains(lower, "text"):
		return "text"
	case containsAny(lower, "background", "bg", "surface"):
		return "background"
	case containsAny(lower, "border", "stroke", "outline"):
		return "border"
	default:
		return "miscellaneous"
	}
}

func typographyCategory(name string) string {
	lower := strings.ToLower(name)
	switch {
	case containsAny(lower, "heading", "title", "display", "h1", "h2", "h3", "h4", "h5", "h6"):
		return "headings"
	case containsAny(lower, "body", "paragraph"):
		return "body"
	case containsAny(lower, "caption", "small", "footnote"):
		return "captions"
	case strings.Contains(lower, "label"):
		return "labels"
	case containsAny(lower, "button", "cta"):
		return "buttons"
	default:
		return "miscellaneous"
	}
}

func effectCategory(name string) string {
	lower := strings.ToLower(name)
	switch {
	case containsAny(lower, "shadow", "elevation"):
		return "shadows"
	case strings.Contains(lower, "blur"):
		return "blur"
	case strings.Contains(lower, "glow"):
		return "glow"
	default:
		return "effects"
	}
}

func spacingCategory(name string) string {
	lower := strings.ToLower(name)
	switch {
	case containsAny(lower, "spacing", "space", "gap", "padding", "margin"):
		return "spacing"
	case containsAny(lower, "border", "stroke"):
		return "border"
	case containsAny(lower, "radius", "corner", "rounded"):
		return "radius"
	default:
		return "dimension"
	}
}

func containsAny(haystack string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

func px(v float64) string {
	return fmt.Sprintf("%spx", strconv.FormatFloat(v, 'f', -1, 64))
}
