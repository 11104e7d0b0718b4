package extract

import (
	"sort"
	"strings"

	"github.com/figwing/figwing/internal/styles"
	"github.com/figwing/figwing/internal/walker"
	"github.com/figwing/figwing/models"
)

// interactiveKeywords mark component names that imply user interaction.
var interactiveKeywords = []string{"button", "link", "input", "select", "checkbox", "radio"}

// baseInteractionStates are always present in a specification's interaction
// map, defaulting to empty when no matching layer was found.
var baseInteractionStates = []string{"hover", "active", "focus", "disabled"}

func buildRecord(node *models.DesignNode, includeVariants bool) *models.ComponentRecord {
	kind := models.KindComponent
	if node.Type == models.NodeComponentSet {
		kind = models.KindComponentSet
	}

	record := &models.ComponentRecord{
		ID:          node.ID,
		Name:        node.Name,
		Kind:        kind,
		Description: node.Description,
		Properties:  collectProperties(node),
		Interface:   buildInterface(node),
	}
	if includeVariants && kind == models.KindComponentSet {
		record.Variants = expandVariants(node)
	}
	return record
}

// collectProperties summarizes the visual surface of the whole subtree:
// dimensions from the root box, deduplicated fill/stroke colors, every
// distinct text style, spacing-ish radii, and converted effects.
func collectProperties(root *models.DesignNode) models.ComponentProperties {
	props := models.ComponentProperties{}
	if box := root.AbsoluteBoundingBox; box != nil {
		props.Dimensions = &models.Dimensions{Width: box.Width, Height: box.Height}
	}

	seenColor := make(map[string]bool)
	seenSpacing := make(map[float64]bool)
	all := walker.Collect(root, func(*models.DesignNode) bool { return true })
	for _, node := range all {
		bag := styles.Extract(node)
		for _, hex := range bag.Fills {
			if !seenColor[hex] {
				seenColor[hex] = true
				props.Colors = append(props.Colors, hex)
			}
		}
		for _, hex := range bag.Strokes {
			if !seenColor[hex] {
				seenColor[hex] = true
				props.Colors = append(props.Colors, hex)
			}
		}
		if bag.Typography != nil {
			props.Typography = append(props.Typography, *bag.Typography)
		}
		if node.CornerRadius > 0 && !seenSpacing[node.CornerRadius] {
			seenSpacing[node.CornerRadius] = true
			props.Spacing = append(props.Spacing, node.CornerRadius)
		}
		props.Effects = append(props.Effects, styles.EffectStrings(node.Effects)...)
	}
	return props
}

// buildInterface derives the framework-agnostic component API from the
// node's property definitions plus a synthetic click event for interactive
// components.
func buildInterface(node *models.DesignNode) models.ComponentInterface {
	iface := models.ComponentInterface{
		Props:  []models.PropDefinition{},
		Events: []models.EventDefinition{},
		Slots:  []string{},
	}

	names := make([]string, 0, len(node.PropertyDefinitions))
	for name := range node.PropertyDefinitions {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		def := node.PropertyDefinitions[name]
		prop := models.PropDefinition{
			Name:         propName(name),
			Type:         propType(def.Type),
			DefaultValue: def.DefaultValue,
		}
		if def.Type == "VARIANT" {
			prop.Options = def.VariantValues
		}
		iface.Props = append(iface.Props, prop)
	}

	if isInteractive(node.Name) {
		iface.Events = append(iface.Events, models.EventDefinition{
			Name:        "click",
			Description: "Fired when the component is activated",
		})
	}
	return iface
}

// propName strips the "#1234:5" suffix the API appends to property names.
func propName(raw string) string {
	if i := strings.Index(raw, "#"); i > 0 {
		return raw[:i]
	}
	return raw
}

func propType(apiType string) string {
	switch apiType {
	case "BOOLEAN":
		return "boolean"
	case "TEXT":
		return "string"
	case "INSTANCE_SWAP":
		return "component-reference"
	case "VARIANT":
		return "string"
	default:
		return "any"
	}
}

// expandVariants is a stub: per-variant extraction (resolving each child
// component's property axes into a variant record) is not designed yet.
// Returning an empty set keeps the shape stable for callers.
func expandVariants(*models.DesignNode) []models.Variant {
	return []models.Variant{}
}

func isInteractive(name string) bool {
	lower := strings.ToLower(name)
	for _, keyword := range interactiveKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// inferAccessibility maps name keywords to an ARIA role and, for
// interactive components, the standard activation keys. Returns nil when
// nothing could be inferred.
func inferAccessibility(name string) *models.Accessibility {
	lower := strings.ToLower(name)
	role := ""
	switch {
	case strings.Contains(lower, "button"):
		role = "button"
	case strings.Contains(lower, "link"):
		role = "link"
	case strings.Contains(lower, "input"):
		role = "textbox"
	}

	if role == "" && !isInteractive(name) {
		return nil
	}

	a := &models.Accessibility{Role: role}
	if isInteractive(name) {
		a.Keyboard = map[string]string{
			"Enter": "activate",
			"Space": "activate",
		}
	}
	return a
}

// buildInteractions seeds the four base states and layers any discovered
// state styles on top.
func buildInteractions(inferred map[string]models.StateStyle) map[string]map[string]string {
	interactions := make(map[string]map[string]string, len(baseInteractionStates)+len(inferred))
	for _, state := range baseInteractionStates {
		interactions[state] = map[string]string{}
	}
	for state, style := range inferred {
		interactions[state] = style.Styles
	}
	return interactions
}
