// Package states classifies descendant layers of a component into
// interaction states based on naming conventions, and captures their style
// deltas.
package states

import (
	"strings"

	"github.com/figwing/figwing/internal/styles"
	"github.com/figwing/figwing/internal/walker"
	"github.com/figwing/figwing/models"
)

// Canonical lists the recognized state names in matching priority order.
var Canonical = []string{
	"hover", "focus", "active", "pressed", "disabled", "selected",
	"loading", "error", "success", "warning", "visited",
}

// Classify resolves a layer name to a canonical state. An explicit
// "state=<name>" marker wins over the generic substring rules.
func Classify(name string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return "", false
	}

	if i := strings.Index(lower, "state="); i >= 0 {
		value := lower[i+len("state="):]
		for _, state := range Canonical {
			if strings.HasPrefix(value, state) {
				return state, true
			}
		}
	}

	for _, state := range Canonical {
		if matchesState(lower, state) {
			return state, true
		}
	}
	return "", false
}

func matchesState(lower, state string) bool {
	if lower == state {
		return true
	}
	if strings.HasPrefix(lower, state+":") || strings.HasSuffix(lower, ":"+state) {
		return true
	}
	for _, delim := range []string{"_", "-"} {
		if strings.HasPrefix(lower, state+delim) ||
			strings.HasSuffix(lower, delim+state) ||
			strings.Contains(lower, delim+state+delim) {
			return true
		}
	}
	return strings.Contains(lower, state)
}

// Infer walks the whole subtree under root and captures the style delta of
// every layer that names an interaction state. Matches at any depth are
// kept; when two layers resolve to the same state, the later one in
// pre-order wins.
func Infer(root *models.DesignNode) map[string]models.StateStyle {
	if root == nil {
		return nil
	}

	inferred := make(map[string]models.StateStyle)
	matches := walker.Collect(root, func(n *models.DesignNode) bool {
		if n == root {
			return false
		}
		_, ok := Classify(n.Name)
		return ok
	})

	for _, node := range matches {
		state, _ := Classify(node.Name)
		inferred[state] = capture(node)
	}
	if len(inferred) == 0 {
		return nil
	}
	return inferred
}

// capture records the layer's converted visuals plus one level of child
// style bags, keyed by child name. Deliberately not recursive below that.
func capture(node *models.DesignNode) models.StateStyle {
	s := models.StateStyle{
		LayerName: node.Name,
		Styles:    styles.CSS(node),
		Colors:    styles.Extract(node).Fills,
		Effects:   styles.EffectStrings(node.Effects),
		Visible:   node.IsVisible(),
	}
	if len(node.Children) > 0 {
		s.Children = make(map[string]map[string]string, len(node.Children))
		for _, child := range node.Children {
			s.Children[child.Name] = styles.CSS(child)
		}
	}
	return s
}
