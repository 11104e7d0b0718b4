// Package walker implements pre-order depth-first traversal over the design
// node tree. The document is nominally a tree, but traversal tracks visited
// IDs so pathological back-references cannot loop it.
package walker

import "github.com/figwing/figwing/models"

// Predicate decides whether a node is a match.
type Predicate func(*models.DesignNode) bool

// Find returns the first node in pre-order for which pred holds, or nil.
func Find(root *models.DesignNode, pred Predicate) *models.DesignNode {
	var found *models.DesignNode
	walk(root, make(map[string]bool), func(n *models.DesignNode) bool {
		if pred(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// Collect returns every node in pre-order for which pred holds.
func Collect(root *models.DesignNode, pred Predicate) []*models.DesignNode {
	var matches []*models.DesignNode
	walk(root, make(map[string]bool), func(n *models.DesignNode) bool {
		if pred(n) {
			matches = append(matches, n)
		}
		return true
	})
	return matches
}

// FindByID locates a node by its ID.
func FindByID(root *models.DesignNode, id string) *models.DesignNode {
	return Find(root, func(n *models.DesignNode) bool { return n.ID == id })
}

// walk visits nodes in pre-order, skipping any node already seen. The visit
// callback returns false to stop the traversal.
func walk(n *models.DesignNode, seen map[string]bool, visit func(*models.DesignNode) bool) bool {
	if n == nil || seen[n.ID] {
		return true
	}
	seen[n.ID] = true

	if !visit(n) {
		return false
	}
	for _, child := range n.Children {
		if !walk(child, seen, visit) {
			return false
		}
	}
	return true
}
