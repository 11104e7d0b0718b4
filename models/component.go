package models

import "time"

// ComponentKind distinguishes single components from variant sets.
type ComponentKind string

const (
	KindComponent    ComponentKind = "COMPONENT"
	KindComponentSet ComponentKind = "COMPONENT_SET"
)

// Dimensions is the rendered size of a component in pixels.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ComponentProperties is the visual summary extracted from a component node.
type ComponentProperties struct {
	Dimensions *Dimensions `json:"dimensions,omitempty"`
	Colors     []string    `json:"colors,omitempty"`
	Typography []TypeStyle `json:"typography,omitempty"`
	Spacing    []float64   `json:"spacing,omitempty"`
	Effects    []string    `json:"effects,omitempty"`
}

// PropDefinition is one entry of a component's public interface.
type PropDefinition struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"` // boolean, string, component-reference, any
	DefaultValue any      `json:"defaultValue,omitempty"`
	Options      []string `json:"options,omitempty"`
}

// EventDefinition is a synthetic event a consumer should wire up.
type EventDefinition struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ComponentInterface is the framework-agnostic API surface of a component.
type ComponentInterface struct {
	Props  []PropDefinition  `json:"props"`
	Events []EventDefinition `json:"events"`
	Slots  []string          `json:"slots"`
}

// Variant is one member of a COMPONENT_SET. Variant expansion is a known
// gap: ExtractComponent returns an empty set until per-variant extraction
// lands (see DESIGN.md).
type Variant struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Properties map[string]string `json:"properties,omitempty"`
}

// ComponentRecord is the structured, framework-agnostic record of one
// component, identified by (fileID, componentID). Read-only after creation.
type ComponentRecord struct {
	ID          string              `json:"id" validate:"required"`
	Name        string              `json:"name" validate:"required"`
	Kind        ComponentKind       `json:"kind" validate:"required,oneof=COMPONENT COMPONENT_SET"`
	Description string              `json:"description,omitempty"`
	Properties  ComponentProperties `json:"properties"`
	Variants    []Variant           `json:"variants,omitempty"`
	Interface   ComponentInterface  `json:"componentInterface"`
}

// StateStyle captures one inferred interaction state of a component.
type StateStyle struct {
	LayerName string                       `json:"layerName"`
	Styles    map[string]string            `json:"styles,omitempty"`
	Colors    []string                     `json:"colors,omitempty"`
	Effects   []string                     `json:"effects,omitempty"`
	Visible   bool                         `json:"visible"`
	Children  map[string]map[string]string `json:"children,omitempty"`
}

// ComponentStyling groups the CSS-like projections of a component.
type ComponentStyling struct {
	BaseStyles map[string]string            `json:"baseStyles"`
	Variants   map[string]map[string]string `json:"variants,omitempty"`
	States     map[string]StateStyle        `json:"states,omitempty"`
}

// Accessibility carries the inferred accessibility contract.
type Accessibility struct {
	Role     string            `json:"role,omitempty"`
	Keyboard map[string]string `json:"keyboard,omitempty"`
}

// ComponentSpecification wraps a ComponentRecord with everything an
// implementer needs: styling, states, accessibility, and interactions.
type ComponentSpecification struct {
	Component     ComponentRecord              `json:"component"`
	Styling       ComponentStyling             `json:"styling"`
	Accessibility *Accessibility               `json:"accessibility,omitempty"`
	Interactions  map[string]map[string]string `json:"interactions,omitempty"`
	Usage         string                       `json:"usage,omitempty"`
}

// ComponentListItem is one row of a file's component listing.
type ComponentListItem struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Kind         ComponentKind `json:"kind"`
	Description  string        `json:"description,omitempty"`
	Published    bool          `json:"published"`
	LastModified *time.Time    `json:"lastModified,omitempty"`
}

// ComponentList is the result of listing a file's components.
type ComponentList struct {
	Components []ComponentListItem `json:"components"`
	TotalCount int                 `json:"totalCount"`
	HasMore    bool                `json:"hasMore"`
}

// ComponentChange reports one component modified since a sync point.
type ComponentChange struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ChangeType   string    `json:"changeType"` // modified; new/deleted need snapshot storage
	LastModified time.Time `json:"lastModified"`
}

// ChangeSet is the result of a change check against a sync timestamp.
type ChangeSet struct {
	HasChanges bool              `json:"hasChanges"`
	Modified   []ComponentChange `json:"modified"`
	New        []ComponentChange `json:"new"`
	Deleted    []ComponentChange `json:"deleted"`
	CheckedAt  time.Time         `json:"checkedAt"`
}
