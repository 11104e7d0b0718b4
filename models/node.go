package models

import "time"

// NodeType identifies the kind of a design-file node.
type NodeType string

const (
	NodeDocument     NodeType = "DOCUMENT"
	NodeCanvas       NodeType = "CANVAS"
	NodeFrame        NodeType = "FRAME"
	NodeGroup        NodeType = "GROUP"
	NodeComponent    NodeType = "COMPONENT"
	NodeComponentSet NodeType = "COMPONENT_SET"
	NodeInstance     NodeType = "INSTANCE"
	NodeText         NodeType = "TEXT"
	NodeVector       NodeType = "VECTOR"
	NodeRectangle    NodeType = "RECTANGLE"
)

// PaintType tags the closed set of paint variants we understand.
type PaintType string

const (
	PaintSolid           PaintType = "SOLID"
	PaintGradientLinear  PaintType = "GRADIENT_LINEAR"
	PaintGradientRadial  PaintType = "GRADIENT_RADIAL"
	PaintGradientAngular PaintType = "GRADIENT_ANGULAR"
	PaintImage           PaintType = "IMAGE"
)

// EffectType tags the closed set of effect variants we understand.
type EffectType string

const (
	EffectDropShadow     EffectType = "DROP_SHADOW"
	EffectInnerShadow    EffectType = "INNER_SHADOW"
	EffectLayerBlur      EffectType = "LAYER_BLUR"
	EffectBackgroundBlur EffectType = "BACKGROUND_BLUR"
)

// Color is a normalized-float RGBA color as delivered by the design API,
// each channel in 0..1.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Paint is one fill or stroke entry. The variant is selected by Type; fields
// not belonging to the active variant are zero. Consumers must dispatch on
// Type rather than probe fields.
type Paint struct {
	Type    PaintType `json:"type"`
	Visible *bool     `json:"visible,omitempty"` // nil means visible
	Opacity *float64  `json:"opacity,omitempty"`
	Color   *Color    `json:"color,omitempty"` // SOLID only
	// Gradient variants
	GradientStops []GradientStop `json:"gradientStops,omitempty"`
	// IMAGE only
	ScaleMode string `json:"scaleMode,omitempty"`
	ImageRef  string `json:"imageRef,omitempty"`
}

// IsVisible reports whether the paint contributes to rendering.
func (p Paint) IsVisible() bool {
	return p.Visible == nil || *p.Visible
}

// GradientStop is a single color stop of a gradient paint.
type GradientStop struct {
	Position float64 `json:"position"`
	Color    Color   `json:"color"`
}

// Vector is a 2D offset.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Effect is one shadow or blur entry, tagged by Type like Paint.
type Effect struct {
	Type    EffectType `json:"type"`
	Visible *bool      `json:"visible,omitempty"`
	Color   *Color     `json:"color,omitempty"`
	Offset  *Vector    `json:"offset,omitempty"`
	Radius  float64    `json:"radius"`
	Spread  float64    `json:"spread,omitempty"`
}

// IsVisible reports whether the effect contributes to rendering.
func (e Effect) IsVisible() bool {
	return e.Visible == nil || *e.Visible
}

// BoundingBox is the absolute bounding box of a node.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// TypeStyle carries the typography attributes of a TEXT node or text style.
type TypeStyle struct {
	FontFamily          string  `json:"fontFamily,omitempty"`
	FontWeight          float64 `json:"fontWeight,omitempty"`
	FontSize            float64 `json:"fontSize,omitempty"`
	LineHeightPx        float64 `json:"lineHeightPx,omitempty"`
	LineHeightPercent   float64 `json:"lineHeightPercent,omitempty"`
	LetterSpacing       float64 `json:"letterSpacing,omitempty"`
	TextAlignHorizontal string  `json:"textAlignHorizontal,omitempty"`
	TextCase            string  `json:"textCase,omitempty"`
}

// ComponentPropertyDefinition describes one declared property of a component
// (or component set), keyed by property name on the node.
type ComponentPropertyDefinition struct {
	Type          string   `json:"type"` // BOOLEAN, TEXT, INSTANCE_SWAP, VARIANT
	DefaultValue  any      `json:"defaultValue,omitempty"`
	VariantValues []string `json:"variantOptions,omitempty"`
}

// DesignNode is one element of the design document tree. The tree is an
// immutable snapshot per fetch; a child appears under exactly one parent.
type DesignNode struct {
	ID                  string                                 `json:"id"`
	Name                string                                 `json:"name"`
	Type                NodeType                               `json:"type"`
	Visible             *bool                                  `json:"visible,omitempty"`
	Opacity             *float64                               `json:"opacity,omitempty"`
	Children            []*DesignNode                          `json:"children,omitempty"`
	AbsoluteBoundingBox *BoundingBox                           `json:"absoluteBoundingBox,omitempty"`
	Fills               []Paint                                `json:"fills,omitempty"`
	Strokes             []Paint                                `json:"strokes,omitempty"`
	StrokeWeight        float64                                `json:"strokeWeight,omitempty"`
	CornerRadius        float64                                `json:"cornerRadius,omitempty"`
	Effects             []Effect                               `json:"effects,omitempty"`
	Style               *TypeStyle                             `json:"style,omitempty"`
	Description         string                                 `json:"description,omitempty"`
	PropertyDefinitions map[string]ComponentPropertyDefinition `json:"componentPropertyDefinitions,omitempty"`
}

// IsVisible reports whether the node itself is visible.
func (n *DesignNode) IsVisible() bool {
	return n.Visible == nil || *n.Visible
}

// DesignDocument is the root of a fetched design file.
type DesignDocument struct {
	Name         string      `json:"name"`
	LastModified time.Time   `json:"lastModified"`
	Version      string      `json:"version,omitempty"`
	Document     *DesignNode `json:"document"`
}
