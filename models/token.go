package models

// StyleType identifies a legacy published style.
type StyleType string

const (
	StyleFill   StyleType = "FILL"
	StyleText   StyleType = "TEXT"
	StyleEffect StyleType = "EFFECT"
	StyleGrid   StyleType = "GRID"
)

// StyleRecord is a published legacy style with its visual values already
// resolved from the style's backing node by the API client.
type StyleRecord struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	StyleType   StyleType  `json:"styleType"`
	Description string     `json:"description,omitempty"`
	Fills       []Paint    `json:"fills,omitempty"`
	TypeStyle   *TypeStyle `json:"typeStyle,omitempty"`
	Effects     []Effect   `json:"effects,omitempty"`
}

// VariableType is the resolved type of a modern design variable.
type VariableType string

const (
	VariableColor   VariableType = "COLOR"
	VariableFloat   VariableType = "FLOAT"
	VariableString  VariableType = "STRING"
	VariableBoolean VariableType = "BOOLEAN"
)

// Variable is a multi-mode token source. ValuesByMode maps mode IDs to raw
// values: Color for COLOR, float64 for FLOAT, string for STRING, bool for
// BOOLEAN. Alias values are not resolved.
type Variable struct {
	ID                   string         `json:"id"`
	Name                 string         `json:"name"`
	VariableCollectionID string         `json:"variableCollectionId"`
	ResolvedType         VariableType   `json:"resolvedType"`
	Description          string         `json:"description,omitempty"`
	ValuesByMode         map[string]any `json:"valuesByMode"`
}

// VariableMode is one mode of a collection (e.g. light/dark).
type VariableMode struct {
	ModeID string `json:"modeId"`
	Name   string `json:"name"`
}

// VariableCollection groups variables and defines their modes.
type VariableCollection struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Modes         []VariableMode `json:"modes"`
	DefaultModeID string         `json:"defaultModeId"`
}

// VariablePayload is the full variables fetch result.
type VariablePayload struct {
	Variables   []Variable           `json:"variables"`
	Collections []VariableCollection `json:"collections"`
}

// TokenType categorizes a design token by what it configures.
type TokenType string

const (
	TokenColor      TokenType = "color"
	TokenTypography TokenType = "typography"
	TokenSpacing    TokenType = "spacing"
	TokenEffect     TokenType = "effect"
	TokenContent    TokenType = "content"
	TokenBoolean    TokenType = "boolean"
	TokenUnknown    TokenType = "unknown"
)

// DesignToken is a named, typed design value. Name is a lowercase hyphenated
// slug. Names are not globally unique: a legacy style and a variable may
// produce the same slug, and both are kept.
type DesignToken struct {
	Name           string         `json:"name"`
	Value          any            `json:"value"`
	Type           TokenType      `json:"type"`
	Category       string         `json:"category,omitempty"`
	Usage          []string       `json:"usage,omitempty"`
	CollectionName string         `json:"collectionName,omitempty"`
	VariableID     string         `json:"variableId,omitempty"`
	Modes          map[string]any `json:"modes,omitempty"`
}

// TokenMeta flags degraded synthesis. VariablesAvailable=false means the
// variables source could not be read (plan/scope limitation) and the
// collection was built from styles only. This is a partial result, not an
// error.
type TokenMeta struct {
	VariablesAvailable bool   `json:"variablesAvailable"`
	VariablesMessage   string `json:"variablesMessage,omitempty"`
	PlanRequired       string `json:"planRequired,omitempty"`
}

// TokenCollection is the unified, categorized token set for one file.
// Variable-derived tokens appear both under Variables and, when their
// category maps onto a legacy bucket, in that bucket as well.
type TokenCollection struct {
	Colors     []DesignToken `json:"colors"`
	Typography []DesignToken `json:"typography"`
	Spacing    []DesignToken `json:"spacing"`
	Effects    []DesignToken `json:"effects"`
	Variables  []DesignToken `json:"variables"`
	Meta       TokenMeta     `json:"meta"`
}
