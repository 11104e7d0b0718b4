package types

import "time"

// MCP Tool Parameter Types

// GetComponentParams for extracting a single component record
type GetComponentParams struct {
	FileID           string `json:"fileId" mcp:"Design file key (required)"`
	ComponentID      string `json:"componentId" mcp:"Component node ID, e.g. '12:345' (required)"`
	IncludeVariants  bool   `json:"includeVariants,omitempty" mcp:"Expand variants when the node is a component set"`
	IncludeInstances bool   `json:"includeInstances,omitempty" mcp:"Include instance usage data"`
}

// ListComponentsParams for listing components of a file
type ListComponentsParams struct {
	FileID        string `json:"fileId" mcp:"Design file key (required)"`
	Kind          string `json:"kind,omitempty" mcp:"Filter by kind: COMPONENT, COMPONENT_SET"`
	NameFilter    string `json:"nameFilter,omitempty" mcp:"Case-insensitive regular expression matched against component names"`
	PublishedOnly bool   `json:"publishedOnly,omitempty" mcp:"Only include published components"`
}

// GetComponentSpecParams for building a full implementation specification
type GetComponentSpecParams struct {
	FileID      string `json:"fileId" mcp:"Design file key (required)"`
	ComponentID string `json:"componentId" mcp:"Component node ID (required)"`
}

// CheckChangesParams for diffing a file against a previous sync point
type CheckChangesParams struct {
	FileID       string   `json:"fileId" mcp:"Design file key (required)"`
	LastSync     string   `json:"lastSync" mcp:"RFC 3339 timestamp of the previous sync (required)"`
	ComponentIDs []string `json:"componentIds,omitempty" mcp:"Restrict the check to these component IDs"`
}

// GetDesignTokensParams for synthesizing the token collection of a file
type GetDesignTokensParams struct {
	FileID     string   `json:"fileId" mcp:"Design file key (required)"`
	TokenTypes []string `json:"tokenTypes,omitempty" mcp:"Token buckets to return: colors, typography, spacing, effects, variables, or all"`
}

// SetWorkingFileParams associates a design file with the calling client
type SetWorkingFileParams struct {
	URL      string `json:"url" mcp:"Figma file URL, e.g. https://www.figma.com/design/KEY/Name (required)"`
	FileName string `json:"fileName,omitempty" mcp:"Optional display name overriding the URL-encoded one"`
}

// UpdateComponentStatusParams records implementation progress for a component
type UpdateComponentStatusParams struct {
	ComponentID   string `json:"componentId" mcp:"Component node ID (required)"`
	ComponentName string `json:"componentName,omitempty" mcp:"Component display name"`
	Status        string `json:"status" mcp:"New status: pending, in-progress, implemented, needs-update (required)"`
	Notes         string `json:"notes,omitempty" mcp:"Free-form implementation notes"`
	Framework     string `json:"framework,omitempty" mcp:"Target framework, e.g. react, vue, svelte"`
}

// MCP Tool Response Types

// WorkingFileResponse describes the caller's current working-file session
type WorkingFileResponse struct {
	FileID       string    `json:"fileId"`
	FileName     string    `json:"fileName,omitempty"`
	URL          string    `json:"url"`
	SetAt        time.Time `json:"setAt"`
	LastAccessed time.Time `json:"lastAccessed"`
	TrackedCount int       `json:"trackedCount"`
}

// StatusUpdateResponse confirms a component status change
type StatusUpdateResponse struct {
	Success     bool   `json:"success"`
	ComponentID string `json:"componentId"`
	Status      string `json:"status"`
	Message     string `json:"message,omitempty"`
}

// ClearWorkingFileResponse confirms session removal
type ClearWorkingFileResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CacheStatsResponse reports extraction-cache occupancy
type CacheStatsResponse struct {
	Entries    int `json:"entries"`
	MaxEntries int `json:"maxEntries"`
}
