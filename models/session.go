package models

import "time"

// ImplementationStatus tracks how far a client has taken one component.
type ImplementationStatus string

const (
	StatusPending     ImplementationStatus = "pending"
	StatusInProgress  ImplementationStatus = "in-progress"
	StatusImplemented ImplementationStatus = "implemented"
	StatusNeedsUpdate ImplementationStatus = "needs-update"
)

// ComponentStatus is one tracked component inside a working-file session.
// ImplementedAt is set the first time the status becomes implemented and is
// preserved on later updates, unless the status moves away from implemented
// and back again.
type ComponentStatus struct {
	ComponentID   string               `json:"componentId" validate:"required"`
	ComponentName string               `json:"componentName"`
	Status        ImplementationStatus `json:"status" validate:"required,oneof=pending in-progress implemented needs-update"`
	LastModified  *time.Time           `json:"lastModified,omitempty"`
	ImplementedAt *time.Time           `json:"implementedAt,omitempty"`
	Notes         string               `json:"notes,omitempty"`
	Framework     string               `json:"framework,omitempty"`
}

// WorkingFileSession is one client's association with a design file. The
// session expires a fixed interval after SetAt regardless of access;
// LastAccessed is bookkeeping only.
type WorkingFileSession struct {
	FileID       string                      `json:"fileId" validate:"required"`
	FileName     string                      `json:"fileName,omitempty"`
	URL          string                      `json:"url" validate:"required,url"`
	SetAt        time.Time                   `json:"setAt"`
	LastAccessed time.Time                   `json:"lastAccessed"`
	Statuses     map[string]*ComponentStatus `json:"statuses"`
}

// ImplementationQueue partitions a component list by tracked status.
// Untracked components default to pending.
type ImplementationQueue struct {
	Pending     []ComponentListItem `json:"pending"`
	InProgress  []ComponentListItem `json:"inProgress"`
	Implemented []ComponentListItem `json:"implemented"`
	NeedsUpdate []ComponentListItem `json:"needsUpdate"`
	Total       int                 `json:"total"`
}

// ImplementationSummary aggregates tracked statuses for one session.
type ImplementationSummary struct {
	FileID               string         `json:"fileId"`
	FileName             string         `json:"fileName,omitempty"`
	Counts               map[string]int `json:"counts"`
	Total                int            `json:"total"`
	CompletionPercentage int            `json:"completionPercentage"`
}
