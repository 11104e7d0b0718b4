// Package session tracks each client's working file and per-component
// implementation progress. State is process-local and lost on restart.
package session

import (
	"math"
	"sync"
	"time"

	"github.com/figwing/figwing/models"
)

// DefaultTTL is the absolute session lifetime, measured from SetWorkingFile,
// not from last access.
const DefaultTTL = 24 * time.Hour

// Tracker holds working-file sessions keyed by an opaque client identifier.
// A single mutex serializes all mutation; see the concurrency notes in
// DESIGN.md.
type Tracker struct {
	mu       sync.Mutex
	sessions map[string]*models.WorkingFileSession
	ttl      time.Duration
	now      func() time.Time
}

// NewTracker returns a tracker whose sessions expire ttl after creation.
// A non-positive ttl uses DefaultTTL.
func NewTracker(ttl time.Duration) *Tracker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Tracker{
		sessions: make(map[string]*models.WorkingFileSession),
		ttl:      ttl,
		now:      time.Now,
	}
}

// SetWorkingFile associates the client with a file, always replacing any
// prior session including its status map.
func (t *Tracker) SetWorkingFile(clientID string, ref *FileRef, fileName string) *models.WorkingFileSession {
	name := fileName
	if name == "" {
		name = ref.FileName
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	s := &models.WorkingFileSession{
		FileID:       ref.FileID,
		FileName:     name,
		URL:          ref.URL,
		SetAt:        now,
		LastAccessed: now,
		Statuses:     make(map[string]*models.ComponentStatus),
	}
	t.sessions[clientID] = s
	return s
}

// GetWorkingFile returns the client's live session, refreshing
// LastAccessed. Reading is deliberately treated as activity. Expired
// sessions are deleted and reported as absent.
func (t *Tracker) GetWorkingFile(clientID string) *models.WorkingFileSession {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.live(clientID)
}

// live returns the session if unexpired, deleting it otherwise.
// Caller must hold t.mu.
func (t *Tracker) live(clientID string) *models.WorkingFileSession {
	s, ok := t.sessions[clientID]
	if !ok {
		return nil
	}
	if t.now().Sub(s.SetAt) > t.ttl {
		delete(t.sessions, clientID)
		return nil
	}
	s.LastAccessed = t.now()
	return s
}

// ClearWorkingFile drops the client's session. Returns false when there was
// nothing to clear.
func (t *Tracker) ClearWorkingFile(clientID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.sessions[clientID]; !ok {
		return false
	}
	delete(t.sessions, clientID)
	return true
}

// UpdateComponentStatus inserts or overwrites one status entry. Returns
// false when the client has no live session. ImplementedAt is stamped on
// the first transition to implemented and preserved until the status leaves
// implemented and returns.
func (t *Tracker) UpdateComponentStatus(clientID string, update models.ComponentStatus) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.live(clientID)
	if s == nil {
		return false
	}

	now := t.now()
	prior := s.Statuses[update.ComponentID]

	update.LastModified = &now
	if update.Status == models.StatusImplemented {
		if prior != nil && prior.Status == models.StatusImplemented && prior.ImplementedAt != nil {
			update.ImplementedAt = prior.ImplementedAt
		} else {
			stamp := now
			update.ImplementedAt = &stamp
		}
	} else if prior != nil {
		update.ImplementedAt = prior.ImplementedAt
	}

	s.Statuses[update.ComponentID] = &update
	return true
}

// ImplementationQueue partitions the candidate components by their tracked
// status; untracked components land in pending. A client without a live
// session gets everything as pending.
func (t *Tracker) ImplementationQueue(clientID string, components []models.ComponentListItem) *models.ImplementationQueue {
	t.mu.Lock()
	defer t.mu.Unlock()

	statuses := map[string]*models.ComponentStatus{}
	if s := t.live(clientID); s != nil {
		statuses = s.Statuses
	}

	queue := &models.ImplementationQueue{
		Pending:     []models.ComponentListItem{},
		InProgress:  []models.ComponentListItem{},
		Implemented: []models.ComponentListItem{},
		NeedsUpdate: []models.ComponentListItem{},
		Total:       len(components),
	}
	for _, item := range components {
		status := models.StatusPending
		if tracked, ok := statuses[item.ID]; ok {
			status = tracked.Status
		}
		switch status {
		case models.StatusInProgress:
			queue.InProgress = append(queue.InProgress, item)
		case models.StatusImplemented:
			queue.Implemented = append(queue.Implemented, item)
		case models.StatusNeedsUpdate:
			queue.NeedsUpdate = append(queue.NeedsUpdate, item)
		default:
			queue.Pending = append(queue.Pending, item)
		}
	}
	return queue
}

// ImplementationSummary aggregates the queue partition into counts and a
// rounded completion percentage (0 when there are no components).
func (t *Tracker) ImplementationSummary(clientID string, components []models.ComponentListItem) *models.ImplementationSummary {
	queue := t.ImplementationQueue(clientID, components)

	summary := &models.ImplementationSummary{
		Counts: map[string]int{
			string(models.StatusPending):     len(queue.Pending),
			string(models.StatusInProgress):  len(queue.InProgress),
			string(models.StatusImplemented): len(queue.Implemented),
			string(models.StatusNeedsUpdate): len(queue.NeedsUpdate),
		},
		Total: queue.Total,
	}

	t.mu.Lock()
	if s := t.live(clientID); s != nil {
		summary.FileID = s.FileID
		summary.FileName = s.FileName
	}
	t.mu.Unlock()

	if summary.Total > 0 {
		summary.CompletionPercentage = int(math.Round(float64(len(queue.Implemented)) / float64(summary.Total) * 100))
	}
	return summary
}
