// Package extract orchestrates tree traversal, style conversion, and state
// inference into component records and specifications, backed by the cache.
package extract

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/figwing/figwing/figma"
	"github.com/figwing/figwing/internal/cache"
	"github.com/figwing/figwing/internal/states"
	"github.com/figwing/figwing/internal/styles"
	"github.com/figwing/figwing/internal/walker"
	"github.com/figwing/figwing/models"
)

const (
	componentTTL = time.Hour
	listingTTL   = 30 * time.Minute
	specTTL      = time.Hour
)

// NotFoundError reports a component ID with no matching node in the file.
type NotFoundError struct {
	FileID      string
	ComponentID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("component %s not found in file %s", e.ComponentID, e.FileID)
}

// IsNotFound reports whether err is a missing-component failure.
func IsNotFound(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// ListFilter narrows a component listing. Filters run post-cache on every
// call and are never persisted into the cached list.
type ListFilter struct {
	Kind          models.ComponentKind
	NamePattern   string // case-insensitive regular expression
	PublishedOnly bool
}

// Service is the component extraction engine.
type Service struct {
	api   figma.Client
	cache cache.Store
	log   *logrus.Logger
}

// NewService wires an extractor over the given API client and cache.
func NewService(api figma.Client, store cache.Store, log *logrus.Logger) *Service {
	if log == nil {
		log = logrus.New()
	}
	return &Service{api: api, cache: store, log: log}
}

// Stable cache keys; external consumers depend on these exact forms.

func ComponentCacheKey(fileID, componentID string) string {
	return fmt.Sprintf("component:%s:%s", fileID, componentID)
}

func ListingCacheKey(fileID string) string {
	return fmt.Sprintf("components:%s", fileID)
}

func SpecCacheKey(fileID, componentID string) string {
	return fmt.Sprintf("spec:%s:%s", fileID, componentID)
}

// ExtractComponent builds the structured record for one component node,
// serving from cache when possible.
func (s *Service) ExtractComponent(ctx context.Context, fileID, componentID string, includeVariants, includeInstances bool) (*models.ComponentRecord, error) {
	key := ComponentCacheKey(fileID, componentID)
	if record, ok := cache.Typed[*models.ComponentRecord](s.cache, key); ok {
		s.log.WithField("key", key).Debug("component cache hit")
		return record, nil
	}

	doc, err := s.api.GetFile(ctx, fileID)
	if err != nil {
		return nil, err
	}
	node := walker.FindByID(doc.Document, componentID)
	if node == nil {
		return nil, &NotFoundError{FileID: fileID, ComponentID: componentID}
	}

	record := buildRecord(node, includeVariants)
	s.cache.Set(key, record, componentTTL)
	return record, nil
}

// ListComponents returns every COMPONENT/COMPONENT_SET node of the file.
// The unfiltered listing is cached; the filter is applied on the way out.
func (s *Service) ListComponents(ctx context.Context, fileID string, filter *ListFilter) (*models.ComponentList, error) {
	key := ListingCacheKey(fileID)
	items, ok := cache.Typed[[]models.ComponentListItem](s.cache, key)
	if !ok {
		doc, err := s.api.GetFile(ctx, fileID)
		if err != nil {
			return nil, err
		}
		items = collectListing(doc)
		s.cache.Set(key, items, listingTTL)
	}

	filtered, err := applyFilter(items, filter)
	if err != nil {
		return nil, err
	}
	return &models.ComponentList{
		Components: filtered,
		TotalCount: len(filtered),
		HasMore:    false, // pagination unsupported
	}, nil
}

func collectListing(doc *models.DesignDocument) []models.ComponentListItem {
	nodes := walker.Collect(doc.Document, func(n *models.DesignNode) bool {
		return n.Type == models.NodeComponent || n.Type == models.NodeComponentSet
	})

	items := make([]models.ComponentListItem, 0, len(nodes))
	for _, node := range nodes {
		modified := doc.LastModified
		items = append(items, models.ComponentListItem{
			ID:           node.ID,
			Name:         node.Name,
			Kind:         models.ComponentKind(node.Type),
			Description:  node.Description,
			Published:    true,
			LastModified: &modified,
		})
	}
	return items
}

func applyFilter(items []models.ComponentListItem, filter *ListFilter) ([]models.ComponentListItem, error) {
	if filter == nil {
		return items, nil
	}

	var nameRE *regexp.Regexp
	if filter.NamePattern != "" {
		re, err := regexp.Compile("(?i)" + filter.NamePattern)
		if err != nil {
			return nil, fmt.Errorf("invalid name filter %q: %w", filter.NamePattern, err)
		}
		nameRE = re
	}

	filtered := make([]models.ComponentListItem, 0, len(items))
	for _, item := range items {
		if filter.Kind != "" && item.Kind != filter.Kind {
			continue
		}
		if nameRE != nil && !nameRE.MatchString(item.Name) {
			continue
		}
		if filter.PublishedOnly && !item.Published {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered, nil
}

// ExtractSpecification composes a full implementation specification:
// the component record (variants forced on, instances off), base styling,
// inferred interaction states, accessibility, and interactions.
func (s *Service) ExtractSpecification(ctx context.Context, fileID, componentID string) (*models.ComponentSpecification, error) {
	key := SpecCacheKey(fileID, componentID)
	if spec, ok := cache.Typed[*models.ComponentSpecification](s.cache, key); ok {
		s.log.WithField("key", key).Debug("spec cache hit")
		return spec, nil
	}

	doc, err := s.api.GetFile(ctx, fileID)
	if err != nil {
		return nil, err
	}
	node := walker.FindByID(doc.Document, componentID)
	if node == nil {
		return nil, &NotFoundError{FileID: fileID, ComponentID: componentID}
	}

	record := buildRecord(node, true)
	inferred := states.Infer(node)

	spec := &models.ComponentSpecification{
		Component: *record,
		Styling: models.ComponentStyling{
			BaseStyles: styles.CSS(node),
			States:     inferred,
		},
		Accessibility: inferAccessibility(record.Name),
		Interactions:  buildInteractions(inferred),
	}

	s.cache.Set(key, spec, specTTL)
	return spec, nil
}

// CheckChanges reports components modified since lastSync. The check always
// refetches the file so the modification timestamp is current. Component
// granularity is approximated by the file's timestamp; new/deleted detection
// needs historical snapshots and stays empty.
func (s *Service) CheckChanges(ctx context.Context, fileID string, lastSync time.Time, componentIDs []string) (*models.ChangeSet, error) {
	doc, err := s.api.GetFile(ctx, fileID)
	if err != nil {
		return nil, err
	}

	changes := &models.ChangeSet{
		Modified:  []models.ComponentChange{},
		New:       []models.ComponentChange{},
		Deleted:   []models.ComponentChange{},
		CheckedAt: time.Now(),
	}
	if !doc.LastModified.After(lastSync) {
		return changes, nil
	}

	list, err := s.ListComponents(ctx, fileID, nil)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]bool, len(componentIDs))
	for _, id := range componentIDs {
		wanted[id] = true
	}

	for _, item := range list.Components {
		if len(wanted) > 0 && !wanted[item.ID] {
			continue
		}
		modified := doc.LastModified
		if item.LastModified != nil {
			modified = *item.LastModified
		}
		if !modified.After(lastSync) {
			continue
		}
		changes.Modified = append(changes.Modified, models.ComponentChange{
			ID:           item.ID,
			Name:         item.Name,
			ChangeType:   "modified",
			LastModified: modified,
		})
	}
	changes.HasChanges = len(changes.Modified) > 0
	return changes, nil
}
