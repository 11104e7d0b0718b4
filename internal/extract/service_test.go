package extract

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/figwing/figwing/figma"
	"github.com/figwing/figwing/internal/cache"
	"github.com/figwing/figwing/models"
)

// fakeAPI serves a canned document and counts fetches.
type fakeAPI struct {
	doc       *models.DesignDocument
	err       error
	fileCalls int
}

func (f *fakeAPI) GetFile(ctx context.Context, fileID string) (*models.DesignDocument, error) {
	f.fileCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.doc, nil
}

func (f *fakeAPI) GetStyles(ctx context.Context, fileID string) ([]models.StyleRecord, error) {
	return nil, nil
}

func (f *fakeAPI) GetVariables(ctx context.Context, fileID string) (*models.VariablePayload, error) {
	return nil, nil
}

func buttonDoc() *models.DesignDocument {
	button := &models.DesignNode{
		ID:   "1:1",
		Name: "Button/Primary",
		Type: models.NodeComponent,
		AbsoluteBoundingBox: &models.BoundingBox{Width: 120, Height: 40},
		Fills:               []models.Paint{{Type: models.PaintSolid, Color: &models.Color{R: 0.2, G: 0.4, B: 0.8, A: 1}}},
		CornerRadius:        6,
		Effects: []models.Effect{{
			Type:   models.EffectDropShadow,
			Color:  &models.Color{A: 0.25},
			Offset: &models.Vector{Y: 4},
			Radius: 8,
		}},
		PropertyDefinitions: map[string]models.ComponentPropertyDefinition{
			"Label#12:3": {Type: "TEXT", DefaultValue: "Submit"},
			"Disabled":   {Type: "BOOLEAN", DefaultValue: false},
		},
		Children: []*models.DesignNode{
			{ID: "2:1", Name: "Hover", Fills: []models.Paint{{Type: models.PaintSolid, Color: &models.Color{R: 0.1, G: 0.3, B: 0.7, A: 1}}}},
			{ID: "2:2", Name: "Label", Style: &models.TypeStyle{FontFamily: "Inter", FontSize: 14}},
		},
	}
	sizes := &models.DesignNode{
		ID:   "3:1",
		Name: "Badge",
		Type: models.NodeComponentSet,
	}
	return &models.DesignDocument{
		Name:         "Design System",
		LastModified: time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC),
		Document: &models.DesignNode{
			ID: "0:0", Type: models.NodeDocument,
			Children: []*models.DesignNode{
				{ID: "0:1", Type: models.NodeCanvas, Children: []*models.DesignNode{button, sizes}},
			},
		},
	}
}

func newTestService(api figma.Client) *Service {
	return NewService(api, cache.NewMemory(100, time.Minute), nil)
}

func TestExtractComponent(t *testing.T) {
	api := &fakeAPI{doc: buttonDoc()}
	svc := newTestService(api)

	record, err := svc.ExtractComponent(context.Background(), "file1", "1:1", false, false)
	if err != nil {
		t.Fatalf("ExtractComponent: %v", err)
	}

	if record.ID != "1:1" || record.Name != "Button/Primary" {
		t.Errorf("record = %+v", record)
	}
	if record.Kind != models.KindComponent {
		t.Errorf("Kind = %q", record.Kind)
	}
	if record.Properties.Dimensions == nil || record.Properties.Dimensions.Width != 120 {
		t.Errorf("Dimensions = %+v", record.Properties.Dimensions)
	}
	// Root fill plus the distinct hover fill, deduplicated.
	if len(record.Properties.Colors) != 2 {
		t.Errorf("Colors = %v", record.Properties.Colors)
	}
	if len(record.Properties.Effects) != 1 {
		t.Errorf("Effects = %v", record.Properties.Effects)
	}

	// Props are sorted by raw name and the "#12:3" suffix is stripped.
	props := record.Interface.Props
	if len(props) != 2 {
		t.Fatalf("Props = %+v", props)
	}
	if props[0].Name != "Disabled" || props[0].Type != "boolean" {
		t.Errorf("props[0] = %+v", props[0])
	}
	if props[1].Name != "Label" || props[1].Type != "string" {
		t.Errorf("props[1] = %+v", props[1])
	}

	// Interactive name produces a synthetic click event.
	if len(record.Interface.Events) != 1 || record.Interface.Events[0].Name != "click" {
		t.Errorf("Events = %+v", record.Interface.Events)
	}
}

func TestExtractComponentCaches(t *testing.T) {
	api := &fakeAPI{doc: buttonDoc()}
	svc := newTestService(api)

	if _, err := svc.ExtractComponent(context.Background(), "file1", "1:1", false, false); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if _, err := svc.ExtractComponent(context.Background(), "file1", "1:1", false, false); err != nil {
		t.Fatalf("second call: %v", err)
	}
	if api.fileCalls != 1 {
		t.Errorf("fileCalls = %d, want 1", api.fileCalls)
	}

	// Different component, same file: cache keys are per component.
	if _, err := svc.ExtractComponent(context.Background(), "file1", "3:1", false, false); err != nil {
		t.Fatalf("third call: %v", err)
	}
	if api.fileCalls != 2 {
		t.Errorf("fileCalls = %d, want 2", api.fileCalls)
	}
}

func TestExtractComponentNotFound(t *testing.T) {
	api := &fakeAPI{doc: buttonDoc()}
	svc := newTestService(api)

	_, err := svc.ExtractComponent(context.Background(), "file1", "9:9", false, false)
	if !IsNotFound(err) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestExtractComponentUpstreamError(t *testing.T) {
	api := &fakeAPI{err: &figma.APIError{Status: http.StatusNotFound, Message: "no such file"}}
	svc := newTestService(api)

	_, err := svc.ExtractComponent(context.Background(), "missing", "1:1", false, false)
	if !figma.IsNotFound(err) {
		t.Fatalf("err = %v, want upstream 404", err)
	}
}

func TestComponentSetVariantsAreEmptyNotNil(t *testing.T) {
	api := &fakeAPI{doc: buttonDoc()}
	svc := newTestService(api)

	record, err := svc.ExtractComponent(context.Background(), "file1", "3:1", true, false)
	if err != nil {
		t.Fatalf("ExtractComponent: %v", err)
	}
	if record.Kind != models.KindComponentSet {
		t.Errorf("Kind = %q", record.Kind)
	}
	if record.Variants == nil || len(record.Variants) != 0 {
		t.Errorf("Variants = %#v, want empty non-nil slice", record.Variants)
	}
}

func TestListComponents(t *testing.T) {
	api := &fakeAPI{doc: buttonDoc()}
	svc := newTestService(api)

	list, err := svc.ListComponents(context.Background(), "file1", nil)
	if err != nil {
		t.Fatalf("ListComponents: %v", err)
	}
	if list.TotalCount != 2 {
		t.Fatalf("TotalCount = %d, want 2", list.TotalCount)
	}
	if list.HasMore {
		t.Errorf("HasMore should be false")
	}
	item := list.Components[0]
	if item.ID != "1:1" || !item.Published {
		t.Errorf("item = %+v", item)
	}
	if item.LastModified == nil || !item.LastModified.Equal(api.doc.LastModified) {
		t.Errorf("LastModified = %v", item.LastModified)
	}
}

func TestListComponentsFilters(t *testing.T) {
	api := &fakeAPI{doc: buttonDoc()}
	svc := newTestService(api)

	list, err := svc.ListComponents(context.Background(), "file1", &ListFilter{Kind: models.KindComponentSet})
	if err != nil {
		t.Fatalf("kind filter: %v", err)
	}
	if list.TotalCount != 1 || list.Components[0].ID != "3:1" {
		t.Errorf("kind filter result = %+v", list.Components)
	}

	list, err = svc.ListComponents(context.Background(), "file1", &ListFilter{NamePattern: "^button"})
	if err != nil {
		t.Fatalf("name filter: %v", err)
	}
	if list.TotalCount != 1 || list.Components[0].Name != "Button/Primary" {
		t.Errorf("name filter should match case-insensitively, got %+v", list.Components)
	}

	if _, err := svc.ListComponents(context.Background(), "file1", &ListFilter{NamePattern: "("}); err == nil {
		t.Errorf("invalid pattern should fail")
	}

	// Filtering is applied post-cache: three calls, one fetch.
	if api.fileCalls != 1 {
		t.Errorf("fileCalls = %d, want 1", api.fileCalls)
	}
}

func TestExtractSpecification(t *testing.T) {
	api := &fakeAPI{doc: buttonDoc()}
	svc := newTestService(api)

	spec, err := svc.ExtractSpecification(context.Background(), "file1", "1:1")
	if err != nil {
		t.Fatalf("ExtractSpecification: %v", err)
	}

	if spec.Styling.BaseStyles["backgroundColor"] != "#3366cc" {
		t.Errorf("backgroundColor = %q", spec.Styling.BaseStyles["backgroundColor"])
	}
	if spec.Styling.BaseStyles["boxShadow"] != "0px 4px 8px 0px rgba(0, 0, 0, 0.25)" {
		t.Errorf("boxShadow = %q", spec.Styling.BaseStyles["boxShadow"])
	}
	if spec.Styling.BaseStyles["borderRadius"] != "6px" {
		t.Errorf("borderRadius = %q", spec.Styling.BaseStyles["borderRadius"])
	}

	hover, ok := spec.Styling.States["hover"]
	if !ok {
		t.Fatalf("hover state not inferred")
	}
	if hover.Styles["backgroundColor"] != "#1a4db3" {
		t.Errorf("hover backgroundColor = %q", hover.Styles["backgroundColor"])
	}

	if spec.Accessibility == nil || spec.Accessibility.Role != "button" {
		t.Errorf("Accessibility = %+v", spec.Accessibility)
	}
	if spec.Accessibility.Keyboard["Enter"] != "activate" {
		t.Errorf("Keyboard = %v", spec.Accessibility.Keyboard)
	}

	// The four base states are always present.
	for _, state := range []string{"hover", "active", "focus", "disabled"} {
		if _, ok := spec.Interactions[state]; !ok {
			t.Errorf("interaction state %q missing", state)
		}
	}
	if spec.Interactions["hover"]["backgroundColor"] != "#1a4db3" {
		t.Errorf("interactions should carry inferred styles")
	}
}

func TestCheckChanges(t *testing.T) {
	api := &fakeAPI{doc: buttonDoc()}
	svc := newTestService(api)
	modified := api.doc.LastModified

	// Sync point after the last modification: nothing changed.
	changes, err := svc.CheckChanges(context.Background(), "file1", modified.Add(time.Hour), nil)
	if err != nil {
		t.Fatalf("CheckChanges: %v", err)
	}
	if changes.HasChanges || len(changes.Modified) != 0 {
		t.Errorf("expected no changes, got %+v", changes)
	}

	// Sync point before it: both components report as modified.
	changes, err = svc.CheckChanges(context.Background(), "file1", modified.Add(-time.Hour), nil)
	if err != nil {
		t.Fatalf("CheckChanges: %v", err)
	}
	if !changes.HasChanges || len(changes.Modified) != 2 {
		t.Fatalf("changes = %+v", changes)
	}
	if changes.Modified[0].ChangeType != "modified" {
		t.Errorf("ChangeType = %q", changes.Modified[0].ChangeType)
	}
	if len(changes.New) != 0 || len(changes.Deleted) != 0 {
		t.Errorf("new/deleted detection is not implemented and must stay empty")
	}

	// Restricting to specific IDs drops the rest.
	changes, err = svc.CheckChanges(context.Background(), "file1", modified.Add(-time.Hour), []string{"3:1"})
	if err != nil {
		t.Fatalf("CheckChanges: %v", err)
	}
	if len(changes.Modified) != 1 || changes.Modified[0].ID != "3:1" {
		t.Errorf("filtered changes = %+v", changes.Modified)
	}
}

func TestCacheKeys(t *testing.T) {
	if got := ComponentCacheKey("f", "c"); got != "component:f:c" {
		t.Errorf("ComponentCacheKey = %q", got)
	}
	if got := ListingCacheKey("f"); got != "components:f" {
		t.Errorf("ListingCacheKey = %q", got)
	}
	if got := SpecCacheKey("f", "c"); got != "spec:f:c" {
		t.Errorf("SpecCacheKey = %q", got)
	}
}
