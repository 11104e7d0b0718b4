package mcp

import (
	"context"
	"net/http"
	"testing"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/figwing/figwing/figma"
	"github.com/figwing/figwing/internal/cache"
	"github.com/figwing/figwing/internal/extract"
	"github.com/figwing/figwing/internal/session"
	"github.com/figwing/figwing/internal/tokens"
	"github.com/figwing/figwing/models"
	"github.com/figwing/figwing/types"
)

// fakeAPI returns a fixed document for every file.
type fakeAPI struct {
	doc *models.DesignDocument
	err error
}

func (f *fakeAPI) GetFile(ctx context.Context, fileID string) (*models.DesignDocument, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.doc, nil
}

func (f *fakeAPI) GetStyles(ctx context.Context, fileID string) ([]models.StyleRecord, error) {
	return []models.StyleRecord{{
		Name:      "Primary",
		StyleType: models.StyleFill,
		Fills:     []models.Paint{{Type: models.PaintSolid, Color: &models.Color{R: 1, A: 1}}},
	}}, nil
}

func (f *fakeAPI) GetVariables(ctx context.Context, fileID string) (*models.VariablePayload, error) {
	return &models.VariablePayload{}, nil
}

func testDoc() *models.DesignDocument {
	return &models.DesignDocument{
		Name:         "Design System",
		LastModified: time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC),
		Document: &models.DesignNode{
			ID: "0:0", Type: models.NodeDocument,
			Children: []*models.DesignNode{{
				ID: "0:1", Type: models.NodeCanvas,
				Children: []*models.DesignNode{
					{ID: "1:1", Name: "Button", Type: models.NodeComponent},
					{ID: "1:2", Name: "Card", Type: models.NodeComponent},
					{ID: "1:3", Name: "Badge", Type: models.NodeComponent},
				},
			}},
		},
	}
}

type fixture struct {
	extract *extract.Service
	tokens  *tokens.Service
	tracker *session.Tracker
	store   cache.Store
}

func newFixture(api figma.Client) *fixture {
	store := cache.NewMemory(100, time.Minute)
	return &fixture{
		extract: extract.NewService(api, store, nil),
		tokens:  tokens.NewService(api, store, nil),
		tracker: session.NewTracker(0),
		store:   store,
	}
}

func params[T any](args T) *mcpsdk.CallToolParamsFor[T] {
	return &mcpsdk.CallToolParamsFor[T]{Arguments: args}
}

func mcpError(t *testing.T, err error) *types.MCPError {
	t.Helper()
	require.Error(t, err)
	mcpErr, ok := err.(*types.MCPError)
	require.True(t, ok, "expected *types.MCPError, got %T", err)
	return mcpErr
}

func TestGetComponentHandler(t *testing.T) {
	f := newFixture(&fakeAPI{doc: testDoc()})
	handler := getComponentHandler(f.extract)

	res, err := handler(context.Background(), nil, params(types.GetComponentParams{FileID: "file1", ComponentID: "1:1"}))
	require.NoError(t, err)
	require.NotNil(t, res.StructuredContent)
	assert.Equal(t, "Button", res.StructuredContent.Name)
	assert.NotEmpty(t, res.Content)
}

func TestGetComponentHandlerValidation(t *testing.T) {
	f := newFixture(&fakeAPI{doc: testDoc()})
	handler := getComponentHandler(f.extract)

	_, err := handler(context.Background(), nil, params(types.GetComponentParams{ComponentID: "1:1"}))
	assert.Equal(t, types.CodeMissingFileID, mcpError(t, err).Code)

	_, err = handler(context.Background(), nil, params(types.GetComponentParams{FileID: "file1"}))
	assert.Equal(t, types.CodeValidation, mcpError(t, err).Code)
}

func TestGetComponentHandlerNotFound(t *testing.T) {
	f := newFixture(&fakeAPI{doc: testDoc()})
	handler := getComponentHandler(f.extract)

	_, err := handler(context.Background(), nil, params(types.GetComponentParams{FileID: "file1", ComponentID: "9:9"}))
	mcpErr := mcpError(t, err)
	assert.Equal(t, types.CodeNotFound, mcpErr.Code)
	assert.Equal(t, "9:9", mcpErr.Details["componentId"])
}

func TestGetComponentHandlerUpstream(t *testing.T) {
	f := newFixture(&fakeAPI{err: &figma.APIError{Status: http.StatusNotFound, Message: "no such file"}})
	handler := getComponentHandler(f.extract)

	_, err := handler(context.Background(), nil, params(types.GetComponentParams{FileID: "missing", ComponentID: "1:1"}))
	mcpErr := mcpError(t, err)
	assert.Equal(t, types.CodeUpstream, mcpErr.Code)
	assert.Equal(t, http.StatusNotFound, mcpErr.Details["status"])
}

func TestListComponentsHandler(t *testing.T) {
	f := newFixture(&fakeAPI{doc: testDoc()})
	handler := listComponentsHandler(f.extract)

	res, err := handler(context.Background(), nil, params(types.ListComponentsParams{FileID: "file1"}))
	require.NoError(t, err)
	assert.Equal(t, 3, res.StructuredContent.TotalCount)

	res, err = handler(context.Background(), nil, params(types.ListComponentsParams{FileID: "file1", NameFilter: "^b"}))
	require.NoError(t, err)
	assert.Equal(t, 2, res.StructuredContent.TotalCount)
}

func TestCheckChangesHandlerRejectsBadTimestamp(t *testing.T) {
	f := newFixture(&fakeAPI{doc: testDoc()})
	handler := checkChangesHandler(f.extract)

	_, err := handler(context.Background(), nil, params(types.CheckChangesParams{FileID: "file1", LastSync: "yesterday"}))
	assert.Equal(t, types.CodeValidation, mcpError(t, err).Code)

	res, err := handler(context.Background(), nil, params(types.CheckChangesParams{FileID: "file1", LastSync: "2025-01-01T00:00:00Z"}))
	require.NoError(t, err)
	assert.True(t, res.StructuredContent.HasChanges)
}

func TestGetDesignTokensHandler(t *testing.T) {
	f := newFixture(&fakeAPI{doc: testDoc()})
	handler := getDesignTokensHandler(f.tokens)

	res, err := handler(context.Background(), nil, params(types.GetDesignTokensParams{FileID: "file1"}))
	require.NoError(t, err)
	require.Len(t, res.StructuredContent.Colors, 1)
	assert.Equal(t, "primary", res.StructuredContent.Colors[0].Name)

	_, err = handler(context.Background(), nil, params(types.GetDesignTokensParams{}))
	assert.Equal(t, types.CodeMissingFileID, mcpError(t, err).Code)
}

func TestWorkingFileLifecycle(t *testing.T) {
	f := newFixture(&fakeAPI{doc: testDoc()})
	ctx := context.Background()

	// No working file yet.
	_, err := getWorkingFileHandler(f.tracker)(ctx, nil, params(struct{}{}))
	assert.Equal(t, types.CodeNoWorkingFile, mcpError(t, err).Code)

	// Set it.
	setRes, err := setWorkingFileHandler(f.tracker)(ctx, nil, params(types.SetWorkingFileParams{
		URL: "https://www.figma.com/file/aBc123/Design-System",
	}))
	require.NoError(t, err)
	assert.Equal(t, "aBc123", setRes.StructuredContent.FileID)
	assert.Equal(t, "Design System", setRes.StructuredContent.FileName)

	// Read it back.
	getRes, err := getWorkingFileHandler(f.tracker)(ctx, nil, params(struct{}{}))
	require.NoError(t, err)
	assert.Equal(t, "aBc123", getRes.StructuredContent.FileID)

	// Clear it.
	clearRes, err := clearWorkingFileHandler(f.tracker)(ctx, nil, params(struct{}{}))
	require.NoError(t, err)
	assert.True(t, clearRes.StructuredContent.Success)

	clearRes, err = clearWorkingFileHandler(f.tracker)(ctx, nil, params(struct{}{}))
	require.NoError(t, err)
	assert.False(t, clearRes.StructuredContent.Success)
}

func TestSetWorkingFileHandlerRejectsBadURL(t *testing.T) {
	f := newFixture(&fakeAPI{doc: testDoc()})
	handler := setWorkingFileHandler(f.tracker)

	_, err := handler(context.Background(), nil, params(types.SetWorkingFileParams{URL: "https://example.com/file/abc/Name"}))
	assert.Equal(t, types.CodeInvalidURL, mcpError(t, err).Code)

	_, err = handler(context.Background(), nil, params(types.SetWorkingFileParams{}))
	assert.Equal(t, types.CodeValidation, mcpError(t, err).Code)
}

func TestUpdateComponentStatusHandler(t *testing.T) {
	f := newFixture(&fakeAPI{doc: testDoc()})
	ctx := context.Background()

	// Requires a working file.
	_, err := updateComponentStatusHandler(f.tracker)(ctx, nil, params(types.UpdateComponentStatusParams{
		ComponentID: "1:1", Status: "implemented",
	}))
	assert.Equal(t, types.CodeNoWorkingFile, mcpError(t, err).Code)

	_, err = setWorkingFileHandler(f.tracker)(ctx, nil, params(types.SetWorkingFileParams{
		URL: "https://www.figma.com/file/aBc123/Design-System",
	}))
	require.NoError(t, err)

	// Rejects unknown statuses.
	_, err = updateComponentStatusHandler(f.tracker)(ctx, nil, params(types.UpdateComponentStatusParams{
		ComponentID: "1:1", Status: "done",
	}))
	assert.Equal(t, types.CodeValidation, mcpError(t, err).Code)

	// Normalizes case.
	res, err := updateComponentStatusHandler(f.tracker)(ctx, nil, params(types.UpdateComponentStatusParams{
		ComponentID: "1:1", Status: "Implemented",
	}))
	require.NoError(t, err)
	assert.True(t, res.StructuredContent.Success)
	assert.Equal(t, "implemented", res.StructuredContent.Status)
}

func TestImplementationQueueAndSummaryHandlers(t *testing.T) {
	f := newFixture(&fakeAPI{doc: testDoc()})
	ctx := context.Background()

	// Both need a working file first.
	_, err := getImplementationQueueHandler(f.tracker, f.extract)(ctx, nil, params(struct{}{}))
	assert.Equal(t, types.CodeNoWorkingFile, mcpError(t, err).Code)

	_, err = setWorkingFileHandler(f.tracker)(ctx, nil, params(types.SetWorkingFileParams{
		URL: "https://www.figma.com/file/aBc123/Design-System",
	}))
	require.NoError(t, err)

	_, err = updateComponentStatusHandler(f.tracker)(ctx, nil, params(types.UpdateComponentStatusParams{
		ComponentID: "1:1", Status: "implemented",
	}))
	require.NoError(t, err)

	queueRes, err := getImplementationQueueHandler(f.tracker, f.extract)(ctx, nil, params(struct{}{}))
	require.NoError(t, err)
	queue := queueRes.StructuredContent
	assert.Equal(t, 3, queue.Total)
	assert.Len(t, queue.Implemented, 1)
	assert.Len(t, queue.Pending, 2)

	summaryRes, err := getImplementationSummaryHandler(f.tracker, f.extract)(ctx, nil, params(struct{}{}))
	require.NoError(t, err)
	summary := summaryRes.StructuredContent
	assert.Equal(t, "aBc123", summary.FileID)
	assert.Equal(t, 33, summary.CompletionPercentage)
}

func TestRegisterCoreTools(t *testing.T) {
	f := newFixture(&fakeAPI{doc: testDoc()})
	server := mcpsdk.NewServer(&mcpsdk.Implementation{Name: "figwing-test", Version: "test"}, nil)

	// Registration must not panic and must accept the full tool set.
	RegisterCoreTools(server, f.extract, f.tokens, f.tracker, f.store, 100)
}

func TestCacheStatsHandler(t *testing.T) {
	f := newFixture(&fakeAPI{doc: testDoc()})
	f.store.Set("component:file1:1:1", "x", 0)

	res, err := cacheStatsHandler(f.store, 100)(context.Background(), nil, params(struct{}{}))
	require.NoError(t, err)
	assert.Equal(t, 1, res.StructuredContent.Entries)
	assert.Equal(t, 100, res.StructuredContent.MaxEntries)
}
