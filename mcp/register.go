// Package mcp exposes the extraction engine as MCP tools over the
// modelcontextprotocol go-sdk.
package mcp

import (
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/figwing/figwing/internal/cache"
	"github.com/figwing/figwing/internal/extract"
	"github.com/figwing/figwing/internal/session"
	"github.com/figwing/figwing/internal/tokens"
)

// RegisterCoreTools attaches every tool to the server. The services are
// shared across all client sessions; per-client state lives in the tracker.
func RegisterCoreTools(server *mcpsdk.Server, svc *extract.Service, tokenSvc *tokens.Service, tracker *session.Tracker, store cache.Store, maxEntries int) {
	// Extraction
	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "get-component",
		Description: "Extract a single component from a Figma file as a structured record: properties, typed interface, variants, and dimensions.",
	}, getComponentHandler(svc))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "list-components",
		Description: "List all components and component sets in a Figma file, optionally filtered by kind, name pattern, or published state.",
	}, listComponentsHandler(svc))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "get-component-spec",
		Description: "Build a full implementation specification for a component: base styles, inferred interaction states, accessibility hints, and interactions.",
	}, getComponentSpecHandler(svc))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "check-changes",
		Description: "Report which components changed since a given RFC 3339 sync timestamp, optionally restricted to specific component IDs.",
	}, checkChangesHandler(svc))

	// Tokens
	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "get-design-tokens",
		Description: "Synthesize design tokens (colors, typography, spacing, effects, variables) from a file's styles and variables.",
	}, getDesignTokensHandler(tokenSvc))

	// Working-file session
	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "set-working-file",
		Description: "Set the working Figma file for this client from a figma.com URL. Replaces any prior working file and its tracked statuses.",
	}, setWorkingFileHandler(tracker))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "get-working-file",
		Description: "Show the current working file for this client.",
	}, getWorkingFileHandler(tracker))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "clear-working-file",
		Description: "Clear the current working file and all tracked component statuses.",
	}, clearWorkingFileHandler(tracker))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "update-component-status",
		Description: "Record implementation progress for a component in the working file: pending, in-progress, implemented, or needs-update.",
	}, updateComponentStatusHandler(tracker))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "get-implementation-queue",
		Description: "Partition the working file's components by implementation status. Untracked components are pending.",
	}, getImplementationQueueHandler(tracker, svc))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "get-implementation-summary",
		Description: "Aggregate implementation progress for the working file: per-status counts and completion percentage.",
	}, getImplementationSummaryHandler(tracker, svc))

	// Observability
	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "cache-stats",
		Description: "Report extraction-cache occupancy.",
	}, cacheStatsHandler(store, maxEntries))
}
