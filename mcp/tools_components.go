package mcp

// Component extraction tools: get-component, list-components,
// get-component-spec, check-changes

import (
	"context"
	"fmt"
	"strings"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/figwing/figwing/internal/extract"
	"github.com/figwing/figwing/models"
	"github.com/figwing/figwing/types"
)

// getComponentHandler extracts one component record
func getComponentHandler(svc *extract.Service) mcpsdk.ToolHandlerFor[types.GetComponentParams, *models.ComponentRecord] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.GetComponentParams]) (*mcpsdk.CallToolResultFor[*models.ComponentRecord], error) {
		args := params.Arguments
		logToolCall("get-component", args)

		if err := requireField(strings.TrimSpace(args.FileID), "fileId"); err != nil {
			return nil, err
		}
		if err := requireField(strings.TrimSpace(args.ComponentID), "componentId"); err != nil {
			return nil, err
		}

		record, err := svc.ExtractComponent(ctx, args.FileID, args.ComponentID, args.IncludeVariants, args.IncludeInstances)
		if err != nil {
			logError(err)
			return nil, wrapCoreError(err)
		}

		logInfo(fmt.Sprintf("Extracted component %s (%s)", record.Name, record.ID))
		text := fmt.Sprintf("Component '%s' (%s, kind %s) with %d props", record.Name, record.ID, record.Kind, len(record.Interface.Props))
		return result(text, record), nil
	}
}

// listComponentsHandler lists a file's components with optional filtering
func listComponentsHandler(svc *extract.Service) mcpsdk.ToolHandlerFor[types.ListComponentsParams, *models.ComponentList] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.ListComponentsParams]) (*mcpsdk.CallToolResultFor[*models.ComponentList], error) {
		args := params.Arguments
		logToolCall("list-components", args)

		if err := requireField(strings.TrimSpace(args.FileID), "fileId"); err != nil {
			return nil, err
		}

		var filter *extract.ListFilter
		if args.Kind != "" || args.NameFilter != "" || args.PublishedOnly {
			filter = &extract.ListFilter{
				Kind:          models.ComponentKind(strings.ToUpper(args.Kind)),
				NamePattern:   args.NameFilter,
				PublishedOnly: args.PublishedOnly,
			}
		}

		list, err := svc.ListComponents(ctx, args.FileID, filter)
		if err != nil {
			logError(err)
			return nil, wrapCoreError(err)
		}

		logInfo(fmt.Sprintf("Listed %d components for file %s", list.TotalCount, args.FileID))
		return result(fmt.Sprintf("Found %d components", list.TotalCount), list), nil
	}
}

// getComponentSpecHandler builds the full implementation specification
func getComponentSpecHandler(svc *extract.Service) mcpsdk.ToolHandlerFor[types.GetComponentSpecParams, *models.ComponentSpecification] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.GetComponentSpecParams]) (*mcpsdk.CallToolResultFor[*models.ComponentSpecification], error) {
		args := params.Arguments
		logToolCall("get-component-spec", args)

		if err := requireField(strings.TrimSpace(args.FileID), "fileId"); err != nil {
			return nil, err
		}
		if err := requireField(strings.TrimSpace(args.ComponentID), "componentId"); err != nil {
			return nil, err
		}

		spec, err := svc.ExtractSpecification(ctx, args.FileID, args.ComponentID)
		if err != nil {
			logError(err)
			return nil, wrapCoreError(err)
		}

		text := fmt.Sprintf("Specification for '%s': %d base styles, %d states", spec.Component.Name, len(spec.Styling.BaseStyles), len(spec.Styling.States))
		return result(text, spec), nil
	}
}

// checkChangesHandler reports components modified since a sync point
func checkChangesHandler(svc *extract.Service) mcpsdk.ToolHandlerFor[types.CheckChangesParams, *models.ChangeSet] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.CheckChangesParams]) (*mcpsdk.CallToolResultFor[*models.ChangeSet], error) {
		args := params.Arguments
		logToolCall("check-changes", args)

		if err := requireField(strings.TrimSpace(args.FileID), "fileId"); err != nil {
			return nil, err
		}
		lastSync, err := time.Parse(time.RFC3339, args.LastSync)
		if err != nil {
			return nil, types.NewMCPError(types.CodeValidation, fmt.Sprintf("lastSync must be RFC 3339: %v", err), map[string]interface{}{
				"field": "lastSync",
				"value": args.LastSync,
			})
		}

		changes, err := svc.CheckChanges(ctx, args.FileID, lastSync, args.ComponentIDs)
		if err != nil {
			logError(err)
			return nil, wrapCoreError(err)
		}

		text := "No changes since last sync"
		if changes.HasChanges {
			text = fmt.Sprintf("%d components modified since last sync", len(changes.Modified))
		}
		return result(text, changes), nil
	}
}
