package mcp

// Working-file session tools: set/get/clear working file, status updates,
// implementation queue and summary

import (
	"context"
	"fmt"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/figwing/figwing/internal/extract"
	"github.com/figwing/figwing/internal/session"
	"github.com/figwing/figwing/models"
	"github.com/figwing/figwing/types"
)

func workingFileResponse(s *models.WorkingFileSession) types.WorkingFileResponse {
	return types.WorkingFileResponse{
		FileID:       s.FileID,
		FileName:     s.FileName,
		URL:          s.URL,
		SetAt:        s.SetAt,
		LastAccessed: s.LastAccessed,
		TrackedCount: len(s.Statuses),
	}
}

// setWorkingFileHandler associates a design file with the calling client
func setWorkingFileHandler(tracker *session.Tracker) mcpsdk.ToolHandlerFor[types.SetWorkingFileParams, types.WorkingFileResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.SetWorkingFileParams]) (*mcpsdk.CallToolResultFor[types.WorkingFileResponse], error) {
		args := params.Arguments
		logToolCall("set-working-file", args)

		if err := requireField(strings.TrimSpace(args.URL), "url"); err != nil {
			return nil, err
		}
		ref, err := session.ParseFigmaURL(args.URL)
		if err != nil {
			return nil, types.NewMCPError(types.CodeInvalidURL, err.Error(), map[string]interface{}{
				"url": args.URL,
			})
		}

		s := tracker.SetWorkingFile(clientID(ss), ref, args.FileName)
		logInfo(fmt.Sprintf("Working file set to %s (%s)", s.FileID, s.FileName))

		text := fmt.Sprintf("Working file set to '%s' (%s)", s.FileName, s.FileID)
		if s.FileName == "" {
			text = fmt.Sprintf("Working file set to %s", s.FileID)
		}
		return result(text, workingFileResponse(s)), nil
	}
}

// getWorkingFileHandler returns the caller's current working file
func getWorkingFileHandler(tracker *session.Tracker) mcpsdk.ToolHandlerFor[struct{}, types.WorkingFileResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[struct{}]) (*mcpsdk.CallToolResultFor[types.WorkingFileResponse], error) {
		s := tracker.GetWorkingFile(clientID(ss))
		if s == nil {
			return nil, types.NewMCPError(types.CodeNoWorkingFile, "No working file set. Call set-working-file with a Figma URL first.", nil)
		}
		return result(fmt.Sprintf("Working file is '%s' (%s)", s.FileName, s.FileID), workingFileResponse(s)), nil
	}
}

// clearWorkingFileHandler drops the caller's session
func clearWorkingFileHandler(tracker *session.Tracker) mcpsdk.ToolHandlerFor[struct{}, types.ClearWorkingFileResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[struct{}]) (*mcpsdk.CallToolResultFor[types.ClearWorkingFileResponse], error) {
		cleared := tracker.ClearWorkingFile(clientID(ss))
		resp := types.ClearWorkingFileResponse{
			Success: cleared,
			Message: "Working file cleared",
		}
		if !cleared {
			resp.Message = "No working file to clear"
		}
		return result(resp.Message, resp), nil
	}
}

// updateComponentStatusHandler records implementation progress
func updateComponentStatusHandler(tracker *session.Tracker) mcpsdk.ToolHandlerFor[types.UpdateComponentStatusParams, types.StatusUpdateResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.UpdateComponentStatusParams]) (*mcpsdk.CallToolResultFor[types.StatusUpdateResponse], error) {
		args := params.Arguments
		logToolCall("update-component-status", args)

		if err := requireField(strings.TrimSpace(args.ComponentID), "componentId"); err != nil {
			return nil, err
		}
		status := models.ImplementationStatus(strings.ToLower(strings.TrimSpace(args.Status)))
		switch status {
		case models.StatusPending, models.StatusInProgress, models.StatusImplemented, models.StatusNeedsUpdate:
		default:
			return nil, types.NewMCPError(types.CodeValidation, fmt.Sprintf("invalid status %q", args.Status), map[string]interface{}{
				"valid_values": []string{"pending", "in-progress", "implemented", "needs-update"},
			})
		}

		ok := tracker.UpdateComponentStatus(clientID(ss), models.ComponentStatus{
			ComponentID:   args.ComponentID,
			ComponentName: args.ComponentName,
			Status:        status,
			Notes:         args.Notes,
			Framework:     args.Framework,
		})
		if !ok {
			return nil, types.NewMCPError(types.CodeNoWorkingFile, "No working file set. Call set-working-file before tracking status.", nil)
		}

		logInfo(fmt.Sprintf("Component %s marked %s", args.ComponentID, status))
		resp := types.StatusUpdateResponse{
			Success:     true,
			ComponentID: args.ComponentID,
			Status:      string(status),
			Message:     fmt.Sprintf("Component %s is now %s", args.ComponentID, status),
		}
		return result(resp.Message, resp), nil
	}
}

// queueComponents lists the working file's components for partitioning.
func queueComponents(ctx context.Context, tracker *session.Tracker, svc *extract.Service, id string) (*models.WorkingFileSession, []models.ComponentListItem, error) {
	s := tracker.GetWorkingFile(id)
	if s == nil {
		return nil, nil, types.NewMCPError(types.CodeNoWorkingFile, "No working file set. Call set-working-file with a Figma URL first.", nil)
	}
	list, err := svc.ListComponents(ctx, s.FileID, nil)
	if err != nil {
		return nil, nil, wrapCoreError(err)
	}
	return s, list.Components, nil
}

// getImplementationQueueHandler partitions the working file's components by status
func getImplementationQueueHandler(tracker *session.Tracker, svc *extract.Service) mcpsdk.ToolHandlerFor[struct{}, *models.ImplementationQueue] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[struct{}]) (*mcpsdk.CallToolResultFor[*models.ImplementationQueue], error) {
		id := clientID(ss)
		_, components, err := queueComponents(ctx, tracker, svc, id)
		if err != nil {
			logError(err)
			return nil, err
		}

		queue := tracker.ImplementationQueue(id, components)
		text := fmt.Sprintf("Queue: %d pending, %d in progress, %d implemented, %d needing updates",
			len(queue.Pending), len(queue.InProgress), len(queue.Implemented), len(queue.NeedsUpdate))
		return result(text, queue), nil
	}
}

// getImplementationSummaryHandler aggregates progress for the working file
func getImplementationSummaryHandler(tracker *session.Tracker, svc *extract.Service) mcpsdk.ToolHandlerFor[struct{}, *models.ImplementationSummary] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[struct{}]) (*mcpsdk.CallToolResultFor[*models.ImplementationSummary], error) {
		id := clientID(ss)
		_, components, err := queueComponents(ctx, tracker, svc, id)
		if err != nil {
			logError(err)
			return nil, err
		}

		summary := tracker.ImplementationSummary(id, components)
		text := fmt.Sprintf("%d%% complete (%d of %d implemented)",
			summary.CompletionPercentage, summary.Counts[string(models.StatusImplemented)], summary.Total)
		return result(text, summary), nil
	}
}
