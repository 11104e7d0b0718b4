package mcp

// Token synthesis and cache observability tools

import (
	"context"
	"fmt"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/figwing/figwing/internal/cache"
	"github.com/figwing/figwing/internal/tokens"
	"github.com/figwing/figwing/models"
	"github.com/figwing/figwing/types"
)

// getDesignTokensHandler synthesizes the unified token collection
func getDesignTokensHandler(svc *tokens.Service) mcpsdk.ToolHandlerFor[types.GetDesignTokensParams, *models.TokenCollection] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.GetDesignTokensParams]) (*mcpsdk.CallToolResultFor[*models.TokenCollection], error) {
		args := params.Arguments
		logToolCall("get-design-tokens", args)

		if err := requireField(strings.TrimSpace(args.FileID), "fileId"); err != nil {
			return nil, err
		}

		collection, err := svc.Collection(ctx, args.FileID, args.TokenTypes)
		if err != nil {
			logError(err)
			return nil, wrapCoreError(err)
		}

		total := len(collection.Colors) + len(collection.Typography) + len(collection.Spacing) + len(collection.Effects) + len(collection.Variables)
		text := fmt.Sprintf("Synthesized %d design tokens", total)
		if !collection.Meta.VariablesAvailable {
			text += " (variables unavailable, styles only)"
		}
		return result(text, collection), nil
	}
}

// cacheStatsHandler reports extraction-cache occupancy
func cacheStatsHandler(store cache.Store, maxEntries int) mcpsdk.ToolHandlerFor[struct{}, types.CacheStatsResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[struct{}]) (*mcpsdk.CallToolResultFor[types.CacheStatsResponse], error) {
		stats := types.CacheStatsResponse{
			Entries:    store.Len(),
			MaxEntries: maxEntries,
		}
		return result(fmt.Sprintf("Cache holds %d of %d entries", stats.Entries, stats.MaxEntries), stats), nil
	}
}
