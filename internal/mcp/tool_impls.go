package mcp

import (
	"context"

	"route2file/internal/envelope"
	"route2file/internal/errors"
	"route2file/internal/routes"
)

// toolOpenRouteSource resolves a route path to its source file.
func (s *MCPServer) toolOpenRouteSource(ctx context.Context, params map[string]interface{}) (*ToolResult, error) {
	routePath, err := requireString(params, "routePath")
	if err != nil {
		return nil, err
	}
	projectRoot, err := optionalString(params, "projectRoot")
	if err != nil {
		return nil, err
	}
	keyword, err := optionalString(params, "keyword")
	if err != nil {
		return nil, err
	}

	res, err := s.resolver.Resolve(ctx, routes.Query{
		RoutePath:   routePath,
		ProjectRoot: projectRoot,
		Keyword:     keyword,
	})
	if err != nil {
		if ctxErr := errors.FromContext("resolve route", err); errors.CodeOf(ctxErr) == errors.Cancelled {
			return nil, ctxErr
		}
		return nil, errors.NewOperationError("resolve route", err)
	}

	s.logger.Debug("Route resolved",
		"route", routePath,
		"found", res.Found,
		"confidence", string(res.Confidence),
		"path", res.Path,
	)

	return &ToolResult{
		Text:     res.Text(),
		Envelope: envelope.New().FromResult(res).Build(),
	}, nil
}
