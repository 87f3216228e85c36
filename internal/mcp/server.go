package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hirakinii/osf-api-mcp/internal/index"
)

// Version is the MCP server version.
const Version = "0.1.0"

// ErrMissingEngine is returned when the server is constructed without a
// built index engine.
var ErrMissingEngine = errors.New("mcp: index engine is required")

// Server exposes the query resolvers of one index engine as MCP tools.
type Server struct {
	engine *index.Engine
	server *mcp.Server
}

// NewServer creates the MCP server and registers all tools.
func NewServer(engine *index.Engine) (*Server, error) {
	if engine == nil {
		return nil, ErrMissingEngine
	}

	impl := &mcp.Implementation{
		Name:    "osf-api-mcp",
		Version: Version,
	}

	s := &Server{
		engine: engine,
		server: mcp.NewServer(impl, nil),
	}

	s.registerTools()

	return s, nil
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_endpoints",
		Description: "Search OSF API endpoints by path substring, HTTP method, operation id or tag. An operation id filter takes precedence over all other filters.",
	}, s.handleSearchEndpoints)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_endpoints",
		Description: "List all OSF API endpoints sorted by path and method, paginated by offset and limit.",
	}, s.handleListEndpoints)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_tag_endpoints",
		Description: "Get all endpoints grouped under tags whose name contains the given substring.",
	}, s.handleTagEndpoints)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_schemas",
		Description: "Search response schemas by schema name, by property name, or by an exact path and method pair.",
	}, s.handleSearchSchemas)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_fulltext",
		Description: "Rank OSF API endpoints against a free-text query using TF-IDF style scoring over summaries, descriptions and parameters.",
	}, s.handleSearchFulltext)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_tags",
		Description: "List the specification's tag definitions and tag groups.",
	}, s.handleListTags)
}

// Run starts the MCP server over stdio. It blocks until the context is
// cancelled or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP starts the MCP server over streamable HTTP on the given address.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// missingParamError reports a mandatory tool parameter that was absent or
// empty. It is raised before the engine is ever invoked.
func missingParamError(tool, param string) error {
	return fmt.Errorf("%s: required parameter %q is missing or empty", tool, param)
}
