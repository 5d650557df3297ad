package mcp

import (
	"context"
	"log/slog"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/wmctl/internal/config"
	"github.com/1broseidon/wmctl/internal/platform"
)

const (
	ServerName    = "wmctl"
	ServerVersion = "0.1.0"
)

// Server exposes window-management operations as MCP tools over stdio.
// All window state is read fresh from the backend on every call; nothing
// is cached between tool invocations.
type Server struct {
	mcpServer *mcpsdk.Server
	config    *config.Config
	backend   platform.Backend
	logger    *slog.Logger
}

// NewServer creates an MCP server driving the given backend.
func NewServer(cfg *config.Config, backend platform.Backend, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		config:  cfg,
		backend: backend,
		logger:  logger,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List all managed windows with their id, desktop, class, title and geometry. Optionally filter by class or title substring, or by desktop number.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_desktops",
		Description: "List all virtual desktops with their number, size and which one is current.",
	}, s.handleListDesktops)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "activate_window",
		Description: "Activate a window: switch to its desktop, raise it and give it focus.",
	}, s.handleActivateWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "close_window",
		Description: "Close a window gracefully, as if the user clicked its close button.",
	}, s.handleCloseWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "move_resize_window",
		Description: "Move and resize a window to an absolute position and size in pixels.",
	}, s.handleMoveResizeWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "set_window_state",
		Description: "Add, remove or toggle window state properties such as maximized_vert, maximized_horz, fullscreen, above, hidden or sticky. At most two properties per call.",
	}, s.handleSetWindowState)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "rename_window",
		Description: "Set a window's title.",
	}, s.handleRenameWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "move_window_to_desktop",
		Description: "Move a window to a specific desktop, or make it sticky with desktop -1.",
	}, s.handleMoveWindowToDesktop)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "switch_desktop",
		Description: "Switch the current desktop.",
	}, s.handleSwitchDesktop)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "apply_layout",
		Description: "Tile the windows on the current desktop into a named layout from config (e.g. grid, columns, master-stack). Optionally restrict to windows matching a class or title substring.",
	}, s.handleApplyLayout)
}
