package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/phonet/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for phonet resources.
	uriScheme = "phonet://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing inventories.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "inventories",
		Name:        "inventories",
		Description: "List of all phoneme inventories, built-ins first",
		MIMEType:    "application/json",
	}, s.handleInventoriesResource)

	// Template for a single inventory with its sounds.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "inventories/{inventoryId}",
		Name:        "inventory",
		Description: "A phoneme inventory with the features of each sound",
		MIMEType:    "application/json",
	}, s.handleInventoryResource)
}

// inventoryInfo is one entry of the inventory list.
type inventoryInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Builtin bool   `json:"builtin"`
	Size    int    `json:"size"`
	URI     string `json:"uri"`
}

// inventoryDetail is a single inventory with every sound described.
type inventoryDetail struct {
	domain.Inventory
	Sounds []domain.Analysis `json:"sounds"`
}

// handleInventoriesResource returns a list of all inventories.
func (s *Server) handleInventoriesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	inventories := domain.BuiltinInventories()
	if s.ports.Inventory != nil {
		var err error
		inventories, err = s.ports.Inventory.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing inventories: %w", err)
		}
	}

	infos := make([]inventoryInfo, len(inventories))
	for i := range inventories {
		infos[i] = inventoryInfo{
			ID:      inventories[i].ID,
			Name:    inventories[i].Name,
			Builtin: inventories[i].Builtin,
			Size:    len(inventories[i].Symbols),
			URI:     uriScheme + "inventories/" + inventories[i].ID,
		}
	}

	return jsonResource(req.Params.URI, infos, "inventories")
}

// handleInventoryResource returns one inventory with its sounds analysed.
func (s *Server) handleInventoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract inventoryId from URI: phonet://inventories/{inventoryId}
	id := extractInventoryID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	inv, err := s.getInventory(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting inventory: %w", err)
	}

	detail := inventoryDetail{
		Inventory: *inv,
		Sounds:    make([]domain.Analysis, len(inv.Symbols)),
	}
	for i, sym := range inv.Symbols {
		detail.Sounds[i] = s.ports.Transcription.Analyze(sym)
	}

	return jsonResource(req.Params.URI, detail, "inventory")
}

// getInventory looks id up through the inventory service, or among the
// built-ins when there is none.
func (s *Server) getInventory(ctx context.Context, id string) (*domain.Inventory, error) {
	if s.ports.Inventory != nil {
		return s.ports.Inventory.Get(ctx, id)
	}
	for _, inv := range domain.BuiltinInventories() {
		if inv.ID == id {
			return &inv, nil
		}
	}
	return nil, fmt.Errorf("inventory %q: %w", id, domain.ErrNotFound)
}

func jsonResource(uri string, v any, what string) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", what, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractInventoryID extracts the inventory ID from a URI like
// phonet://inventories/{inventoryId}.
func extractInventoryID(uri string) string {
	const prefix = uriScheme + "inventories/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
