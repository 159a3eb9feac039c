package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/pizzeria/internal/render"
	"github.com/ziadkadry99/pizzeria/internal/session"
)

// handleListPizzas lists the menu for a filter.
func (s *Server) handleListPizzas(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := render.Filter(request.GetString("filter", string(render.FilterAll)))
	if filter == "" {
		filter = render.FilterAll
	}
	if !session.ValidFilter(s.renderer, filter) {
		return mcp.NewToolResultError(fmt.Sprintf("unknown filter %q; use \"all\" or one of: %s",
			filter, strings.Join(s.categories(), ", "))), nil
	}

	view := s.renderer.Menu(filter)
	if len(view.Cards) == 0 {
		return mcp.NewToolResultText("No pizzas on the menu."), nil
	}
	return mcp.NewToolResultText(formatMenu(view)), nil
}

// handleGetPizza returns the detail view of one pizza.
func (s *Server) handleGetPizza(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: name"), nil
	}

	entry, ok := s.renderer.Catalog().Lookup(name)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("No pizza named %q on the menu.", name)), nil
	}

	view := s.renderer.Modal(entry)
	var b strings.Builder
	fmt.Fprintf(&b, "# %s %s\n\n", view.Icon, view.Title)
	fmt.Fprintf(&b, "**Category:** %s\n", render.CategoryLabel(entry.Category))
	fmt.Fprintf(&b, "**Ingredients:** %s\n", view.Ingredients)
	fmt.Fprintf(&b, "**Price:** %s\n", view.Price)
	return mcp.NewToolResultText(b.String()), nil
}

// handleListBeverages lists every beverage section.
func (s *Server) handleListBeverages(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var b strings.Builder
	for _, section := range s.renderer.Beverages() {
		fmt.Fprintf(&b, "## %s\n\n", section.Title)
		if len(section.Rows) == 0 {
			b.WriteString("(none)\n\n")
			continue
		}
		for _, row := range section.Rows {
			fmt.Fprintf(&b, "- %s: %s\n", row.Name, row.Price)
		}
		b.WriteString("\n")
	}
	return mcp.NewToolResultText(strings.TrimRight(b.String(), "\n")), nil
}

func (s *Server) categories() []string {
	cats := s.renderer.Catalog().Categories()
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = string(c)
	}
	return out
}

// formatMenu renders a menu view as a markdown list.
func formatMenu(view render.MenuView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d pizzas (%s):\n\n", len(view.Cards), render.FilterLabel(view.Filter))
	for i, c := range view.Cards {
		fmt.Fprintf(&b, "%d. %s %s [%s] %s\n   %s\n", i+1, c.Emoji, c.Name, c.CategoryLabel, c.Price, c.Ingredients)
	}
	return strings.TrimRight(b.String(), "\n")
}
