package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listPizzasTool defines the list_pizzas MCP tool.
var listPizzasTool = mcp.NewTool("list_pizzas",
	mcp.WithDescription("List the pizzas on the menu with category, ingredients and price."),
	mcp.WithString("filter",
		mcp.Description("Category to list: \"all\" (default) or a category present on the menu, such as \"classic\" or \"special\""),
	),
)

// getPizzaTool defines the get_pizza MCP tool.
var getPizzaTool = mcp.NewTool("get_pizza",
	mcp.WithDescription("Get the details of one pizza by its exact name."),
	mcp.WithString("name",
		mcp.Required(),
		mcp.Description("Pizza name as shown on the menu, e.g. \"Margherita\""),
	),
)

// listBeveragesTool defines the list_beverages MCP tool.
var listBeveragesTool = mcp.NewTool("list_beverages",
	mcp.WithDescription("List the beverages grouped into soft drinks, beers and wines."),
)
