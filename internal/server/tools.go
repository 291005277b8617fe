package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var (
	pathProperty = map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}

	thresholdProperty = map[string]interface{}{
		"type":        "string",
		"description": "Contour threshold: a single level (\"200\"), an r,g,b triple (\"200,200,200\") or a hex color (\"#C8C8C8\"). A pixel is contour when every channel is at or above the threshold. Default 200,200,200",
	}

	stepProperty = map[string]interface{}{
		"type":        "integer",
		"description": "Polygon sampling step in contour points. Default 31",
		"minimum":     1,
	}

	regionProperty = map[string]interface{}{
		"type":        "object",
		"description": "Optional region to crop before tracing, to isolate one silhouette",
		"properties": map[string]interface{}{
			"x1": map[string]interface{}{"type": "integer", "description": "Left edge X coordinate (0-based)"},
			"y1": map[string]interface{}{"type": "integer", "description": "Top edge Y coordinate (0-based)"},
			"x2": map[string]interface{}{"type": "integer", "description": "Right edge X coordinate (exclusive)"},
			"y2": map[string]interface{}{"type": "integer", "description": "Bottom edge Y coordinate (exclusive)"},
		},
		"required": []string{"x1", "y1", "x2", "y2"},
	}
)

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image Inspection
		{
			Name:        "contour_image_info",
			Description: "Load an image file and return its dimensions, format and the number of pixels the threshold classifies as contour. Zero contour pixels means tracing will fail.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":      pathProperty,
					"threshold": thresholdProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "contour_sample_color",
			Description: "Get the color at a pixel and whether the threshold classifies it as contour. Use it to calibrate the threshold against the contour line and the background.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
					"threshold": thresholdProperty,
				},
				"required": []string{"path", "x", "y"},
			},
		},

		// Contour Operations
		{
			Name:        "contour_trace",
			Description: "Trace the single contour of an image and return its points in trace order, in Cartesian coordinates with the origin at the bottom-left.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":      pathProperty,
					"threshold": thresholdProperty,
					"region":    regionProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "contour_approximate",
			Description: "Trace the contour of an image and approximate it with a closed polygon, sampling every step-th point. Returns the polygon edges.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":      pathProperty,
					"threshold": thresholdProperty,
					"step":      stepProperty,
					"region":    regionProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "contour_encode",
			Description: "Trace, approximate and encode the contour of an image under one or more shape-description schemes: three-attr, three-digit, projection, complex, coordinates, polar.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":      pathProperty,
					"threshold": thresholdProperty,
					"step":      stepProperty,
					"region":    regionProperty,
					"schemes": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "string",
							"enum": []string{"three-attr", "three-digit", "projection", "complex", "coordinates", "polar"},
						},
						"description": "Schemes to encode with, in output order. Default all",
					},
					"samples": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum tokens to return per scheme; 0 returns all. Default 0",
						"minimum":     0,
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
