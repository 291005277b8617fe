package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/boundary-codec/internal/contour"
	"github.com/ironsheep/boundary-codec/internal/encoding"
	"github.com/ironsheep/boundary-codec/internal/imaging"
	"github.com/ironsheep/boundary-codec/internal/pipeline"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "contour_trace", "contour_encode").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Fills omitted arguments from the server defaults
//  3. Loads the image from cache, cropping it if a region was given
//  4. Runs as much of the contour pipeline as the tool reports on
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Image Inspection
	case "contour_image_info":
		return s.handleImageInfo(args)
	case "contour_sample_color":
		return s.handleSampleColor(args)

	// Contour Operations
	case "contour_trace":
		return s.handleTrace(args)
	case "contour_approximate":
		return s.handleApproximate(args)
	case "contour_encode":
		return s.handleEncode(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// contourArgs holds the arguments shared by the contour tools.
type contourArgs struct {
	Path      string          `json:"path"`
	Threshold string          `json:"threshold"`
	Step      int             `json:"step"`
	Region    *imaging.Region `json:"region"`
}

// options merges a with the server defaults.
func (s *Server) options(a contourArgs) (pipeline.Options, error) {
	opts := s.defaults
	if a.Threshold != "" {
		t, err := imaging.ParseThreshold(a.Threshold)
		if err != nil {
			return opts, err
		}
		opts.Threshold = t
	}
	if a.Step != 0 {
		opts.Step = a.Step
	}
	opts.Region = a.Region
	return opts, nil
}

func (s *Server) threshold(raw string) (imaging.Threshold, error) {
	if raw == "" {
		return s.defaults.Threshold, nil
	}
	return imaging.ParseThreshold(raw)
}

// grid loads path, crops it to region if set, and converts it to a Grid.
func (s *Server) grid(path string, region *imaging.Region) (*imaging.Grid, error) {
	img, err := s.cache.Load(path)
	if err != nil {
		return nil, err
	}
	if region != nil {
		if img, err = imaging.CropRegion(img, *region); err != nil {
			return nil, err
		}
	}
	return imaging.FromImage(img)
}

// === Image Inspection Handlers ===

type imageInfoArgs struct {
	Path      string `json:"path"`
	Threshold string `json:"threshold"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	t, err := s.threshold(a.Threshold)
	if err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path, t)
}

type sampleColorArgs struct {
	Path      string `json:"path"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Threshold string `json:"threshold"`
}

func (s *Server) handleSampleColor(args json.RawMessage) (interface{}, error) {
	var a sampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	t, err := s.threshold(a.Threshold)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y, t)
}

// === Contour Operation Handlers ===

// TraceResult is the output of the contour_trace tool.
type TraceResult struct {
	Width   int             `json:"width"`
	Height  int             `json:"height"`
	Points  int             `json:"points"`
	Start   contour.Point   `json:"start"`
	End     contour.Point   `json:"end"`
	Contour contour.Contour `json:"contour"`
}

func (s *Server) handleTrace(args json.RawMessage) (interface{}, error) {
	var a contourArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	opts, err := s.options(a)
	if err != nil {
		return nil, err
	}
	g, err := s.grid(a.Path, a.Region)
	if err != nil {
		return nil, err
	}

	traced, err := contour.Trace(g, opts.Threshold)
	if err != nil {
		return nil, err
	}
	c := contour.Normalize(traced, g.Height())
	start, _ := c.Start()
	end, _ := c.End()

	return &TraceResult{
		Width:   g.Width(),
		Height:  g.Height(),
		Points:  len(c),
		Start:   start,
		End:     end,
		Contour: c,
	}, nil
}

// ApproximateResult is the output of the contour_approximate tool.
type ApproximateResult struct {
	Width         int             `json:"width"`
	Height        int             `json:"height"`
	ContourPoints int             `json:"contour_points"`
	Step          int             `json:"step"`
	Edges         int             `json:"edges"`
	Closed        bool            `json:"closed"`
	Polygon       contour.Polygon `json:"polygon"`
}

func (s *Server) handleApproximate(args json.RawMessage) (interface{}, error) {
	var a contourArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	opts, err := s.options(a)
	if err != nil {
		return nil, err
	}
	g, err := s.grid(a.Path, a.Region)
	if err != nil {
		return nil, err
	}

	traced, err := contour.Trace(g, opts.Threshold)
	if err != nil {
		return nil, err
	}
	c := contour.Normalize(traced, g.Height())
	poly, err := contour.Approximate(c, opts.Step)
	if err != nil {
		return nil, err
	}

	return &ApproximateResult{
		Width:         g.Width(),
		Height:        g.Height(),
		ContourPoints: len(c),
		Step:          opts.Step,
		Edges:         len(poly),
		Closed:        poly.Closed(),
		Polygon:       poly,
	}, nil
}

type encodeArgs struct {
	contourArgs
	Schemes []encoding.Scheme `json:"schemes"`
	Samples int               `json:"samples"`
}

// SchemeOutput is one scheme's tokens in the contour_encode result.
type SchemeOutput struct {
	Scheme encoding.Scheme `json:"scheme"`
	Title  string          `json:"title"`
	Total  int             `json:"total"`
	Tokens []string        `json:"tokens"`
}

// EncodeResult is the output of the contour_encode tool.
type EncodeResult struct {
	Width         int            `json:"width"`
	Height        int            `json:"height"`
	ContourPoints int            `json:"contour_points"`
	Step          int            `json:"step"`
	Edges         int            `json:"edges"`
	Start         contour.Point  `json:"start"`
	End           contour.Point  `json:"end"`
	Encodings     []SchemeOutput `json:"encodings"`
}

func (s *Server) handleEncode(args json.RawMessage) (interface{}, error) {
	var a encodeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Samples < 0 {
		return nil, fmt.Errorf("samples must be >= 0, got %d", a.Samples)
	}
	opts, err := s.options(a.contourArgs)
	if err != nil {
		return nil, err
	}
	if len(a.Schemes) > 0 {
		opts.Schemes = a.Schemes
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	res, err := pipeline.RunImage(img, opts)
	if err != nil {
		return nil, err
	}

	out := &EncodeResult{
		Width:         res.Width,
		Height:        res.Height,
		ContourPoints: len(res.Contour),
		Step:          opts.Step,
		Edges:         len(res.Polygon),
		Start:         res.Start(),
		End:           res.End(),
	}
	for _, e := range res.Encodings {
		tokens := e.Strings()
		total := len(tokens)
		if a.Samples > 0 && a.Samples < total {
			tokens = tokens[:a.Samples]
		}
		out.Encodings = append(out.Encodings, SchemeOutput{
			Scheme: e.Scheme,
			Title:  e.Scheme.Title(),
			Total:  total,
			Tokens: tokens,
		})
	}
	return out, nil
}
