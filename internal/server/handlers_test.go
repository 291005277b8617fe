package server

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// createTestImageFile creates a test image file and returns its path
func createTestImageFile(t *testing.T, width, height int, c color.Color) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return writeTestPNG(t, img)
}

// createRingImageFile creates a 10x10 black PNG with a white square outline
// from (1,1) to (7,7) and returns its path.
func createRingImageFile(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, color.Black)
		}
	}
	for i := 1; i <= 7; i++ {
		img.Set(i, 1, color.White)
		img.Set(i, 7, color.White)
		img.Set(1, i, color.White)
		img.Set(7, i, color.White)
	}
	return writeTestPNG(t, img)
}

func writeTestPNG(t *testing.T, img image.Image) string {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "handler-test-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer tmpFile.Close()

	if err := png.Encode(tmpFile, img); err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to encode image: %v", err)
	}
	t.Cleanup(func() { os.Remove(tmpFile.Name()) })

	return tmpFile.Name()
}

// callTool runs a tools/call request and returns the response.
func callTool(t *testing.T, s *Server, name string, args map[string]interface{}) *MCPResponse {
	t.Helper()

	params := map[string]interface{}{
		"name":      name,
		"arguments": args,
	}
	paramsJSON, _ := json.Marshal(params)

	resp := s.handleRequest(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  paramsJSON,
	})
	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	return resp
}

// decodeContent unmarshals the text content of a successful tool response
// into v.
func decodeContent(t *testing.T, resp *MCPResponse, v interface{}) {
	t.Helper()

	if resp.Error != nil {
		t.Fatalf("Unexpected error: %+v", resp.Error)
	}
	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	content, ok := result["content"].([]map[string]interface{})
	if !ok || len(content) != 1 {
		t.Fatalf("content: got %#v", result["content"])
	}
	if content[0]["type"] != "text" {
		t.Errorf("content type: got %v, want text", content[0]["type"])
	}
	text, _ := content[0]["text"].(string)
	if err := json.Unmarshal([]byte(text), v); err != nil {
		t.Fatalf("content is not JSON: %v\n%s", err, text)
	}
}

func TestHandleToolsCall_ImageInfo(t *testing.T) {
	s := New()
	imgPath := createRingImageFile(t)

	var info struct {
		Width         int    `json:"width"`
		Height        int    `json:"height"`
		Format        string `json:"format"`
		ContourPixels int    `json:"contour_pixels"`
		Threshold     string `json:"threshold"`
	}
	decodeContent(t, callTool(t, s, "contour_image_info", map[string]interface{}{"path": imgPath}), &info)

	if info.Width != 10 || info.Height != 10 {
		t.Errorf("size: got %dx%d, want 10x10", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("format: got %s, want png", info.Format)
	}
	if info.ContourPixels != 24 {
		t.Errorf("contour_pixels: got %d, want 24", info.ContourPixels)
	}
	if info.Threshold != "200,200,200" {
		t.Errorf("threshold: got %s", info.Threshold)
	}
}

func TestHandleToolsCall_SampleColor(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 20, 20, color.RGBA{210, 220, 190, 255})

	tests := []struct {
		threshold string
		want      bool
	}{
		{"", false},
		{"180", true},
		{"#B4B4B4", true},
		{"200,200,180", true},
	}

	for _, tt := range tests {
		t.Run("threshold "+tt.threshold, func(t *testing.T) {
			args := map[string]interface{}{"path": imgPath, "x": 3, "y": 4}
			if tt.threshold != "" {
				args["threshold"] = tt.threshold
			}

			var got struct {
				Hex       string `json:"hex"`
				IsContour bool   `json:"is_contour"`
			}
			decodeContent(t, callTool(t, s, "contour_sample_color", args), &got)

			if got.Hex != "#D2DCBE" {
				t.Errorf("hex: got %s, want #D2DCBE", got.Hex)
			}
			if got.IsContour != tt.want {
				t.Errorf("is_contour: got %v, want %v", got.IsContour, tt.want)
			}
		})
	}
}

func TestHandleToolsCall_Trace(t *testing.T) {
	s := New()
	imgPath := createRingImageFile(t)

	var got TraceResult
	decodeContent(t, callTool(t, s, "contour_trace", map[string]interface{}{"path": imgPath}), &got)

	if got.Points != 24 || len(got.Contour) != 24 {
		t.Errorf("points: got %d (%d listed), want 24", got.Points, len(got.Contour))
	}
	if got.Start.X != 1 || got.Start.Y != 9 {
		t.Errorf("start: got (%d, %d), want (1, 9)", got.Start.X, got.Start.Y)
	}
	if got.End.X != 2 || got.End.Y != 9 {
		t.Errorf("end: got (%d, %d), want (2, 9)", got.End.X, got.End.Y)
	}
}

func TestHandleToolsCall_Approximate(t *testing.T) {
	s := New()
	imgPath := createRingImageFile(t)

	var got ApproximateResult
	resp := callTool(t, s, "contour_approximate", map[string]interface{}{"path": imgPath, "step": 2})
	decodeContent(t, resp, &got)

	if got.Edges != 12 || len(got.Polygon) != 12 {
		t.Errorf("edges: got %d (%d listed), want 12", got.Edges, len(got.Polygon))
	}
	if !got.Closed {
		t.Error("polygon should be closed")
	}
	if got.Step != 2 || got.ContourPoints != 24 {
		t.Errorf("step %d, contour points %d: want 2 and 24", got.Step, got.ContourPoints)
	}
}

func TestHandleToolsCall_Encode(t *testing.T) {
	s := New()
	imgPath := createRingImageFile(t)

	var got EncodeResult
	resp := callTool(t, s, "contour_encode", map[string]interface{}{
		"path":    imgPath,
		"step":    2,
		"schemes": []string{"three-digit", "complex"},
		"samples": 4,
	})
	decodeContent(t, resp, &got)

	if len(got.Encodings) != 2 {
		t.Fatalf("encodings: got %d, want 2", len(got.Encodings))
	}

	digits := got.Encodings[0]
	if digits.Scheme.String() != "three-digit" || digits.Total != 12 {
		t.Errorf("first encoding: got %s with %d tokens", digits.Scheme, digits.Total)
	}
	if d := cmp.Diff([]string{"2: 010", "2: 010", "2: 010", "0: 000"}, digits.Tokens); d != "" {
		t.Errorf("three-digit tokens mismatch (-want +got):\n%s", d)
	}

	complexTokens := got.Encodings[1].Tokens
	if d := cmp.Diff([]string{"(-1i)", "(-1i)", "(-1i)", "0"}, complexTokens); d != "" {
		t.Errorf("complex tokens mismatch (-want +got):\n%s", d)
	}
}

func TestHandleToolsCall_EncodeRegion(t *testing.T) {
	s := New()
	imgPath := createRingImageFile(t)

	// Cropping (0,0)-(5,5) leaves an L-shaped corner of the outline. The
	// tracer walks down the first arm and stops at its end.
	var got EncodeResult
	resp := callTool(t, s, "contour_encode", map[string]interface{}{
		"path":   imgPath,
		"step":   1,
		"region": map[string]interface{}{"x1": 0, "y1": 0, "x2": 5, "y2": 5},
	})
	decodeContent(t, resp, &got)

	if got.Width != 5 || got.Height != 5 {
		t.Errorf("size: got %dx%d, want 5x5", got.Width, got.Height)
	}
	if got.ContourPoints != 4 || got.Edges != 4 {
		t.Errorf("contour points %d, edges %d: want 4 and 4", got.ContourPoints, got.Edges)
	}
}

func TestHandleToolsCall_Errors(t *testing.T) {
	s := New()
	ringPath := createRingImageFile(t)
	blankPath := createTestImageFile(t, 10, 10, color.Black)

	tests := []struct {
		name    string
		tool    string
		args    map[string]interface{}
		wantMsg string
	}{
		{"missing file", "contour_trace", map[string]interface{}{"path": "/nonexistent/image.png"}, ""},
		{"no contour", "contour_trace", map[string]interface{}{"path": blankPath}, "no contour"},
		{"insufficient points", "contour_approximate", map[string]interface{}{"path": ringPath}, "insufficient"},
		{"bad threshold", "contour_encode", map[string]interface{}{"path": ringPath, "threshold": "red"}, ""},
		{"bad scheme", "contour_encode", map[string]interface{}{"path": ringPath, "schemes": []string{"morse"}}, ""},
		{"negative samples", "contour_encode", map[string]interface{}{"path": ringPath, "step": 2, "samples": -1}, "samples"},
		{"region outside", "contour_trace", map[string]interface{}{
			"path":   ringPath,
			"region": map[string]interface{}{"x1": 0, "y1": 0, "x2": 50, "y2": 5},
		}, "outside"},
		{"out of bounds sample", "contour_sample_color", map[string]interface{}{"path": ringPath, "x": 10, "y": 0}, ""},
		{"unknown tool", "contour_bogus", map[string]interface{}{}, "unknown tool"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := callTool(t, s, tt.tool, tt.args)
			if resp.Error == nil {
				t.Fatalf("Expected error, got result %v", resp.Result)
			}
			if resp.Error.Code != -32000 {
				t.Errorf("Error code: got %d, want -32000", resp.Error.Code)
			}
			data, _ := resp.Error.Data.(string)
			if tt.wantMsg != "" && !strings.Contains(data, tt.wantMsg) {
				t.Errorf("Error data %q should mention %q", data, tt.wantMsg)
			}
		})
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := New()

	resp := s.handleToolsCall(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Params:  json.RawMessage(`"not an object"`),
	})

	if resp.Error == nil {
		t.Fatal("Expected error for invalid params")
	}
	if resp.Error.Code != -32602 {
		t.Errorf("Error code: got %d, want -32602", resp.Error.Code)
	}
}

func TestHandleToolsCall_CachesImages(t *testing.T) {
	s := New()
	imgPath := createRingImageFile(t)

	callTool(t, s, "contour_image_info", map[string]interface{}{"path": imgPath})
	callTool(t, s, "contour_trace", map[string]interface{}{"path": imgPath})

	if n := s.cache.Len(); n != 1 {
		t.Errorf("cache holds %d images, want 1", n)
	}
}
