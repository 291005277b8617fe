// Package server implements an MCP (Model Context Protocol) server for the
// contour tools.
//
// This package provides a JSON-RPC 2.0 server that exposes contour tracing,
// polygon approximation and boundary encoding through the MCP protocol, so
// that an MCP client can calibrate a threshold and encode a silhouette
// without shelling out to the command line tool.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Image Inspection:
//   - contour_image_info: Dimensions, format and contour pixel count
//   - contour_sample_color: Color at a pixel and its classification
//
// Contour Operations:
//   - contour_trace: Traced contour points in Cartesian coordinates
//   - contour_approximate: Closed polygon edges
//   - contour_encode: Per-scheme boundary encodings
//
// Every contour tool accepts an optional threshold, step and region. Omitted
// arguments fall back to the defaults the server was created with.
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls, avoiding redundant disk I/O.
// The cache persists for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
