// Package encoding re-encodes the edges of a closed polygon under six shape
// description schemes.
//
// Each scheme is a pure function of one edge (ThreeAttr also reads the next
// edge) and returns a structured Token. Tokens render their conventional text
// form through String:
//
//	polar        12.0 + cos(90.0)
//	three-attr   [12.0 	angle:90.0 counter-clockwise]
//	three-digit  2: 010
//	projection   (0, -1)
//	complex      (-1i)
//	coordinates  [1:9] c:true -> [1:7] c:true
//
// Octant codes number 45 degree sectors clockwise from +X; see Octant for the
// exact bucket bounds.
package encoding
