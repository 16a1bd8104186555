// Package shape defines the drawable object model: colors, vertices and the
// six shape kinds a user can place on the canvas.
//
// A Shape is a tagged union. Its Kind selects a pure expansion function that
// turns the shape parameters and a color into one to three vertices. The
// vertex list is fixed at construction and never changes afterwards.
//
// # Vertex records
//
// Every vertex serializes to eight float32 values:
//
//	[x, y, r, g, b, isPoint, isCircle, isSquare]
//
// The rasterizers bind vertex attributes with the same offsets (see
// render.VertexLayout). Both sides must change together.
package shape
