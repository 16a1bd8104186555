// Package scene turns user input into shapes and keeps them in bounded,
// per-kind render queues.
//
// A [Scene] owns six queues, one per shape kind, plus the current color and
// drawing mode. Every accepted click creates a shape of the current mode,
// appends it to the queue for that kind and redraws the whole frame. Each
// queue holds at most [DefaultCapacity] shapes unless configured otherwise;
// adding to a full queue evicts its oldest shape.
//
// Key bindings:
//
//	r g b          set the color to red, green or blue
//	p h v t q c    point, horizontal line, vertical line, triangle,
//	               square, circle mode
//
// Redraw clears the surface and draws the queues in a fixed order: points,
// circles, horizontal lines, vertical lines, triangles, squares. Later
// kinds paint over earlier ones.
package scene
