// Package viz provides terminal visualization for running universes and
// stored runs.
//
// The live view is a Bubble Tea program:
//
//   - [Model]: steps a universe at a fixed frame rate and renders it
//   - [Canvas]: braille pixel canvas, two axes
//   - [Camera] and [Render3D]: wireframe projection for universes with
//     three or more dimensions
//   - [Theme] selection with built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Reset the scene
//	+/-   - Steps per frame
//	T     - Cycle color themes
//	X/Y/Z - Rotate the 3-D camera (shift reverses)
//	?     - Help overlay
//	Q     - Quit
//
// [Series] and [RenderSeries] back the plot command for stored runs.
package viz
