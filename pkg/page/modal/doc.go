// Package modal draws panels on top of the page.
//
// Rendering follows a render-then-measure pattern: a Frame is rendered first
// and the returned Layout reports where the close button and body landed, so
// mouse hit regions are registered from measured offsets rather than
// recomputed by hand.
//
//	f := modal.Frame{Title: "Skills", Body: body, Width: 60, MaxHeight: 20}
//	out := f.Render()
//	screen := modal.Place(modal.Dim(base, dim), out.View, x, y, w, h)
//	hits.AddRect("close", x+out.CloseX, y+out.CloseY, out.CloseW, 1, nil)
package modal
