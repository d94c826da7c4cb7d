// Package render draws imposition layouts.
//
// # Overview
//
// A [Scene] is the layout projected onto a canvas of caller-defined pixel
// dimensions. It is computed once by [NewScene] and then handed to a sink:
//
//   - [RenderSVG]: hand-written SVG
//   - [RenderPNG]: raster image via fogleman/gg
//   - [RenderPDF]: vector preview via gofpdf, one page sized to the canvas
//   - [RenderText]: a terminal strip, one character per canvas column
//
// [RenderJSON] and [Summary] export the calculation itself and do not need a
// canvas.
//
// # Geometry
//
// The scale factor is canvas width / page length. The page outline spans the
// full width at y = H/4 with height H/2, each document is a filled rectangle
// of width D·scale inside that band, and each score is a vertical line from
// H/4 to 3H/4.
//
// # Degenerate Scale
//
// [NewScene] fails with DEGENERATE_SCALE when the scale is not finite or not
// positive. The calculation is unaffected: callers still show [Summary].
//
//	scene, err := render.NewScene(layout, render.DefaultCanvas)
//	if err != nil {
//	    fmt.Println(render.Summary(layout))
//	    return err
//	}
//	svg := render.RenderSVG(scene)
package render
