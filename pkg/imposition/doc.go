// Package imposition computes where documents land on a print page and where
// their fold (score) lines fall.
//
// # Overview
//
// Documents of length D are placed side by side across a page of length P,
// separated by a fixed gutter G. The calculation is a linear pipeline:
//
//	params → document count → start positions → score positions
//
// Every value is rounded to the nearest thousandth with [Round3], the single
// rounding helper shared by all calculators.
//
// # Document Count
//
// [DocumentCount] returns the greatest N with N·D + (N−1)·G ≤ P, which is
// floor((P+G)/(D+G)).
//
// # Start Positions
//
// [StartPositions] centers the group of N documents on the page. The first
// start may be negative when the group is wider than the page; callers that
// draw the layout are expected to show that rather than reject it.
//
// # Fold Schemes
//
// A [Scheme] is resolved once at the boundary with [ParseScheme]:
//
//   - bifold: one score at D/2
//   - trifold: scores at D/3 and 2D/3
//   - gatefold: scores at D/4 and 3D/4
//   - custom: caller supplied offsets in [0, D], sorted across the page
//
// # Usage
//
//	scheme, err := imposition.ParseScheme("bifold", "")
//	l, err := imposition.Compute(imposition.Params{
//	    PageLength: 12,
//	    DocLength:  3.625,
//	    Gutter:     imposition.GutterSize,
//	}, scheme)
//	// l.Count == 3, l.Starts == [0.438 4.188 7.938]
package imposition
