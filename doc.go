// Package scanpath turns declarative descriptions of a measurement region
// into deterministic, ordered sequences of multi-axis positions.
//
// What is scanpath?
//
//	An in-memory trajectory engine that brings together:
//		• Path models: lines, grids, spirals, Lissajous curves, arrays, single points
//		• Point generators: one pure index→point function per model family
//		• Mutators: seeded random offsets, continuous-motion hints, alternating order
//		• Regions of interest: circle, rectangle, ellipse and polygon containment
//		• Compound generators: nested multi-dimensional scans with ROI filtering
//		• A registry/service resolving model kinds to generators
//
// Under the hood, everything is organized under these subpackages:
//
//	point/     — immutable Point: index, ordered axis names and values
//	model/     — BoundingBox, BoundingLine and the sealed Model variants
//	region/    — ROI shapes and their binding to an axis pair
//	mutator/   — RandomOffset, Continuous, Alternating
//	generator/ — per-family generators, Compound, Registry and Service
//	cmd/pathgen — command printing a generated path as CSV
//
// Quick example:
//
//	box := model.NewBoundingBox(-10, 3, 5, 4)
//	spiral, _ := model.NewSpiral("x", "y", box, 1)
//	gen, _ := generator.NewService().CreateGenerator(spiral)
//	it := gen.Iterator()
//	for it.HasNext() {
//		p, _ := it.Next()
//		move(p) // hand the position to the motion layer
//	}
//
// Logging is silent unless a logger is installed with SetLogger.
package scanpath
