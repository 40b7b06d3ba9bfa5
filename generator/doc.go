// Package generator turns path models into point sequences.
//
// Every generator is a pure function from an index to a point: At(i) costs
// O(1) (O(log segments) for multi-segment lines) and never depends on what
// was requested before, so a scan can be walked with an Iterator, accessed
// at random to resume at a known index, or materialized with Points. Size
// and Shape are known at construction without evaluating any point.
//
// # Families
//
// One generator per model kind: Line, MultiLine, DiagonalLine, Grid,
// Spiral, Lissajous, Array and SinglePoint. A model's seeded random offset
// and continuous hint are applied by its generator; grid alternation
// (snake rows) is part of the grid's own ordering.
//
// # Compound scans
//
// Compound nests generators outermost first: for each point of the outer
// level the inner levels run in full. Levels whose axes are joined by a
// region of interest are merged into one dimension whose points are
// filtered once at construction; the surviving indices are kept so that
// Size stays exact and At stays O(levels). A Compound is itself a
// Generator and can be nested inside another.
//
// Besides the pure At/Iterator access, a Compound carries one cursor (Next)
// with the lifecycle Unbuilt → Validated → Iterating → Exhausted. The
// cursor never rewinds; build a new Compound to run the scan again.
//
// # Registry and service
//
// Registry maps model kinds to factories. Default returns the process-wide
// registry, filled with every built-in family on first use and frozen.
// Service is the entry point callers use to resolve models, regions and
// mutators into a runnable generator.
package generator
