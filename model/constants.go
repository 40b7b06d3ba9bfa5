package model

//-----------------------------------------------------------------------------
// Variant names, used to prefix errors with the model they concern.
//-----------------------------------------------------------------------------

const (
	methodLine         = "Line"
	methodMultiLine    = "MultiLine"
	methodDiagonalLine = "DiagonalLine"
	methodGrid         = "Grid"
	methodSpiral       = "Spiral"
	methodLissajous    = "Lissajous"
	methodArray        = "Array"
	methodSinglePoint  = "SinglePoint"
	methodRandomOffset = "RandomOffset"
)

//-----------------------------------------------------------------------------
// Defaults
//-----------------------------------------------------------------------------

// DefaultSpiralScale is the distance between successive spiral arcs.
const DefaultSpiralScale = 1.0

// DefaultLissajousA is the relative frequency of the fast-axis lobe.
const DefaultLissajousA = 1.0

// DefaultLissajousB is the relative frequency of the slow-axis lobe.
const DefaultLissajousB = 0.25

// DefaultLissajousDelta is the phase of the fast-axis lobe in radians.
const DefaultLissajousDelta = 0.0

// DefaultLissajousThetaStep is the parameter increment between samples.
const DefaultLissajousThetaStep = 0.05

// DefaultGridPoints is the per-axis point count offered to callers that
// leave the grid sampling open. NewGrid never applies it implicitly.
const DefaultGridPoints = 5

//-----------------------------------------------------------------------------
// Numeric policy
//-----------------------------------------------------------------------------

// StepTolerance absorbs floating error when a length is divided by a step:
// 3/0.6 must count 5 whole steps, not 4.
const StepTolerance = 1e-9

// MaxAxisPoints bounds the number of points any single axis or curve may
// produce. Larger requests are rejected at validation time.
const MaxAxisPoints = 1 << 28

// maxLissajousPeriodPoints bounds the derived point count of a Lissajous
// curve whose Points field is left at 0.
const maxLissajousPeriodPoints = 1 << 24
