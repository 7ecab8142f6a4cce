// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodRandomConnected is the canonical name for the RandomConnected constructor.
	MethodRandomConnected = "RandomConnected"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
)

//-----------------------------------------------------------------------------
// Vertex ID Defaults
//-----------------------------------------------------------------------------

// CenterVertexID is the identifier of the hub vertex in Star.
const CenterVertexID = "Center"

// GeneratedVertexPrefix is the prefix of GenerateGraph vertex IDs ("N0", "N1", ...).
const GeneratedVertexPrefix = "N"

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

// MinStarNodes is the smallest meaningful size for a star topology.
// A star requires one center plus at least one leaf.
const MinStarNodes = 2

// MinCompleteNodes is the smallest size accepted by Complete.
const MinCompleteNodes = 1

//-----------------------------------------------------------------------------
// Weights and Density Bounds
//-----------------------------------------------------------------------------

// DefaultEdgeWeight is the weight assigned to each edge when no custom
// WeightFn is provided. It is also the lower bound of generated weights.
const DefaultEdgeWeight int64 = 1

// DefaultMaxWeight is the inclusive upper bound of GenerateGraph weights.
const DefaultMaxWeight int64 = 100

// MinDensity is the lower bound of the density parameter, inclusive.
const MinDensity = 0.0

// MaxDensity is the upper bound of the density parameter, inclusive.
const MaxDensity = 1.0
