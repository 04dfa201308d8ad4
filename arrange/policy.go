package arrange

import "fmt"

// PolicyKind selects the placement algorithm.
type PolicyKind int

const (
	// PolicyUniform fills seats with a random permutation of the pool.
	PolicyUniform PolicyKind = iota
	// PolicyClustered fills seats in runs of one tag group.
	PolicyClustered
	// PolicyCorridor switches tag group at every corridor cell.
	PolicyCorridor
)

// Policy is a tagged choice of exactly one algorithm. Build it with
// Uniform, GenderClustered, StrictClustered, CorridorAlternating or
// ResolvePolicy; the zero value is Uniform.
type Policy struct {
	kind      PolicyKind
	runLength int  // PolicyClustered only
	strict    bool // PolicyClustered only: never repeat a group while the other has members
}

// Uniform returns the uniform-random policy.
func Uniform() Policy { return Policy{kind: PolicyUniform} }

// GenderClustered returns the clustered policy with runs of up to runLength.
// The group of each run is chosen uniformly while both groups are non-empty.
func GenderClustered(runLength int) Policy {
	return Policy{kind: PolicyClustered, runLength: runLength}
}

// StrictClustered is GenderClustered with forced alternation between runs:
// only the first run's group is random.
func StrictClustered(runLength int) Policy {
	return Policy{kind: PolicyClustered, runLength: runLength, strict: true}
}

// CorridorAlternating returns the corridor-alternating policy.
func CorridorAlternating() Policy { return Policy{kind: PolicyCorridor} }

// ResolvePolicy maps the flag pair used by configuration files onto one
// Policy. Corridor alternation takes precedence over clustering; neither
// flag yields Uniform.
func ResolvePolicy(clustered bool, runLength int, corridor bool) Policy {
	switch {
	case corridor:
		return CorridorAlternating()
	case clustered:
		return GenderClustered(runLength)
	default:
		return Uniform()
	}
}

// Kind returns the algorithm selector.
func (p Policy) Kind() PolicyKind { return p.kind }

// RunLength returns the clustered run length (0 for other kinds).
func (p Policy) RunLength() int { return p.runLength }

// Strict reports whether clustered runs are forced to alternate.
func (p Policy) Strict() bool { return p.strict }

// validate checks policy parameters before any placement work.
func (p Policy) validate() error {
	switch p.kind {
	case PolicyUniform, PolicyCorridor:
		return nil
	case PolicyClustered:
		if p.runLength < 1 {
			return fmt.Errorf("run length %d: %w", p.runLength, ErrBadRunLength)
		}
		return nil
	default:
		return fmt.Errorf("kind %d: %w", p.kind, ErrUnknownPolicy)
	}
}

// String renders the policy, e.g. "clustered(3)" or "corridor".
func (p Policy) String() string {
	switch p.kind {
	case PolicyUniform:
		return "uniform"
	case PolicyClustered:
		if p.strict {
			return fmt.Sprintf("clustered-strict(%d)", p.runLength)
		}
		return fmt.Sprintf("clustered(%d)", p.runLength)
	case PolicyCorridor:
		return "corridor"
	default:
		return fmt.Sprintf("policy(%d)", p.kind)
	}
}
