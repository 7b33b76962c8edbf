package syntax

// Flags is a bitset carrying two disjoint concerns in one word: low bits
// are ascending properties ("what the sub-expression turned out to be"),
// high bits are descending constraints ("what the caller requires of
// it"). Partitioning them this way means a constraint can never be
// mistaken for a property when a result is inspected.
type Flags uint32

const (
	// Ascending properties, set by an analysis rule on its own result.
	FlagAssignable Flags = 1 << iota
	FlagLiteralID
	FlagBinding
	FlagOnlyIDs
	FlagComma
	FlagIf
	FlagIn
	FlagSignature

	// constraintBase marks where descending constraints begin; keeping a
	// wide gap between the two halves means adding an ascending property
	// later never collides with a constraint bit.
	constraintBase = 1 << 20
)

const (
	// Descending constraints, passed down by a caller before visiting.
	ConstraintListComponentsAssignable Flags = constraintBase << iota
	ConstraintPreferBinding
	ConstraintLeftBindable1stIn
	ConstraintListOfIDsOnly
)

// constraintMask isolates the descending-constraint half of a Flags word;
// used when propagating constraints into a nested analyze call so that a
// property bit from an outer, unrelated result can never leak in as a
// constraint.
const constraintMask = ConstraintListComponentsAssignable | ConstraintPreferBinding |
	ConstraintLeftBindable1stIn | ConstraintListOfIDsOnly

// Has reports whether every bit in want is set in f.
func (f Flags) Has(want Flags) bool { return f&want == want }

// With returns f with add's bits folded in.
func (f Flags) With(add Flags) Flags { return f | add }
