package ast

// LiteralKind distinguishes the handful of token spellings that stand for
// themselves in the AST.
type LiteralKind int

const (
	LiteralIdentifier LiteralKind = iota
	LiteralNumber
	LiteralString
	LiteralTrue
	LiteralFalse
	LiteralNone
)

func (k LiteralKind) String() string {
	switch k {
	case LiteralIdentifier:
		return "Identifier"
	case LiteralNumber:
		return "Number"
	case LiteralString:
		return "String"
	case LiteralTrue:
		return "True"
	case LiteralFalse:
		return "False"
	case LiteralNone:
		return "None"
	default:
		return "LiteralKind(?)"
	}
}

// Literal is an identifier, number, string, or keyword-literal token kept
// verbatim in the AST — everything that needed no further shape decisions.
type Literal struct {
	ExprBase
	Kind  LiteralKind
	Value string
}

// UnaryKind distinguishes every shape that resolves to one operand: the
// four prefix operators plus the three BiExprBiTk shapes
// (tuple/group/list) that carry a single inner expression rather than a
// true left/right pair.
type UnaryKind int

const (
	Posify UnaryKind = iota
	Negate
	Spread
	LogicNOT
	Tuple
	Group
	List
)

func (k UnaryKind) String() string {
	switch k {
	case Posify:
		return "Posify"
	case Negate:
		return "Negate"
	case Spread:
		return "Spread"
	case LogicNOT:
		return "LogicNOT"
	case Tuple:
		return "Tuple"
	case Group:
		return "Group"
	case List:
		return "List"
	default:
		return "UnaryKind(?)"
	}
}

// UnaryExpr applies op to one operand.
type UnaryExpr struct {
	ExprBase
	Kind    UnaryKind
	Operand ExprHandle
}

// BinaryKind distinguishes every two-operand shape — arithmetic,
// comparison, logic, membership/identity, and the three postfix/infix
// BiExprBiTk shapes (call, subscript, dot) that resolve to a true pair.
type BinaryKind int

const (
	Add BinaryKind = iota
	Subtract
	Multiply
	Divide
	LogicAND
	LogicOR
	CmpEQ
	CmpNE
	CmpLT
	CmpLE
	CmpGT
	CmpGE
	In
	Is
	IsNot
	NotIn
	Call
	Subscript
	Dot
	Comma

	// TernaryInner is a throwaway kind used only transiently: the parser
	// encodes `a if b else c` as BiExprBiTk(if, else, BinaryExpr(if, a, b),
	// c), and analyzing that inner synthetic BinaryExpr produces a node of
	// this kind purely so its already-analyzed Left/Right can be pulled
	// back out when building the TernaryExpr. It never survives into a
	// finished AST.
	TernaryInner
)

func (k BinaryKind) String() string {
	switch k {
	case Add:
		return "Add"
	case Subtract:
		return "Subtract"
	case Multiply:
		return "Multiply"
	case Divide:
		return "Divide"
	case LogicAND:
		return "LogicAND"
	case LogicOR:
		return "LogicOR"
	case CmpEQ:
		return "CmpEQ"
	case CmpNE:
		return "CmpNE"
	case CmpLT:
		return "CmpLT"
	case CmpLE:
		return "CmpLE"
	case CmpGT:
		return "CmpGT"
	case CmpGE:
		return "CmpGE"
	case In:
		return "In"
	case Is:
		return "Is"
	case IsNot:
		return "IsNot"
	case NotIn:
		return "NotIn"
	case Call:
		return "Call"
	case Subscript:
		return "Subscript"
	case Dot:
		return "Dot"
	case Comma:
		return "Comma"
	default:
		return "BinaryKind(?)"
	}
}

// BinaryExpr applies op to a left and right operand.
type BinaryExpr struct {
	ExprBase
	Kind        BinaryKind
	Left, Right ExprHandle
}

// TernaryKind has exactly one member today; kept as its own type (rather
// than a bare bool) so a second three-operand shape has somewhere to go
// without renaming this one.
type TernaryKind int

const (
	IfElse TernaryKind = iota
)

func (k TernaryKind) String() string {
	if k == IfElse {
		return "IfElse"
	}
	return "TernaryKind(?)"
}

// TernaryExpr is `left if middle else right`, recovered from the parse
// tree's BiExprBiTk(if, else, BinaryExpr(if, left, middle), right)
// encoding.
type TernaryExpr struct {
	ExprBase
	Kind                TernaryKind
	Left, Middle, Right ExprHandle
}

// BindingKind distinguishes a plain name target from a spread-capture
// target (`*name`).
type BindingKind int

const (
	BindingName BindingKind = iota
	BindingCapture
)

func (k BindingKind) String() string {
	switch k {
	case BindingName:
		return "Name"
	case BindingCapture:
		return "Capture"
	default:
		return "BindingKind(?)"
	}
}

// Binding is an identifier appearing as an assignment target or parameter:
// produced instead of a Literal/UnaryExpr when the analyzer is asked to
// prefer bindings (function signatures, for-loop targets, nonlocal/global
// lists).
type Binding struct {
	ExprBase
	Kind BindingKind
	Name string
}

// Lambda is `|params| body`. No parse path currently produces the
// BiExprBiTk shape this would be built from — the lexer has no production
// for the bracketing token — so this type exists for AST vocabulary
// completeness but the analyzer never constructs one.
type Lambda struct {
	ExprBase
	Parameters ExprHandle
	Body       ExprHandle
}
