package aamesh

import "github.com/gogpu/aamesh/internal/boolean"

// LineCap specifies the shape of line endpoints. Caps apply to open
// contours only, including every dash.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// String returns the cap name.
func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "butt"
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return "unknown"
	}
}

func (c LineCap) endType() boolean.EndType {
	switch c {
	case LineCapRound:
		return boolean.EndRound
	case LineCapSquare:
		return boolean.EndSquare
	default:
		return boolean.EndButt
	}
}

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// String returns the join name.
func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "miter"
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	default:
		return "unknown"
	}
}

func (j LineJoin) joinType() boolean.JoinType {
	switch j {
	case LineJoinRound:
		return boolean.JoinRound
	case LineJoinBevel:
		return boolean.JoinBevel
	default:
		return boolean.JoinMiter
	}
}

// FillRule specifies how to determine which areas are inside a path.
// Boolean operations always resolve overlaps with the non-zero rule; the
// rule is carried for consumers that fill Result.BoundaryPath themselves.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// String returns the rule name.
func (r FillRule) String() string {
	if r == FillRuleEvenOdd {
		return "evenodd"
	}
	return "nonzero"
}
