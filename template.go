package tezos

import "strings"

// ParamPlaceholder marks a parameter slot in an entry point's structure.
const ParamPlaceholder = "$PARAM"

// Expr is a node of an invocation template.
// This is a sealed interface - only types within this package can implement it.
type Expr interface {
	// isExpr is unexported to seal the interface.
	isExpr()

	// Slots returns the number of parameter slots in the expression.
	Slots() int

	// write renders the expression, consuming args in slot order. A nil
	// args slice renders every slot as ParamPlaceholder.
	write(b *strings.Builder, args []string, next *int)
}

// SlotExpr is the position of one caller-supplied argument.
type SlotExpr struct{}

func (SlotExpr) isExpr() {}

// Slots returns 1.
func (SlotExpr) Slots() int { return 1 }

func (SlotExpr) write(b *strings.Builder, args []string, next *int) {
	if args == nil {
		b.WriteString(ParamPlaceholder)
		return
	}
	b.WriteString(args[*next])
	*next++
}

// LeftExpr selects the left branch of an or.
type LeftExpr struct {
	Inner Expr
}

func (LeftExpr) isExpr() {}

// Slots returns the slot count of the branch.
func (e LeftExpr) Slots() int { return e.Inner.Slots() }

func (e LeftExpr) write(b *strings.Builder, args []string, next *int) {
	b.WriteString("(Left ")
	e.Inner.write(b, args, next)
	b.WriteByte(')')
}

// RightExpr selects the right branch of an or.
type RightExpr struct {
	Inner Expr
}

func (RightExpr) isExpr() {}

// Slots returns the slot count of the branch.
func (e RightExpr) Slots() int { return e.Inner.Slots() }

func (e RightExpr) write(b *strings.Builder, args []string, next *int) {
	b.WriteString("(Right ")
	e.Inner.write(b, args, next)
	b.WriteByte(')')
}

// PairExpr combines two values into a pair.
type PairExpr struct {
	First  Expr
	Second Expr
}

func (PairExpr) isExpr() {}

// Slots returns the combined slot count of both components.
func (e PairExpr) Slots() int { return e.First.Slots() + e.Second.Slots() }

func (e PairExpr) write(b *strings.Builder, args []string, next *int) {
	b.WriteString("(Pair ")
	e.First.write(b, args, next)
	b.WriteByte(' ')
	e.Second.write(b, args, next)
	b.WriteByte(')')
}

// GroupExpr parenthesizes the value of a wrapped type such as option or map.
type GroupExpr struct {
	Inner Expr
}

func (GroupExpr) isExpr() {}

// Slots returns the slot count of the wrapped expression.
func (e GroupExpr) Slots() int { return e.Inner.Slots() }

func (e GroupExpr) write(b *strings.Builder, args []string, next *int) {
	b.WriteByte('(')
	e.Inner.write(b, args, next)
	b.WriteByte(')')
}

// render substitutes args into e's slots in order. The caller guarantees
// len(args) == e.Slots(); a nil args renders placeholders.
func render(e Expr, args []string) string {
	var b strings.Builder
	next := 0
	e.write(&b, args, &next)
	return b.String()
}
