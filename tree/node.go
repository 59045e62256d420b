// Package tree builds syntax trees from the data a parse commits.
package tree

import (
	"strings"

	"github.com/dhamidi/kobol/data"
)

// Span represents a range in source code. Both ends are inclusive.
type Span struct {
	Start data.Position
	End   data.Position
}

// Node represents a node in the syntax tree. Leaf nodes have a non-nil
// Token; interior nodes are rules and have Children.
type Node struct {
	Namespace string
	Kind      string
	Children  []*Node
	Token     *data.Token
}

func NewTerminal(tok *data.Token) *Node {
	return &Node{Token: tok}
}

func NewNonTerminal(namespace, kind string) *Node {
	return &Node{Namespace: namespace, Kind: kind}
}

// IsTerminal returns true if this is a leaf node (token).
func (n *Node) IsTerminal() bool {
	return n.Token != nil
}

// AddChild appends a child node.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	n.Children = append(n.Children, child)
}

// Text returns the text of all tokens below n.
func (n *Node) Text() string {
	if n.Token != nil {
		return n.Token.Text()
	}
	var sb strings.Builder
	n.Walk(func(c *Node) bool {
		if c.Token != nil {
			sb.WriteString(c.Token.Text())
		}
		return true
	})
	return sb.String()
}

// Span returns the range from the first to the last token below n. It
// reports false for nodes without tokens.
func (n *Node) Span() (Span, bool) {
	first, last := n.first(), n.last()
	if first == nil {
		return Span{}, false
	}
	return Span{Start: first.Start(), End: last.End()}, true
}

func (n *Node) first() *data.Token {
	if n.Token != nil {
		return n.Token
	}
	for _, c := range n.Children {
		if tok := c.first(); tok != nil {
			return tok
		}
	}
	return nil
}

func (n *Node) last() *data.Token {
	if n.Token != nil {
		return n.Token
	}
	for i := len(n.Children) - 1; i >= 0; i-- {
		if tok := n.Children[i].last(); tok != nil {
			return tok
		}
	}
	return nil
}

// Walk calls fn for n and, as long as fn returns true for a node, for its
// children, depth first.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Tokens returns the tokens below n in order.
func (n *Node) Tokens() []*data.Token {
	var tokens []*data.Token
	n.Walk(func(c *Node) bool {
		if c.Token != nil {
			tokens = append(tokens, c.Token)
		}
		return true
	})
	return tokens
}

// Path returns the nodes from n down to the leaf whose token covers the
// given line and column, or nil when no token does.
func (n *Node) Path(line, column int) []*Node {
	if n.Token != nil {
		for _, r := range n.Token.Ranges() {
			if covers(r, line, column) {
				return []*Node{n}
			}
		}
		return nil
	}
	for _, c := range n.Children {
		if path := c.Path(line, column); path != nil {
			return append([]*Node{n}, path...)
		}
	}
	return nil
}

func covers(r data.Range, line, column int) bool {
	if line < r.Start.Line || line > r.End.Line {
		return false
	}
	if line == r.Start.Line && column < r.Start.Column {
		return false
	}
	if line == r.End.Line && column > r.End.Column {
		return false
	}
	return true
}
