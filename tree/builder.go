package tree

import (
	"fmt"

	"github.com/dhamidi/kobol/data"
)

// Builder is a stream.Target turning committed data into a tree. Start
// markers open a node, End markers close it and tokens become leaves of
// the innermost open node.
type Builder struct {
	root  *Node
	stack []*Node
	err   error
}

func NewBuilder() *Builder {
	root := &Node{}
	return &Builder{root: root, stack: []*Node{root}}
}

func (b *Builder) Push(d data.Data) {
	top := b.stack[len(b.stack)-1]
	switch v := d.(type) {
	case *data.Token:
		top.AddChild(NewTerminal(v))
	case *data.Marker:
		if v.IsStart() {
			n := NewNonTerminal(v.Namespace(), v.Name())
			top.AddChild(n)
			b.stack = append(b.stack, n)
			return
		}
		if len(b.stack) == 1 || top.Namespace != v.Namespace() || top.Kind != v.Name() {
			if b.err == nil {
				b.err = fmt.Errorf("unbalanced end marker %s", v)
			}
			return
		}
		b.stack = b.stack[:len(b.stack)-1]
	}
}

// Root returns the document node. Its children are the outermost rules and
// any tokens outside of them.
func (b *Builder) Root() *Node {
	return b.root
}

// Err reports unbalanced markers, including rules which were never closed.
func (b *Builder) Err() error {
	if b.err != nil {
		return b.err
	}
	if n := len(b.stack); n > 1 {
		top := b.stack[n-1]
		return fmt.Errorf("unclosed rule %s:%s", top.Namespace, top.Kind)
	}
	return nil
}
