package xmltree

import (
	"github.com/beevik/etree"
)

// Attr is one attribute of a template node.
type Attr struct {
	Name  string
	Value string
}

// NodeSpec describes a single element of a chain template.
type NodeSpec struct {
	Tag   string
	Attrs []Attr
}

// Build creates one unattached element per spec, in spec order.
func Build(specs []NodeSpec) []*etree.Element {
	nodes := make([]*etree.Element, 0, len(specs))
	for _, spec := range specs {
		elem := etree.NewElement(spec.Tag)
		for _, attr := range spec.Attrs {
			elem.CreateAttr(attr.Name, attr.Value)
		}
		nodes = append(nodes, elem)
	}
	return nodes
}

// Link nests nodes[i+1] under nodes[i] and returns the outermost and innermost
// elements. Both are nil for an empty slice.
func Link(nodes []*etree.Element) (head, tail *etree.Element) {
	if len(nodes) == 0 {
		return nil, nil
	}
	for i := 1; i < len(nodes); i++ {
		parent, child := nodes[i-1], nodes[i]
		if parent == nil || child == nil {
			continue
		}
		parent.AddChild(child)
	}
	return nodes[0], nodes[len(nodes)-1]
}

// Chain is a built and linked template instance. Nodes keeps the template
// order so callers can address an element by its template index.
type Chain struct {
	Nodes []*etree.Element
}

// NewChain builds and links specs in one step.
func NewChain(specs []NodeSpec) Chain {
	nodes := Build(specs)
	Link(nodes)
	return Chain{Nodes: nodes}
}

// Head returns the outermost element.
func (c Chain) Head() *etree.Element {
	if len(c.Nodes) == 0 {
		return nil
	}
	return c.Nodes[0]
}

// Tail returns the innermost element.
func (c Chain) Tail() *etree.Element {
	if len(c.Nodes) == 0 {
		return nil
	}
	return c.Nodes[len(c.Nodes)-1]
}

// Descend follows path from root, taking the first child element whose tag
// matches each segment. It returns nil when root is nil, has no children, or a
// segment is missing.
func Descend(root *etree.Element, path ...string) *etree.Element {
	if root == nil || len(root.ChildElements()) == 0 {
		return nil
	}
	current := root
	for _, tag := range path {
		current = current.SelectElement(tag)
		if current == nil {
			return nil
		}
	}
	return current
}
