package tree

import (
	"strconv"
	"strings"

	"github.com/synteny-tools/synplot/pkg/errors"
)

// Node is one clade of a parsed Newick tree.
type Node struct {
	Name     string
	Length   float64
	Children []*Node
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Leaves returns the leaf nodes in tree order.
func (n *Node) Leaves() []*Node {
	if n.IsLeaf() {
		return []*Node{n}
	}
	var out []*Node
	for _, c := range n.Children {
		out = append(out, c.Leaves()...)
	}
	return out
}

// contains reports whether any leaf under n carries the given name.
func (n *Node) contains(name string) bool {
	if n.IsLeaf() {
		return n.Name == name
	}
	for _, c := range n.Children {
		if c.contains(name) {
			return true
		}
	}
	return false
}

// ParseNewick parses a single Newick tree, e.g. "((a:1,b:1):2,c:3);".
// Branch lengths are optional; quoted labels are not supported.
func ParseNewick(s string) (*Node, error) {
	p := &newickParser{src: strings.TrimSpace(s)}
	root, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.src) && p.src[p.pos] == ';' {
		p.pos++
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, errors.New(errors.ErrCodeParse,
			"newick: trailing input at offset %d", p.pos)
	}
	return root, nil
}

type newickParser struct {
	src string
	pos int
}

func (p *newickParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t' || p.src[p.pos] == '\n') {
		p.pos++
	}
}

func (p *newickParser) parseNode() (*Node, error) {
	p.skipSpace()
	n := &Node{}

	if p.pos < len(p.src) && p.src[p.pos] == '(' {
		p.pos++
		for {
			child, err := p.parseNode()
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)

			p.skipSpace()
			if p.pos >= len(p.src) {
				return nil, errors.New(errors.ErrCodeParse, "newick: unclosed clade")
			}
			if p.src[p.pos] == ',' {
				p.pos++
				continue
			}
			if p.src[p.pos] == ')' {
				p.pos++
				break
			}
			return nil, errors.New(errors.ErrCodeParse,
				"newick: unexpected %q at offset %d", p.src[p.pos], p.pos)
		}
	}

	n.Name = p.parseLabel()
	if p.pos < len(p.src) && p.src[p.pos] == ':' {
		p.pos++
		length, err := p.parseLength()
		if err != nil {
			return nil, err
		}
		n.Length = length
	}

	if n.Name == "" && n.IsLeaf() {
		return nil, errors.New(errors.ErrCodeParse,
			"newick: unnamed leaf at offset %d", p.pos)
	}
	return n, nil
}

func (p *newickParser) parseLabel() string {
	start := p.pos
	for p.pos < len(p.src) && !strings.ContainsRune("(),:;", rune(p.src[p.pos])) {
		p.pos++
	}
	return strings.TrimSpace(p.src[start:p.pos])
}

func (p *newickParser) parseLength() (float64, error) {
	start := p.pos
	for p.pos < len(p.src) && (p.src[p.pos] == '.' || p.src[p.pos] == '-' ||
		p.src[p.pos] == 'e' || p.src[p.pos] == 'E' || p.src[p.pos] == '+' ||
		(p.src[p.pos] >= '0' && p.src[p.pos] <= '9')) {
		p.pos++
	}
	v, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeParse,
			"newick: bad branch length %q at offset %d", p.src[start:p.pos], start)
	}
	return v, nil
}
