// Package tree renders the phylogenetic side panels of a synteny figure.
//
// A tree list file holds one panel per paragraph: a header row
// "label,outgroup,color" (outgroup and color optional) followed by the
// tree in Newick notation, terminated by a semicolon. Panels are laid out
// with Graphviz and written as standalone files next to the main figure.
package tree

import (
	"bufio"
	"io"
	"os"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/synteny-tools/synplot/pkg/errors"
	"github.com/synteny-tools/synplot/pkg/styles"
)

// Tree is one parsed panel entry.
type Tree struct {
	Label    string
	Outgroup string
	Color    colorful.Color
	HasColor bool
	Root     *Node
}

// Load reads a tree list file from disk.
func Load(path string) ([]Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "tree file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open tree file %s", path)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads the tree list from r.
func Parse(r io.Reader) ([]Tree, error) {
	var (
		out     []Tree
		header  string
		newick  strings.Builder
		started bool
	)

	flush := func() error {
		if !started {
			return nil
		}
		t, err := parseEntry(header, newick.String())
		if err != nil {
			return err
		}
		out = append(out, t)
		header = ""
		newick.Reset()
		started = false
		return nil
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		row := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(row, "#") {
			continue
		}
		if row == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		if !started {
			header = row
			started = true
			continue
		}
		newick.WriteString(row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read tree list")
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return out, nil
}

func parseEntry(header, newick string) (Tree, error) {
	if strings.TrimSpace(newick) == "" {
		return Tree{}, errors.New(errors.ErrCodeParse,
			"tree entry %q has no newick body", header)
	}

	t := Tree{}
	fields := strings.Split(header, ",")
	t.Label = strings.TrimSpace(fields[0])
	if len(fields) > 1 {
		t.Outgroup = strings.TrimSpace(fields[1])
	}
	if len(fields) > 2 && strings.TrimSpace(fields[2]) != "" {
		c, err := styles.ParseColor(strings.TrimSpace(fields[2]))
		if err != nil {
			return Tree{}, errors.New(errors.ErrCodeParse,
				"tree entry %q: %v", t.Label, errors.UserMessage(err))
		}
		t.Color = c
		t.HasColor = true
	}

	root, err := ParseNewick(newick)
	if err != nil {
		return Tree{}, err
	}
	if t.Outgroup != "" && !root.contains(t.Outgroup) {
		return Tree{}, errors.New(errors.ErrCodeReference,
			"tree entry %q: outgroup %s not in tree", t.Label, t.Outgroup)
	}
	t.Root = orderByOutgroup(root, t.Outgroup)
	return t, nil
}

// orderByOutgroup moves the clade containing the outgroup to the end of the
// root's children so the outgroup renders on the panel's far side. The tree
// is not re-rooted.
func orderByOutgroup(root *Node, outgroup string) *Node {
	if outgroup == "" || root.IsLeaf() {
		return root
	}
	for i, c := range root.Children {
		if c.contains(outgroup) {
			reordered := append([]*Node{}, root.Children[:i]...)
			reordered = append(reordered, root.Children[i+1:]...)
			root.Children = append(reordered, c)
			break
		}
	}
	return root
}
