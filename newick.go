package diversity

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseNewick parses a single Newick tree description, e.g.
//
//	((a:0.5,b:0.5):1,(c:1,d:1):0.5):0;
//
// Names may be single-quoted to include reserved characters. A node without
// an explicit branch length gets Length = NaN, which validation later
// rejects on non-root nodes; the trailing semicolon is optional.
func ParseNewick(s string) (*TreeNode, error) {
	p := &newickParser{src: s}
	p.skipSpace()
	root, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.peek() == ';' {
		p.pos++
		p.skipSpace()
	}
	if p.pos != len(p.src) {
		return nil, p.errorf("unexpected trailing characters")
	}
	return root, nil
}

type newickParser struct {
	src string
	pos int
}

func (p *newickParser) errorf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: newick: %s at offset %d", ErrInvalidInput, msg, p.pos)
}

func (p *newickParser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *newickParser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *newickParser) parseNode() (*TreeNode, error) {
	node := &TreeNode{Length: math.NaN()}

	if p.peek() == '(' {
		p.pos++
		for {
			child, err := p.parseNode()
			if err != nil {
				return nil, err
			}
			child.Parent = node
			node.Children = append(node.Children, child)

			p.skipSpace()
			c := p.peek()
			if c == ',' {
				p.pos++
				continue
			}
			if c == ')' {
				p.pos++
				break
			}
			return nil, p.errorf("expected ',' or ')'")
		}
	}

	name, err := p.parseLabel()
	if err != nil {
		return nil, err
	}
	node.Name = name

	p.skipSpace()
	if p.peek() == ':' {
		p.pos++
		length, err := p.parseLength()
		if err != nil {
			return nil, err
		}
		node.Length = length
	}
	return node, nil
}

func (p *newickParser) parseLabel() (string, error) {
	p.skipSpace()
	if p.peek() == '\'' {
		p.pos++
		start := p.pos
		end := strings.IndexByte(p.src[start:], '\'')
		if end < 0 {
			return "", p.errorf("unterminated quoted name")
		}
		p.pos = start + end + 1
		return p.src[start : start+end], nil
	}

	start := p.pos
	for p.pos < len(p.src) && !strings.ContainsRune("():,; \t\n\r", rune(p.src[p.pos])) {
		p.pos++
	}
	return p.src[start:p.pos], nil
}

func (p *newickParser) parseLength() (float64, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) && !strings.ContainsRune("():,; \t\n\r", rune(p.src[p.pos])) {
		p.pos++
	}
	if start == p.pos {
		return 0, p.errorf("expected branch length after ':'")
	}
	length, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		return 0, p.errorf("invalid branch length %q", p.src[start:p.pos])
	}
	return length, nil
}
