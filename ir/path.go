package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path is a parsed node path such as $.a[0].b, $.items[*] or $..name.
type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Subtree  bool
	Next     *Path
}

// PathField returns the path of field f of the node at prefix.
func PathField(prefix, f string) string {
	if prefix == "" {
		prefix = "$"
	}
	return prefix + "." + pathString(f)
}

// PathIndex returns the path of element i of the node at prefix.
func PathIndex(prefix string, i int) string {
	if prefix == "" {
		prefix = "$"
	}
	return prefix + "[" + strconv.Itoa(i) + "]"
}

func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]") == -1 {
		return f
	}
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Subtree:
			buf.WriteString("..")
		case x.IndexAll:
			buf.WriteString("[*]")
		case x.Field != nil:
			if !bytes.HasSuffix(buf.Bytes(), []byte("..")) {
				buf.WriteByte('.')
			}
			buf.WriteString(pathString(*x.Field))
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

// ParsePath parses p, which must start with '$'.
func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("path %q should start with '$'", p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("path %q: %w", p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	var rest string
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			parent.Subtree = true
			rest = frag[2:]
			if len(rest) > 0 && rest[0] != '[' {
				rest = "." + rest
			}
			break
		}
		field, r, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		rest = r
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		rest = frag[i+2:]
	default:
		return fmt.Errorf("expected '.' or '['")
	}
	if len(rest) == 0 {
		return nil
	}
	next := &Path{}
	if err := parseFrag(rest, next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

func parseIndex(is string) (index int, all bool, err error) {
	if is == "*" {
		return 0, true, nil
	}
	u, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, false, err
	}
	return int(u), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		if i == 0 {
			return "", "", fmt.Errorf("expected field before %q", frag[0])
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case c == '\\' && !escaped:
			escaped = true
		case c == '\'' && !escaped:
			return string(res), frag[i+1:], nil
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// GetPath returns the node at path, or nil if a field on the path is
// missing. Wildcards are not allowed.
func (y *Node) GetPath(path string) (*Node, error) {
	yp, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	for x := yp; x != nil; x = x.Next {
		switch {
		case x.IndexAll:
			return nil, fmt.Errorf("any index in get")
		case x.Subtree:
			return nil, fmt.Errorf("recurse .. in get")
		}
	}
	res := y
	for ; yp != nil; yp = yp.Next {
		switch {
		case yp.Index != nil:
			if res.typ != ArrayType {
				return nil, fmt.Errorf("expected array, got %s", res.typ)
			}
			index := *yp.Index
			if index >= len(res.values) {
				return nil, fmt.Errorf("index out of bounds %d (len %d)", index, len(res.values))
			}
			res = res.values[index]
		case yp.Field != nil:
			if res.typ != ObjectType {
				return nil, fmt.Errorf("expected object, got %s", res.typ)
			}
			next, ok := res.Get(*yp.Field)
			if !ok {
				return nil, nil
			}
			res = next
		}
	}
	return res, nil
}

// ListPath appends to dst every node matching path.
func (y *Node) ListPath(dst []*Node, path string) ([]*Node, error) {
	yp, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return y.listPath(dst, yp), nil
}

func (y *Node) listPath(dst []*Node, yp *Path) []*Node {
	if yp == nil {
		return append(dst, y)
	}
	if yp.Subtree {
		_ = y.Visit(func(node *Node, isPost bool) (bool, error) {
			if isPost {
				return false, nil
			}
			dst = node.listPath(dst, yp.Next)
			return !node.typ.IsLeaf(), nil
		})
		return dst
	}
	switch y.typ {
	case ObjectType:
		if yp.IndexAll || yp.Index != nil {
			return dst
		}
		if yp.Field == nil {
			return y.listPath(dst, yp.Next)
		}
		if v, ok := y.Get(*yp.Field); ok {
			dst = v.listPath(dst, yp.Next)
		}
		return dst

	case ArrayType:
		switch {
		case yp.Field != nil:
			return dst
		case yp.Index != nil:
			if idx := *yp.Index; idx < len(y.values) {
				dst = y.values[idx].listPath(dst, yp.Next)
			}
			return dst
		case yp.IndexAll:
			for _, yv := range y.values {
				dst = yv.listPath(dst, yp.Next)
			}
			return dst
		default:
			return y.listPath(dst, yp.Next)
		}

	default:
		if yp.Field != nil || yp.Index != nil || yp.IndexAll {
			return dst
		}
		return y.listPath(dst, yp.Next)
	}
}
