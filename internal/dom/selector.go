package dom

import (
	"fmt"
	"strings"
)

// Selector matches elements.
type Selector interface {
	Match(*Element) bool
}

// SelectorFunc adapts a predicate to Selector.
type SelectorFunc func(*Element) bool

// Match implements Selector.
func (f SelectorFunc) Match(e *Element) bool { return e != nil && f(e) }

// Compile parses a comma separated list of compound selectors. Each compound
// is an optional tag name or *, followed by any number of #id, .class,
// [attr] and [attr=value] parts. Combinators are not supported.
func Compile(src string) (Selector, error) {
	parts, err := splitSelectorList(src)
	if err != nil {
		return nil, err
	}
	list := make(selectorList, 0, len(parts))
	for _, part := range parts {
		c, err := parseCompound(part)
		if err != nil {
			return nil, fmt.Errorf("selector %q: %w", src, err)
		}
		list = append(list, c)
	}
	return list, nil
}

// MustCompile is like Compile but panics on error. Use it for selectors that
// are constants in the source.
func MustCompile(src string) Selector {
	sel, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return sel
}

type selectorList []compound

func (l selectorList) Match(e *Element) bool {
	if e == nil {
		return false
	}
	for _, c := range l {
		if c.match(e) {
			return true
		}
	}
	return false
}

type attrTest struct {
	name     string
	value    string
	hasValue bool
}

type compound struct {
	tag     string
	id      string
	classes []string
	attrs   []attrTest
}

func (c compound) match(e *Element) bool {
	if c.tag != "" && c.tag != "*" && e.Tag != c.tag {
		return false
	}
	if c.id != "" && e.ID() != c.id {
		return false
	}
	for _, cls := range c.classes {
		if !e.HasClass(cls) {
			return false
		}
	}
	for _, a := range c.attrs {
		v, ok := e.Attr(a.name)
		if !ok || (a.hasValue && v != a.value) {
			return false
		}
	}
	return true
}

func splitSelectorList(src string) ([]string, error) {
	var (
		parts []string
		start int
		depth int
		quote rune
	)
	for i, r := range src {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '[':
			depth++
		case r == ']':
			depth--
		case r == ',' && depth == 0:
			parts = append(parts, strings.TrimSpace(src[start:i]))
			start = i + 1
		}
	}
	if quote != 0 || depth != 0 {
		return nil, fmt.Errorf("selector %q: unbalanced brackets or quotes", src)
	}
	parts = append(parts, strings.TrimSpace(src[start:]))
	for _, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("selector %q: empty compound", src)
		}
	}
	return parts, nil
}

func parseCompound(src string) (compound, error) {
	var c compound
	i := 0
	readIdent := func() string {
		start := i
		for i < len(src) && isIdentByte(src[i]) {
			i++
		}
		return src[start:i]
	}
	if i < len(src) && (src[i] == '*' || isIdentByte(src[i])) {
		if src[i] == '*' {
			c.tag = "*"
			i++
		} else {
			c.tag = strings.ToLower(readIdent())
		}
	}
	for i < len(src) {
		switch src[i] {
		case '#':
			i++
			if c.id = readIdent(); c.id == "" {
				return c, fmt.Errorf("empty id at offset %d", i)
			}
		case '.':
			i++
			cls := readIdent()
			if cls == "" {
				return c, fmt.Errorf("empty class at offset %d", i)
			}
			c.classes = append(c.classes, cls)
		case '[':
			end := strings.IndexByte(src[i:], ']')
			if end < 0 {
				return c, fmt.Errorf("unterminated attribute at offset %d", i)
			}
			a, err := parseAttrTest(src[i+1 : i+end])
			if err != nil {
				return c, err
			}
			c.attrs = append(c.attrs, a)
			i += end + 1
		default:
			return c, fmt.Errorf("unexpected %q at offset %d", src[i], i)
		}
	}
	return c, nil
}

func parseAttrTest(body string) (attrTest, error) {
	name, value, found := strings.Cut(body, "=")
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return attrTest{}, fmt.Errorf("empty attribute name in [%s]", body)
	}
	if !found {
		return attrTest{name: name}, nil
	}
	value = strings.TrimSpace(value)
	if n := len(value); n >= 2 && (value[0] == '"' || value[0] == '\'') && value[n-1] == value[0] {
		value = value[1 : n-1]
	}
	return attrTest{name: name, value: value, hasValue: true}, nil
}

func isIdentByte(b byte) bool {
	return b == '-' || b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
