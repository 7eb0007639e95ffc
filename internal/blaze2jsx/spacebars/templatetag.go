// Package spacebars holds the control directives a Spacebars template parser
// leaves in the htmljs tree: `{{x}}`, `{{{x}}}`, `{{> x}}` and `{{#x}}...{{/x}}`.
package spacebars

import "strings"

type Type string

const (
	Escape    Type = "ESCAPE"
	Double    Type = "DOUBLE"
	Triple    Type = "TRIPLE"
	Inclusion Type = "INCLUSION"
	BlockOpen Type = "BLOCKOPEN"
)

// TemplateTag is a parsed directive. Value is set for Escape only. Content and
// ElseContent are child sequences (or nil) and are only set for BlockOpen.
type TemplateTag struct {
	Type        Type
	Value       string
	Path        Path
	Args        []Arg
	Content     any
	ElseContent any
}

func NewEscape(value string) *TemplateTag {
	return &TemplateTag{Type: Escape, Value: value}
}

func NewDouble(path Path, args ...Arg) *TemplateTag {
	return &TemplateTag{Type: Double, Path: path, Args: args}
}

func NewTriple(path Path, args ...Arg) *TemplateTag {
	return &TemplateTag{Type: Triple, Path: path, Args: args}
}

func NewInclusion(path Path, args ...Arg) *TemplateTag {
	return &TemplateTag{Type: Inclusion, Path: path, Args: args}
}

func NewBlock(path Path, args []Arg, content, elseContent any) *TemplateTag {
	return &TemplateTag{Type: BlockOpen, Path: path, Args: args, Content: content, ElseContent: elseContent}
}

// Path is a reference chain. The segments "." and ".." navigate the data
// context rather than naming a member.
type Path []string

// ParsePath splits a dotted reference. Leading "./" and "../" (repeatable)
// become "." and ".." segments; "." and ".." alone are single segments.
func ParsePath(s string) Path {
	var p Path
	for {
		if s == "." || s == ".." {
			return append(p, s)
		}
		if rest, ok := strings.CutPrefix(s, "../"); ok {
			p, s = append(p, ".."), rest
		} else if rest, ok := strings.CutPrefix(s, "./"); ok {
			p, s = append(p, "."), rest
		} else {
			break
		}
	}
	if s == "" {
		return p
	}
	return append(p, strings.Split(s, ".")...)
}

// Members drops the context-navigation segments.
func (p Path) Members() []string {
	out := make([]string, 0, len(p))
	for _, seg := range p {
		if seg == "." || seg == ".." {
			continue
		}
		out = append(out, seg)
	}
	return out
}

func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p {
		switch {
		case seg == "." || seg == "..":
			b.WriteString(seg)
			if i < len(p)-1 {
				b.WriteByte('/')
			}
		default:
			b.WriteString(seg)
			if i < len(p)-1 {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// Head is the first segment, or "" for an empty path.
func (p Path) Head() string {
	if len(p) == 0 {
		return ""
	}
	return p[0]
}
