package template

import (
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

const indentSize = 2

type lineKind int

const (
	kindScalar lineKind = iota
	kindRaw
	kindHeader
	kindBlock
)

// Line is one structured template record. Item lines carry the "- " list marker.
type Line struct {
	Level int
	Key   string
	Value string
	Item  bool
	kind  lineKind
}

// Builder accumulates template lines and renders them at the end.
type Builder struct {
	lines []Line
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Lines() []Line {
	return b.lines
}

// Scalar appends "key: value", quoting value when it would not read back verbatim.
func (b *Builder) Scalar(level int, key, value string) *Builder {
	if strings.Contains(value, "\n") {
		return b.Block(level, key, value)
	}
	b.lines = append(b.lines, Line{Level: level, Key: key, Value: value, kind: kindScalar})
	return b
}

// Raw appends "key: value" without quoting.
func (b *Builder) Raw(level int, key, value string) *Builder {
	b.lines = append(b.lines, Line{Level: level, Key: key, Value: value, kind: kindRaw})
	return b
}

func (b *Builder) Header(level int, key string) *Builder {
	b.lines = append(b.lines, Line{Level: level, Key: key, kind: kindHeader})
	return b
}

// Item appends the first key of a new list entry.
func (b *Builder) Item(level int, key, value string) *Builder {
	b.lines = append(b.lines, Line{Level: level, Key: key, Value: value, Item: true, kind: kindScalar})
	return b
}

// Block appends a literal block scalar whose lines sit one level deeper than the key.
func (b *Builder) Block(level int, key, text string) *Builder {
	b.lines = append(b.lines, Line{Level: level, Key: key, Value: text, kind: kindBlock})
	return b
}

func (b *Builder) Render() []string {
	out := make([]string, 0, len(b.lines))
	for _, l := range b.lines {
		out = append(out, l.render()...)
	}
	return out
}

// Bytes renders the template as newline-terminated lines.
func (b *Builder) Bytes() []byte {
	var sb strings.Builder
	for _, line := range b.Render() {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}

func (l Line) render() []string {
	key := l.Key
	if l.Item {
		key = "- " + key
	}
	prefix := strings.Repeat(" ", l.Level*indentSize) + key + ":"

	switch l.kind {
	case kindHeader:
		return []string{prefix}
	case kindRaw:
		return []string{prefix + " " + l.Value}
	case kindBlock:
		return l.renderBlock(prefix)
	default:
		if l.Value == "" {
			return []string{prefix}
		}
		return []string{prefix + " " + scalar(l.Value)}
	}
}

// renderBlock writes text as a literal block scalar. The chomping indicator
// follows the trailing newlines: "-" for none, clip for one, "+" for more.
// Text a literal block cannot carry verbatim is double-quoted instead.
func (l Line) renderBlock(prefix string) []string {
	if !literalSafe(l.Value) {
		return []string{prefix + " " + strconv.Quote(l.Value)}
	}

	body := strings.TrimRight(l.Value, "\n")
	chomp := "-"
	switch trailing := len(l.Value) - len(body); {
	case trailing == 1:
		chomp = ""
	case trailing > 1:
		chomp = "+"
		body = strings.TrimSuffix(l.Value, "\n")
	}

	text := strings.Split(body, "\n")
	indentation := ""
	for _, t := range text {
		if t == "" {
			continue
		}
		if strings.HasPrefix(t, " ") {
			indentation = strconv.Itoa(indentSize)
		}
		break
	}

	// Item keys open a mapping whose body sits one level deeper.
	bodyLevel := l.Level + 1
	if l.Item {
		bodyLevel++
	}
	indent := strings.Repeat(" ", bodyLevel*indentSize)

	out := make([]string, 0, len(text)+1)
	out = append(out, prefix+" |"+indentation+chomp)
	for _, t := range text {
		if t == "" {
			out = append(out, "")
			continue
		}
		out = append(out, indent+t)
	}
	return out
}

// literalSafe reports whether text reads back unchanged from a literal block:
// it needs some content, printable characters only, and no whitespace-only
// lines, which block indentation would swallow.
func literalSafe(text string) bool {
	if strings.Trim(text, "\n") == "" {
		return false
	}
	for _, r := range text {
		if r != '\n' && !unicode.IsPrint(r) {
			return false
		}
	}
	for _, t := range strings.Split(text, "\n") {
		if t != "" && strings.TrimSpace(t) == "" {
			return false
		}
	}
	return true
}

// scalar returns value unchanged when it reads back as the same plain string,
// and double-quoted otherwise.
func scalar(value string) string {
	var probe map[string]interface{}
	if err := yaml.Unmarshal([]byte("k: "+value), &probe); err == nil {
		if s, ok := probe["k"].(string); ok && s == value {
			return value
		}
	}
	return strconv.Quote(value)
}
