// Package pathpattern implements slash-delimited path templates made of literal and wildcard segments.
//
// A template such as "/user/:id/list" is split into segments on runs of slashes, ignoring leading and trailing ones.
// A segment beginning with ':' is a wildcard matching any single path segment and binding it to the name following the colon,
// any other segment is a literal matched verbatim. The empty template, or one consisting only of slashes, denotes the root path.
package pathpattern

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is wrapped by all errors returned for calls whose arguments don't satisfy the pattern,
// such as parsing a non-matching path or generating a path with a missing binding.
var ErrInvalidArgument = errors.New("invalid argument")

// SegmentKind defines the type of a single [Segment].
type SegmentKind int

const (
	SegmentLiteral SegmentKind = iota
	SegmentWildcard
)

func (k SegmentKind) String() string {
	switch k {
	case SegmentLiteral:
		return "literal"
	case SegmentWildcard:
		return "wildcard"
	default:
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
}

// Segment matches a single path segment.
// Value is the literal text for literal segments, and the binding name for wildcards.
type Segment struct {
	Kind  SegmentKind
	Value string
}

// Literal returns a segment matching exactly the specified text.
func Literal(text string) Segment {
	return Segment{Kind: SegmentLiteral, Value: text}
}

// Wildcard returns a segment matching any value and binding it to the specified name.
func Wildcard(name string) Segment {
	return Segment{Kind: SegmentWildcard, Value: name}
}

// Matches reports whether the segment matches the concrete path segment value.
func (s Segment) Matches(value string) bool {
	if s.Kind == SegmentWildcard {
		return true
	}

	return s.Value == value
}

func (s Segment) String() string {
	if s.Kind == SegmentWildcard {
		return ":" + s.Value
	}

	return s.Value
}

// Pattern is a parsed path template. It is immutable and safe for concurrent use.
type Pattern struct {
	tmpl     string
	segments []Segment
}

// New parses a path template into a [Pattern].
// The only template rejected is one containing a wildcard without a name, i.e. a lone ':' segment.
func New(tmpl string) (*Pattern, error) {
	parts := Split(tmpl)
	segments := make([]Segment, len(parts))

	for i, part := range parts {
		if !strings.HasPrefix(part, ":") {
			segments[i] = Literal(part)
			continue
		}

		if len(part) == 1 {
			return nil, fmt.Errorf("%w: wildcard segment %d of template %q has no name", ErrInvalidArgument, i, tmpl)
		}

		segments[i] = Wildcard(part[1:])
	}

	return &Pattern{tmpl: tmpl, segments: segments}, nil
}

// MustNew is like [New] but panics if the template is invalid.
// It simplifies the initialization of static route tables.
func MustNew(tmpl string) *Pattern {
	p, err := New(tmpl)
	if err != nil {
		panic("pathpattern: " + err.Error())
	}

	return p
}

// Split splits a path into its segments, ignoring leading, trailing, and repeated slashes.
// The root path is represented by a single empty segment.
func Split(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return []string{""}
	}

	segments := make([]string, 0, strings.Count(path, "/")+1)

	for path != "" {
		slash := strings.IndexByte(path, '/')
		if slash == -1 {
			segments = append(segments, path)
			break
		}

		segments = append(segments, path[:slash])
		path = strings.TrimLeft(path[slash:], "/")
	}

	return segments
}

// Template returns the template the pattern was parsed from.
func (p *Pattern) Template() string {
	return p.tmpl
}

// Len returns the number of segments in the pattern. The root pattern consists of a single empty literal.
func (p *Pattern) Len() int {
	return len(p.segments)
}

// Segments returns a copy of the pattern's segments.
func (p *Pattern) Segments() []Segment {
	return append([]Segment(nil), p.segments...)
}

// WildcardNames returns the binding names of the pattern's wildcards in order of appearance.
func (p *Pattern) WildcardNames() []string {
	var names []string

	for _, s := range p.segments {
		if s.Kind == SegmentWildcard {
			names = append(names, s.Value)
		}
	}

	return names
}

// Matches reports whether the whole path matches the pattern. No prefix matching is performed.
func (p *Pattern) Matches(path string) bool {
	return p.MatchesSegments(Split(path))
}

// MatchesSegments is like [Pattern.Matches] but accepts an already split path.
func (p *Pattern) MatchesSegments(path []string) bool {
	if len(path) != len(p.segments) {
		return false
	}

	for i, s := range p.segments {
		if !s.Matches(path[i]) {
			return false
		}
	}

	return true
}

// MatchSegment reports whether the segment at the specified position matches the value.
func (p *Pattern) MatchSegment(value string, position int) (bool, error) {
	if position < 0 || position >= len(p.segments) {
		return false, fmt.Errorf("%w: position %d out of range for pattern %s with %d segments", ErrInvalidArgument, position, p, len(p.segments))
	}

	return p.segments[position].Matches(value), nil
}

// Parse extracts the wildcard bindings from a path matching the pattern.
func (p *Pattern) Parse(path string) (map[string]string, error) {
	return p.ParseSegments(Split(path))
}

// ParseSegments is like [Pattern.Parse] but accepts an already split path.
func (p *Pattern) ParseSegments(path []string) (map[string]string, error) {
	if !p.MatchesSegments(path) {
		return nil, fmt.Errorf("%w: path /%s does not match pattern %s", ErrInvalidArgument, strings.Join(path, "/"), p)
	}

	bindings := make(map[string]string)

	for i, s := range p.segments {
		if s.Kind == SegmentWildcard {
			bindings[s.Value] = path[i]
		}
	}

	return bindings, nil
}

// Generate builds a path with a leading slash from the pattern, substituting wildcards with the specified bindings.
// Every bound value must be a single non-empty segment, without any slashes, so that the generated path
// parses back into the same bindings. Bindings not used by the pattern are ignored.
func (p *Pattern) Generate(bindings map[string]string) (string, error) {
	path, err := p.GenerateRelative(bindings)
	if err != nil {
		return "", err
	}

	return "/" + path, nil
}

// GenerateRelative is like [Pattern.Generate] but omits the leading slash.
func (p *Pattern) GenerateRelative(bindings map[string]string) (string, error) {
	segments, err := p.GenerateSegments(bindings)
	if err != nil {
		return "", err
	}

	return strings.Join(segments, "/"), nil
}

// GenerateSegments returns the segments of the path generated by [Pattern.Generate].
func (p *Pattern) GenerateSegments(bindings map[string]string) ([]string, error) {
	segments := make([]string, len(p.segments))

	for i, s := range p.segments {
		if s.Kind == SegmentLiteral {
			segments[i] = s.Value
			continue
		}

		value, ok := bindings[s.Value]
		if !ok {
			return nil, fmt.Errorf("%w: missing parameter %q", ErrInvalidArgument, s.Value)
		} else if value == "" || strings.Contains(value, "/") {
			return nil, fmt.Errorf("%w: value %q of parameter %q is not a single non-empty path segment", ErrInvalidArgument, value, s.Value)
		}

		segments[i] = value
	}

	return segments, nil
}

// String returns the canonical form of the pattern, which always starts with a single slash
// and contains no repeated or trailing slashes.
func (p *Pattern) String() string {
	var b strings.Builder

	for _, s := range p.segments {
		b.WriteByte('/')
		b.WriteString(s.String())
	}

	if b.Len() == 0 {
		return "/"
	}

	return b.String()
}
