package urlx

import (
	"strings"
)

// Path is a normalized sequence of URL path segments.
//
// A Path never has leading or trailing separators, empty segments or "." segments.
// It is comparable with == and safe to copy. The zero value is an empty path.
type Path struct {
	p string
}

// NewPath joins elems with "/" and normalizes the result.
//
//	urlx.NewPath("/api/", "user")   // api/user
//	urlx.NewPath(`\home\`, "items") // home/items
func NewPath(elems ...string) Path {
	return Path{NormalizePath(strings.Join(elems, "/"))}
}

// NormalizePath strips leading and trailing separators ('/' and '\')
// and drops empty and "." segments. It is idempotent.
func NormalizePath(s string) string {
	for {
		n := normalizePathOnce(s)
		if n == s {
			return n
		}
		s = n
	}
}

func isPathSep(r rune) bool { return r == '/' || r == '\\' }

func normalizePathOnce(s string) string {
	s = strings.TrimFunc(s, isPathSep)
	if !strings.Contains(s, "//") && s != "." &&
		!strings.HasPrefix(s, "./") && !strings.HasSuffix(s, "/.") && !strings.Contains(s, "/./") {
		return s
	}

	segs := strings.Split(s, "/")
	kept := segs[:0]
	for _, seg := range segs {
		if seg == "" || seg == "." {
			continue
		}
		kept = append(kept, seg)
	}
	return strings.TrimFunc(strings.Join(kept, "/"), isPathSep)
}

// String returns the slash-joined segments.
func (p Path) String() string { return p.p }

// IsZero reports whether the path has no segments.
func (p Path) IsZero() bool { return p.p == "" }

// Len returns the number of segments.
func (p Path) Len() int {
	if p.p == "" {
		return 0
	}
	return strings.Count(p.p, "/") + 1
}

// Segments returns a fresh slice of the path segments.
func (p Path) Segments() []string {
	if p.p == "" {
		return nil
	}
	return strings.Split(p.p, "/")
}

// Join returns a new path with elems appended as trailing segments.
func (p Path) Join(elems ...string) Path {
	if len(elems) == 0 {
		return p
	}
	return NewPath(append([]string{p.p}, elems...)...)
}

// Base returns the last segment, or an empty string for an empty path.
func (p Path) Base() string {
	if i := strings.LastIndexByte(p.p, '/'); i >= 0 {
		return p.p[i+1:]
	}
	return p.p
}

// Parent returns the path without its last segment.
func (p Path) Parent() Path {
	if i := strings.LastIndexByte(p.p, '/'); i >= 0 {
		return Path{p.p[:i]}
	}
	return Path{}
}

// Equal reports whether the path equals val, accepting Path and *Path.
func (p Path) Equal(val any) bool {
	switch v := val.(type) {
	case Path:
		return p == v
	case *Path:
		return v != nil && p == *v
	default:
		return false
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.p), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// The text is normalized the same way as by [NewPath].
func (p *Path) UnmarshalText(text []byte) error {
	*p = NewPath(string(text))
	return nil
}
