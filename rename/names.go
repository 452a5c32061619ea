package rename

import (
	"regexp"
	"strings"
)

type (
	// Transformer maps an old file name to a new one.
	Transformer interface {
		// Done reports whether name needs no transformation at all.
		Done(name string) bool
		Transform(name string) string
	}

	// ExtAppender appends Ext to every name not already ending with it.
	ExtAppender struct {
		Ext string
	}

	// Normalizer renames files to their snake case form.
	Normalizer struct{}
)

var (
	camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	separators    = regexp.MustCompile(`[- .]`)
	underscores   = regexp.MustCompile(`__+`)
)

// SplitExt splits name at its last dot. The extension keeps its leading dot.
// Leading dots are not extension separators, so ".bashrc" has no extension.
func SplitExt(name string) (root, ext string) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return name, ""
	}

	if strings.Trim(name[:i], ".") == "" {
		return name, ""
	}

	return name[:i], name[i:]
}

// HasExt reports whether name ends with "."+ext, ignoring ASCII case.
func HasExt(name, ext string) bool {
	suffix := "." + ext

	return len(name) >= len(suffix) && strings.EqualFold(name[len(name)-len(suffix):], suffix)
}

// AppendExt replaces the extension of name, if any, with ext.
// "data.txt" becomes "data.ipynb": the old extension is dropped, not kept.
func AppendExt(name, ext string) string {
	root, _ := SplitExt(name)

	return root + "." + ext
}

// SnakeCase canonicalizes s into lowercase words joined by single underscores.
func SnakeCase(s string) string {
	s = camelBoundary.ReplaceAllString(s, "${1}_${2}")
	s = separators.ReplaceAllString(s, "_")
	s = lowerASCII(s)
	s = underscores.ReplaceAllString(s, "_")

	return strings.Trim(s, "_")
}

// Normalize returns the snake case form of a file name.
// The stem is canonicalized with [SnakeCase], the extension is only lowercased,
// and a leading dot of the original name is kept.
func Normalize(name string) string {
	stem, ext := SplitExt(name)

	var out string

	if ext == "" {
		out = SnakeCase(name)
	} else {
		out = SnakeCase(stem) + "." + lowerASCII(strings.TrimPrefix(ext, "."))
	}

	if strings.HasPrefix(name, ".") && !strings.HasPrefix(out, ".") {
		out = "." + out
	}

	return out
}

func lowerASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}

		return r
	}, s)
}

func (a ExtAppender) Done(name string) bool {
	return HasExt(name, a.Ext)
}

func (a ExtAppender) Transform(name string) string {
	return AppendExt(name, a.Ext)
}

func (Normalizer) Done(string) bool {
	return false
}

func (Normalizer) Transform(name string) string {
	return Normalize(name)
}
