package fsutil

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultReservedNameFormat wraps a reserved device name or a name made
	// only of dots.
	DefaultReservedNameFormat = "_%s_"

	// DefaultReservedCharFormat replaces a character that may not appear in
	// a file name. It receives the character's code point.
	DefaultReservedCharFormat = "_x%x_"
)

// Device names Windows reserves regardless of extension or case.
var reservedNames = []string{
	"con", "prn", "aux", "nul",
	"com0", "com1", "com2", "com3", "com4", "com5", "com6", "com7", "com8", "com9",
	"lpt0", "lpt1", "lpt2", "lpt3", "lpt4", "lpt5", "lpt6", "lpt7", "lpt8", "lpt9",
}

// InvalidFileNameChars returns the characters a file name may not contain:
// the ASCII control characters and <>:"/\|?*. The set is the same on every
// platform so that names produced on one system are valid on all of them.
func InvalidFileNameChars() []rune {
	chars := make([]rune, 0, 41)
	for r := rune(0); r < 0x20; r++ {
		chars = append(chars, r)
	}
	return append(chars, '<', '>', ':', '"', '/', '\\', '|', '?', '*')
}

// SanitizeOption configures a Sanitizer.
type SanitizeOption func(*Sanitizer)

// WithReservedNameFormat sets the fmt template applied to a reserved name.
// It receives the original name as its only argument, so it should contain
// exactly one verb such as %s. A template without a verb yields fmt's
// "%!(EXTRA string=...)" output; the template is not validated.
func WithReservedNameFormat(format string) SanitizeOption {
	return func(s *Sanitizer) {
		s.nameFormat = format
	}
}

// WithReservedCharFormat sets the fmt template that replaces an invalid
// character. It receives the character as a rune, so it should contain
// exactly one verb such as %x or %c. A template without a verb yields fmt's
// "%!(EXTRA int32=...)" output; the template is not validated.
func WithReservedCharFormat(format string) SanitizeOption {
	return func(s *Sanitizer) {
		s.charFormat = format
	}
}

// WithReservedNames replaces the reserved names. Matching ignores case.
func WithReservedNames(names ...string) SanitizeOption {
	return func(s *Sanitizer) {
		s.names = make(map[string]struct{}, len(names))
		for _, n := range names {
			s.names[strings.ToLower(n)] = struct{}{}
		}
	}
}

// WithInvalidChars replaces the set of characters that are escaped.
func WithInvalidChars(chars ...rune) SanitizeOption {
	return func(s *Sanitizer) {
		s.chars = make(map[rune]struct{}, len(chars))
		for _, r := range chars {
			s.chars[r] = struct{}{}
		}
	}
}

// Sanitizer turns arbitrary text into a usable file name. It is immutable
// after construction and safe for concurrent use.
type Sanitizer struct {
	nameFormat string
	charFormat string
	names      map[string]struct{}
	chars      map[rune]struct{}
}

// NewSanitizer returns a Sanitizer using the default templates, reserved
// names, and invalid characters unless overridden by opts.
func NewSanitizer(opts ...SanitizeOption) *Sanitizer {
	s := &Sanitizer{
		nameFormat: DefaultReservedNameFormat,
		charFormat: DefaultReservedCharFormat,
	}
	WithReservedNames(reservedNames...)(s)
	WithInvalidChars(InvalidFileNameChars()...)(s)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sanitize returns name unchanged if it is already a valid file name.
//
// A reserved device name, an empty string, or a name made only of dots is
// wrapped whole with the reserved name template, so "con" becomes "_con_".
// Otherwise every invalid character is replaced with the reserved character
// template, so "a:b" becomes "a_x3a_b".
func (s *Sanitizer) Sanitize(name string) string {
	if s.isReserved(name) {
		return fmt.Sprintf(s.nameFormat, name)
	}

	var b strings.Builder
	replaced := false
	for i := 0; i < len(name); {
		r, size := utf8.DecodeRuneInString(name[i:])
		if _, bad := s.chars[r]; bad && (r != utf8.RuneError || size > 1) {
			if !replaced {
				b.Grow(len(name) + 8)
				b.WriteString(name[:i])
				replaced = true
			}
			fmt.Fprintf(&b, s.charFormat, r)
		} else if replaced {
			b.WriteString(name[i : i+size])
		}
		i += size
	}
	if !replaced {
		return name
	}
	return b.String()
}

func (s *Sanitizer) isReserved(name string) bool {
	if strings.Trim(name, ".") == "" {
		return true
	}
	_, ok := s.names[strings.ToLower(name)]
	return ok
}

var defaultSanitizer = NewSanitizer()

// ToValidFileName sanitizes name with the default Sanitizer, or with a new
// one built from opts.
func ToValidFileName(name string, opts ...SanitizeOption) string {
	if len(opts) == 0 {
		return defaultSanitizer.Sanitize(name)
	}
	return NewSanitizer(opts...).Sanitize(name)
}
