package fsutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestToValidFileName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "valid", input: "abc", want: "abc"},
		{name: "valid with extension", input: "report.pdf", want: "report.pdf"},
		{name: "reserved", input: "con", want: "_con_"},
		{name: "reserved upper case", input: "LPT1", want: "_LPT1_"},
		{name: "reserved with extension", input: "con.txt", want: "con.txt"},
		{name: "dots", input: "...", want: "_..._"},
		{name: "single dot", input: ".", want: "_._"},
		{name: "empty", input: "", want: "__"},
		{name: "colon", input: "a:b", want: "a_x3a_b"},
		{name: "separators", input: `a/b\c`, want: "a_x2f_b_x5c_c"},
		{name: "control character", input: "tab\there", want: "tab_x9_here"},
		{name: "several", input: `what?*"`, want: "what_x3f__x2a__x22_"},
		{name: "unicode", input: "résumé:v2", want: "résumé_x3a_v2"},
		{name: "leading dot", input: ".gitignore", want: ".gitignore"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToValidFileName(tt.input))
		})
	}
}

func TestSanitizer_Options(t *testing.T) {
	t.Run("custom templates", func(t *testing.T) {
		s := NewSanitizer(
			WithReservedNameFormat("[%s]"),
			WithReservedCharFormat("%%%02X"),
		)
		assert.Equal(t, "[aux]", s.Sanitize("aux"))
		assert.Equal(t, "a%3Ab", s.Sanitize("a:b"))
	})

	t.Run("custom reserved names", func(t *testing.T) {
		s := NewSanitizer(WithReservedNames("Index"))
		assert.Equal(t, "_index_", s.Sanitize("index"))
		assert.Equal(t, "con", s.Sanitize("con"))
	})

	t.Run("custom invalid characters", func(t *testing.T) {
		s := NewSanitizer(WithInvalidChars(' '))
		assert.Equal(t, "a_x20_b:c", s.Sanitize("a b:c"))
	})

	t.Run("templates without a verb", func(t *testing.T) {
		s := NewSanitizer(WithReservedNameFormat("reserved"), WithReservedCharFormat("-"))
		assert.Equal(t, "reserved%!(EXTRA string=con)", s.Sanitize("con"))
		assert.Equal(t, "a-%!(EXTRA int32=58)b", s.Sanitize("a:b"))
	})

	t.Run("options through ToValidFileName", func(t *testing.T) {
		assert.Equal(t, "-nul-", ToValidFileName("nul", WithReservedNameFormat("-%s-")))
	})
}

func TestInvalidFileNameChars(t *testing.T) {
	chars := InvalidFileNameChars()
	assert.Len(t, chars, 41)
	assert.Contains(t, chars, rune(0))
	assert.Contains(t, chars, rune(0x1f))
	assert.Contains(t, chars, '|')
	assert.NotContains(t, chars, '.')
}

func TestToValidFileName_Properties(t *testing.T) {
	invalid := string(InvalidFileNameChars())

	t.Run("output has no invalid characters", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			name := rapid.String().Draw(t, "name")
			got := ToValidFileName(name)
			if strings.ContainsAny(got, invalid) {
				t.Fatalf("ToValidFileName(%q) = %q contains invalid characters", name, got)
			}
		})
	})

	t.Run("idempotent", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			name := rapid.String().Draw(t, "name")
			once := ToValidFileName(name)
			if twice := ToValidFileName(once); twice != once {
				t.Fatalf("ToValidFileName(%q) = %q, again = %q", name, once, twice)
			}
		})
	})

	t.Run("valid names are unchanged", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			name := rapid.StringMatching(`[a-z0-9_-]{5,12}(\.[a-z]{1,4})?`).Draw(t, "name")
			if got := ToValidFileName(name); got != name {
				t.Fatalf("ToValidFileName(%q) = %q", name, got)
			}
		})
	})
}
