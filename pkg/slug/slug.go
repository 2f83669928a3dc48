package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Option configures Make.
type Option func(*config)

type config struct {
	separator string
	maxLength int
}

// Separator sets the word separator. Default is "-".
func Separator(s string) Option {
	return func(c *config) { c.separator = s }
}

// MaxLength bounds the result in runes. Zero means no limit.
// A cut never leaves a trailing separator.
func MaxLength(n int) Option {
	return func(c *config) { c.maxLength = n }
}

// Make lower-cases s, strips diacritics and joins its words with the separator.
func Make(s string, opts ...Option) string {
	cfg := &config{separator: "-"}
	for _, opt := range opts {
		opt(cfg)
	}

	s = stripMarks(strings.ToLower(strings.TrimSpace(s)))

	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	count := 0
	sepLen := len([]rune(cfg.separator))

	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSep && b.Len() > 0 {
				if cfg.maxLength > 0 && count+sepLen+1 > cfg.maxLength {
					return b.String()
				}
				b.WriteString(cfg.separator)
				count += sepLen
			}
			pendingSep = false
			if cfg.maxLength > 0 && count >= cfg.maxLength {
				return b.String()
			}
			b.WriteRune(r)
			count++
		case unicode.IsSpace(r) || r == '-' || r == '_':
			pendingSep = true
		default:
			// punctuation is dropped without splitting the word
		}
	}
	return b.String()
}

var markStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func stripMarks(s string) string {
	out, _, err := transform.String(markStripper, s)
	if err != nil {
		return s
	}
	return out
}
