package passadvisor

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// minContextFieldLen is the length a context field must exceed to be matched.
const minContextFieldLen = 2

// ContextInfo carries optional personal details that should not appear in a password.
type ContextInfo struct {
	Name      string `json:"name,omitempty"`
	BirthYear string `json:"birthYear,omitempty"`
	Mobile    string `json:"mobile,omitempty"`
	FavWord   string `json:"favWord,omitempty"`
}

type contextField struct {
	name  string
	value string
}

// fields returns the folded context values long enough to be considered.
func (c *ContextInfo) fields() []contextField {
	if c == nil {
		return nil
	}
	var out []contextField
	for _, f := range []contextField{
		{"name", c.Name},
		{"birth year", c.BirthYear},
		{"mobile number", c.Mobile},
		{"favorite word", c.FavWord},
	} {
		if utf8.RuneCountInString(f.value) <= minContextFieldLen {
			continue
		}
		f.value = foldText(f.value)
		out = append(out, f)
	}
	return out
}

// IsZero reports whether no field would take part in matching.
func (c *ContextInfo) IsZero() bool {
	return len(c.fields()) == 0
}

// foldText lowercases s and strips combining marks, so "José" matches "jose".
// A new transformer chain is built per call because chains carry state.
func foldText(s string) string {
	if s == "" {
		return s
	}
	t := transform.Chain(
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}
