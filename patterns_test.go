package passadvisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequentialPatterns(t *testing.T) {
	for _, want := range []string{"12345", "56789", "abcde", "vwxyz", "qwert", "asdfg", "cvbnm", "qwerty", "asdfgh", "zxcvbn"} {
		assert.Contains(t, sequentialPatterns, want)
	}
	assert.NotContains(t, sequentialPatterns, "90123")
	assert.NotContains(t, sequentialPatterns, "1234")

	seen := map[string]bool{}
	for _, p := range sequentialPatterns {
		assert.False(t, seen[p], "duplicate pattern %q", p)
		seen[p] = true
	}
}

func TestFindSequentialPattern(t *testing.T) {
	tests := []struct {
		lower string
		want  string
		found bool
	}{
		{"x12345y", "12345", true},
		{"x54321y", "54321", true},
		{"myqwertypass", "qwert", true},
		{"lkjhgf", "kjhgf", true},
		{"1234", "", false},
		{"tr0ub4dor&3xy!", "", false},
	}

	for _, tt := range tests {
		got, ok := findSequentialPattern(tt.lower)
		assert.Equal(t, tt.found, ok, tt.lower)
		assert.Equal(t, tt.want, got, tt.lower)
	}
}

func TestHasTripleRepeat(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"", false},
		{"aa", false},
		{"aaa", true},
		{"aAa", false},
		{"abcaab", false},
		{"x111", true},
		{"ééé", true},
		{"abbbc", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, hasTripleRepeat(tt.password), tt.password)
	}
}

func TestDictionarySubstring(t *testing.T) {
	d := loadDictionary("Monkey\nDRAGON\nmonkey\n")
	assert.Equal(t, 2, d.len())

	word, ok := d.firstSubstring("xx", "mydragon!")
	assert.True(t, ok)
	assert.Equal(t, "dragon", word)

	_, ok = d.firstSubstring("nothing here")
	assert.False(t, ok)
}
