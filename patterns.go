package passadvisor

import "strings"

const sequenceWindow = 5

// sequenceRuns are the alphabetic, numeric and keyboard-row runs whose
// windows form the sequential pattern set.
var sequenceRuns = []string{
	"0123456789",
	"abcdefghijklmnopqrstuvwxyz",
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
}

var sequentialPatterns = buildSequentialPatterns(sequenceRuns, "qwerty", "asdfgh", "zxcvbn")

// buildSequentialPatterns slices each run into windows of sequenceWindow
// characters and adds the extra literals. Reversals are checked at match time.
func buildSequentialPatterns(runs []string, extra ...string) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(s string) {
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	for _, run := range runs {
		for i := 0; i+sequenceWindow <= len(run); i++ {
			add(run[i : i+sequenceWindow])
		}
	}
	for _, s := range extra {
		add(s)
	}
	return out
}

// findSequentialPattern returns the first sequential pattern, forwards or
// reversed, that lower contains.
func findSequentialPattern(lower string) (string, bool) {
	for _, seq := range sequentialPatterns {
		if strings.Contains(lower, seq) {
			return seq, true
		}
		if rev := reverseString(seq); strings.Contains(lower, rev) {
			return rev, true
		}
	}
	return "", false
}

// hasTripleRepeat reports whether any rune is immediately followed by itself twice.
func hasTripleRepeat(password string) bool {
	var prev rune
	run := 0
	for _, r := range password {
		if run > 0 && r == prev {
			run++
			if run >= 3 {
				return true
			}
			continue
		}
		prev = r
		run = 1
	}
	return false
}

func reverseString(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
