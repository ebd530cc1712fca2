package passadvisor

import (
	_ "embed"
	"strings"
)

//go:embed data/common_passwords.txt
var commonPasswordsData string

//go:embed data/common_words.txt
var commonWordsData string

// dictionary holds a lowercased word list for exact and substring lookups.
type dictionary struct {
	set   map[string]struct{}
	words []string // for substring iteration
}

// Loaded at package initialization and never mutated afterwards.
var (
	knownWeakDict   = loadDictionary(commonPasswordsData)
	commonWordsDict = loadDictionary(commonWordsData)
)

func loadDictionary(data string) *dictionary {
	lines := strings.Split(data, "\n")
	d := &dictionary{
		set: make(map[string]struct{}, len(lines)),
	}
	for _, line := range lines {
		word := strings.TrimSpace(strings.ToLower(line))
		if word == "" {
			continue
		}
		if _, dup := d.set[word]; dup {
			continue
		}
		d.set[word] = struct{}{}
		d.words = append(d.words, word)
	}
	return d
}

// contains checks if the exact word is in the dictionary.
func (d *dictionary) contains(word string) bool {
	_, ok := d.set[word]
	return ok
}

// firstSubstring returns the first dictionary word contained in any of the candidates.
func (d *dictionary) firstSubstring(candidates ...string) (string, bool) {
	for _, word := range d.words {
		for _, c := range candidates {
			if strings.Contains(c, word) {
				return word, true
			}
		}
	}
	return "", false
}

func (d *dictionary) len() int {
	return len(d.words)
}
