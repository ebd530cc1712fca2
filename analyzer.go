package passadvisor

import (
	"unicode/utf8"

	"github.com/fernandezvara/passadvisor/pkg/debug"
)

// Suggestions returned by Analyze, in the order they are emitted.
const (
	SuggestIncreaseLength     = "Increase length to at least 8 characters"
	SuggestAddLowercase       = "Add lowercase letters"
	SuggestAddUppercase       = "Add uppercase letters"
	SuggestAddNumbers         = "Add numbers"
	SuggestAddSpecial         = "Add special characters (@, #, $, etc.)"
	SuggestAvoidRepeats       = "Avoid repeating characters"
	SuggestAvoidSequences     = "Avoid sequential patterns (e.g., 123, abc)"
	SuggestAvoidCommonWords   = "Avoid common words"
	SuggestRemovePersonalInfo = "Remove personal information"
	SuggestBreached           = "This password has appeared in a data breach, choose a different one"
	MessageVeryStrong         = "This is a very strong password"
)

// Additive score components.
const (
	longLength   = 12 // strictly longer earns lengthLong
	minLength    = 8
	lengthLong   = 25
	lengthMedium = 15
	lowerPoints  = 10
	upperPoints  = 15
	digitPoints  = 15
	symbolPoints = 20
	varietyBonus = 15
)

// PenaltyDetail describes a single score deduction applied during analysis.
type PenaltyDetail struct {
	Rule   string `json:"rule"`   // e.g. "repeated_chars", "common_word", "personal_info"
	Points int    `json:"points"` // score change, zero or negative
	Desc   string `json:"desc"`   // human-readable description
}

// Result is the outcome of analyzing one password. A fresh Result is built on
// every call; the zero Result (LevelNone) means nothing was analyzed.
type Result struct {
	Score                int             `json:"score"`
	Level                StrengthLevel   `json:"level"`
	Suggestions          []string        `json:"suggestions"`
	CrackTime            string          `json:"crackTime"`
	CrackSeconds         float64         `json:"crackSeconds"`
	Entropy              float64         `json:"entropy"`
	BreachDetected       bool            `json:"breachDetected"`
	PersonalInfoDetected bool            `json:"personalInfoDetected"`
	Penalties            []PenaltyDetail `json:"penalties,omitempty"`
}

// Empty reports whether the result is the "no analysis performed" sentinel.
func (r Result) Empty() bool {
	return r.Level == LevelNone
}

// Meets reports whether an analyzed password reached at least min.
func (r Result) Meets(min StrengthLevel) bool {
	return !r.Empty() && r.Level >= min
}

// Analyzer scores passwords against a known-weak password list and the
// built-in pattern tables. It holds no mutable state and is safe for
// concurrent use.
type Analyzer struct {
	knownWeak   *dictionary
	commonWords *dictionary
}

// NewAnalyzer creates an analyzer using the embedded known-weak password list.
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithDict("")
}

// NewAnalyzerWithDict creates an analyzer with a custom known-weak password list.
// customDict holds one password per line; if it is empty the embedded list is used.
func NewAnalyzerWithDict(customDict string) *Analyzer {
	dict := knownWeakDict
	if customDict != "" {
		dict = loadDictionary(customDict)
	}
	debug.Debug("Analyzer created with %d known-weak passwords and %d common words", dict.len(), commonWordsDict.len())
	return &Analyzer{
		knownWeak:   dict,
		commonWords: commonWordsDict,
	}
}

var defaultAnalyzer = NewAnalyzer()

// Analyze runs the default analyzer. info may be nil.
func Analyze(password string, info *ContextInfo) Result {
	return defaultAnalyzer.Analyze(password, info)
}

// Analyze scores password, optionally checking it against personal details in info.
// An empty password yields the zero Result.
func (a *Analyzer) Analyze(password string, info *ContextInfo) Result {
	if password == "" {
		return Result{Level: LevelNone}
	}

	in := newRuleInput(password, info)

	// A known leaked password is very weak however complex it looks.
	if a.knownWeak.contains(in.lower) {
		debug.Debug("Password matched the known-weak list")
		return Result{
			Score:          0,
			Level:          LevelVeryWeak,
			Suggestions:    []string{SuggestBreached, SuggestAvoidCommonWords},
			CrackTime:      crackTimeInstant,
			BreachDetected: true,
			Penalties: []PenaltyDetail{{
				Rule: RuleBreach,
				Desc: "password is in the known-weak passwords list",
			}},
		}
	}

	score, suggestions := compositionScore(password)

	penalties, penaltySuggestions := detectPenalties(in, a.commonWords)
	suggestions = append(suggestions, penaltySuggestions...)

	res := Result{Penalties: penalties}
	for _, p := range penalties {
		score += p.Points
		if p.Rule == RulePersonalInfo {
			res.PersonalInfoDetected = true
		}
		debug.Debug("Penalty applied: %s (%d)", p.Rule, p.Points)
	}

	res.Score = clampScore(score)
	res.Level = LevelForScore(res.Score)
	if len(suggestions) == 0 && res.Level == LevelVeryStrong {
		suggestions = append(suggestions, MessageVeryStrong)
	}
	res.Suggestions = suggestions
	res.CrackTime, res.CrackSeconds, res.Entropy = estimateCrackTime(password, res.Score)

	debug.Debug("Analysis complete: score=%d level=%s penalties=%d", res.Score, res.Level, len(penalties))
	return res
}

// compositionScore awards points for length and character classes and
// suggests the missing ones.
func compositionScore(password string) (int, []string) {
	var (
		score       int
		suggestions []string
	)

	switch n := utf8.RuneCountInString(password); {
	case n > longLength:
		score += lengthLong
	case n >= minLength:
		score += lengthMedium
	default:
		suggestions = append(suggestions, SuggestIncreaseLength)
	}

	lower, upper, digit, symbol := charClasses(password)
	for _, c := range []struct {
		present    bool
		points     int
		suggestion string
	}{
		{lower, lowerPoints, SuggestAddLowercase},
		{upper, upperPoints, SuggestAddUppercase},
		{digit, digitPoints, SuggestAddNumbers},
		{symbol, symbolPoints, SuggestAddSpecial},
	} {
		if c.present {
			score += c.points
		} else {
			suggestions = append(suggestions, c.suggestion)
		}
	}

	if lower && upper && digit && symbol {
		score += varietyBonus
	}
	return score, suggestions
}
