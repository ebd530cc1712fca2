package passadvisor

import (
	"fmt"
	"strings"
)

// Rule names reported in PenaltyDetail.
const (
	RuleBreach            = "breach"
	RuleRepeatedChars     = "repeated_chars"
	RuleSequentialPattern = "sequential_pattern"
	RuleCommonWord        = "common_word"
	RulePersonalInfo      = "personal_info"
)

// Score deductions.
const (
	repeatedCharsPenalty     = 10
	sequentialPatternPenalty = 15
	commonWordPenalty        = 20
	personalInfoPenalty      = 30
)

// ruleInput is the password in the forms the penalty rules need.
type ruleInput struct {
	password string
	lower    string
	folded   string
	context  []contextField
}

func newRuleInput(password string, info *ContextInfo) *ruleInput {
	return &ruleInput{
		password: password,
		lower:    strings.ToLower(password),
		folded:   foldText(password),
		context:  info.fields(),
	}
}

// penaltyRule pairs a check, which returns a deduction or nil, with its suggestion.
type penaltyRule struct {
	rule       string
	suggestion string
	check      func(in *ruleInput, words *dictionary) *PenaltyDetail
}

// penaltyRules run in order; each contributes at most one deduction and one suggestion.
var penaltyRules = []penaltyRule{
	{RuleRepeatedChars, SuggestAvoidRepeats, penaltyRepeatedChars},
	{RuleSequentialPattern, SuggestAvoidSequences, penaltySequentialPattern},
	{RuleCommonWord, SuggestAvoidCommonWords, penaltyCommonWord},
	{RulePersonalInfo, SuggestRemovePersonalInfo, penaltyPersonalInfo},
}

// detectPenalties returns the applicable deductions and their suggestions.
func detectPenalties(in *ruleInput, words *dictionary) ([]PenaltyDetail, []string) {
	var (
		penalties   []PenaltyDetail
		suggestions []string
	)
	for _, r := range penaltyRules {
		if p := r.check(in, words); p != nil {
			p.Rule = r.rule
			penalties = append(penalties, *p)
			suggestions = append(suggestions, r.suggestion)
		}
	}
	return penalties, suggestions
}

// --- Repeated characters ---

func penaltyRepeatedChars(in *ruleInput, _ *dictionary) *PenaltyDetail {
	if !hasTripleRepeat(in.password) {
		return nil
	}
	return &PenaltyDetail{
		Points: -repeatedCharsPenalty,
		Desc:   "a character repeats three or more times in a row",
	}
}

// --- Sequential patterns ---

func penaltySequentialPattern(in *ruleInput, _ *dictionary) *PenaltyDetail {
	seq, ok := findSequentialPattern(in.lower)
	if !ok {
		return nil
	}
	return &PenaltyDetail{
		Points: -sequentialPatternPenalty,
		Desc:   fmt.Sprintf("sequential pattern detected (%s)", seq),
	}
}

// --- Common words (substring) ---

func penaltyCommonWord(in *ruleInput, words *dictionary) *PenaltyDetail {
	if words == nil {
		return nil
	}
	word, ok := words.firstSubstring(in.lower)
	if !ok {
		return nil
	}
	return &PenaltyDetail{
		Points: -commonWordPenalty,
		Desc:   fmt.Sprintf("password contains the common word '%s'", word),
	}
}

// --- Personal information ---

// penaltyPersonalInfo applies once no matter how many fields match.
func penaltyPersonalInfo(in *ruleInput, _ *dictionary) *PenaltyDetail {
	var matched []string
	for _, f := range in.context {
		if strings.Contains(in.folded, f.value) {
			matched = append(matched, f.name)
		}
	}
	if len(matched) == 0 {
		return nil
	}
	return &PenaltyDetail{
		Points: -personalInfoPenalty,
		Desc:   fmt.Sprintf("password contains your %s", strings.Join(matched, ", ")),
	}
}
