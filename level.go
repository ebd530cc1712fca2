package passadvisor

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StrengthLevel is a discrete strength bucket derived from a score.
type StrengthLevel int

const (
	// LevelNone marks a result for which no analysis was performed (empty password).
	LevelNone StrengthLevel = iota
	LevelVeryWeak
	LevelWeak
	LevelMedium
	LevelStrong
	LevelVeryStrong
)

var levelLabels = map[StrengthLevel]string{
	LevelNone:       "None",
	LevelVeryWeak:   "Very Weak",
	LevelWeak:       "Weak",
	LevelMedium:     "Medium",
	LevelStrong:     "Strong",
	LevelVeryStrong: "Very Strong",
}

// String returns the display label of the level.
func (l StrengthLevel) String() string {
	if s, ok := levelLabels[l]; ok {
		return s
	}
	return fmt.Sprintf("StrengthLevel(%d)", int(l))
}

// MeterWidth returns the relative meter fill for the level, in percent.
func (l StrengthLevel) MeterWidth() int {
	if l < LevelNone || l > LevelVeryStrong {
		return 0
	}
	return int(l) * 20
}

// MarshalJSON encodes the level as its label.
func (l StrengthLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON accepts any form understood by ParseLevel.
func (l *StrengthLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseLevel(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel maps a label such as "very strong", "VeryStrong" or "very_strong"
// back to its StrengthLevel.
func ParseLevel(s string) (StrengthLevel, error) {
	key := normalizeLevelKey(s)
	for level, label := range levelLabels {
		if normalizeLevelKey(label) == key {
			return level, nil
		}
	}
	return LevelNone, fmt.Errorf("unknown strength level %q", s)
}

func normalizeLevelKey(s string) string {
	r := strings.NewReplacer(" ", "", "_", "", "-", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(s)))
}

// LevelForScore clamps score to [0,100] and maps it onto the level thresholds:
// [0,20) very weak, [20,40) weak, [40,60) medium, [60,80) strong, [80,100] very strong.
func LevelForScore(score int) StrengthLevel {
	score = clampScore(score)
	switch {
	case score < 20:
		return LevelVeryWeak
	case score < 40:
		return LevelWeak
	case score < 60:
		return LevelMedium
	case score < 80:
		return LevelStrong
	default:
		return LevelVeryStrong
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
