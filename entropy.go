package passadvisor

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// Character pool sizes used for the entropy estimate. The symbol pool is an
// approximation of printable ASCII punctuation.
const (
	lowerPool  = 26
	upperPool  = 26
	digitPool  = 10
	symbolPool = 32
)

// GuessesPerSecond models a high-end offline attack. Crack times derived from
// it are illustrative only.
const GuessesPerSecond = 1e10

// CrackTimeDictionaryAttack is shown instead of the entropy estimate when a
// password scores low but looks long enough to take more than a day.
const CrackTimeDictionaryAttack = "minutes (dictionary attack)"

const (
	crackTimeInstant = "instant"
	dictionaryScore  = 40

	minute  = 60.0
	hour    = 60 * minute
	day     = 24 * hour
	month   = 30 * day
	year    = 365 * day
	century = 100 * year
)

// charClasses reports which ASCII classes appear. Anything that is not an
// ASCII letter or digit counts as a symbol.
func charClasses(password string) (lower, upper, digit, symbol bool) {
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			symbol = true
		}
	}
	return
}

// effectivePoolSize sums the pool sizes of the classes present in password.
func effectivePoolSize(password string) int {
	lower, upper, digit, symbol := charClasses(password)
	pool := 0
	if lower {
		pool += lowerPool
	}
	if upper {
		pool += upperPool
	}
	if digit {
		pool += digitPool
	}
	if symbol {
		pool += symbolPool
	}
	return pool
}

// calculateEntropy returns length * log2(poolSize) bits.
func calculateEntropy(password string) float64 {
	pool := effectivePoolSize(password)
	if pool == 0 {
		return 0
	}
	return float64(utf8.RuneCountInString(password)) * math.Log2(float64(pool))
}

// crackSeconds is the time to exhaust 2^entropy guesses at GuessesPerSecond,
// capped at math.MaxFloat64 so the value stays finite and JSON-encodable.
func crackSeconds(entropy float64) float64 {
	s := math.Exp2(entropy) / GuessesPerSecond
	if math.IsInf(s, 1) {
		return math.MaxFloat64
	}
	return s
}

// estimateCrackTime returns the display estimate, the raw seconds and the
// entropy for password given its clamped score.
func estimateCrackTime(password string, score int) (string, float64, float64) {
	if effectivePoolSize(password) == 0 {
		return crackTimeInstant, 0, 0
	}
	entropy := calculateEntropy(password)
	seconds := crackSeconds(entropy)
	if score < dictionaryScore && seconds > day {
		return CrackTimeDictionaryAttack, seconds, entropy
	}
	return formatDuration(seconds), seconds, entropy
}

// formatDuration buckets seconds into a human-readable estimate.
func formatDuration(seconds float64) string {
	switch {
	case seconds < 1:
		return "< 1 second"
	case seconds < minute:
		return plural(seconds, "second")
	case seconds < hour:
		return plural(seconds/minute, "minute")
	case seconds < day:
		return plural(seconds/hour, "hour")
	case seconds < month:
		return plural(seconds/day, "day")
	case seconds < year:
		return plural(seconds/month, "month")
	case seconds < century:
		return plural(seconds/year, "year")
	default:
		return "centuries"
	}
}

func plural(v float64, unit string) string {
	n := int64(math.Floor(v))
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
