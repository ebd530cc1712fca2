package passadvisor

import (
	"encoding/json"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_EmptyPassword(t *testing.T) {
	res := Analyze("", &ContextInfo{Name: "alice"})

	assert.True(t, res.Empty())
	assert.Equal(t, LevelNone, res.Level)
	assert.Zero(t, res.Score)
	assert.Empty(t, res.Suggestions)
	assert.False(t, res.BreachDetected)
	assert.False(t, res.Meets(LevelVeryWeak))
}

func TestAnalyze_KnownWeakPassword(t *testing.T) {
	tests := []string{"password", "PASSWORD", "Password123", "LetMeIn", "admin", "qwerty123"}

	for _, pwd := range tests {
		t.Run(pwd, func(t *testing.T) {
			res := Analyze(pwd, nil)
			assert.True(t, res.BreachDetected)
			assert.Equal(t, 0, res.Score)
			assert.Equal(t, LevelVeryWeak, res.Level)
			assert.Equal(t, "instant", res.CrackTime)
			assert.Contains(t, res.Suggestions, SuggestAvoidCommonWords)
			require.Len(t, res.Penalties, 1)
			assert.Equal(t, RuleBreach, res.Penalties[0].Rule)
			assert.False(t, res.Empty())
		})
	}
}

func TestAnalyze_VeryStrongPassword(t *testing.T) {
	res := Analyze("Tr0ub4dor&3Xy!", nil)

	assert.Equal(t, 100, res.Score)
	assert.Equal(t, LevelVeryStrong, res.Level)
	assert.Equal(t, []string{MessageVeryStrong}, res.Suggestions)
	assert.Equal(t, "centuries", res.CrackTime)
	assert.False(t, res.BreachDetected)
	assert.False(t, res.PersonalInfoDetected)
	assert.Empty(t, res.Penalties)
	assert.InDelta(t, 91.76, res.Entropy, 0.01)
}

func TestAnalyze_Suggestions(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		wantScore   int
		wantLevel   StrengthLevel
		suggestions []string
	}{
		{"short lowercase", "zq", 10, LevelVeryWeak,
			[]string{SuggestIncreaseLength, SuggestAddUppercase, SuggestAddNumbers, SuggestAddSpecial}},
		{"short without lowercase", "ZQ7!", 50, LevelMedium,
			[]string{SuggestIncreaseLength, SuggestAddLowercase}},
		{"repeated characters", "xxxK9!mq", 80, LevelVeryStrong,
			[]string{SuggestAvoidRepeats}},
		{"numeric run", "Zq!12345", 75, LevelStrong,
			[]string{SuggestAvoidSequences}},
		{"reversed numeric run", "Zq!54321", 75, LevelStrong,
			[]string{SuggestAvoidSequences}},
		{"common word", "Xmonkey#7Q", 70, LevelStrong,
			[]string{SuggestAvoidCommonWords}},
		{"substituted letters are not a common word", "Xp@ssw0rd#Q", 90, LevelVeryStrong,
			[]string{MessageVeryStrong}},
		{"digits inside random text", "Xk#7e57Qw9zP", 90, LevelVeryStrong,
			[]string{MessageVeryStrong}},
		{"long with substituted letters", "B4tm4n!Qz7xw2", 100, LevelVeryStrong,
			[]string{MessageVeryStrong}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Analyze(tt.password, nil)
			assert.Equal(t, tt.wantScore, res.Score)
			assert.Equal(t, tt.wantLevel, res.Level)
			assert.Equal(t, tt.suggestions, res.Suggestions)
		})
	}
}

func TestAnalyze_PersonalInfo(t *testing.T) {
	const pwd = "mybirthyear1990x"

	plain := Analyze(pwd, nil)
	withCtx := Analyze(pwd, &ContextInfo{BirthYear: "1990"})

	assert.False(t, plain.PersonalInfoDetected)
	assert.True(t, withCtx.PersonalInfoDetected)
	assert.Equal(t, 50, plain.Score)
	assert.Equal(t, plain.Score-personalInfoPenalty, withCtx.Score)
	assert.Equal(t, LevelWeak, withCtx.Level)
	assert.Contains(t, withCtx.Suggestions, SuggestRemovePersonalInfo)
	assert.NotContains(t, plain.Suggestions, SuggestRemovePersonalInfo)
}

func TestAnalyze_PersonalInfoAppliedOnce(t *testing.T) {
	const pwd = "JohnTiger#2024z"
	info := &ContextInfo{Name: "John", FavWord: "tiger", BirthYear: "2024"}

	plain := Analyze(pwd, nil)
	res := Analyze(pwd, info)

	assert.Equal(t, 100, plain.Score)
	assert.Equal(t, 70, res.Score)

	count := 0
	for _, p := range res.Penalties {
		if p.Rule == RulePersonalInfo {
			count++
			assert.Equal(t, -personalInfoPenalty, p.Points)
		}
	}
	assert.Equal(t, 1, count)
}

func TestAnalyze_ShortContextFieldsIgnored(t *testing.T) {
	res := Analyze("Ab#Zq9x!Kp2m", &ContextInfo{Name: "Ab", BirthYear: "9 ", Mobile: ""})

	assert.False(t, res.PersonalInfoDetected)
	assert.True(t, (&ContextInfo{Name: "Ab"}).IsZero())
	assert.True(t, (*ContextInfo)(nil).IsZero())
}

func TestAnalyze_ContextFieldLengthIncludesSpaces(t *testing.T) {
	info := &ContextInfo{BirthYear: " 9 "}
	assert.False(t, info.IsZero())

	res := Analyze("Ab#Zq 9 Kp2m", info)
	assert.True(t, res.PersonalInfoDetected)
}

func TestAnalyze_PersonalInfoAccentFolding(t *testing.T) {
	res := Analyze("Jose#Rules2024", &ContextInfo{Name: "José"})
	assert.True(t, res.PersonalInfoDetected)

	res = Analyze("José#Rules2024", &ContextInfo{Name: "jose"})
	assert.True(t, res.PersonalInfoDetected)
}

func TestAnalyze_DictionaryAttackOverride(t *testing.T) {
	res := Analyze("passwordabcdefgh", nil)

	assert.Less(t, res.Score, 40)
	assert.Greater(t, res.CrackSeconds, day)
	assert.Equal(t, CrackTimeDictionaryAttack, res.CrackTime)
}

func TestAnalyze_ScoreBoundsAndIdempotence(t *testing.T) {
	passwords := []string{
		"a", "aaaaaaaaaaaaaaaaaaaa", "!!!!", "qwertyasdfgh12345", "ÄÖÜäöü",
		"Tr0ub4dor&3Xy!", "monkeydragonmaster", "x", "    ", "1",
		"correcthorsebatterystaple", "P@ssw0rd!P@ssw0rd!",
	}
	g := NewGenerator()
	for i := 0; i < 50; i++ {
		pwd, err := g.Generate()
		require.NoError(t, err)
		passwords = append(passwords, pwd)
	}

	info := &ContextInfo{Name: "dragon", Mobile: "5551234"}
	for _, pwd := range passwords {
		first := Analyze(pwd, info)
		second := Analyze(pwd, info)

		assert.GreaterOrEqual(t, first.Score, 0, pwd)
		assert.LessOrEqual(t, first.Score, 100, pwd)
		assert.Equal(t, LevelForScore(first.Score), first.Level, pwd)
		assert.Equal(t, first, second, pwd)
		assert.NotEmpty(t, first.Suggestions, pwd)
	}
}

func TestAnalyze_VeryLongPassword(t *testing.T) {
	res := Analyze(strings.Repeat("aB3$", 50), nil)

	assert.Equal(t, 100, res.Score)
	assert.Equal(t, "centuries", res.CrackTime)
	assert.False(t, math.IsInf(res.CrackSeconds, 0))
	assert.Equal(t, math.MaxFloat64, res.CrackSeconds)

	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"crackTime":"centuries"`)
}

func TestAnalyze_Concurrent(t *testing.T) {
	a := NewAnalyzer()
	want := a.Analyze("Zq!12345", nil)

	var wg sync.WaitGroup
	results := make([]Result, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = a.Analyze("Zq!12345", nil)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestNewAnalyzerWithDict(t *testing.T) {
	a := NewAnalyzerWithDict("hunter2\nCorrectHorse\n\n")

	res := a.Analyze("CORRECTHORSE", nil)
	assert.True(t, res.BreachDetected)

	// Not in the custom list, so the common-word rule applies instead.
	res = a.Analyze("password", nil)
	assert.False(t, res.BreachDetected)
	assert.Contains(t, res.Suggestions, SuggestAvoidCommonWords)
}

func TestResult_Meets(t *testing.T) {
	res := Analyze("Zq!12345", nil)

	assert.True(t, res.Meets(LevelStrong))
	assert.True(t, res.Meets(LevelNone))
	assert.False(t, res.Meets(LevelVeryStrong))
}

func TestDictionariesLoaded(t *testing.T) {
	require.NotNil(t, knownWeakDict)
	require.NotNil(t, commonWordsDict)
	for _, pwd := range []string{"password123", "admin", "qwerty123", "iloveyou", "welcome",
		"123456", "password", "12345678", "123456789", "letmein"} {
		assert.True(t, knownWeakDict.contains(pwd), pwd)
	}
	for _, w := range commonWordsDict.words {
		assert.GreaterOrEqual(t, len(w), 4, w)
	}
}

// Benchmarks
func BenchmarkAnalyze(b *testing.B) {
	info := &ContextInfo{Name: "alice", BirthYear: "1990"}
	for i := 0; i < b.N; i++ {
		Analyze("MyP@ssw0rd!23", info)
	}
}
