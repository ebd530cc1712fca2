package passadvisor

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/fernandezvara/passadvisor/pkg/debug"
)

// Generator alphabet: 26 lowercase, 26 uppercase, 10 digits and 28 symbols.
const (
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars = "0123456789"
	symbolChars = "!@#$%^&*()_+~`|}{[]:;?><,./-"

	alphabet = lowerChars + upperChars + numberChars + symbolChars
)

const (
	// DefaultLength is the length of generated passwords.
	DefaultLength = 16
	// MinGenerateLength leaves room for one character of every class.
	MinGenerateLength = 4
)

var (
	// ErrRandomSourceUnavailable is returned when the random source fails.
	ErrRandomSourceUnavailable = errors.New("random source unavailable")
	// ErrInvalidLength is returned when the configured length cannot hold every class.
	ErrInvalidLength = errors.New("invalid password length")
)

// requiredClasses are seeded once each before the remainder is filled.
var requiredClasses = []string{lowerChars, upperChars, numberChars, symbolChars}

// Generator produces random passwords containing at least one lowercase
// letter, uppercase letter, digit and symbol.
type Generator struct {
	Length int

	rand io.Reader
}

// NewGenerator returns a generator of DefaultLength passwords backed by crypto/rand.
func NewGenerator() *Generator {
	return NewGeneratorWithReader(rand.Reader)
}

// NewGeneratorWithReader returns a generator drawing randomness from r.
func NewGeneratorWithReader(r io.Reader) *Generator {
	return &Generator{Length: DefaultLength, rand: r}
}

// Generate creates a password with the default generator.
func Generate() (string, error) {
	return NewGenerator().Generate()
}

// Generate seeds one character of every class, fills the rest uniformly from
// the full alphabet and applies a Fisher-Yates shuffle.
func (g *Generator) Generate() (string, error) {
	if g.Length < MinGenerateLength {
		return "", fmt.Errorf("%w: %d is below the minimum of %d", ErrInvalidLength, g.Length, MinGenerateLength)
	}
	src := g.rand
	if src == nil {
		src = rand.Reader
	}

	pwd := make([]byte, 0, g.Length)
	for _, class := range requiredClasses {
		c, err := pick(src, class)
		if err != nil {
			return "", err
		}
		pwd = append(pwd, c)
	}
	for len(pwd) < g.Length {
		c, err := pick(src, alphabet)
		if err != nil {
			return "", err
		}
		pwd = append(pwd, c)
	}

	for i := len(pwd) - 1; i > 0; i-- {
		j, err := randIndex(src, i+1)
		if err != nil {
			return "", err
		}
		pwd[i], pwd[j] = pwd[j], pwd[i]
	}

	return string(pwd), nil
}

func pick(src io.Reader, chars string) (byte, error) {
	i, err := randIndex(src, len(chars))
	if err != nil {
		return 0, err
	}
	return chars[i], nil
}

// randIndex returns a uniform int in [0, n).
func randIndex(src io.Reader, n int) (int, error) {
	v, err := rand.Int(src, big.NewInt(int64(n)))
	if err != nil {
		debug.Error("Random source failed: %v", err)
		return 0, fmt.Errorf("%w: %v", ErrRandomSourceUnavailable, err)
	}
	return int(v.Int64()), nil
}
