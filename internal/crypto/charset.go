package crypto

import (
	"errors"
	"strings"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	// symbolChars is the full ASCII punctuation set. Strength scoring uses the same set.
	symbolChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

var ErrEmptyPool = errors.New("no characters available after applying character types and exclusions")

// charClass is one of the four character classes a password can be required to cover.
type charClass struct {
	name  string
	chars string
}

func (c charClass) contains(ch byte) bool {
	return strings.IndexByte(c.chars, ch) >= 0
}

var (
	classUpper  = charClass{name: "uppercase", chars: uppercaseChars}
	classLower  = charClass{name: "lowercase", chars: lowercaseChars}
	classNumber = charClass{name: "numbers", chars: numberChars}
	classSymbol = charClass{name: "symbols", chars: symbolChars}
)

// Pool is the ordered set of characters eligible for random selection.
type Pool []byte

// String returns the pool characters in order.
func (p Pool) String() string {
	return string(p)
}

// activeClasses returns the selected classes in pool order: uppercase, lowercase, numbers, symbols.
func activeClasses(opts GeneratorOptions) []charClass {
	classes := make([]charClass, 0, 4)
	if opts.Uppercase {
		classes = append(classes, classUpper)
	}
	if opts.Lowercase {
		classes = append(classes, classLower)
	}
	if opts.Numbers {
		classes = append(classes, classNumber)
	}
	if opts.Symbols {
		classes = append(classes, classSymbol)
	}
	return classes
}

// BuildPool concatenates the selected character classes and removes every excluded character.
func BuildPool(opts GeneratorOptions) (Pool, error) {
	var pool Pool
	for _, class := range activeClasses(opts) {
		for i := 0; i < len(class.chars); i++ {
			if strings.IndexByte(opts.Exclude, class.chars[i]) >= 0 {
				continue
			}
			pool = append(pool, class.chars[i])
		}
	}

	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}
	return pool, nil
}

// NormalizeExclude reduces an exclusion list to the distinct characters that
// can appear in some pool, in pool order. The result is never longer than
// the full character set.
func NormalizeExclude(exclude string) string {
	var b strings.Builder
	for _, class := range []charClass{classUpper, classLower, classNumber, classSymbol} {
		for i := 0; i < len(class.chars); i++ {
			if strings.IndexByte(exclude, class.chars[i]) >= 0 {
				b.WriteByte(class.chars[i])
			}
		}
	}
	return b.String()
}
