package utils

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lower cases", "JavaScript", "javascript"},
		{"trims", "  react  ", "react"},
		{"strips punctuation", "c++/c#!", "cc"},
		{"keeps hyphens", "front-end", "front-end"},
		{"keeps digits", "Web3", "web3"},
		{"keeps non latin letters", "프로그래밍", "프로그래밍"},
		{"drops inner spaces", "machine learning", "machinelearning"},
		{"caps length", "abcdefghijklmnopqrstuvwxyz", "abcdefghijklmnopqrst"},
		{"empty when nothing survives", "#!?", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTag(tt.in, 20))
		})
	}
}

func TestNormalizeTags(t *testing.T) {
	in := []string{"Go", " ", "Rust!", "#", "zig", "c", "lua", "odin", "nim"}

	assert.Equal(t, []string{"go", "rust", "zig", "c", "lua", "odin"}, NormalizeTags(in, 20, 6))
	assert.Equal(t, []string{"go", "rust", "zig", "c", "lua", "odin", "nim"}, NormalizeTags(in, 20, 0))
	assert.Empty(t, NormalizeTags(nil, 20, 6))
}

func TestNormalizeTagProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("normalized tags are short and clean", prop.ForAll(
		func(s string) bool {
			tag := NormalizeTag(s, 20)
			if utf8.RuneCountInString(tag) > 20 {
				return false
			}
			for _, r := range tag {
				if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-') {
					return false
				}
			}
			return true
		},
		gen.AnyString(),
	))

	properties.Property("normalization is idempotent", prop.ForAll(
		func(s string) bool {
			once := NormalizeTag(s, 20)
			return NormalizeTag(once, 20) == once && once == strings.ToLower(once)
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
