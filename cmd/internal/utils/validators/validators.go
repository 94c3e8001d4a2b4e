package validators

import (
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Register installs the password strength rules used by the sign-up contract.
func Register(validate *validator.Validate) {
	_ = validate.RegisterValidation("hasupper", anyRune(unicode.IsUpper))
	_ = validate.RegisterValidation("haslower", anyRune(unicode.IsLower))
	_ = validate.RegisterValidation("hasdigit", anyRune(unicode.IsDigit))
	_ = validate.RegisterValidation("hasspecial", HasSpecial)
}

var specialRegex = regexp.MustCompile(`[\\^$*.\[\]{}()?"!@#%&/\\,><':;|_~` + "`" + `=+\-]`)

func anyRune(pred func(rune) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		val, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}

		for _, ch := range val {
			if pred(ch) {
				return true
			}
		}
		return false
	}
}

func HasSpecial(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return specialRegex.MatchString(val)
}
