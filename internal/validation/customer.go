package validation

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"

	"github.com/hance08/bankcore/internal/constants"
)

func ValidateName(input string) error {
	name := strings.TrimSpace(input)

	if name == "" {
		return fmt.Errorf("name can't be empty")
	}
	if len(name) > constants.MaxNameLen {
		return fmt.Errorf("name too long (max %d characters)", constants.MaxNameLen)
	}
	for _, r := range name {
		if unicode.IsDigit(r) || (unicode.IsPunct(r) && r != '-' && r != '\'' && r != '.') {
			return fmt.Errorf("name can't contain '%c'", r)
		}
	}
	return nil
}

func ValidateEmail(input string) error {
	email := strings.TrimSpace(input)

	if email == "" {
		return fmt.Errorf("email can't be empty")
	}
	if len(email) > constants.MaxEmailLen {
		return fmt.Errorf("email too long (max %d characters)", constants.MaxEmailLen)
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("'%s' is not a valid email address", email)
	}
	if at := strings.LastIndex(email, "@"); !strings.Contains(email[at+1:], ".") {
		return fmt.Errorf("'%s' has no domain suffix", email)
	}
	return nil
}

// ValidatePhone accepts an optional number made of digits, spaces, dashes, parentheses
// and a leading '+'.
func ValidatePhone(input string) error {
	phone := strings.TrimSpace(input)
	if phone == "" {
		return nil
	}

	digits := 0
	for i, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return fmt.Errorf("phone number can't contain '%c'", r)
		}
	}
	if digits < 7 || digits > 15 {
		return fmt.Errorf("phone number must have 7 to 15 digits")
	}
	return nil
}
