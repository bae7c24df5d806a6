// Package taxid checks and normalizes Brazilian individual taxpayer numbers (CPF).
package taxid

import "strings"

const cpfLength = 11

// Normalize strips every non-digit, so "529.982.247-25" becomes "52998224725".
func Normalize(cpf string) string {
	var b strings.Builder
	b.Grow(cpfLength)
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Validate reports whether cpf, formatted or not, carries eleven digits with matching check digits.
// Repeated-digit sequences such as 111.111.111-11 pass the arithmetic but are rejected.
func Validate(cpf string) bool {
	digits := Normalize(cpf)
	if len(digits) != cpfLength {
		return false
	}

	repeated := true
	for i := 1; i < cpfLength; i++ {
		if digits[i] != digits[0] {
			repeated = false
			break
		}
	}
	if repeated {
		return false
	}

	return checkDigit(digits[:9]) == digits[9] && checkDigit(digits[:10]) == digits[10]
}

// Format renders a normalized CPF as ddd.ddd.ddd-dd; anything else is returned unchanged.
func Format(cpf string) string {
	digits := Normalize(cpf)
	if len(digits) != cpfLength {
		return cpf
	}
	return digits[0:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:11]
}

// Complete appends the two check digits to a nine-digit base.
// It returns "" when base does not hold exactly nine digits.
func Complete(base string) string {
	digits := Normalize(base)
	if len(digits) != 9 {
		return ""
	}
	digits += string(checkDigit(digits))
	return digits + string(checkDigit(digits))
}

func checkDigit(prefix string) byte {
	sum := 0
	weight := len(prefix) + 1
	for i := 0; i < len(prefix); i++ {
		sum += int(prefix[i]-'0') * weight
		weight--
	}
	return byte('0' + (sum*10)%11%10)
}
