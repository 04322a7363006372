package address

import "strings"

const postalCodeLength = 8

// NormalizePostalCode приводит CEP к 8 цифрам: допускается один разделитель
// "-" (01310-100), все остальное - ErrInvalidPostalCode.
func NormalizePostalCode(code string) (string, error) {
	code = strings.TrimSpace(code)
	if strings.Count(code, "-") > 1 {
		return "", ErrInvalidPostalCode
	}
	code = strings.Replace(code, "-", "", 1)

	if len(code) != postalCodeLength {
		return "", ErrInvalidPostalCode
	}
	for _, char := range code {
		if char < '0' || char > '9' {
			return "", ErrInvalidPostalCode
		}
	}
	return code, nil
}
