package usecase

import (
	"fmt"
	"strings"
	"unicode"

	domainErrors "github.com/polkiloo/cafeorders/internal/domain/errors"
)

const maxOrderNumberLength = 64

// NormalizeOrderNumber trims surrounding whitespace and rejects blank or malformed input.
func NormalizeOrderNumber(raw string) (string, error) {
	number := strings.TrimSpace(raw)
	if number == "" {
		return "", fmt.Errorf("%w: order number is required", domainErrors.ErrValidation)
	}
	if len(number) > maxOrderNumberLength {
		return "", fmt.Errorf("%w: order number is too long", domainErrors.ErrValidation)
	}
	for _, r := range number {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return "", fmt.Errorf("%w: order number contains invalid characters", domainErrors.ErrValidation)
		}
	}
	return number, nil
}
