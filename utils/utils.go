package utils

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

func GetUUID() string {
	return uuid.New().String()
}

// NormalizeWhatsapp strips everything from a phone number except digits and a
// leading +. "+1 (234) 567-8900" becomes "+12345678900".
func NormalizeWhatsapp(number string) string {
	var b strings.Builder
	for i, r := range number {
		if r == '+' && i == 0 {
			b.WriteRune(r)
			continue
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Slugify lowercases a name, turns whitespace runs into single hyphens and
// drops anything outside [a-z0-9-]. Deterministic, so re-deriving a deployed
// store's slug always yields the same value.
func Slugify(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	lastHyphen := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == ' ' || r == '\t' || r == '-' || r == '_':
			if !lastHyphen && b.Len() > 0 {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// ParsePrice coerces a loosely-typed price value (string, number or nil) to a
// non-negative float. Anything unparseable comes back as 0.
func ParsePrice(v any) float64 {
	var price float64
	switch val := v.(type) {
	case float64:
		price = val
	case int:
		price = float64(val)
	case string:
		p, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0
		}
		price = p
	default:
		return 0
	}
	if price < 0 {
		return 0
	}
	return price
}
