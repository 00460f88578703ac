// Package domain ttl.go contains TTL bounds and validation.
package domain

// TTL bounds in seconds. Secrets live at least one second and at most one day.
const (
	MinTTLSecs uint32 = 1
	MaxTTLSecs uint32 = 24 * 60 * 60
)

// ValidateTTLSecs checks that ttl is within [MinTTLSecs, MaxTTLSecs].
// Returns ErrTTLInvalid on any violation.
func ValidateTTLSecs(ttl uint32) error {
	if ttl < MinTTLSecs || ttl > MaxTTLSecs {
		return ErrTTLInvalid
	}
	return nil
}

// IsTTLValid is a convenience wrapper returning true if ValidateTTLSecs reports no error.
func IsTTLValid(ttl uint32) bool {
	return ValidateTTLSecs(ttl) == nil
}
