// Package token extracts display claims from the bearer credential without
// verifying it. This is UX convenience only, not a security boundary: real
// authorization is enforced by the backend on every privileged call.
package token

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/vivekpraj/website-to-chatbot-cli/internal/domain"
	"github.com/vivekpraj/website-to-chatbot-cli/internal/ports"
)

// Decoder adapts DecodeClaims to the ports.ClaimsDecoder interface.
type Decoder struct{}

var _ ports.ClaimsDecoder = Decoder{}

func (Decoder) Decode(credential string) *domain.Claims {
	return DecodeClaims(credential)
}

// DecodeClaims parses the compact-serialized credential and lifts out the
// advisory claims. It fails soft: any malformed input (wrong segment count,
// undecodable payload, non-object body) yields nil rather than an error.
// The signature segment is never checked and expiry is not enforced.
func DecodeClaims(credential string) *domain.Claims {
	if credential == "" {
		return nil
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(credential, jwt.MapClaims{})
	if err != nil {
		return nil
	}

	payload, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}

	claims := &domain.Claims{}

	if role, ok := payload["role"].(string); ok {
		claims.Role = domain.Role(role)
	}
	if userID, ok := numericClaim(payload["user_id"]); ok {
		claims.UserID = domain.UserID(userID)
	}
	if exp, err := payload.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	return claims
}

// numericClaim tolerates the number representations json decoding produces.
func numericClaim(value any) (int64, bool) {
	switch v := value.(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	default:
		return 0, false
	}
}
