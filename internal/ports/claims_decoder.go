package ports

import "github.com/vivekpraj/website-to-chatbot-cli/internal/domain"

// ClaimsDecoder lifts advisory claims out of a credential. Implementations
// fail soft: malformed input yields nil, never an error.
type ClaimsDecoder interface {
	Decode(credential string) *domain.Claims
}
