package ports

// CredentialStore persists the single opaque bearer credential across
// process restarts. All operations are synchronous and idempotent; Clear
// followed by Get always reports absent. Expiry is never enforced here; an
// expired credential is returned as-is.
type CredentialStore interface {
	Save(credential string) error
	Get() (string, bool)
	Clear() error
}
