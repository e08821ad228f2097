package service

// ResetTokenGenerator produces opaque, unguessable reset token values.
type ResetTokenGenerator interface {
	// Generate returns a new token value carrying at least 32 bytes of
	// entropy before encoding.
	Generate() (string, error)
}
