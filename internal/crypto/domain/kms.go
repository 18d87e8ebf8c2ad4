package domain

import "context"

// KMSKeeper unwraps key material held by a Key Management Service.
// *secrets.Keeper from gocloud.dev satisfies this interface.
type KMSKeeper interface {
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}
