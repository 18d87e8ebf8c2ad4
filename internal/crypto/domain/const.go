package domain

// Algorithm represents the cryptographic algorithm used to seal a payload.
//
// All supported algorithms provide Authenticated Encryption with Associated Data (AEAD),
// so a payload either opens to exactly the sealed plaintext or fails authentication.
//
// Algorithm selection guidelines:
//   - AESGCM is the default and accepts 128, 192 or 256-bit keys
//   - ChaCha20 suits platforms without AES-NI and requires a 256-bit key
//   - XChaCha20 uses a 24-byte nonce and requires a 256-bit key
type Algorithm string

const (
	// AESGCM represents the AES-GCM authenticated encryption algorithm.
	//
	// Key features:
	//   - 16, 24 or 32-byte key (AES-128, AES-192, AES-256)
	//   - 12-byte nonce (96 bits)
	//   - 16-byte authentication tag
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 represents the ChaCha20-Poly1305 authenticated encryption algorithm.
	//
	// Key features:
	//   - 32-byte key
	//   - 12-byte nonce (96 bits)
	//   - 16-byte authentication tag
	ChaCha20 Algorithm = "chacha20-poly1305"

	// XChaCha20 represents the XChaCha20-Poly1305 authenticated encryption algorithm.
	//
	// Key features:
	//   - 32-byte key
	//   - 24-byte nonce (192 bits)
	//   - 16-byte authentication tag
	XChaCha20 Algorithm = "xchacha20-poly1305"
)

// PayloadVersion is the first byte of every encrypted payload. It selects the
// algorithm and therefore the nonce length of the remaining layout.
type PayloadVersion byte

const (
	// VersionAESGCM marks a payload sealed with AES-GCM.
	VersionAESGCM PayloadVersion = 0x01
	// VersionChaCha20 marks a payload sealed with ChaCha20-Poly1305.
	VersionChaCha20 PayloadVersion = 0x02
	// VersionXChaCha20 marks a payload sealed with XChaCha20-Poly1305.
	VersionXChaCha20 PayloadVersion = 0x03
)

const (
	// TagSize is the authentication tag length shared by every supported algorithm.
	TagSize = 16

	// VersionSize is the length of the version header.
	VersionSize = 1
)

// payloadLayout describes the fixed parts of a payload for one version.
type payloadLayout struct {
	algorithm Algorithm
	nonceSize int
}

var layouts = map[PayloadVersion]payloadLayout{
	VersionAESGCM:    {algorithm: AESGCM, nonceSize: 12},
	VersionChaCha20:  {algorithm: ChaCha20, nonceSize: 12},
	VersionXChaCha20: {algorithm: XChaCha20, nonceSize: 24},
}

// Algorithm returns the algorithm bound to the version and whether the version is known.
func (v PayloadVersion) Algorithm() (Algorithm, bool) {
	l, ok := layouts[v]
	return l.algorithm, ok
}

// NonceSize returns the nonce length for the version, or zero if the version is unknown.
func (v PayloadVersion) NonceSize() int {
	return layouts[v].nonceSize
}

// MinSize returns the smallest structurally valid payload for the version:
// header, nonce and tag with an empty ciphertext.
func (v PayloadVersion) MinSize() int {
	return VersionSize + v.NonceSize() + TagSize
}

// IsKnown reports whether the version byte is supported.
func (v PayloadVersion) IsKnown() bool {
	_, ok := layouts[v]
	return ok
}

// VersionFor returns the payload version that seals with the given algorithm.
func VersionFor(alg Algorithm) (PayloadVersion, bool) {
	for v, l := range layouts {
		if l.algorithm == alg {
			return v, true
		}
	}
	return 0, false
}
