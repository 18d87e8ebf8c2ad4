package app

import (
	cryptoDomain "github.com/allisson/secure/internal/crypto/domain"
	cryptoService "github.com/allisson/secure/internal/crypto/service"
)

// AEADManager returns the AEAD manager service.
func (c *Container) AEADManager() cryptoService.AEADManager {
	c.aeadManagerInit.Do(func() {
		c.aeadManager = cryptoService.NewAEADManager()
	})
	return c.aeadManager
}

// KMSService returns the KMS service.
func (c *Container) KMSService() cryptoService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = cryptoService.NewKMSService()
	})
	return c.kmsService
}

// KeyResolver returns the key resolver bound to the configured environment key.
func (c *Container) KeyResolver() cryptoService.KeyResolver {
	c.keyResolverInit.Do(func() {
		c.keyResolver = c.initKeyResolver()
	})
	return c.keyResolver
}

// CipherCodec returns the payload cipher codec.
func (c *Container) CipherCodec() cryptoService.CipherCodec {
	c.cipherCodecInit.Do(func() {
		c.cipherCodec = cryptoService.NewCipherCodec(c.AEADManager())
	})
	return c.cipherCodec
}

// initKeyResolver creates the key resolver from the configuration snapshot.
func (c *Container) initKeyResolver() cryptoService.KeyResolver {
	source := cryptoService.KeySource{
		Value:     c.config.SecureKey,
		Encoding:  cryptoDomain.KeyEncoding(c.config.SecureKeyEncoding),
		KMSKeyURI: c.config.KMSKeyURI,
	}

	var kmsService cryptoService.KMSService
	if source.KMSKeyURI != "" {
		kmsService = c.KMSService()
	}

	return cryptoService.NewKeyResolver(source, kmsService)
}
