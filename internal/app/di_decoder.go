package app

import (
	"fmt"

	decoderUseCase "github.com/allisson/secure/internal/decoder/usecase"
	propertiesService "github.com/allisson/secure/internal/properties/service"
)

// PropertiesParser returns the properties parser.
func (c *Container) PropertiesParser() propertiesService.PropertiesParser {
	c.propertiesParserInit.Do(func() {
		c.propertiesParser = propertiesService.NewParser()
	})
	return c.propertiesParser
}

// DecoderUseCase returns the decoder use case.
func (c *Container) DecoderUseCase() (decoderUseCase.DecoderUseCase, error) {
	var err error
	c.decoderUseCaseInit.Do(func() {
		c.decoderUseCase, err = c.initDecoderUseCase()
		if err != nil {
			c.setInitError("decoderUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("decoderUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.decoderUseCase, nil
}

// FileLoader returns the file loader.
func (c *Container) FileLoader() (decoderUseCase.FileLoader, error) {
	var err error
	c.fileLoaderInit.Do(func() {
		c.fileLoader, err = c.initFileLoader()
		if err != nil {
			c.setInitError("fileLoader", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("fileLoader"); storedErr != nil {
		return nil, storedErr
	}
	return c.fileLoader, nil
}

// initDecoderUseCase creates the decoder use case with all its dependencies.
func (c *Container) initDecoderUseCase() (decoderUseCase.DecoderUseCase, error) {
	baseUseCase := decoderUseCase.NewDecoderUseCase(
		c.KeyResolver(),
		c.CipherCodec(),
		c.PropertiesParser(),
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for decoder use case: %w", err)
		}
		return decoderUseCase.NewDecoderUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initFileLoader creates the file loader on top of the undecorated decoder, so
// a file load is recorded once as load_properties or load_text.
func (c *Container) initFileLoader() (decoderUseCase.FileLoader, error) {
	baseLoader := decoderUseCase.NewFileLoader(decoderUseCase.NewDecoderUseCase(
		c.KeyResolver(),
		c.CipherCodec(),
		c.PropertiesParser(),
	))

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for file loader: %w", err)
		}
		return decoderUseCase.NewFileLoaderWithMetrics(baseLoader, businessMetrics), nil
	}

	return baseLoader, nil
}
