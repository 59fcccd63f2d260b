package pom

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring a PromptObjectModel.
type Option func(*modelConfig)

// modelConfig holds the internal configuration for a PromptObjectModel.
type modelConfig struct {
	indent         string
	xmlDeclaration bool
	logger         *zap.Logger
}

// defaultModelConfig returns the default model configuration.
func defaultModelConfig() *modelConfig {
	return &modelConfig{
		indent:         DefaultIndent,
		xmlDeclaration: DefaultXMLDeclaration,
		logger:         nil,
	}
}

// WithIndent sets the string repeated once per tree level in rendered output.
// Indentation is cosmetic and never carries structure.
// Default: two spaces
func WithIndent(indent string) Option {
	return func(c *modelConfig) {
		c.indent = indent
	}
}

// WithXMLDeclaration controls whether RenderXML emits the <?xml ...?> line.
// Default: true
func WithXMLDeclaration(enabled bool) Option {
	return func(c *modelConfig) {
		c.xmlDeclaration = enabled
	}
}

// WithLogger sets the logger for the model.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *modelConfig) {
		c.logger = logger
	}
}

// SectionOption configures a section at creation time.
type SectionOption func(*sectionConfig)

type sectionConfig struct {
	body    string
	bullets []string
}

// WithBody sets the initial body text of a new section.
func WithBody(body string) SectionOption {
	return func(c *sectionConfig) {
		c.body = body
	}
}

// WithBullets sets the initial bullets of a new section.
func WithBullets(items ...string) SectionOption {
	return func(c *sectionConfig) {
		c.bullets = append(c.bullets, items...)
	}
}
