package pom

import (
	"strings"

	"github.com/itsatony/go-pom/internal"
	"go.uber.org/zap"
)

// renderer is a single-use visitor that accumulates one rendering.
type renderer interface {
	internal.Visitor
	finish() string
}

// ParseFormat converts a format name into a Format.
// Names are matched case-insensitively; "md" and "txt" are accepted aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case string(FormatXML):
		return FormatXML, nil
	case string(FormatMarkdown), FormatAliasMD:
		return FormatMarkdown, nil
	case string(FormatText), FormatAliasTxt:
		return FormatText, nil
	default:
		return "", NewUnsupportedFormatError(name)
	}
}

// SupportedFormats returns every format Render accepts.
func SupportedFormats() []Format {
	return []Format{FormatXML, FormatMarkdown, FormatText}
}

// Render serializes the model in the given format. Numbering paths are
// computed from the current structure on every call, and all user text is
// escaped for the target format at emission time. Rendering never mutates
// the model, so repeated calls on an unchanged model return identical output.
func (m *PromptObjectModel) Render(format Format) (string, error) {
	r, err := m.newRenderer(format)
	if err != nil {
		return "", err
	}

	m.logger.Debug(LogMsgRenderStart,
		zap.String(LogFieldFormat, format.String()),
		zap.Int(LogFieldSections, m.tree.Len()))

	if err := internal.Walk(m.tree, r); err != nil {
		m.logger.Debug(LogMsgRenderFailed,
			zap.String(LogFieldFormat, format.String()),
			zap.Error(err))
		return "", err
	}

	out := r.finish()
	m.logger.Debug(LogMsgRenderComplete,
		zap.String(LogFieldFormat, format.String()),
		zap.Int(LogFieldBytes, len(out)))
	return out, nil
}

// RenderXML renders the model in the XML reference format.
func (m *PromptObjectModel) RenderXML() (string, error) {
	return m.Render(FormatXML)
}

// RenderMarkdown renders the model as Markdown with numbered headings.
func (m *PromptObjectModel) RenderMarkdown() (string, error) {
	return m.Render(FormatMarkdown)
}

// RenderText renders the model as indented plain text.
func (m *PromptObjectModel) RenderText() (string, error) {
	return m.Render(FormatText)
}

func (m *PromptObjectModel) newRenderer(format Format) (renderer, error) {
	switch format {
	case FormatXML:
		return newXMLRenderer(m.config, m.tree.Len() == 0), nil
	case FormatMarkdown:
		return newMarkdownRenderer(), nil
	case FormatText:
		return newTextRenderer(m.config), nil
	default:
		return nil, NewUnsupportedFormatError(format.String())
	}
}

// checkNode validates every user-supplied string of a node with check and
// converts the first failure into a render error.
func checkNode(format Format, v internal.Visit, check func(string) error) error {
	if err := check(v.Node.Title); err != nil {
		return NewRenderError(format, v.Number(), FieldTitle, err)
	}
	if err := check(v.Node.Body); err != nil {
		return NewRenderError(format, v.Number(), FieldBody, err)
	}
	for _, item := range v.Node.Bullets {
		if err := check(item); err != nil {
			return NewRenderError(format, v.Number(), FieldBullet, err)
		}
	}
	return nil
}
