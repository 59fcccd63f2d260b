package internal

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

var xmlReplacer = strings.NewReplacer(
	"&", XMLEscAmp,
	"<", XMLEscLt,
	">", XMLEscGt,
	"\r", XMLEscCR,
)

var markdownReplacer = newMarkdownReplacer()

func newMarkdownReplacer() *strings.Replacer {
	pairs := make([]string, 0, len(MarkdownSpecialChars)*2)
	for _, ch := range MarkdownSpecialChars {
		pairs = append(pairs, string(ch), MarkdownEscapePrefix+string(ch))
	}
	return strings.NewReplacer(pairs...)
}

// EncodingError reports text that cannot be represented in a target format.
type EncodingError struct {
	Message string
	Offset  int
	Rune    rune
}

// Error implements the error interface.
func (e *EncodingError) Error() string {
	return e.Message + " at byte offset " + strconv.Itoa(e.Offset)
}

// CheckUTF8 returns an EncodingError if s is not valid UTF-8.
func CheckUTF8(s string) error {
	if utf8.ValidString(s) {
		return nil
	}
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size <= 1 {
				return &EncodingError{Message: ErrMsgInvalidUTF8, Offset: i, Rune: r}
			}
		}
	}
	return &EncodingError{Message: ErrMsgInvalidUTF8}
}

// CheckXML returns an EncodingError if s is not valid UTF-8 or contains a
// character outside the XML 1.0 Char production.
func CheckXML(s string) error {
	if err := CheckUTF8(s); err != nil {
		return err
	}
	for i, r := range s {
		if !IsXMLChar(r) {
			return &EncodingError{Message: ErrMsgIllegalXMLChar, Offset: i, Rune: r}
		}
	}
	return nil
}

// IsXMLChar reports whether r is allowed in XML 1.0 character data.
func IsXMLChar(r rune) bool {
	switch {
	case r == 0x09 || r == 0x0A || r == 0x0D:
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	return false
}

// EscapeXML escapes the XML markup characters in character data. Carriage
// returns become character references because parsers normalize literal ones.
func EscapeXML(s string) string {
	return xmlReplacer.Replace(s)
}

// EscapeMarkdown backslash-escapes Markdown syntax so s renders as literal
// text. Characters in MarkdownLineStartChars and ordered-list markers are
// only escaped at the start of a line. Leading indentation wider than
// MarkdownMaxIndent, or containing a tab, is dropped so no line becomes an
// indented code block.
func EscapeMarkdown(s string) string {
	s = markdownReplacer.Replace(s)
	if !strings.ContainsAny(s, MarkdownLineStartChars+"0123456789 \t") {
		return s
	}

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = escapeMarkdownLineStart(line)
	}
	return strings.Join(lines, "\n")
}

func escapeMarkdownLineStart(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	lead := line[:len(line)-len(trimmed)]
	if trimmed == "" {
		return line
	}
	if len(lead) > MarkdownMaxIndent || strings.ContainsRune(lead, '\t') {
		lead = ""
	}

	if strings.ContainsRune(MarkdownLineStartChars, rune(trimmed[0])) {
		return lead + MarkdownEscapePrefix + trimmed
	}

	// "12. item" or "3) item" would start an ordered list.
	digits := 0
	for digits < len(trimmed) && trimmed[digits] >= '0' && trimmed[digits] <= '9' {
		digits++
	}
	if digits > 0 && digits < len(trimmed) && (trimmed[digits] == '.' || trimmed[digits] == ')') {
		return lead + trimmed[:digits] + MarkdownEscapePrefix + trimmed[digits:]
	}
	return lead + trimmed
}
