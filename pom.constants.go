package pom

// Format identifies a render target.
type Format string

// Supported render formats
const (
	FormatXML      Format = "xml"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
)

// Format aliases accepted by ParseFormat
const (
	FormatAliasMD  = "md"
	FormatAliasTxt = "txt"
)

// String returns the format name.
func (f Format) String() string {
	return string(f)
}

// Render defaults
const (
	DefaultIndent         = "  "
	DefaultXMLDeclaration = true
)

// XML output vocabulary
const (
	XMLDeclaration   = `<?xml version="1.0" encoding="UTF-8"?>`
	XMLTagRoot       = "prompt"
	XMLTagSection    = "section"
	XMLTagTitle      = "title"
	XMLTagBody       = "body"
	XMLTagBullets    = "bullets"
	XMLTagBullet     = "bullet"
	XMLAttrNumber    = "number"
	XMLEmptyRootElem = "<" + XMLTagRoot + "/>"
)

// Markdown output vocabulary
const (
	MarkdownHeadingMark  = "#"
	MarkdownBaseLevel    = 2
	MarkdownMaxLevel     = 6
	MarkdownBulletPrefix = "- "
	MarkdownBulletIndent = "  "
)

// Text output vocabulary
const (
	TextBulletPrefix = "- "
	NumberTerminator = ". "
)

// Document field names shared by the JSON, YAML and map codecs
const (
	DocFieldTitle       = "title"
	DocFieldBody        = "body"
	DocFieldBullets     = "bullets"
	DocFieldSubsections = "subsections"
)

// Document codec defaults
const (
	JSONIndent = "  "
)

// Log message constants
const (
	LogMsgModelCreated   = "model created"
	LogMsgSectionAdded   = "section added"
	LogMsgBulletsAdded   = "bullets added"
	LogMsgModelAppended  = "model appended as subsections"
	LogMsgRenderStart    = "starting render"
	LogMsgRenderComplete = "render complete"
	LogMsgRenderFailed   = "render failed"
	LogMsgDocumentLoaded = "document loaded"
)

// Log field names
const (
	LogFieldTitle    = "title"
	LogFieldParent   = "parent"
	LogFieldFormat   = "format"
	LogFieldSections = "section_count"
	LogFieldBytes    = "bytes"
	LogFieldBullets  = "bullet_count"
	LogFieldSource   = "source"
)

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyField      = "field"
	MetaKeyValue      = "value"
	MetaKeyReason     = "reason"
	MetaKeyFormat     = "format"
	MetaKeyNumber     = "number"
	MetaKeyOffset     = "offset"
	MetaKeySource     = "source"
	MetaKeyTitle      = "title"
	MetaKeySuggestion = "suggestion"
)

// Field names used in error metadata
const (
	FieldTitle   = "title"
	FieldBody    = "body"
	FieldBullet  = "bullet"
	FieldFormat  = "format"
	FieldModel   = "model"
	FieldSection = "section"
)

// Document source names used in logs and error metadata
const (
	SourceJSON  = "json"
	SourceYAML  = "yaml"
	SourceHJSON = "hjson"
	SourceMap   = "map"
)
