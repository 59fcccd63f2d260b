package internal

// NoParent is the parent ID used when appending a top-level node.
const NoParent NodeID = -1

// Numbering path constants
const (
	NumberSeparator = "."
	NumberFirst     = 1
)

// Error message constants
const (
	ErrMsgInvalidUTF8    = "text is not valid UTF-8"
	ErrMsgIllegalXMLChar = "character not allowed in XML 1.0"
)

// Log message constants
const (
	LogMsgTreeCreated = "tree created"
	LogMsgNodeAdded   = "node added"
	LogMsgWalkStart   = "starting walk"
	LogMsgWalkEnd     = "walk complete"
)

// Log field names
const (
	LogFieldNodeID   = "node_id"
	LogFieldParentID = "parent_id"
	LogFieldNodes    = "node_count"
	LogFieldRoots    = "root_count"
	LogFieldVisited  = "visited"
)

// XML escape replacements
const (
	XMLEscAmp = "&amp;"
	XMLEscLt  = "&lt;"
	XMLEscGt  = "&gt;"
	XMLEscCR  = "&#xD;"
)

// MarkdownSpecialChars are the ASCII punctuation characters backslash-escaped
// anywhere in Markdown output. All are CommonMark escapable characters.
const MarkdownSpecialChars = "\\`*_[]<>#|&~"

// MarkdownEscapePrefix precedes an escaped Markdown character.
const MarkdownEscapePrefix = "\\"

// MarkdownLineStartChars are escaped only when they open a line, where they
// would otherwise start a list item or a setext heading underline.
const MarkdownLineStartChars = "-+="

// MarkdownMaxIndent is the widest leading indentation kept on a line.
// Four columns or a tab would open an indented code block.
const MarkdownMaxIndent = 3
