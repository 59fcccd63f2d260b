package main

// Command names
const (
	CmdNameRender   = "render"
	CmdNameValidate = "validate"
	CmdNameVersion  = "version"
	CmdNameHelp     = "help"
)

// Flag names - long form
const (
	FlagInput       = "input"
	FlagInputFormat = "input-format"
	FlagOutput      = "output"
	FlagFormat      = "format"
	FlagPretty      = "pretty"
	FlagVerbose     = "verbose"
	FlagNoDecl      = "no-declaration"
)

// Flag names - short form
const (
	FlagInputShort       = "i"
	FlagInputFormatShort = "I"
	FlagOutputShort      = "o"
	FlagFormatShort      = "F"
	FlagPrettyShort      = "p"
	FlagVerboseShort     = "v"
)

// Flag default values
const (
	FlagDefaultOutput       = "-" // stdout
	FlagDefaultFormat       = "text"
	FlagDefaultRenderFormat = "xml"
	FlagDefaultInputFormat  = InputFormatYAML
)

// Output formats for validate and version
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Document export formats accepted by render in addition to pom formats
const (
	ExportFormatJSON = "json"
	ExportFormatYAML = "yaml"
)

// Input document formats
const (
	InputFormatYAML  = "yaml"
	InputFormatJSON  = "json"
	InputFormatHJSON = "hjson"
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages - ALL must be constants
const (
	ErrMsgUnknownCommand     = "unknown command"
	ErrMsgMissingInput       = "input document required"
	ErrMsgInvalidFlags       = "invalid flags"
	ErrMsgInvalidFormat      = "invalid output format"
	ErrMsgInvalidInputFormat = "invalid input format"
	ErrMsgPrettyNeedsMD      = "--pretty requires --format markdown"
	ErrMsgReadFileFailed     = "failed to read file"
	ErrMsgInvalidDocument    = "invalid document"
	ErrMsgRenderFailed       = "render failed"
	ErrMsgPrettyFailed       = "terminal rendering failed"
	ErrMsgWriteOutputFailed  = "failed to write output"
)

// Help text templates
const (
	HelpMainUsage = "go-pom - " + CLIDescription + `

Usage:
    pom <command> [options]

Commands:
    render      Render a prompt document
    validate    Validate a prompt document without rendering
    version     Show version information
    help        Show help for a command

Use "pom help <command>" for more information about a command.`

	HelpRenderUsage = `Render a prompt document

Usage:
    pom render [options]

Options:
    -i, --input <file>          Document file (use "-" for stdin)
    -I, --input-format <fmt>    Document format: yaml, json, hjson (default: yaml)
    -F, --format <fmt>          Output: xml, markdown, text, json, yaml (default: xml)
    -o, --output <file>         Output file (default: stdout)
    -p, --pretty                Style markdown output for the terminal
    --no-declaration            Omit the <?xml ...?> declaration
    -v, --verbose               Log debug output to stderr

Examples:
    pom render -i prompt.yaml
    pom render -i prompt.json -I json -F markdown
    pom render -i prompt.yaml -F markdown --pretty
    cat prompt.yaml | pom render -i - -F text -o prompt.txt`

	HelpValidateUsage = `Validate a prompt document without rendering

Usage:
    pom validate [options]

Options:
    -i, --input <file>          Document file (use "-" for stdin)
    -I, --input-format <fmt>    Document format: yaml, json, hjson (default: yaml)
    -F, --format <format>       Output format: text, json (default: text)

Examples:
    pom validate -i prompt.yaml
    pom validate -i prompt.hjson -I hjson -F json`

	HelpVersionUsage = `Show version information

Usage:
    pom version [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    pom help [command]

Commands:
    render      Show help for render command
    validate    Show help for validate command
    version     Show help for version command`
)

// Version output format templates
const (
	VersionTextTemplate = "go-pom version %s\nCommit: %s\nBranch: %s\nBuilt: %s\nGo: %s"
	VersionUnknown      = "unknown"
)

// Validation output format templates
const (
	ValidationTextSuccess = "Document is valid: %d section(s), %d top-level"
	ValidationTextFailure = "Document is invalid: %v"
)

// CLI metadata
const (
	CLIName        = "pom"
	CLIDescription = "Prompt Object Model CLI"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
)
