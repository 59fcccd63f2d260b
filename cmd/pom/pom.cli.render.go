package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/itsatony/go-pom"
)

// renderConfig holds parsed render command configuration
type renderConfig struct {
	inputPath     string
	inputFormat   string
	format        string
	outputPath    string
	pretty        bool
	noDeclaration bool
	verbose       bool
}

func runRender(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseRenderFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	source, err := readInput(cfg.inputPath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	logger := newLogger(cfg.verbose, stderr)
	defer func() { _ = logger.Sync() }()

	model, err := loadModel(source, cfg.inputFormat,
		pom.WithLogger(logger),
		pom.WithXMLDeclaration(!cfg.noDeclaration))
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidDocument, err)
		return ExitCodeValidationError
	}

	output, err := renderModel(model, cfg.format)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgRenderFailed, err)
		return ExitCodeError
	}

	if cfg.pretty {
		output, err = renderTerminal(output)
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgPrettyFailed, err)
			return ExitCodeError
		}
	}

	if err := writeOutput(cfg.outputPath, output, stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}

func parseRenderFlags(args []string) (*renderConfig, error) {
	fs := flag.NewFlagSet(CmdNameRender, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &renderConfig{}

	fs.StringVar(&cfg.inputPath, FlagInput, "", "")
	fs.StringVar(&cfg.inputPath, FlagInputShort, "", "")
	fs.StringVar(&cfg.inputFormat, FlagInputFormat, FlagDefaultInputFormat, "")
	fs.StringVar(&cfg.inputFormat, FlagInputFormatShort, FlagDefaultInputFormat, "")
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultRenderFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultRenderFormat, "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")
	fs.BoolVar(&cfg.pretty, FlagPretty, false, "")
	fs.BoolVar(&cfg.pretty, FlagPrettyShort, false, "")
	fs.BoolVar(&cfg.noDeclaration, FlagNoDecl, false, "")
	fs.BoolVar(&cfg.verbose, FlagVerbose, false, "")
	fs.BoolVar(&cfg.verbose, FlagVerboseShort, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Validation
	if cfg.inputPath == "" {
		return nil, errors.New(ErrMsgMissingInput)
	}
	if !validInputFormat(cfg.inputFormat) {
		return nil, errors.New(ErrMsgInvalidInputFormat)
	}
	if cfg.format != ExportFormatJSON && cfg.format != ExportFormatYAML {
		format, err := pom.ParseFormat(cfg.format)
		if err != nil {
			return nil, errors.New(ErrMsgInvalidFormat)
		}
		cfg.format = format.String()
	}
	if cfg.pretty && cfg.format != pom.FormatMarkdown.String() {
		return nil, errors.New(ErrMsgPrettyNeedsMD)
	}

	return cfg, nil
}

// renderModel renders a model in a pom format or exports it as a document
func renderModel(model *pom.PromptObjectModel, format string) (string, error) {
	switch format {
	case ExportFormatJSON:
		data, err := model.ToJSON()
		return string(data), err
	case ExportFormatYAML:
		data, err := model.ToYAML()
		return string(data), err
	default:
		return model.Render(pom.Format(format))
	}
}

// renderTerminal styles markdown for display in a terminal
func renderTerminal(markdown string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	if err != nil {
		return "", err
	}
	return r.Render(markdown)
}
