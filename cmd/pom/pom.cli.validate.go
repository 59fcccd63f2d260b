package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
)

// validateConfig holds parsed validate command configuration
type validateConfig struct {
	inputPath   string
	inputFormat string
	format      string
}

// validationOutput represents JSON output for validation
type validationOutput struct {
	Valid     bool   `json:"valid"`
	Sections  int    `json:"sections"`
	TopLevel  int    `json:"top_level"`
	ErrorText string `json:"error,omitempty"`
}

func runValidate(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseValidateFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	source, err := readInput(cfg.inputPath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	output := validationOutput{Valid: true}
	model, err := loadModel(source, cfg.inputFormat)
	if err == nil {
		// A document that loads but cannot be rendered is still unusable.
		_, err = model.RenderXML()
	}
	if err != nil {
		output.Valid = false
		output.ErrorText = err.Error()
	} else {
		output.Sections = model.SectionCount()
		output.TopLevel = model.Len()
	}

	if cfg.format == OutputFormatJSON {
		jsonBytes, _ := json.MarshalIndent(output, "", "  ")
		fmt.Fprintln(stdout, string(jsonBytes))
	} else if output.Valid {
		fmt.Fprintf(stdout, ValidationTextSuccess+FmtNewline, output.Sections, output.TopLevel)
	} else {
		fmt.Fprintf(stdout, ValidationTextFailure+FmtNewline, output.ErrorText)
	}

	if !output.Valid {
		return ExitCodeValidationError
	}
	return ExitCodeSuccess
}

func parseValidateFlags(args []string) (*validateConfig, error) {
	fs := flag.NewFlagSet(CmdNameValidate, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &validateConfig{}

	fs.StringVar(&cfg.inputPath, FlagInput, "", "")
	fs.StringVar(&cfg.inputPath, FlagInputShort, "", "")
	fs.StringVar(&cfg.inputFormat, FlagInputFormat, FlagDefaultInputFormat, "")
	fs.StringVar(&cfg.inputFormat, FlagInputFormatShort, FlagDefaultInputFormat, "")
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.inputPath == "" {
		return nil, errors.New(ErrMsgMissingInput)
	}
	if !validInputFormat(cfg.inputFormat) {
		return nil, errors.New(ErrMsgInvalidInputFormat)
	}
	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidFormat)
	}

	return cfg, nil
}
