package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/itsatony/go-pom"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// readInput reads the whole document from path, or from stdin for "-"
func readInput(path string, stdin io.Reader) ([]byte, error) {
	src := stdin
	if path != InputSourceStdin {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		src = f
	}
	return io.ReadAll(src)
}

// writeOutput writes text terminated by a newline to path, or to stdout for "-"
func writeOutput(path, text string, stdout io.Writer) error {
	if !strings.HasSuffix(text, FmtNewline) {
		text += FmtNewline
	}

	dst := stdout
	if path != FlagDefaultOutput {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FilePermissions)
		if err != nil {
			return err
		}
		defer f.Close()
		dst = f
	}
	_, err := io.WriteString(dst, text)
	return err
}

// validInputFormat reports whether name is a supported document format
func validInputFormat(name string) bool {
	switch name {
	case InputFormatYAML, InputFormatJSON, InputFormatHJSON:
		return true
	}
	return false
}

// loadModel decodes a document in the given format into a model
func loadModel(data []byte, inputFormat string, opts ...pom.Option) (*pom.PromptObjectModel, error) {
	switch inputFormat {
	case InputFormatYAML:
		return pom.FromYAML(data, opts...)
	case InputFormatJSON:
		return pom.FromJSON(data, opts...)
	case InputFormatHJSON:
		return pom.FromHJSON(data, opts...)
	default:
		return nil, errors.New(ErrMsgInvalidInputFormat)
	}
}

// newLogger returns a debug console logger on w when verbose, else a no-op logger
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), zapcore.DebugLevel))
}
