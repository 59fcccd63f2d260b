package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test data constants
const (
	testDocumentYAML = `- title: Objective
  body: You are an AI assistant built to help users draft professional emails.
  bullets:
    - Listen carefully to the user's requirements
  subsections:
    - title: Implementation Details
      bullets:
        - Keep paragraphs short and focused
- title: Tone
  body: Friendly
`
	testDocumentJSON  = `[{"title": "Objective", "body": "Be helpful."}]`
	testDocumentHJSON = `[
  {
    # hand-written prompt
    title: Objective
    body: "Be helpful."
  }
]`
	testInvalidDocument = `- title: "   "
  body: no title
`
	testUnknownKeyDocument = `- title: Objective
  colour: blue
`
	testExpectedXML = `<?xml version="1.0" encoding="UTF-8"?>
<prompt>
  <section number="1">
    <title>Objective</title>
    <body>You are an AI assistant built to help users draft professional emails.</body>
    <bullets>
      <bullet>Listen carefully to the user's requirements</bullet>
    </bullets>
    <section number="1.1">
      <title>Implementation Details</title>
      <bullets>
        <bullet>Keep paragraphs short and focused</bullet>
      </bullets>
    </section>
  </section>
  <section number="2">
    <title>Tone</title>
    <body>Friendly</body>
  </section>
</prompt>
`
)

// setupTestData creates test documents in a temp directory
func setupTestData(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()

	files := map[string]string{
		"prompt.yaml":  testDocumentYAML,
		"prompt.json":  testDocumentJSON,
		"prompt.hjson": testDocumentHJSON,
		"invalid.yaml": testInvalidDocument,
		"unknown.yaml": testUnknownKeyDocument,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte(content), FilePermissions))
	}

	return tmpDir
}

// ==================== run() dispatch tests ====================

func TestRun_NoArgs_ShowsHelp(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := run(nil, strings.NewReader(""), stdout, stderr)

	assert.Equal(t, ExitCodeSuccess, exitCode)
	assert.Contains(t, stdout.String(), CLIName)
	assert.Contains(t, stdout.String(), CmdNameRender)
}

func TestRun_UnknownCommand(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := run([]string{"unknown"}, strings.NewReader(""), stdout, stderr)

	assert.Equal(t, ExitCodeUsageError, exitCode)
	assert.Contains(t, stdout.String(), ErrMsgUnknownCommand)
}

func TestRun_HelpForCommands(t *testing.T) {
	tests := []struct {
		cmd      string
		contains string
	}{
		{CmdNameRender, "--input-format"},
		{CmdNameValidate, "Validate a prompt document"},
		{CmdNameVersion, "Show version information"},
		{CmdNameHelp, "Show help for a command"},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			stdout := &bytes.Buffer{}
			exitCode := run([]string{CmdNameHelp, tt.cmd}, strings.NewReader(""), stdout, &bytes.Buffer{})

			assert.Equal(t, ExitCodeSuccess, exitCode)
			assert.Contains(t, stdout.String(), tt.contains)
		})
	}
}

// ==================== render tests ====================

func TestRender_XMLFromFile(t *testing.T) {
	tmpDir := setupTestData(t)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := run([]string{CmdNameRender, "-i", filepath.Join(tmpDir, "prompt.yaml")},
		strings.NewReader(""), stdout, stderr)

	assert.Equal(t, ExitCodeSuccess, exitCode, stderr.String())
	assert.Equal(t, testExpectedXML, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRender_FromStdin(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := runRender([]string{"-i", InputSourceStdin, "-F", "text"},
		strings.NewReader(testDocumentYAML), stdout, stderr)

	assert.Equal(t, ExitCodeSuccess, exitCode, stderr.String())
	assert.True(t, strings.HasPrefix(stdout.String(), "1. Objective\n"))
	assert.Contains(t, stdout.String(), "  1.1. Implementation Details\n")
	assert.Contains(t, stdout.String(), "\n\n2. Tone\n  Friendly\n")
}

func TestRender_Formats(t *testing.T) {
	tmpDir := setupTestData(t)
	input := filepath.Join(tmpDir, "prompt.yaml")

	tests := []struct {
		name     string
		format   string
		contains string
	}{
		{"markdown", "markdown", "### 1.1. Implementation Details"},
		{"markdown alias", "md", "## 2. Tone"},
		{"text", "text", "1.1. Implementation Details"},
		{"json export", ExportFormatJSON, `"title": "Implementation Details"`},
		{"yaml export", ExportFormatYAML, "- title: Tone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			exitCode := runRender([]string{"-i", input, "--format", tt.format},
				strings.NewReader(""), stdout, stderr)

			assert.Equal(t, ExitCodeSuccess, exitCode, stderr.String())
			assert.Contains(t, stdout.String(), tt.contains)
			assert.True(t, strings.HasSuffix(stdout.String(), FmtNewline))
		})
	}
}

func TestRender_JSONExportIsValidJSON(t *testing.T) {
	tmpDir := setupTestData(t)
	stdout := &bytes.Buffer{}

	exitCode := runRender([]string{"-i", filepath.Join(tmpDir, "prompt.yaml"), "-F", ExportFormatJSON},
		strings.NewReader(""), stdout, &bytes.Buffer{})
	require.Equal(t, ExitCodeSuccess, exitCode)

	var docs []map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &docs))
	require.Len(t, docs, 2)
	assert.Equal(t, "Objective", docs[0]["title"])
	assert.Equal(t, "Tone", docs[1]["title"])
}

func TestRender_InputFormats(t *testing.T) {
	tmpDir := setupTestData(t)

	tests := []struct {
		file   string
		format string
	}{
		{"prompt.json", InputFormatJSON},
		{"prompt.hjson", InputFormatHJSON},
		{"prompt.json", InputFormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.file+"/"+tt.format, func(t *testing.T) {
			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			exitCode := runRender([]string{"-i", filepath.Join(tmpDir, tt.file), "-I", tt.format, "-F", "text"},
				strings.NewReader(""), stdout, stderr)

			assert.Equal(t, ExitCodeSuccess, exitCode, stderr.String())
			assert.Equal(t, "1. Objective\n  Be helpful.\n", stdout.String())
		})
	}
}

func TestRender_NoDeclaration(t *testing.T) {
	stdout := &bytes.Buffer{}

	exitCode := runRender([]string{"-i", "-", "--no-declaration"},
		strings.NewReader(testDocumentJSON), stdout, &bytes.Buffer{})

	assert.Equal(t, ExitCodeSuccess, exitCode)
	assert.True(t, strings.HasPrefix(stdout.String(), "<prompt>\n"))
}

func TestRender_EmptyDocument(t *testing.T) {
	stdout := &bytes.Buffer{}

	exitCode := runRender([]string{"-i", "-", "-I", InputFormatJSON},
		strings.NewReader("[]"), stdout, &bytes.Buffer{})

	assert.Equal(t, ExitCodeSuccess, exitCode)
	assert.Contains(t, stdout.String(), "<prompt/>")
}

func TestRender_ToOutputFile(t *testing.T) {
	tmpDir := setupTestData(t)
	outPath := filepath.Join(tmpDir, "out.xml")
	stdout := &bytes.Buffer{}

	exitCode := runRender([]string{"-i", filepath.Join(tmpDir, "prompt.yaml"), "-o", outPath},
		strings.NewReader(""), stdout, &bytes.Buffer{})

	require.Equal(t, ExitCodeSuccess, exitCode)
	assert.Empty(t, stdout.String())
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, testExpectedXML, string(data))
}

func TestRender_Pretty(t *testing.T) {
	tmpDir := setupTestData(t)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := runRender([]string{"-i", filepath.Join(tmpDir, "prompt.yaml"), "-F", "markdown", "--pretty"},
		strings.NewReader(""), stdout, stderr)

	assert.Equal(t, ExitCodeSuccess, exitCode, stderr.String())
	assert.Contains(t, stdout.String(), "Objective")
}

func TestRender_Verbose_LogsToStderr(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := runRender([]string{"-i", "-", "-v"},
		strings.NewReader(testDocumentYAML), stdout, stderr)

	assert.Equal(t, ExitCodeSuccess, exitCode)
	assert.Contains(t, stderr.String(), "DEBUG")
}

func TestRender_Errors(t *testing.T) {
	tmpDir := setupTestData(t)

	tests := []struct {
		name     string
		args     []string
		exitCode int
		stderr   string
	}{
		{"missing input", []string{}, ExitCodeUsageError, ErrMsgMissingInput},
		{"bad format", []string{"-i", "-", "-F", "html"}, ExitCodeUsageError, ErrMsgInvalidFormat},
		{"bad input format", []string{"-i", "-", "-I", "toml"}, ExitCodeUsageError, ErrMsgInvalidInputFormat},
		{"pretty without markdown", []string{"-i", "-", "--pretty"}, ExitCodeUsageError, ErrMsgPrettyNeedsMD},
		{"unknown flag", []string{"--template", "x"}, ExitCodeUsageError, ErrMsgInvalidFlags},
		{"missing file", []string{"-i", filepath.Join(tmpDir, "nope.yaml")}, ExitCodeInputError, ErrMsgReadFileFailed},
		{"blank title", []string{"-i", filepath.Join(tmpDir, "invalid.yaml")}, ExitCodeValidationError, ErrMsgInvalidDocument},
		{"unknown key", []string{"-i", filepath.Join(tmpDir, "unknown.yaml")}, ExitCodeValidationError, ErrMsgInvalidDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			exitCode := runRender(tt.args, strings.NewReader(testDocumentYAML), stdout, stderr)

			assert.Equal(t, tt.exitCode, exitCode)
			assert.Contains(t, stderr.String(), tt.stderr)
			assert.Empty(t, stdout.String())
		})
	}
}

func TestRender_RenderErrorExitCode(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	// U+0001 decodes fine from JSON but cannot appear in XML 1.0.
	exitCode := runRender([]string{"-i", "-", "-I", InputFormatJSON},
		strings.NewReader(`[{"title": "Bad \u0001 title"}]`), stdout, stderr)

	assert.Equal(t, ExitCodeError, exitCode)
	assert.Contains(t, stderr.String(), ErrMsgRenderFailed)
}

// ==================== validate tests ====================

func TestValidate_Valid(t *testing.T) {
	tmpDir := setupTestData(t)
	stdout := &bytes.Buffer{}

	exitCode := run([]string{CmdNameValidate, "-i", filepath.Join(tmpDir, "prompt.yaml")},
		strings.NewReader(""), stdout, &bytes.Buffer{})

	assert.Equal(t, ExitCodeSuccess, exitCode)
	assert.Equal(t, "Document is valid: 3 section(s), 2 top-level\n", stdout.String())
}

func TestValidate_Invalid(t *testing.T) {
	tmpDir := setupTestData(t)
	stdout := &bytes.Buffer{}

	exitCode := runValidate([]string{"-i", filepath.Join(tmpDir, "invalid.yaml")},
		strings.NewReader(""), stdout, &bytes.Buffer{})

	assert.Equal(t, ExitCodeValidationError, exitCode)
	assert.True(t, strings.HasPrefix(stdout.String(), "Document is invalid:"))
}

func TestValidate_JSONOutput(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		stdout := &bytes.Buffer{}

		exitCode := runValidate([]string{"-i", "-", "-F", OutputFormatJSON},
			strings.NewReader(testDocumentYAML), stdout, &bytes.Buffer{})
		require.Equal(t, ExitCodeSuccess, exitCode)

		var out validationOutput
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
		assert.True(t, out.Valid)
		assert.Equal(t, 3, out.Sections)
		assert.Equal(t, 2, out.TopLevel)
		assert.Empty(t, out.ErrorText)
	})

	t.Run("invalid", func(t *testing.T) {
		stdout := &bytes.Buffer{}

		exitCode := runValidate([]string{"-i", "-", "-I", InputFormatJSON, "-F", OutputFormatJSON},
			strings.NewReader(`[{"title": "Bad \u0001"}]`), stdout, &bytes.Buffer{})
		require.Equal(t, ExitCodeValidationError, exitCode)

		var out validationOutput
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
		assert.False(t, out.Valid)
		assert.NotEmpty(t, out.ErrorText)
	})
}

func TestValidate_FlagErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing input", []string{}},
		{"bad output format", []string{"-i", "-", "-F", "xml"}},
		{"bad input format", []string{"-i", "-", "-I", "ini"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stderr := &bytes.Buffer{}
			exitCode := runValidate(tt.args, strings.NewReader(""), &bytes.Buffer{}, stderr)

			assert.Equal(t, ExitCodeUsageError, exitCode)
			assert.Contains(t, stderr.String(), ErrMsgInvalidFlags)
		})
	}
}

// ==================== version tests ====================

func TestVersion_Text(t *testing.T) {
	stdout := &bytes.Buffer{}

	exitCode := run([]string{CmdNameVersion}, strings.NewReader(""), stdout, &bytes.Buffer{})

	assert.Equal(t, ExitCodeSuccess, exitCode)
	assert.Contains(t, stdout.String(), "go-pom version")
	assert.Contains(t, stdout.String(), "Go: ")
}

func TestVersion_JSON(t *testing.T) {
	stdout := &bytes.Buffer{}

	exitCode := runVersion([]string{"-F", OutputFormatJSON}, stdout, &bytes.Buffer{})
	require.Equal(t, ExitCodeSuccess, exitCode)

	var info versionInfo
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &info))
	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.GoVersion)
}

func TestVersion_InvalidFormat(t *testing.T) {
	stderr := &bytes.Buffer{}

	exitCode := runVersion([]string{"-F", "xml"}, &bytes.Buffer{}, stderr)

	assert.Equal(t, ExitCodeUsageError, exitCode)
	assert.Contains(t, stderr.String(), ErrMsgInvalidFlags)
}

func TestCollectVersionInfo(t *testing.T) {
	t.Run("reads versions file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "versions.yaml")
		content := "project:\n  version: 9.9.9\ngit:\n  commit: abc123\n  branch: release\nbuild:\n  time: today\n"
		require.NoError(t, os.WriteFile(path, []byte(content), FilePermissions))

		info := collectVersionInfo(path)

		assert.Equal(t, "9.9.9", info.Version)
		assert.Equal(t, "abc123", info.Commit)
		assert.Equal(t, "release", info.Branch)
		assert.Equal(t, "today", info.BuildTime)
	})

	t.Run("missing file falls back to library version", func(t *testing.T) {
		info := collectVersionInfo(filepath.Join(t.TempDir(), versionsFileName))

		assert.NotEmpty(t, info.Version)
		assert.NotEqual(t, VersionUnknown, info.Version)
		assert.Equal(t, VersionUnknown, info.Branch)
	})
	t.Run("placeholders keep build info", func(t *testing.T) {
		info := &versionInfo{Version: "1.0.0", Commit: "abc123", Branch: "main", BuildTime: "today"}
		vf := &versionsFile{}
		vf.Project.Version = "2.0.0"
		vf.Git.Commit = VersionUnknown
		vf.Build.Time = VersionUnknown

		applyVersionsFile(info, vf)

		assert.Equal(t, "2.0.0", info.Version)
		assert.Equal(t, "abc123", info.Commit)
		assert.Equal(t, "main", info.Branch)
		assert.Equal(t, "today", info.BuildTime)
	})

	t.Run("parent directory file is ignored", func(t *testing.T) {
		parent := t.TempDir()
		content := "project:\n  version: 9.9.9\n"
		require.NoError(t, os.WriteFile(filepath.Join(parent, versionsFileName), []byte(content), FilePermissions))
		child := filepath.Join(parent, "child")
		require.NoError(t, os.Mkdir(child, 0o755))
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(child))
		t.Cleanup(func() { _ = os.Chdir(wd) })

		info := collectVersionInfo(versionsFileName)

		assert.NotEqual(t, "9.9.9", info.Version)
	})
}

// ==================== input/output tests ====================

func TestWriteOutput(t *testing.T) {
	t.Run("stdout gets a trailing newline", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		require.NoError(t, writeOutput(FlagDefaultOutput, "text", stdout))
		assert.Equal(t, "text\n", stdout.String())
	})

	t.Run("existing newline is kept", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		require.NoError(t, writeOutput(FlagDefaultOutput, "a: b\n", stdout))
		assert.Equal(t, "a: b\n", stdout.String())
	})

	t.Run("file is truncated", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		require.NoError(t, os.WriteFile(path, []byte("much longer old content"), FilePermissions))

		require.NoError(t, writeOutput(path, "new", &bytes.Buffer{}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new\n", string(data))
	})
}

func TestReadInput(t *testing.T) {
	data, err := readInput(InputSourceStdin, strings.NewReader("from stdin"))
	require.NoError(t, err)
	assert.Equal(t, "from stdin", string(data))

	_, err = readInput(filepath.Join(t.TempDir(), "missing.yaml"), strings.NewReader(""))
	assert.Error(t, err)
}
