package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/itsatony/go-dynfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test data constants
const (
	testTemplateContent = "{name:>6}|{score:.2}\n"
	testDataJSON        = `{"name": "Bob", "score": 9.5}`
	testDataYAML        = "name: Ann\nscore: 7\n"
	testExpectedOutput  = "   Bob|9.50"
	testInvalidContent  = "line one\nbad }"
)

// setupTestData creates test files in a temp directory
func setupTestData(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()

	files := map[string]string{
		"template.txt": testTemplateContent,
		"data.json":    testDataJSON,
		"data.yaml":    testDataYAML,
		"invalid.txt":  testInvalidContent,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte(content), FilePermissions))
	}

	return tmpDir
}

func runCLI(args []string, stdin string) (int, string, string) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	exitCode := run(args, strings.NewReader(stdin), stdout, stderr)
	return exitCode, stdout.String(), stderr.String()
}

// ==================== run() dispatch tests ====================

func TestRun_NoArgs_ShowsHelp(t *testing.T) {
	exitCode, stdout, _ := runCLI(nil, "")

	assert.Equal(t, ExitCodeSuccess, exitCode)
	assert.Contains(t, stdout, CLIName)
	assert.Contains(t, stdout, CmdNameRender)
}

func TestRun_HelpForCommand(t *testing.T) {
	tests := []struct {
		name     string
		command  string
		expected string
	}{
		{name: "render", command: CmdNameRender, expected: HelpRenderUsage},
		{name: "validate", command: CmdNameValidate, expected: HelpValidateUsage},
		{name: "version", command: CmdNameVersion, expected: HelpVersionUsage},
		{name: "help", command: CmdNameHelp, expected: HelpHelpUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exitCode, stdout, _ := runCLI([]string{CmdNameHelp, tt.command}, "")
			assert.Equal(t, ExitCodeSuccess, exitCode)
			assert.Contains(t, stdout, tt.expected)
		})
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	exitCode, stdout, _ := runCLI([]string{"unknown"}, "")

	assert.Equal(t, ExitCodeUsageError, exitCode)
	assert.Contains(t, stdout, ErrMsgUnknownCommand)
}

// ==================== version tests ====================

func TestVersion(t *testing.T) {
	exitCode, stdout, _ := runCLI([]string{CmdNameVersion}, "")
	assert.Equal(t, ExitCodeSuccess, exitCode)
	assert.Contains(t, stdout, Version)

	exitCode, stdout, _ = runCLI([]string{CmdNameVersion, "-F", OutputFormatJSON}, "")
	assert.Equal(t, ExitCodeSuccess, exitCode)
	var out versionOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, Version, out.Version)

	exitCode, _, stderr := runCLI([]string{CmdNameVersion, "-F", "xml"}, "")
	assert.Equal(t, ExitCodeUsageError, exitCode)
	assert.Contains(t, stderr, ErrMsgInvalidFormat)
}

// ==================== render tests ====================

func TestRender(t *testing.T) {
	tmpDir := setupTestData(t)
	templatePath := filepath.Join(tmpDir, "template.txt")

	tests := []struct {
		name         string
		args         []string
		stdin        string
		wantExit     int
		wantStdout   string
		wantStderrIn string
	}{
		{
			name:       "inline json object",
			args:       []string{"-t", templatePath, "-d", testDataJSON},
			wantExit:   ExitCodeSuccess,
			wantStdout: testExpectedOutput,
		},
		{
			name:       "json data file",
			args:       []string{"-t", templatePath, "-f", filepath.Join(tmpDir, "data.json")},
			wantExit:   ExitCodeSuccess,
			wantStdout: testExpectedOutput,
		},
		{
			name:       "yaml data file",
			args:       []string{"-t", templatePath, "-f", filepath.Join(tmpDir, "data.yaml")},
			wantExit:   ExitCodeSuccess,
			wantStdout: "   Ann|7",
		},
		{
			name:       "positional array from stdin template",
			args:       []string{"-t", InputSourceStdin, "-d", `[255, 5, 8]`},
			stdin:      "{:#x} {:b} {:>1$}",
			wantExit:   ExitCodeSuccess,
			wantStdout: "0xff 101     8",
		},
		{
			name:       "digit keys bind positions",
			args:       []string{"-t", InputSourceStdin, "-d", `{"0": 42, "1": 7, "unit": "ms"}`},
			stdin:      "{:>4}{unit} {1:b}",
			wantExit:   ExitCodeSuccess,
			wantStdout: "  42ms 111",
		},
		{
			name:       "display width",
			args:       []string{"-t", InputSourceStdin, "-d", `["日本"]`, "--display-width"},
			stdin:      "[{:^6}]",
			wantExit:   ExitCodeSuccess,
			wantStdout: "[ 日本 ]",
		},
		{
			name:         "missing template flag",
			args:         []string{"-d", testDataJSON},
			wantExit:     ExitCodeUsageError,
			wantStderrIn: ErrMsgMissingTemplate,
		},
		{
			name:         "missing template file",
			args:         []string{"-t", filepath.Join(tmpDir, "nope.txt")},
			wantExit:     ExitCodeInputError,
			wantStderrIn: ErrMsgReadFileFailed,
		},
		{
			name:         "invalid json",
			args:         []string{"-t", templatePath, "-d", `{"name":`},
			wantExit:     ExitCodeInputError,
			wantStderrIn: ErrMsgInvalidData,
		},
		{
			name:         "scalar json",
			args:         []string{"-t", templatePath, "-d", `5`},
			wantExit:     ExitCodeInputError,
			wantStderrIn: ErrMsgDataShape,
		},
		{
			name:         "malformed template",
			args:         []string{"-t", filepath.Join(tmpDir, "invalid.txt")},
			wantExit:     ExitCodeValidationError,
			wantStderrIn: ErrMsgParseTemplateFailed,
		},
		{
			name:         "unknown argument",
			args:         []string{"-t", templatePath, "-d", `{"other": 1}`},
			wantExit:     ExitCodeError,
			wantStderrIn: ErrMsgBindFailed,
		},
		{
			name:         "unchecked missing argument",
			args:         []string{"-t", templatePath, "-d", `{"name": "x"}`, "--unchecked"},
			wantExit:     ExitCodeError,
			wantStderrIn: ErrMsgRenderFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exitCode, stdout, stderr := runCLI(append([]string{CmdNameRender}, tt.args...), tt.stdin)

			assert.Equal(t, tt.wantExit, exitCode, stderr)
			if tt.wantStdout != "" {
				assert.Equal(t, tt.wantStdout, stdout)
			}
			if tt.wantStderrIn != "" {
				assert.Contains(t, stderr, tt.wantStderrIn)
			}
		})
	}
}

func TestRender_OutputFile(t *testing.T) {
	tmpDir := setupTestData(t)
	outputPath := filepath.Join(tmpDir, "out.txt")

	exitCode, stdout, stderr := runCLI([]string{
		CmdNameRender,
		"-t", filepath.Join(tmpDir, "template.txt"),
		"-d", testDataJSON,
		"-o", outputPath,
	}, "")

	require.Equal(t, ExitCodeSuccess, exitCode, stderr)
	assert.Empty(t, stdout)

	written, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, testExpectedOutput, string(written))
}

func TestArgumentKey(t *testing.T) {
	tests := []struct {
		input    string
		expected dynfmt.Key
	}{
		{input: "0", expected: dynfmt.Index(0)},
		{input: "12", expected: dynfmt.Index(12)},
		{input: "name", expected: dynfmt.Name("name")},
		{input: "1a", expected: dynfmt.Name("1a")},
		{input: "-1", expected: dynfmt.Name("-1")},
		{input: "", expected: dynfmt.Name("")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, argumentKey(tt.input))
		})
	}
}

// ==================== validate tests ====================

func TestValidate_Text(t *testing.T) {
	exitCode, stdout, _ := runCLI([]string{CmdNameValidate, "-t", InputSourceStdin}, "{name} {:x} {name:?}")

	assert.Equal(t, ExitCodeSuccess, exitCode)
	assert.Contains(t, stdout, ValidationTextSuccess)
	assert.Contains(t, stdout, "3 placeholder(s), 2 argument(s)")
	assert.Contains(t, stdout, "name: {display,debug}")
	assert.Contains(t, stdout, "0: {lower_hex}")
}

func TestValidate_JSON(t *testing.T) {
	tmpDir := setupTestData(t)

	exitCode, stdout, _ := runCLI([]string{CmdNameValidate, "-t", filepath.Join(tmpDir, "template.txt"), "-F", OutputFormatJSON}, "")
	assert.Equal(t, ExitCodeSuccess, exitCode)

	var out validationOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.True(t, out.Valid)
	assert.Equal(t, 2, out.Placeholders)
	assert.Equal(t, []argumentOutput{
		{Key: "name", Forms: "{display}"},
		{Key: "score", Forms: "{display}"},
	}, out.Arguments)
}

func TestValidate_Invalid(t *testing.T) {
	tmpDir := setupTestData(t)
	invalidPath := filepath.Join(tmpDir, "invalid.txt")

	exitCode, stdout, _ := runCLI([]string{CmdNameValidate, "-t", invalidPath, "-F", OutputFormatJSON}, "")
	assert.Equal(t, ExitCodeValidationError, exitCode)

	var out validationOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.False(t, out.Valid)
	require.NotNil(t, out.Error)
	assert.Equal(t, 2, out.Error.Line)
	assert.Equal(t, 5, out.Error.Column)
	assert.Equal(t, 13, out.Error.Offset)

	exitCode, stdout, _ = runCLI([]string{CmdNameValidate, "-t", invalidPath}, "")
	assert.Equal(t, ExitCodeValidationError, exitCode)
	assert.Contains(t, stdout, "at line 2, column 5")
}

func TestValidate_Flags(t *testing.T) {
	exitCode, _, stderr := runCLI([]string{CmdNameValidate}, "")
	assert.Equal(t, ExitCodeUsageError, exitCode)
	assert.Contains(t, stderr, ErrMsgMissingTemplate)

	exitCode, _, _ = runCLI([]string{CmdNameValidate, "-t", "-", "-F", "xml"}, "{}")
	assert.Equal(t, ExitCodeUsageError, exitCode)
}
