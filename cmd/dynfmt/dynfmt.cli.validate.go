package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-dynfmt"
)

// validateConfig holds parsed validate command configuration
type validateConfig struct {
	templatePath string
	format       string
}

// validationOutput represents JSON output for validation
type validationOutput struct {
	Valid        bool               `json:"valid"`
	Placeholders int                `json:"placeholders"`
	Arguments    []argumentOutput   `json:"arguments,omitempty"`
	Error        *syntaxErrorOutput `json:"error,omitempty"`
}

type argumentOutput struct {
	Key   string `json:"key"`
	Forms string `json:"forms"`
}

type syntaxErrorOutput struct {
	Message string `json:"message"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Offset  int    `json:"offset"`
}

func runValidate(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseValidateFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingTemplate, err)
		return ExitCodeUsageError
	}

	templateSource, err := readInput(cfg.templatePath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	tmpl, err := dynfmt.Parse(strings.TrimSuffix(string(templateSource), FmtNewline))
	output := buildValidationOutput(tmpl, err)

	if cfg.format == OutputFormatJSON {
		return outputValidationJSON(output, stdout)
	}
	return outputValidationText(output, stdout)
}

func buildValidationOutput(tmpl *dynfmt.Template, err error) validationOutput {
	if err != nil {
		return validationOutput{Error: syntaxErrorFrom(err)}
	}

	output := validationOutput{
		Valid:        true,
		Placeholders: tmpl.PlaceholderCount(),
	}
	for _, key := range tmpl.Keys() {
		forms, _ := tmpl.Requirements(key)
		output.Arguments = append(output.Arguments, argumentOutput{
			Key:   key.String(),
			Forms: forms.String(),
		})
	}
	return output
}

func syntaxErrorFrom(err error) *syntaxErrorOutput {
	out := &syntaxErrorOutput{Message: err.Error()}

	var customErr *cuserr.CustomError
	if !errors.As(err, &customErr) {
		return out
	}
	if reason, ok := customErr.GetMetadata(dynfmt.MetaKeyReason); ok {
		out.Message = reason
	}
	out.Line = metadataInt(customErr, dynfmt.MetaKeyLine)
	out.Column = metadataInt(customErr, dynfmt.MetaKeyColumn)
	out.Offset = metadataInt(customErr, dynfmt.MetaKeyOffset)
	return out
}

func metadataInt(err *cuserr.CustomError, key string) int {
	value, ok := err.GetMetadata(key)
	if !ok {
		return 0
	}
	n, _ := strconv.Atoi(value)
	return n
}

func parseValidateFlags(args []string) (*validateConfig, error) {
	fs := flag.NewFlagSet(CmdNameValidate, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &validateConfig{}

	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "")
	fs.StringVar(&cfg.templatePath, FlagTemplateShort, "", "")
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.templatePath == "" {
		return nil, errors.New(ErrMsgMissingTemplate)
	}

	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidFormat)
	}

	return cfg, nil
}

func outputValidationText(output validationOutput, stdout io.Writer) int {
	if !output.Valid {
		fmt.Fprintf(stdout, ValidationTextErrorFormat+FmtNewline,
			output.Error.Message, output.Error.Line, output.Error.Column)
		return ExitCodeValidationError
	}

	fmt.Fprintln(stdout, ValidationTextSuccess)
	fmt.Fprintf(stdout, ValidationTextSummary+FmtNewline, output.Placeholders, len(output.Arguments))
	for _, arg := range output.Arguments {
		fmt.Fprintf(stdout, ValidationTextArgFormat+FmtNewline, arg.Key, arg.Forms)
	}
	return ExitCodeSuccess
}

func outputValidationJSON(output validationOutput, stdout io.Writer) int {
	jsonBytes, _ := json.MarshalIndent(output, "", "  ")
	fmt.Fprintln(stdout, string(jsonBytes))

	if !output.Valid {
		return ExitCodeValidationError
	}
	return ExitCodeSuccess
}
