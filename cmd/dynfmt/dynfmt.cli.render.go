package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/itsatony/go-dynfmt"
)

// renderConfig holds parsed render command configuration
type renderConfig struct {
	templatePath string
	dataJSON     string
	dataFilePath string
	outputPath   string
	unchecked    bool
	displayWidth bool
}

func runRender(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseRenderFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingTemplate, err)
		return ExitCodeUsageError
	}

	templateSource, err := readInput(cfg.templatePath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	arguments, err := loadArguments(cfg.dataJSON, cfg.dataFilePath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidData, err)
		return ExitCodeInputError
	}

	var opts []dynfmt.Option
	if cfg.displayWidth {
		opts = append(opts, dynfmt.WithDisplayWidth())
	}
	engine := dynfmt.MustNew(opts...)

	// files usually end with a newline that is not part of the template
	tmpl, err := engine.Parse(strings.TrimSuffix(string(templateSource), FmtNewline))
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgParseTemplateFailed, err)
		return ExitCodeValidationError
	}

	binder := tmpl.Bind()
	if cfg.unchecked {
		binder = tmpl.BindUnchecked()
	}
	if err := bindArguments(binder, arguments); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgBindFailed, err)
		return ExitCodeError
	}

	if cfg.outputPath == FlagDefaultOutput {
		if _, err := binder.RenderTo(stdout); err != nil {
			return reportRenderError(err, stderr)
		}
		return ExitCodeSuccess
	}

	result, err := binder.Render()
	if err != nil {
		return reportRenderError(err, stderr)
	}
	if err := writeOutput(cfg.outputPath, []byte(result), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}

// bindArguments binds an object by key, with all-digit keys taken as
// positions, or an array by position.
func bindArguments(binder *dynfmt.Binder, arguments any) error {
	switch args := arguments.(type) {
	case map[string]any:
		keys := make([]string, 0, len(args))
		for key := range args {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if err := binder.Add(argumentKey(key), args[key]); err != nil {
				return err
			}
		}
	case []any:
		return binder.Positional(args...)
	}
	return nil
}

func argumentKey(key string) dynfmt.Key {
	if key == "" {
		return dynfmt.Name(key)
	}
	for _, c := range key {
		if c < '0' || c > '9' {
			return dynfmt.Name(key)
		}
	}
	index, err := strconv.Atoi(key)
	if err != nil {
		return dynfmt.Name(key)
	}
	return dynfmt.Index(index)
}

func reportRenderError(err error, stderr io.Writer) int {
	if errors.Is(err, dynfmt.ErrWriter) {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
	} else {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgRenderFailed, err)
	}
	return ExitCodeError
}

func parseRenderFlags(args []string) (*renderConfig, error) {
	fs := flag.NewFlagSet(CmdNameRender, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &renderConfig{}

	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "")
	fs.StringVar(&cfg.templatePath, FlagTemplateShort, "", "")
	fs.StringVar(&cfg.dataJSON, FlagData, "", "")
	fs.StringVar(&cfg.dataJSON, FlagDataShort, "", "")
	fs.StringVar(&cfg.dataFilePath, FlagDataFile, "", "")
	fs.StringVar(&cfg.dataFilePath, FlagDataFileShort, "", "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")
	fs.BoolVar(&cfg.unchecked, FlagUnchecked, false, "")
	fs.BoolVar(&cfg.displayWidth, FlagDisplayWidth, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.templatePath == "" {
		return nil, errors.New(ErrMsgMissingTemplate)
	}

	return cfg, nil
}
