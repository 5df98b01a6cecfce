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
	FlagTemplate     = "template"
	FlagData         = "data"
	FlagDataFile     = "data-file"
	FlagOutput       = "output"
	FlagFormat       = "format"
	FlagUnchecked    = "unchecked"
	FlagDisplayWidth = "display-width"
)

// Flag names - short form
const (
	FlagTemplateShort = "t"
	FlagDataShort     = "d"
	FlagDataFileShort = "f"
	FlagOutputShort   = "o"
	FlagFormatShort   = "F"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
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

// Data file extensions decoded as YAML; everything else is JSON.
const (
	DataExtYAML = ".yaml"
	DataExtYML  = ".yml"
)

// Error messages - ALL must be constants
const (
	ErrMsgUnknownCommand      = "unknown command"
	ErrMsgMissingTemplate     = "template source required"
	ErrMsgInvalidData         = "invalid argument data"
	ErrMsgDataShape           = "arguments must be an object or an array"
	ErrMsgReadFileFailed      = "failed to read file"
	ErrMsgWriteOutputFailed   = "failed to write output"
	ErrMsgParseTemplateFailed = "template parsing failed"
	ErrMsgBindFailed          = "argument binding failed"
	ErrMsgRenderFailed        = "template rendering failed"
	ErrMsgInvalidFormat       = "invalid output format"
)

// Help text templates
const (
	HelpMainUsage = `go-dynfmt - Runtime format strings

Usage:
    dynfmt <command> [options]

Commands:
    render      Render a template with arguments
    validate    Parse a template and list its arguments
    version     Show version information
    help        Show help for a command

Use "dynfmt help <command>" for more information about a command.`

	HelpRenderUsage = `Render a template with arguments

Usage:
    dynfmt render [options]

Options:
    -t, --template <file>   Template file (use "-" for stdin)
    -d, --data <json>       Arguments as JSON: an array binds positions, an object binds
                            its keys (all-digit keys such as "0" bind positions)
    -f, --data-file <file>  Arguments file (.yaml/.yml as YAML, otherwise JSON)
    -o, --output <file>     Output file (default: stdout)
    --unchecked             Skip bind-time validation
    --display-width         Measure width in terminal cells

Examples:
    dynfmt render -t row.txt -d '{"name": "Alice", "score": 9.5}'
    dynfmt render -t row.txt -d '[1, 2, 3]'
    dynfmt render -t row.txt -d '{"0": 42, "unit": "ms"}'
    echo '{:>8.2}' | dynfmt render -t - -d '[3.14159]'`

	HelpValidateUsage = `Parse a template and list its arguments

Usage:
    dynfmt validate [options]

Options:
    -t, --template <file>   Template file (use "-" for stdin)
    -F, --format <format>   Output format: text, json (default: text)

Examples:
    dynfmt validate -t row.txt
    cat row.txt | dynfmt validate -t - -F json`

	HelpVersionUsage = `Show version information

Usage:
    dynfmt version [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    dynfmt help [command]

Commands:
    render      Show help for render command
    validate    Show help for validate command
    version     Show help for version command`
)

// Version output
const (
	Version             = "0.1.0"
	VersionTextTemplate = "go-dynfmt version %s\nGo: %s"
)

// Validation output format templates
const (
	ValidationTextSuccess     = "Template is valid"
	ValidationTextSummary     = "%d placeholder(s), %d argument(s)"
	ValidationTextArgFormat   = "  %s: %s"
	ValidationTextErrorFormat = "%s at line %d, column %d"
)

// CLI metadata
const (
	CLIName = "go-dynfmt"
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
