package main

import (
	"fmt"
	"io"
)

// helpTopics maps each command to its usage text.
var helpTopics = map[string]string{
	CmdNameRender:   HelpRenderUsage,
	CmdNameValidate: HelpValidateUsage,
	CmdNameVersion:  HelpVersionUsage,
	CmdNameHelp:     HelpHelpUsage,
}

func runHelp(args []string, stdout io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stdout, HelpMainUsage)
		return ExitCodeSuccess
	}

	usage, ok := helpTopics[args[0]]
	if !ok {
		fmt.Fprintf(stdout, FmtErrorWithDetail, ErrMsgUnknownCommand, args[0])
		fmt.Fprintln(stdout, HelpMainUsage)
		return ExitCodeUsageError
	}

	fmt.Fprintln(stdout, usage)
	return ExitCodeSuccess
}
