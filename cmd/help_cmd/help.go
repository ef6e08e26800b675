package help_cmd

import (
	"context"
	"fmt"
	"pholio/cmd/login_cmd"
	"pholio/cmd/logout_cmd"
	"pholio/cmd/ls_cmd"
	"pholio/cmd/register_cmd"
	"pholio/cmd/tui_cmd"
	"pholio/cmd/upload_cmd"
)

func Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		PrintUsage()
		return nil
	}

	switch args[0] {
	case "login":
		login_cmd.PrintUsage()
	case "register":
		register_cmd.PrintUsage()
	case "logout":
		logout_cmd.PrintUsage()
	case "ls":
		ls_cmd.PrintUsage()
	case "upload":
		upload_cmd.PrintUsage()
	case "tui":
		tui_cmd.PrintUsage()
	case "help":
		PrintUsage()
	case "config":
		ConfigPrintUsage()
	default:
		return fmt.Errorf("No such command: %s", args[0])
	}
	return nil
}
