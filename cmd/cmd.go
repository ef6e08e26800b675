package cmd

import (
	"context"
	"os"
	"pholio/cmd/help_cmd"
	"pholio/cmd/login_cmd"
	"pholio/cmd/logout_cmd"
	"pholio/cmd/ls_cmd"
	"pholio/cmd/register_cmd"
	"pholio/cmd/tui_cmd"
	"pholio/cmd/upload_cmd"
	"pholio/cmd/version_cmd"
)

func Execute(ctx context.Context, args []string) error {
	if len(os.Args) < 2 {
		PrintUsage()
		return nil
	}

	values := map[string]string{
		"binary_name":  os.Args[0],
		"command_name": os.Args[1],
	}

	ctx = context.WithValue(ctx, "values", values)

	switch os.Args[1] {
	case "login":
		return login_cmd.Execute(ctx, args[2:])
	case "register":
		return register_cmd.Execute(ctx, args[2:])
	case "logout":
		return logout_cmd.Execute(ctx, args[2:])
	case "ls":
		return ls_cmd.Execute(ctx, args[2:])
	case "upload":
		return upload_cmd.Execute(ctx, args[2:])
	case "tui":
		return tui_cmd.Execute(ctx, args[2:])
	case "help":
		return help_cmd.Execute(ctx, args[2:])
	case "version", "--version", "-v":
		return version_cmd.Execute(ctx, args[2:])
	default:
		PrintUsage()
		return nil
	}
}
