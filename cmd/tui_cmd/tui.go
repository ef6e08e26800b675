package tui_cmd

import (
	"context"
	"flag"
	"fmt"
	"pholio/api"
	"pholio/config"
	"pholio/database"
	"pholio/database/repository"
	"pholio/gallery"
	L "pholio/logger"
	"pholio/session"
	"pholio/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func Execute(ctx context.Context, args []string) error {
	err := parseFlags(args)
	if err != nil {
		return err
	}

	dbPath, err := database.GetDBFilePath(ctx)
	if err != nil {
		return err
	}
	db, err := database.NewDB(dbPath)
	if err != nil {
		return err
	}
	defer db.Close(ctx)
	err = db.Init(ctx)
	if err != nil {
		return err
	}

	tokens := session.NewManager(repository.NewSessionRepository(db))
	client := api.NewClient(config.Get().ApiBaseUrl, config.Get().Timeout(), tokens)
	store := gallery.NewStore(client)

	app := tui.NewApp(ctx, store)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func parseFlags(args []string) error {
	tuiCmd := flag.NewFlagSet("tui", flag.ExitOnError)
	configPath := tuiCmd.String("config", "", "Path to config.json file")
	tuiCmd.StringVar(configPath, "c", "", "alias to -config")
	logLevel := tuiCmd.String("log-level", L.GetLogLevel().String(), "Set log level: debug info warn error panic")
	tuiCmd.StringVar(logLevel, "L", L.GetLogLevel().String(), "Set log level: debug info warn error panic")
	tuiCmd.Usage = func() {
		PrintUsage()
	}
	err := tuiCmd.Parse(args)
	if err != nil {
		return err
	}

	if len(tuiCmd.Args()) > 0 {
		return fmt.Errorf("too many arguments. For more information check 'pholio help tui'")
	}

	if logLevel != nil {
		err = L.SetLevelFromString(*logLevel)
		if err != nil {
			return err
		}
	}

	path := *configPath
	if path == "" {
		path, err = config.GetDefaultConfigPath()
		if err != nil {
			return err
		}
	}
	return config.Parse(path)
}
