package logout_cmd

import (
	"context"
	"flag"
	"pholio/database"
	"pholio/database/repository"
	L "pholio/logger"
	"pholio/session"
)

func Execute(ctx context.Context, args []string) error {
	logoutCmd := flag.NewFlagSet("logout", flag.ExitOnError)
	logLevel := logoutCmd.String("log-level", L.GetLogLevel().String(), "Set log level: debug info warn error panic")
	logoutCmd.StringVar(logLevel, "L", L.GetLogLevel().String(), "Set log level: debug info warn error panic")
	logoutCmd.Usage = func() {
		PrintUsage()
	}
	err := logoutCmd.Parse(args)
	if err != nil {
		return err
	}
	if logLevel != nil {
		err = L.SetLevelFromString(*logLevel)
		if err != nil {
			return err
		}
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
	err = tokens.Clear(ctx)
	if err != nil {
		return err
	}
	L.Println("Logged out.")
	return nil
}
