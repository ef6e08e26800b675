package login_cmd

import (
	"context"
	"flag"
	"fmt"
	"pholio/api"
	"pholio/config"
	"pholio/database"
	"pholio/database/repository"
	L "pholio/logger"
	"pholio/session"
	"pholio/validate"
)

type loginCmdEnv struct {
	Username   string
	Password   string
	ConfigPath string
}

var env *loginCmdEnv

func Execute(ctx context.Context, args []string) error {
	err := parseFlags(args)
	if err != nil {
		return err
	}

	err = validate.Login(env.Username, env.Password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	configPath := env.ConfigPath
	if configPath == "" {
		configPath, err = config.GetDefaultConfigPath()
		if err != nil {
			return err
		}
	}
	err = config.Parse(configPath)
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

	pair, err := client.Login(ctx, api.Credentials{
		Username: env.Username,
		Password: env.Password,
	})
	if err != nil {
		return err
	}
	err = tokens.SaveTokens(ctx, pair)
	if err != nil {
		return err
	}
	L.Debug("login: token pair stored")

	user, err := client.CurrentUser(ctx)
	if err != nil {
		// session works even if the profile fetch does not
		L.Warn(fmt.Sprintf("login: could not fetch user profile: %v", err))
		L.Println("Logged in.")
		return nil
	}
	err = tokens.SaveUser(ctx, user)
	if err != nil {
		return err
	}
	L.Printf("Logged in as %s\n", user)
	return nil
}

func parseFlags(args []string) error {
	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	username := loginCmd.String("username", "", "Account username (required)")
	loginCmd.StringVar(username, "u", "", "alias to -username")
	password := loginCmd.String("password", "", "Account password (required)")
	loginCmd.StringVar(password, "p", "", "alias to -password")
	configPath := loginCmd.String("config", "", "Path to config.json file")
	loginCmd.StringVar(configPath, "c", "", "alias to -config")
	logLevel := loginCmd.String("log-level", L.GetLogLevel().String(), "Set log level: debug info warn error panic")
	loginCmd.StringVar(logLevel, "L", L.GetLogLevel().String(), "Set log level: debug info warn error panic")
	loginCmd.Usage = func() {
		PrintUsage()
	}
	err := loginCmd.Parse(args)
	if err != nil {
		return err
	}

	if logLevel != nil {
		err = L.SetLevelFromString(*logLevel)
		if err != nil {
			return err
		}
	}

	env = &loginCmdEnv{
		Username:   *username,
		Password:   *password,
		ConfigPath: *configPath,
	}
	return nil
}
