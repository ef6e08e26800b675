package register_cmd

import (
	"context"
	"flag"
	"fmt"
	"pholio/api"
	"pholio/config"
	"pholio/database"
	L "pholio/logger"
	"pholio/session"
	"pholio/validate"
)

type registerCmdEnv struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
	ConfigPath      string
}

var env *registerCmdEnv

func Execute(ctx context.Context, args []string) error {
	err := parseFlags(args)
	if err != nil {
		return err
	}

	err = validate.Register(env.Username, env.Email, env.Password, env.PasswordConfirm)
	if err != nil {
		return fmt.Errorf("register: %w", err)
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

	// registration happens before any session exists
	client := api.NewClient(config.Get().ApiBaseUrl, config.Get().Timeout(), session.NewManager(noSessionRepo{}))
	user, err := client.Register(ctx, api.Registration{
		Username:        env.Username,
		Email:           env.Email,
		Password:        env.Password,
		PasswordConfirm: env.PasswordConfirm,
	})
	if err != nil {
		return err
	}
	L.Printf("Registered %s. Now run 'pholio login -u %s'.\n", user, user.Username)
	return nil
}

func parseFlags(args []string) error {
	registerCmd := flag.NewFlagSet("register", flag.ExitOnError)
	username := registerCmd.String("username", "", "Account username (required)")
	registerCmd.StringVar(username, "u", "", "alias to -username")
	email := registerCmd.String("email", "", "Account email address (required)")
	registerCmd.StringVar(email, "e", "", "alias to -email")
	password := registerCmd.String("password", "", "Account password (required)")
	registerCmd.StringVar(password, "p", "", "alias to -password")
	passwordConfirm := registerCmd.String("password-confirm", "", "Account password, again (required)")
	configPath := registerCmd.String("config", "", "Path to config.json file")
	registerCmd.StringVar(configPath, "c", "", "alias to -config")
	logLevel := registerCmd.String("log-level", L.GetLogLevel().String(), "Set log level: debug info warn error panic")
	registerCmd.StringVar(logLevel, "L", L.GetLogLevel().String(), "Set log level: debug info warn error panic")
	registerCmd.Usage = func() {
		PrintUsage()
	}
	err := registerCmd.Parse(args)
	if err != nil {
		return err
	}

	if logLevel != nil {
		err = L.SetLevelFromString(*logLevel)
		if err != nil {
			return err
		}
	}

	env = &registerCmdEnv{
		Username:        *username,
		Email:           *email,
		Password:        *password,
		PasswordConfirm: *passwordConfirm,
		ConfigPath:      *configPath,
	}
	return nil
}

// noSessionRepo backs the token manager for unauthenticated calls; there
// is nothing to read and nothing worth persisting.
type noSessionRepo struct{}

func (noSessionRepo) Get(ctx context.Context, key string) (string, error) {
	return "", database.ErrDoesNotExist
}

func (noSessionRepo) Put(ctx context.Context, key string, value string) error {
	return nil
}

func (noSessionRepo) Delete(ctx context.Context, keys ...string) error {
	return nil
}
