package upload_cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"pholio/api"
	"pholio/config"
	"pholio/database"
	"pholio/database/repository"
	"pholio/file_io"
	"pholio/gallery"
	L "pholio/logger"
	"pholio/session"
	"pholio/validate"
	"strconv"
	"strings"
)

type uploadCmdEnv struct {
	InputPath  string
	FolderId   int64
	ConfigPath string
}

var env *uploadCmdEnv

func Execute(ctx context.Context, args []string) error {
	err := parseFlags(args)
	if err != nil {
		return err
	}

	info, err := file_io.GetFileInfo(env.InputPath)
	if err != nil {
		return fmt.Errorf("upload: cannot stat %s: %w", env.InputPath, err)
	}
	filename := filepath.Base(env.InputPath)
	err = validate.PhotoUpload(filename, info.Size)
	if err != nil {
		return fmt.Errorf("upload: %w", err)
	}

	data, err := os.ReadFile(env.InputPath)
	if err != nil {
		return fmt.Errorf("upload: cannot read %s: %w", env.InputPath, err)
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

	// load folders first so the upload can be annotated with its folder name
	err = store.Refresh(ctx)
	if err != nil {
		return err
	}

	photo, err := store.UploadPhoto(ctx, env.FolderId, filename, data)
	if err != nil {
		return err
	}
	L.Printf("Uploaded %s (%s)\n", filename, L.HumanReadableBytes(info.Size, 1))
	L.Print(photo.String())
	return nil
}

func parseFlags(args []string) error {
	uploadCmd := flag.NewFlagSet("upload", flag.ExitOnError)
	folderId := uploadCmd.Int64("folder", 0, "Id of the folder to upload into (required)")
	uploadCmd.Int64Var(folderId, "f", 0, "alias to -folder")
	configPath := uploadCmd.String("config", "", "Path to config.json file")
	uploadCmd.StringVar(configPath, "c", "", "alias to -config")
	logLevel := uploadCmd.String("log-level", L.GetLogLevel().String(), "Set log level: debug info warn error panic")
	uploadCmd.StringVar(logLevel, "L", L.GetLogLevel().String(), "Set log level: debug info warn error panic")
	uploadCmd.Usage = func() {
		PrintUsage()
	}
	err := uploadCmd.Parse(args)
	if err != nil {
		return err
	}

	nArgs := len(uploadCmd.Args())
	if nArgs < 1 {
		return fmt.Errorf("PATH not provided. For more information check 'pholio help upload'")
	}
	if nArgs > 1 {
		return fmt.Errorf("too many arguments. For more information check 'pholio help upload'")
	}

	if logLevel != nil {
		err = L.SetLevelFromString(*logLevel)
		if err != nil {
			return err
		}
	}

	inputPath := uploadCmd.Arg(0)
	if strings.HasPrefix(inputPath, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot expand ~ for PATH: %w", err)
		}
		inputPath = filepath.Join(homeDir, inputPath[2:])
	}
	inputPathAbs, err := filepath.Abs(inputPath)
	if err != nil {
		return err
	}
	if !file_io.IsReadable(inputPathAbs) {
		return fmt.Errorf("file is not readable: %s", inputPathAbs)
	}

	if *folderId <= 0 {
		if *folderId == 0 {
			return fmt.Errorf("-folder is required. For more information check 'pholio help upload'")
		}
		return fmt.Errorf("-folder must be a positive id, got: %s", strconv.FormatInt(*folderId, 10))
	}

	path := *configPath
	if path == "" {
		path, err = config.GetDefaultConfigPath()
		if err != nil {
			return err
		}
	}
	err = config.Parse(path)
	if err != nil {
		return err
	}

	env = &uploadCmdEnv{
		InputPath:  inputPathAbs,
		FolderId:   *folderId,
		ConfigPath: path,
	}
	return nil
}
