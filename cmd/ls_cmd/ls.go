package ls_cmd

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
	"pholio/model"
	"pholio/session"
	"strconv"
)

type lsCmdEnv struct {
	FolderId   int64
	Recent     int
	Search     string
	ConfigPath string
}

var env *lsCmdEnv

func Execute(ctx context.Context, args []string) error {
	err := parseFlags(args)
	if err != nil {
		return err
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
	store := gallery.NewStore(client)

	err = store.Refresh(ctx)
	if err != nil {
		return err
	}

	switch {
	case env.Search != "":
		printPhotos(fmt.Sprintf("Search results for %q", env.Search), store.SearchPhotos(env.Search))
	case env.Recent > 0:
		printPhotos(fmt.Sprintf("%d most recent photos", env.Recent), store.RecentPhotos(env.Recent))
	case env.FolderId != 0:
		printPhotos(fmt.Sprintf("Photos in folder %d", env.FolderId), store.PhotosByFolder(env.FolderId))
	default:
		printFolders(store)
	}
	return nil
}

func printFolders(store *gallery.Store) {
	folders := store.Folders()
	if len(folders) == 0 {
		L.Println("No folders yet.")
		return
	}
	header := fmt.Sprintf("%-8s %-40s %-12s %s", "ID", "NAME", "PHOTOS", "CREATED AT")
	L.Println(L.Line(len(header)))
	L.Println(header)
	L.Println(L.Line(len(header)))
	for _, f := range folders {
		L.Printf("%-8d %-40s %-12d %s\n",
			f.Id,
			L.TruncateString(f.Name, 40, L.TRUNC_RIGHT),
			len(store.PhotosByFolder(f.Id)),
			f.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printPhotos(title string, photos []model.Photo) {
	L.Println(title)
	if len(photos) == 0 {
		L.Println("Nothing to show here.")
		return
	}
	header := fmt.Sprintf("%-8s %-36s %-20s %-3s %-10s %s", "ID", "TITLE", "FOLDER", "FAV", "SIZE", "CREATED AT")
	L.Println(L.Line(len(header)))
	L.Println(header)
	L.Println(L.Line(len(header)))
	for _, p := range photos {
		fav := ""
		if p.IsFavorite {
			fav = "♥"
		}
		size := ""
		if p.FileSize > 0 {
			size = L.HumanReadableBytes(uint64(p.FileSize), 1)
		}
		L.Printf("%-8d %-36s %-20s %-3s %-10s %s\n",
			p.Id,
			L.TruncateString(p.Title, 36, L.TRUNC_RIGHT),
			L.TruncateString(p.FolderName, 20, L.TRUNC_RIGHT),
			fav,
			size,
			p.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func parseFlags(args []string) error {
	lsCmd := flag.NewFlagSet("ls", flag.ExitOnError)
	recent := lsCmd.Int("recent", 0, "Show the N most recently added photos")
	lsCmd.IntVar(recent, "r", 0, "alias to -recent")
	search := lsCmd.String("search", "", "Show photos matching a query")
	lsCmd.StringVar(search, "s", "", "alias to -search")
	configPath := lsCmd.String("config", "", "Path to config.json file")
	lsCmd.StringVar(configPath, "c", "", "alias to -config")
	logLevel := lsCmd.String("log-level", L.GetLogLevel().String(), "Set log level: debug info warn error panic")
	lsCmd.StringVar(logLevel, "L", L.GetLogLevel().String(), "Set log level: debug info warn error panic")
	lsCmd.Usage = func() {
		PrintUsage()
	}
	err := lsCmd.Parse(args)
	if err != nil {
		return err
	}

	nArgs := len(lsCmd.Args())
	if nArgs > 1 {
		return fmt.Errorf("too many arguments. For more information, check 'pholio help ls'")
	}
	var folderId int64
	if nArgs == 1 {
		folderId, err = strconv.ParseInt(lsCmd.Arg(0), 10, 64)
		if err != nil {
			return fmt.Errorf("FOLDER_ID must be a number, got: %s", lsCmd.Arg(0))
		}
	}

	if logLevel != nil {
		err = L.SetLevelFromString(*logLevel)
		if err != nil {
			return err
		}
	}

	env = &lsCmdEnv{
		FolderId:   folderId,
		Recent:     *recent,
		Search:     *search,
		ConfigPath: *configPath,
	}
	return nil
}
