package ls_cmd

import L "pholio/logger"

const usageStr string = `
USAGE
pholio ls [FOLDER_ID] [OPTIONS]

DESCRIPTION
Lists your folders, or the photos inside one folder when FOLDER_ID is
given. The listing is fetched fresh from the server on every run; a
folder that fails to load is skipped with a warning instead of failing
the whole listing.

OPTIONS
--recent, -r <N>
Show the N most recently added photos across all folders instead of
the folder listing. Newest first.

--search, -s <QUERY>
Show photos whose title, description or folder name contains QUERY
(case-insensitive) instead of the folder listing.

--config, -c
Path to config.json file
Default is: ~/.config/pholio/config.json
Use "pholio help config" for more information on configuring pholio.

--log-level, -L <log-level>
Specify log output level
Default: info
Accepted values (in order of increasing amount of output) -
debug, info, warn, error, silent

EXAMPLES
1. pholio ls
2. pholio ls 42
3. pholio ls -recent 10
4. pholio ls -search "sunset"

SEE ALSO
1. pholio help upload
2. pholio help tui
`

func Usage() string {
	return usageStr
}

func PrintUsage() {
	L.Print(usageStr)
}
