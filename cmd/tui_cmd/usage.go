package tui_cmd

import L "pholio/logger"

const usageStr string = `
USAGE
pholio tui

DESCRIPTION
Launches the interactive Terminal User Interface for browsing your
gallery. Folders are listed in a sidebar; the content pane shows the
selected folder's photos, your favorites, recent uploads or search
results.

KEYS
1 / 2 / tab    switch focus between sidebar and content
3 / p          photos tab        4 / v   favorites tab
5 / c          recent tab        /       search
n              new folder        r       refresh
f              toggle favorite   x       delete selected
enter          open folder       esc     back
q              quit

OPTIONS
--config, -c
Path to config.json file
Default is: ~/.config/pholio/config.json

--log-level, -L <log-level>
Specify log output level
Default: info
`

func Usage() string {
	return usageStr
}

func PrintUsage() {
	L.Print(usageStr)
}
