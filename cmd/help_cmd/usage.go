package help_cmd

import "fmt"

var usageStr string = `
USAGE
    pholio help <command>

DESCRIPTION
    Prints usage information for a specified subcommand.

COMMANDS
    These are common pholio commands used in various situations -
        help       Help about a subcommand
        config     Help about config.json file
        login      Authenticates against the gallery server and stores the session
        register   Creates a new account on the gallery server
        logout     Clears the stored session
        ls         Lists folders, photos, recents or search results
        upload     Uploads a photo into a folder
        tui        Interactive terminal user interface

EXAMPLES
    See 'pholio help <command>' to read about a specific subcommand.

SEE ALSO
    1. pholio help login
    2. pholio help ls
`

func Usage() string {
	return usageStr
}

func PrintUsage() {
	fmt.Print(usageStr)
}
