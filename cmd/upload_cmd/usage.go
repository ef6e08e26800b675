package upload_cmd

import L "pholio/logger"

const usageStr string = `
USAGE
pholio upload PATH -f FOLDER_ID

DESCRIPTION
Uploads a single photo into one of your folders. The file must be a
jpg, jpeg, png, gif or webp image no larger than 10 MB. The photo's
title is derived from its filename by the server.

OPTIONS
--folder, -f <FOLDER_ID>
Id of the folder to upload into (required).
Use "pholio ls" to list your folders and their ids.

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
1. pholio upload ~/Pictures/sunset.jpg -f 42
2. pholio upload ./cat.png -folder 3

SEE ALSO
1. pholio help ls
`

func Usage() string {
	return usageStr
}

func PrintUsage() {
	L.Print(usageStr)
}
