package logout_cmd

import L "pholio/logger"

const usageStr string = `
USAGE
pholio logout

DESCRIPTION
Clears the stored bearer tokens and cached profile. The server is not
contacted; the refresh token simply stops being used.

SEE ALSO
1. pholio help login
`

func Usage() string {
	return usageStr
}

func PrintUsage() {
	L.Print(usageStr)
}
