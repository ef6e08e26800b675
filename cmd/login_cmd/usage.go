package login_cmd

import L "pholio/logger"

const usageStr string = `
USAGE
pholio login -u USERNAME -p PASSWORD

DESCRIPTION
Exchanges your credentials for a bearer token pair and stores it locally.
Subsequent commands reuse the stored session; when the access token
expires it is refreshed once per request using the stored refresh token.

OPTIONS
--username, -u
Account username (required)

--password, -p
Account password (required)

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
1. pholio login -u ansel -p "correct horse battery staple1A"

SEE ALSO
1. pholio help register
2. pholio help logout
`

func Usage() string {
	return usageStr
}

func PrintUsage() {
	L.Print(usageStr)
}
