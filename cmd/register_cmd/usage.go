package register_cmd

import L "pholio/logger"

const usageStr string = `
USAGE
pholio register -u USERNAME -e EMAIL -p PASSWORD -password-confirm PASSWORD

DESCRIPTION
Creates a new account on the gallery server. The password must be at
least 8 characters and contain an uppercase letter, a lowercase letter
and a number. All checks run locally before anything is sent.

OPTIONS
--username, -u
Account username, letters/numbers/underscores only (required)

--email, -e
Account email address (required)

--password, -p
Account password (required)

--password-confirm
Account password, again (required)

--config, -c
Path to config.json file
Default is: ~/.config/pholio/config.json

--log-level, -L <log-level>
Specify log output level
Default: info

EXAMPLES
1. pholio register -u ansel -e ansel@example.com -p "Zone5System" -password-confirm "Zone5System"

SEE ALSO
1. pholio help login
`

func Usage() string {
	return usageStr
}

func PrintUsage() {
	L.Print(usageStr)
}
