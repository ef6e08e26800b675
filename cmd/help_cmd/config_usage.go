package help_cmd

import (
	L "pholio/logger"
)

const configUsageStr string = `
CONFIGURATION
    Configuration file is a JSON file that tells pholio where your gallery
    server lives. You could have different config.json files for different
    servers.

    When you first run the program, a default config will be created for you at
    '~/.config/pholio/config.json', and you are supposed to modify this
    configuration to point at your server.

SAMPLE CONFIG

        {
            "api_base_url": "https://gallery.example.com",
            "timeout_seconds": 30
        }

OPTIONS
    api_base_url
        Base URL of the gallery server's REST API. Required.
        Must be an http or https URL without a trailing path.

    timeout_seconds
        Per-request timeout for every call against the server.
        0 (the default) disables the client-side timeout; a hung request
        then waits until you interrupt the command.

SEE ALSO
    1. pholio help login
`

func ConfigUsage() string {
	return configUsageStr
}

func ConfigPrintUsage() {
	L.Print(configUsageStr)
}
