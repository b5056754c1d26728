package wifiprof

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Install Wi-Fi configuration profiles"
	MsgShowShort       = "Show the Wi-Fi network a profile describes"
	MsgInstallShort    = "Install the Wi-Fi network a profile describes"
	MsgListShort       = "List networks in the credential store"
	MsgRemoveShort     = "Remove a network from the credential store"
	MsgServeShort      = "Serve profiles to phones and laptops over HTTP"
	MsgConfigShort     = "Print a starting configuration file"
	MsgVersionShort    = "Print version information"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgDryRunNotice    = "DRY RUN MODE - nothing was installed"
	MsgDryRunRemove    = "DRY RUN MODE - would remove %q from the %s store\n"
	MsgNoNetworks      = "No networks installed."
	MsgNetworksHeader  = "Networks in the %s store:"
	MsgNetworkItem     = "  %s\n"
	MsgRemoved         = "Removed %q from the %s store\n"
	MsgProfileTitle    = "Wi-Fi profile"
	MsgVersionFormat   = "wifiprof version %s\n"
	MsgVersionCommit   = "  commit: %s\n"
	MsgVersionDate     = "  built:  %s\n"
	MsgConfigPathLabel = "# Config file: %s\n"

	// Error messages
	MsgErrUnreadable    = "could not read configuration"
	MsgErrPlatform      = "installer reported failure: %s"
	MsgErrNoCommand     = "no command specified"
	MsgErrExclusiveShow = "--android-xml and --qr cannot be combined"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun     = "Validate and report without touching the credential store"
	MsgFlagConfig     = "Config file (default is $XDG_CONFIG_HOME/wifiprof/config.toml)"
	MsgFlagFormat     = "Output format (auto, term, text, json, yaml, markdown)"
	MsgFlagAndroidXML = "Print the Android WifiConfiguration XML instead"
	MsgFlagQR         = "Print the Wi-Fi QR code payload instead"
	MsgFlagBackend    = "Credential store backend (file, networkmanager, wpa_supplicant)"
	MsgFlagListen     = "Address to listen on"
	MsgFlagUploadDir  = "Directory holding uploaded profiles"
	MsgFlagActive     = "Profile served at /hs20/profile.mobileconfig"
	MsgFlagConfigPath = "Print the config file path above the content"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/show-long.txt
	msgShowLongRaw string
	MsgShowLong    = strings.TrimSpace(msgShowLongRaw)

	//go:embed msgs/show-example.txt
	msgShowExampleRaw string
	MsgShowExample    = strings.TrimSpace(msgShowExampleRaw)

	//go:embed msgs/install-long.txt
	msgInstallLongRaw string
	MsgInstallLong    = strings.TrimSpace(msgInstallLongRaw)

	//go:embed msgs/install-example.txt
	msgInstallExampleRaw string
	MsgInstallExample    = strings.TrimSpace(msgInstallExampleRaw)

	//go:embed msgs/serve-long.txt
	msgServeLongRaw string
	MsgServeLong    = strings.TrimSpace(msgServeLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
