package commands

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Generate block state, model and lang files for a game mod"
	MsgKindsShort      = "Describe the kinds a definition can require"
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgCompletionShort = "Generate shell completion script"

	// Root usage
	MsgRootUse = "assetgen [flags] [assets directory]"

	// Version output
	MsgVersionFormat = "assetgen version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration"
	MsgErrFormat     = "invalid output format"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun    = "Show what would be generated without writing anything"
	MsgFlagDefine    = "Definition file (.json, .yaml or .toml)"
	MsgFlagTemplates = "Template directory, built-in templates when empty"
	MsgFlagFormat    = "Output format: auto, term, text or json"
	MsgFlagConfig    = "Config file, replaces .assetgen.toml lookup"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/kinds-long.txt
	msgKindsLongRaw string
	MsgKindsLong    = strings.TrimSpace(msgKindsLongRaw)
)
