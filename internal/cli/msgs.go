package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Generate new projects from boilerplate templates"
	MsgRootLong  = `scaffold creates a new project directory from a named boilerplate,
substituting your variables into file names and contents and adding optional
modules such as AI components, a trainer or Docker support.

Nothing is written unless the whole project can be generated.`
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgNewShort        = "Create a new project from a template"
	MsgListShort       = "List available templates"
	MsgListLong        = "List displays every template in your boilerplate directories and the built-in catalog, in lookup order."
	MsgDescribeShort   = "Show a template's README and variables"
	MsgConfigShort     = "Show the configuration in effect"
	MsgConfigLong      = "Config prints the config file in use, the template search roots in lookup order and the variables the config file sets. With --defaults it prints the built-in defaults instead."
	MsgCompletionShort = "Generate shell completion scripts"
	MsgManShort        = "Generate the man page"

	// Version output
	MsgVersionFormat = "scaffold version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Config output
	MsgConfigFileFormat       = "Config file: %s\n"
	MsgConfigPrecedenceFormat = "Precedence:  %s\n"
	MsgConfigNoFile           = "(none)"
	MsgConfigRootsHeader      = "Template roots:"
	MsgConfigVariablesHeader  = "Variables:"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Config file to use instead of the global one"
	MsgFlagColor    = "Colorize output: auto, always or never"
	MsgFlagTemplate = "Template to generate from (default: chosen by project_type)"
	MsgFlagSet      = "Set a variable (key=value), repeatable"
	MsgFlagAnswers  = "Read variables from a YAML, JSON or TOML file"
	MsgFlagOutput   = "Destination directory (default: ./<name>)"
	MsgFlagForce    = "Replace an existing non-empty destination"
	MsgFlagDryRun   = "Preview the generated tree without writing anything"
	MsgFlagDefaults = "Print the built-in defaults file"

	// Error messages
	MsgErrUnknownShell = "unknown shell %q (supported: bash, zsh, fish, powershell)"
	MsgErrColorMode    = "invalid --color value %q (expected auto, always or never)"

	// Debug messages
	MsgDebugConfig = "Config unavailable for logging setup"
)
