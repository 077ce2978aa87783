package cli

// Short messages (one-liners)
const (
	MsgRootShort = "Create a new project from a language template"
	MsgRootLong  = `ctp creates a new project by copying the template directory configured for
a language, replacing {{__NAME__}} with the project name and {{__OUT__}} with
the output path in every file, and running the commands configured to run
before and after the copy.

The configuration is read from --config, $CTP_CONFIG,
$XDG_CONFIG_HOME/ctp/config.toml or ~/.ctp, in that order.`
	MsgRootExample = `  ctp python demo
  ctp go api --output ~/src/api
  ctp rust tool --dry-run`

	MsgVersionShort   = "Print version information"
	MsgListShort      = "List the languages configured in the config file"
	MsgGenConfigShort = "Write a starter config file"
	MsgGenConfigLong  = `Write a commented starter configuration. Without a path the file is written
to $XDG_CONFIG_HOME/ctp/config.toml.`
	MsgManShort = "Generate man pages"

	MsgFlagConfig            = "Config file (default $CTP_CONFIG, $XDG_CONFIG_HOME/ctp/config.toml or ~/.ctp)"
	MsgFlagOutput            = "Output directory (default ./<project-name>)"
	MsgFlagVerbose           = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun            = "Show what would be done without copying or running commands"
	MsgFlagBinaryPassthrough = "Copy files that are not UTF-8 text unmodified instead of failing"
	MsgFlagFormat            = "Config format (toml or yaml)"
	MsgFlagForce             = "Overwrite an existing config file"
	MsgFlagStdout            = "Print the config instead of writing it"
	MsgFlagManDir            = "Directory to write man pages to"

	MsgCreatedFormat   = "Created %s at %s"
	MsgDryRunBanner    = "DRY RUN - nothing will be copied or executed"
	MsgPlanTemplate    = "Template: %s\n"
	MsgPlanOutput      = "Output:   %s\n"
	MsgPlanCommands    = "%s commands:\n"
	MsgPlanNoCommands  = "%s commands: none\n"
	MsgPlanCommandItem = "  %s\n"
	MsgNoLanguages     = "No languages configured."
	MsgLanguageItem    = "%s  %s  (%d before, %d after)\n"
	MsgConfigWritten   = "Wrote config to %s\n"
	MsgManWritten      = "Wrote man pages to %s\n"
	MsgVersionFormat   = "ctp version %s\n"
	MsgCommitFormat    = "Commit: %s\n"
	MsgBuiltFormat     = "Built:  %s\n"
	MsgErrMissingArgs  = "expected <language> <project-name>, got %d argument(s)"
)
