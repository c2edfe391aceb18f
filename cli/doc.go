/*
Package cli provides an opinionated package for how a CLI with sub-commands can be structured.

There are a few reasonable (IMHO) policies for how this operates.

  - User-visible messages should go to STDERR by default. This is supported with a configurable [Printer], shared by every [Command] in a [CommandSet].
  - This package uses [pflag] for posix style flags.
  - Flags should NOT be interspersed by default. This makes flag and argument parsing much more consistent and predictable, but can be overridden.
  - Flags apply to the command at hand. Setup that every command needs can be registered once with [CommandSet.AddPreExec].
  - Sub-command aliases are often very convenient, so they're supported as additional, optional parameters to [CommandSet.AddCommand].

# Invocation

Invoking a CLI with sub-commands can always follow this form:

	CLI_NAME [SUB-COMMAND...] [FLAGS...] [ARGS...]

This consistency helps to build muscle memory for frequent CLI use, and a predictable user experience.

# Usage by default

The '-h' and '--help' flags are set up for every [Command], with input from the developer with the [Command.Usage] method.
Flag usage and sub-command usage is included in a usage template along with developer-provided usage information.

To display usage information from the root [CommandSet]'s perspective, use [CommandSet.RespondUsage].
This method will return true if the user requested root command usage.

Commands respond with usage when a flag can't be parsed, or when a [UsageError] is returned.
Other errors are returned without usage information.

[pflag]: https://github.com/spf13/pflag
*/
package cli
