package main

import (
	"fmt"
	"runtime"

	cli "github.com/urfave/cli/v3"

	"cssfold/minify"
	"cssfold/misc"
)

const minifyHelp = `%s
SOURCE:
    stylesheet(s) to fold and minify, one of:
        "[path_to_file]file.css"         - single stylesheet
        "[path_to_directory]directory"   - every file with a configured extension below it (symbolic links are skipped)
        "[path_to_archive]archive.zip"   - every archive member with a configured extension
        "-"                              - stylesheet read from STDIN

    Directory and archive members are visited in natural name order. Names carrying the
    configured result suffix before the extension are treated as earlier results and skipped.

OUT:
    absent      - each result lands next to its source with the suffix added, STDIN goes to STDOUT,
                  archive members go to a directory named after the archive
    "-"         - every result goes to STDOUT
    file path   - result file, only for a single source
    otherwise   - directory mirroring the relative layout of the sources
`

const dumpConfigHelp = `%s

DESTINATION:
    file to write YAML to, STDOUT when absent

Without --default the merged configuration is written: embedded defaults
overlaid with the file given by --config.
`

// newApp builds the command tree. Lifecycle hooks are taken from lc so the
// exit path in main can tell whether an error already reached the log.
func newApp(lc *lifecycle) *cli.Command {
	return &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "CSS declaration folding and minification",
		Version:         fmt.Sprintf("%s (%s) : %s", misc.GetVersion(), runtime.Version(), misc.GetGitHash()),
		HideHelpCommand: true,
		Before:          lc.before,
		After:           lc.after,
		OnUsageError:    passUsageError,
		ExitErrHandler:  lc.logExitError,
		CommandNotFound: lc.unknownCommand,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "read YAML configuration from `FILE`"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "verbose logging and a troubleshooting report archive"},
		},
		Commands: []*cli.Command{minifyCommand(), dumpConfigCommand()},
	}
}

func minifyCommand() *cli.Command {
	return &cli.Command{
		Name:         "minify",
		Usage:        "Folds declarations and minifies CSS stylesheet(s)",
		OnUsageError: passUsageError,
		Action:       minify.Run,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "pretty", Aliases: []string{"p"}, Usage: "indent output, one declaration per line"},
			&cli.BoolFlag{Name: "strict", Aliases: []string{"s"}, Usage: "treat an invalid declaration as a stylesheet failure"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "result `PATH`: file, directory or - for STDOUT"},
			&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "replace existing results"},
		},
		ArgsUsage:          "SOURCE...",
		CustomHelpTemplate: fmt.Sprintf(minifyHelp, cli.CommandHelpTemplate),
	}
}

func dumpConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "dumpconfig",
		Usage: "Writes default or merged configuration as YAML",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "default", Usage: "write embedded defaults only"},
		},
		OnUsageError:       passUsageError,
		Action:             dumpConfig,
		ArgsUsage:          "DESTINATION",
		CustomHelpTemplate: fmt.Sprintf(dumpConfigHelp, cli.CommandHelpTemplate),
	}
}
