// Package cli parses command-line arguments for the smfplay tool.
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// Config holds the settings parsed from command-line arguments.
type Config struct {
	Output    string   // path of the .mid file to write (empty: no file)
	SoundFont string   // path of the SoundFont for playback (empty: no playback)
	PPQN      uint     // ticks per quarter note of the generated file
	LogLevel  string   // log level (debug, info, warn, error)
	Verbatim  bool     // disable running-status compression
	ShowHelp  bool     // help flag
	Chords    []string // positional arguments: one chord per argument
}

// ParseArgs parses command-line arguments into a Config. Flags may
// appear before or after the positional chord arguments. The SoundFont
// path and log level fall back to the SOUNDFONT and LOG_LEVEL
// environment variables when the flags are absent.
func ParseArgs(args []string) (*Config, error) {
	reorderedArgs := reorderArgs(args)

	fs := flag.NewFlagSet("smfplay", flag.ContinueOnError)

	config := &Config{}

	fs.StringVar(&config.Output, "output", "", "path of the .mid file to write")
	fs.StringVar(&config.Output, "o", "", "path of the .mid file to write (shorthand)")
	fs.StringVar(&config.SoundFont, "soundfont", "", "SoundFont (.sf2) file for playback")
	fs.StringVar(&config.SoundFont, "sf", "", "SoundFont (.sf2) file for playback (shorthand)")
	fs.UintVar(&config.PPQN, "ppqn", 120, "ticks per quarter note")
	fs.StringVar(&config.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	fs.StringVar(&config.LogLevel, "l", "info", "log level (shorthand)")
	fs.BoolVar(&config.Verbatim, "verbatim", false, "disable running-status compression")
	fs.BoolVar(&config.ShowHelp, "help", false, "show help")
	fs.BoolVar(&config.ShowHelp, "h", false, "show help (shorthand)")

	if err := fs.Parse(reorderedArgs); err != nil {
		return nil, err
	}

	// environment fallbacks; flags win
	if config.SoundFont == "" {
		config.SoundFont = os.Getenv("SOUNDFONT")
	}
	if config.LogLevel == "info" {
		if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
			config.LogLevel = strings.ToLower(logLevelEnv)
		}
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[config.LogLevel] {
		return nil, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", config.LogLevel)
	}

	if config.PPQN == 0 || config.PPQN > 0xFFFF {
		return nil, fmt.Errorf("ppqn must be between 1 and 65535, got %d", config.PPQN)
	}

	config.Chords = fs.Args()

	return config, nil
}

// boolFlags are flags that never take a separate value argument.
var boolFlags = map[string]bool{
	"-h": true, "--help": true,
	"-verbatim": true, "--verbatim": true,
}

// reorderArgs moves flags in front of positional arguments so that
// chords may be written before the flags.
func reorderArgs(args []string) []string {
	var flags []string
	var positional []string

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if len(arg) > 0 && arg[0] == '-' {
			flags = append(flags, arg)

			// a value flag consumes the next argument
			if !boolFlags[arg] && !strings.Contains(arg, "=") &&
				i+1 < len(args) && (len(args[i+1]) == 0 || args[i+1][0] != '-') {
				i++
				flags = append(flags, args[i])
			}
		} else {
			positional = append(positional, arg)
		}
	}

	return append(flags, positional...)
}

// PrintHelp prints the usage message.
func PrintHelp() {
	fmt.Fprintf(os.Stdout, `smfplay - build and play a Standard MIDI File from note names

Usage:
  smfplay [options] [chord ...]

Arguments:
  chord         notes sounding together, separated by commas, e.g. C4,E4,G4
                each chord argument becomes one step of the sequence

Options:
  -o, --output <path>         write the generated .mid file to <path>
  -sf, --soundfont <path>     SoundFont (.sf2) file; enables audio playback
  --ppqn <n>                  ticks per quarter note (default: 120)
  --verbatim                  disable running-status compression
  -l, --log-level <level>     log level: debug, info, warn, error (default: info)
  -h, --help                  show this help

Environment Variables:
  SOUNDFONT=<path>            SoundFont file for playback
  LOG_LEVEL=<level>           log level

Examples:
  smfplay -o scale.mid C4 D4 E4 F4 G4        write a five-note scale
  smfplay -o chord.mid C4,E4,G4              write one C major chord
  smfplay -sf font.sf2 C4 E4 G4              play through the synthesizer
  SOUNDFONT=font.sf2 smfplay C4              SoundFont from the environment
`)
}
