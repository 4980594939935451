package main

import (
	"fmt"
	"os"

	"github.com/SupremaLex/MIDI-lib/pkg/cli"
	"github.com/SupremaLex/MIDI-lib/pkg/logger"
	"github.com/SupremaLex/MIDI-lib/pkg/player"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	config, err := cli.ParseArgs(args)
	if err != nil {
		return err
	}
	if config.ShowHelp {
		cli.PrintHelp()
		return nil
	}
	if err := logger.InitLogger(config.LogLevel); err != nil {
		return err
	}
	log := logger.GetLogger()

	if len(config.Chords) == 0 {
		cli.PrintHelp()
		return fmt.Errorf("no notes given")
	}

	seq, err := player.NewSequence(config.Chords, uint16(config.PPQN), !config.Verbatim)
	if err != nil {
		return err
	}

	if config.Output != "" {
		if err := seq.WriteFile(config.Output); err != nil {
			return err
		}
		log.Info("wrote MIDI file", "path", config.Output, "chords", len(config.Chords))
	}

	if config.SoundFont == "" {
		if config.Output == "" {
			return fmt.Errorf("nothing to do: give -o to write a file or a SoundFont to play")
		}
		return nil
	}

	p, err := player.NewPlayer(config.SoundFont)
	if err != nil {
		return err
	}
	file, err := seq.File()
	if err != nil {
		return err
	}
	log.Info("playing", "soundfont", config.SoundFont, "chords", len(config.Chords))
	return p.Play(file)
}
