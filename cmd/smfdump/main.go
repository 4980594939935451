// smfdump decodes Standard MIDI Files and prints their structure:
// header fields followed by every event of every track.
package main

import (
	"fmt"
	"os"

	"github.com/SupremaLex/MIDI-lib/pkg/smf"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: smfdump <file.mid> [...]\n")
		os.Exit(1)
	}
	for _, path := range os.Args[1:] {
		if err := dump(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
			os.Exit(1)
		}
	}
}

func dump(path string) error {
	file, err := smf.DecodeFile(path)
	if err != nil {
		return err
	}

	header := file.Header()
	fmt.Printf("%s: format %d, %d track(s), %d ticks per quarter note\n",
		path, header.Format(), header.NTracks(), header.TicksPerQuarterNote())

	for i, track := range file.Tracks() {
		fmt.Printf("track %d (%d bytes)\n", i, track.SerializedLength())
		for _, event := range track.Events() {
			fmt.Printf("  %s\n", describe(event))
		}
	}
	return nil
}

func describe(event smf.Event) string {
	switch e := event.(type) {
	case *smf.ChannelVoiceEvent:
		return fmt.Sprintf("delta=%-8d %-26s channel=%-2d data=%v",
			e.DeltaTime(), e.TypeLabel(), e.Channel(), e.Data())
	case *smf.SysExEvent:
		return fmt.Sprintf("delta=%-8d %-26s data=% X",
			e.DeltaTime(), e.TypeLabel(), e.Data())
	case *smf.MetaEvent:
		if text, err := e.Text(); err == nil {
			return fmt.Sprintf("delta=%-8d %-26s %q", e.DeltaTime(), e.TypeLabel(), text)
		}
		return fmt.Sprintf("delta=%-8d %-26s data=% X",
			e.DeltaTime(), e.TypeLabel(), e.Data())
	default:
		return fmt.Sprintf("delta=%-8d %s", event.DeltaTime(), event.TypeLabel())
	}
}
