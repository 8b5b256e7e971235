package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	drowaudio "github.com/TexasRemington/drowaudio"
	"github.com/TexasRemington/drowaudio/audio"
	"github.com/TexasRemington/drowaudio/formats/wav"
	"github.com/TexasRemington/drowaudio/playback"
	"github.com/TexasRemington/drowaudio/utils"
)

// version is set via ldflags at build time
var version = "dev"

var CLI struct {
	Input       string  `arg:"" name:"input" help:"Input audio file (wav, mp3, ogg, flac, aiff)" optional:""`
	Output      string  `arg:"" name:"output" help:"Output WAV file; omit with --play to only preview" optional:""`
	Start       float64 `help:"Loop region start in seconds" default:"0"`
	End         float64 `help:"Loop region end in seconds" required:""`
	Duration    float64 `help:"Seconds of looped audio to render" default:"10"`
	BlockFrames int     `help:"Frames per processing block" default:"1024"`
	Play        bool    `help:"Play the loop on the default audio device instead of rendering"`
	Version     bool    `help:"Show version information"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("looprender"),
		kong.Description("Render or preview a seamlessly looped region of an audio file."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
	)

	if CLI.Version {
		fmt.Printf("looprender %s\n", version)
		os.Exit(0)
	}

	if CLI.Input == "" {
		fail("<input> is required")
	}
	if !CLI.Play && CLI.Output == "" {
		fail("<output> is required unless --play is given")
	}
	if CLI.End <= CLI.Start {
		fail(fmt.Sprintf("loop region [%g, %g) is empty", CLI.Start, CLI.End))
	}
	if CLI.BlockFrames <= 0 {
		fail(fmt.Sprintf("invalid block size: %d", CLI.BlockFrames))
	}

	mem, err := drowaudio.Open(CLI.Input)
	if err != nil {
		fail(err.Error())
	}
	sampleRate := mem.SampleRate()

	loop := audio.NewLoopingSource(mem, audio.Owned)
	defer loop.Close()

	loop.Prepare(CLI.BlockFrames, sampleRate)
	loop.SetLoopRegion(CLI.Start, CLI.End)
	loop.SetLoopEnabled(true)
	loop.SetReadPosition(int64(CLI.Start * float64(sampleRate)))

	if CLI.Play {
		play(loop, sampleRate)
		return
	}

	render(loop, sampleRate)
}

func play(loop *audio.LoopingSource, sampleRate int) {
	player, err := playback.NewPlayer(loop, sampleRate)
	if err != nil {
		fail(err.Error())
	}
	defer player.Close()

	player.Start()
	fmt.Printf("Playing [%gs, %gs) of %s for %gs\n", CLI.Start, CLI.End, CLI.Input, CLI.Duration)
	time.Sleep(time.Duration(CLI.Duration * float64(time.Second)))
}

func render(loop *audio.LoopingSource, sampleRate int) {
	numFrames := int(CLI.Duration * float64(sampleRate))

	out, err := drowaudio.RenderFrames(loop, numFrames, CLI.BlockFrames)
	if err != nil {
		fail(err.Error())
	}

	pcm16 := make([]int16, len(out))
	for i, v := range out {
		pcm16[i] = utils.Float32ToInt16(v)
	}

	f, err := os.Create(CLI.Output)
	if err != nil {
		fail(err.Error())
	}
	defer f.Close()

	if err := wav.WritePCM16(f, sampleRate, audio.StereoChannels, pcm16); err != nil {
		fail(err.Error())
	}

	fmt.Printf("Wrote %d frames to %s\n", numFrames, CLI.Output)
}

func fail(msg string) {
	fmt.Fprintln(os.Stderr, "looprender:", msg)
	os.Exit(1)
}
