// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"encoding/binary"
	"errors"
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/TexasRemington/drowaudio/audio"
)

// defaultBlockFrames is the block size requested from the source per read
const defaultBlockFrames = 1024

// bytesPerFrame is the wire size of one stereo float32 frame
const bytesPerFrame = 4 * audio.StereoChannels

var ErrNilSource = errors.New("playback: source must not be nil")

// blockReader adapts a block-based source to the io.Reader the audio
// device consumes, encoding samples as little-endian float32
type blockReader struct {
	src         audio.PositionableSource
	blockFrames int
	block       []float32
	encoded     []byte
	pending     []byte
	err         error
}

func newBlockReader(src audio.PositionableSource, blockFrames int) *blockReader {
	return &blockReader{
		src:         src,
		blockFrames: blockFrames,
		block:       make([]float32, blockFrames*audio.StereoChannels),
		encoded:     make([]byte, blockFrames*bytesPerFrame),
	}
}

func (r *blockReader) Read(p []byte) (int, error) {
	if len(r.pending) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		if err := r.fill(); err != nil {
			r.err = err
			return 0, err
		}
	}

	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

// fill reads one block from the source and encodes it into r.pending
func (r *blockReader) fill() error {
	info := audio.BlockInfo{
		Buffer:    r.block,
		NumFrames: r.blockFrames,
	}
	if err := r.src.ReadBlock(info); err != nil {
		return err
	}

	for i, v := range r.block {
		binary.LittleEndian.PutUint32(r.encoded[i*4:], math.Float32bits(v))
	}
	r.pending = r.encoded
	return nil
}

// Player renders a positionable source to the default audio device.
// The source is prepared on construction and released on Close; the
// player does not take ownership of the source itself.
type Player struct {
	ctx    *oto.Context
	player *oto.Player
	src    audio.PositionableSource

	mutex   sync.Mutex // only for setup/control operations
	started bool
	closed  bool
}

func NewPlayer(src audio.PositionableSource, sampleRate int) (*Player, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: audio.StereoChannels,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	src.Prepare(defaultBlockFrames, sampleRate)

	return &Player{
		ctx:    ctx,
		player: ctx.NewPlayer(newBlockReader(src, defaultBlockFrames)),
		src:    src,
	}, nil
}

// Start begins or resumes playback. Starting an already playing
// player is a no-op.
func (p *Player) Start() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if !p.started && !p.closed {
		p.player.Play()
		p.started = true
	}
}

// Pause suspends playback without losing the read position
func (p *Player) Pause() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.started && !p.closed {
		p.player.Pause()
		p.started = false
	}
}

func (p *Player) Playing() bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.started && !p.closed
}

// Close stops playback and releases the source's playback resources
func (p *Player) Close() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	p.started = false

	err := p.player.Close()
	p.src.Release()
	return err
}
