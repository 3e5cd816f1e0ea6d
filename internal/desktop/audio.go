//go:build !android

package desktop

import (
	"math"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"cloutchase/internal/game"
	"cloutchase/internal/sfx"
)

const (
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)

	sfxVolume     = 0.58
	ambientVolume = 0.1
)

// Audio plays the game's sound effects and ambient loop through oto.
type Audio struct {
	ctx   *oto.Context
	ready chan struct{}

	mu      sync.Mutex
	clips   map[sfx.Kind][]byte
	ambient oto.Player
}

func InitAudio() (*Audio, error) {
	ctx, ready, err := oto.NewContext(sfx.SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	return &Audio{ctx: ctx, ready: ready, clips: make(map[sfx.Kind][]byte)}, nil
}

func (a *Audio) isReady() bool {
	if a == nil {
		return false
	}
	select {
	case <-a.ready:
		return true
	default:
		return false
	}
}

func (a *Audio) clip(kind sfx.Kind) []byte {
	a.mu.Lock()
	defer a.mu.Unlock()
	data, ok := a.clips[kind]
	if !ok {
		data = sfx.EncodeStereoF32(sfx.Generate(kind))
		a.clips[kind] = data
	}
	return data
}

// Play fires a one-shot effect. It never blocks the caller.
func (a *Audio) Play(kind sfx.Kind, gain float64) {
	if !a.isReady() || gain <= 0 {
		return
	}
	data := a.clip(kind)
	if len(data) == 0 {
		return
	}
	go func() {
		player := a.ctx.NewPlayer(sfx.NewClipReader(data))
		player.SetVolume(sfxVolume * gain)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// StartAmbient (re)starts the background loop.
func (a *Audio) StartAmbient(seed uint64) {
	if !a.isReady() {
		return
	}
	if a.ambient != nil {
		a.ambient.Close()
	}
	player := a.ctx.NewPlayer(sfx.NewAmbientReader(sfx.NewAmbient(seed)))
	player.SetVolume(ambientVolume)
	player.Play()
	a.ambient = player
}

func (a *Audio) Close() {
	if a == nil || a.ambient == nil {
		return
	}
	a.ambient.Close()
	a.ambient = nil
}

// Attach maps session events to sounds.
func (a *Audio) Attach(events *game.EventBus) {
	events.Subscribe(game.EventFoodEaten, func(e game.Event) {
		// Bigger pellets sound a touch louder.
		a.Play(sfx.Eat, math.Min(1, 0.6+0.03*float64(e.Data)))
	})
	events.Subscribe(game.EventChaserWins, func(game.Event) { a.Play(sfx.ChaserWins, 1) })
	events.Subscribe(game.EventSnakeWins, func(game.Event) { a.Play(sfx.SnakeWins, 1) })
	events.Subscribe(game.EventRestart, func(game.Event) { a.Play(sfx.Restart, 0.8) })
}
