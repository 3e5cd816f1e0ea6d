package term

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"cloutchase/internal/game"
	"cloutchase/internal/sfx"
)

const sampleRate = beep.SampleRate(sfx.SampleRate)

// soundPlayer mixes the synthesized effects into the beep speaker.
type soundPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	clips       map[sfx.Kind][]float64
	initialized bool
}

func newSoundPlayer() *soundPlayer {
	return &soundPlayer{
		mixer: &beep.Mixer{},
		clips: make(map[sfx.Kind][]float64),
	}
}

func (sp *soundPlayer) Initialize() error {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if sp.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(sp.mixer)
	sp.initialized = true
	return nil
}

func (sp *soundPlayer) Close() {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if !sp.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sp.initialized = false
}

// monoStreamer plays a mono clip on both channels.
func monoStreamer(samples []float64) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(buf [][2]float64) (int, bool) {
		if pos >= len(samples) {
			return 0, false
		}
		n := 0
		for n < len(buf) && pos < len(samples) {
			buf[n][0] = samples[pos]
			buf[n][1] = samples[pos]
			n++
			pos++
		}
		return n, true
	})
}

func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func (sp *soundPlayer) add(s beep.Streamer) {
	// The mixer is read on the speaker goroutine.
	speaker.Lock()
	sp.mixer.Add(s)
	speaker.Unlock()
}

// Play queues a one-shot effect.
func (sp *soundPlayer) Play(kind sfx.Kind, vol float64) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if !sp.initialized {
		return
	}
	clip, ok := sp.clips[kind]
	if !ok {
		clip = sfx.Generate(kind)
		sp.clips[kind] = clip
	}
	if len(clip) == 0 {
		return
	}
	sp.add(newVolume(monoStreamer(clip), vol))
}

// Blip plays a short sine tick, used as the boost cue.
func (sp *soundPlayer) Blip(freq float64, d time.Duration, vol float64) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if !sp.initialized {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	sp.add(newVolume(beep.Take(sampleRate.N(d), sine), vol))
}

// Attach maps session events to sounds.
func (sp *soundPlayer) Attach(events *game.EventBus) {
	events.Subscribe(game.EventFoodEaten, func(game.Event) { sp.Play(sfx.Eat, 0.45) })
	events.Subscribe(game.EventChaserWins, func(game.Event) { sp.Play(sfx.ChaserWins, 0.6) })
	events.Subscribe(game.EventSnakeWins, func(game.Event) { sp.Play(sfx.SnakeWins, 0.6) })
	events.Subscribe(game.EventRestart, func(game.Event) { sp.Play(sfx.Restart, 0.5) })
}
