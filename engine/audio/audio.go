package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/1siamBot/pang/engine/core"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

// SoundID identifies a sound effect
type SoundID string

const (
	SndFire  SoundID = "fire"
	SndPop   SoundID = "pop"
	SndHit   SoundID = "hit"
	SndClick SoundID = "click"
)

const sampleRate = beep.SampleRate(44100)

// AudioManager mixes synthesized sound effects into the speaker.
// Until Initialize succeeds every Play call is a no-op.
type AudioManager struct {
	mu           sync.Mutex
	mixer        *beep.Mixer
	initialized  bool
	Enabled      bool
	MasterVolume float64
	Played       map[SoundID]int

	log *zap.Logger
}

func NewAudioManager(enabled bool, volume float64, log *zap.Logger) *AudioManager {
	if log == nil {
		log = zap.NewNop()
	}
	am := &AudioManager{
		mixer:   &beep.Mixer{},
		Enabled: enabled,
		Played:  make(map[SoundID]int),
		log:     log,
	}
	am.SetVolume(volume)
	return am
}

// Initialize opens the speaker. A disabled manager stays silent.
func (am *AudioManager) Initialize() error {
	am.mu.Lock()
	defer am.mu.Unlock()

	if am.initialized || !am.Enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(am.mixer)
	am.initialized = true
	am.log.Info("audio initialized", zap.Int("sample_rate", int(sampleRate)))
	return nil
}

// Close stops all sounds and releases the speaker
func (am *AudioManager) Close() {
	am.mu.Lock()
	defer am.mu.Unlock()

	if !am.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	am.mixer.Clear()
	am.initialized = false
}

// PlaySFX queues a sound effect on the mixer
func (am *AudioManager) PlaySFX(id SoundID) {
	am.mu.Lock()
	defer am.mu.Unlock()

	if !am.initialized {
		return
	}
	s := CreateSound(id, am.MasterVolume, sampleRate)
	if s == nil {
		am.log.Warn("unknown sound", zap.String("id", string(id)))
		return
	}
	speaker.Lock()
	am.mixer.Add(s)
	speaker.Unlock()
	am.Played[id]++
}

// SetVolume sets master volume (0-1)
func (am *AudioManager) SetVolume(v float64) {
	am.MasterVolume = core.Clamp(v, 0, 1)
}

// Subscribe plays sounds in response to game events
func (am *AudioManager) Subscribe(bus *core.EventBus) {
	sounds := map[core.EventType]SoundID{
		core.EvtWeaponFired:  SndFire,
		core.EvtEnemyPopped:  SndPop,
		core.EvtPlayerHit:    SndHit,
		core.EvtMenuSelected: SndClick,
	}
	for evt, id := range sounds {
		bus.On(evt, func(core.Event) { am.PlaySFX(id) })
	}
}
