package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/snakefx/components"
	"github.com/lixenwraith/snakefx/constants"
	"github.com/lixenwraith/snakefx/engine"
)

// speakerPlayer routes streamers into a mixer attached to the speaker
type speakerPlayer struct {
	mixer *beep.Mixer
}

func (p *speakerPlayer) Play(s beep.Streamer) {
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// SoundManager plays fire-and-forget cues; muting never touches the simulation
type SoundManager struct {
	mu     sync.Mutex
	cfg    *AudioConfig
	player Player
	muted  bool
	log    *zap.SugaredLogger
}

// NewSoundManager creates a manager with no output until Initialize succeeds
func NewSoundManager(cfg *AudioConfig, log *zap.SugaredLogger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &SoundManager{cfg: cfg, log: log}
}

// Initialize opens the speaker and starts the shared mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.player != nil || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	mixer := &beep.Mixer{}
	speaker.Play(mixer)
	sm.player = &speakerPlayer{mixer: mixer}
	sm.log.Infow("audio initialized", "rate", sm.cfg.SampleRate, "volume", sm.cfg.MasterVolume)
	return nil
}

// SetPlayer replaces the output, used when no speaker is available
func (sm *SoundManager) SetPlayer(p Player) {
	sm.mu.Lock()
	sm.player = p
	sm.mu.Unlock()
}

// Play synthesizes and queues one cue
func (sm *SoundManager) Play(cue components.SoundCue) {
	sm.mu.Lock()
	player, muted := sm.player, sm.muted
	sm.mu.Unlock()

	if player == nil || muted {
		return
	}
	if s := GetSoundEffect(cue, sm.cfg); s != nil {
		player.Play(s)
	}
}

// OnFeedback plays every cue in the batch
func (sm *SoundManager) OnFeedback(batch engine.FeedbackBatch) {
	for _, cue := range batch.Cues {
		sm.Play(cue)
	}
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports whether cues are suppressed
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Enabled reports whether an output is attached
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.player != nil
}

// Cleanup silences the mixer and detaches the output
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sp, ok := sm.player.(*speakerPlayer); ok {
		speaker.Lock()
		sp.mixer.Clear()
		speaker.Unlock()
	}
	sm.player = nil
}
