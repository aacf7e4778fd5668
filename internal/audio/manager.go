// Package audio plays the arena's sound effects through beep. Effects are
// decoded into memory ahead of time so Play never touches the disk.
package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/tui-boxhead/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Source tells where a cached effect came from.
type Source string

const (
	SourceNone  Source = ""
	SourceFile  Source = "file"
	SourceSynth Source = "synth"
)

// Manager caches decoded effects and mixes them onto the speaker.
// It implements core.SoundPlayer.
type Manager struct {
	logger *log.Logger
	format beep.Format
	mixer  *beep.Mixer

	mu      sync.RWMutex
	sounds  map[string]*beep.Buffer
	sources map[string]Source

	started atomic.Bool
	muted   atomic.Bool
}

var _ core.SoundPlayer = (*Manager)(nil)

// NewManager creates a manager. Nothing is audible until Init succeeds.
func NewManager(logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		logger:  logger,
		format:  beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2},
		mixer:   &beep.Mixer{},
		sounds:  make(map[string]*beep.Buffer),
		sources: make(map[string]Source),
	}
}

// Init opens the speaker. On failure the manager stays silent.
func (m *Manager) Init() error {
	if m.started.Load() {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(m.mixer)
	m.started.Store(true)
	return nil
}

// Close silences the speaker.
func (m *Manager) Close() {
	if !m.started.Swap(false) {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// SetMuted turns playback off or back on.
func (m *Manager) SetMuted(muted bool) {
	m.muted.Store(muted)
}

// Load decodes <dir>/<name>.wav for every name in the background. A name
// whose file is missing or unreadable gets a synthesized effect instead.
// The returned channel is closed once every name is cached or ctx ends.
func (m *Manager) Load(ctx context.Context, dir string, names ...string) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, name := range names {
			if ctx.Err() != nil {
				return
			}
			buf, src := m.decode(dir, name)
			m.mu.Lock()
			m.sounds[name] = buf
			m.sources[name] = src
			m.mu.Unlock()
		}
		m.logger.Debug("sounds loaded", "count", len(names), "dir", dir)
	}()
	return done
}

func (m *Manager) decode(dir, name string) (*beep.Buffer, Source) {
	if dir != "" {
		buf, err := m.decodeFile(filepath.Join(dir, name+".wav"))
		if err == nil {
			return buf, SourceFile
		}
		m.logger.Warn("using synthesized sound", "name", name, "err", err)
	}
	buf := beep.NewBuffer(m.format)
	buf.Append(synthesize(name, m.format.SampleRate))
	return buf, SourceSynth
}

func (m *Manager) decodeFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: open sound: %w", err)
	}
	defer f.Close()

	stream, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("audio: decode %s: %w", filepath.Base(path), err)
	}
	defer stream.Close()

	var s beep.Streamer = stream
	if format.SampleRate != m.format.SampleRate {
		s = beep.Resample(4, format.SampleRate, m.format.SampleRate, s)
	}
	buf := beep.NewBuffer(m.format)
	buf.Append(s)
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("audio: decode %s: %w", filepath.Base(path), err)
	}
	return buf, nil
}

// Source reports where the effect for name was loaded from.
func (m *Manager) Source(name string) Source {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sources[name]
}

// Samples returns the length of the cached effect, 0 if not loaded.
func (m *Manager) Samples(name string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if buf := m.sounds[name]; buf != nil {
		return buf.Len()
	}
	return 0
}

// Play starts the effect for name and returns immediately. Unknown names,
// a muted manager or a missing speaker play nothing.
func (m *Manager) Play(name string) {
	if !m.started.Load() || m.muted.Load() {
		return
	}
	m.mu.RLock()
	buf := m.sounds[name]
	m.mu.RUnlock()
	if buf == nil {
		return
	}

	speaker.Lock()
	m.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}
