package alerts

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"daydash/internal/model"
	"daydash/internal/notify"
)

// Store is the slice of the persistence layer the poller needs: snapshot
// reads plus a batched alert-state patch that touches only the fired IDs,
// so user edits landing mid-tick are never clobbered.
type Store interface {
	ListOpenTasks(ctx context.Context) ([]model.Task, error)
	ListLiveEvents(ctx context.Context) ([]model.CalendarEvent, error)
	MarkTasksAlerted(ctx context.Context, ids []string, at time.Time) error
	MarkEventsAlerted(ctx context.Context, ids []string, at time.Time) error
}

type EntityKind string

const (
	KindTask  EntityKind = "task"
	KindEvent EntityKind = "event"
)

// Fire reports one raised alert to the UI.
type Fire struct {
	Kind  EntityKind
	ID    string
	Title string
	At    time.Time
}

type Config struct {
	TaskInterval  time.Duration
	EventInterval time.Duration
	BufferSize    int
}

const tickTimeout = 5 * time.Second

// Poller runs the two alert cadences: tasks every two seconds, calendar
// events every ten. Each tick snapshots its collection, evaluates
// eligibility, raises side effects, and patches alert state in one batch.
type Poller struct {
	store    Store
	notifier notify.Notifier
	player   notify.SoundPlayer
	logger   *slog.Logger

	taskEvery  time.Duration
	eventEvery time.Duration

	out     chan Fire
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	started bool
	stopped bool
	dropped uint64
	now     func() time.Time
}

func NewPoller(store Store, notifier notify.Notifier, player notify.SoundPlayer, logger *slog.Logger, cfg Config) *Poller {
	if cfg.TaskInterval <= 0 {
		cfg.TaskInterval = 2 * time.Second
	}
	if cfg.EventInterval <= 0 {
		cfg.EventInterval = 10 * time.Second
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 16
	}
	if notifier == nil {
		notifier = notify.NoopNotifier{}
	}
	if player == nil {
		player = notify.NoopPlayer{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		store:      store,
		notifier:   notifier,
		player:     player,
		logger:     logger,
		taskEvery:  cfg.TaskInterval,
		eventEvery: cfg.EventInterval,
		out:        make(chan Fire, cfg.BufferSize),
		stopCh:     make(chan struct{}),
		doneCh:     make(chan struct{}),
		now:        time.Now,
	}
}

// C delivers fired alerts to the UI. Sends are non-blocking; a slow
// consumer drops fires rather than stalling a tick.
func (p *Poller) C() <-chan Fire {
	return p.out
}

func (p *Poller) Dropped() uint64 {
	return atomic.LoadUint64(&p.dropped)
}

func (p *Poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return
	}
	p.started = true

	var wg sync.WaitGroup
	wg.Add(2)
	go p.loop(&wg, p.taskEvery, p.taskTick)
	go p.loop(&wg, p.eventEvery, p.eventTick)
	go func() {
		wg.Wait()
		close(p.out)
		close(p.doneCh)
	}()
}

func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.started || p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.stopCh)
	p.mu.Unlock()
	<-p.doneCh
}

func (p *Poller) loop(wg *sync.WaitGroup, every time.Duration, tick func()) {
	defer wg.Done()
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-p.stopCh:
			return
		case <-ticker.C:
			tick()
		}
	}
}

// taskTick fires at most one task alert per tick. That throttle keeps
// notification side effects from piling up; events deliberately have no
// such limit.
func (p *Poller) taskTick() {
	ctx, cancel := context.WithTimeout(context.Background(), tickTimeout)
	defer cancel()

	now := p.now().UTC()
	tasks, err := p.store.ListOpenTasks(ctx)
	if err != nil {
		p.logger.Warn("alert poll: list tasks", "error", err)
		return
	}

	eligible := EvaluateTasks(tasks, now)
	if len(eligible) == 0 {
		return
	}
	id := eligible[0]
	for _, t := range tasks {
		if t.ID != id {
			continue
		}
		p.raise(Fire{Kind: KindTask, ID: t.ID, Title: t.Title, At: now}, t.AlarmSound, TaskPayload(t))
		break
	}
	if err := p.store.MarkTasksAlerted(ctx, []string{id}, now); err != nil {
		p.logger.Warn("alert poll: mark tasks alerted", "error", err)
	}
}

// eventTick fires every eligible event, all stamped with the same tick
// time.
func (p *Poller) eventTick() {
	ctx, cancel := context.WithTimeout(context.Background(), tickTimeout)
	defer cancel()

	now := p.now().UTC()
	events, err := p.store.ListLiveEvents(ctx)
	if err != nil {
		p.logger.Warn("alert poll: list events", "error", err)
		return
	}

	eligible := EvaluateEvents(events, now)
	if len(eligible) == 0 {
		return
	}
	fired := make(map[string]bool, len(eligible))
	for _, id := range eligible {
		fired[id] = true
	}
	for _, e := range events {
		if !fired[e.ID] {
			continue
		}
		p.raise(Fire{Kind: KindEvent, ID: e.ID, Title: e.Title, At: now}, e.AlarmSound, EventPayload(e))
	}
	if err := p.store.MarkEventsAlerted(ctx, eligible, now); err != nil {
		p.logger.Warn("alert poll: mark events alerted", "error", err)
	}
}

// raise plays the audio cue and sends the notification. Both failure modes
// are logged and swallowed; a bad speaker must not kill the tick.
func (p *Poller) raise(f Fire, sound string, payload notify.Payload) {
	if sound != "" {
		if err := p.player.Play(sound); err != nil {
			p.logger.Warn("alert poll: sound playback failed", "sound", sound, "error", err)
		}
	}
	if err := p.notifier.Send(payload); err != nil {
		p.logger.Warn("alert poll: notification failed", "error", err)
	}
	select {
	case p.out <- f:
	default:
		atomic.AddUint64(&p.dropped, 1)
	}
}
