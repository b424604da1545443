// Package live runs debounced validation of an editing buffer and owns
// its marker set. Marker updates are eventually consistent with the
// latest buffer content only: every edit gets a monotonically increasing
// sequence number and a result is applied only while its sequence is
// still the highest issued (last-writer-wins, without cancelling the
// in-flight validator call itself).
package live

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"quiver/internal/diag"
	"quiver/internal/validate"
)

// Sink receives marker-set replacements and render-status updates from
// the checker. ApplyMarkers replaces the buffer's marker set wholesale;
// RenderStatus tells the rendering collaborator whether it has a valid
// diagram to draw.
type Sink interface {
	ApplyMarkers(markers []diag.Marker)
	RenderStatus(ok bool, message string)
}

// Options configures a Checker.
type Options struct {
	Debounce  time.Duration
	Validator validate.Validator
	Sink      Sink
	BaseCtx   context.Context
}

// Checker is the diagnostics pipeline for one buffer.
type Checker struct {
	mu        sync.Mutex
	debounce  time.Duration
	validator validate.Validator
	sink      Sink
	baseCtx   context.Context

	// последний выданный номер; пишется только под mu (OnChange),
	// isLatest читает атомарно без mu
	seq    uint64
	timer  *time.Timer
	closed bool
}

// NewChecker constructs a checker. Debounce defaults to 300ms, the
// validator to the built-in structural one.
func NewChecker(opts Options) *Checker {
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = 300 * time.Millisecond
	}
	v := opts.Validator
	if v == nil {
		v = validate.NewStructural()
	}
	ctx := opts.BaseCtx
	if ctx == nil {
		ctx = context.Background()
	}
	return &Checker{
		debounce:  debounce,
		validator: v,
		sink:      opts.Sink,
		baseCtx:   ctx,
	}
}

// OnChange schedules validation of the new buffer content. Each call
// supersedes the previous one: only the newest armed timer may fire. A
// blank buffer clears markers immediately and skips validation entirely.
func (c *Checker) OnChange(text string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	seq := atomic.AddUint64(&c.seq, 1)
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if strings.TrimSpace(text) == "" {
		c.mu.Unlock()
		c.emit(seq, nil, false, "no diagram")
		return
	}
	c.timer = time.AfterFunc(c.debounce, func() {
		c.run(seq, text)
	})
	c.mu.Unlock()
}

// Close tears the pipeline down: the armed timer is cancelled and any
// in-flight result is suppressed. No marker update is applied past Close.
func (c *Checker) Close() {
	c.mu.Lock()
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()
}

// isLatest reports whether seq is still the highest issued.
func (c *Checker) isLatest(seq uint64) bool {
	return seq != 0 && seq == atomic.LoadUint64(&c.seq)
}

func (c *Checker) run(seq uint64, text string) {
	if !c.isLatest(seq) {
		return
	}
	// Валидатор может работать сколь угодно долго; любой его отказ
	// превращается в маркер, а не в panic.
	err := c.validator.Validate(c.baseCtx, text)
	if err == nil {
		c.emit(seq, nil, true, "")
		return
	}
	var verr *validate.Error
	if !errors.As(err, &verr) {
		verr = &validate.Error{Code: diag.ValSyntax, Message: err.Error()}
	}
	marker := validate.Marker(verr)
	c.emit(seq, []diag.Marker{marker}, false, verr.Message)
}

// emit применяет результат, только если он всё ещё свежий и пайплайн жив.
func (c *Checker) emit(seq uint64, markers []diag.Marker, ok bool, message string) {
	c.mu.Lock()
	if c.closed || !c.isLatest(seq) {
		c.mu.Unlock()
		return
	}
	sink := c.sink
	c.mu.Unlock()
	if sink == nil {
		return
	}
	sink.ApplyMarkers(markers)
	sink.RenderStatus(ok, message)
}
