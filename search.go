// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package jdict

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ianlewis/go-jdict/query"
	"github.com/ianlewis/go-jdict/record"
	"github.com/ianlewis/go-jdict/score"
)

const (
	// DefaultMaxHigh is the default maximum number of highly relevant results
	// reported.
	DefaultMaxHigh = 200

	// DefaultMaxMedium is the default maximum number of medium relevance
	// results reported.
	DefaultMaxMedium = 100

	// DefaultMaxLow is the default maximum number of low relevance results
	// reported.
	DefaultMaxLow = 50

	// progressInterval is the number of lines between progress reports.
	progressInterval = 1000
)

// Status is the state of a [Request].
type Status int32

const (
	// Idle is the state of a request that is not running.
	Idle Status = iota

	// Searching is the state of a running request.
	Searching

	// Canceling is the state of a running request that was asked to stop.
	Canceling
)

// String implements [fmt.Stringer].
func (s Status) String() string {
	switch s {
	case Searching:
		return "searching"
	case Canceling:
		return "canceling"
	default:
		return "idle"
	}
}

// Options are options for a search.
type Options struct {
	// Query are the options used to compile the query.
	Query query.Options

	// MaxHigh is the maximum number of highly relevant results reported. Any
	// more are counted but not reported.
	MaxHigh int

	// MaxMedium is the maximum number of medium relevance results reported.
	MaxMedium int

	// MaxLow is the maximum number of low relevance results reported.
	MaxLow int

	// Logger is the logger used for debug logging. Defaults to
	// [slog.Default].
	Logger *slog.Logger
}

// DefaultOptions are the default search options.
var DefaultOptions = &Options{
	Query:     *query.DefaultOptions,
	MaxHigh:   DefaultMaxHigh,
	MaxMedium: DefaultMaxMedium,
	MaxLow:    DefaultMaxLow,
}

// Summary describes a finished search.
type Summary struct {
	// Lines is the number of physical lines read.
	Lines int

	// Matches is the number of matching records of any relevance.
	Matches int

	// Relevant is the number of highly relevant records.
	Relevant int

	// Emitted is the number of records reported to the output.
	Emitted int

	// Skipped is the number of lines ignored because they were longer than
	// the maximum line size.
	Skipped int

	// Cancelled is true if the search was canceled before the end of the
	// dictionary was reached.
	Cancelled bool
}

// Request is a search of a single dictionary. A request may be run several
// times but only once at a time.
type Request struct {
	dict  *Dictionary
	query *query.Query
	opts  Options
	log   *slog.Logger

	status atomic.Int32

	// mu guards the fields below.
	mu      sync.Mutex
	stream  io.ReadCloser
	done    chan struct{}
	summary *Summary
	err     error
}

// NewRequest compiles the query and opens the dictionary for searching.
// Errors wrap [ErrQueryCompile] or [ErrDictionaryUnavailable].
func NewRequest(d *Dictionary, raw string, opts *Options) (*Request, error) {
	if opts == nil {
		opts = DefaultOptions
	}
	o := *opts
	if o.MaxHigh <= 0 {
		o.MaxHigh = DefaultMaxHigh
	}
	if o.MaxMedium <= 0 {
		o.MaxMedium = DefaultMaxMedium
	}
	if o.MaxLow <= 0 {
		o.MaxLow = DefaultMaxLow
	}
	log := o.Logger
	if log == nil {
		log = slog.Default()
	}

	q, err := query.Compile(raw, d.Format(), &o.Query)
	if err != nil {
		return nil, err
	}

	stream, err := d.OpenStream()
	if err != nil {
		return nil, err
	}

	return &Request{
		dict:   d,
		query:  q,
		opts:   o,
		log:    log.With("dictionary", d.Name()),
		stream: stream,
	}, nil
}

// Dictionary returns the dictionary being searched.
func (r *Request) Dictionary() *Dictionary {
	return r.dict
}

// Query returns the compiled query.
func (r *Request) Query() *query.Query {
	return r.query
}

// Status returns the request's current status.
func (r *Request) Status() Status {
	return Status(r.status.Load())
}

// Run searches the dictionary and reports results to out. It returns when
// the search finishes or is canceled either by [Request.Cancel] or by ctx. A
// canceled search returns a summary with Cancelled set and a nil error.
func (r *Request) Run(ctx context.Context, out Output) (*Summary, error) {
	if !r.status.CompareAndSwap(int32(Idle), int32(Searching)) {
		return nil, ErrBusy
	}
	defer r.status.Store(int32(Idle))

	return r.run(ctx, out)
}

// Start runs the search in a new goroutine. Use [Request.Wait] to wait for it
// to finish.
func (r *Request) Start(ctx context.Context, out Output) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.status.CompareAndSwap(int32(Idle), int32(Searching)) {
		return ErrBusy
	}

	done := make(chan struct{})
	r.done = done
	r.summary, r.err = nil, nil

	go func() {
		defer close(done)

		s, err := r.run(ctx, out)

		r.mu.Lock()
		r.summary, r.err = s, err
		r.mu.Unlock()
		r.status.Store(int32(Idle))
	}()
	return nil
}

// Wait waits for a search started with [Request.Start] to finish and returns
// its result. It returns immediately if no search was started.
func (r *Request) Wait() (*Summary, error) {
	r.mu.Lock()
	done := r.done
	r.mu.Unlock()

	if done == nil {
		return nil, nil
	}
	<-done

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.summary, r.err
}

// Cancel asks a running search to stop. The search stops before the next line
// is processed. Cancel reports whether a running search was asked to stop.
func (r *Request) Cancel() bool {
	return r.status.CompareAndSwap(int32(Searching), int32(Canceling))
}

// Close releases the dictionary stream opened by NewRequest if the request was
// never run.
func (r *Request) Close() error {
	r.mu.Lock()
	rc := r.stream
	r.stream = nil
	r.mu.Unlock()

	if rc == nil {
		return nil
	}
	if err := rc.Close(); err != nil {
		return fmt.Errorf("closing %q: %w", r.dict.Path(), err)
	}
	return nil
}

func (r *Request) canceled(ctx context.Context) bool {
	return r.Status() == Canceling || ctx.Err() != nil
}

// takeStream returns the stream opened by NewRequest, or a new stream if it
// was already used.
func (r *Request) takeStream() (io.ReadCloser, error) {
	r.mu.Lock()
	rc := r.stream
	r.stream = nil
	r.mu.Unlock()

	if rc != nil {
		return rc, nil
	}
	return r.dict.OpenStream()
}

func (r *Request) run(ctx context.Context, out Output) (*Summary, error) {
	rc, err := r.takeStream()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	start := time.Now()
	r.log.DebugContext(ctx, "search started", "query", r.query.String())

	s := &Summary{}
	out.SearchBegin(r)
	err = r.scan(ctx, rc, out, s)
	out.SearchEnd(s)

	r.log.DebugContext(ctx, "search finished",
		"lines", s.Lines,
		"matches", s.Matches,
		"emitted", s.Emitted,
		"skipped", s.Skipped,
		"cancelled", s.Cancelled,
		"elapsed", time.Since(start),
	)
	return s, err
}

func (r *Request) scan(ctx context.Context, rc io.Reader, out Output, s *Summary) error {
	format := r.dict.Format()
	// Character lookups only report the most relevant results.
	buffered := !r.opts.Query.Exact && format != record.FormatCharacter
	headers := format == record.FormatWord

	progress, _ := out.(ProgressReporter)
	total, reported := 0, 0
	if progress != nil {
		total = r.dict.LineCount()
	}

	var (
		// Records are parsed alternately into two slots so that the
		// previous record is available to detect duplicate lines.
		slots      [2]record.Record
		cur        int
		medium     []*record.Record
		low        []*record.Record
		moreHeader bool
	)

	sc := NewScanner(rc)
	defer func() {
		s.Lines = sc.Lines()
		s.Skipped = sc.Skipped()
	}()
	skipped := 0

	for sc.Scan() {
		if r.canceled(ctx) {
			s.Cancelled = true
			return nil
		}

		if n := sc.Skipped(); n != skipped {
			r.log.DebugContext(ctx, "skipped overlong line", "line", sc.Lines()-1, "max", maxLineSize)
			skipped = n
		}

		if n := sc.Lines(); progress != nil && n != reported && n%progressInterval == 0 {
			progress.Progress(n, total)
			reported = n
		}

		line := sc.Text()
		if skipLine(line) {
			continue
		}

		// Examples span two physical lines.
		if format == record.FormatExample && strings.HasPrefix(line, record.SentenceTag) && sc.Scan() {
			if next := sc.Text(); strings.HasPrefix(next, record.IndexTag) {
				line += "\n" + next
			} else {
				sc.Unread()
			}
		}

		if line == slots[1-cur].Raw {
			continue
		}

		rec := &slots[cur]
		if err := record.Parse(rec, line, format); err != nil {
			r.log.DebugContext(ctx, "parsing line as text", "line", sc.Lines(), "error", err)
			_ = record.ParseUnknown(rec, line)
		}
		cur = 1 - cur

		rel := score.Score(rec, r.query)
		if rel == record.None {
			continue
		}
		rec.Relevance = rel
		s.Matches++

		switch rel {
		case record.High:
			s.Relevant++
			if s.Relevant > r.opts.MaxHigh {
				continue
			}
			if headers && !moreHeader {
				out.MoreRelevantHeader()
				moreHeader = true
			}
			emit(out, rec)
			s.Emitted++
		case record.Medium:
			if buffered && len(medium) < r.opts.MaxMedium {
				medium = append(medium, rec.Clone())
			}
		default:
			if buffered && len(low) < r.opts.MaxLow {
				low = append(low, rec.Clone())
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: reading %q: %w", ErrDictionaryUnavailable, r.dict.Path(), err)
	}

	if moreHeader {
		out.MoreRelevantHeader()
	}
	if len(medium)+len(low) > 0 {
		out.LessRelevantHeader()
		for _, rec := range medium {
			emit(out, rec)
			s.Emitted++
		}
		for _, rec := range low {
			emit(out, rec)
			s.Emitted++
		}
	}
	return nil
}
