package friends

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/sanonone/friendgraph/pkg/metrics"
)

// Options configures an Iterator.
type Options struct {
	// MaxDepth bounds the number of levels walked, counting the best friends
	// as the first level. Unbounded (any negative value) walks the whole
	// reachable graph; 0 yields nothing.
	MaxDepth int

	// Logger receives debug records for every expanded level.
	// Defaults to a logger that discards everything.
	Logger *slog.Logger
}

// DefaultOptions returns an unbounded configuration with logging disabled.
func DefaultOptions() Options {
	return Options{
		MaxDepth: Unbounded,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option mutates Options.
type Option func(*Options)

// WithMaxDepth sets Options.MaxDepth.
func WithMaxDepth(depth int) Option {
	return func(o *Options) { o.MaxDepth = depth }
}

// WithLogger sets Options.Logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// Level is one BFS level of accepted records.
type Level struct {
	Depth   int
	Records []Record
}

// Iterator is a single-use, pull-based cursor over a traversal.
//
// At any moment it buffers at most one level. The buffer is refilled as soon
// as it empties, skipping levels the filter rejected entirely, so Done is
// accurate even before the first call to Next. Once Done reports true it
// never reverts.
type Iterator struct {
	id        string
	walk      *traversal
	buf       []Record
	bufAt     int
	depth     int // level currently buffered
	lastDepth int
	finished  bool
	logger    *slog.Logger
}

// NewIterator starts an unbounded traversal of dir.
func NewIterator(dir *Directory, filter Filter, opts ...Option) (*Iterator, error) {
	return newIterator(dir, filter, opts)
}

// NewLimitedIterator starts a traversal of at most maxDepth levels. A negative
// maxDepth yields nothing, the same as 0.
func NewLimitedIterator(dir *Directory, filter Filter, maxDepth int, opts ...Option) (*Iterator, error) {
	if maxDepth < 0 {
		maxDepth = 0
	}
	return newIterator(dir, filter, append(opts, WithMaxDepth(maxDepth)))
}

func newIterator(dir *Directory, filter Filter, opts []Option) (*Iterator, error) {
	f, err := AsFilter(filter)
	if err != nil {
		return nil, fmt.Errorf("cannot create iterator: %w", err)
	}
	if dir == nil {
		dir = NewDirectory(nil)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	id := uuid.NewString()
	logger := o.Logger.With("traversal", id)
	metrics.TraversalsStarted.WithLabelValues(strconv.FormatBool(o.MaxDepth >= 0)).Inc()
	logger.Debug("traversal started", "seeds", len(dir.Best()), "max_depth", o.MaxDepth)

	it := &Iterator{
		id:        id,
		walk:      newTraversal(dir, f, o.MaxDepth, logger),
		lastDepth: -1,
		logger:    logger,
	}
	it.fill()
	return it, nil
}

// fill steps the traversal until the buffer holds a record or the walk ends.
func (it *Iterator) fill() {
	for it.bufAt >= len(it.buf) && !it.walk.exhausted() {
		depth, level := it.walk.step()
		it.buf, it.bufAt = level, 0
		it.depth = depth
	}
	if it.bufAt >= len(it.buf) {
		it.buf, it.bufAt = nil, 0
		if !it.finished {
			it.finished = true
			it.logger.Debug("traversal finished", "levels", it.walk.depth)
		}
	}
}

// ID identifies the traversal in log records.
func (it *Iterator) ID() string {
	return it.id
}

// Next returns the next record, or nil once the traversal is exhausted.
func (it *Iterator) Next() *Record {
	if it.Done() {
		return nil
	}
	rec := it.buf[it.bufAt]
	it.buf[it.bufAt] = Record{}
	it.bufAt++
	it.lastDepth = it.depth
	it.fill()
	return &rec
}

// Done reports whether Next will return nil from now on.
func (it *Iterator) Done() bool {
	return it.bufAt >= len(it.buf)
}

// Depth returns the level of the record most recently returned by Next, or
// -1 before the first record.
func (it *Iterator) Depth() int {
	return it.lastDepth
}

// All drains the iterator.
func (it *Iterator) All() []Record {
	var out []Record
	for rec := it.Next(); rec != nil; rec = it.Next() {
		out = append(out, *rec)
	}
	return out
}

// Levels drains the iterator, grouping records by level. Levels left empty
// by the filter are omitted.
func (it *Iterator) Levels() []Level {
	var out []Level
	for rec := it.Next(); rec != nil; rec = it.Next() {
		if n := len(out); n == 0 || out[n-1].Depth != it.lastDepth {
			out = append(out, Level{Depth: it.lastDepth})
		}
		out[len(out)-1].Records = append(out[len(out)-1].Records, *rec)
	}
	return out
}

// Seq returns a range-over-func view of the remaining records. It shares the
// cursor with Next, so ranging twice yields the records only once.
func (it *Iterator) Seq() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for rec := it.Next(); rec != nil; rec = it.Next() {
			if !yield(*rec) {
				return
			}
		}
	}
}
