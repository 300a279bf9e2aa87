package friends

import (
	"log/slog"
	"slices"

	"github.com/sanonone/friendgraph/pkg/metrics"
)

// Unbounded disables the depth limit.
const Unbounded = -1

// traversal is the level-synchronous BFS state owned by one Iterator.
//
// visited holds every name ever scheduled, so each name enters a frontier at
// most once across the whole walk. The seed level counts as the first level
// against maxDepth.
type traversal struct {
	dir      *Directory
	filter   Filter
	maxDepth int
	logger   *slog.Logger

	visited  map[string]struct{}
	frontier []string
	depth    int
}

func newTraversal(dir *Directory, filter Filter, maxDepth int, logger *slog.Logger) *traversal {
	t := &traversal{
		dir:      dir,
		filter:   filter,
		maxDepth: maxDepth,
		logger:   logger,
		visited:  make(map[string]struct{}),
	}

	for _, name := range dir.Best() {
		if _, seen := t.visited[name]; seen {
			continue
		}
		t.visited[name] = struct{}{}
		t.frontier = append(t.frontier, name)
	}
	return t
}

// exhausted reports whether step can produce any further level.
func (t *traversal) exhausted() bool {
	if len(t.frontier) == 0 {
		return true
	}
	return t.maxDepth >= 0 && t.depth >= t.maxDepth
}

// step emits the current level and advances the frontier to the next one.
// The returned slice holds the records of the level accepted by the filter,
// sorted by name; it may be empty even when more levels follow.
func (t *traversal) step() (int, []Record) {
	if t.exhausted() {
		return t.depth, nil
	}

	sorted := slices.Clone(t.frontier)
	slices.Sort(sorted)

	var level []Record
	for _, name := range sorted {
		rec, ok := t.dir.get(name)
		if !ok {
			continue
		}
		candidate := rec.clone()
		if t.filter.IsSuitable(candidate) {
			level = append(level, candidate)
			metrics.RecordsVisited.WithLabelValues("accepted").Inc()
		} else {
			metrics.RecordsVisited.WithLabelValues("rejected").Inc()
		}
	}

	// Expansion ignores the filter: a rejected record still leads to its friends.
	var next []string
	for _, name := range t.frontier {
		rec, ok := t.dir.get(name)
		if !ok {
			continue
		}
		for _, friend := range rec.Friends {
			if _, seen := t.visited[friend]; seen {
				continue
			}
			if !t.dir.Contains(friend) {
				metrics.DanglingReferences.Inc()
				t.logger.Debug("skipping unknown friend", "from", name, "name", friend)
				continue
			}
			t.visited[friend] = struct{}{}
			next = append(next, friend)
		}
	}

	depth := t.depth
	metrics.LevelsExpanded.Inc()
	metrics.LevelWidth.Observe(float64(len(sorted)))
	t.logger.Debug("level expanded",
		"depth", depth,
		"width", len(sorted),
		"accepted", len(level),
		"next", len(next))

	t.frontier = next
	t.depth++
	return depth, level
}
