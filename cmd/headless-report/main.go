package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/events"
	"github.com/lixenwraith/vi-pong/host"
	"github.com/lixenwraith/vi-pong/status"
	"github.com/lixenwraith/vi-pong/systems"
	"github.com/lixenwraith/vi-pong/terminal"
)

// scriptStep toggles one key before the given frame runs
type scriptStep struct {
	frame int
	key   host.Key
}

type scoreEntry struct {
	frame  int64
	scorer components.Side
}

type runStats struct {
	seed   uint64
	frames int64

	player uint32
	ai     uint32

	scores     []scoreEntry
	collisions int
	hitSides   map[string]int
	resets     int
	dropped    int64
}

// eventTally records every gameplay event after the game systems ran
type eventTally struct {
	reader *events.Reader
	stats  *runStats
}

func (e *eventTally) Priority() int { return constants.PriorityDiagnostics + 1 }

func (e *eventTally) Update(world *engine.World, dt time.Duration) {
	for _, ev := range e.reader.Read() {
		switch p := ev.Payload.(type) {
		case *events.ScoredPayload:
			e.stats.scores = append(e.stats.scores, scoreEntry{frame: ev.Frame, scorer: p.Scorer})
		case *events.CollisionPayload:
			e.stats.collisions++
			e.stats.hitSides[p.Side]++
		case *events.BallResetPayload:
			e.stats.resets++
		}
	}
}

func main() {
	var frames int
	var seed uint64
	var width, height float64
	var script string

	flag.IntVar(&frames, "frames", 600, "frames to simulate")
	flag.Uint64Var(&seed, "seed", 42, "serve RNG seed")
	flag.Float64Var(&width, "width", 800, "arena width")
	flag.Float64Var(&height, "height", 480, "arena height")
	flag.StringVar(&script, "script", "", "key toggles as frame:key,... (space toggles pause)")
	flag.Parse()

	if frames <= 0 {
		fmt.Println("error: -frames must be > 0")
		os.Exit(2)
	}
	steps, err := parseScript(script)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(2)
	}

	fmt.Printf("=== Headless Pong Report ===\n")
	fmt.Printf("frames=%d seed=%d arena=%vx%v script=%q\n\n", frames, seed, width, height, script)

	printRun(run(seed, frames, width, height, steps))
}

// parseScript reads "frame:key" pairs; frames are 1-based and must be positive
func parseScript(s string) ([]scriptStep, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var out []scriptStep
	for _, part := range strings.Split(s, ",") {
		frameStr, key, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok || key == "" {
			return nil, errors.Errorf("bad script entry %q, want frame:key", part)
		}
		n, err := strconv.Atoi(frameStr)
		if err != nil {
			return nil, errors.Wrapf(err, "bad frame in %q", part)
		}
		if n <= 0 {
			return nil, errors.Errorf("frame must be > 0 in %q", part)
		}
		out = append(out, scriptStep{frame: n, key: host.Key(strings.ToLower(key))})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].frame < out[j].frame })
	return out, nil
}

// run simulates a full arena on a headless host with a fixed clock
func run(seed uint64, frames int, width, height float64, steps []scriptStep) runStats {
	h := host.NewHeadless(width, height)
	ctx := engine.NewGameContext(h, seed, engine.NewMockTimeProvider(engine.TestEpoch))
	systems.NewGame(ctx, systems.DefaultKeyBindings())

	stats := runStats{seed: seed, hitSides: make(map[string]int)}
	ctx.World.AddSystem(&eventTally{
		reader: events.NewReader(ctx.World.Events, events.EventScored, events.EventCollision, events.EventBallReset),
		stats:  &stats,
	})

	next := 0
	for tick := 1; tick <= frames; tick++ {
		for next < len(steps) && steps[next].frame == tick {
			if steps[next].key == terminal.KeyPause {
				ctx.TogglePause()
			} else {
				h.Toggle(steps[next].key)
			}
			next++
		}
		ctx.Step(constants.FrameUpdateInterval)
	}

	stats.frames = ctx.World.FrameNumber()
	stats.player, stats.ai = ctx.Score.Values()
	stats.dropped = ctx.Status.Ints.Get(status.EventsDropped).Load()
	return stats
}

func printRun(rs runStats) {
	fmt.Printf("simulated_frames=%d\n", rs.frames)
	fmt.Printf("score: Player=%d Ai=%d\n", rs.player, rs.ai)
	fmt.Printf("score_events=%d %s\n", len(rs.scores), scoreTimeline(rs.scores))
	fmt.Printf("collisions=%d sides=%s\n", rs.collisions, joinCounts(rs.hitSides))
	fmt.Printf("ball_resets=%d dropped_events=%d\n", rs.resets, rs.dropped)
}

func scoreTimeline(entries []scoreEntry) string {
	if len(entries) == 0 {
		return "[]"
	}
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("%d:%s", e.frame, e.scorer))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func joinCounts(m map[string]int) string {
	if len(m) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s(%d)", k, m[k]))
	}
	return strings.Join(parts, ",")
}
