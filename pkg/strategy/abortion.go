package strategy

import (
	"math/rand"
	"strings"
)

// DefaultAbortionPool is the sentence used when a run's Config supplies
// no AbortionPool of its own (spec §6 "abortion_pool: string = default").
var DefaultAbortionPool = []string{
	"Oh no! This is just exactly what I've written before. Better ABORT and DISCARD this, and start anew.",
}

// restartSentence is the fixed user-visible sentence following an
// abortion comment, spec §4.D step 4.
const restartSentence = "I ignore the above Argdown snippet and will try again."

// AbortedAttempt is the corrupted draft rendered immediately before a
// step's clean content, when the abortion hook fires for that step.
type AbortedAttempt struct {
	Content         string
	RestartSentence string
}

// ApplyAbortion runs the stochastic abortion pass over an already-built
// step list (design notes §9: "keep abortion strictly post-hoc"). The
// first step is never touched (spec §8 property 3); every other step is
// independently a candidate, so p_abort = 1.0 guarantees every non-first
// step gets one (spec §8 S5: "at least one non-first step").
//
// Returned alongside steps is a parallel slice of *AbortedAttempt (nil
// where no abortion fired) so the CoT formatter can render the corrupted
// draft ahead of the real fenced block without altering Step.Content.
func ApplyAbortion(steps []Step, cfg Config) []*AbortedAttempt {
	attempts := make([]*AbortedAttempt, len(steps))
	if cfg.PAbort <= 0 || len(steps) < 2 {
		return attempts
	}
	pool := cfg.AbortionPool
	if len(pool) == 0 {
		pool = DefaultAbortionPool
	}
	rng := rand.New(rand.NewSource(int64(cfg.Seed)))

	for i := 1; i < len(steps); i++ {
		if rng.Float64() >= cfg.PAbort {
			continue
		}
		attempts[i] = buildAbortedAttempt(steps[i].Content, pool, rng)
	}
	return attempts
}

func buildAbortedAttempt(content string, pool []string, rng *rand.Rand) *AbortedAttempt {
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	if len(lines) == 0 {
		return nil
	}
	mid := len(lines) / 2
	copies := 2 + rng.Intn(3) // 2..4 inclusive
	dup := make([]string, 0, copies)
	for i := 0; i < copies; i++ {
		dup = append(dup, lines[mid])
	}
	corrupted := make([]string, 0, len(lines)+copies+1)
	corrupted = append(corrupted, lines[:mid+1]...)
	corrupted = append(corrupted, dup...)
	corrupted = append(corrupted, lines[mid+1:]...)

	phrase := pool[rng.Intn(len(pool))]
	corrupted = append(corrupted, "// "+phrase)

	return &AbortedAttempt{
		Content:         strings.Join(corrupted, "\n") + "\n",
		RestartSentence: restartSentence,
	}
}
