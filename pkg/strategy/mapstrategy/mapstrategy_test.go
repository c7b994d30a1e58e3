package mapstrategy

import (
	"strings"
	"testing"

	"github.com/debatelab/argdown-cotgen/pkg/parser"
	"github.com/debatelab/argdown-cotgen/pkg/strategy"
)

// twoLevelMap is the README-style map spec §8 scenario S1 is built
// around: a root claim with one direct support and one attack, and a
// support for that attack one level deeper.
const twoLevelMap = `[Root]: Root claim.

    <+ [Support]: A supporting claim.
    <- [Objection]: An objection.

        <+ [SubSupport]: Support for the objection.
`

func TestByRankProducesExactlyThreeStepsForTwoLevelMap(t *testing.T) {
	parsed, err := parser.Parse(twoLevelMap)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	steps, err := ByRank{}.Generate(parsed.Map, strategy.Config{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(steps) != 3 {
		t.Fatalf("got %d steps, want 3 (spec §8 S1)", len(steps))
	}
	if !strings.Contains(steps[0].Content, "// Arguments need to be added here.") {
		t.Errorf("step 1 should carry the first-children placeholder, got:\n%s", steps[0].Content)
	}
	if !strings.Contains(steps[1].Content, "// More arguments might need to be added here.") {
		t.Errorf("step 2 should carry the more-children placeholder, got:\n%s", steps[1].Content)
	}
	got := steps[2].Content
	want := strings.TrimLeft(twoLevelMap, "\n")
	if got != want {
		t.Errorf("step 3 should reconstruct the original exactly:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestByRankOnFlatMapYieldsOneStep(t *testing.T) {
	parsed, err := parser.Parse("[Root]: Root claim.\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	steps, err := ByRank{}.Generate(parsed.Map, strategy.Config{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(steps) != 1 {
		t.Fatalf("got %d steps, want 1 for a rootless-depth map", len(steps))
	}
	if steps[0].Content != "[Root]: Root claim.\n" {
		t.Errorf("Content = %q", steps[0].Content)
	}
}

func TestByRankRejectsInvalidPAbort(t *testing.T) {
	parsed, _ := parser.Parse(twoLevelMap)
	if _, err := (ByRank{}).Generate(parsed.Map, strategy.Config{PAbort: 2}); err == nil {
		t.Error("expected a ConfigError for out-of-range p_abort")
	}
}

func TestBreadthFirstVisitsLevelByLevel(t *testing.T) {
	parsed, err := parser.Parse(twoLevelMap)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	steps, err := BreadthFirst{}.Generate(parsed.Map, strategy.Config{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(steps) != 4 {
		t.Fatalf("got %d steps, want 4 (one per node)", len(steps))
	}
	if !strings.HasPrefix(steps[0].Content, "[Root]: Root claim.") {
		t.Errorf("step 1 = %q, want it to start with just the root", steps[0].Content)
	}
	if strings.Contains(steps[0].Content, "Support") || strings.Contains(steps[0].Content, "Objection") {
		t.Errorf("step 1 should not yet show any child node, got:\n%s", steps[0].Content)
	}
	last := steps[len(steps)-1].Content
	want := strings.TrimLeft(twoLevelMap, "\n")
	if last != want {
		t.Errorf("last step should reconstruct the original exactly:\ngot:\n%q\nwant:\n%q", last, want)
	}
}

func TestDepthFirstFollowsOneBranchBeforeTheNext(t *testing.T) {
	input := `[Root]: Root claim.
    <+ [A]: First reason.
        <+ [A1]: Sub-reason.
    <- [B]: An objection.
`
	parsed, err := parser.Parse(input)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	steps, err := DepthFirst{}.Generate(parsed.Map, strategy.Config{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(steps) != 4 {
		t.Fatalf("got %d steps, want 4", len(steps))
	}
	if !strings.Contains(steps[2].Content, "A1") {
		t.Errorf("step 3 should have descended into A's branch before B, got:\n%s", steps[2].Content)
	}
	if strings.Contains(steps[2].Content, "[B]") {
		t.Errorf("step 3 should not yet show B (DFS descends fully into A first), got:\n%s", steps[2].Content)
	}
}

func TestByObjectionGrowsScaffoldThenAttackers(t *testing.T) {
	parsed, err := parser.Parse(twoLevelMap)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	steps, err := ByObjection{}.Generate(parsed.Map, strategy.Config{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(steps) < 3 {
		t.Fatalf("got %d steps, want at least 3 (scaffold, objections, final)", len(steps))
	}
	if strings.Contains(steps[0].Content, "[Objection]") {
		t.Errorf("step 1 should only show the root, not the objection, got:\n%s", steps[0].Content)
	}
	last := steps[len(steps)-1].Content
	want := strings.TrimLeft(twoLevelMap, "\n")
	if last != want {
		t.Errorf("last step should reconstruct the original exactly:\ngot:\n%q\nwant:\n%q", last, want)
	}
}

func TestDepthDiffusionMarksDeepNodesAsOrphansUntilFinalView(t *testing.T) {
	parsed, err := parser.Parse(twoLevelMap)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	steps, err := DepthDiffusion{}.Generate(parsed.Map, strategy.Config{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(steps) != 3 {
		t.Fatalf("got %d steps, want 3 (maxRank 2 => ranks 0,1,2)", len(steps))
	}
	if !strings.Contains(steps[0].Content, "?? [SubSupport]") {
		t.Errorf("step 1 should render SubSupport flat with its ?? marker, got:\n%s", steps[0].Content)
	}
	last := steps[len(steps)-1].Content
	want := strings.TrimLeft(twoLevelMap, "\n")
	if last != want {
		t.Errorf("last step should reconstruct the original exactly:\ngot:\n%q\nwant:\n%q", last, want)
	}
}

func TestRandomDiffusionConvergesToOriginal(t *testing.T) {
	parsed, err := parser.Parse(twoLevelMap)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	steps, err := RandomDiffusion{}.Generate(parsed.Map, strategy.Config{Seed: 42})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(steps) == 0 {
		t.Fatal("expected at least one step")
	}
	last := steps[len(steps)-1].Content
	want := strings.TrimLeft(twoLevelMap, "\n")
	if last != want {
		t.Errorf("last step should reconstruct the original exactly:\ngot:\n%q\nwant:\n%q", last, want)
	}
}

func TestRandomDiffusionIsDeterministicForAFixedSeed(t *testing.T) {
	parsed, _ := parser.Parse(twoLevelMap)
	a, err := RandomDiffusion{}.Generate(parsed.Map, strategy.Config{Seed: 7})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := RandomDiffusion{}.Generate(parsed.Map, strategy.Config{Seed: 7})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("step counts differ across identical seeds: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Content != b[i].Content {
			t.Errorf("step %d content differs across identical seeds:\n%q\nvs\n%q", i, a[i].Content, b[i].Content)
		}
	}
}
