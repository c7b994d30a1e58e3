package mapstrategy

import (
	"math/rand"
	"sort"

	"github.com/debatelab/argdown-cotgen/pkg/node"
	"github.com/debatelab/argdown-cotgen/pkg/strategy"
	"github.com/debatelab/argdown-cotgen/pkg/view"
)

// DefaultNoise is the edge-flip probability random_diffusion uses when
// its PNoise field is zero or negative.
const DefaultNoise = 0.3

// RandomDiffusion begins with every node visible and some edge
// polarities flipped, then corrects one flipped edge per view until the
// true polarities are shown (spec §4.E, optional strategy).
type RandomDiffusion struct {
	// PNoise is the per-edge flip probability; zero or negative selects
	// DefaultNoise. strategy.Config carries no noise setting of its own.
	PNoise float64
}

func (RandomDiffusion) Name() string { return "random_diffusion" }

func (r RandomDiffusion) Generate(tree *node.MapTree, cfg strategy.Config) ([]strategy.Step, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pNoise := r.PNoise
	if pNoise <= 0 {
		pNoise = DefaultNoise
	}

	rng := rand.New(rand.NewSource(int64(cfg.Seed)))

	var allNodes []*node.MapNode
	tree.Walk(func(n *node.MapNode) { allNodes = append(allNodes, n) })

	v1 := view.NewMapView()
	for _, n := range allNodes {
		v1.Show(n.ID)
		if n.EdgeToParent == node.EdgeNone {
			continue
		}
		if rng.Float64() < pNoise {
			v1.EdgeOverride[n.ID] = flip(n.EdgeToParent, rng)
		}
	}

	// Correct one flipped edge per subsequent view, in a stable order,
	// so the sequence is reproducible for a fixed seed.
	var flipped []node.ID
	for id := range v1.EdgeOverride {
		flipped = append(flipped, id)
	}
	sort.Slice(flipped, func(i, j int) bool { return flipped[i] < flipped[j] })

	views := []*view.MapView{v1}
	cur := v1
	for _, id := range flipped {
		cur = cur.Clone()
		delete(cur.EdgeOverride, id)
		views = append(views, cur)
	}

	final := views[len(views)-1].Clone()
	final.ShowYAML, final.ShowComments = true, true
	views = append(views, final)

	explain := strategy.ExplanationPool(
		"Let me reconsider whether I've got the polarity of these relations right.",
		"I think I had one of these backwards; let me fix it.",
	)
	last := len(views) - 1
	return strategy.RunMapViews(tree, views, func(i int, v *view.MapView) string {
		if i == last {
			return "All polarities are now correct, with YAML and comments restored."
		}
		return explain()
	}), nil
}

func flip(e node.EdgeType, rng *rand.Rand) node.EdgeType {
	options := []node.EdgeType{node.EdgeSupport, node.EdgeAttack, node.EdgeUndercut}
	var alt []node.EdgeType
	for _, o := range options {
		if o != e {
			alt = append(alt, o)
		}
	}
	return alt[rng.Intn(len(alt))]
}
