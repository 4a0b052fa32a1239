package action

import (
	"github.com/lixenwraith/gridcrawl/component"
	"github.com/lixenwraith/gridcrawl/core"
	"github.com/lixenwraith/gridcrawl/dungeon"
	"github.com/lixenwraith/gridcrawl/engine"
	"github.com/lixenwraith/gridcrawl/parameter"
)

// FloorResource configures floor regeneration, registered as *FloorResource
type FloorResource struct {
	Config dungeon.Config

	// Depth counts floors generated so far, it offsets a fixed seed per floor
	Depth int

	// Populate runs after walls and floors exist, nil skips it
	Populate func(w *engine.World, layout dungeon.Layout)
}

// RegenerateFloorAction replaces the current floor with a fresh layout
// Entities tagged KeepBetweenFloors survive
type RegenerateFloorAction struct{}

func NewRegenerateFloor() *RegenerateFloorAction {
	return &RegenerateFloorAction{}
}

func (a *RegenerateFloorAction) String() string { return "regenerate_floor" }

func (a *RegenerateFloorAction) CanAttempt(*engine.View) bool { return true }

func (a *RegenerateFloorAction) Attempt(w *engine.World) Status {
	res, ok := engine.GetResource[*FloorResource](w.Resources)
	if !ok || res == nil {
		res = &FloorResource{Config: dungeon.DefaultConfig()}
		engine.AddResource(w.Resources, res)
	}

	keep := engine.GetStore[component.KeepBetweenFloorsComponent](w)
	var doomed []core.Entity
	for _, e := range w.Entities() {
		if !keep.Has(e) {
			doomed = append(doomed, e)
		}
	}
	w.DestroyBatch(doomed)

	cfg := res.Config
	if cfg.Seed != 0 {
		cfg.Seed += int64(res.Depth)
	}
	res.Depth++

	layout := dungeon.Generate(cfg)
	dungeon.Spawn(w, layout, parameter.TilePixels)
	if res.Populate != nil {
		res.Populate(w, layout)
	}

	Push(w, NewPlaySound(core.SoundStairs))
	return Finished
}
