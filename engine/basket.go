package engine

import (
	"github.com/provlabs/basket/recalc"
	"github.com/provlabs/basket/simulation"
	"github.com/provlabs/basket/types"
	"github.com/provlabs/basket/utils"
	"github.com/provlabs/basket/validation"
)

// BasketOutcome is everything the presentation layer needs for one basket action.
type BasketOutcome struct {
	// Baseline is the recalculated real snapshot.
	Baseline types.Basket
	// Simulated is the uncapped hypothetical the rules ran against.
	Simulated simulation.Result
	// Preview is the capped hypothetical, for display only.
	Preview    simulation.Result
	Validation types.ValidationResult
}

// basketState is threaded through the basket stages.
type basketState struct {
	snapshot *types.Basket
	action   types.Action

	ready     bool
	baseline  types.Basket
	simulated simulation.Result
	preview   simulation.Result
	result    types.ValidationResult
}

type basketStage struct {
	name string
	run  func(basketState) basketState
}

// basketStages is the fixed stage order.
var basketStages = []basketStage{
	{name: "initialize", run: initializeBasket},
	{name: "apply-action", run: applyBasketAction},
	{name: "re-derive-aggregates", run: rederiveBasket},
	{name: "simulate", run: previewBasket},
	{name: "validate", run: validateBasket},
}

// EvaluateBasket runs action against snapshot. A nil snapshot or an
// untouched action yields a not-ready result with only the baseline filled in.
func (e *Engine) EvaluateBasket(snapshot *types.Basket, action types.Action) BasketOutcome {
	st := basketState{snapshot: snapshot, action: action}
	for _, stage := range basketStages {
		st = stage.run(st)
		if !st.ready {
			e.logger.Debug("basket action not ready", "stage", stage.name)
			break
		}
	}

	out := BasketOutcome{
		Baseline:   st.baseline,
		Simulated:  st.simulated,
		Preview:    st.preview,
		Validation: st.result,
	}
	if st.ready {
		e.logger.Debug("evaluated basket action",
			"action", action.Kind().String(),
			"valid", st.result.Valid,
			"reason", st.result.Reason.String(),
			"affected", len(st.result.AffectedAssets),
			"overweight", len(st.simulated.Basket.OverweightAssets),
			"moved", utils.Count(st.preview.Deltas, func(d simulation.AssetDelta) bool { return d.Amount.IsPositive() }),
		)
	}
	return out
}

func initializeBasket(st basketState) basketState {
	if st.snapshot == nil {
		st.result = types.NotReady()
		return st
	}
	st.baseline = recalc.Basket(*st.snapshot)
	st.ready = validation.Ready(st.snapshot, st.action)
	if !st.ready {
		st.result = types.NotReady()
	}
	return st
}

func applyBasketAction(st basketState) basketState {
	st.simulated = simulation.Apply(st.baseline, st.action, simulation.Uncapped)
	return st
}

func rederiveBasket(st basketState) basketState {
	st.simulated.Basket = recalc.Basket(st.simulated.Basket)
	return st
}

func previewBasket(st basketState) basketState {
	st.preview = simulation.Basket(st.baseline, st.action, simulation.Capped)
	return st
}

func validateBasket(st basketState) basketState {
	st.result = validation.Check(st.baseline, st.simulated, st.action)
	return st
}
