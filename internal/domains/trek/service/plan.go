package service

import (
	"fmt"
	batchModel "trekdesk/internal/domains/batch/model"
	batchDto "trekdesk/internal/domains/batch/model/dto"
	"trekdesk/shared/failure"
)

type batchPair struct {
	existing batchModel.Batch
	input    *batchDto.BatchRequest
}

// batchPlan is the reconciliation of submitted batches against stored ones.
type batchPlan struct {
	pairs   []batchPair
	inserts []*batchDto.BatchRequest
	orphans []batchModel.Batch
}

// planBatches pairs inputs that name a batch id with that batch, then pairs the
// rest positionally with the unclaimed existing batches in stored order.
// existing must be in creation order. Inputs left over become inserts and
// existing batches left over become orphans.
func planBatches(existing []batchModel.Batch, input []batchDto.BatchRequest) (batchPlan, error) {
	plan := batchPlan{}

	byID := make(map[int64]batchModel.Batch, len(existing))
	for _, batch := range existing {
		byID[batch.ID] = batch
	}

	claimed := make(map[int64]bool, len(input))

	for i := range input {
		id := input[i].ID
		if id == 0 {
			continue
		}

		if _, ok := byID[id]; !ok {
			return plan, failure.Validation(fmt.Sprintf("batch %d: id %d does not belong to this trek", i+1, id)) //nolint:wrapcheck
		}

		if claimed[id] {
			return plan, failure.Validation(fmt.Sprintf("batch %d: id %d appears more than once", i+1, id)) //nolint:wrapcheck
		}

		claimed[id] = true
	}

	unclaimed := make([]batchModel.Batch, 0, len(existing))
	for _, batch := range existing {
		if !claimed[batch.ID] {
			unclaimed = append(unclaimed, batch)
		}
	}

	for i := range input {
		switch {
		case input[i].ID != 0:
			plan.pairs = append(plan.pairs, batchPair{existing: byID[input[i].ID], input: &input[i]})
		case len(unclaimed) > 0:
			plan.pairs = append(plan.pairs, batchPair{existing: unclaimed[0], input: &input[i]})
			unclaimed = unclaimed[1:]
		default:
			plan.inserts = append(plan.inserts, &input[i])
		}
	}

	plan.orphans = unclaimed

	return plan, nil
}
