// File: services/dialogue/flow_allslots.go
package dialogue

import (
	"context"
	"sync"

	"driveline/models"
)

// handleAwaitingDateAllSlots collects the date for the all-instructors
// path, fans out one availability lookup per active instructor, and
// flattens the results into one globally numbered list.
func handleAwaitingDateAllSlots(ctx context.Context, e *Engine, session *models.ChatSession, msg string) turnOutcome {
	date := e.Extractor.ExtractDate(ctx, msg)
	if !date.Resolved {
		return turnOutcome{reply: replyDateUnclear}
	}

	instructors := e.Gateway.ListActiveInstructors(ctx)
	if len(instructors) == 0 {
		return turnOutcome{reply: replyNoInstructors}
	}

	offered := e.collectAllSlots(ctx, instructors, date.Date)
	if len(offered) == 0 {
		// Same state; the user picks another date.
		return turnOutcome{reply: replyNoSlots(date.Formatted)}
	}

	session.Data.Date = date.Date
	session.Data.DateFormatted = date.Formatted
	session.Data.OfferedSlots = offered
	session.State = models.StateAwaitingSlotFromAll
	return turnOutcome{reply: replySlotList(session.Data), mutated: true}
}

// collectAllSlots queries every instructor concurrently (the lookups are
// read-only and independent) and merges deterministically: instructors in
// directory order, slots in gateway-returned order, with increasing global
// display indices.
func (e *Engine) collectAllSlots(ctx context.Context, instructors []models.Instructor, date string) []models.OfferedSlot {
	results := make([][]models.Slot, len(instructors))
	var wg sync.WaitGroup
	for i, ins := range instructors {
		wg.Add(1)
		go func(i int, ins models.Instructor) {
			defer wg.Done()
			results[i] = e.Gateway.ListFreeSlots(ctx, ins, date)
		}(i, ins)
	}
	wg.Wait()

	var offered []models.OfferedSlot
	index := 1
	for i := range instructors {
		for _, slot := range results[i] {
			offered = append(offered, models.OfferedSlot{
				Slot:       slot,
				Index:      index,
				Instructor: &instructors[i],
			})
			index++
		}
	}
	return offered
}

// handleAwaitingSlotFromAll resolves a numbered choice against the
// flattened list, binding both the instructor and the slot.
func handleAwaitingSlotFromAll(ctx context.Context, e *Engine, session *models.ChatSession, msg string) turnOutcome {
	offered := session.Data.OfferedSlots
	n := e.Extractor.ExtractBoundedNumber(ctx, msg, 1, len(offered))
	if !n.Resolved {
		return turnOutcome{reply: replyOutOfRange(len(offered))}
	}
	return bindOfferedSlot(session, offered[n.Value-1])
}
