package planner

import (
	"fmt"

	"tableflip.dev/voyage/pkg/trip"
)

// ReorderActivities moves the activity movedID so it lands where targetID
// currently sits, within a single day. The move is stable: every other
// activity keeps its relative order, the sequence length and id set never
// change, and no activity's own fields are touched. Dropping an activity
// onto itself is a no-op; an unknown id leaves the sequence untouched and
// reports ErrNotFound.
func ReorderActivities(s State, tripID, dayID, movedID, targetID string) (State, error) {
	t := s.Trip(tripID)
	if t == nil {
		return s, fmt.Errorf("%w: trip %s", ErrNotFound, tripID)
	}
	day := t.Day(dayID)
	if day == nil {
		return s, fmt.Errorf("%w: day %s", ErrNotFound, dayID)
	}

	if movedID == targetID {
		return s, nil
	}

	reordered, err := reorder(day.Activities, movedID, targetID)
	if err != nil {
		return s, err
	}

	// Fresh slice identity only on the changed path; untouched trips and
	// days keep their existing structure.
	next := s.Clone()
	next.Trip(tripID).Day(dayID).Activities = reordered
	return next, nil
}

// MoveActivity shifts the activity one position up (delta -1) or down
// (delta +1), clamping at the ends. It is the keyboard counterpart of a
// drag gesture and is expressed as a plain reorder.
func MoveActivity(s State, tripID, dayID, activityID string, delta int) (State, error) {
	t := s.Trip(tripID)
	if t == nil {
		return s, fmt.Errorf("%w: trip %s", ErrNotFound, tripID)
	}
	day := t.Day(dayID)
	if day == nil {
		return s, fmt.Errorf("%w: day %s", ErrNotFound, dayID)
	}
	idx := indexOf(day.Activities, activityID)
	if idx < 0 {
		return s, fmt.Errorf("%w: activity %s", ErrNotFound, activityID)
	}
	target := idx + delta
	if target < 0 || target >= len(day.Activities) {
		return s, nil
	}
	return ReorderActivities(s, tripID, dayID, activityID, day.Activities[target].ID)
}

// reorder performs the single splice-out/splice-in move on a copy of the
// sequence. The insertion index is computed against the sequence after
// removal, matching drop-onto-target semantics.
func reorder(activities []*trip.Activity, movedID, targetID string) ([]*trip.Activity, error) {
	oldIndex := indexOf(activities, movedID)
	if oldIndex < 0 {
		return nil, fmt.Errorf("%w: activity %s", ErrNotFound, movedID)
	}
	newIndex := indexOf(activities, targetID)
	if newIndex < 0 {
		return nil, fmt.Errorf("%w: activity %s", ErrNotFound, targetID)
	}

	out := make([]*trip.Activity, 0, len(activities))
	out = append(out, activities[:oldIndex]...)
	out = append(out, activities[oldIndex+1:]...)

	moved := activities[oldIndex]
	out = append(out, nil)
	copy(out[newIndex+1:], out[newIndex:])
	out[newIndex] = moved
	return out, nil
}

func indexOf(activities []*trip.Activity, id string) int {
	for i, a := range activities {
		if a.ID == id {
			return i
		}
	}
	return -1
}
