// Package review implements the end-of-week review flow: a forward-only
// walk through review, score, plan, and done, working on its own copies of
// the store's actions and committing back exactly once at the end.
package review

import (
	"github.com/arnold/resolve-core/internal/models"
	"github.com/arnold/resolve-core/internal/store"
	"github.com/google/uuid"
)

// Stage is one of the four pipeline states. Transitions only move forward
// and never skip.
type Stage string

const (
	StageReview Stage = "review"
	StageScore  Stage = "score"
	StagePlan   Stage = "plan"
	StageDone   Stage = "done"
)

// Pipeline is a single week's review session. Instantiate one per review;
// it is discarded after Commit.
type Pipeline struct {
	store      *store.Store
	stage      Stage
	weekNumber int
	actions    []ReviewAction
	plan       []PlanAction
	committed  bool
}

// New snapshots the store's actions into the pipeline's working copies.
// Grouping preserves first-seen goal order; within a goal, actions keep
// their original order.
func New(s *store.Store) *Pipeline {
	p := &Pipeline{
		store:      s,
		stage:      StageReview,
		weekNumber: s.CurrentWeek(),
	}
	for _, goal := range s.Goals() {
		for _, action := range goal.Actions {
			p.actions = append(p.actions, ReviewAction{Action: action, GoalTitle: goal.Title})
			p.plan = append(p.plan, PlanAction{
				ID:        action.ID,
				GoalID:    goal.ID,
				GoalTitle: goal.Title,
				Title:     action.Title,
				Target:    action.Target,
				Enabled:   true,
			})
		}
	}
	return p
}

func (p *Pipeline) Stage() Stage        { return p.stage }
func (p *Pipeline) WeekNumber() int     { return p.weekNumber }
func (p *Pipeline) NextWeekNumber() int { return p.weekNumber + 1 }

// Advance moves to the next stage. All transitions are unconditional; at
// done it is a no-op.
func (p *Pipeline) Advance() {
	switch p.stage {
	case StageReview:
		p.stage = StageScore
	case StageScore:
		p.stage = StagePlan
	case StagePlan:
		p.stage = StageDone
	}
}

// Groups returns the review working set grouped by owning goal.
func (p *Pipeline) Groups() []Group {
	var groups []Group
	index := map[uuid.UUID]int{}
	for _, a := range p.actions {
		i, ok := index[a.GoalID]
		if !ok {
			i = len(groups)
			index[a.GoalID] = i
			groups = append(groups, Group{GoalID: a.GoalID, GoalTitle: a.GoalTitle})
		}
		groups[i].Actions = append(groups[i].Actions, a)
	}
	return groups
}

// SetCurrent records progress on a reviewed action, clamped to [0, target],
// and forwards it to the store so the goal's percentage updates live.
func (p *Pipeline) SetCurrent(actionID uuid.UUID, current int) {
	for i := range p.actions {
		a := &p.actions[i]
		if a.ID != actionID {
			continue
		}
		if current < 0 {
			current = 0
		}
		if current > a.Target {
			current = a.Target
		}
		a.Current = current
		p.store.UpdateAction(a.GoalID, actionID, current)
		return
	}
}

// Score aggregates the week across every reviewed action, goal boundaries
// ignored. Returns the rounded score plus raw completed and target totals.
func (p *Pipeline) Score() (score, completed, total int) {
	actions := make([]models.Action, len(p.actions))
	for i, a := range p.actions {
		actions[i] = a.Action
		completed += a.Current
		total += a.Target
	}
	return store.Aggregate(actions), completed, total
}

// PlanGroups returns the plan working set grouped by owning goal.
func (p *Pipeline) PlanGroups() []PlanGroup {
	var groups []PlanGroup
	index := map[uuid.UUID]int{}
	for _, a := range p.plan {
		i, ok := index[a.GoalID]
		if !ok {
			i = len(groups)
			index[a.GoalID] = i
			groups = append(groups, PlanGroup{GoalID: a.GoalID, GoalTitle: a.GoalTitle})
		}
		groups[i].Actions = append(groups[i].Actions, a)
	}
	return groups
}

// TogglePlan flips a plan action's inclusion in next week. Local to the
// pipeline until Commit.
func (p *Pipeline) TogglePlan(actionID uuid.UUID) {
	for i := range p.plan {
		if p.plan[i].ID == actionID {
			p.plan[i].Enabled = !p.plan[i].Enabled
			return
		}
	}
}

// AddPlanAction proposes a new action for next week under the given goal.
// The entry lives only in the pipeline until Commit.
func (p *Pipeline) AddPlanAction(goalID uuid.UUID, title string, target int) {
	if title == "" || target < 1 {
		return
	}
	goal, ok := p.store.Goal(goalID)
	if !ok {
		return
	}
	p.plan = append(p.plan, PlanAction{
		ID:        uuid.New(),
		GoalID:    goalID,
		GoalTitle: goal.Title,
		Title:     title,
		Target:    target,
		Enabled:   true,
	})
}

// AllSkipped reports whether every plan action is disabled. A warning
// condition for the UI, never a block.
func (p *Pipeline) AllSkipped() bool {
	if len(p.plan) == 0 {
		return false
	}
	for _, a := range p.plan {
		if a.Enabled {
			return false
		}
	}
	return true
}

// Commit closes out the week. Valid only at done, exactly once: first the
// review is completed against the pre-reset percentages, then the plan is
// applied (disabled actions removed, newly added ones created), then the
// counters roll over into the new week.
func (p *Pipeline) Commit() {
	if p.stage != StageDone || p.committed {
		return
	}
	p.committed = true

	p.store.CompleteWeeklyReview(p.weekNumber)

	existing := map[uuid.UUID]bool{}
	for _, a := range p.actions {
		existing[a.ID] = true
	}
	for _, pa := range p.plan {
		switch {
		case existing[pa.ID] && !pa.Enabled:
			p.store.DeleteAction(pa.GoalID, pa.ID)
		case !existing[pa.ID] && pa.Enabled:
			p.store.AddAction(pa.GoalID, models.Action{
				ID:     pa.ID,
				Title:  pa.Title,
				Target: pa.Target,
			})
		}
	}

	p.store.ResetActionsForNewWeek()
}
