package entities

import "time"

// GoalInstance is one user's progress toward a daily goal. Progress is
// monotonically increasing within a day and clamped to the target frozen at
// selection time; progress == target means complete.
type GoalInstance struct {
	UserID   int64     `db:"discord_id"`
	GoalID   string    `db:"goal_id"`
	Day      time.Time `db:"day"`
	Progress int64     `db:"progress"`
	Target   int64     `db:"target"`
}

// NewGoalInstance creates a fresh instance for the given UTC day with zero
// progress.
func NewGoalInstance(userID int64, goalID string, target int64, day time.Time) *GoalInstance {
	return &GoalInstance{
		UserID: userID,
		GoalID: goalID,
		Day:    UTCDay(day),
		Target: target,
	}
}

// AdvanceProgress adds value to the progress, clamping at the target.
func (g *GoalInstance) AdvanceProgress(value int64) {
	g.Progress += value
	if g.Progress > g.Target {
		g.Progress = g.Target
	}
}

// SetProgress overwrites the progress with an absolute value, clamping at
// the target. Used by goals that track a derived value rather than a count.
func (g *GoalInstance) SetProgress(value int64) {
	g.Progress = value
	if g.Progress > g.Target {
		g.Progress = g.Target
	}
}

// ResetProgress drops the progress back to zero.
func (g *GoalInstance) ResetProgress() {
	g.Progress = 0
}

// Complete marks the goal as finished.
func (g *GoalInstance) Complete() {
	g.Progress = g.Target
}

// IsComplete reports whether the target has been reached.
func (g *GoalInstance) IsComplete() bool {
	return g.Progress == g.Target
}

// IsForDay reports whether the instance belongs to the given UTC calendar
// day.
func (g *GoalInstance) IsForDay(day time.Time) bool {
	return UTCDay(g.Day).Equal(UTCDay(day))
}

// UTCDay truncates a time to its UTC calendar day.
func UTCDay(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
