package models

import "time"

type GritLog struct {
	ID              string    `json:"id"`
	Date            string    `json:"date"`
	TaskName        string    `json:"taskName"`
	DifficultyScore int       `json:"difficultyScore"`
	EnduredTime     int       `json:"enduredTime"`
	EnduranceScore  int       `json:"enduranceScore"`
	Details         string    `json:"details,omitempty"`
	WasSuccessful   *bool     `json:"wasSuccessful,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewLog carries the user-entered fields of a log. The store fills in the id,
// the creation time and the endurance score.
type NewLog struct {
	Date            string
	TaskName        string
	DifficultyScore int
	EnduredTime     int
	Details         string
	WasSuccessful   *bool
}

// LogPatch lists the editable fields of a log; nil fields are left untouched.
type LogPatch struct {
	Date            *string
	TaskName        *string
	DifficultyScore *int
	EnduredTime     *int
	Details         *string
	WasSuccessful   *bool
}

// TouchesScore reports whether applying the patch changes an input of the
// endurance score.
func (p LogPatch) TouchesScore() bool {
	return p.DifficultyScore != nil || p.EnduredTime != nil
}

// Apply merges the patch onto a copy of l. The endurance score is not
// recomputed here.
func (p LogPatch) Apply(l GritLog) GritLog {
	if p.Date != nil {
		l.Date = *p.Date
	}
	if p.TaskName != nil {
		l.TaskName = *p.TaskName
	}
	if p.DifficultyScore != nil {
		l.DifficultyScore = *p.DifficultyScore
	}
	if p.EnduredTime != nil {
		l.EnduredTime = *p.EnduredTime
	}
	if p.Details != nil {
		l.Details = *p.Details
	}
	if p.WasSuccessful != nil {
		v := *p.WasSuccessful
		l.WasSuccessful = &v
	}
	return l
}

// Clone returns a copy that shares no pointers with l.
func (l GritLog) Clone() GritLog {
	if l.WasSuccessful != nil {
		v := *l.WasSuccessful
		l.WasSuccessful = &v
	}
	return l
}
