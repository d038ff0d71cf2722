package tracker

// Task is a tracked work item. Every task belongs to exactly one owning
// user and is visible and mutable only through requests authenticated as
// that owner. Date fields are stored as received from the client.
type Task struct {
	ID           string   `bson:"_id,omitempty" json:"id"`
	Title        string   `bson:"title" json:"title"`
	CreatedAt    string   `bson:"created_at" json:"created_at"`
	DueDate      string   `bson:"due_date" json:"due_date"`
	Priority     string   `bson:"priority" json:"priority"`
	Note         string   `bson:"note" json:"note"`
	Reason       string   `bson:"reason" json:"reason"`
	Status       string   `bson:"status" json:"status"`
	AssignedTo   string   `bson:"assigned_to" json:"assigned_to"`
	PriorityTags []string `bson:"priority_tags,omitempty" json:"priority_tags,omitempty"`
	Owner        string   `bson:"owner" json:"owner"`
}

func (t *Task) RecordID() string      { return t.ID }
func (t *Task) SetRecordID(id string) { t.ID = id }
func (t *Task) RecordOwner() string   { return t.Owner }

// QTask is a daily quick-task log entry. The work and personal task lists
// arrive as JSON arrays and are flattened to a single ", "-delimited text
// field before persisting. QTasks are created once and never updated.
type QTask struct {
	ID            string `bson:"_id,omitempty" json:"id"`
	Date          string `bson:"date" json:"date"`
	WorkTasks     string `bson:"workTasks" json:"workTasks"`
	PersonalTasks string `bson:"personalTasks" json:"personalTasks"`
	AssignedBy    string `bson:"assigned_by" json:"assigned_by"`
	Notes         string `bson:"notes" json:"notes"`
	TimeSpent     string `bson:"timeSpent" json:"timeSpent"`
	Owner         string `bson:"owner" json:"owner"`
}

func (q *QTask) RecordID() string      { return q.ID }
func (q *QTask) SetRecordID(id string) { q.ID = id }
func (q *QTask) RecordOwner() string   { return q.Owner }

// Record is implemented by owner-scoped records handled by the shared
// repository. The ownership-check logic lives once in the repository
// instead of being duplicated per record kind.
type Record interface {
	RecordID() string
	SetRecordID(id string)
	RecordOwner() string
}
