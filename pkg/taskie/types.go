package taskie

// Priority is the 1-3 importance a task is created with.
type Priority int

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
)

// Severity is the display bucket a Priority falls into.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Severity maps 1 to low, 2 to medium and anything else to high.
func (p Priority) Severity() Severity {
	switch p {
	case PriorityLow:
		return SeverityLow
	case PriorityMedium:
		return SeverityMedium
	default:
		return SeverityHigh
	}
}

// Valid reports whether p is one of the three priorities a client may send.
func (p Priority) Valid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

// Task is a to-do item as the server returns it.
type Task struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	IsCompleted  bool     `json:"isCompleted"`
	TaskPriority Priority `json:"taskPriority"`
}

// UserProfile combines the profile endpoint with the number of open tasks.
type UserProfile struct {
	Email     string
	Name      string
	TaskCount int
}

// UserDataRequest is the body for register and login. Name is only sent
// on register.
type UserDataRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// AddTaskRequest is the body for POST /api/note.
type AddTaskRequest struct {
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	TaskPriority Priority `json:"taskPriority"`
}

// ---- Response bodies ----
// Pointer fields distinguish a missing key from an empty value.

type loginResponse struct {
	Token *string `json:"token"`
}

type messageResponse struct {
	Message *string `json:"message"`
}

type getTasksResponse struct {
	Notes []Task `json:"notes"`
}

type userProfileResponse struct {
	Email *string `json:"email"`
	Name  *string `json:"name"`
}
