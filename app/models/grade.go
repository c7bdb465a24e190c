package models

// Grade is a class section within a level, optionally assigned to a teacher.
type Grade struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	LevelID   int    `json:"level_id"`
	TeacherID *int   `json:"teacher_id,omitempty"`
}
