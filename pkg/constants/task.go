package constants

type TaskState string

const (
	StatePlanned    TaskState = "planned"
	StateInProgress TaskState = "in-progress"
	StateDone       TaskState = "done"
)

// DefaultTaskState is assigned when a task is created without a state.
const DefaultTaskState = StatePlanned

type TaskCategory string

const (
	CategorySchool   TaskCategory = "school"
	CategoryWork     TaskCategory = "work"
	CategoryPersonal TaskCategory = "personal"
)

func TaskStates() []TaskState {
	return []TaskState{StatePlanned, StateInProgress, StateDone}
}

func TaskCategories() []TaskCategory {
	return []TaskCategory{CategorySchool, CategoryWork, CategoryPersonal}
}

func (s TaskState) IsValid() bool {
	switch s {
	case StatePlanned, StateInProgress, StateDone:
		return true
	}
	return false
}

func (c TaskCategory) IsValid() bool {
	switch c {
	case CategorySchool, CategoryWork, CategoryPersonal:
		return true
	}
	return false
}

// ParseTaskState reports false for anything outside the enumeration,
// including the empty string.
func ParseTaskState(s string) (TaskState, bool) {
	state := TaskState(s)
	return state, state.IsValid()
}

func ParseTaskCategory(s string) (TaskCategory, bool) {
	category := TaskCategory(s)
	return category, category.IsValid()
}
