package task

import (
	domain "github.com/felixkapfer/finalghecko/domain/task"
	"github.com/felixkapfer/finalghecko/modules/apperror"
	"github.com/felixkapfer/finalghecko/modules/validation"
)

// Render targets of the task forms.
const (
	TargetTitle       = "#Task-Title"
	TargetDescription = "#Task-Description"
	TargetStatus      = "#Task-Status"
	TargetEndDate     = "#Task-End-Date"
	TargetFeedback    = "#Task-Feedback"
	TargetWrapper     = "#Task-Feedback-Error-Wrapper"
)

const (
	lettersAndSpaces = "letters from a-z or A-Z and spaces"
	statusHint       = "In Progress, Todo or Done"
)

func titleField(v string) validation.Field {
	return validation.Field{
		Target:       TargetTitle,
		Value:        v,
		EmptyMessage: "Please enter a Task Title!",
		Rules: []validation.Rule{
			validation.AlphaWithSpaces("Task Title", lettersAndSpaces),
			validation.MinLen("Task Title", 2),
			validation.MaxLen("Task Title", 75),
		},
	}
}

func descriptionField(v string) validation.Field {
	return validation.Field{
		Target:       TargetDescription,
		Value:        v,
		EmptyMessage: "Please enter a Task-Description!",
		Rules: []validation.Rule{
			validation.AlphaWithSpaces("Task-Description", lettersAndSpaces),
			validation.MinLen("Task-Description", 15),
		},
	}
}

func statusField(v string) validation.Field {
	return validation.Field{
		Target:       TargetStatus,
		Value:        v,
		EmptyMessage: "Please select a Task-Status!",
		Rules: []validation.Rule{
			validation.Alpha("Task-Status", statusHint),
			knownStatus,
		},
	}
}

// knownStatus accepts exactly the three board literals.
func knownStatus(_ validation.Checker, target, value string) (apperror.Record, bool) {
	if domain.Status(value).Valid() {
		return apperror.Record{}, false
	}
	return apperror.WrongClass(target, "Task-Status", statusHint), true
}

func endDateField(v string) validation.Field {
	return validation.Field{
		Target:       TargetEndDate,
		Value:        v,
		EmptyMessage: "Please enter a Task-Enddate!",
		Rules:        []validation.Rule{validation.Date("Task-Enddate")},
	}
}

func ownerField(ownerID string) validation.Field {
	return validation.Field{
		Target:       TargetFeedback,
		Value:        ownerID,
		EmptyMessage: "Please validate that an user is logged in to identify user tasks!",
	}
}

func projectIDField(id string) validation.Field {
	return validation.Field{
		Target:       TargetFeedback,
		Value:        id,
		EmptyMessage: "Please validate that an Project Id is set to identify the assigned project!",
	}
}

func taskIDField(id string) validation.Field {
	return validation.Field{
		Target:       TargetFeedback,
		Value:        id,
		EmptyMessage: "Please validate that an Task Id is set to identify the required task!",
	}
}

func scopeFields(ownerID, projectID, taskID string) []validation.Field {
	return []validation.Field{ownerField(ownerID), projectIDField(projectID), taskIDField(taskID)}
}

func createFields(req CreateRequest) []validation.Field {
	fields := []validation.Field{
		ownerField(req.OwnerID),
		projectIDField(req.ProjectID),
		titleField(req.Title),
		descriptionField(req.Description),
	}
	if req.Status != "" {
		fields = append(fields, statusField(req.Status))
	}
	return append(fields, endDateField(req.EndDate))
}

func updateFields(req UpdateRequest) []validation.Field {
	fields := scopeFields(req.OwnerID, req.ProjectID, req.TaskID)
	if req.Title != nil {
		fields = append(fields, titleField(*req.Title))
	}
	if req.Description != nil {
		fields = append(fields, descriptionField(*req.Description))
	}
	if req.EndDate != nil {
		fields = append(fields, endDateField(*req.EndDate))
	}
	return fields
}

func updateStatusFields(req UpdateStatusRequest) []validation.Field {
	return append(scopeFields(req.OwnerID, req.ProjectID, req.TaskID), statusField(req.Status))
}

func countFields(req CountRequest) []validation.Field {
	return []validation.Field{ownerField(req.OwnerID), statusField(req.Status)}
}
