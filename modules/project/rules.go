package project

import (
	"github.com/felixkapfer/finalghecko/modules/validation"
)

// Render targets of the project forms.
const (
	TargetTitle       = "#Project-Title"
	TargetDescription = "#Project-Description"
	TargetStartDate   = "#Project-Start-Date"
	TargetEndDate     = "#Project-End-Date"
	TargetFeedback    = "#Project-Feedback"
	TargetWrapper     = "#Project-Feedback-Error-Wrapper"
)

const lettersAndSpaces = "letters from a-z or A-Z and spaces"

func titleField(v string) validation.Field {
	return validation.Field{
		Target:       TargetTitle,
		Value:        v,
		EmptyMessage: "Please enter a Project Title!",
		Rules: []validation.Rule{
			validation.AlphaWithSpaces("Project Title", lettersAndSpaces),
			validation.MinLen("Project Title", 2),
			validation.MaxLen("Project Title", 75),
		},
	}
}

func descriptionField(v string) validation.Field {
	return validation.Field{
		Target:       TargetDescription,
		Value:        v,
		EmptyMessage: "Please enter a Project-Description!",
		Rules: []validation.Rule{
			validation.AlphaWithSpaces("Project-Description", lettersAndSpaces),
			validation.MinLen("Project-Description", 15),
		},
	}
}

func startDateField(v string) validation.Field {
	return validation.Field{
		Target:       TargetStartDate,
		Value:        v,
		EmptyMessage: "Please enter a Project-Startdate!",
		Rules:        []validation.Rule{validation.Date("Project-Startdate")},
	}
}

func endDateField(v string) validation.Field {
	return validation.Field{
		Target:       TargetEndDate,
		Value:        v,
		EmptyMessage: "Please enter a Project-Enddate!",
		Rules:        []validation.Rule{validation.Date("Project-Enddate")},
	}
}

func ownerField(ownerID string) validation.Field {
	return validation.Field{
		Target:       TargetFeedback,
		Value:        ownerID,
		EmptyMessage: "Please validate that an user is logged in to identify user project!",
	}
}

func projectIDField(id string) validation.Field {
	return validation.Field{
		Target:       TargetFeedback,
		Value:        id,
		EmptyMessage: "Please validate that an Project Id is set to identify the required project!",
	}
}

func createFields(req CreateRequest) []validation.Field {
	return []validation.Field{
		ownerField(req.OwnerID),
		titleField(req.Title),
		descriptionField(req.Description),
		startDateField(req.StartDate),
		endDateField(req.EndDate),
	}
}

func updateFields(req UpdateRequest) []validation.Field {
	fields := []validation.Field{ownerField(req.OwnerID), projectIDField(req.ProjectID)}
	if req.Title != nil {
		fields = append(fields, titleField(*req.Title))
	}
	if req.Description != nil {
		fields = append(fields, descriptionField(*req.Description))
	}
	if req.StartDate != nil {
		fields = append(fields, startDateField(*req.StartDate))
	}
	if req.EndDate != nil {
		fields = append(fields, endDateField(*req.EndDate))
	}
	return fields
}

func durationFields(req DurationRequest) []validation.Field {
	return []validation.Field{
		ownerField(req.OwnerID),
		projectIDField(req.ProjectID),
		{
			Target:       TargetFeedback,
			Value:        req.Mode,
			EmptyMessage: "Please select which dates to compare!",
			Rules:        []validation.Rule{validation.OneOf("Duration-Mode", "start-to-end, start-to-today or today-to-end", Modes()...)},
		},
	}
}
