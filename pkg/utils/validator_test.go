package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Title    string  `json:"title" validate:"required,min=3"`
	Status   string  `json:"status" validate:"required,oneof=Pending 'In Progress' Completed"`
	DueDate  string  `json:"due_date" validate:"required,iso8601"`
	Assignee *string `json:"assignee_id" validate:"omitempty,uuid"`
}

func TestValidateStructAcceptsQuotedOneOf(t *testing.T) {
	req := sampleRequest{Title: "Write report", Status: "In Progress", DueDate: "2026-05-01"}
	assert.NoError(t, ValidateStruct(&req))
}

func TestGetValidationErrorsUsesJSONNames(t *testing.T) {
	bad := "not-a-uuid"
	req := sampleRequest{Title: "ab", Status: "Done", DueDate: "soon", Assignee: &bad}

	err := ValidateStruct(&req)
	require.Error(t, err)

	fields := map[string]string{}
	for _, fe := range GetValidationErrors(err) {
		fields[fe.Field] = fe.Message
	}

	assert.Equal(t, "title must be at least 3 characters", fields["title"])
	assert.Equal(t, "status must be one of: Pending In Progress Completed", fields["status"])
	assert.Equal(t, "due_date must be a valid ISO 8601 date", fields["due_date"])
	assert.Equal(t, "assignee_id must be a valid UUID", fields["assignee_id"])
}
