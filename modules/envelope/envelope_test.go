package envelope

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixkapfer/finalghecko/modules/apperror"
)

var taskPolicy = Policy{
	Redirect:       true,
	RedirectTarget: "http://127.0.0.1:5000/dashboard",
	FeedbackTarget: "#Task-Feedback",
	MessagesTarget: "#Task-Feedback-Error-Wrapper",
}

func TestDefault_JSON(t *testing.T) {
	data, err := json.Marshal(Default())
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"status": false,
		"status-code": null,
		"status-description": null,
		"redirect-status": false,
		"redirect-target": null,
		"display-messages": null,
		"display-messages-target": null
	}`, string(data))
}

func TestInvalid(t *testing.T) {
	records := []apperror.Record{
		apperror.Empty("#Task-Title", "Please enter a Task Title!"),
		apperror.TooShort("#Task-Description", "Task-Description", 15),
	}

	resp := Invalid(records)

	assert.Equal(t, Default(), resp.Status)
	require.Len(t, resp.Errors, 2)
	assert.Equal(t, "12-1", resp.Errors[0].Code)
	assert.Nil(t, resp.Count)
	assert.Nil(t, resp.Data)
	assert.False(t, resp.Validated())
	assert.Zero(t, resp.Code())
}

func TestSuccess(t *testing.T) {
	resp := Success(taskPolicy, []string{"a", "b"}, 2)

	assert.True(t, resp.Status.Status)
	assert.Equal(t, 200, resp.Code())
	assert.Equal(t, "OK", *resp.Status.StatusDescription)
	assert.True(t, resp.Status.RedirectStatus)
	assert.Equal(t, "http://127.0.0.1:5000/dashboard", *resp.Status.RedirectTarget)
	assert.Nil(t, resp.Status.DisplayMessages)
	assert.Empty(t, resp.Errors)
	assert.Equal(t, int64(2), *resp.Count)
	assert.True(t, resp.Validated())

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.EqualValues(t, 2, m["count-result-set"])
	assert.Len(t, m["result-set-data"], 2)
	assert.NotContains(t, m, "errors")
}

func TestSuccess_WithoutRedirect(t *testing.T) {
	resp := Success(Policy{FeedbackTarget: "#Task-Feedback"}, nil, 0)

	assert.False(t, resp.Status.RedirectStatus)
	assert.Nil(t, resp.Status.RedirectTarget)
}

func TestFailure(t *testing.T) {
	resp := Failure(taskPolicy, apperror.NewDataError(apperror.NoResultFound, nil))

	assert.False(t, resp.Status.Status)
	assert.Equal(t, 404, resp.Code())
	assert.Equal(t, "Error", *resp.Status.StatusDescription)
	assert.False(t, resp.Status.RedirectStatus)
	assert.Nil(t, resp.Status.RedirectTarget)
	assert.Equal(t, DisplayInPage, resp.Status.DisplayMessages)
	assert.Equal(t, "#Task-Feedback-Error-Wrapper", *resp.Status.DisplayMessagesTarget)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "01-1", resp.Errors[0].Code)
	assert.Equal(t, "#Task-Feedback", resp.Errors[0].RenderOutput)
	assert.Nil(t, resp.Count)
	assert.True(t, resp.Validated())
}

func TestFailure_UnclassifiedError(t *testing.T) {
	resp := Failure(taskPolicy, errors.New("driver exploded"))

	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "10-1", resp.Errors[0].Code)
	assert.Equal(t, 404, resp.Code())
}

func TestFrom(t *testing.T) {
	ok := From(taskPolicy, "x", 1, nil)
	assert.True(t, ok.Status.Status)

	failed := From(taskPolicy, "x", 1, apperror.NewDataError(apperror.MultipleResultsFound, nil))
	assert.False(t, failed.Status.Status)
	assert.Equal(t, "06-1", failed.Errors[0].Code)
	assert.Nil(t, failed.Data)
}

func TestPolicy_WithMessagesTarget(t *testing.T) {
	p := taskPolicy.WithMessagesTarget("#Invalid-User-Credentials")

	assert.Equal(t, "#Invalid-User-Credentials", p.MessagesTarget)
	assert.Equal(t, "#Task-Feedback-Error-Wrapper", taskPolicy.MessagesTarget)
}
