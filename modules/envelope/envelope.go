// Package envelope builds the uniform response returned by every operation.
package envelope

import (
	"github.com/felixkapfer/finalghecko/modules/apperror"
)

// DisplayInPage is the display-messages value used for in-page alerts.
const DisplayInPage = "inpage-alert"

// Envelope carries the outcome and the UI hints of an operation.
type Envelope struct {
	Status                bool    `json:"status"`
	StatusCode            *int    `json:"status-code"`
	StatusDescription     *string `json:"status-description"`
	RedirectStatus        bool    `json:"redirect-status"`
	RedirectTarget        *string `json:"redirect-target"`
	DisplayMessages       any     `json:"display-messages"`
	DisplayMessagesTarget *string `json:"display-messages-target"`
}

// Response is the envelope plus either the errors or the result set.
type Response struct {
	Status Envelope          `json:"status"`
	Errors []apperror.Record `json:"errors,omitempty"`
	Count  *int64            `json:"count-result-set,omitempty"`
	Data   any               `json:"result-set-data,omitempty"`
}

// Policy holds the per-endpoint redirect and display settings.
type Policy struct {
	// Redirect enables redirect-status on success.
	Redirect       bool
	RedirectTarget string
	// FeedbackTarget is the render target of data error records.
	FeedbackTarget string
	// MessagesTarget is the wrapper element that shows data errors.
	MessagesTarget string
}

// WithMessagesTarget returns a copy of p using target as the message wrapper.
func (p Policy) WithMessagesTarget(target string) Policy {
	p.MessagesTarget = target
	return p
}

// Default returns the envelope every operation starts from.
func Default() Envelope {
	return Envelope{}
}

// Invalid reports validation failures. The envelope is left at its default
// and the first record is at index 0.
func Invalid(records []apperror.Record) Response {
	return Response{Status: Default(), Errors: records}
}

// Success reports a completed operation with its payload.
func Success(p Policy, data any, count int64) Response {
	env := Default()
	env.Status = true
	env.StatusCode = ptr(200)
	env.StatusDescription = ptr("OK")
	if p.Redirect {
		env.RedirectStatus = true
		env.RedirectTarget = ptr(p.RedirectTarget)
	}
	return Response{Status: env, Count: &count, Data: data}
}

// Failure reports a repository error. Every data error uses status code 404.
func Failure(p Policy, err error) Response {
	env := Default()
	env.StatusCode = ptr(404)
	env.StatusDescription = ptr("Error")
	env.DisplayMessages = DisplayInPage
	if p.MessagesTarget != "" {
		env.DisplayMessagesTarget = ptr(p.MessagesTarget)
	}
	return Response{Status: env, Errors: []apperror.Record{apperror.RecordOf(err, p.FeedbackTarget)}}
}

// From builds the response of a repository call: Failure when err is set,
// Success otherwise.
func From(p Policy, data any, count int64, err error) Response {
	if err != nil {
		return Failure(p, err)
	}
	return Success(p, data, count)
}

// Validated reports whether the response passed validation. A response with
// errors but no status code carries form errors.
func (r Response) Validated() bool {
	return len(r.Errors) == 0 || r.Status.StatusCode != nil
}

// Code returns the status code, or 0 when none was set.
func (r Response) Code() int {
	if r.Status.StatusCode == nil {
		return 0
	}
	return *r.Status.StatusCode
}

func ptr[T any](v T) *T {
	return &v
}
