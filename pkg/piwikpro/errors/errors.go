package errors

import (
	"encoding/json"
	goerrors "errors"
	"fmt"
	"net/http"
)

var ErrValidation = fmt.Errorf("validation error")

var ErrNotInteger = fmt.Errorf("not an integer")
var ErrKeyNotInteger = fmt.Errorf("key not an integer")
var ErrKeyNotPositive = fmt.Errorf("key not positive")
var ErrInvalidVisitorID = fmt.Errorf("invalid visitor id")
var ErrEmptyProfileAttributes = fmt.Errorf("empty profile attributes")

var ErrNotInitialized = fmt.Errorf("not initialized")
var ErrAlreadyInitialized = fmt.Errorf("already initialized")
var ErrNotLinked = fmt.Errorf("not linked")

var ErrBadRequest = fmt.Errorf("bad request")
var ErrUnauthorized = fmt.Errorf("unauthorized")
var ErrInternal = fmt.Errorf("internal error")
var ErrRequest = fmt.Errorf("request error")
var ErrBadResponse = fmt.Errorf("bad response")

const (
	NotIntegerMessage             string = "parameter must be an integer number"
	KeyNotIntegerMessage          string = "ID (key) must be an integer"
	KeyNotPositiveMessage         string = "ID (key) must be an integer greater than 0"
	EmptyProfileAttributesMessage string = "profile attributes array cannot be empty"
	NotInitializedMessage         string = "Piwik Pro SDK has not been initialized"
	AlreadyInitializedMessage     string = "Piwik Pro SDK has been already initialized"
)

type myError struct {
	msg    string
	target error
	parent error
}

func (m myError) Error() string { return m.msg }
func (m myError) Is(target error) bool {
	return target == m.target || (m.parent != nil && target == m.parent)
}

func newValidationError(msg string, target error) error {
	return &myError{
		msg:    msg,
		target: target,
		parent: ErrValidation,
	}
}

func NewNotIntegerError() error {
	return newValidationError(NotIntegerMessage, ErrNotInteger)
}

func NewKeyNotIntegerError() error {
	return newValidationError(KeyNotIntegerMessage, ErrKeyNotInteger)
}

func NewKeyNotPositiveError() error {
	return newValidationError(KeyNotPositiveMessage, ErrKeyNotPositive)
}

func NewInvalidVisitorIDError(visitorID, pattern string) error {
	return newValidationError(
		fmt.Sprintf("invalid visitor id %q: visitor id must match pattern %s", visitorID, pattern),
		ErrInvalidVisitorID,
	)
}

func NewEmptyProfileAttributesError() error {
	return newValidationError(EmptyProfileAttributesMessage, ErrEmptyProfileAttributes)
}

func NewNotInitializedError() error {
	return &myError{
		msg:    NotInitializedMessage,
		target: ErrNotInitialized,
	}
}

func NewAlreadyInitializedError() error {
	return &myError{
		msg:    AlreadyInitializedMessage,
		target: ErrAlreadyInitialized,
	}
}

func NewNotLinkedError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrNotLinked,
	}
}

func NewBadRequestError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrBadRequest,
	}
}

func NewUnauthorizedError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrUnauthorized,
	}
}

func NewInternalError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrInternal,
	}
}

const (
	//ProblemReportContentType as required by https://tools.ietf.org/html/rfc7807
	ProblemReportContentType string = "application/problem+json"

	problemTypePrefix string = "https://github.com/diwise/piwikpro-bridge/errors/"
)

type problemType struct {
	name   string
	title  string
	code   int
	target error
}

// problemTypes is ordered so that the most specific class wins when an error
// matches more than one target.
var problemTypes = []problemType{
	{"NotAnInteger", "Not An Integer", http.StatusBadRequest, ErrNotInteger},
	{"KeyNotAnInteger", "Key Not An Integer", http.StatusBadRequest, ErrKeyNotInteger},
	{"KeyNotPositive", "Key Not Positive", http.StatusBadRequest, ErrKeyNotPositive},
	{"InvalidVisitorID", "Invalid Visitor ID", http.StatusBadRequest, ErrInvalidVisitorID},
	{"EmptyProfileAttributes", "Empty Profile Attributes", http.StatusBadRequest, ErrEmptyProfileAttributes},
	{"BadRequestData", "Bad Request Data", http.StatusBadRequest, ErrBadRequest},
	{"UnauthorizedRequest", "Unauthorized Request", http.StatusUnauthorized, ErrUnauthorized},
	{"NotInitialized", "Not Initialized", http.StatusConflict, ErrNotInitialized},
	{"AlreadyInitialized", "Already Initialized", http.StatusConflict, ErrAlreadyInitialized},
	{"NotLinked", "Not Linked", http.StatusServiceUnavailable, ErrNotLinked},
}

var internalErrorType = problemType{"InternalError", "Internal Error", http.StatusInternalServerError, ErrInternal}

func problemTypeOf(err error) problemType {
	for _, pt := range problemTypes {
		if goerrors.Is(err, pt.target) {
			return pt
		}
	}
	return internalErrorType
}

//ProblemDetails stores details about a certain problem according to RFC7807
//See https://tools.ietf.org/html/rfc7807
type ProblemDetails interface {
	ContentType() string
	Type() string
	Title() string
	Detail() string
	ResponseCode() int
	MarshalJSON() ([]byte, error)
	WriteResponse(w http.ResponseWriter)
}

//ProblemDetailsImpl is an implementation of the ProblemDetails interface
type ProblemDetailsImpl struct {
	typ     string
	title   string
	detail  string
	code    int
	traceID string
}

// NewProblemFromError classifies err and returns the problem report that
// should be sent to a caller of the bridge.
func NewProblemFromError(err error, traceID string) ProblemDetails {
	pt := problemTypeOf(err)

	return &ProblemDetailsImpl{
		typ:     problemTypePrefix + pt.name,
		title:   pt.title,
		detail:  err.Error(),
		code:    pt.code,
		traceID: traceID,
	}
}

//ReportError creates a problem report from err and sends it to the supplied http.ResponseWriter
func ReportError(w http.ResponseWriter, err error, traceID string) {
	NewProblemFromError(err, traceID).WriteResponse(w)
}

// NewErrorFromProblemReport turns a problem report received from a remote
// native host back into an error of the matching class.
func NewErrorFromProblemReport(code int, contentType string, body []byte) error {
	report := &struct {
		Type   string `json:"type"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
	}{}

	err := json.Unmarshal(body, report)
	if err != nil {
		return fmt.Errorf("failed to process problem report (content-type: %s) from native host: %s (%w)", contentType, err.Error(), ErrBadResponse)
	}

	for _, pt := range problemTypes {
		if report.Type != problemTypePrefix+pt.name {
			continue
		}

		switch pt.target {
		case ErrNotInteger, ErrKeyNotInteger, ErrKeyNotPositive, ErrInvalidVisitorID, ErrEmptyProfileAttributes:
			return newValidationError(report.Detail, pt.target)
		}

		return &myError{
			msg:    report.Detail,
			target: pt.target,
		}
	}

	return NewInternalError(
		fmt.Sprintf("[code: %d] unknown problem report of type \"%s\" with detail \"%s\" received",
			code, report.Type, report.Detail,
		),
	)
}

//ContentType returns the ContentType to be used when returning this problem
func (p *ProblemDetailsImpl) ContentType() string {
	return ProblemReportContentType
}

func (p *ProblemDetailsImpl) Type() string   { return p.typ }
func (p *ProblemDetailsImpl) Title() string  { return p.title }
func (p *ProblemDetailsImpl) Detail() string { return p.detail }

//MarshalJSON is called when a ProblemDetailsImpl instance should be serialized to JSON
func (p *ProblemDetailsImpl) MarshalJSON() ([]byte, error) {
	var traceID *string

	if p.traceID != "" {
		traceID = &p.traceID
	}

	j, err := json.Marshal(struct {
		Type    string  `json:"type"`
		Title   string  `json:"title"`
		Detail  string  `json:"detail"`
		TraceID *string `json:"traceID,omitempty"`
	}{
		Type:    p.typ,
		Title:   p.title,
		Detail:  p.detail,
		TraceID: traceID,
	})
	if err != nil {
		return nil, err
	}

	return j, nil
}

//ResponseCode returns the HTTP response code to be used when returning a specific problem
func (p *ProblemDetailsImpl) ResponseCode() int {

	if p.code != 0 {
		return p.code
	}

	return http.StatusBadRequest
}

//WriteResponse writes the contents of this instance to a http.ResponseWriter
func (p *ProblemDetailsImpl) WriteResponse(w http.ResponseWriter) {
	w.Header().Add("Content-Type", p.ContentType())
	w.Header().Add("Content-Language", "en")
	w.WriteHeader(p.ResponseCode())

	pdbytes, err := json.MarshalIndent(p, "", "  ")
	if err == nil {
		w.Write(pdbytes)
	}
}
