package validation

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/lorrc/restaurant-console/internal/core/domain"
	apperrors "github.com/lorrc/restaurant-console/internal/core/errors"
)

// Pagination bounds for list endpoints
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	maxBodyBytes = 1 << 20
)

// Validatable is implemented by forms that check themselves.
type Validatable interface {
	Validate() *apperrors.ValidationErrors
}

// DecodeAndValidate decodes the JSON request body into T and, when T is
// Validatable, runs its checks.
func DecodeAndValidate[T any](r *http.Request) (*T, error) {
	req, err := Decode[T](r)
	if err != nil {
		return nil, err
	}

	if v, ok := any(req).(Validatable); ok {
		if errs := v.Validate(); errs != nil && errs.HasErrors() {
			return nil, errs
		}
	}

	return req, nil
}

// Decode decodes the JSON request body into T without validating it.
func Decode[T any](r *http.Request) (*T, error) {
	var req T

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, apperrors.NewBadRequestError(err, "Request body is required")
		}
		return nil, apperrors.NewBadRequestError(err, "Invalid request body")
	}

	return &req, nil
}

// ParseListParams extracts page, limit and status from the query string.
// Out of range values fall back to the defaults and the limit is capped.
func ParseListParams(r *http.Request) domain.ListParams {
	params := domain.ListParams{
		Page:   ParseIntQueryParam(r, "page", DefaultPage),
		Limit:  ParseIntQueryParam(r, "limit", DefaultLimit),
		Status: strings.TrimSpace(r.URL.Query().Get("status")),
	}

	if params.Page < 1 {
		params.Page = DefaultPage
	}
	if params.Limit < 1 {
		params.Limit = DefaultLimit
	}
	if params.Limit > MaxLimit {
		params.Limit = MaxLimit
	}

	return params
}

// ParseIntQueryParam safely parses an integer query parameter
func ParseIntQueryParam(r *http.Request, key string, defaultValue int) int {
	valueStr := r.URL.Query().Get(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil || value < 0 {
		return defaultValue
	}

	return value
}

// ParseDateQueryParam parses a YYYY-MM-DD query parameter. A missing
// parameter yields the zero time.
func ParseDateQueryParam(r *http.Request, key string) (time.Time, error) {
	valueStr := r.URL.Query().Get(key)
	if valueStr == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(time.DateOnly, valueStr)
	if err != nil {
		errs := apperrors.NewValidationErrors()
		errs.Add(key, "Must be a date in YYYY-MM-DD format")
		return time.Time{}, errs
	}
	return t, nil
}

// ParseReportParams reads the from and to dates of a report request.
func ParseReportParams(r *http.Request) (domain.ReportParams, error) {
	from, err := ParseDateQueryParam(r, "from")
	if err != nil {
		return domain.ReportParams{}, err
	}
	to, err := ParseDateQueryParam(r, "to")
	if err != nil {
		return domain.ReportParams{}, err
	}

	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		errs := apperrors.NewValidationErrors()
		errs.Add("to", "Must not be before from")
		return domain.ReportParams{}, errs
	}

	return domain.ReportParams{From: from, To: to}, nil
}
