package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/half-nothing/simple-surety/internal/interfaces/operation"
	"github.com/half-nothing/simple-surety/internal/interfaces/surety"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		err      error
		name     string
		httpCode HttpCode
	}{
		{surety.ErrFlightClosed, "FLIGHT_CLOSED", PermissionDenied},
		{surety.Errorf(surety.ErrUnauthorized, "not an airline"), "UNAUTHORIZED", PermissionDenied},
		{surety.Errorf(surety.ErrNotFound, "no flight"), "NOT_FOUND", NotFound},
		{fmt.Errorf("lookup: %w", operation.ErrAccountNotFound), "NOT_FOUND", NotFound},
		{surety.ErrDuplicate, "DUPLICATE", Conflict},
		{surety.ErrInsufficientValue, "INSUFFICIENT_VALUE", BadRequest},
		{surety.ErrValueTooHigh, "VALUE_TOO_HIGH", BadRequest},
		{surety.ErrNotOperational, "NOT_OPERATIONAL", ServiceUnavailable},
		{surety.ErrAlreadyClaimed, "ALREADY_CLAIMED", Conflict},
		{surety.ErrNothingToClaim, "NOTHING_TO_CLAIM", BadRequest},
		{surety.ErrInvalidArgument, "PARAM_ERROR", BadRequest},
	}
	pass, fail := 0, 0
	for _, test := range tests {
		status := ErrorStatus(test.err)
		if status == nil || status.StatusName != test.name || status.HttpCode != test.httpCode {
			t.Errorf("ErrorStatus(%v) = %+v, want %s %d", test.err, status, test.name, test.httpCode)
			fail++
			continue
		}
		pass++
	}
	if status := ErrorStatus(errors.New("disk full")); status != nil {
		t.Errorf("ErrorStatus(unknown) = %+v, want nil", status)
		fail++
	} else {
		pass++
	}
	t.Logf("Passed: %d, Failed: %d", pass, fail)
}
