package domain

import (
	"testing"
	"time"
)

func TestSession_Active(t *testing.T) {
	exp := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	s := &Session{ExpiresAt: exp}

	if !s.Active(exp.Add(-time.Second)) {
		t.Error("session should be active one second before expiry")
	}
	if s.Active(exp) {
		t.Error("session should not be active at expiry")
	}
	if s.Active(exp.Add(time.Second)) {
		t.Error("session should not be active after expiry")
	}
}
