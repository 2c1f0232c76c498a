package llm

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestErrorWrapping(t *testing.T) {
	providerErr := errors.New("boom")
	err := NewProviderError("provider failed", providerErr)

	if got := err.Error(); got != "provider failed: boom" {
		t.Errorf("unexpected message: %q", got)
	}
	if !errors.Is(err, providerErr) {
		t.Error("expected wrapped provider error to be found with errors.Is")
	}
}

func TestIsRateLimitError(t *testing.T) {
	retryAfter := 30 * time.Second
	rateLimited := NewRateLimitError("slow down", &retryAfter, nil)

	if !IsRateLimitError(rateLimited) {
		t.Error("expected rate limit error to be detected")
	}
	if IsRateLimitError(errors.New("other")) {
		t.Error("plain error should not be a rate limit error")
	}

	// Detection must survive wrapping.
	wrapped := fmt.Errorf("call failed: %w", rateLimited)
	if !IsRateLimitError(wrapped) {
		t.Error("expected wrapped rate limit error to be detected")
	}
}

func TestIsRetryableError(t *testing.T) {
	retryAfter := time.Second
	if !IsRetryableError(NewRateLimitError("limit", &retryAfter, nil)) {
		t.Error("rate limit errors are retryable")
	}
	if IsRetryableError(NewInvalidRequestError("bad", nil)) {
		t.Error("invalid request errors are not retryable")
	}
	if IsRetryableError(errors.New("plain")) {
		t.Error("plain errors are not retryable")
	}
}

func TestExtractRetryAfter(t *testing.T) {
	retryAfter := 42 * time.Second
	err := NewRateLimitError("limit", &retryAfter, nil)

	got := ExtractRetryAfter(err)
	if got == nil || *got != retryAfter {
		t.Errorf("expected %v, got %v", retryAfter, got)
	}
	if ExtractRetryAfter(errors.New("plain")) != nil {
		t.Error("plain errors carry no retry-after hint")
	}
}
