package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestFallback_PrimarySucceeds(t *testing.T) {
	primary := NewMockProvider(MockResponse{Content: json.RawMessage(`{"a":1}`)})
	backup := NewMockProvider()
	p := WithFallback(primary, backup)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"a":1}` {
		t.Errorf("content = %s", resp.Content)
	}
	if backup.CallCount() != 0 {
		t.Errorf("backup called %d times, want 0", backup.CallCount())
	}
}

func TestFallback_WalksChainOnUnavailable(t *testing.T) {
	primary := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}})
	backup := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithFallback(primary, backup)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if primary.CallCount() != 1 || backup.CallCount() != 1 {
		t.Errorf("calls = %d/%d, want 1/1", primary.CallCount(), backup.CallCount())
	}
}

func TestFallback_WalksChainOnRateLimit(t *testing.T) {
	primary := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})
	backup := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithFallback(primary, backup)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if backup.CallCount() != 1 {
		t.Errorf("backup calls = %d, want 1", backup.CallCount())
	}
}

func TestFallback_InvalidResponse_NoFallback(t *testing.T) {
	// Bad output from a healthy provider is not a reason to switch models.
	primary := NewMockProvider(MockResponse{Err: &ErrInvalidResponse{}})
	backup := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithFallback(primary, backup)

	_, err := p.Generate(context.Background(), Request{})
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
	if backup.CallCount() != 0 {
		t.Errorf("backup calls = %d, want 0", backup.CallCount())
	}
}

func TestFallback_AllDown(t *testing.T) {
	primary := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}})
	backup := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})
	p := WithFallback(primary, backup)

	_, err := p.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected last error from chain, got %v", err)
	}
}

func TestFallback_SingleProviderUnwrapped(t *testing.T) {
	mock := NewMockProvider()
	if p := WithFallback(mock); p != Provider(mock) {
		t.Error("single provider should be returned as-is")
	}
}

func TestFallback_EmptyChainPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for an empty provider chain")
		}
	}()
	WithFallback()
}
