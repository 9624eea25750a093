package tui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanizeServerUnavailableError(t *testing.T) {
	assert.Empty(t, humanizeServerUnavailableError(nil))

	connectivity := []error{
		errors.New(`Post "http://localhost:8000/auth/login": dial tcp 127.0.0.1:8000: connect: connection refused`),
		errors.New("lookup portal.example.edu: no such host"),
		errors.New("read tcp 10.0.0.2:51234: i/o timeout"),
		errors.New("context deadline exceeded"),
	}
	for _, err := range connectivity {
		assert.Equal(t, "No network, or the portal backend is unreachable", humanizeServerUnavailableError(err))
	}

	rejection := errors.New("client unauthorized: Invalid credentials")
	assert.Equal(t, rejection.Error(), humanizeServerUnavailableError(rejection))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "exactly-10", fitText("exactly-10", 10))
	assert.Equal(t, "truncat...", fitText("truncated-beyond", 10))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "untouched", fitText("untouched", 0))
}
