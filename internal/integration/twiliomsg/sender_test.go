package twiliomsg

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/restodesk/backoffice/internal/config"
)

func TestSenderWithoutCredentials(t *testing.T) {
	s := New(&config.TwilioConfig{From: "+3100000000"})

	assert.ErrorIs(t, s.Send(context.Background(), "+31611111111", "hi"), ErrNotConfigured)
}
