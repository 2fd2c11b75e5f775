package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegistry(t *testing.T) {
	now := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	r := newRegistry(func() *Session { return NewSession() }, func() time.Time {
		return now
	})

	var first *Session
	r.with("alice", func(s *Session) { first = s })
	r.with("alice", func(s *Session) {
		assert.Same(t, first, s)
	})
	r.with("bob", func(s *Session) {
		assert.NotSame(t, first, s)
	})
	assert.Equal(t, 2, r.len())

	now = now.Add(10 * time.Minute)
	r.with("bob", func(*Session) {})

	now = now.Add(10 * time.Minute)
	n := r.evictIdle(15 * time.Minute)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, r.len())

	r.with("alice", func(s *Session) {
		assert.NotSame(t, first, s)
	})
}
