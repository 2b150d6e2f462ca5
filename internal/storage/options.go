package storage

import (
	"fmt"
	"strings"

	"go.flashlog/internal/layout"
	"go.flashlog/internal/logger"
	"go.flashlog/internal/metrics"
)

// TimestampPolicy decides whether a header whose magic matches but whose
// timestamp is the sentinel still counts as a page holding data.
type TimestampPolicy int

const (
	// AcceptAnyTimestamp trusts the magic alone.
	AcceptAnyTimestamp TimestampPolicy = iota
	// RejectSentinelTimestamp treats a sentinel timestamp as corruption.
	RejectSentinelTimestamp
)

func (p TimestampPolicy) String() string {
	switch p {
	case AcceptAnyTimestamp:
		return "accept-any"
	case RejectSentinelTimestamp:
		return "reject-sentinel"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

func ParseTimestampPolicy(s string) (TimestampPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "accept-any":
		return AcceptAnyTimestamp, nil
	case "reject-sentinel":
		return RejectSentinelTimestamp, nil
	}
	return AcceptAnyTimestamp, fmt.Errorf("unknown timestamp policy %q", s)
}

type Options struct {
	Format layout.Format
	// ChunkSize caps every buffer transfer. Zero uses the medium's limit.
	ChunkSize int
	Policy    TimestampPolicy
	Logger    *logger.Logger
	Metrics   *metrics.Metrics
}
