package model

import (
	"fmt"
	"strings"
)

// ResourceKind identifies one independently fetchable analytics resource.
type ResourceKind string

const (
	KindOverview    ResourceKind = "overview"
	KindTechnical   ResourceKind = "technical"
	KindSignals     ResourceKind = "signals"
	KindExpert      ResourceKind = "expert"
	KindFundamental ResourceKind = "fundamental"
	KindSentiment   ResourceKind = "sentiment"
)

// Kinds lists every snapshot resource in request order.
var Kinds = []ResourceKind{
	KindOverview,
	KindTechnical,
	KindSignals,
	KindExpert,
	KindFundamental,
	KindSentiment,
}

// Path returns the API path segment for the kind.
func (k ResourceKind) Path() string {
	if k == KindExpert {
		return "trading-expert"
	}
	return string(k)
}

// Valid reports whether k is one of the known kinds.
func (k ResourceKind) Valid() bool {
	for _, v := range Kinds {
		if v == k {
			return true
		}
	}
	return false
}

// ParseKind accepts a kind name or its API path segment.
func ParseKind(s string) (ResourceKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "trading-expert" {
		return KindExpert, nil
	}
	k := ResourceKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown resource kind %q", s)
	}
	return k, nil
}

// NormalizeSymbol trims and upper-cases a ticker. Empty input is an error.
func NormalizeSymbol(s string) (string, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return "", fmt.Errorf("symbol is required")
	}
	return s, nil
}
