package collector

import (
	"bytes"
	"encoding/json"
	"fmt"

	"SignalDeck/internal/model"
)

// newPayload returns an empty payload value for kind.
func newPayload(kind model.ResourceKind) (any, error) {
	switch kind {
	case model.KindOverview:
		return &model.Overview{}, nil
	case model.KindTechnical:
		return &model.Technical{}, nil
	case model.KindSignals:
		return &model.SignalsResponse{}, nil
	case model.KindExpert:
		return &model.Expert{}, nil
	case model.KindFundamental:
		return &model.FundamentalResponse{}, nil
	case model.KindSentiment:
		return &model.SentimentResponse{}, nil
	}
	return nil, fmt.Errorf("no payload type for kind %q", kind)
}

// decodeObject unmarshals body into target. The body must be a JSON object;
// arrays, scalars and malformed input are parse failures.
func decodeObject(body []byte, target any) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("expected JSON object")
	}
	if err := json.Unmarshal(trimmed, target); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

// DecodePayload decodes a raw response body for kind.
func DecodePayload(kind model.ResourceKind, body []byte) (any, error) {
	payload, err := newPayload(kind)
	if err != nil {
		return nil, err
	}
	if err := decodeObject(body, payload); err != nil {
		return nil, err
	}
	return payload, nil
}
