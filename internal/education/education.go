// Package education looks up explanatory text for dashboard metrics.
package education

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"SignalDeck/internal/collector"
	"SignalDeck/internal/model"
)

//go:embed topics.yaml
var defaultTable []byte

// ErrTopicNotFound is returned when neither the local table nor the remote
// API knows a topic.
var ErrTopicNotFound = errors.New("education topic not found")

// Remote fetches topics missing from the local table.
type Remote interface {
	FetchTopic(ctx context.Context, topic string) (*model.Topic, error)
}

type table struct {
	Aliases map[string]string       `yaml:"aliases"`
	Topics  map[string]*model.Topic `yaml:"topics"`
}

// Library serves topics from the local table first and the remote API
// second. Remote hits are memoized. Safe for concurrent use.
type Library struct {
	local  table
	remote Remote
	log    zerolog.Logger

	mu   sync.Mutex
	memo map[string]*model.Topic
}

// New loads the embedded table, or the file at path when path is set.
func New(path string, remote Remote, log zerolog.Logger) (*Library, error) {
	data := defaultTable
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read education table: %w", err)
		}
		data = b
	}
	var t table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse education table: %w", err)
	}
	return &Library{
		local:  t,
		remote: remote,
		log:    log.With().Str("component", "education").Logger(),
		memo:   make(map[string]*model.Topic),
	}, nil
}

// Key normalises a topic name: lower case, spaces and dashes as underscores,
// local aliases resolved.
func (l *Library) Key(topic string) string {
	k := strings.ToLower(strings.TrimSpace(topic))
	k = strings.NewReplacer(" ", "_", "-", "_").Replace(k)
	if alias, ok := l.local.Aliases[k]; ok {
		return alias
	}
	return k
}

// Local reports whether topic is in the local table.
func (l *Library) Local(topic string) bool {
	_, ok := l.local.Topics[l.Key(topic)]
	return ok
}

// Lookup returns topic from the local table, the memo, or the remote API.
func (l *Library) Lookup(ctx context.Context, topic string) (*model.Topic, error) {
	key := l.Key(topic)
	if key == "" {
		return nil, fmt.Errorf("lookup %q: %w", topic, ErrTopicNotFound)
	}
	if t, ok := l.local.Topics[key]; ok && t != nil {
		return t, nil
	}

	l.mu.Lock()
	t, ok := l.memo[key]
	l.mu.Unlock()
	if ok {
		return t, nil
	}
	if l.remote == nil {
		return nil, fmt.Errorf("lookup %q: %w", key, ErrTopicNotFound)
	}

	t, err := l.remote.FetchTopic(ctx, key)
	if err != nil {
		var fe *collector.FetchError
		if errors.As(err, &fe) && fe.Class == collector.HTTPStatusError && fe.Status == 404 {
			return nil, fmt.Errorf("lookup %q: %w", key, ErrTopicNotFound)
		}
		l.log.Warn().Err(err).Str("topic", key).Msg("remote education lookup failed")
		return nil, fmt.Errorf("lookup %q: %w", key, err)
	}

	l.mu.Lock()
	l.memo[key] = t
	l.mu.Unlock()
	return t, nil
}

// Topics lists the local topic keys.
func (l *Library) Topics() []string {
	keys := make([]string, 0, len(l.local.Topics))
	for k := range l.local.Topics {
		keys = append(keys, k)
	}
	return keys
}
