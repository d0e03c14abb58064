package mockapi

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"SignalDeck/internal/model"
)

//go:embed education.yaml
var educationTable []byte

type topicTable struct {
	Aliases map[string]string       `yaml:"aliases"`
	Topics  map[string]*model.Topic `yaml:"topics"`
}

func loadTopics() (*topicTable, error) {
	var t topicTable
	if err := yaml.Unmarshal(educationTable, &t); err != nil {
		return nil, fmt.Errorf("parse education table: %w", err)
	}
	return &t, nil
}

func (t *topicTable) lookup(topic string) (*model.Topic, bool) {
	key := strings.ToLower(strings.TrimSpace(topic))
	if alias, ok := t.Aliases[key]; ok {
		key = alias
	}
	entry, ok := t.Topics[key]
	return entry, ok && entry != nil
}
