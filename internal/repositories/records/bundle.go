package records

import (
	"context"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/phnks/webfg-app-sub004/internal/entities"
	"github.com/phnks/webfg-app-sub004/internal/errors"
)

// Bundle is a set of records loaded or stored together
type Bundle struct {
	Characters []*entities.Character `yaml:"characters"`
	Items      []*entities.Item      `yaml:"items"`
	Conditions []*entities.Condition `yaml:"conditions"`
	Actions    []*entities.Action    `yaml:"actions"`
}

// Count is the number of records in the bundle
func (b *Bundle) Count() int {
	return len(b.Characters) + len(b.Items) + len(b.Conditions) + len(b.Actions)
}

// ParseBundle reads a YAML bundle
func ParseBundle(data []byte) (*Bundle, error) {
	var b Bundle
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse records")
	}
	return &b, nil
}

// LoadBundle reads a YAML bundle from disk
func LoadBundle(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read records file %s", path)
	}
	return ParseBundle(data)
}

// Seed stores every record in the bundle, stopping at the first failure
func Seed(ctx context.Context, repo Repository, b *Bundle) error {
	for _, c := range b.Characters {
		if _, err := repo.PutCharacter(ctx, PutCharacterInput{Character: c}); err != nil {
			return err
		}
	}
	for _, i := range b.Items {
		if _, err := repo.PutItem(ctx, PutItemInput{Item: i}); err != nil {
			return err
		}
	}
	for _, c := range b.Conditions {
		if _, err := repo.PutCondition(ctx, PutConditionInput{Condition: c}); err != nil {
			return err
		}
	}
	for _, a := range b.Actions {
		if _, err := repo.PutAction(ctx, PutActionInput{Action: a}); err != nil {
			return err
		}
	}
	return nil
}
