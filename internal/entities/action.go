package entities

// Action is something a character can attempt against a target
type Action struct {
	ID              string     `json:"id" yaml:"id"`
	Name            string     `json:"name" yaml:"name"`
	Category        string     `json:"category,omitempty" yaml:"category,omitempty"`
	SourceAttribute string     `json:"sourceAttribute" yaml:"sourceAttribute"`
	TargetAttribute string     `json:"targetAttribute" yaml:"targetAttribute"`
	TargetType      TargetType `json:"targetType" yaml:"targetType"`
	EffectType      EffectType `json:"effectType" yaml:"effectType"`
	// NextActionIDs is only followed for TRIGGER_ACTION
	NextActionIDs []string `json:"nextActionIds,omitempty" yaml:"nextActionIds,omitempty"`
}

// Triggers reports whether landing this action sets off another
func (a *Action) Triggers() bool {
	return a.EffectType == EffectTypeTriggerAction && len(a.NextActionIDs) > 0
}
