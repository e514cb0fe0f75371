package fsm

// Wildcard as a From state matches every state that has no exact transition for the event
const Wildcard = "*"

// Config is the declarative shape of a transition table
type Config struct {
	Initial     string             `toml:"initial" validate:"fsmstate"`
	States      []string           `toml:"states,omitempty" validate:"omitempty,dive,fsmstate"`
	Transitions []TransitionConfig `toml:"transitions" validate:"required,min=1,dive"`
}

// TransitionConfig is one (from, event) -> to row
type TransitionConfig struct {
	From  string `toml:"from" validate:"required"`
	Event string `toml:"event" validate:"required"`
	To    string `toml:"to" validate:"fsmstate"`
}
