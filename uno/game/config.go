package game

// Config holds the house rules of a table.
type Config struct {
	// DrawThenPlayAllowed lets a freshly drawn legal card be played at once.
	DrawThenPlayAllowed bool `json:"drawThenPlayAllowed"`
	// UnoWindowMs is the grace period to call UNO before the penalty.
	UnoWindowMs int64 `json:"unoWindowMs"`
	// EnforceWildDrawFourLegality forbids a wild draw four while the player
	// holds a card of the active color.
	EnforceWildDrawFourLegality bool `json:"enforceWildDrawFourLegality"`
	// TurnDurationMs is how long a turn lasts before the player is passed.
	TurnDurationMs int64 `json:"turnDurationMs"`
}

func DefaultConfig() Config {
	return Config{
		DrawThenPlayAllowed:         true,
		UnoWindowMs:                 2600,
		EnforceWildDrawFourLegality: true,
		TurnDurationMs:              30000,
	}
}

// Overrides is a partial Config; nil fields keep the current value.
type Overrides struct {
	DrawThenPlayAllowed         *bool  `json:"drawThenPlayAllowed,omitempty"`
	UnoWindowMs                 *int64 `json:"unoWindowMs,omitempty"`
	EnforceWildDrawFourLegality *bool  `json:"enforceWildDrawFourLegality,omitempty"`
	TurnDurationMs              *int64 `json:"turnDurationMs,omitempty"`
}

func (o Overrides) Empty() bool {
	return o.DrawThenPlayAllowed == nil && o.UnoWindowMs == nil &&
		o.EnforceWildDrawFourLegality == nil && o.TurnDurationMs == nil
}

// Merge returns c with every set override applied. Negative durations are
// ignored.
func (c Config) Merge(o Overrides) Config {
	if o.DrawThenPlayAllowed != nil {
		c.DrawThenPlayAllowed = *o.DrawThenPlayAllowed
	}
	if o.UnoWindowMs != nil && *o.UnoWindowMs >= 0 {
		c.UnoWindowMs = *o.UnoWindowMs
	}
	if o.EnforceWildDrawFourLegality != nil {
		c.EnforceWildDrawFourLegality = *o.EnforceWildDrawFourLegality
	}
	if o.TurnDurationMs != nil && *o.TurnDurationMs >= 0 {
		c.TurnDurationMs = *o.TurnDurationMs
	}
	return c
}
