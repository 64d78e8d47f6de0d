package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveUp
	ActionMoveLeft
	ActionMoveDown
	ActionMoveRight
	ActionAttack
	ActionPause
	ActionToggleHint
	ActionToggleMinimap
	ActionMute
	ActionMenuBack
	ActionSwing     // knight demo: full swing
	ActionPrimary   // knight demo: charge (mouse left)
	ActionSecondary // knight demo: dodge (mouse right)
	ActionCount     // Must be last - used for array sizing
)

// MovementActions lists the four cardinal movement actions in key-scan order.
var MovementActions = [4]ActionID{ActionMoveUp, ActionMoveLeft, ActionMoveDown, ActionMoveRight}

// MouseButton names a mouse button binding
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseRight
)

// InputBinding represents the keys and mouse buttons bound to an action.
// Keys are Ebiten key names ("W", "ArrowUp", "Space"), resolved by the input poller.
type InputBinding struct {
	Keys  []string
	Mouse []MouseButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveUp:        {Keys: []string{"W"}},
			ActionMoveLeft:      {Keys: []string{"A"}},
			ActionMoveDown:      {Keys: []string{"S"}},
			ActionMoveRight:     {Keys: []string{"D"}},
			ActionAttack:        {Keys: []string{"F"}},
			ActionPause:         {Keys: []string{"P"}},
			ActionToggleHint:    {Keys: []string{"H"}},
			ActionToggleMinimap: {Keys: []string{"M"}},
			ActionMute:          {Keys: []string{"N"}},
			ActionMenuBack:      {Keys: []string{"Escape"}},
			ActionSwing:         {Keys: []string{"Space"}},
			ActionPrimary:       {Mouse: []MouseButton{MouseLeft}},
			ActionSecondary:     {Mouse: []MouseButton{MouseRight}},
		},
	}
}
