package holdem

type Street int

const (
	STREET_PREFLOP = Street(0)
	STREET_FLOP    = Street(1)
	STREET_TURN    = Street(2)
	STREET_RIVER   = Street(3)
)

var Street2string = map[Street]string{
	STREET_PREFLOP: "preflop",
	STREET_FLOP:    "flop",
	STREET_TURN:    "turn",
	STREET_RIVER:   "river",
}

// BoardCards returns how many community cards are visible on the street.
func (s Street) BoardCards() int {
	switch s {
	case STREET_FLOP:
		return 3
	case STREET_TURN:
		return 4
	case STREET_RIVER:
		return 5
	}
	return 0
}

func (s Street) String() string {
	return Street2string[s]
}

type Position int

const (
	POSITION_UTG = Position(0)
	POSITION_MP  = Position(1)
	POSITION_HJ  = Position(2)
	POSITION_CO  = Position(3)
	POSITION_BTN = Position(4)
	POSITION_SB  = Position(5)
	POSITION_BB  = Position(6)
)

var Position2string = map[Position]string{
	POSITION_UTG: "UTG",
	POSITION_MP:  "MP",
	POSITION_HJ:  "HJ",
	POSITION_CO:  "CO",
	POSITION_BTN: "BTN",
	POSITION_SB:  "SB",
	POSITION_BB:  "BB",
}

func (p Position) String() string {
	return Position2string[p]
}

// InPosition reports whether the seat acts late postflop.
func (p Position) InPosition() bool {
	return p == POSITION_BTN || p == POSITION_CO || p == POSITION_HJ
}

// Advantage scores the seat from 0 (worst) to 1 (best), button high.
func (p Position) Advantage() float64 {
	switch p {
	case POSITION_BTN:
		return 1.0
	case POSITION_CO:
		return 0.9
	case POSITION_HJ:
		return 0.8
	case POSITION_MP:
		return 0.6
	case POSITION_SB:
		return 0.4
	case POSITION_UTG:
		return 0.3
	case POSITION_BB:
		return 0.2
	}
	return 0.5
}

type ActionKind int32

const (
	ACTION_FOLD  = ActionKind(0)
	ACTION_CHECK = ActionKind(1)
	ACTION_CALL  = ActionKind(2)
	ACTION_BET   = ActionKind(3)
	ACTION_RAISE = ActionKind(4)
	ACTION_ALLIN = ActionKind(5)
)

var Action2string = map[ActionKind]string{
	ACTION_FOLD:  "fold",
	ACTION_CHECK: "check",
	ACTION_CALL:  "call",
	ACTION_BET:   "bet",
	ACTION_RAISE: "raise",
	ACTION_ALLIN: "allin",
}

func (a ActionKind) String() string {
	return Action2string[a]
}

// Aggressive reports whether the action puts chips in beyond a call.
func (a ActionKind) Aggressive() bool {
	return a == ACTION_BET || a == ACTION_RAISE || a == ACTION_ALLIN
}
