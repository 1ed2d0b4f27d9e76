package domain

// EventType - идентификатор исходящего события (сервер -> клиенты)
type EventType uint8

const (
	EventUnknown EventType = iota

	// Движение
	EventPlayerMoving
	EventPlayerEndMoving
	EventIceBroken
	EventPlayerReplacedAfterSlip
	EventItemRemoved
	EventItemPlaced
	EventUpdateItem
	EventChooseItemToRemove
	EventDoorToggled

	// Бой
	EventFightInitiated
	EventRollDiceResult
	EventAttackPassed
	EventAttackFailed
	EventEscapePassed
	EventEscapeFailed
	EventDecrementFighterLife
	EventAddDefenderLife
	EventSwapFightersLives
	EventUpdateCurrentAttacker
	EventFighterGaveUp
	EventFightTerminated
	EventUpdateRemainingFightTime

	// Ход и партия
	EventActionFinished
	EventTurnStarted
	EventUpdateRemainingTurnTime
	EventGameEnd
	EventPlayerListUpdated
	EventDebugModeChanged
	EventSessionState
)

// Маппинг для логов и протокола Domain -> String
var eventCmdToString = map[EventType]string{
	EventPlayerMoving:             "PLAYER_MOVING",
	EventPlayerEndMoving:          "PLAYER_END_MOVING",
	EventIceBroken:                "ICE_BROKEN",
	EventPlayerReplacedAfterSlip:  "PLAYER_REPLACED_AFTER_SLIP",
	EventItemRemoved:              "ITEM_REMOVED",
	EventItemPlaced:               "ITEM_PLACED",
	EventUpdateItem:               "UPDATE_ITEM",
	EventChooseItemToRemove:       "CHOOSE_ITEM_TO_REMOVE",
	EventDoorToggled:              "DOOR_TOGGLED",
	EventFightInitiated:           "FIGHT_INITIATED",
	EventRollDiceResult:           "ROLL_DICE_RESULT",
	EventAttackPassed:             "ATTACK_PASSED",
	EventAttackFailed:             "ATTACK_FAILED",
	EventEscapePassed:             "ESCAPE_PASSED",
	EventEscapeFailed:             "ESCAPE_FAILED",
	EventDecrementFighterLife:     "DECREMENT_FIGHTER_LIFE",
	EventAddDefenderLife:          "ADD_DEFENDER_LIFE",
	EventSwapFightersLives:        "SWAP_FIGHTERS_LIVES",
	EventUpdateCurrentAttacker:    "UPDATE_CURRENT_ATTACKER",
	EventFighterGaveUp:            "FIGHTER_GAVE_UP",
	EventFightTerminated:          "FIGHT_TERMINATED",
	EventUpdateRemainingFightTime: "UPDATE_REMAINING_FIGHT_TIME",
	EventActionFinished:           "ACTION_FINISHED",
	EventTurnStarted:              "TURN_STARTED",
	EventUpdateRemainingTurnTime:  "UPDATE_REMAINING_TURN_TIME",
	EventGameEnd:                  "GAME_END",
	EventPlayerListUpdated:        "PLAYER_LIST_UPDATED",
	EventDebugModeChanged:         "DEBUG_MODE_CHANGED",
	EventSessionState:             "SESSION_STATE",
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (e EventType) String() string {
	if val, ok := eventCmdToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}

// StatKind classifies what the statistics sink is told about.
type StatKind uint8

const (
	StatTileVisited StatKind = iota + 1
	StatDoorToggled
	StatFightStarted
	StatFightWon
	StatEscaped
	StatFlagPicked
	StatFlagLost
	StatGaveUp
	StatGameEnded
)

// StatEvent is published fire-and-forget by a party to the statistics sink.
type StatEvent struct {
	PartyID  string
	PlayerID string
	Kind     StatKind
	Pos      Position
	Round    int
}
