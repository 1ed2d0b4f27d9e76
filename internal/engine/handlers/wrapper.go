package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/api"
)

var (
	// ErrMissingPayload: команда требует данных, а клиент их не прислал
	ErrMissingPayload = errors.New("payload is required")
	// ErrInvalidPayload оборачивает ошибки разбора и валидации
	ErrInvalidPayload = errors.New("invalid payload")
)

// TypedHandlerFunc работает с уже разобранным и проверенным payload
type TypedHandlerFunc[T any] func(ctx Context, payload T) (Result, error)

// EmptyHandlerFunc - команды без данных (ATTACK, ESCAPE, GIVE_UP, END_TURN, SYNC)
type EmptyHandlerFunc func(ctx Context) (Result, error)

// WithPayload adapts a typed handler: it decodes the JSON payload into T and runs
// T.Validate when T implements api.Validator.
func WithPayload[T any](handler TypedHandlerFunc[T]) HandlerFunc {
	return func(ctx Context, raw json.RawMessage) (Result, error) {
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
			return Result{}, ErrMissingPayload
		}

		var payload T
		if err := json.Unmarshal(trimmed, &payload); err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		if v, ok := any(payload).(api.Validator); ok {
			if err := v.Validate(); err != nil {
				return Result{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
			}
		}
		return handler(ctx, payload)
	}
}

// WithEmptyPayload ignores whatever payload came with the command.
func WithEmptyPayload(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, _ json.RawMessage) (Result, error) {
		return handler(ctx)
	}
}
