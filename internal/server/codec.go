package server

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/api"
	"github.com/vmihailenco/msgpack/v5"
)

// codec переводит события и команды в кадры websocket
type codec interface {
	Name() string
	Encode(msg api.ServerEvent) (frameType int, data []byte, err error)
	Decode(data []byte) (api.ClientCommand, error)
}

func codecFor(name string) (codec, error) {
	switch name {
	case "", "json":
		return jsonCodec{}, nil
	case "msgpack":
		return msgpackCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown codec %q", name)
	}
}

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Encode(msg api.ServerEvent) (int, []byte, error) {
	data, err := json.Marshal(msg)
	return websocket.TextMessage, data, err
}

func (jsonCodec) Decode(data []byte) (api.ClientCommand, error) {
	var cmd api.ClientCommand
	if err := json.Unmarshal(data, &cmd); err != nil {
		return api.ClientCommand{}, fmt.Errorf("decode json command: %w", err)
	}
	return cmd, nil
}

// msgpackCodec использует те же имена полей, что и JSON
type msgpackCodec struct{}

// wireCommand - входящая команда в msgpack. Payload приходит картой
// и перекладывается в JSON, который понимают хендлеры.
type wireCommand struct {
	Action  string         `msgpack:"action"`
	Payload map[string]any `msgpack:"payload"`
}

func (msgpackCodec) Name() string { return "msgpack" }

func (msgpackCodec) Encode(msg api.ServerEvent) (int, []byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(msg); err != nil {
		return 0, nil, err
	}
	return websocket.BinaryMessage, buf.Bytes(), nil
}

func (msgpackCodec) Decode(data []byte) (api.ClientCommand, error) {
	var wc wireCommand
	if err := msgpack.Unmarshal(data, &wc); err != nil {
		return api.ClientCommand{}, fmt.Errorf("decode msgpack command: %w", err)
	}
	cmd := api.ClientCommand{Action: wc.Action}
	if wc.Payload != nil {
		raw, err := json.Marshal(wc.Payload)
		if err != nil {
			return api.ClientCommand{}, fmt.Errorf("re-encode payload: %w", err)
		}
		cmd.Payload = raw
	}
	return cmd, nil
}
