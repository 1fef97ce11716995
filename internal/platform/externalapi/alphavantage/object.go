package alphavantage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	errNotObject = errors.New("not a JSON object")
	errNotArray  = errors.New("not a JSON array")
)

// member はJSONオブジェクトの1つのキーと値です。
type member struct {
	Key   string
	Value json.RawMessage
}

// object はキーの出現順を保持したJSONオブジェクトです。
// map へのデコードでは順序が失われるため、日付の並びを保つためにこの形で扱います。
type object []member

// lookup は最初に見つかったキーの値を返します。
func (o object) lookup(key string) (json.RawMessage, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// decodeObject はJSONオブジェクトをキーの出現順を保ったままデコードします。
func decodeObject(raw json.RawMessage) (object, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := expectDelim(dec, '{', errNotObject); err != nil {
		return nil, err
	}

	out := object{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errNotObject
		}
		var v json.RawMessage
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("value of %q: %w", key, err)
		}
		out = append(out, member{Key: key, Value: v})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return out, nil
}

// decodeArray はJSON配列を要素ごとの生のJSONに分解します。
// null は配列として扱いません。
func decodeArray(raw json.RawMessage) ([]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := expectDelim(dec, '[', errNotArray); err != nil {
		return nil, err
	}

	out := []json.RawMessage{}
	for dec.More() {
		var v json.RawMessage
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return out, nil
}

func expectDelim(dec *json.Decoder, want json.Delim, mismatch error) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return mismatch
	}
	return nil
}
