package chapa

import (
	json "github.com/json-iterator/go"
)

// envelope is the uniform top-level wrapper of every Chapa response. The
// paginated transfer listing adds meta; both shapes decode by field name, so
// the extra key is tolerated everywhere.
type envelope struct {
	Message string          `json:"message"`
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Meta    json.RawMessage `json:"meta"`

	raw *RawResponse
}

// decodeEnvelope parses the body and classifies the outcome. Classification
// lives here, in one place, so every operation gets identical error
// semantics: an unparseable body is a DecodeError regardless of status, and a
// parseable non-2xx reply becomes an APIError with the server's message.
func decodeEnvelope(raw *RawResponse) (*envelope, error) {
	var env envelope
	if err := json.Unmarshal(raw.Body, &env); err != nil {
		return nil, &DecodeError{Response: raw, Err: err}
	}
	if !raw.OK() {
		msg := env.Message
		if msg == "" {
			msg = "Unknown error"
		}
		return nil, &APIError{Message: msg, Response: raw}
	}
	env.raw = raw
	return &env, nil
}

func (e *envelope) hasData() bool {
	return len(e.Data) > 0 && string(e.Data) != "null"
}

// requireData decodes data into a generic mapping and checks that every named
// field is present, in the order given.
func (e *envelope) requireData(fields ...string) error {
	var data map[string]any
	if e.hasData() {
		if err := json.Unmarshal(e.Data, &data); err != nil {
			return &DecodeError{Response: e.raw, Err: err}
		}
	}
	return requireFields(data, fields...)
}

// dataMap returns data as a raw mapping, used by the pass-through operations
// that expose the upstream shape verbatim.
func (e *envelope) dataMap() (map[string]any, error) {
	var data map[string]any
	if e.hasData() {
		if err := json.Unmarshal(e.Data, &data); err != nil {
			return nil, &DecodeError{Response: e.raw, Err: err}
		}
	}
	return data, nil
}

// requireFields fails with a SchemaError naming the first missing field.
func requireFields(data map[string]any, fields ...string) error {
	for _, f := range fields {
		if _, ok := data[f]; !ok {
			return &SchemaError{Field: f}
		}
	}
	return nil
}
