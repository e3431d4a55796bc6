package socketio_utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBindDecodesFirstArgument(t *testing.T) {
	var out struct {
		RoomID   string `json:"roomId"`
		Password string `json:"password"`
	}
	ok := Bind([]interface{}{map[string]interface{}{
		"roomId":  "abc123",
		"unknown": "dropped",
	}}, &out)

	assert.True(t, ok)
	assert.Equal(t, "abc123", out.RoomID)
	assert.Equal(t, "", out.Password)
}

func TestBindNoArgsKeepsZeroValues(t *testing.T) {
	var out struct {
		Score int `json:"score"`
	}
	out.Score = 7
	assert.False(t, Bind(nil, &out))
	assert.Equal(t, 7, out.Score)
}

func TestBindNonObjectArgument(t *testing.T) {
	var out struct {
		Score int `json:"score"`
	}
	assert.False(t, Bind([]interface{}{"not an object"}, &out))
}

func TestRawPayloadCopies(t *testing.T) {
	src := map[string]interface{}{"x": 1.0, "tag": "kick"}
	got := RawPayload([]interface{}{src})
	assert.Equal(t, src, got)

	// The copy is detached from the caller's map.
	got["extra"] = true
	_, inSrc := src["extra"]
	assert.False(t, inSrc)
}

func TestRawPayloadNonObject(t *testing.T) {
	assert.Empty(t, RawPayload([]interface{}{42}))
	assert.Empty(t, RawPayload(nil))
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 0, ClampInt(-3, 0, 100))
	assert.Equal(t, 100, ClampInt(250, 0, 100))
	assert.Equal(t, 42, ClampInt(42, 0, 100))
}

func TestIntField(t *testing.T) {
	payload := map[string]interface{}{
		"float":  3.0,
		"int":    5,
		"string": "nope",
	}

	v, ok := IntField(payload, "float")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	v, ok = IntField(payload, "int")
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	_, ok = IntField(payload, "string")
	assert.False(t, ok)

	_, ok = IntField(payload, "missing")
	assert.False(t, ok)
}
