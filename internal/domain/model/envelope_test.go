package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_DecodesFlatErrors(t *testing.T) {
	var env Envelope[[]Category]
	err := json.Unmarshal([]byte(`{"success":false,"data":null,"message":"bad","errors":["Name is required"]}`), &env)
	require.NoError(t, err)
	assert.False(t, env.Success)
	assert.Equal(t, []string{"Name is required"}, env.Errors.Messages())
}

func TestEnvelope_DecodesValidationProblem(t *testing.T) {
	body := `{"title":"One or more validation errors occurred.","errors":{"$.CategoryId":["The value is not a valid GUID."],"Sku":["SKU is required","SKU too short"]}}`
	var env Envelope[json.RawMessage]
	require.NoError(t, json.Unmarshal([]byte(body), &env))

	require.Len(t, env.Errors, 3)
	assert.Equal(t, "categoryId", env.Errors[0].Field)
	assert.Equal(t, "sku", env.Errors[1].Field)
	assert.Equal(t, "sku: SKU too short", env.Errors.Messages()[2])
	assert.Equal(t, "One or more validation errors occurred.", env.Title)
}

func TestTimestamp_Layouts(t *testing.T) {
	cases := map[string]time.Time{
		`"2024-03-01T10:20:30Z"`:        time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC),
		`"2024-03-01T10:20:30.1234567"`: time.Date(2024, 3, 1, 10, 20, 30, 123456700, time.UTC),
		`"2024-03-01T10:20:30"`:         time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC),
		`"2024-03-01"`:                  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	for in, want := range cases {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(in), &ts), in)
		assert.True(t, want.Equal(ts.Time), "%s: got %v", in, ts.Time)
	}

	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	assert.True(t, ts.IsZero())
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
}

func TestPaged_HasNext(t *testing.T) {
	assert.True(t, Paged[Product]{Page: 1, TotalPages: 3}.HasNext())
	assert.False(t, Paged[Product]{Page: 3, TotalPages: 3}.HasNext())
	assert.True(t, Paged[Product]{Page: 1, PageSize: 10, TotalCount: 11}.HasNext())
	assert.False(t, Paged[Product]{Page: 2, PageSize: 10, TotalCount: 11}.HasNext())
}
