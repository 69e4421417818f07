package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceFloat(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"4.5", 4.5},
		{"0", 0},
		{"abc", 0},
		{"", 0},
		{"4.5.6", 0},
		{"-2", -2},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.InDelta(t, tt.want, coerceFloat(tt.input), 1e-9)
		})
	}
}

func TestCoerceInt(t *testing.T) {
	assert.Equal(t, 12, coerceInt("12"))
	assert.Equal(t, 0, coerceInt("abc"))
	assert.Equal(t, 0, coerceInt(""))
	assert.Equal(t, 0, coerceInt("3.5"))
	assert.Equal(t, -1, coerceInt("-1"))
}

func formContext(t *testing.T, values url.Values) echo.Context {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestFormIDs(t *testing.T) {
	c := formContext(t, url.Values{"ids": {"7", "9", "bogus"}})

	ids, err := formIDs(c)
	require.NoError(t, err)
	assert.Equal(t, []int64{7, 9}, ids)
}

func TestFormIDs_NoneSelected(t *testing.T) {
	c := formContext(t, url.Values{"shopId": {"3"}})

	ids, err := formIDs(c)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestParseLocation(t *testing.T) {
	point := parseLocation("121.565400", "25.033000")
	require.NotNil(t, point)
	assert.InDelta(t, 121.5654, point.Lon(), 1e-6)
	assert.InDelta(t, 25.033, point.Lat(), 1e-6)

	assert.Nil(t, parseLocation("", "25.0"))
	assert.Nil(t, parseLocation("121.5", ""))
	assert.Nil(t, parseLocation("abc", "25.0"))
}
