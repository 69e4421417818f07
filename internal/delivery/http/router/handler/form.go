package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// coerceFloat parses a numeric form value; anything that fails to parse
// becomes 0 and is left to validation.
func coerceFloat(value string) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}

	return f
}

// coerceInt parses an integer form value, coercing garbage to 0.
func coerceInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}

	return n
}

// formIDs collects the checked "ids" values of a selection form, dropping
// anything that is not a number.
func formIDs(c echo.Context) ([]int64, error) {
	values, err := c.FormParams()
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(values["ids"]))
	for _, raw := range values["ids"] {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
