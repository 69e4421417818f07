package collection

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Success(t *testing.T) {
	result := Load(context.Background(), func(context.Context) ([]int, error) {
		return []int{1, 2, 3}, nil
	})

	assert.Equal(t, Loaded, result.Status)
	assert.Equal(t, []int{1, 2, 3}, result.Data)
	require.NoError(t, result.Err)
}

func TestLoad_Failure(t *testing.T) {
	fetchErr := errors.New("upstream down")
	result := Load(context.Background(), func(context.Context) ([]int, error) {
		return nil, fetchErr
	})

	assert.Equal(t, Failed, result.Status)
	assert.Nil(t, result.Data)
	assert.ErrorIs(t, result.Err, fetchErr)
}

func TestFilter_PreservesOrder(t *testing.T) {
	items := []string{"apple", "banana", "avocado", "cherry"}

	filtered := Filter(items, func(s *string) bool {
		return (*s)[0] == 'a'
	})

	assert.Equal(t, []string{"apple", "avocado"}, filtered)
	// Input untouched.
	assert.Equal(t, []string{"apple", "banana", "avocado", "cherry"}, items)
}

func TestFilter_NilPredicateIsIdentity(t *testing.T) {
	items := []int{3, 1, 2}
	assert.Equal(t, items, Filter(items, nil))
}

func TestFilter_NoMatches(t *testing.T) {
	filtered := Filter([]int{1, 2, 3}, func(*int) bool { return false })
	assert.Empty(t, filtered)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "loading", Loading.String())
	assert.Equal(t, "loaded", Loaded.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "unknown", Status(42).String())
}
