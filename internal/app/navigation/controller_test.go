package navigation

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"adviceslip/internal/app/advice"
	"adviceslip/internal/config/logger"
)

func newTestController(t *testing.T) *Controller {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockLog := logger.NewMockLogger(ctrl)
	noopLogger := zerolog.Nop()
	mockLog.EXPECT().Debug().Return(noopLogger.Debug()).AnyTimes()

	return NewController(mockLog)
}

func threeResults() advice.ResultSet {
	return advice.ResultSet{
		{ID: 5, Text: "A"},
		{ID: 6, Text: "B"},
		{ID: 7, Text: "C"},
	}
}

func Test_NewController(t *testing.T) {
	c := newTestController(t)

	assert.Equal(t, ModeRandom, c.Mode())
	assert.True(t, c.IsLoading())
	assert.False(t, c.HasResults())

	vm := c.View()
	assert.Equal(t, LoadingText, vm.DisplayText)
	assert.True(t, vm.Loading)
	assert.False(t, vm.HasItem)
	assert.False(t, vm.CanGoPrev)
	assert.False(t, vm.CanGoNext)
	assert.Nil(t, vm.ResultPositionLabel)
}

func Test_Controller_CompleteRandomLoad(t *testing.T) {
	c := newTestController(t)

	c.CompleteRandomLoad(advice.Item{ID: 1, Text: "Be kind."})

	vm := c.View()
	assert.Equal(t, ModeRandom, vm.Mode)
	assert.Equal(t, "Be kind.", vm.DisplayText)
	assert.True(t, vm.HasItem)
	assert.Equal(t, 1, vm.ItemID)
	assert.False(t, vm.Loading)
	assert.False(t, vm.CanGoPrev)
	assert.False(t, vm.CanGoNext)
	assert.Nil(t, vm.ResultPositionLabel)
	assert.Empty(t, vm.Error)
}

func Test_Controller_CompleteSearchLoad(t *testing.T) {
	c := newTestController(t)

	c.CompleteSearchLoad(threeResults())

	assert.Equal(t, ModeSearch, c.Mode())
	assert.Equal(t, 0, c.Index())

	vm := c.View()
	require.NotNil(t, vm.ResultPositionLabel)
	assert.Equal(t, "Showing result 1 of 3", *vm.ResultPositionLabel)
	assert.Equal(t, "A", vm.DisplayText)
	assert.False(t, vm.CanGoPrev)
	assert.True(t, vm.CanGoNext)
	assert.False(t, vm.NoResults)
}

func Test_Controller_Advance_Scenario(t *testing.T) {
	c := newTestController(t)
	c.CompleteSearchLoad(threeResults())

	assert.True(t, c.Advance(1))
	vm := c.View()
	assert.Equal(t, 1, c.Index())
	require.NotNil(t, vm.ResultPositionLabel)
	assert.Equal(t, "Showing result 2 of 3", *vm.ResultPositionLabel)
	assert.True(t, vm.CanGoPrev)
	assert.True(t, vm.CanGoNext)

	assert.True(t, c.Advance(1))
	vm = c.View()
	assert.Equal(t, 2, c.Index())
	assert.Equal(t, "C", vm.DisplayText)
	assert.False(t, vm.CanGoNext)

	assert.False(t, c.Advance(1))
	assert.Equal(t, 2, c.Index())
}

func Test_Controller_Advance_NeverLeavesBounds(t *testing.T) {
	for n := 1; n <= 5; n++ {
		results := make(advice.ResultSet, n)
		for i := range results {
			results[i] = advice.Item{ID: i + 1, Text: "item"}
		}

		c := newTestController(t)
		c.CompleteSearchLoad(results)

		moves := []int{1, 1, 1, 1, 1, 1, -1, -1, -1, -1, -1, -1, -1, 1, -1, 1, 1}
		for _, delta := range moves {
			c.Advance(delta)
			assert.GreaterOrEqual(t, c.Index(), 0)
			assert.LessOrEqual(t, c.Index(), n-1)
		}
	}
}

func Test_Controller_Advance_EmptyResults(t *testing.T) {
	c := newTestController(t)
	c.CompleteSearchLoad(advice.ResultSet{})

	for _, delta := range []int{1, -1} {
		assert.False(t, c.CanAdvance(delta))
		assert.False(t, c.Advance(delta))
		assert.Equal(t, 0, c.Index())
	}

	vm := c.View()
	assert.Equal(t, ModeSearch, vm.Mode)
	assert.Equal(t, NoResultsText, vm.DisplayText)
	assert.True(t, vm.NoResults)
	assert.Nil(t, vm.ResultPositionLabel)
	assert.False(t, vm.CanGoPrev)
	assert.False(t, vm.CanGoNext)
	assert.False(t, c.HasResults())
}

func Test_Controller_Advance_RandomModeIsNoop(t *testing.T) {
	c := newTestController(t)
	c.CompleteRandomLoad(advice.Item{ID: 1, Text: "Be kind."})

	assert.False(t, c.CanAdvance(1))
	assert.False(t, c.CanAdvance(-1))
	assert.False(t, c.Advance(1))
	assert.Equal(t, "Be kind.", c.View().DisplayText)
}

func Test_Controller_Advance_Deltas(t *testing.T) {
	tests := []struct {
		name     string
		delta    int
		expected int
		moved    bool
	}{
		{name: "zero is a no-op", delta: 0, expected: 1, moved: false},
		{name: "large positive moves one step", delta: 5, expected: 2, moved: true},
		{name: "large negative moves one step", delta: -9, expected: 0, moved: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(t)
			c.CompleteSearchLoad(threeResults())
			c.Advance(1)

			assert.Equal(t, tt.moved, c.Advance(tt.delta))
			assert.Equal(t, tt.expected, c.Index())
		})
	}
}

func Test_Controller_CompleteSearchLoad_ResetsIndex(t *testing.T) {
	c := newTestController(t)
	c.CompleteSearchLoad(threeResults())
	c.Advance(1)
	c.Advance(1)
	require.Equal(t, 2, c.Index())

	c.CompleteSearchLoad(advice.ResultSet{{ID: 9, Text: "Z"}, {ID: 10, Text: "Y"}})

	assert.Equal(t, 0, c.Index())
	assert.Equal(t, "Z", c.View().DisplayText)
}

func Test_Controller_ResetToRandom(t *testing.T) {
	c := newTestController(t)
	c.CompleteRandomLoad(advice.Item{ID: 1, Text: "first"})
	c.CompleteSearchLoad(threeResults())
	c.Advance(1)

	c.ResetToRandom()

	assert.Equal(t, ModeRandom, c.Mode())
	assert.True(t, c.IsLoading())
	assert.Nil(t, c.State().Results)
	assert.Equal(t, 0, c.Index())
	require.NotNil(t, c.State().Current)
	assert.Equal(t, advice.Item{ID: 6, Text: "B"}, *c.State().Current)

	c.CompleteRandomLoad(advice.Item{ID: 2, Text: "Be patient."})

	vm := c.View()
	assert.Equal(t, ModeRandom, vm.Mode)
	assert.Equal(t, "Be patient.", vm.DisplayText)
	assert.False(t, vm.Loading)
}

func Test_Controller_CompleteRandomLoad_DropsResults(t *testing.T) {
	c := newTestController(t)
	c.CompleteSearchLoad(threeResults())

	c.BeginLoad()
	c.CompleteRandomLoad(advice.Item{ID: 3, Text: "new"})

	s := c.State()
	assert.Equal(t, ModeRandom, s.Mode)
	assert.Nil(t, s.Results)
	assert.False(t, c.HasResults())
}

func Test_Controller_FailLoad(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(c *Controller)
		expected string
	}{
		{
			name:     "first load fails",
			setup:    func(c *Controller) {},
			expected: FailedText,
		},
		{
			name: "previous item stays visible",
			setup: func(c *Controller) {
				c.CompleteRandomLoad(advice.Item{ID: 1, Text: "keep me"})
				c.BeginLoad()
			},
			expected: "keep me",
		},
		{
			name: "search results stay visible",
			setup: func(c *Controller) {
				c.CompleteSearchLoad(threeResults())
				c.Advance(1)
				c.BeginLoad()
			},
			expected: "B",
		},
		{
			name: "reset from search keeps the shown result",
			setup: func(c *Controller) {
				c.CompleteRandomLoad(advice.Item{ID: 1, Text: "before search"})
				c.CompleteSearchLoad(threeResults())
				c.Advance(1)
				c.ResetToRandom()
			},
			expected: "B",
		},
		{
			name: "reset from empty search has nothing to show",
			setup: func(c *Controller) {
				c.CompleteRandomLoad(advice.Item{ID: 1, Text: "before search"})
				c.CompleteSearchLoad(advice.ResultSet{})
				c.ResetToRandom()
			},
			expected: FailedText,
		},
		{
			name: "reset in random mode keeps the item",
			setup: func(c *Controller) {
				c.CompleteRandomLoad(advice.Item{ID: 1, Text: "keep me"})
				c.ResetToRandom()
			},
			expected: "keep me",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(t)
			tt.setup(c)

			c.FailLoad()

			vm := c.View()
			assert.False(t, vm.Loading)
			assert.Equal(t, FailedText, vm.Error)
			assert.Equal(t, tt.expected, vm.DisplayText)

			c.BeginLoad()
			assert.Empty(t, c.View().Error)
		})
	}
}

func Test_Controller_State_IsACopy(t *testing.T) {
	c := newTestController(t)
	results := threeResults()
	c.CompleteSearchLoad(results)

	results[0].Text = "mutated"
	s := c.State()
	s.Results[1].Text = "mutated"

	assert.Equal(t, "A", c.View().DisplayText)
	c.Advance(1)
	assert.Equal(t, "B", c.View().DisplayText)
}

func Test_PositionLabel(t *testing.T) {
	assert.Equal(t, "Showing result 1 of 1", PositionLabel(0, 1))
	assert.Equal(t, "Showing result 10 of 12", PositionLabel(9, 12))
}
