package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"connlint/internal/ast"
)

func TestExtractEvents(t *testing.T) {
	events, lines := ExtractEvents(readFixture(t, "events.sol"))

	require.Len(t, events, 3)
	assert.Equal(t, "event LogDeposit(address indexed token, uint256 amt);", events[0])
	assert.Equal(t, "event LogWithdraw( address indexed token, uint256 amt );", events[1])
	assert.Equal(t, "event LogUnused(uint256 x);", events[2])
	assert.Equal(t, []int{4, 5, 10}, lines)

	assert.Equal(t, "LogWithdraw", ast.EventName(events[1]))
	assert.Equal(t, []string{"address indexed token", "uint256 amt"}, ast.ParenArgs(events[1]))
}

func TestExtractEventsEmpty(t *testing.T) {
	events, lines := ExtractEvents("contract Events {}\n")
	assert.Empty(t, events)
	assert.Empty(t, lines)
}
