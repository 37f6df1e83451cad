package parser

import (
	"strings"
	"testing"

	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/assert"
)

func linesOf(src string) []string {
	return strings.Split(dedent.Dedent(src), "\n")
}

func TestCommentsLineRun(t *testing.T) {
	lines := linesOf(`
		uint x;
		/// @dev first
		// @param a the a
		function f(uint a) {}
	`)

	assert.Equal(t, []string{"@param a the a", "@dev first"}, Comments(lines, 4))
}

func TestCommentsBlock(t *testing.T) {
	lines := linesOf(`
		// unrelated
		/**
		 * @dev block
		 * @notice note
		 */
		function f() {}
	`)

	assert.Equal(t, []string{"@notice note", "@dev block"}, Comments(lines, 6))
}

func TestCommentsBlockOpeningLineText(t *testing.T) {
	lines := linesOf(`
		/** @dev opening
		 * @notice body */
		function f() {}
	`)

	assert.Equal(t, []string{"@notice body", "@dev opening"}, Comments(lines, 3))
}

func TestCommentsSingleLineBlock(t *testing.T) {
	lines := linesOf(`
		/** @dev inline */
		function f() {}
	`)

	assert.Equal(t, []string{"@dev inline"}, Comments(lines, 2))
}

func TestCommentsStopAtCode(t *testing.T) {
	lines := linesOf(`
		// @dev belongs to nobody
		uint x;
		function f() {}
	`)

	assert.Empty(t, Comments(lines, 3))
}

func TestCommentsRunBrokenByDifferentKind(t *testing.T) {
	lines := linesOf(`
		/**
		 * @dev block above
		 */
		// @notice line
		function f() {}
	`)

	assert.Equal(t, []string{"@notice line"}, Comments(lines, 5))
}

func TestCommentsAtTopOfFile(t *testing.T) {
	assert.Empty(t, Comments([]string{"function f() {}"}, 0))
	assert.Empty(t, Comments(nil, 3))
}
