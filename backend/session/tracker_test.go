package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorNextSaturates(t *testing.T) {
	c := NewCursor(3)

	assert.Equal(t, 1, c.Next())
	assert.Equal(t, 2, c.Next())
	// Already at the last lesson: stays there.
	assert.Equal(t, 2, c.Next())
	assert.Equal(t, 2, c.Next())
}

func TestCursorPreviousSaturates(t *testing.T) {
	c := NewCursor(3)

	assert.Equal(t, 0, c.Previous())
	c.GoTo(2)
	assert.Equal(t, 1, c.Previous())
	assert.Equal(t, 0, c.Previous())
	assert.Equal(t, 0, c.Previous())
}

func TestCursorGoToClamps(t *testing.T) {
	c := NewCursor(5)

	assert.Equal(t, 3, c.GoTo(3))
	assert.Equal(t, 4, c.GoTo(99))
	assert.Equal(t, 0, c.GoTo(-1))
}

func TestCursorEmptyTutorial(t *testing.T) {
	c := NewCursor(0)

	assert.Equal(t, 0, c.Position())
	assert.Equal(t, 0, c.Next())
	assert.Equal(t, 0, c.Previous())
	assert.Equal(t, 0, c.GoTo(7))
}

func TestCursorResizeReclamps(t *testing.T) {
	c := NewCursor(5)
	c.GoTo(4)

	c.Resize(2)
	assert.Equal(t, 1, c.Position())

	c.Resize(10)
	assert.Equal(t, 1, c.Position())
}

func TestProgress(t *testing.T) {
	assert.Equal(t, 40.0, Progress(2, 5))
	assert.Equal(t, 100.0, Progress(5, 5))
	assert.Equal(t, 0.0, Progress(0, 5))
	// Division guard for an empty lesson list.
	assert.Equal(t, 0.0, Progress(0, 0))
}

func TestTrackerKeepsCursorsPerUserAndTutorial(t *testing.T) {
	tr := NewTracker()

	tr.Next(1, "intro-k8s", 4)
	tr.Next(1, "intro-k8s", 4)

	assert.Equal(t, 2, tr.Position(1, "intro-k8s", 4))
	assert.Equal(t, 0, tr.Position(2, "intro-k8s", 4))
	assert.Equal(t, 0, tr.Position(1, "services-and-networking", 4))
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker()

	tr.GoTo(1, "intro-k8s", 4, 3)
	assert.Equal(t, 3, tr.Position(1, "intro-k8s", 4))

	tr.Reset(1, "intro-k8s")
	assert.Equal(t, 0, tr.Position(1, "intro-k8s", 4))
}

func TestTrackerResizeOnLessonCountChange(t *testing.T) {
	tr := NewTracker()

	tr.GoTo(1, "intro-k8s", 6, 5)
	// Tutorial shrank to 3 lessons between requests.
	assert.Equal(t, 2, tr.Position(1, "intro-k8s", 3))
}
