package session

import "sync"

// Cursor is the learner's position within a tutorial's lesson sequence.
// The index is 0-based and always clamped to [0, count-1]. Navigation
// saturates at either end; there is no wraparound and no error state.
type Cursor struct {
	index int
	count int
}

func NewCursor(lessonCount int) *Cursor {
	c := &Cursor{}
	c.Resize(lessonCount)
	return c
}

func (c *Cursor) Position() int {
	return c.index
}

func (c *Cursor) Next() int {
	if c.index < c.count-1 {
		c.index++
	}
	return c.index
}

func (c *Cursor) Previous() int {
	if c.index > 0 {
		c.index--
	}
	return c.index
}

// GoTo jumps to an arbitrary index. Out-of-range input is clamped rather
// than rejected, matching the sidebar navigation contract.
func (c *Cursor) GoTo(index int) int {
	c.index = clamp(index, c.count)
	return c.index
}

// Resize adjusts the cursor to a new lesson count, reclamping the index
// when lessons were removed.
func (c *Cursor) Resize(count int) {
	if count < 0 {
		count = 0
	}
	c.count = count
	c.index = clamp(c.index, count)
}

func clamp(index, count int) int {
	if index < 0 {
		return 0
	}
	if count > 0 && index > count-1 {
		return count - 1
	}
	if count == 0 {
		return 0
	}
	return index
}

// Progress returns the completed share as a percentage. A tutorial with
// no lessons reports 0 rather than dividing by zero.
func Progress(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}

type key struct {
	userID uint
	slug   string
}

// Tracker keeps one cursor per user per tutorial. Cursors live for the
// process lifetime only; the mutex is what makes the shared map safe
// under concurrent request handling.
type Tracker struct {
	mu      sync.Mutex
	cursors map[key]*Cursor
}

func NewTracker() *Tracker {
	return &Tracker{cursors: make(map[key]*Cursor)}
}

func (t *Tracker) cursor(userID uint, slug string, lessonCount int) *Cursor {
	k := key{userID: userID, slug: slug}
	c, ok := t.cursors[k]
	if !ok {
		c = NewCursor(lessonCount)
		t.cursors[k] = c
	} else {
		c.Resize(lessonCount)
	}
	return c
}

func (t *Tracker) Position(userID uint, slug string, lessonCount int) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cursor(userID, slug, lessonCount).Position()
}

func (t *Tracker) Next(userID uint, slug string, lessonCount int) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cursor(userID, slug, lessonCount).Next()
}

func (t *Tracker) Previous(userID uint, slug string, lessonCount int) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cursor(userID, slug, lessonCount).Previous()
}

func (t *Tracker) GoTo(userID uint, slug string, lessonCount, index int) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cursor(userID, slug, lessonCount).GoTo(index)
}

// Reset drops the cursor so the next access starts at the first lesson.
func (t *Tracker) Reset(userID uint, slug string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.cursors, key{userID: userID, slug: slug})
}
