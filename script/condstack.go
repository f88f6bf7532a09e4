// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

// condStack holds one frame per open OP_IF/OP_NOTIF. A branch executes only
// when no frame is false.
type condStack struct {
	frames     []bool
	falseCount int
}

func (c *condStack) executing() bool {
	return c.falseCount == 0
}

func (c *condStack) empty() bool {
	return len(c.frames) == 0
}

func (c *condStack) push(v bool) {
	c.frames = append(c.frames, v)
	if !v {
		c.falseCount++
	}
}

// toggle inverts the innermost frame, for OP_ELSE.
func (c *condStack) toggle() error {
	if len(c.frames) == 0 {
		return ErrMalformedControlFlow
	}
	top := len(c.frames) - 1
	if c.frames[top] {
		c.falseCount++
	} else {
		c.falseCount--
	}
	c.frames[top] = !c.frames[top]
	return nil
}

// pop closes the innermost frame, for OP_ENDIF.
func (c *condStack) pop() error {
	if len(c.frames) == 0 {
		return ErrMalformedControlFlow
	}
	top := len(c.frames) - 1
	if !c.frames[top] {
		c.falseCount--
	}
	c.frames = c.frames[:top]
	return nil
}
