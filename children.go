package hlist

// childList is the ordered set of elements attached to a list. Index 0 is the
// element at firstPosition.
type childList struct {
	elements []Element
	// Called when an element is attached or detached.
	onAttach, onDetach func(element Element)
}

func (c *childList) count() int {
	return len(c.elements)
}

// at returns the child at index, or nil when index is out of range.
func (c *childList) at(index int) Element {
	if index < 0 || index >= len(c.elements) {
		return nil
	}
	return c.elements[index]
}

func (c *childList) first() Element {
	return c.at(0)
}

func (c *childList) last() Element {
	return c.at(len(c.elements) - 1)
}

// attach adds element at the tail, or at the head when toHead is set.
func (c *childList) attach(element Element, toHead bool) {
	if toHead {
		c.elements = append(c.elements, nil)
		copy(c.elements[1:], c.elements)
		c.elements[0] = element
	} else {
		c.elements = append(c.elements, element)
	}
	if c.onAttach != nil {
		c.onAttach(element)
	}
}

// detachFirst removes and returns the head child.
func (c *childList) detachFirst() Element {
	if len(c.elements) == 0 {
		return nil
	}
	element := c.elements[0]
	copy(c.elements, c.elements[1:])
	c.elements[len(c.elements)-1] = nil
	c.elements = c.elements[:len(c.elements)-1]
	c.detached(element)
	return element
}

// detachLast removes and returns the tail child.
func (c *childList) detachLast() Element {
	if len(c.elements) == 0 {
		return nil
	}
	element := c.elements[len(c.elements)-1]
	c.elements[len(c.elements)-1] = nil
	c.elements = c.elements[:len(c.elements)-1]
	c.detached(element)
	return element
}

// detachAll removes every child. The elements stay owned by the caller.
func (c *childList) detachAll() {
	for i, element := range c.elements {
		c.detached(element)
		c.elements[i] = nil
	}
	c.elements = c.elements[:0]
}

func (c *childList) detached(element Element) {
	if c.onDetach != nil {
		c.onDetach(element)
	}
}

// offsetAll moves every child horizontally by dx.
func (c *childList) offsetAll(dx int) {
	if dx == 0 {
		return
	}
	for _, element := range c.elements {
		offsetElement(element, dx)
	}
}
