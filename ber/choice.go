// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

// Selector is implemented by values that select the active member of a
// [Choice]. The selector is usually a preceding field of the same record, such
// as the algorithm identifier of an AlgorithmIdentifier.
type Selector interface {
	SelectorKey() string
}

// Member is a possible alternative of a [Choice]. Members are created by [Case]
// and [Default].
type Member struct {
	name     string
	node     Node
	keys     []string
	fallback bool
}

// Case returns a member named name encoding v that is active if the selector
// key equals one of keys.
func Case(name string, v any, keys ...string) Member {
	return Member{name: name, node: NodeFor(v), keys: keys}
}

// Default returns a member named name encoding v that is active if no other
// member matches the selector key.
func Default(name string, v any) Member {
	return Member{name: name, node: NodeFor(v), fallback: true}
}

// Choice implements a selector-driven choice between members, known as ANY
// DEFINED BY in ASN.1. The active member is determined by the current key of
// the selector, which must be decoded before the choice. If no member matches
// the key and there is no default member, all operations fail with an
// [*UnknownSelectorError]. Members that are not active are reset when the
// choice is decoded.
//
// A Choice has no tag of its own, it is represented by the active member in
// BER as well as in JSON.
type Choice struct {
	selector Selector
	members  []Member
}

// Select returns a choice between members selected by selector.
func Select(selector Selector, members ...Member) *Choice {
	return &Choice{selector: selector, members: members}
}

// Active returns the name of the member that is active for the current
// selector key.
func (c *Choice) Active() (string, error) {
	m, err := c.active()
	if err != nil {
		return "", err
	}
	return m.name, nil
}

func (c *Choice) active() (*Member, error) {
	key := c.selector.SelectorKey()
	var fallback *Member
	for i := range c.members {
		m := &c.members[i]
		if m.fallback && fallback == nil {
			fallback = m
		}
		for _, k := range m.keys {
			if k == key {
				return m, nil
			}
		}
	}
	if fallback != nil {
		return fallback, nil
	}
	return nil, &UnknownSelectorError{Value: key}
}

// resetExcept resets all members other than active.
func (c *Choice) resetExcept(active *Member) {
	for i := range c.members {
		if &c.members[i] != active {
			c.members[i].node.Reset()
		}
	}
}

func (c *Choice) BerDecode(b []byte) (int, error) {
	m, err := c.active()
	if err != nil {
		return 0, err
	}
	c.resetExcept(m)
	return m.node.BerDecode(b)
}

func (c *Choice) BerEncode(dst []byte) ([]byte, error) {
	m, err := c.active()
	if err != nil {
		return dst, err
	}
	return m.node.BerEncode(dst)
}

func (c *Choice) BerPrint(p *Printer, name string) error {
	m, err := c.active()
	if err != nil {
		return err
	}
	return m.node.BerPrint(p, name)
}

func (c *Choice) JSONEncode(key string, root *any) (int, error) {
	m, err := c.active()
	if err != nil {
		return 0, err
	}
	return m.node.JSONEncode(key, root)
}

func (c *Choice) JSONDecode(key string, root any) (int, error) {
	m, err := c.active()
	if err != nil {
		return 0, err
	}
	c.resetExcept(m)
	return m.node.JSONDecode(key, root)
}

func (c *Choice) Reset() {
	c.resetExcept(nil)
}
