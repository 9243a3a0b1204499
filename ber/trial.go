// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"fmt"

	"codello.dev/asn1codec/jsontree"
)

// Candidate is a possible alternative of a [TrialChoice]. Candidates are
// created by [Try].
type Candidate[K comparable] struct {
	key  K
	name string
	node Node
}

// Try returns a candidate named name encoding v. The discriminant of the
// choice is set to key when the candidate is decoded.
func Try[K comparable](key K, name string, v any) Candidate[K] {
	return Candidate[K]{key: key, name: name, node: NodeFor(v)}
}

// TrialChoice implements a choice without a preceding selector. Decoding tries
// each candidate in the declared order and commits to the first one that
// succeeds. The order of candidates is therefore part of the contract of a
// type using a TrialChoice: reordering candidates can change the result of
// decoding ambiguous input.
//
// Decoding sets the discriminant to the key of the successful candidate and
// resets all other candidates. All other operations use the candidate whose
// key equals the discriminant. Setting the discriminant and populating the
// matching candidate before encoding is the responsibility of the caller. If
// no candidate has the key of the discriminant, the operations fail with an
// [*UnknownSelectorError].
//
// The JSON representation is an object with the name of the active candidate
// as the only key.
type TrialChoice[K comparable] struct {
	discriminant *K
	candidates   []Candidate[K]
}

// Trial returns a trial-decode choice between candidates. The key of the
// active candidate is stored in discriminant.
func Trial[K comparable](discriminant *K, candidates ...Candidate[K]) *TrialChoice[K] {
	return &TrialChoice[K]{discriminant: discriminant, candidates: candidates}
}

func (c *TrialChoice[K]) active() (*Candidate[K], error) {
	for i := range c.candidates {
		if c.candidates[i].key == *c.discriminant {
			return &c.candidates[i], nil
		}
	}
	return nil, &UnknownSelectorError{Value: fmt.Sprint(*c.discriminant)}
}

// commit makes cand the active candidate.
func (c *TrialChoice[K]) commit(cand *Candidate[K]) {
	for i := range c.candidates {
		if &c.candidates[i] != cand {
			c.candidates[i].node.Reset()
		}
	}
	*c.discriminant = cand.key
}

func (c *TrialChoice[K]) BerDecode(b []byte) (int, error) {
	err := &VariantError{}
	for i := range c.candidates {
		cand := &c.candidates[i]
		n, cerr := cand.node.BerDecode(b)
		if cerr == nil {
			c.commit(cand)
			return n, nil
		}
		err.Candidates = append(err.Candidates, cand.name)
		err.Errs = append(err.Errs, cerr)
	}
	c.Reset()
	return 0, err
}

func (c *TrialChoice[K]) BerEncode(dst []byte) ([]byte, error) {
	cand, err := c.active()
	if err != nil {
		return dst, err
	}
	return cand.node.BerEncode(dst)
}

func (c *TrialChoice[K]) BerPrint(p *Printer, name string) error {
	cand, err := c.active()
	if err != nil {
		return err
	}
	p.annotate(cand.name)
	return cand.node.BerPrint(p, name)
}

func (c *TrialChoice[K]) JSONEncode(key string, root *any) (int, error) {
	cand, err := c.active()
	if err != nil {
		return 0, err
	}
	var obj any = jsontree.NewObject()
	n, err := cand.node.JSONEncode(cand.name, &obj)
	if err != nil {
		return n, err
	}
	return n, putJSON(key, root, obj)
}

func (c *TrialChoice[K]) JSONDecode(key string, root any) (int, error) {
	v, ok, err := getJSON(key, root)
	if err != nil || !ok {
		c.Reset()
		return 0, err
	}
	obj, ok := v.(*jsontree.Object)
	if !ok {
		return 0, ErrNotAnObject
	}
	for i := range c.candidates {
		cand := &c.candidates[i]
		if _, ok := obj.Get(cand.name); !ok {
			continue
		}
		n, err := cand.node.JSONDecode(cand.name, obj)
		if err != nil {
			return n, withFieldError(err, cand.name, -1)
		}
		c.commit(cand)
		return n, nil
	}
	return 0, fmt.Errorf("%w: no candidate in JSON object", ErrNoVariantMatched)
}

func (c *TrialChoice[K]) Reset() {
	var zero K
	*c.discriminant = zero
	for i := range c.candidates {
		c.candidates[i].node.Reset()
	}
}
