// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package cache

import (
	"unicode"
	"unicode/utf8"
)

// PhraseMatcher finds occurrences of a fixed phrase list in text using an
// Aho-Corasick automaton, so scanning costs O(len(text)) regardless of how
// many phrases are registered. Matching folds case one rune at a time, so
// reported offsets always index the text as given. A matcher is immutable
// after construction and safe for concurrent use.
type PhraseMatcher struct {
	root    *phraseNode
	phrases []string
	runes   []int // rune length of each phrase
}

type phraseNode struct {
	children map[rune]*phraseNode
	failure  *phraseNode
	output   []int // indices into phrases ending at this node
}

// PhraseMatch is one occurrence of a phrase. Start and End are byte offsets
// into the searched text, so text[Start:End] is the matched span.
type PhraseMatch struct {
	Phrase string
	Index  int
	Start  int
	End    int
}

// NewPhraseMatcher builds a matcher over phrases. Empty phrases are ignored;
// Index in results refers to the position in the original slice.
func NewPhraseMatcher(phrases []string) *PhraseMatcher {
	m := &PhraseMatcher{
		root:    newPhraseNode(),
		phrases: make([]string, len(phrases)),
		runes:   make([]int, len(phrases)),
	}
	for i, p := range phrases {
		m.phrases[i] = p
		if p != "" {
			m.runes[i] = m.insert(i, p)
		}
	}
	m.link()
	return m
}

func newPhraseNode() *phraseNode {
	return &phraseNode{children: make(map[rune]*phraseNode)}
}

func (m *PhraseMatcher) insert(index int, phrase string) int {
	node := m.root
	n := 0
	for _, ch := range phrase {
		n++
		ch = unicode.ToLower(ch)
		next := node.children[ch]
		if next == nil {
			next = newPhraseNode()
			node.children[ch] = next
		}
		node = next
	}
	node.output = append(node.output, index)
	return n
}

// link sets failure links breadth-first.
func (m *PhraseMatcher) link() {
	queue := make([]*phraseNode, 0, len(m.root.children))
	for _, child := range m.root.children {
		child.failure = m.root
		queue = append(queue, child)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for ch, child := range current.children {
			queue = append(queue, child)

			fail := current.failure
			for fail != nil && fail.children[ch] == nil {
				fail = fail.failure
			}
			if fail == nil {
				child.failure = m.root
				continue
			}
			child.failure = fail.children[ch]
			child.output = append(child.output, child.failure.output...)
		}
	}
}

// step advances the automaton by one rune.
func (m *PhraseMatcher) step(node *phraseNode, ch rune) *phraseNode {
	for node != m.root && node.children[ch] == nil {
		node = node.failure
	}
	if next := node.children[ch]; next != nil {
		return next
	}
	return m.root
}

// FindAll returns every occurrence in text, ordered by end position.
func (m *PhraseMatcher) FindAll(text string) []PhraseMatch {
	var (
		matches []PhraseMatch
		starts  []int // byte offset of each rune seen so far
	)
	node := m.root
	for i, ch := range text {
		starts = append(starts, i)
		node = m.step(node, unicode.ToLower(ch))
		_, size := utf8.DecodeRuneInString(text[i:])
		end := i + size
		for _, idx := range node.output {
			matches = append(matches, PhraseMatch{
				Phrase: m.phrases[idx],
				Index:  idx,
				Start:  starts[len(starts)-m.runes[idx]],
				End:    end,
			})
		}
	}
	return matches
}

// Contains reports whether any phrase occurs in text.
func (m *PhraseMatcher) Contains(text string) bool {
	node := m.root
	for _, ch := range text {
		node = m.step(node, unicode.ToLower(ch))
		if len(node.output) > 0 {
			return true
		}
	}
	return false
}

// Len returns the number of registered phrases, empty ones included.
func (m *PhraseMatcher) Len() int {
	return len(m.phrases)
}
