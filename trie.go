package termline

import (
	"errors"
	"fmt"
)

// vocabChars is the full set of characters a vocabulary word may contain.
// Keeping the set small keeps each node's child array small, and lookups
// stay O(1) per character.
const vocabChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_"

const invalidIndex = 0xFF

var (
	// ErrInvalidChar reports a vocabulary word containing a byte outside
	// the accepted character set.
	ErrInvalidChar = errors.New("invalid character in vocabulary word")

	// ErrEmptyWord reports an attempt to add an empty vocabulary word.
	ErrEmptyWord = errors.New("empty vocabulary word")
)

type trieNode struct {
	children []*trieNode
	terminal bool
	word     string // characters on the path from the root to this node
}

// Trie stores the completion vocabulary as a prefix tree over the fixed
// vocabulary character set. Populate it once before reading input; it is
// read-only afterwards.
type Trie struct {
	root  *trieNode
	index [128]uint8 // byte value -> dense child index, or invalidIndex
	chars []byte     // dense child index -> byte value
	words int
}

// NewTrie returns an empty trie.
func NewTrie() *Trie {
	t := &Trie{}
	for i := range t.index {
		t.index[i] = invalidIndex
	}
	for _, c := range []byte(vocabChars) {
		t.index[c] = uint8(len(t.chars))
		t.chars = append(t.chars, c)
	}
	return t
}

func (t *Trie) newNode() *trieNode {
	return &trieNode{children: make([]*trieNode, len(t.chars))}
}

func (t *Trie) indexOf(c byte) uint8 {
	if c >= 128 {
		return invalidIndex
	}
	return t.index[c]
}

// Insert adds word to the vocabulary. Inserting a word that is already
// present is a no-op. A word containing a character outside the accepted
// set is rejected with ErrInvalidChar and nothing is added.
func (t *Trie) Insert(word string) error {
	if word == "" {
		return ErrEmptyWord
	}
	for i := 0; i < len(word); i++ {
		if t.indexOf(word[i]) == invalidIndex {
			return fmt.Errorf("%w: %q", ErrInvalidChar, word[i])
		}
	}
	if t.root == nil {
		t.root = t.newNode()
	}
	cur := t.root
	for i := 0; i < len(word); i++ {
		idx := t.indexOf(word[i])
		if cur.children[idx] == nil {
			child := t.newNode()
			child.word = word[:i+1]
			cur.children[idx] = child
		}
		cur = cur.children[idx]
	}
	if !cur.terminal {
		cur.terminal = true
		t.words++
	}
	return nil
}

// Len reports the number of distinct words in the vocabulary.
func (t *Trie) Len() int {
	return t.words
}

// Query follows prefix into the trie and reports the number of candidate
// completions together with the longest unambiguous extension of the
// prefix. A prefix not present in the vocabulary reports (0, ""). Reaching
// a terminal node stops the descent: it is reported as a single exact
// match even when longer words continue beneath it.
func (t *Trie) Query(prefix string) (int, string) {
	node := t.walk(prefix)
	if node == nil {
		return 0, ""
	}
	n, last := t.extend(node)
	return n, last.word
}

// Completions lists every vocabulary word that begins with prefix, in
// alphabet order.
func (t *Trie) Completions(prefix string) []string {
	node := t.walk(prefix)
	if node == nil {
		return nil
	}
	_, node = t.extend(node)
	var words []string
	t.collect(node, &words)
	return words
}

// walk follows prefix edge by edge, returning nil if any edge is missing.
func (t *Trie) walk(prefix string) *trieNode {
	if t.root == nil {
		return nil
	}
	cur := t.root
	for i := 0; i < len(prefix); i++ {
		idx := t.indexOf(prefix[i])
		if idx == invalidIndex || cur.children[idx] == nil {
			return nil
		}
		cur = cur.children[idx]
	}
	return cur
}

// extend descends from node while the path is unambiguous and returns the
// candidate count plus the node the descent stopped at.
func (t *Trie) extend(node *trieNode) (int, *trieNode) {
	for {
		if node.terminal {
			return 1, node
		}
		live := t.liveChildren(node)
		switch len(live) {
		case 0:
			panic("termline: non-terminal trie node has no children")
		case 1:
			node = node.children[live[0]]
		default:
			return t.countWords(node), node
		}
	}
}

// countWords counts the vocabulary words at or below n.
func (t *Trie) countWords(n *trieNode) int {
	count := 0
	if n.terminal {
		count++
	}
	for _, c := range n.children {
		if c != nil {
			count += t.countWords(c)
		}
	}
	return count
}

func (t *Trie) liveChildren(n *trieNode) []int {
	var live []int
	for i, c := range n.children {
		if c != nil {
			live = append(live, i)
		}
	}
	return live
}

func (t *Trie) collect(n *trieNode, words *[]string) {
	live := t.liveChildren(n)
	if n.terminal {
		*words = append(*words, n.word)
	} else if len(live) == 0 {
		panic("termline: non-terminal trie node has no children")
	}
	for _, i := range live {
		t.collect(n.children[i], words)
	}
}
