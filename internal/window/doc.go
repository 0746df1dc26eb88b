// Package window implements the window tree: a binary tree of horizontal
// or vertical split containers whose leaves are windows, each owning one
// buffer view. A separate minibuffer window sits outside the tree, pinned
// to the bottom row.
package window
