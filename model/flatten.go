package model

import "github.com/google/uuid"

// FlattenElements converts a tree of elements into a flat list in
// depth-first order. Children are removed from the copies, frames are
// normalized, and elements without an ID, or repeating one already seen
// in the tree, receive a random one so that every element in the pass
// can be told apart.
func FlattenElements(elements []Element) []Element {
	var result []Element
	seen := make(map[string]bool)
	for _, el := range elements {
		flattenRecursive(el, seen, &result)
	}
	return result
}

func flattenRecursive(el Element, seen map[string]bool, result *[]Element) {
	flat := el
	flat.Children = nil
	flat.Frame = el.Frame.Normalize()
	if flat.ID == "" || seen[flat.ID] {
		flat.ID = uuid.NewString()
	}
	seen[flat.ID] = true
	*result = append(*result, flat)

	for _, child := range el.Children {
		flattenRecursive(child, seen, result)
	}
}
