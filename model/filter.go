package model

// FilterElements returns the elements whose type is in types and whose
// frame intersects region. An empty types list and a nil region match
// everything. The input is expected to be flat.
func FilterElements(elements []Element, types []ElementType, region *Rect) []Element {
	if len(types) == 0 && region == nil {
		return elements
	}

	typeSet := make(map[ElementType]bool, len(types))
	for _, t := range types {
		typeSet[t] = true
	}

	var result []Element
	for _, el := range elements {
		typeMatch := len(typeSet) == 0 || typeSet[el.Type]
		regionMatch := region == nil || el.Frame.Intersects(*region)
		if typeMatch && regionMatch {
			result = append(result, el)
		}
	}
	return result
}

// Controls returns the elements that are controls.
func Controls(elements []Element) []Element {
	var result []Element
	for _, el := range elements {
		if el.IsControl() {
			result = append(result, el)
		}
	}
	return result
}
