package scene

// Visit n and all of its descendants in depth-first order. Compound
// wrappers are reported together with their composition root. Walking
// stops at the first error returned by fn.
func Walk(n Node, fn func(depth int, n Node) error) error {
	return walk(n, 0, fn)
}

func walk(n Node, depth int, fn func(depth int, n Node) error) error {
	if err := fn(depth, n); err != nil {
		return err
	}

	g, ok := n.(Group)
	if !ok {
		return nil
	}
	for _, child := range g.Children() {
		if err := walk(child, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}
