package scene

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Build a tabular representation of a node tree.
func Stats(root Node) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Node", "Center", "Details"})

	var count, maxDepth int
	Walk(root, func(depth int, n Node) error {
		count++
		if depth > maxDepth {
			maxDepth = depth
		}
		c := n.Center()
		table.Append([]string{
			strings.Repeat("  ", depth) + nodeType(n),
			fmt.Sprintf("(%.2f, %.2f, %.2f)", c[0], c[1], c[2]),
			nodeDetails(n),
		})
		return nil
	})
	table.SetFooter([]string{"Total", fmt.Sprintf("%d nodes", count), fmt.Sprintf("depth %d", maxDepth)})

	table.Render()
	return buf.String()
}

func nodeType(n Node) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", n), "*scene.")
}

func nodeDetails(n Node) string {
	switch t := n.(type) {
	case *Sphere:
		return fmt.Sprintf("radius %.2f", t.Radius())
	case *Plane:
		nrm := t.Normal()
		return fmt.Sprintf("normal (%.2f, %.2f, %.2f)", nrm[0], nrm[1], nrm[2])
	case *InfiniteCylinder:
		axis := t.Axis()
		return fmt.Sprintf("radius %.2f, axis (%.2f, %.2f, %.2f)", t.Radius(), axis[0], axis[1], axis[2])
	case *Cylinder:
		return fmt.Sprintf("height %.2f", t.Height())
	case *Cuboid:
		sides := t.Sides()
		return fmt.Sprintf("sides %.2f x %.2f x %.2f", sides[0], sides[1], sides[2])
	case *SoftUnion:
		return fmt.Sprintf("smoothing %.3f", t.Smoothing())
	case *SoftIntersection:
		return fmt.Sprintf("smoothing %.3f", t.Smoothing())
	case Group:
		return fmt.Sprintf("%d children", len(t.Children()))
	}
	return ""
}
