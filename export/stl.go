package export

import (
	"bufio"
	"fmt"
	"io"
)

// Write mesh as an ASCII STL solid.
func WriteSTL(w io.Writer, name string, mesh *Mesh) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "solid %s\n", name)
	for _, tri := range mesh.Triangles {
		n := tri.Normal
		fmt.Fprintf(bw, "  facet normal %e %e %e\n", n[0], n[1], n[2])
		fmt.Fprintln(bw, "    outer loop")
		for _, v := range tri.Vertices {
			fmt.Fprintf(bw, "      vertex %e %e %e\n", v[0], v[1], v[2])
		}
		fmt.Fprintln(bw, "    endloop")
		fmt.Fprintln(bw, "  endfacet")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)
	return bw.Flush()
}
