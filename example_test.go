package bezier2d_test

import (
	"errors"
	"fmt"

	"github.com/bezier2d/bezier2d"
)

func ExamplePath() {
	p := bezier2d.NewPath(bezier2d.Pt(0, 0))
	p.AddSegment(bezier2d.Pt(3, 0))
	fmt.Println(p.SegmentCount(), p.AnchorCount())
	fmt.Println(p.SVG(bezier2d.SVGOptions{}))

	p.ToggleClosed()
	fmt.Println(p.SVG(bezier2d.SVGOptions{}))

	// Output:
	// 2 3
	// M-1,0 C-0.5,0.5 0.5,-0.5 1,0 C1.5,0.5 2.25,0.25 3,0
	// M-1,0 C-0.5,0.5 0.5,-0.5 1,0 C1.5,0.5 2.25,0.25 3,0 C3.75,-0.25 -1.5,-0.5 -1,0 Z
}

func ExamplePath_EvenlySpacedPoints() {
	p, err := bezier2d.NewPathFromPoints([]bezier2d.Point{
		bezier2d.Pt(0, 0), bezier2d.Pt(1, 0), bezier2d.Pt(2, 0), bezier2d.Pt(3, 0),
	}, false, false)
	if err != nil {
		panic(err)
	}
	pts, err := p.EvenlySpacedPoints(0.7, 1)
	if err != nil {
		panic(err)
	}
	for _, pt := range pts {
		fmt.Printf("%.2f\n", pt.X)
	}

	// Output:
	// 0.00
	// 0.70
	// 1.40
	// 2.10
	// 2.80
}

func ExamplePath_DeleteSegment() {
	p := bezier2d.NewPath(bezier2d.Pt(0, 0))
	p.SetEditPolicy(bezier2d.RejectInvalid)

	err := p.DeleteSegment(3)
	fmt.Println(errors.Is(err, bezier2d.ErrInvalidOperation))

	err = p.DeleteSegment(2)
	var ierr *bezier2d.IndexError
	fmt.Println(errors.As(err, &ierr), err)

	// Output:
	// true
	// true delete segment: index 2 is not an anchor
}
