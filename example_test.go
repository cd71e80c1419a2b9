package xshape_test

import (
	"fmt"

	"deedles.dev/xshape"
)

func Example() {
	a := xshape.O.Close(xshape.O.Extend().Extend().Extend().Extend())
	fmt.Println(a)

	b := a.Sub(xshape.MustRt(2, 1))
	fmt.Println(b)

	sq, err := b.Pow(2)
	if err != nil {
		panic(err)
	}
	fmt.Println(sq)
	fmt.Println(sq.Area())

	// Output:
	// (o- - - - -o)
	// (o- - -o)
	// (o- - -o
	// |[     ]
	// |o- - -o)
	// 9
}

func ExampleRect_Mul() {
	a := xshape.MustRt(5, 1)
	b := xshape.MustRt(1, 3)

	p, err := a.Mul(b)
	if err != nil {
		panic(err)
	}
	fmt.Println(p.Width(), p.Height())

	// Output: 5 3
}
