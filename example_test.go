package vecslice_test

import (
	"fmt"

	"github.com/hupe1980/vecslice"
	"github.com/hupe1980/vecslice/handle"
	"github.com/hupe1980/vecslice/location"
)

func Example() {
	vs := vecslice.New[float64](nil)

	h := handle.New([]float64{10, 20, 30, 40, 50}).
		WithNames(handle.NewNameTable("a", "b", "c", "d", "e"))

	// Exclude the second and fourth elements.
	sub, _ := vs.Slice(h, location.Positions{-2, -4})
	fmt.Println(sub.Values())

	// Overwrite the masked elements in place.
	out, _ := vs.Assign(h, location.Mask{true, false, true, false, true}, []float64{1, 3, 5})
	fmt.Println(out.Values())

	// Output:
	// [10 30 50]
	// [1 20 3 40 5]
}

func ExampleVecslice_EnsureMutable() {
	vs := vecslice.New[int](nil)

	h := handle.New([]int{1, 2, 3})
	alias := h.Alias()

	m := vs.EnsureMutable(alias)
	m.Values()[0] = 99

	fmt.Println(h.Values())
	fmt.Println(m.Values())

	// Output:
	// [1 2 3]
	// [99 2 3]
}
