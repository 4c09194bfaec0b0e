package main

import (
	"fmt"

	vec "github.com/facebookincubator/go-vecext"
)

func main() {
	colors := []string{
		"red", "yellow", "orange", "blue",
	}
	// size your vector when you know ahead of time how many
	// entries it will hold.  Otherwise, just use New()
	v := vec.WithCapacity[string](uint(len(colors)))
	for _, color := range colors {
		v.Push(color)
	}
	fmt.Printf("%d colors in %d slots\n", v.Len(), v.Cap())

	// bounds checked access
	if c, ok := v.Get(2); ok {
		fmt.Printf("third color: %s\n", *c)
	}
	none := "none"
	fmt.Printf("tenth color: %s\n", *v.GetOr(9, &none))

	// forward traversal
	cur := v.Cursor()
	for {
		c, ok := cur.Next()
		if !ok {
			break
		}
		fmt.Println(*c)
	}

	// removal hands the value back
	if last, ok := v.Pop(); ok {
		fmt.Printf("popped %q, %d remain\n", last, v.Len())
	}

	// Dump the whole vector in textual form
	v.DebugDump()
}
