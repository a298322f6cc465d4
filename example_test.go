package cleave_test

import (
	"context"
	"fmt"

	"github.com/cleave-go/cleave"
	"github.com/cleave-go/cleave/seq"
)

func ExampleReduce() {
	nums := []int{1, 2, 3, 4, 5, 6, 7, 8}
	doubled := cleave.Map(cleave.Slice(nums), func(v int) int { return v * 2 })

	sum, err := cleave.Reduce(context.Background(), doubled, 0,
		func(acc, v int) int { return acc + v },
		func(a, b int) int { return a + b },
		cleave.WithThreshold(2),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sum)
	// Output: 72
}

func ExampleZip() {
	pairs := cleave.Zip(
		cleave.Slice([]int{1, 2, 3, 4}),
		cleave.Slice([]int{10, 20, 30, 40}),
	)
	sums := cleave.Map(pairs, func(p seq.Pair[int, int]) int {
		return p.First + p.Second
	})

	out, err := cleave.Collect(context.Background(), sums, cleave.WithThreshold(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out)
	// Output: [11 22 33 44]
}

func ExampleCollect() {
	words := cleave.Map(cleave.Slice([]string{"go", "run", "fast"}), func(s string) int {
		return len(s)
	})

	lengths, err := cleave.Collect(context.Background(), words)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(lengths)
	// Output: [2 3 4]
}

func ExampleReduce_panicAsError() {
	it := cleave.Map(cleave.Slice([]int{1, 2, 3}), func(v int) int {
		if v == 2 {
			panic("corrupt record")
		}
		return v
	})

	_, err := cleave.Reduce(context.Background(), it, 0,
		func(acc, v int) int { return acc + v },
		func(a, b int) int { return a + b },
		cleave.WithThreshold(1),
		cleave.WithPanicAsError(),
	)
	if pe, ok := err.(*cleave.PanicError); ok {
		fmt.Println("recovered:", pe.Value)
	}
	// Output: recovered: corrupt record
}
