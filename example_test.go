package seqkit_test

import (
	"fmt"
	"reflect"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/seqkit"
)

func ExampleFlatten() {
	src := []any{[]any{1, 2}, []any{3, []any{4}, 5, 5.5}, 6, []any{7, 8}}

	fmt.Println(iterkit.Collect(seqkit.Flatten(src)))
	// Output: [1 2 3 4 5 5.5 6 7 8]
}

func ExampleProtectType() {
	type pair []any

	src := []any{pair{1, 2}, []any{3, pair{4}, 5}}

	fmt.Println(iterkit.Collect(seqkit.Flatten(src, seqkit.ProtectType[pair]())))
	// Output: [[1 2] 3 [4] 5]
}

func ExampleProtectFunc() {
	short := func(v any) bool {
		rv := reflect.ValueOf(v)
		return rv.Kind() == reflect.Slice && rv.Len() < 3
	}

	src := []any{[]any{1, 2}, []any{3, 4, 5, 6}}

	fmt.Println(iterkit.Collect(seqkit.Flatten(src, seqkit.ProtectFunc(short))))
	// Output: [[1 2] 3 4 5 6]
}

func ExampleSplit() {
	for field, err := range seqkit.Split("lorem ipsum dolor sit amet") {
		if err != nil {
			break
		}
		fmt.Println(field)
	}
	// Output:
	// lorem
	// ipsum
	// dolor
	// sit
	// amet
}

func ExampleSplitSeparator() {
	fields, _ := iterkit.CollectE(seqkit.Split("Programming Language :: Go :: 1.21",
		seqkit.SplitSeparator("::")))

	fmt.Printf("%q\n", fields)
	// Output: ["Programming Language " " Go " " 1.21"]
}

func ExampleSplitMaxSplits() {
	fields, _ := iterkit.CollectE(seqkit.Split("a b c d",
		seqkit.SplitMaxSplits(2)))

	fmt.Printf("%q\n", fields)
	// Output: ["a" "b" "c d"]
}

func ExampleEveryNth() {
	nums := iterkit.IntRange(1, 9)

	fmt.Println(iterkit.Collect(seqkit.EveryNth(nums, 3, 0)))
	// Output: [3 6 9]
}

func ExampleEven() {
	fmt.Println(iterkit.Collect(seqkit.Even(iterkit.IntRange(1, 6))))
	// Output: [2 4 6]
}

func ExampleOdd() {
	fmt.Println(iterkit.Collect(seqkit.Odd(iterkit.IntRange(1, 6))))
	// Output: [1 3 5]
}

func ExampleToPullIter() {
	itr := seqkit.ToPullIter(seqkit.Split("a b c"))
	defer itr.Close()

	for itr.Next() {
		fmt.Println(itr.Value())
	}
	if err := itr.Err(); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// a
	// b
	// c
}

func ExampleFromPullIter() {
	itr := seqkit.ToPullIter(seqkit.Split("a b"))

	for v, err := range seqkit.FromPullIter(itr) {
		if err != nil {
			break
		}
		fmt.Println(v)
	}
	// Output:
	// a
	// b
}
