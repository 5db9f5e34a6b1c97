package wordcount_test

import (
	"context"
	"fmt"

	"github.com/hupe1980/wordcount"
)

func ExampleCount() {
	res, err := wordcount.Count(context.Background(), []byte("The cat sat on the mat."),
		wordcount.WithTopK(3))
	if err != nil {
		panic(err)
	}

	fmt.Println(res.TotalWords, res.UniqueWords)
	for i, wc := range res.Top {
		fmt.Printf("%s %d %.1f%%\n", wc.Word, wc.Count, res.Percent(i))
	}
	// Output:
	// 6 5
	// the 2 33.3%
	// cat 1 16.7%
	// mat 1 16.7%
}
