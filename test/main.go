package main

import (
	"fmt"
	"time"

	"github.com/henderiw/interval/pkg/interval"
	"github.com/henderiw/interval/pkg/ipinterval"
	"github.com/henderiw/interval/pkg/timeinterval"
)

var values = []struct {
	a int
	b int
}{
	{a: 1, b: 2},
	{a: 2, b: 3},
	{a: 2, b: 4},
	{a: 3, b: 3},
	{a: 3, b: 7},
	{a: 4, b: 6},
	{a: 7, b: 8},
	{a: 8, b: 9},
}

func main() {
	ref := interval.New(3, 7)
	for _, v := range values {
		x := interval.New(v.a, v.b)
		fmt.Println(x, ref, x.Relate(ref))
	}

	window, err := timeinterval.Parse("2024-05-01T00:00:00Z", "2024-05-02T00:00:00Z")
	if err != nil {
		panic(err)
	}
	meeting := timeinterval.Window(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), time.Hour)
	fmt.Println("meeting during window:", meeting.IsDuring(window))

	x, err := ipinterval.Parse("10.0.0.10-10.0.0.100")
	if err != nil {
		panic(err)
	}
	y, err := ipinterval.Parse("10.0.0.50-10.0.0.200")
	if err != nil {
		panic(err)
	}
	fmt.Println(ipinterval.Range(x), ipinterval.Range(y), x.Relate(y))
}
