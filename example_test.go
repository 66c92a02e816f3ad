package tzdate_test

import (
	"fmt"
	"time"

	"github.com/rabitt1ove/tzdate"
)

func ExampleMustYMD() {
	jst := tzdate.MustFixedEast(9 * 60 * 60)
	d := tzdate.MustYMD(jst, 2024, time.January, 1)
	fmt.Println(d)
	// Output: 2024-01-01+09:00
}

func ExampleDate_In() {
	d := tzdate.DateFromUTC(tzdate.UTC, tzdate.MustNaiveDate(2024, time.June, 10))
	fmt.Println(d)
	fmt.Println(d.In(tzdate.MustFixedEast(9 * 60 * 60)))
	// Output:
	// 2024-06-10Z
	// 2024-06-10+09:00
}

func ExampleDate_AndHMS() {
	jst := tzdate.MustFixedEast(9 * 60 * 60)
	d := tzdate.MustYMD(jst, 2024, time.January, 1)
	dt, ok := d.AndHMS(5, 6, 7)
	fmt.Println(dt, ok)
	fmt.Println(dt.NaiveUTC())
	// Output:
	// 2024-01-01T05:06:07+09:00 true
	// 2023-12-31T20:06:07
}

func ExampleDate_WithMonth() {
	d := tzdate.DateFromUTC(tzdate.UTC, tzdate.MustNaiveDate(2024, time.January, 31))
	if _, ok := d.WithMonth(time.April); !ok {
		fmt.Println("April 31 does not exist")
	}
	// Output: April 31 does not exist
}

func ExampleDate_Sub() {
	a := tzdate.DateFromUTC(tzdate.UTC, tzdate.MustNaiveDate(2012, time.March, 4))
	b := tzdate.DateFromUTC(tzdate.UTC, tzdate.MustNaiveDate(2012, time.February, 29))
	fmt.Println(a.Sub(b))
	// Output: 4d00h00m00s
}

func ExampleDate_Equal() {
	// Identity is the UTC day; the offset is presentation only.
	u := tzdate.MustNaiveDate(2024, time.January, 1)
	a := tzdate.FromUTC(u, tzdate.MustFixedEast(9*60*60))
	b := tzdate.FromUTC(u, tzdate.MustFixedEast(-8*60*60))
	fmt.Println(a.Equal(b))
	// Output: true
}

func ExampleResolution() {
	jst := tzdate.MustFixedEast(9 * 60 * 60)
	res := jst.ResolveLocalDate(tzdate.MustNaiveDate(2024, time.January, 1))
	fmt.Println(res.Kind())
	// Output: Single
}
