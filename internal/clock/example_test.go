package clock_test

import (
	"fmt"

	"github.com/mrz1836/tickclock/internal/clock"
)

func Example() {
	c, err := clock.New(10, func(c *clock.Clock) {
		now := make([]uint8, 6)
		c.GetTime(now)
		fmt.Println("alarm at", now)
	})
	if err != nil {
		panic(err)
	}

	_ = c.SetupTime([]uint8{0, 6, 5, 9, 5, 8})
	_ = c.SetupAlarm([]uint8{0, 7, 0, 0})

	for i := 0; i < 20; i++ {
		c.NewTick()
	}

	now := make([]uint8, 6)
	fmt.Println(c.GetTime(now), now)
	// Output:
	// alarm at [0 7 0 0 0 0]
	// true [0 7 0 0 0 0]
}
