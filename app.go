package main

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"term-lines/lines"
)

const loremIpsum = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, " +
	"sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. Ut enim " +
	"ad minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip " +
	"ex ea commodo consequat."

func main() {
	session, err := lines.New()
	if err != nil {
		fmt.Println("demo needs a terminal:", err)
		return
	}

	header, err := session.Line("Crunching numbers...", nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	progress, err := session.Line("Progress: [{percent:.1f}%] {bar}>", lines.Params{"percent": 0.0, "bar": ""})
	if err != nil {
		fmt.Println(err)
		return
	}

	var wg sync.WaitGroup
	for worker := 0; worker < 4; worker++ {
		counter, err := session.Line("[worker {worker}] processed {count}", lines.Params{"worker": worker, "count": 0})
		if err != nil {
			fmt.Println(err)
			return
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 1; i <= 50; i++ {
				_ = counter.Update(lines.Params{"count": i})
				time.Sleep(time.Duration(rand.Intn(60)) * time.Millisecond)
			}
		}()
	}

	for i := 0; i <= 40; i++ {
		_ = progress.Update(lines.Params{"percent": float64(i) / 40 * 100, "bar": strings.Repeat("=", i)})
		time.Sleep(60 * time.Millisecond)
	}

	// Grow the header over several rows, then shrink it back. The worker
	// lines below shift down and up without losing their content.
	_ = header.Set(loremIpsum, nil)
	time.Sleep(2 * time.Second)
	_ = header.Set("Crunching numbers... done.", nil)

	wg.Wait()
	_ = session.End()
	fmt.Println()
}
