package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"terrarium/internal/core"
	"terrarium/internal/sandbox"
)

func main() {
	log.SetPrefix("settle-sweep: ")
	log.SetFlags(0)

	base := sandbox.DefaultPourConfig()
	seeds := flag.Int("seeds", 8, "seeds to try per brush size")
	kind := flag.String("kind", base.Kind.String(), "particle to pour: sand, stone or water")
	flag.IntVar(&base.Width, "width", base.Width, "grid width in cells")
	flag.IntVar(&base.Height, "height", base.Height, "grid height in cells")
	flag.IntVar(&base.PourTicks, "pour", base.PourTicks, "ticks the brush is held down")
	flag.IntVar(&base.MaxSteps, "steps", base.MaxSteps, "tick limit per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	k, ok := core.ParseKind(*kind)
	if !ok || k == core.Empty {
		log.Fatalf("unknown kind %q", *kind)
	}
	base.Kind = k
	if *seeds <= 0 || *workers <= 0 {
		log.Fatal("seeds and workers must be positive")
	}

	var sets []sandbox.PourConfig
	for _, size := range []int{1, 3, 5, 9} {
		for seed := 1; seed <= *seeds; seed++ {
			cfg := base
			cfg.BrushSize = size
			cfg.Seed = int64(seed)
			sets = append(sets, cfg)
		}
	}

	fmt.Printf("Pouring %s in %d scenarios (%d workers, %dx%d grid, %d steps)\n",
		base.Kind, len(sets), *workers, base.Width, base.Height, base.MaxSteps)

	jobs := make(chan sandbox.PourConfig)
	results := make(chan sandbox.SettleResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for cfg := range jobs {
				results <- sandbox.Pour(cfg)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, cfg := range sets {
			jobs <- cfg
		}
		close(jobs)
	}()

	start := time.Now()
	var all []sandbox.SettleResult
	unsettled := 0
	for res := range results {
		all = append(all, res)
		if !res.Settled {
			unsettled++
			fmt.Printf("Still moving after %d steps: size=%d seed=%d\n",
				res.Config.MaxSteps, res.Config.BrushSize, res.Config.Seed)
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Config.BrushSize != all[j].Config.BrushSize {
			return all[i].Config.BrushSize < all[j].Config.BrushSize
		}
		return all[i].Config.Seed < all[j].Config.Seed
	})
	elapsed := time.Since(start)

	fmt.Printf("\nResults (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for _, res := range all {
		fmt.Printf("size=%d seed=%d settled=%t step=%d particles=%d pile=%dx%d collisions=%d\n",
			res.Config.BrushSize, res.Config.Seed, res.Settled, res.SettledAt,
			res.Particles, res.PileWidth, res.PileHeight, res.Collisions)
	}
	if unsettled > 0 {
		fmt.Printf("\n%d of %d scenarios did not settle\n", unsettled, len(all))
	}
}
