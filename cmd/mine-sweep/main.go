package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"minesweeper/internal/config"
	"minesweeper/internal/core"
	"minesweeper/internal/mines"
	rng "minesweeper/pkg/core"
)

type job struct {
	size int
	seed int64
}

type boardResult struct {
	job
	analysis mines.Analysis
}

type summary struct {
	size       int
	boards     int
	mines      int
	zeroCells  int
	openings   int
	largest    int
	bbbv       int
	minBBBV    int
	maxBBBV    int
	easiest    int64
	centreMine int
}

func (s *summary) add(r boardResult) {
	a := r.analysis
	if s.boards == 0 || a.BBBV < s.minBBBV {
		s.minBBBV = a.BBBV
		s.easiest = r.seed
	}
	s.maxBBBV = max(s.maxBBBV, a.BBBV)
	s.boards++
	s.mines += a.Mines
	s.zeroCells += a.ZeroCells
	s.openings += a.Openings
	s.largest += a.LargestOpening
	s.bbbv += a.BBBV
	if a.CentreMine {
		s.centreMine++
	}
}

func (s *summary) String() string {
	n := float64(s.boards)
	return fmt.Sprintf("%2dx%-2d boards=%d mines=%d zero=%.1f openings=%.1f largest=%.1f 3bv=%.1f [%d,%d] centreMine=%.1f%% easiest=seed %d",
		s.size, s.size, s.boards, s.mines/s.boards, float64(s.zeroCells)/n, float64(s.openings)/n,
		float64(s.largest)/n, float64(s.bbbv)/n, s.minBBBV, s.maxBBBV, 100*float64(s.centreMine)/n, s.easiest)
}

func main() {
	boards := flag.Int("boards", 1000, "boards to generate per size")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1, "seed of the first board; later boards count up")
	configPath := flag.String("config", "", "path to a YAML config file with difficulties")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	settings.Register()

	var sizes []int
	seen := map[int]bool{}
	for _, d := range core.Difficulties() {
		if !seen[d.Size] {
			seen[d.Size] = true
			sizes = append(sizes, d.Size)
		}
	}

	fmt.Printf("Sweeping %d boards for sizes %v (%d workers)\n", *boards, sizes, *workers)

	jobs := make(chan job)
	results := make(chan boardResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				b := mines.Generate(j.size, rng.NewRNG(j.seed))
				results <- boardResult{job: j, analysis: mines.Analyze(b)}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, size := range sizes {
			for i := 0; i < *boards; i++ {
				jobs <- job{size: size, seed: *seed + int64(i)}
			}
		}
		close(jobs)
	}()

	start := time.Now()
	bySize := map[int]*summary{}
	for res := range results {
		s, ok := bySize[res.size]
		if !ok {
			s = &summary{size: res.size}
			bySize[res.size] = s
		}
		s.add(res)
	}

	all := make([]*summary, 0, len(bySize))
	for _, s := range bySize {
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].size < all[j].size })

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, s := range all {
		fmt.Println(s)
	}
}
