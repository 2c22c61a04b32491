package hanoi

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func allOn(t *testing.T, k, n, peg int) *Configuration {
	t.Helper()
	assignment := make([]int, n)
	for i := range assignment {
		assignment[i] = peg
	}
	c, err := FromAssignment(k, assignment)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func solve(t *testing.T, source, target *Configuration) *Result {
	t.Helper()
	res, err := Search(context.Background(), source, target, Options{})
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	return res
}

func checkReplay(t *testing.T, source, target *Configuration, p Path) {
	t.Helper()
	end, err := Replay(source, p)
	if err != nil {
		t.Fatalf("Replay() error: %v", err)
	}
	if !end.Equal(target) {
		t.Errorf("Replay() ended at %v, want %v", end, target)
	}
}

func TestSearchClassicThreeDiscs(t *testing.T) {
	source := allOn(t, 3, 3, 0)
	target := allOn(t, 3, 3, 2)

	res := solve(t, source, target)
	if !res.Found() {
		t.Fatal("Search() should find the target")
	}
	p := res.Path()
	if p.Len() != 7 {
		t.Errorf("path length = %d, want 7", p.Len())
	}
	checkReplay(t, source, target, p)
}

func TestSearchThreePegsOptimal(t *testing.T) {
	for n := 1; n <= 6; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			source := allOn(t, 3, n, 0)
			target := allOn(t, 3, n, 2)
			res := solve(t, source, target)
			if want := 1<<n - 1; res.Path().Len() != want {
				t.Errorf("path length = %d, want %d", res.Path().Len(), want)
			}
			checkReplay(t, source, target, res.Path())
		})
	}
}

func TestSearchFourPegsOptimal(t *testing.T) {
	// Minimal move counts for four pegs (Frame-Stewart numbers, proven optimal).
	want := []int{1, 3, 5, 9, 13}
	for i, w := range want {
		n := i + 1
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			source := allOn(t, 4, n, 0)
			target := allOn(t, 4, n, 3)
			res := solve(t, source, target)
			if res.Path().Len() != w {
				t.Errorf("path length = %d, want %d", res.Path().Len(), w)
			}
			checkReplay(t, source, target, res.Path())
		})
	}
}

func TestSearchMatchesBruteForce(t *testing.T) {
	const k, n = 3, 4
	start := []int{0, 1, 2, 0}
	source, err := FromAssignment(k, start)
	if err != nil {
		t.Fatal(err)
	}

	dist := bruteDistances(k, start)
	if len(dist) != 81 {
		t.Fatalf("brute force reached %d states, want 81", len(dist))
	}
	for key, d := range dist {
		assignment := make([]int, n)
		for i := range assignment {
			assignment[i] = int(key[i] - '0')
		}
		target, err := FromAssignment(k, assignment)
		if err != nil {
			t.Fatal(err)
		}
		res := solve(t, source, target)
		if res.Path().Len() != d {
			t.Errorf("target %v: path length = %d, want %d", target, res.Path().Len(), d)
		}
		checkReplay(t, source, target, res.Path())
	}
}

func TestSearchSourceEqualsTarget(t *testing.T) {
	source := allOn(t, 3, 3, 0)
	target := allOn(t, 3, 3, 0)

	res := solve(t, source, target)
	if !res.Found() {
		t.Fatal("Search() should report Found when source equals target")
	}
	if p := res.Path(); p == nil || p.Len() != 0 {
		t.Errorf("Path() = %v, want empty non-nil path", p)
	}
	if res.Stats.Expanded != 0 || res.Stats.Visited != 1 {
		t.Errorf("Stats = %+v, want 0 expanded and 1 visited", res.Stats)
	}
}

func TestSearchTwoPegsOneDisc(t *testing.T) {
	source := allOn(t, 2, 1, 0)
	target := allOn(t, 2, 1, 1)

	res := solve(t, source, target)
	p := res.Path()
	if p.Len() != 1 {
		t.Fatalf("path length = %d, want 1", p.Len())
	}
	if got := p[0].String(); got != "1 2" {
		t.Errorf("move = %q, want %q", got, "1 2")
	}
}

func TestSearchExhausted(t *testing.T) {
	// Two pegs cannot swap a two-disc stack.
	source := allOn(t, 2, 2, 0)
	target := allOn(t, 2, 2, 1)

	for i := 0; i < 2; i++ {
		res := solve(t, source, target)
		if res.Found() {
			t.Fatalf("run %d: Search() found an impossible target", i)
		}
		if res.Outcome != Exhausted || res.Outcome.String() != "exhausted" {
			t.Errorf("run %d: Outcome = %v, want exhausted", i, res.Outcome)
		}
		if res.Target != nil || res.Path() != nil {
			t.Errorf("run %d: exhausted search should not carry a path", i)
		}
		if res.Stats.Visited != 2 {
			t.Errorf("run %d: visited = %d, want 2", i, res.Stats.Visited)
		}
	}
}

func TestSearchUsesDerivedSourceAsRoot(t *testing.T) {
	start := allOn(t, 3, 2, 0)
	mid, err := start.Apply(Move{From: 0, To: 1})
	if err != nil {
		t.Fatal(err)
	}
	res := solve(t, mid, mid)
	if res.Path().Len() != 0 {
		t.Errorf("path from a derived source should start at that source, got %v", res.Path())
	}
}

func TestSearchErrors(t *testing.T) {
	three := allOn(t, 3, 3, 0)
	fourPegs := allOn(t, 4, 3, 0)
	twoDiscs := allOn(t, 3, 2, 0)

	tests := []struct {
		name   string
		source *Configuration
		target *Configuration
		want   error
	}{
		{"NilSource", nil, three, ErrNilConfiguration},
		{"NilTarget", three, nil, ErrNilConfiguration},
		{"PegMismatch", three, fourPegs, ErrShapeMismatch},
		{"DiscMismatch", three, twoDiscs, ErrShapeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Search(context.Background(), tt.source, tt.target, Options{})
			if !errors.Is(err, tt.want) {
				t.Errorf("Search() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSearchStateLimit(t *testing.T) {
	source := allOn(t, 3, 3, 0)
	target := allOn(t, 3, 3, 2)

	_, err := Search(context.Background(), source, target, Options{MaxStates: 3})
	if !errors.Is(err, ErrStateLimit) {
		t.Errorf("Search() error = %v, want ErrStateLimit", err)
	}
}

func TestSearchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Search(ctx, allOn(t, 3, 3, 0), allOn(t, 3, 3, 2), Options{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Search() error = %v, want context.Canceled", err)
	}
}

func TestSearchOnVisit(t *testing.T) {
	source := allOn(t, 3, 2, 0)
	target := allOn(t, 3, 2, 2)

	var visits []int
	var first *Configuration
	res, err := Search(context.Background(), source, target, Options{
		OnVisit: func(c *Configuration, depth int) {
			if first == nil {
				first = c
			}
			visits = append(visits, depth)
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	if !first.Equal(source) || visits[0] != 0 {
		t.Error("first visit should be the source at depth 0")
	}
	for i := 1; i < len(visits); i++ {
		if visits[i] < visits[i-1] {
			t.Fatalf("depths not monotonic: %v", visits)
		}
	}
	if last := visits[len(visits)-1]; last != res.Path().Len() {
		t.Errorf("target visited at depth %d, path length %d", last, res.Path().Len())
	}
	if res.Stats.Depth != res.Path().Len() {
		t.Errorf("Stats.Depth = %d, want %d", res.Stats.Depth, res.Path().Len())
	}
}

func TestOutcomeString(t *testing.T) {
	if Found.String() != "found" || Exhausted.String() != "exhausted" {
		t.Errorf("unexpected outcome strings: %q, %q", Found, Exhausted)
	}
}

// bruteDistances computes move distances over disc-to-peg assignments without
// using Configuration, as an independent check on Search.
func bruteDistances(k int, start []int) map[string]int {
	encode := func(a []int) string {
		var b strings.Builder
		for _, p := range a {
			b.WriteByte(byte('0' + p))
		}
		return b.String()
	}
	// The top disc of a peg is the smallest disc assigned to it.
	top := func(a []int, peg int) int {
		for d, p := range a {
			if p == peg {
				return d
			}
		}
		return -1
	}

	dist := map[string]int{encode(start): 0}
	queue := [][]int{start}
	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]
		d := dist[encode(a)]
		for from := 0; from < k; from++ {
			disc := top(a, from)
			if disc < 0 {
				continue
			}
			for to := 0; to < k; to++ {
				if to == from {
					continue
				}
				if t := top(a, to); t >= 0 && t < disc {
					continue
				}
				next := append([]int(nil), a...)
				next[disc] = to
				key := encode(next)
				if _, ok := dist[key]; !ok {
					dist[key] = d + 1
					queue = append(queue, next)
				}
			}
		}
	}
	return dist
}
