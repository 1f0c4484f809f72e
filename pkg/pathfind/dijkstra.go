package pathfind

import (
	"container/heap"
	"slices"
)

// Edge is a weighted transition to another search state.
type Edge[S comparable] struct {
	To   S
	Cost int
}

// Result is the outcome of a successful Dijkstra search.
type Result[S comparable] struct {
	Path []S
	Cost int
}

type queueItem[S comparable] struct {
	state S
	cost  int
	seq   int
}

// queue is a min-heap on cost; ties pop in insertion order so results are
// deterministic.
type queue[S comparable] []queueItem[S]

func (q queue[S]) Len() int { return len(q) }

func (q queue[S]) Less(i, j int) bool {
	if q[i].cost != q[j].cost {
		return q[i].cost < q[j].cost
	}
	return q[i].seq < q[j].seq
}

func (q queue[S]) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *queue[S]) Push(x any) { *q = append(*q, x.(queueItem[S])) }

func (q *queue[S]) Pop() any {
	old := *q
	it := old[len(old)-1]
	*q = old[:len(old)-1]
	return it
}

// Dijkstra finds a cheapest path from start to any state satisfying goal.
// Edge costs must be non-negative. States are typically a coordinate, or a
// coordinate plus a heading when turning has a cost.
func Dijkstra[S comparable](start S, successors func(S) []Edge[S], goal func(S) bool) (Result[S], bool) {
	best := map[S]int{start: 0}
	prev := make(map[S]S)
	q := &queue[S]{{state: start}}
	seq := 1

	for q.Len() > 0 {
		cur := heap.Pop(q).(queueItem[S])
		if cur.cost > best[cur.state] {
			continue
		}
		if goal(cur.state) {
			return Result[S]{Path: backtrack(prev, start, cur.state), Cost: cur.cost}, true
		}
		for _, e := range successors(cur.state) {
			next := cur.cost + e.Cost
			if old, seen := best[e.To]; seen && old <= next {
				continue
			}
			best[e.To] = next
			prev[e.To] = cur.state
			heap.Push(q, queueItem[S]{state: e.To, cost: next, seq: seq})
			seq++
		}
	}
	return Result[S]{}, false
}

func backtrack[S comparable](prev map[S]S, start, end S) []S {
	path := []S{end}
	for cur := end; cur != start; {
		cur = prev[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)
	return path
}
