package automata

import (
	"sort"
	"strconv"
	"strings"
)

// DFAEdge is one deterministic transition: any rune in Range moves to To.
type DFAEdge struct {
	Range RuneRange
	To    int
}

// DFAState is one subset-construction state.
type DFAState struct {
	Edges  []DFAEdge
	Accept bool
}

// DFA is a deterministic automaton over rune ranges, produced by subset
// construction from an NFA. State 0 is always the dead state: no outgoing
// edges, never accepting. Determinize guarantees it exists so callers can
// treat "successor == Dead" uniformly without a separate liveness check.
type DFA struct {
	States []*DFAState
	Start  int
}

// Dead is the index of the sink state every DFA carries.
const Dead = 0

// Step returns the successor state for consuming r from state s, or Dead
// if no transition matches.
func (d *DFA) Step(s int, r rune) int {
	for _, e := range d.States[s].Edges {
		if e.Range.Contains(r) {
			return e.To
		}
	}
	return Dead
}

// IsDead reports whether s is the sink state.
func (d *DFA) IsDead(s int) bool {
	return s == Dead
}

// Determinize runs subset construction over n, using epsilon-closure and a
// worklist exactly as the teacher's NFA-to-DFA conversion does, generalized
// from single-rune edges to rune-range edges via elementary-interval
// partitioning of the alphabet actually used by n.
func Determinize(n *NFA) *DFA {
	d := &DFA{}
	d.States = append(d.States, &DFAState{}) // Dead, index 0

	startSet := epsilonClosure(n, map[int]bool{n.Start: true})
	table := map[string]int{}
	todoSets := map[string]map[int]bool{}

	key := stateSetKey(startSet)
	d.Start = d.get(n, startSet, key, table, todoSets)

	for len(todoSets) > 0 {
		var curKey string
		for k := range todoSets {
			curKey = k
			break
		}
		curSet := todoSets[curKey]
		delete(todoSets, curKey)
		curIdx := table[curKey]

		edges := collectEdges(n, curSet)
		starts := elementaryStarts(edges)
		for i, lo := range starts {
			hi := rune(maxRune)
			if i+1 < len(starts) {
				hi = starts[i+1] - 1
			}
			target := map[int]bool{}
			for _, e := range edges {
				if e.Range.Contains(lo) {
					target[e.To] = true
				}
			}
			if len(target) == 0 {
				continue
			}
			closure := epsilonClosure(n, target)
			tKey := stateSetKey(closure)
			tIdx := d.get(n, closure, tKey, table, todoSets)
			d.States[curIdx].Edges = append(d.States[curIdx].Edges, DFAEdge{
				Range: RuneRange{Lo: lo, Hi: hi},
				To:    tIdx,
			})
		}
	}

	return d
}

func (d *DFA) get(n *NFA, set map[int]bool, key string, table map[string]int, todo map[string]map[int]bool) int {
	if idx, ok := table[key]; ok {
		return idx
	}
	idx := len(d.States)
	st := &DFAState{Accept: set[n.End]}
	d.States = append(d.States, st)
	table[key] = idx
	todo[key] = set
	return idx
}

func epsilonClosure(n *NFA, set map[int]bool) map[int]bool {
	closure := map[int]bool{}
	var queue []int
	for s := range set {
		closure[s] = true
		queue = append(queue, s)
	}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, next := range n.States[s].Epsilon {
			if !closure[next] {
				closure[next] = true
				queue = append(queue, next)
			}
		}
	}
	return closure
}

func stateSetKey(set map[int]bool) string {
	ids := make([]int, 0, len(set))
	for s := range set {
		ids = append(ids, s)
	}
	sort.Ints(ids)
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(id))
	}
	return b.String()
}

func collectEdges(n *NFA, set map[int]bool) []Edge {
	var edges []Edge
	for s := range set {
		edges = append(edges, n.States[s].Edges...)
	}
	return edges
}

// elementaryStarts returns, in ascending order, the low endpoint of every
// elementary interval the alphabet used by edges partitions into: every
// rune within one elementary interval has an identical set of matching
// edges, so a single representative rune per interval suffices to compute
// its successor state.
func elementaryStarts(edges []Edge) []rune {
	boundarySet := map[rune]bool{}
	for _, e := range edges {
		boundarySet[e.Range.Lo] = true
		if e.Range.Hi < maxRune {
			boundarySet[e.Range.Hi+1] = true
		}
	}
	bounds := make([]rune, 0, len(boundarySet))
	for b := range boundarySet {
		bounds = append(bounds, b)
	}
	sort.Slice(bounds, func(i, j int) bool { return bounds[i] < bounds[j] })
	return bounds
}
