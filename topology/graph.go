package topology

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/fastcat/hellonet/device"
)

// Components groups the devices into connected segments of the inferred
// topology. Each segment is sorted by id and segments are ordered by their
// first id. Devices with no links at all are segments of one.
func Components(devices *device.Set, links []Link) [][]string {
	ids := devices.IDs()
	index := make(map[string]int64, len(ids))
	g := simple.NewUndirectedGraph()
	for n, id := range ids {
		index[id] = int64(n)
		g.AddNode(simple.Node(n))
	}
	for _, l := range links {
		from, ok := index[l.FromDevice]
		if !ok {
			continue
		}
		to, ok := index[l.ToDevice]
		if !ok || from == to {
			continue
		}
		g.SetEdge(g.NewEdge(simple.Node(from), simple.Node(to)))
	}

	components := topo.ConnectedComponents(g)
	ret := make([][]string, 0, len(components))
	for _, c := range components {
		names := make([]string, len(c))
		for i, n := range c {
			names[i] = ids[n.ID()]
		}
		sort.Strings(names)
		ret = append(ret, names)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}
