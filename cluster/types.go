package cluster

import (
	"fmt"

	"github.com/rxncluster/engine/reaction"
)

// ClusterMap is the ordered "cluster_<n>" -> members mapping spec.md §3
// describes. Keys is the insertion order of cluster ids, which is also
// their numeric order — cluster_0 always holds the first input record.
type ClusterMap struct {
	Keys     []string
	Clusters map[string][]*reaction.Record
}

func newClusterMap() *ClusterMap {
	return &ClusterMap{Clusters: make(map[string][]*reaction.Record)}
}

// newCluster starts a fresh cluster_<n> with member as its first (and
// representative) record, and returns the new key.
func (m *ClusterMap) newCluster(member *reaction.Record) string {
	key := fmt.Sprintf("cluster_%d", len(m.Keys))
	m.Keys = append(m.Keys, key)
	m.Clusters[key] = []*reaction.Record{member}
	return key
}

func (m *ClusterMap) append(key string, member *reaction.Record) {
	m.Clusters[key] = append(m.Clusters[key], member)
}

// Flatten returns every member across every cluster, in cluster order then
// member order — the multiset spec.md §8 item 1 requires to equal the
// original input.
func (m *ClusterMap) Flatten() []*reaction.Record {
	out := make([]*reaction.Record, 0)
	for _, key := range m.Keys {
		out = append(out, m.Clusters[key]...)
	}
	return out
}

// GroupMap is the ordered "group_<n>" -> members mapping GroupByInvariant
// produces (spec.md §4.5).
type GroupMap struct {
	Keys   []string
	Groups map[string][]*reaction.Record
}

func newGroupMap() *GroupMap {
	return &GroupMap{Groups: make(map[string][]*reaction.Record)}
}

func (m *GroupMap) newGroup(member *reaction.Record) string {
	key := fmt.Sprintf("group_%d", len(m.Keys))
	m.Keys = append(m.Keys, key)
	m.Groups[key] = []*reaction.Record{member}
	return key
}

func (m *GroupMap) append(key string, member *reaction.Record) {
	m.Groups[key] = append(m.Groups[key], member)
}
