package exposure

import "sort"

// DistributionEntry records how many photos were taken at a single
// snapped shutter speed.
type DistributionEntry struct {
	Code  int64  `json:"code"`
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type DistributionList []*DistributionEntry
type DistributionMap map[int64]*DistributionEntry

func (l DistributionList) ToMap() DistributionMap {
	m := DistributionMap{}
	for _, d := range l {
		m[d.Code] = copyDistributionEntry(d)
	}
	return m
}

func (m DistributionMap) ToList() DistributionList {
	d := DistributionList{}
	for _, e := range m {
		d = append(d, e)
	}
	sort.Sort(d)
	return d
}

func copyDistributionEntry(d *DistributionEntry) *DistributionEntry {
	return &DistributionEntry{
		Code:  d.Code,
		Label: d.Label,
		Count: d.Count,
	}
}

// MergeDistributions combines distributions, summing the counts of
// entries with the same code.
func MergeDistributions(dists ...DistributionList) DistributionList {
	merged := DistributionMap{}
	for _, dist := range dists {
		for _, entry := range dist {
			if target, ok := merged[entry.Code]; ok {
				target.Count = target.Count + entry.Count
			} else {
				merged[entry.Code] = copyDistributionEntry(entry)
			}
		}
	}
	return merged.ToList()
}

func (l DistributionList) Merge(dists ...DistributionList) DistributionList {
	return MergeDistributions(append(dists, l)...)
}

// Sorted by count, most frequent first; codes break ties so merged
// output is stable.
func (a DistributionList) Len() int      { return len(a) }
func (a DistributionList) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a DistributionList) Less(i, j int) bool {
	if a[i].Count != a[j].Count {
		return a[i].Count > a[j].Count
	}
	return a[i].Code < a[j].Code
}
