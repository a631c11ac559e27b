package exec

import (
	"io"
	"math/bits"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/oddflow/oddflow/plan"
)

// Report renders a human-readable diagnostic summary to w: block and
// component counts, task and worker counts, and a histogram of components
// by power-of-two size bucket (§6).
func (e *Executor) Report(w io.Writer) {
	components := e.plan.Components()

	blockCount := 0
	for _, c := range components {
		blockCount += c.Size()
	}

	summary := table.NewWriter()
	summary.SetOutputMirror(w)
	summary.SetTitle("Executor Summary")
	summary.AppendHeader(table.Row{"Metric", "Count"})
	summary.AppendRow(table.Row{"Components", len(components)})
	summary.AppendRow(table.Row{"Computable blocks", blockCount})
	summary.AppendRow(table.Row{"Steppables", len(e.plan.Steppables)})
	summary.AppendRow(table.Row{"Tasks", len(e.plan.Tasks)})
	summary.AppendRow(table.Row{"Worker threads", len(e.state)})
	summary.Render()

	histogram := table.NewWriter()
	histogram.SetOutputMirror(w)
	histogram.SetTitle("Component Size Histogram")
	histogram.AppendHeader(table.Row{"Size bucket", "Components"})
	for _, bucket := range sizeBuckets(components) {
		histogram.AppendRow(table.Row{bucket.label, bucket.count})
	}
	histogram.Render()
}

type sizeBucket struct {
	label string
	count int
}

// sizeBuckets groups components by the power-of-two bucket their size
// falls into (1, 2, 3-4, 5-8, ...), the same shape as the original's
// component-size histogram in Simulator::Report.
func sizeBuckets(components []*plan.Component) []sizeBucket {
	counts := make(map[int]int)
	maxBucket := 0
	for _, c := range components {
		size := c.Size()
		if size < 1 {
			size = 1
		}
		bucket := bits.Len(uint(size - 1))
		counts[bucket]++
		if bucket > maxBucket {
			maxBucket = bucket
		}
	}

	buckets := make([]sizeBucket, 0, maxBucket+1)
	for b := 0; b <= maxBucket; b++ {
		if counts[b] == 0 {
			continue
		}
		buckets = append(buckets, sizeBucket{label: bucketLabel(b), count: counts[b]})
	}
	return buckets
}

// bucketLabel renders the (2^(bucket-1), 2^bucket] range bits.Len groups
// sizes into, e.g. bucket 0 is just size 1, bucket 3 is sizes 5-8.
func bucketLabel(bucket int) string {
	if bucket == 0 {
		return "1"
	}
	lo := (1 << (bucket - 1)) + 1
	hi := 1 << bucket
	return strconv.Itoa(lo) + "-" + strconv.Itoa(hi)
}
