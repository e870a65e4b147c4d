package kmeans

import (
	"encoding/binary"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/kmeans/distance"
)

// Cluster is an ordered set of indices into the dataset passed to New.
type Cluster []int

// KMeans partitions a fixed dataset into k clusters.
//
// An instance owns its dataset, centroids, assignment and bounds exclusively
// and must not be invoked concurrently. The dataset is referenced, not
// copied, and must not be mutated during a run.
type KMeans struct {
	points [][]float64
	k      int
	dim    int

	distance      distance.Func
	rand          Rand
	maxIterations int
	tolerance     float64
	logger        *Logger

	centroids  [][]float64
	assignment []int

	// upper[i] is the exact distance from point i to its assigned centroid
	// as of the previous pass; a point is re-examined only when its centroid
	// moved strictly closer. lower[i] is the distance an alternative
	// centroid must beat to take the point.
	upper []float64
	lower []float64

	// pointNeighbors[i] records the cluster ids that recently came closer to
	// point i than its own centroid. clusterNeighbors[c] is rebuilt every
	// iteration as the union of the records of the points c owns.
	pointNeighbors   [][]int
	clusterNeighbors [][]int

	iterations int

	// scratch buffers reused across iterations
	sums   [][]float64
	counts []int
	marks  [][]bool
}

// New validates the dataset and configuration and returns a ready engine.
//
// Validation is fail-fast: ErrInvalidK, ErrEmptyDataset, a
// *ErrDimensionMismatch and ErrInsufficientDistinctPoints are all detected
// here, and Run performs no further checks.
func New(dataset [][]float64, k int, optFns ...Option) (*KMeans, error) {
	o := applyOptions(optFns)

	if k <= 0 {
		return nil, ErrInvalidK
	}
	if len(dataset) == 0 {
		return nil, ErrEmptyDataset
	}

	dim := len(dataset[0])
	for i, p := range dataset {
		if len(p) != dim {
			return nil, &ErrDimensionMismatch{Index: i, Expected: dim, Actual: len(p)}
		}
	}
	if distinctPoints(dataset) < k {
		return nil, ErrInsufficientDistinctPoints
	}

	return &KMeans{
		points:        dataset,
		k:             k,
		dim:           dim,
		distance:      o.distance,
		rand:          o.rand,
		maxIterations: o.maxIterations,
		tolerance:     o.tolerance,
		logger:        o.logger.WithK(k).WithDimension(dim),
	}, nil
}

// Run executes the clustering loop until a full pass produces neither a
// centroid movement nor a reassignment, or until the iteration cap, and
// returns the resulting partition.
//
// Clusters hold point indices in ascending order and appear in order of
// first occurrence: cluster ids that end up empty are omitted, so the
// result may contain fewer than k clusters. Run may be called again; every
// call reseeds and starts from scratch.
func (km *KMeans) Run() []Cluster {
	km.seedCentroids()
	km.initBounds()

	converged := false
	for km.iterations = 1; km.iterations <= km.maxIterations; km.iterations++ {
		km.buildNeighborGraph()
		moved := km.recomputeCentroids()
		reassigned := km.reassign()

		km.logger.LogIteration(km.iterations, moved, reassigned)

		if moved == 0 && reassigned == 0 {
			converged = true
			break
		}
	}
	if !converged {
		km.iterations = km.maxIterations
	}

	clusters := km.extract()
	km.logger.LogRun(km.iterations, len(clusters), converged)

	return clusters
}

// Centroids returns a copy of the centroids of the most recent run, one per
// cluster id 0..k-1. It returns nil before the first run.
func (km *KMeans) Centroids() [][]float64 {
	if km.centroids == nil {
		return nil
	}
	out := make([][]float64, len(km.centroids))
	for c, centroid := range km.centroids {
		out[c] = make([]float64, len(centroid))
		copy(out[c], centroid)
	}
	return out
}

// Iterations returns the number of iterations the most recent run executed.
func (km *KMeans) Iterations() int {
	return km.iterations
}

// distinctPoints counts distinct points by exact coordinate equality.
// Seed sampling can only terminate if at least k distinct points exist.
func distinctPoints(dataset [][]float64) int {
	seen := make(map[string]struct{}, len(dataset))
	buf := make([]byte, 8*len(dataset[0]))
	for _, p := range dataset {
		for i, v := range p {
			binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
		}
		seen[string(buf)] = struct{}{}
	}
	return len(seen)
}

// seedCentroids draws k distinct dataset points as the initial centroids.
func (km *KMeans) seedCentroids() {
	km.centroids = make([][]float64, km.k)
	for c := range km.centroids {
		km.centroids[c] = km.sampleDistinct()
	}
}

// sampleDistinct draws a random dataset point that does not coincide with
// any current centroid. Rejection sampling terminates because New verified
// the dataset holds at least k distinct points. nil centroid slots are
// ignored, so a centroid being replaced is excluded from the comparison.
func (km *KMeans) sampleDistinct() []float64 {
	for {
		p := km.points[km.rand.Intn(len(km.points))]

		taken := false
		for _, c := range km.centroids {
			if c != nil && floats.Equal(c, p) {
				taken = true
				break
			}
		}
		if taken {
			continue
		}

		out := make([]float64, km.dim)
		copy(out, p)

		return out
	}
}

// initBounds assigns every point to its nearest centroid and seeds the
// distance bounds: upper is the distance to the assigned centroid, lower the
// distance to the best alternative. Ties go to the lowest cluster id. With
// k == 1 there is no alternative; the lower bound stays +Inf and the
// reassignment pass can never move the point.
func (km *KMeans) initBounds() {
	n := len(km.points)
	km.assignment = make([]int, n)
	km.upper = make([]float64, n)
	km.lower = make([]float64, n)
	km.pointNeighbors = make([][]int, n)
	km.clusterNeighbors = make([][]int, km.k)

	km.sums = make([][]float64, km.k)
	for c := range km.sums {
		km.sums[c] = make([]float64, km.dim)
	}
	km.counts = make([]int, km.k)
	km.marks = make([][]bool, km.k)
	for c := range km.marks {
		km.marks[c] = make([]bool, km.k)
	}

	for i, p := range km.points {
		best, runnerUp := 0, -1
		bestDist, runnerUpDist := km.distance(p, km.centroids[0]), math.Inf(1)

		for c := 1; c < km.k; c++ {
			d := km.distance(p, km.centroids[c])
			switch {
			case d < bestDist:
				runnerUp, runnerUpDist = best, bestDist
				best, bestDist = c, d
			case d < runnerUpDist:
				runnerUp, runnerUpDist = c, d
			}
		}

		km.assignment[i] = best
		km.upper[i] = bestDist
		km.lower[i] = runnerUpDist
		if runnerUp >= 0 {
			km.pointNeighbors[i] = []int{runnerUp}
		}
	}
}

// buildNeighborGraph recomputes, for each cluster, the set of other clusters
// worth examining during the reassignment pass: the union of the neighbor
// records of the points the cluster currently owns, in ascending id order.
//
// The very first pass has no per-point records to draw from, so every
// cluster treats all other clusters as neighbors. Pruning only kicks in once
// the first pass has recorded which clusters actually compete for points.
func (km *KMeans) buildNeighborGraph() {
	if km.iterations == 1 {
		for c := range km.clusterNeighbors {
			neighbors := make([]int, 0, km.k-1)
			for m := 0; m < km.k; m++ {
				if m != c {
					neighbors = append(neighbors, m)
				}
			}
			km.clusterNeighbors[c] = neighbors
		}

		return
	}

	for c := range km.marks {
		for m := range km.marks[c] {
			km.marks[c][m] = false
		}
	}
	for i, c := range km.assignment {
		for _, m := range km.pointNeighbors[i] {
			km.marks[c][m] = true
		}
	}

	for c := range km.clusterNeighbors {
		neighbors := km.clusterNeighbors[c][:0]
		for m := 0; m < km.k; m++ {
			if m != c && km.marks[c][m] {
				neighbors = append(neighbors, m)
			}
		}
		km.clusterNeighbors[c] = neighbors
	}
}

// recomputeCentroids replaces every centroid with the coordinate-wise mean
// of its assigned points and returns the number of centroids that moved. A
// cluster that holds zero points is reseeded with a fresh random point and
// always counts as moved.
func (km *KMeans) recomputeCentroids() int {
	for c := range km.sums {
		for j := range km.sums[c] {
			km.sums[c][j] = 0
		}
		km.counts[c] = 0
	}
	for i, c := range km.assignment {
		floats.Add(km.sums[c], km.points[i])
		km.counts[c]++
	}

	moved := 0
	for c := range km.centroids {
		if km.counts[c] == 0 {
			km.centroids[c] = nil
			km.centroids[c] = km.sampleDistinct()
			moved++

			continue
		}

		mean := km.sums[c]
		floats.Scale(1/float64(km.counts[c]), mean)
		if !km.centroidStable(km.centroids[c], mean) {
			moved++
		}
		copy(km.centroids[c], mean)
	}

	return moved
}

// centroidStable reports whether a recomputed centroid counts as unmoved.
// A zero tolerance demands exact coordinate equality.
func (km *KMeans) centroidStable(old, recomputed []float64) bool {
	if km.tolerance == 0 {
		return floats.Equal(old, recomputed)
	}

	return floats.EqualApprox(old, recomputed, km.tolerance)
}

// reassign runs the gated reassignment pass and returns the number of points
// that switched clusters.
//
// A point is examined only if its assigned centroid moved strictly closer
// since the previous pass. Candidates come from the owning cluster's
// neighbor set, scanned in ascending id order; the first candidate to beat
// the point's lower bound wins the point. This is deliberate: taking the
// first qualifying neighbor rather than the globally nearest one is part of
// the algorithm's contract.
//
// While a point is examined, its neighbor record is rebuilt from every
// scanned candidate that came closer than the point's own centroid, plus the
// abandoned cluster when the point switches. A pass that finds nothing
// competitive leaves the previous record in place.
func (km *KMeans) reassign() int {
	reassigned := 0

	for i, p := range km.points {
		c := km.assignment[i]
		dNew := km.distance(p, km.centroids[c])
		examine := dNew < km.upper[i]
		km.upper[i] = dNew
		if !examine {
			continue
		}

		var record []int
		for _, m := range km.clusterNeighbors[c] {
			d := km.distance(p, km.centroids[m])
			if d < km.upper[i] {
				record = append(record, m)
			}
			if d < km.lower[i] {
				km.assignment[i] = m
				km.lower[i] = d
				record = append(record, c)
				reassigned++

				break
			}
		}
		if len(record) > 0 {
			km.pointNeighbors[i] = record
		}
	}

	return reassigned
}

// extract converts the final assignment into the output partition, keyed by
// first-seen cluster id.
func (km *KMeans) extract() []Cluster {
	order := make([]int, km.k)
	for c := range order {
		order[c] = -1
	}

	clusters := make([]Cluster, 0, km.k)
	for i, c := range km.assignment {
		if order[c] < 0 {
			order[c] = len(clusters)
			clusters = append(clusters, Cluster{})
		}
		clusters[order[c]] = append(clusters[order[c]], i)
	}

	return clusters
}
