package iterutil_test

import (
	"iter"
	"slices"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/karupanerura/catalog-index/internal/iterutil"
)

func TestUnion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		iters [][]int
		want  []int
	}{
		{
			name:  "disjoint",
			iters: [][]int{{1, 2}, {3, 4}},
			want:  []int{1, 2, 3, 4},
		},
		{
			name:  "overlapping keeps first occurrence",
			iters: [][]int{{1, 2, 3}, {2, 3, 4}},
			want:  []int{1, 2, 3, 4},
		},
		{
			name:  "one empty",
			iters: [][]int{{}, {5}},
			want:  []int{5},
		},
		{
			name:  "all empty",
			iters: [][]int{{}, {}},
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			seqs := make([]iter.Seq[int], len(tt.iters))
			for i, s := range tt.iters {
				seqs[i] = slices.Values(s)
			}
			got := slices.Collect(iterutil.Union(seqs...))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("unexpected union (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMap(t *testing.T) {
	t.Parallel()

	got := slices.Collect(iterutil.Map(slices.Values([]int{1, 2, 3}), strconv.Itoa))
	want := []string{"1", "2", "3"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected map result (-want +got):\n%s", diff)
	}
}

func TestMap_StopEarly(t *testing.T) {
	t.Parallel()

	var got []string
	for v := range iterutil.Map(slices.Values([]int{1, 2, 3}), strconv.Itoa) {
		got = append(got, v)
		break
	}
	if diff := cmp.Diff([]string{"1"}, got); diff != "" {
		t.Errorf("unexpected partial result (-want +got):\n%s", diff)
	}
}
