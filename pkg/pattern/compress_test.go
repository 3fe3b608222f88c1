/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressChannelGroups(t *testing.T) {
	paths := []string{
		"Dev1/ao1", "Dev1/ao2", "Dev1/ao3", "Dev1/ao4",
		"Dev1/ao5", "Dev1/ao6", "Dev1/ao7",
	}
	steps := []struct {
		add  []string
		want string
	}{
		{nil, "Dev1/ao1:7"},
		{[]string{"Dev0/ao1"}, "Dev0/ao1,Dev1/ao1:7"},
		{[]string{"Dev0/ao0"}, "Dev0/ao0:1,Dev1/ao1:7"},
		{[]string{"Dev1/ai1", "Dev1/ai2", "Dev1/ai3"}, "Dev0/ao0:1,Dev1/{ai1:3,ao1:7}"},
		{[]string{"Dev2/port0/line0"}, "Dev0/ao0:1,Dev1/{ai1:3,ao1:7},Dev2/port0/line0"},
		{[]string{"Dev2/port0/line1"}, "Dev0/ao0:1,Dev1/{ai1:3,ao1:7},Dev2/port0/line0:1"},
		{[]string{"Dev2/port1/line0", "Dev2/port1/line1"}, "Dev0/ao0:1,Dev1/{ai1:3,ao1:7},Dev2/{port0/line0:1,port1/line0:1}"},
	}
	for _, step := range steps {
		paths = append(paths, step.add...)
		got, err := Compress(paths)
		require.NoError(t, err)
		assert.Equal(t, step.want, got)
	}
}

func TestCompress(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		want  string
	}{
		{
			name:  "single path",
			paths: []string{"Dev1/ao0"},
			want:  "Dev1/ao0",
		},
		{
			name:  "leading slash stripped",
			paths: []string{"/Dev1/ao1", "/Dev1/ao2"},
			want:  "Dev1/ao1:2",
		},
		{
			name:  "trailing slash emits prefix only",
			paths: []string{"Dev1/"},
			want:  "Dev1",
		},
		{
			name:  "bare tokens",
			paths: []string{"ao1", "ao2", "ao3", "ao4"},
			want:  "ao1:4",
		},
		{
			name:  "bare token without digits",
			paths: []string{"Dev"},
			want:  "Dev",
		},
		{
			name:  "bare prefix groups",
			paths: []string{"ai0", "ai1", "ao0", "ao1"},
			want:  "ai0:1,ao0:1",
		},
		{
			name:  "duplicate integers within a range",
			paths: []string{"Dev1/ao1", "Dev1/ao01", "Dev1/ao2"},
			want:  "Dev1/ao1:2",
		},
		{
			name:  "degenerate range of one",
			paths: []string{"Dev1/ao3", "Dev1/ao3"},
			want:  "Dev1/ao3",
		},
		{
			name:  "deep single suffix",
			paths: []string{"Dev2/port0/line0"},
			want:  "Dev2/port0/line0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compress(tt.paths)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompressFallback(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
	}{
		{
			name:  "gap in numeric suffixes",
			paths: []string{"Dev1/ao1", "Dev1/ao3"},
		},
		{
			name:  "non-integer suffixes under one prefix",
			paths: []string{"Dev1/ao1a", "Dev1/ao2b"},
		},
		{
			name:  "originals kept verbatim including leading slash",
			paths: []string{"/Dev1/ao1", "/Dev1/ao4"},
		},
		{
			name:  "bare token overlapping its own prefix",
			paths: []string{"ao", "ao1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compress(tt.paths)
			require.NoError(t, err)
			// The fallback is the unmodified input, comma-joined in input
			// order.
			want := tt.paths[0]
			for _, p := range tt.paths[1:] {
				want += "," + p
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestCompressOrderIndependence(t *testing.T) {
	paths := []string{
		"Dev0/ao0", "Dev0/ao1", "Dev1/ai1", "Dev1/ai2", "Dev1/ai3",
		"Dev1/ao1", "Dev1/ao2", "Dev1/ao3",
	}
	want, err := Compress(paths)
	require.NoError(t, err)

	reversed := make([]string, len(paths))
	for i, p := range paths {
		reversed[len(paths)-1-i] = p
	}
	got, err := Compress(reversed)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	interleaved := []string{
		"Dev1/ao2", "Dev0/ao1", "Dev1/ai3", "Dev1/ao1",
		"Dev0/ao0", "Dev1/ai1", "Dev1/ao3", "Dev1/ai2",
	}
	got, err = Compress(interleaved)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCompressDuplicatesCollapse(t *testing.T) {
	unique := []string{"Dev1/ao1", "Dev1/ao2", "Dev1/ao3"}
	doubled := append(append([]string{}, unique...), unique...)

	want, err := Compress(unique)
	require.NoError(t, err)
	got, err := Compress(doubled)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCompressRejectsBadInput(t *testing.T) {
	_, err := Compress(nil)
	require.Error(t, err)
	assert.IsType(t, ErrEmptyInput{}, err)

	_, err = Compress([]string{"Dev1/ao1", "ao1"})
	require.Error(t, err)
	assert.IsType(t, ErrMixedShapes{}, err)

	_, err = Compress([]string{"ao1", "Dev1/ao1"})
	require.Error(t, err)
	assert.IsType(t, ErrMixedShapes{}, err)
}
