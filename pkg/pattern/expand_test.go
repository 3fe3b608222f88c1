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

func TestExpand(t *testing.T) {
	tests := []struct {
		name string
		pat  string
		want []string
	}{
		{
			name: "literal path",
			pat:  "Dev2/port0/line0",
			want: []string{"Dev2/port0/line0"},
		},
		{
			name: "range",
			pat:  "Dev1/ao1:4",
			want: []string{"Dev1/ao1", "Dev1/ao2", "Dev1/ao3", "Dev1/ao4"},
		},
		{
			name: "bare range",
			pat:  "ao1:3",
			want: []string{"ao1", "ao2", "ao3"},
		},
		{
			name: "range across digit widths",
			pat:  "Dev1/ao8:11",
			want: []string{"Dev1/ao8", "Dev1/ao9", "Dev1/ao10", "Dev1/ao11"},
		},
		{
			name: "clauses",
			pat:  "Dev0/ao0:1,Dev1/ao1:3",
			want: []string{"Dev0/ao0", "Dev0/ao1", "Dev1/ao1", "Dev1/ao2", "Dev1/ao3"},
		},
		{
			name: "braced subpattern",
			pat:  "Dev1/{ai1:3,ao1:2}",
			want: []string{"Dev1/ai1", "Dev1/ai2", "Dev1/ai3", "Dev1/ao1", "Dev1/ao2"},
		},
		{
			name: "nested braces",
			pat:  "Dev2/{port0/line0:1,port1/line0:1}",
			want: []string{"Dev2/port0/line0", "Dev2/port0/line1", "Dev2/port1/line0", "Dev2/port1/line1"},
		},
		{
			name: "single integer clause",
			pat:  "3",
			want: []string{"3"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.pat)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandRejectsBadPatterns(t *testing.T) {
	tests := []struct {
		name string
		pat  string
	}{
		{"empty pattern", ""},
		{"empty clause", "Dev1/ao1,,Dev2/ao1"},
		{"unbalanced open brace", "Dev1/{ao1:3"},
		{"unbalanced close brace", "Dev1/ao1:3}"},
		{"text after closing brace", "Dev1/{ao1:3}x"},
		{"range start not an integer", "Dev1/ao:3"},
		{"range end not an integer", "Dev1/ao1:x"},
		{"descending range", "Dev1/ao5:3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Expand(tt.pat)
			require.Error(t, err)
			assert.IsType(t, ErrBadPattern{}, err)
		})
	}
}

func TestExpandRoundTrip(t *testing.T) {
	paths := []string{
		"Dev0/ao0", "Dev0/ao1",
		"Dev1/ai1", "Dev1/ai2", "Dev1/ai3",
		"Dev1/ao1", "Dev1/ao2", "Dev1/ao3",
		"Dev2/port0/line0", "Dev2/port0/line1",
		"Dev2/port1/line0", "Dev2/port1/line1",
	}
	pat, err := Compress(paths)
	require.NoError(t, err)
	got, err := Expand(pat)
	require.NoError(t, err)
	assert.ElementsMatch(t, paths, got)
}
