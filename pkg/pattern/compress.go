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

// Package pattern compresses lists of slash-delimited hardware resource
// names (e.g. Dev1/ao3) into a compact range notation and expands that
// notation back into explicit names. The notation groups names by common
// prefix and collapses contiguous numeric suffixes into min:max ranges:
//
//	Compress([]string{"Dev1/ao1", "Dev1/ao2", "Dev1/ao3"}) == "Dev1/ao1:3"
//
// All functions are pure and safe for concurrent use.
package pattern

import (
	"sort"
	"strconv"
	"strings"
)

// Compress returns the compact pattern notation for the given resource
// paths. Duplicates collapse and the result is deterministic regardless of
// input order: prefix groups are emitted in ascending lexicographic order,
// one comma-separated clause per group. When some group cannot be reduced
// to ranges or deeper prefix groups, the original paths are returned
// verbatim, comma-joined in input order.
//
// Paths must be uniform in shape: either every path is slash-delimited or
// every path is a bare token (no slash, split on its first digit). Mixing
// the two shapes returns ErrMixedShapes; an empty list returns
// ErrEmptyInput.
func Compress(paths []string) (string, error) {
	if len(paths) == 0 {
		return "", ErrEmptyInput{}
	}
	bare := isBare(paths[0])
	for _, path := range paths[1:] {
		if isBare(path) != bare {
			return "", ErrMixedShapes{First: paths[0], Offender: path}
		}
	}
	if compact, ok := compress(paths); ok {
		return compact, nil
	}
	return strings.Join(paths, ","), nil
}

// isBare reports whether a path is a bare token, i.e. carries no slash
// once the optional leading slash is stripped.
func isBare(path string) bool {
	return !strings.Contains(strings.TrimPrefix(path, "/"), "/")
}

// compress is one recursion level of the compressor. The boolean result is
// false when no compact form exists at this level; callers propagate it
// upward and only Compress itself falls back to plain enumeration, since
// only it holds the unmodified input strings.
func compress(paths []string) (string, bool) {
	groups := make(map[string]map[string]struct{})
	bare := isBare(paths[0])
	for _, path := range paths {
		path = strings.TrimPrefix(path, "/")
		var prefix, suffix string
		if i := strings.Index(path, "/"); i >= 0 {
			// Slash mode: split on the first slash only, the remainder is
			// grouped verbatim and compressed recursively below.
			prefix, suffix = path[:i], path[i+1:]
		} else {
			// Bare mode: split on the alpha/digit boundary.
			j := 0
			for j < len(path) && !isDigit(path[j]) {
				j++
			}
			prefix, suffix = path[:j], path[j:]
		}
		suffixes, ok := groups[prefix]
		if !ok {
			suffixes = make(map[string]struct{})
			groups[prefix] = suffixes
		}
		suffixes[suffix] = struct{}{}
	}

	prefixes := make([]string, 0, len(groups))
	for prefix := range groups {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)

	clauses := make([]string, 0, len(prefixes))
	for _, prefix := range prefixes {
		suffixes := sortedKeys(groups[prefix])
		clause, ok := emit(prefix, suffixes, bare)
		if !ok {
			return "", false
		}
		clauses = append(clauses, clause)
	}
	return strings.Join(clauses, ","), true
}

// emit renders the clause for one prefix group, recursing on the group's
// suffixes when there is more than one.
func emit(prefix string, suffixes []string, bare bool) (string, bool) {
	if len(suffixes) == 1 {
		suffix := suffixes[0]
		if suffix == "" {
			return prefix, true
		}
		if bare {
			return prefix + suffix, true
		}
		return prefix + "/" + suffix, true
	}
	if prefix == "" {
		return emitRange(suffixes)
	}
	sub, ok := compress(suffixes)
	if !ok {
		return "", false
	}
	// A multi-clause subpattern is ambiguous when concatenated after the
	// shared prefix, so it gets braced.
	if strings.Contains(sub, ",") {
		sub = "{" + sub + "}"
	}
	if bare {
		return prefix + sub, true
	}
	return prefix + "/" + sub, true
}

// emitRange renders a group whose shared prefix is empty. Such a group can
// only be compressed when every suffix is an integer and the deduplicated
// set is contiguous.
func emitRange(suffixes []string) (string, bool) {
	seen := make(map[int]struct{}, len(suffixes))
	values := make([]int, 0, len(suffixes))
	for _, suffix := range suffixes {
		v, err := strconv.Atoi(suffix)
		if err != nil {
			return "", false
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Ints(values)
	min, max := values[0], values[len(values)-1]
	if max-min+1 != len(values) {
		return "", false
	}
	if min == max {
		return strconv.Itoa(min), true
	}
	return strconv.Itoa(min) + ":" + strconv.Itoa(max), true
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
