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
	"strconv"
	"strings"
)

// Expand is the inverse of Compress: it parses the compact pattern
// notation and returns the explicit resource paths it denotes. Clauses are
// expanded left to right, so for patterns produced by Compress the result
// is sorted within each prefix group. Malformed notation returns
// ErrBadPattern.
func Expand(pat string) ([]string, error) {
	if pat == "" {
		return nil, ErrBadPattern{Pattern: pat, Reason: "empty pattern"}
	}
	return expand(pat, pat)
}

func expand(pat, full string) ([]string, error) {
	clauses, err := splitClauses(pat, full)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, clause := range clauses {
		expanded, err := expandClause(clause, full)
		if err != nil {
			return nil, err
		}
		paths = append(paths, expanded...)
	}
	return paths, nil
}

// splitClauses splits a pattern on commas that are not enclosed in braces.
func splitClauses(pat, full string) ([]string, error) {
	var clauses []string
	depth, start := 0, 0
	for i := 0; i < len(pat); i++ {
		switch pat[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return nil, ErrBadPattern{Pattern: full, Reason: "unbalanced braces"}
			}
		case ',':
			if depth == 0 {
				clauses = append(clauses, pat[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, ErrBadPattern{Pattern: full, Reason: "unbalanced braces"}
	}
	return append(clauses, pat[start:]), nil
}

func expandClause(clause, full string) ([]string, error) {
	if clause == "" {
		return nil, ErrBadPattern{Pattern: full, Reason: "empty clause"}
	}
	if i := strings.IndexByte(clause, '{'); i >= 0 {
		// Braced subpattern: everything before the brace is the shared
		// prefix, slash included when the clause is slash-delimited.
		if clause[len(clause)-1] != '}' {
			return nil, ErrBadPattern{Pattern: full, Reason: "text after closing brace"}
		}
		sub, err := expand(clause[i+1:len(clause)-1], full)
		if err != nil {
			return nil, err
		}
		prefix := clause[:i]
		paths := make([]string, len(sub))
		for k, s := range sub {
			paths[k] = prefix + s
		}
		return paths, nil
	}
	if i := strings.IndexByte(clause, ':'); i >= 0 {
		return expandRange(clause, i, full)
	}
	return []string{clause}, nil
}

// expandRange expands a min:max clause, e.g. Dev1/ao1:7. The range applies
// to the run of trailing digits on the left-hand side.
func expandRange(clause string, colon int, full string) ([]string, error) {
	left, right := clause[:colon], clause[colon+1:]
	end, err := strconv.Atoi(right)
	if err != nil {
		return nil, ErrBadPattern{Pattern: full, Reason: "range end is not an integer"}
	}
	j := len(left)
	for j > 0 && isDigit(left[j-1]) {
		j--
	}
	if j == len(left) {
		return nil, ErrBadPattern{Pattern: full, Reason: "range start is not an integer"}
	}
	start, err := strconv.Atoi(left[j:])
	if err != nil {
		return nil, ErrBadPattern{Pattern: full, Reason: "range start is not an integer"}
	}
	if start > end {
		return nil, ErrBadPattern{Pattern: full, Reason: "descending range"}
	}
	head := left[:j]
	paths := make([]string, 0, end-start+1)
	for n := start; n <= end; n++ {
		paths = append(paths, head+strconv.Itoa(n))
	}
	return paths, nil
}
