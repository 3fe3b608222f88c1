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
	"fmt"
)

// ErrEmptyInput returned when Compress is called with no paths
type ErrEmptyInput struct{}

func (e ErrEmptyInput) Error() string {
	return "path list is empty"
}

// ErrMixedShapes returned when one call mixes slash-delimited paths with bare tokens
type ErrMixedShapes struct {
	First    string
	Offender string
}

func (e ErrMixedShapes) Error() string {
	return fmt.Sprintf("mixed path shapes in one call: %q and %q", e.First, e.Offender)
}

// ErrBadPattern returned when Expand can not parse the pattern notation
type ErrBadPattern struct {
	Pattern string
	Reason  string
}

func (e ErrBadPattern) Error() string {
	return fmt.Sprintf("bad pattern %q: %s", e.Pattern, e.Reason)
}
