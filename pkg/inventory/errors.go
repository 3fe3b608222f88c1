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

package inventory

import (
	"fmt"
)

// ErrGroupNotFound returned when the requested group does not exist in the store
type ErrGroupNotFound struct {
	Group string
}

func (e ErrGroupNotFound) Error() string {
	return fmt.Sprintf("Group not found: %s", e.Group)
}
