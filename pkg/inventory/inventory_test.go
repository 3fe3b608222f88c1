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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestInventory(t *testing.T) *Inventory {
	t.Helper()
	inv, err := Open(filepath.Join(t.TempDir(), "inventory.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		inv.Close()
	})
	return inv
}

func TestInventoryAddPaths(t *testing.T) {
	inv := openTestInventory(t)

	require.NoError(t, inv.Add("bench1", []string{"Dev1/ao2", "Dev1/ao1"}))
	require.NoError(t, inv.Add("bench1", []string{"Dev1/ao3", "Dev1/ao1"}))

	paths, err := inv.Paths("bench1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Dev1/ao1", "Dev1/ao2", "Dev1/ao3"}, paths)
}

func TestInventoryPattern(t *testing.T) {
	inv := openTestInventory(t)

	require.NoError(t, inv.Add("bench1", []string{
		"Dev1/ao1", "Dev1/ao2", "Dev1/ao3",
		"Dev1/ai1", "Dev1/ai2",
	}))

	pat, err := inv.Pattern("bench1")
	require.NoError(t, err)
	assert.Equal(t, "Dev1/{ai1:2,ao1:3}", pat)
}

func TestInventoryGroups(t *testing.T) {
	inv := openTestInventory(t)

	require.NoError(t, inv.Add("bench2", []string{"Dev2/ai0"}))
	require.NoError(t, inv.Add("bench1", []string{"Dev1/ai0"}))

	groups, err := inv.Groups()
	require.NoError(t, err)
	assert.Equal(t, []string{"bench1", "bench2"}, groups)
}

func TestInventoryRemove(t *testing.T) {
	inv := openTestInventory(t)

	require.NoError(t, inv.Add("bench1", []string{"Dev1/ai0"}))
	require.NoError(t, inv.Remove("bench1"))

	_, err := inv.Paths("bench1")
	require.Error(t, err)
	assert.IsType(t, ErrGroupNotFound{}, err)

	err = inv.Remove("bench1")
	require.Error(t, err)
	assert.IsType(t, ErrGroupNotFound{}, err)
}
