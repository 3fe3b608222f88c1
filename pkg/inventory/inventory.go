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

// Package inventory persists named groups of hardware resource paths and
// serves their compressed pattern summaries.
package inventory

import (
	"fmt"
	"sort"
	"strings"

	"go.etcd.io/bbolt"
	"sigs.k8s.io/yaml"

	"jinr.ru/greenlab/go-pattern/pkg/log"
	"jinr.ru/greenlab/go-pattern/pkg/pattern"
)

const (
	BucketPrefix = "inventory_"
	PathsKey     = "paths"
)

// Record is the yaml document stored per group.
type Record struct {
	Paths []string `json:"paths"`
}

type Inventory struct {
	db *bbolt.DB
}

func Open(path string) (*Inventory, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	return &Inventory{db: db}, nil
}

func (inv *Inventory) Close() error {
	return inv.db.Close()
}

func BucketName(group string) string {
	return fmt.Sprintf("%s%s", BucketPrefix, group)
}

// Add merges paths into the named group, creating it if needed. Paths are
// kept as a sorted set.
func (inv *Inventory) Add(group string, paths []string) error {
	log.Debug("Adding %d paths to group: %s", len(paths), group)
	return inv.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(BucketName(group)))
		if err != nil {
			return err
		}
		record := &Record{}
		if data := b.Get([]byte(PathsKey)); data != nil {
			if err := yaml.Unmarshal(data, record); err != nil {
				return err
			}
		}
		record.Paths = mergePaths(record.Paths, paths)
		data, err := yaml.Marshal(record)
		if err != nil {
			return err
		}
		return b.Put([]byte(PathsKey), data)
	})
}

// Paths returns the sorted paths of the named group.
func (inv *Inventory) Paths(group string) ([]string, error) {
	log.Debug("Getting paths of group: %s", group)
	record := &Record{}
	if err := inv.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BucketName(group)))
		if b == nil {
			return ErrGroupNotFound{Group: group}
		}
		data := b.Get([]byte(PathsKey))
		if data == nil {
			return ErrGroupNotFound{Group: group}
		}
		return yaml.Unmarshal(data, record)
	}); err != nil {
		return nil, err
	}
	return record.Paths, nil
}

// Pattern returns the compressed pattern summary of the named group.
func (inv *Inventory) Pattern(group string) (string, error) {
	paths, err := inv.Paths(group)
	if err != nil {
		return "", err
	}
	return pattern.Compress(paths)
}

// Groups returns the names of all stored groups, sorted.
func (inv *Inventory) Groups() ([]string, error) {
	var groups []string
	if err := inv.db.View(func(tx *bbolt.Tx) error {
		return tx.ForEach(func(name []byte, _ *bbolt.Bucket) error {
			groups = append(groups, strings.TrimPrefix(string(name), BucketPrefix))
			return nil
		})
	}); err != nil {
		return nil, err
	}
	sort.Strings(groups)
	return groups, nil
}

// Remove deletes the named group.
func (inv *Inventory) Remove(group string) error {
	log.Debug("Removing group: %s", group)
	return inv.db.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(BucketName(group))) == nil {
			return ErrGroupNotFound{Group: group}
		}
		return tx.DeleteBucket([]byte(BucketName(group)))
	})
}

func mergePaths(existing, added []string) []string {
	set := make(map[string]struct{}, len(existing)+len(added))
	for _, p := range existing {
		set[p] = struct{}{}
	}
	for _, p := range added {
		set[p] = struct{}{}
	}
	merged := make([]string, 0, len(set))
	for p := range set {
		merged = append(merged, p)
	}
	sort.Strings(merged)
	return merged
}
