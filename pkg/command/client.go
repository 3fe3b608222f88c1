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

package command

import (
	"errors"
	"fmt"

	"github.com/imroc/req"

	"jinr.ru/greenlab/go-pattern/pkg/config"
	"jinr.ru/greenlab/go-pattern/pkg/srv"
)

type ApiClient struct {
	*config.Config
	ApiPrefix string
}

func NewApiClient(cfg *config.Config) *ApiClient {
	return &ApiClient{
		Config:    cfg,
		ApiPrefix: fmt.Sprintf("http://%s/api", cfg.ApiAddress()),
	}
}

func (c *ApiClient) inventoryUrl(group string) string {
	return fmt.Sprintf("%s/inventory/%s", c.ApiPrefix, group)
}

// Compress sends request to compress a list of resource paths
func (c *ApiClient) Compress(paths []string) (string, error) {
	body := &srv.PathList{Paths: paths}
	r, err := req.Post(fmt.Sprintf("%s/compress", c.ApiPrefix), req.BodyJSON(body))
	if err != nil {
		return "", err
	}
	if r.Response().StatusCode != 200 {
		return "", errors.New(r.Response().Status)
	}
	result := &srv.PatternBody{}
	err = r.ToJSON(result)
	if err != nil {
		return "", err
	}
	return result.Pattern, nil
}

// Expand sends request to expand a pattern into resource paths
func (c *ApiClient) Expand(pat string) ([]string, error) {
	body := &srv.PatternBody{Pattern: pat}
	r, err := req.Post(fmt.Sprintf("%s/expand", c.ApiPrefix), req.BodyJSON(body))
	if err != nil {
		return nil, err
	}
	if r.Response().StatusCode != 200 {
		return nil, errors.New(r.Response().Status)
	}
	result := &srv.PathList{}
	err = r.ToJSON(result)
	if err != nil {
		return nil, err
	}
	return result.Paths, nil
}

// InventoryAdd sends request to merge paths into an inventory group
func (c *ApiClient) InventoryAdd(group string, paths []string) error {
	body := &srv.PathList{Paths: paths}
	r, err := req.Put(c.inventoryUrl(group), req.BodyJSON(body))
	if err != nil {
		return err
	}
	if r.Response().StatusCode != 200 {
		return errors.New(r.Response().Status)
	}
	return nil
}

// InventoryGroups sends request to list all inventory groups
func (c *ApiClient) InventoryGroups() ([]string, error) {
	r, err := req.Get(fmt.Sprintf("%s/inventory", c.ApiPrefix))
	if err != nil {
		return nil, err
	}
	if r.Response().StatusCode != 200 {
		return nil, errors.New(r.Response().Status)
	}
	var groups []string
	err = r.ToJSON(&groups)
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// InventoryPaths sends request to get the paths of an inventory group
func (c *ApiClient) InventoryPaths(group string) ([]string, error) {
	r, err := req.Get(c.inventoryUrl(group))
	if err != nil {
		return nil, err
	}
	if r.Response().StatusCode != 200 {
		return nil, errors.New(r.Response().Status)
	}
	result := &srv.PathList{}
	err = r.ToJSON(result)
	if err != nil {
		return nil, err
	}
	return result.Paths, nil
}

// InventoryPattern sends request to get the compressed summary of an inventory group
func (c *ApiClient) InventoryPattern(group string) (string, error) {
	r, err := req.Get(fmt.Sprintf("%s/pattern", c.inventoryUrl(group)))
	if err != nil {
		return "", err
	}
	if r.Response().StatusCode != 200 {
		return "", errors.New(r.Response().Status)
	}
	result := &srv.PatternBody{}
	err = r.ToJSON(result)
	if err != nil {
		return "", err
	}
	return result.Pattern, nil
}

// InventoryRemove sends request to delete an inventory group
func (c *ApiClient) InventoryRemove(group string) error {
	r, err := req.Delete(c.inventoryUrl(group))
	if err != nil {
		return err
	}
	if r.Response().StatusCode != 200 {
		return errors.New(r.Response().Status)
	}
	return nil
}
