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

	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-pattern/pkg/command"
	"jinr.ru/greenlab/go-pattern/pkg/config"
)

func NewListCommand() *cobra.Command {
	cfg := config.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List inventory groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient := command.NewApiClient(cfg)
			groups, err := apiClient.InventoryGroups()
			if err != nil {
				return err
			}
			for _, group := range groups {
				fmt.Fprintln(cmd.OutOrStdout(), group)
			}
			return nil
		},
	}
	return cmd
}
