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

package compress

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-pattern/pkg/pattern"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compress [path ...]",
		Short: "Compress resource paths into pattern notation",
		Long:  "Compress resource paths into pattern notation. Paths are taken from the arguments or, when none are given, one per line from stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					line := strings.TrimSpace(scanner.Text())
					if line != "" {
						paths = append(paths, line)
					}
				}
				if err := scanner.Err(); err != nil {
					return err
				}
			}
			pat, err := pattern.Compress(paths)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pat)
			return nil
		},
	}
	return cmd
}
