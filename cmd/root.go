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

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-pattern/cmd/completion"
	"jinr.ru/greenlab/go-pattern/cmd/compress"
	configcmd "jinr.ru/greenlab/go-pattern/cmd/config"
	"jinr.ru/greenlab/go-pattern/cmd/expand"
	"jinr.ru/greenlab/go-pattern/cmd/inventory"
	"jinr.ru/greenlab/go-pattern/cmd/serve"
	pkgconfig "jinr.ru/greenlab/go-pattern/pkg/config"
	"jinr.ru/greenlab/go-pattern/pkg/log"
)

const (
	LogLevelOptionName = "log-level"
)

func NewRootCommand(out io.Writer) *cobra.Command {
	var logLevel string
	cfg := pkgconfig.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "go-pattern",
		Short: "Tool to compress and expand hardware resource name patterns",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			log.Init(cmd.ErrOrStderr(), cfg.LogLevel)
		},
	}
	cmd.SetOut(out)
	cmd.AddCommand(compress.NewCommand())
	cmd.AddCommand(expand.NewCommand())
	cmd.AddCommand(serve.NewCommand())
	cmd.AddCommand(inventory.NewCommand())
	cmd.AddCommand(configcmd.NewCommand())
	cmd.AddCommand(completion.NewCommand())
	cmd.PersistentFlags().StringVar(&logLevel, LogLevelOptionName, "", fmt.Sprintf("Log level. %s", log.HelpLevels))
	return cmd
}
