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

package serve

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-pattern/pkg/config"
	"jinr.ru/greenlab/go-pattern/pkg/inventory"
	"jinr.ru/greenlab/go-pattern/pkg/srv"
)

const (
	AddressOptionName = "address"
	PortOptionName    = "port"
	DBOptionName      = "db"
)

func NewCommand() *cobra.Command {
	var address, db string
	var port int
	cfg := config.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start pattern API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if address != "" {
				cfg.Address = address
			}
			if port != 0 {
				cfg.Port = port
			}
			if db != "" {
				cfg.DBPath = db
			}
			if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
				return err
			}
			inv, err := inventory.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer inv.Close()
			server, err := srv.NewApiServer(context.Background(), cfg, inv)
			if err != nil {
				return err
			}
			return server.Run()
		},
	}
	cmd.Flags().StringVar(&address, AddressOptionName, "", fmt.Sprintf("Address to bind. E.g. %s", config.DefaultAddress))
	cmd.Flags().IntVar(&port, PortOptionName, 0, fmt.Sprintf("Port number to bind. E.g. %d", config.DefaultPort))
	cmd.Flags().StringVar(&db, DBOptionName, "", "Path to the inventory database file")

	return cmd
}
