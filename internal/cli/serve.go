package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/twisty/internal/kociemba/tables"
	"github.com/ehrlich-b/twisty/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP solve server",
	Long:  `Serve starts the JSON/NDJSON HTTP front door described by the web package: POST /solve and GET /healthz.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		log := logger(cfg)

		host, _ := cmd.Flags().GetString("host")
		port, _ := cmd.Flags().GetString("port")

		tbl, err := tables.Open(cfg.TableDir, tables.WithLogger(log))
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error opening tables:", err)
			os.Exit(1)
		}
		defer tbl.Close()

		server := web.NewServer(tbl, cfg.MaxLen, log)
		addr := host + ":" + port
		log.Info().Str("addr", addr).Msg("starting server")
		if err := server.Start(addr); err != nil {
			fmt.Fprintln(os.Stderr, "Error starting server:", err)
			os.Exit(1)
		}
	},
}

func init() {
	serveCmd.Flags().StringP("port", "p", "8080", "Port to run the server on")
	serveCmd.Flags().StringP("host", "H", "localhost", "Host to bind the server to")
}
