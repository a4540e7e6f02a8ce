package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edgeplane/edgeplane/internal/dev"
)

var devCmd = &cobra.Command{
	Use:   "dev",
	Short: "Start a local server for developing your script",
	Long: `Start a local server that forwards requests to your script's preview
on the upstream host. With no --host the tutorial preview host is used.`,
	Example: `  # Serve on 127.0.0.1:8787 against the tutorial host
  edgeplane dev

  # Forward to a zone of your own on another port
  edgeplane dev --host my-worker.example.com --port 3000`,
	Run: runDev,
}

var (
	devHost             string
	devIP               string
	devPort             int
	devLocalProtocol    string
	devUpstreamProtocol string
)

func init() {
	rootCmd.AddCommand(devCmd)

	devCmd.Flags().StringVar(&devHost, "host", "", "Host to forward requests to, defaults to the tutorial preview host")
	devCmd.Flags().StringVarP(&devIP, "ip", "i", "", "IP to listen on. Defaults to 127.0.0.1")
	devCmd.Flags().IntVarP(&devPort, "port", "p", 0, "Port to listen on. Defaults to 8787")
	devCmd.Flags().StringVar(&devLocalProtocol, "local-protocol", "", "Protocol the local server listens on (http or https, default http)")
	devCmd.Flags().StringVar(&devUpstreamProtocol, "upstream-protocol", "", "Protocol requests are sent to the host with (http or https, default https)")
}

func runDev(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	host := devHost
	if host == "" {
		host = cfg.Dev.Host
	}
	ip := devIP
	if ip == "" {
		ip = cfg.Dev.IP
	}
	port := devPort
	if port == 0 {
		port = cfg.Dev.Port
	}
	localRaw := devLocalProtocol
	if localRaw == "" {
		localRaw = cfg.Dev.LocalProtocol
	}
	upstreamRaw := devUpstreamProtocol
	if upstreamRaw == "" {
		upstreamRaw = cfg.Dev.UpstreamProtocol
	}

	local, err := dev.ParseProtocol(localRaw, dev.ProtocolHTTP)
	if err != nil {
		fatal(err)
	}
	upstream, err := dev.ParseProtocol(upstreamRaw, dev.ProtocolHTTPS)
	if err != nil {
		fatal(err)
	}

	serverConfig, err := dev.NewServerConfig(host, ip, port, upstream)
	if err != nil {
		fatal(err)
	}
	defer serverConfig.Close()

	fmt.Printf("Listening on %s://%s\n", local, serverConfig.ListeningAddress())
	fmt.Printf("Forwarding requests to %s\n", serverConfig.Host)

	if err := dev.NewProxy(serverConfig, verbose).Serve(); err != nil {
		fatal(err)
	}
}
