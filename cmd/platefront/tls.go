package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/platefront/platefront/internal/config"
	"github.com/platefront/platefront/internal/tls"
)

var tlsCmd = &cobra.Command{
	Use:   "tls",
	Short: "TLS certificate management",
	Long:  "Manage the SSL/TLS certificate for the Platefront domain",
}

var tlsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show certificate status",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if !config.GetBool("server.tls_enabled") {
			fmt.Println("TLS is disabled. Enable it with: platefront config set server.tls_enabled true")
			os.Exit(0)
		}

		tlsCfg, err := tls.LoadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load TLS config: %v\n", err)
			os.Exit(1)
		}

		tlsManager, err := tls.NewManager(tlsCfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create TLS manager: %v\n", err)
			os.Exit(1)
		}

		status, err := tlsManager.GetCertificateStatus()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to get certificate status: %v\n", err)
			os.Exit(1)
		}

		if status == nil {
			fmt.Printf("No certificate found for %s yet.\n", tlsCfg.Domain)
			fmt.Println("Certificates are provisioned on the first HTTPS request.")
			os.Exit(0)
		}

		fmt.Printf("Domain:    %s\n", status.Domain)
		fmt.Printf("Issuer:    %s\n", status.Issuer)
		fmt.Printf("Expires:   %s\n", status.NotAfter.Format("2006-01-02"))
		fmt.Printf("Days left: %d\n", status.DaysUntilExpiry)
	},
}

func init() {
	tlsCmd.AddCommand(tlsStatusCmd)
	rootCmd.AddCommand(tlsCmd)
}
