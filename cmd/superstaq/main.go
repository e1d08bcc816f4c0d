package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	superstaq "github.com/burgholzer/client-superstaq"
)

var (
	apiKey     string
	remoteHost string
)

func newService() (*superstaq.Service, error) {
	var options []superstaq.DialOption
	if apiKey != "" {
		options = append(options, superstaq.WithAPIKey(apiKey))
	}
	if remoteHost != "" {
		options = append(options, superstaq.WithRemoteHost(remoteHost))
	}
	return superstaq.NewService(options...)
}

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using system environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := &cobra.Command{
		Use:           "superstaq",
		Short:         "Talk to the SuperstaQ quantum computing API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&apiKey, "api-key", "", "SuperstaQ API key (default $"+superstaq.EnvAPIKey+")")
	root.PersistentFlags().StringVar(&remoteHost, "remote-host", "", "API endpoint URL (default $"+superstaq.EnvRemoteHost+" or "+superstaq.APIURL+")")

	root.AddCommand(&cobra.Command{
		Use:   "balance",
		Short: "Show the remaining credit balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService()
			if err != nil {
				return err
			}
			balance, err := service.GetBalance(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(balance)
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "job <job-id>",
		Short: "Show the status of a submitted job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService()
			if err != nil {
				return err
			}
			job, err := service.GetJob(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s\t%s\n", job.ID(), job.Status())
			for outcome, count := range job.Counts() {
				fmt.Printf("  %s\t%d\n", outcome, count)
			}
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "targets",
		Short: "List the available execution targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService()
			if err != nil {
				return err
			}
			targets, err := service.Targets(cmd.Context())
			if err != nil {
				return err
			}
			for _, t := range targets {
				kind := "device"
				if t.Simulator {
					kind = "simulator"
				}
				fmt.Printf("%s\t%s\t%s\t%s qubits\n", t.Name, kind, t.Status, strconv.Itoa(t.NumQubits))
			}
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "tsp <city> <city> [city...]",
		Short: "Solve a traveling salesperson problem over the given cities",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService()
			if err != nil {
				return err
			}
			out, err := service.TSP(cmd.Context(), args)
			if err != nil {
				return err
			}
			for i, city := range out.Route {
				if i > 0 {
					fmt.Print(" -> ")
				}
				fmt.Print(city)
			}
			fmt.Printf("\ntotal distance: %.1f\n", out.TotalDistance)
			return nil
		},
	})

	if err := root.ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}
