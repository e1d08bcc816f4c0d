// Package superstaq provides a Go client for the SuperstaQ quantum
// computing API.
//
// A Service is constructed from an API key and remote host, either passed
// explicitly or picked up from the SUPERSTAQ_API_KEY and
// SUPERSTAQ_REMOTE_HOST environment variables:
//
//	service, err := superstaq.NewService(superstaq.WithAPIKey("key"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	q := superstaq.Qubit(0)
//	circuit := superstaq.NewCircuit(superstaq.H(q), superstaq.Measure(q, "m"))
//	counts, err := service.Run(ctx, circuit, 100, "simulator", "", nil)
//
// Besides circuit execution the service exposes the hosted optimization
// endpoints: QUBO solving, portfolio optimization and routing.
package superstaq
