package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/facilitydesk/facility-api/internal/access"
	"github.com/facilitydesk/facility-api/internal/errors"
	"github.com/facilitydesk/facility-api/internal/facility"
	v1alpha1 "github.com/facilitydesk/facility-api/internal/handlers/api/v1alpha1"
	"github.com/facilitydesk/facility-api/internal/loader"
	"github.com/facilitydesk/facility-api/internal/orchestrators/movement"
	"github.com/facilitydesk/facility-api/internal/orchestrators/routing"
	"github.com/facilitydesk/facility-api/internal/orchestrators/tracing"
	"github.com/facilitydesk/facility-api/internal/pkg/clock"
	"github.com/facilitydesk/facility-api/internal/pkg/idgen"
	redisclient "github.com/facilitydesk/facility-api/internal/redis"
	"github.com/facilitydesk/facility-api/internal/repositories/events"
)

var (
	httpPort     int
	roomsFile    string
	edgesFile    string
	peopleFile   string
	eventsFile   string
	redisAddr    string
	strictReplay bool
	originRoomID int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Load the facility map and people from JSON files and serve the facility API.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&httpPort, "port", 8080, "HTTP server port")
	serverCmd.Flags().StringVar(&roomsFile, "rooms", "data/rooms.json", "rooms JSON file")
	serverCmd.Flags().StringVar(&edgesFile, "edges", "data/edges.json", "edges JSON file")
	serverCmd.Flags().StringVar(&peopleFile, "people", "data/people.json", "people JSON file")
	serverCmd.Flags().StringVar(&eventsFile, "events", "", "optional events JSON file to replay at startup")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "", "redis address for event storage (in-memory when unset)")
	serverCmd.Flags().BoolVar(&strictReplay, "strict-replay", false, "reject replayed events the way live moves are rejected")
	serverCmd.Flags().IntVar(&originRoomID, "origin-room", facility.DefaultOriginRoomID, "room people start in before their first event")
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	handler, err := buildHandler(ctx)
	if err != nil {
		return err
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	handler.RegisterRoutes(engine)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", httpPort),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", httpPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down HTTP server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown failed, closing", "error", err)
			return srv.Close()
		}
		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

func buildHandler(ctx context.Context) (*v1alpha1.Handler, error) {
	g, err := loader.LoadGraph(roomsFile, edgesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load facility map: %w", err)
	}
	slog.Info("facility map loaded", "rooms", g.Order(), "edges", len(g.Edges()))

	eventRepo, err := buildEventRepo()
	if err != nil {
		return nil, err
	}

	fac, err := facility.New(&facility.Config{
		Graph:        g,
		EventRepo:    eventRepo,
		OriginRoomID: originRoomID,
	})
	if err != nil {
		return nil, err
	}

	people, err := loader.LoadPeople(peopleFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load people: %w", err)
	}
	for _, person := range people {
		if err := fac.AddPerson(person); err != nil {
			return nil, err
		}
	}
	slog.Info("people loaded", "count", len(people))

	policy, err := access.NewPolicy(g)
	if err != nil {
		return nil, err
	}

	movementSvc, err := movement.NewOrchestrator(&movement.Config{
		Facility:    fac,
		Policy:      policy,
		EventRepo:   eventRepo,
		Clock:       clock.New(),
		IDGenerator: idgen.NewUUID("evt"),
	})
	if err != nil {
		return nil, err
	}

	if eventsFile != "" {
		out, err := loader.ReplayEvents(ctx, eventsFile, movementSvc, strictReplay)
		if err != nil {
			return nil, fmt.Errorf("failed to replay events: %w", err)
		}
		slog.Info("events replayed", "applied", out.Applied, "skipped", out.Skipped)
	}

	tracingSvc, err := tracing.NewOrchestrator(&tracing.Config{
		Facility:  fac,
		EventRepo: eventRepo,
	})
	if err != nil {
		return nil, err
	}

	routingSvc, err := routing.NewOrchestrator(&routing.Config{Graph: g})
	if err != nil {
		return nil, err
	}

	return v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		Facility: fac,
		Policy:   policy,
		Movement: movementSvc,
		Tracing:  tracingSvc,
		Routing:  routingSvc,
	})
}

func buildEventRepo() (events.Repository, error) {
	if redisAddr == "" {
		slog.Info("using in-memory event store")
		return events.NewInMemory(), nil
	}

	client, err := redisclient.NewClient(redisAddr, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create redis client")
	}
	slog.Info("using redis event store", "addr", redisAddr)
	return events.NewRedisRepository(&events.Config{Client: client})
}
