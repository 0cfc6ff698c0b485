package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/beka-birhanu/vinom-jumpmaze/api"
	api_i "github.com/beka-birhanu/vinom-jumpmaze/api/i"
	"github.com/beka-birhanu/vinom-jumpmaze/api/identity"
	mazeapi "github.com/beka-birhanu/vinom-jumpmaze/api/maze"
	"github.com/beka-birhanu/vinom-jumpmaze/config"
	"github.com/beka-birhanu/vinom-jumpmaze/infrastruture/logger"
	"github.com/beka-birhanu/vinom-jumpmaze/infrastruture/repo"
	"github.com/beka-birhanu/vinom-jumpmaze/infrastruture/sortedstorage"
	"github.com/beka-birhanu/vinom-jumpmaze/infrastruture/token"
	"github.com/beka-birhanu/vinom-jumpmaze/service"
	"github.com/beka-birhanu/vinom-jumpmaze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	connectTimeout = 10 * time.Second
	mazeCollection = "mazes"
)

// runServe starts the HTTP API backed by MongoDB and, when reachable, the Redis batch queue.
func runServe(out io.Writer, args []string) error {
	cfg := config.Envs

	flagSet := flag.NewFlagSet("serve", flag.ContinueOnError)
	flagSet.SetOutput(out)
	addr := flagSet.String("addr", fmt.Sprintf("%s:%d", cfg.HostIP, cfg.RESTPort), "Address to listen on.")
	secret := flagSet.String("jwt-secret", cfg.JWTSecret, "Signing secret (defaults to JWT_SECRET).")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &ExitError{Code: 2, Message: err.Error()}
	}

	cfg.JWTSecret = *secret
	if err := cfg.ValidateServer(); err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	appLogger, err := logger.New("APP", config.ColorGreen, out)
	if err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	mongoClient, err := initMongo(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()
	appLogger.Info("Connected to MongoDB")

	mazeRepo := repo.NewMazeRepo(mongoClient, cfg.DBName, mazeCollection)

	solverLogger, err := logger.New("SOLVER", config.ColorCyan, out)
	if err != nil {
		return err
	}
	solver, err := service.NewSolver(solverLogger)
	if err != nil {
		return err
	}
	appLogger.Info("Solver initialized")

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer redisClient.Close()

	batch, err := initBatchSolver(ctx, cfg, redisClient, mazeRepo, solver, out)
	if err != nil {
		appLogger.Warning(fmt.Sprintf("Batch solving disabled: %v", err))
	} else {
		appLogger.Info("Batch solver initialized")
	}

	controller, err := mazeapi.NewController(solver, mazeRepo, batch, appLogger)
	if err != nil {
		return err
	}

	tokenizer := token.NewJwtService(cfg.JWTSecret, cfg.JWTIssuer)
	router := api.NewRouter(api.Config{
		Addr:                    *addr,
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{controller},
		AuthorizationMiddleware: identity.Authoriz(tokenizer),
	})
	appLogger.Info(fmt.Sprintf("Listening on %s", *addr))

	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		return err
	}
	return nil
}

func initMongo(ctx context.Context, cfg config.Config) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("connecting to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("MongoDB ping failed: %w", err)
	}
	return client, nil
}

// initBatchSolver returns a nil submitter together with the error when Redis is unusable.
func initBatchSolver(ctx context.Context, cfg config.Config, client *redis.Client, mazeRepo i.MazeRepo, solver i.MazeSolver, out io.Writer) (i.BatchSubmitter, error) {
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	queue, err := sortedstorage.NewRedisSortedQueue(client, cfg.QueueTTLSeconds)
	if err != nil {
		return nil, err
	}

	batchLogger, err := logger.New("BATCH", config.ColorMagenta, out)
	if err != nil {
		return nil, err
	}

	bs, err := service.NewBatchSolver(queue, mazeRepo, solver, batchLogger, &service.BatchOptions{
		Prefix:    cfg.QueuePrefix,
		BatchSize: int64(cfg.BatchSize),
	})
	if err != nil {
		return nil, err
	}

	bs.SetBatchHandler(func(reports []i.Report) {
		for _, r := range reports {
			batchLogger.Info(fmt.Sprintf("Maze %s: dfs=%s uniform_cost=%s", r.ID, r.DFS, r.UniformCost))
		}
	})
	return bs, nil
}
