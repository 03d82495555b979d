package redis

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/huynhanx03/go-reqbatch/pkg/settings"
)

const (
	redisImage = "redis:7"
	redisPort  = "6379/tcp"
)

func TestClient_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	if !isDockerRunning(ctx) {
		t.Skip("Docker is not running, skipping integration test")
	}

	host, port, terminate, err := setupRedisContainer(ctx)
	if err != nil {
		t.Fatalf("failed to setup redis container: %v", err)
	}
	defer terminate()

	engine, err := NewConnection(&settings.Redis{Host: host, Port: port})
	if err != nil {
		t.Fatalf("NewConnection() error = %v", err)
	}
	defer engine.Close()

	t.Run("Ping", func(t *testing.T) {
		if err := engine.Client().Ping(ctx).Err(); err != nil {
			t.Fatalf("Ping() error = %v", err)
		}
	})

	t.Run("SetGet", func(t *testing.T) {
		if err := engine.Client().Set(ctx, "k", "v", time.Minute).Err(); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		got, err := engine.Client().Get(ctx, "k").Result()
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got != "v" {
			t.Errorf("Get() = %q, want %q", got, "v")
		}
	})

	t.Run("Defaults", func(t *testing.T) {
		cfg := engine.config
		if cfg.PoolSize != defaultPoolSize {
			t.Errorf("PoolSize = %d, want default %d", cfg.PoolSize, defaultPoolSize)
		}
		if cfg.MaxRetries != defaultMaxRetries {
			t.Errorf("MaxRetries = %d, want default %d", cfg.MaxRetries, defaultMaxRetries)
		}
	})
}

func TestNewConnection_Unreachable(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping connection test in short mode")
	}

	cfg := &settings.Redis{Host: "127.0.0.1", Port: 1, DialTimeout: 1, MaxRetries: 1}
	_, err := NewConnection(cfg)
	if err == nil {
		t.Fatal("NewConnection() error = nil, want failure against closed port")
	}
	if !errors.Is(err, ErrConnectionFailed) {
		t.Errorf("error = %v, want ErrConnectionFailed", err)
	}
}

func setupRedisContainer(ctx context.Context) (string, int, func(), error) {
	req := testcontainers.ContainerRequest{
		Image:        redisImage,
		ExposedPorts: []string{redisPort},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(2 * time.Minute),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", 0, nil, fmt.Errorf("failed to start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		container.Terminate(ctx)
		return "", 0, nil, fmt.Errorf("failed to get host: %w", err)
	}
	mapped, err := container.MappedPort(ctx, redisPort)
	if err != nil {
		container.Terminate(ctx)
		return "", 0, nil, fmt.Errorf("failed to get port: %w", err)
	}
	port, _ := strconv.Atoi(mapped.Port())

	terminate := func() {
		if err := container.Terminate(ctx); err != nil {
			fmt.Printf("failed to terminate container: %v\n", err)
		}
	}

	return host, port, terminate, nil
}

func isDockerRunning(ctx context.Context) bool {
	cmd := exec.CommandContext(ctx, "docker", "info")
	if err := cmd.Run(); err != nil {
		return false
	}
	return true
}
