package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	expireSeconds   = 120
	maxWaitDuration = 120 * time.Second
)

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// container is one throwaway docker resource, purged when the test ends.
type container struct {
	pool     *dockertest.Pool
	resource *dockertest.Resource
}

func testContext(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(cancel)

	return ctx
}

func startContainer(t *testing.T, options *dockertest.RunOptions) *container {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("could not connect to docker: %v", err)
	}

	resource, err := pool.RunWithOptions(options, func(config *docker.HostConfig) {
		// stopped containers remove themselves
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not start resource: %v", err)
	}

	// hard kill even if cleanup never runs
	_ = resource.Expire(expireSeconds)

	pool.MaxWait = maxWaitDuration

	c := &container{pool: pool, resource: resource}
	t.Cleanup(c.purge(t))

	return c
}

func (that *container) hostPort(port string) string {
	return that.resource.GetHostPort(port)
}

// await retries connect with backoff until the service inside the container answers.
func (that *container) await(t *testing.T, service string, connect func() error) {
	t.Helper()

	if err := that.pool.Retry(connect); err != nil {
		t.Fatalf("could not connect to %s: %v", service, err)
	}
}

func (that *container) purge(t *testing.T) func() {
	return func() {
		t.Helper()

		if err := that.pool.Purge(that.resource); err != nil {
			t.Errorf("could not purge resource: %v", err)
		}
	}
}
