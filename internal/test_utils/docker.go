package testutils

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"github.com/algosender/algosender/internal/dbconn"
)

const (
	DBName     = "algosender_test"
	DBUsername = "algouser"
	DBPassword = "algopass"
)

// RunPostgresql starts a throwaway postgres container bound to port and waits until it accepts
// connections.
func RunPostgresql(pool *dockertest.Pool, port string) (*dockertest.Resource, dbconn.DBConnectionParams, error) {
	opts := dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15.4",
		Env: []string{
			fmt.Sprintf("POSTGRES_PASSWORD=%s", DBPassword),
			fmt.Sprintf("POSTGRES_USER=%s", DBUsername),
			fmt.Sprintf("POSTGRES_DB=%s", DBName),
			"listen_addresses = '*'",
		},
		ExposedPorts: []string{"5432"},
		PortBindings: map[docker.Port][]docker.PortBinding{
			"5432": {
				{HostIP: "0.0.0.0", HostPort: port},
			},
		},
	}

	resource, err := pool.RunWithOptions(&opts, func(config *docker.HostConfig) {
		// set AutoRemove to true so that stopped container goes away by itself
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
		config.Tmpfs = map[string]string{
			"/var/lib/postgresql/data": "",
		}
	})
	if err != nil {
		return nil, dbconn.DBConnectionParams{}, fmt.Errorf("failed to create resource: %v", err)
	}

	hostPort, err := strconv.Atoi(resource.GetPort("5432/tcp"))
	if err != nil {
		_ = pool.Purge(resource)
		return nil, dbconn.DBConnectionParams{}, fmt.Errorf("failed to parse port: %v", err)
	}

	params := dbconn.NewParams("localhost", hostPort, DBUsername, DBPassword, DBName, "disable")

	err = Retry(func() error {
		db, err := sql.Open("postgres", params.String())
		if err != nil {
			return err
		}
		defer db.Close()

		return db.Ping()
	})
	if err != nil {
		_ = pool.Purge(resource)
		return nil, dbconn.DBConnectionParams{}, fmt.Errorf("failed to connect to docker: %v", err)
	}

	return resource, params, nil
}

func RunNats(pool *dockertest.Pool, port, name string, cmds ...string) (*dockertest.Resource, string, error) {
	opts := dockertest.RunOptions{
		Repository:   "nats",
		Tag:          "2.10.10",
		ExposedPorts: []string{"4222"},
		PortBindings: map[docker.Port][]docker.PortBinding{
			"4222": {
				{HostIP: "0.0.0.0", HostPort: port},
			},
		},
		Name: name,
		Cmd:  cmds,
	}
	resource, err := pool.RunWithOptions(&opts, func(config *docker.HostConfig) {
		// set AutoRemove to true so that stopped container goes away by itself
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create resource: %v", err)
	}

	hostPort := resource.GetPort("4222/tcp")
	natsURL := fmt.Sprintf("nats://localhost:%s", hostPort)

	return resource, natsURL, nil
}

func RunRedis(pool *dockertest.Pool, port, name string, cmds ...string) (*dockertest.Resource, string, error) {
	opts := dockertest.RunOptions{
		Repository:   "redis",
		Tag:          "7.4.1",
		ExposedPorts: []string{"6379"},
		PortBindings: map[docker.Port][]docker.PortBinding{
			"6379": {
				{HostIP: "0.0.0.0", HostPort: port},
			},
		},
		Name: name,
		Cmd:  cmds,
	}
	resource, err := pool.RunWithOptions(&opts, func(config *docker.HostConfig) {
		// set AutoRemove to true so that stopped container goes away by itself
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create resource: %v", err)
	}

	hostPort := resource.GetPort("6379/tcp")
	redisAddr := fmt.Sprintf("localhost:%s", hostPort)

	return resource, redisAddr, nil
}
