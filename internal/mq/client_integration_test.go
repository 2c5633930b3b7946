package mq_test

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/require"

	"github.com/algosender/algosender/internal/mq"
	testutils "github.com/algosender/algosender/internal/test_utils"
)

var natsURL string

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	os.Exit(testmain(m))
}

func testmain(m *testing.M) int {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Printf("failed to create pool: %v", err)
		return 1
	}

	resource, url, err := testutils.RunNats(pool, "4336", "")
	if err != nil {
		log.Print(err)
		return 1
	}
	defer func() {
		err = pool.Purge(resource)
		if err != nil {
			log.Printf("failed to purge pool: %v", err)
		}
	}()

	natsURL = url

	return m.Run()
}

func TestClient_PublishIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	// given
	logger := slog.Default()

	nc, err := mq.NewConnection(natsURL, logger)
	require.NoError(t, err)
	require.Eventually(t, nc.IsConnected, 10*time.Second, 100*time.Millisecond)

	var subscriber *nats.Conn
	err = testutils.Retry(func() error {
		var connErr error
		subscriber, connErr = nats.Connect(natsURL)
		return connErr
	})
	require.NoError(t, err)
	defer subscriber.Close()

	received := make(chan []byte, 1)
	_, err = subscriber.Subscribe("algosender.status", func(msg *nats.Msg) {
		received <- msg.Data
	})
	require.NoError(t, err)
	require.NoError(t, subscriber.Flush())

	sut := mq.New(nc, logger)
	defer sut.Shutdown()

	// when
	err = sut.Publish(context.Background(), "algosender.status", []byte(`{"txId":"TX1","status":"confirmed"}`))
	require.NoError(t, err)

	// then
	select {
	case data := <-received:
		require.JSONEq(t, `{"txId":"TX1","status":"confirmed"}`, string(data))
	case <-time.After(5 * time.Second):
		t.Fatal("status event not received")
	}
}
