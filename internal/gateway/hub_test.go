//go:build unit

package gateway_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shelfscan/internal/gateway"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type HubTestSuite struct {
	suite.Suite
	hub    *gateway.Hub
	server *httptest.Server
}

func (s *HubTestSuite) SetupTest() {
	s.hub = gateway.NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.server = httptest.NewServer(http.HandlerFunc(s.hub.ServeWS))
}

func (s *HubTestSuite) TearDownTest() {
	s.hub.Close()
	s.server.Close()
}

func TestHubSuite(t *testing.T) {
	suite.Run(t, new(HubTestSuite))
}

func (s *HubTestSuite) dial() *websocket.Conn {
	url := "ws" + strings.TrimPrefix(s.server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err)
	return conn
}

func (s *HubTestSuite) awaitClients(n int) {
	s.Require().Eventually(func() bool {
		return s.hub.ClientCount() == n
	}, time.Second, 5*time.Millisecond)
}

func readEnvelope(t *testing.T, conn *websocket.Conn) gateway.Envelope {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, frame, err := conn.ReadMessage()
	require.NoError(t, err)

	var env gateway.Envelope
	require.NoError(t, json.Unmarshal(frame, &env))
	return env
}

func (s *HubTestSuite) TestBroadcastReachesEveryClient() {
	first := s.dial()
	defer first.Close()
	second := s.dial()
	defer second.Close()
	s.awaitClients(2)

	s.hub.Broadcast("rfid/scanned", map[string]string{"uid": "04a1b2c3"})

	for _, conn := range []*websocket.Conn{first, second} {
		env := readEnvelope(s.T(), conn)
		s.Equal("rfid/scanned", env.Event)
		data, ok := env.Data.(map[string]any)
		s.Require().True(ok)
		s.Equal("04a1b2c3", data["uid"])
	}
}

func (s *HubTestSuite) TestDisconnectedClientIsRemoved() {
	conn := s.dial()
	s.awaitClients(1)

	conn.Close()
	s.awaitClients(0)
}

func (s *HubTestSuite) TestBroadcastWithNoClientsIsANoOp() {
	s.hub.Broadcast("rfid/scanned", nil)
	s.Equal(0, s.hub.ClientCount())
}

func (s *HubTestSuite) TestCloseRejectsNewConnections() {
	s.hub.Close()

	url := "ws" + strings.TrimPrefix(s.server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		// The upgrade may still succeed; the hub closes the socket
		// immediately so the first read must fail.
		defer conn.Close()
		require.NoError(s.T(), conn.SetReadDeadline(time.Now().Add(time.Second)))
		_, _, err = conn.ReadMessage()
		s.Error(err)
	}
	s.Equal(0, s.hub.ClientCount())
}
