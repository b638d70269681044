package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialSession(t *testing.T, baseURL, levelID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(baseURL, "http") + "/api/levels/" + levelID + "/map/session"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func seriesCount(vec *prometheus.CounterVec) int {
	ch := make(chan prometheus.Metric, 64)
	vec.Collect(ch)
	close(ch)
	return len(ch)
}

func roundTrip(t *testing.T, conn *websocket.Conn, ev sessionEvent) sessionReply {
	t.Helper()
	require.NoError(t, conn.WriteJSON(ev))
	var reply sessionReply
	require.NoError(t, conn.ReadJSON(&reply))
	return reply
}

func TestSession_ConnectAndSave(t *testing.T) {
	ts := newTestServer(t)
	conn := dialSession(t, ts.URL, "l1")

	var hello sessionReply
	require.NoError(t, conn.ReadJSON(&hello))
	require.Equal(t, replyState, hello.Type)
	assert.Len(t, hello.State.Connections, 2)
	assert.False(t, hello.State.Dirty)

	// mi1 sits at (50,50); mi3 at (450,50).
	reply := roundTrip(t, conn, sessionEvent{Type: eventDown, Button: buttonSecondary, X: 60, Y: 60})
	assert.Equal(t, "connecting", reply.State.Interaction)
	reply = roundTrip(t, conn, sessionEvent{Type: eventUp, X: 500, Y: 90})
	assert.Equal(t, "idle", reply.State.Interaction)
	require.Len(t, reply.State.Connections, 3)
	added := reply.State.Connections[2]
	assert.Equal(t, "mi1", added.SourceID)
	assert.Equal(t, "mi3", added.TargetID)
	assert.True(t, reply.State.Dirty)

	reply = roundTrip(t, conn, sessionEvent{Type: eventSave})
	require.Equal(t, replySaved, reply.Type, reply.Error)
	assert.False(t, reply.Superseded)
	assert.False(t, reply.State.Dirty)
	require.NotNil(t, reply.Level)
	assert.Equal(t, "l1", reply.Level.ID)

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/api/levels/l1/map", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), added.ID)
}

func TestSession_DragAndDeleteConnection(t *testing.T) {
	ts := newTestServer(t)
	conn := dialSession(t, ts.URL, "l1")
	var hello sessionReply
	require.NoError(t, conn.ReadJSON(&hello))

	reply := roundTrip(t, conn, sessionEvent{Type: eventDown, Button: buttonPrimary, X: 60, Y: 60})
	assert.Equal(t, "dragging", reply.State.Interaction)
	roundTrip(t, conn, sessionEvent{Type: eventMove, X: 0, Y: 300})
	reply = roundTrip(t, conn, sessionEvent{Type: eventLeave})
	assert.Equal(t, "idle", reply.State.Interaction)

	var moved bool
	for _, n := range reply.State.Nodes {
		if n.ID == "mi1" {
			moved = true
			assert.Equal(t, 0.0, n.X)
			assert.Equal(t, 290.0, n.Y)
		}
	}
	assert.True(t, moved)

	reply = roundTrip(t, conn, sessionEvent{Type: eventDelete, ID: "c2"})
	require.Len(t, reply.State.Connections, 1)
	assert.Equal(t, "c1", reply.State.Connections[0].ID)

	reply = roundTrip(t, conn, sessionEvent{Type: "teleport"})
	assert.Equal(t, replyError, reply.Type)
}

func TestSession_UnknownLevel(t *testing.T) {
	ts := newTestServer(t)
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/levels/ghost/map/session"

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSession_RegenerateOnEmptyLevel(t *testing.T) {
	ts := newTestServer(t)
	conn := dialSession(t, ts.URL, "l2")
	var hello sessionReply
	require.NoError(t, conn.ReadJSON(&hello))
	assert.True(t, hello.State.Generated)

	reply := roundTrip(t, conn, sessionEvent{Type: eventRegenerate})
	assert.Empty(t, reply.State.Nodes)

	reply = roundTrip(t, conn, sessionEvent{Type: eventSave})
	assert.Equal(t, replySaved, reply.Type)
	assert.False(t, reply.State.Generated)
}

func TestSession_UnknownEventTypesShareOneMetricSeries(t *testing.T) {
	ts := newTestServer(t)
	conn := dialSession(t, ts.URL, "l1")
	var hello sessionReply
	require.NoError(t, conn.ReadJSON(&hello))

	unknown := EditorEventsTotal.WithLabelValues(eventUnknown)
	before := counterValue(t, unknown)
	series := seriesCount(EditorEventsTotal)

	for _, typ := range []string{"teleport", "zoom-1", "zoom-2"} {
		reply := roundTrip(t, conn, sessionEvent{Type: typ})
		assert.Equal(t, replyError, reply.Type)
	}
	roundTrip(t, conn, sessionEvent{Type: eventLeave})

	assert.Equal(t, before+3, counterValue(t, unknown))
	assert.LessOrEqual(t, seriesCount(EditorEventsTotal), series+1,
		"only the leave series may be new")
}

func TestEventLabel(t *testing.T) {
	assert.Equal(t, eventSave, eventLabel(eventSave))
	assert.Equal(t, eventUnknown, eventLabel("teleport"))
	assert.Equal(t, eventUnknown, eventLabel(""))
}
