package main

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// ResultServer pushes run results to websocket clients, so the sweep
// table can be visualised live in a browser. Each connected client
// receives the result of a fresh run on connect and whenever it sends
// a "run" message.
type ResultServer struct {
	addr     string
	upgrader websocket.Upgrader
	runner   func() (*RunResult, error)
}

func NewResultServer(addr string, runner func() (*RunResult, error)) *ResultServer {
	return &ResultServer{
		addr: addr,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		runner: runner,
	}
}

// serveWs handles websocket requests from the peer.
func (self *ResultServer) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := self.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warnf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	if err := self.push_run(conn); err != nil {
		log.Warnf("push to client failed: %v", err)
		return
	}

	var msg struct {
		Action string `json:"action"`
	}
	for {
		if err := conn.ReadJSON(&msg); err != nil {
			log.Infof("client disconnected: %v", err)
			return
		}
		if msg.Action == "run" {
			if err := self.push_run(conn); err != nil {
				log.Warnf("push to client failed: %v", err)
				return
			}
		}
	}
}

// push_run executes one run and writes its result to the client. A
// failed run is reported to the client instead of dropping the
// connection.
func (self *ResultServer) push_run(conn *websocket.Conn) error {
	res, err := self.runner()
	if err != nil {
		return conn.WriteJSON(map[string]string{"error": err.Error()})
	}
	return conn.WriteJSON(res)
}

func (self *ResultServer) Serve() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", self.serveWs)

	log.Infof("serving sweep results on ws://%s/ws", self.addr)
	return http.ListenAndServe(self.addr, mux)
}
