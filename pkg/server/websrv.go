package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/crypto/bcrypt"
)

// WebServer provides HTTP transport alongside the TCP console server: a
// WebSocket console at /ws and Prometheus metrics at /metrics.
type WebServer struct {
	srv      *Server
	httpSrv  *http.Server
	mux      *http.ServeMux
	upgrader websocket.Upgrader
}

// NewWebServer creates a web server bound to the console server.
func NewWebServer(srv *Server) *WebServer {
	ws := &WebServer{
		srv: srv,
		mux: http.NewServeMux(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	ws.mux.HandleFunc("GET /ws", ws.handleWebSocket)
	ws.mux.Handle("GET /metrics", srv.Metrics.Handler())
	ws.httpSrv = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", srv.Config.WebHost, srv.Config.WebPort),
		Handler: ws.mux,
	}
	return ws
}

// Start begins serving HTTP. It blocks until Stop is called.
func (ws *WebServer) Start() error {
	log.Printf("Web server listening on %s", ws.httpSrv.Addr)
	err := ws.httpSrv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Stop shuts the HTTP server down.
func (ws *WebServer) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ws.httpSrv.Shutdown(ctx)
}

// authorized checks the client password against the configured bcrypt
// hash. An empty hash allows everyone.
func (ws *WebServer) authorized(r *http.Request) bool {
	hash := ws.srv.Config.WebPassword
	if hash == "" {
		return true
	}
	pass := r.URL.Query().Get("password")
	if pass == "" {
		_, pass, _ = r.BasicAuth()
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pass)) == nil
}

// handleWebSocket upgrades the connection and runs a console session over
// it, one text message per console line.
func (ws *WebServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if !ws.authorized(r) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	conn, err := ws.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade: %v", err)
		return
	}

	sess := NewSession(conn.NetConn())
	sess.Transport = TransportWebSocket
	sess.SendFunc = func(msg string) {
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
			conn.Close()
		}
	}
	ws.srv.addSession(sess, "websocket")
	defer func() {
		ws.srv.removeSession(sess, "websocket")
		sess.Close()
		conn.Close()
	}()

	sess.Send(fmt.Sprintf("%s console. Type 'help' for help.", ws.srv.Config.ServerName))
	for {
		mt, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if mt != websocket.TextMessage {
			continue
		}
		ws.srv.RunLine(sess, string(data))
	}
}
