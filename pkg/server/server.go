package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/haulage-game/haulage/pkg/console"
	"github.com/haulage-game/haulage/pkg/events"
	"github.com/haulage-game/haulage/pkg/savegame"
	"github.com/haulage-game/haulage/pkg/world"
)

// Server is the TCP console server. Each connection gets a Session; all
// sessions share one World and one Console, with command execution
// serialized through runMu.
type Server struct {
	Config  Config
	World   *world.World
	Console *console.Console
	Bus     *events.Bus
	Metrics *Metrics
	Saves   *savegame.Store
	CmdLog  *CmdLog

	runMu    sync.Mutex
	listener net.Listener
	web      *WebServer

	sessMu   sync.Mutex
	sessions map[string]*Session
}

// NewServer wires a server over the given world.
func NewServer(w *world.World, cfg Config) *Server {
	bus := events.NewBus()
	con := console.New(w, bus)
	return &Server{
		Config:   cfg,
		World:    w,
		Console:  con,
		Bus:      bus,
		sessions: make(map[string]*Session),
	}
}

// Start opens the stores and begins listening. It blocks until the
// context is cancelled or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	if s.Config.SavePath != "" {
		saves, err := savegame.Open(s.Config.SavePath)
		if err != nil {
			return err
		}
		s.Saves = saves
		s.Console.Saver = saves
		defer saves.Close()
	}

	if s.Config.CmdLogPath != "" {
		cl, err := OpenCmdLog(s.Config.CmdLogPath)
		if err != nil {
			return err
		}
		s.CmdLog = cl
		s.Console.Hist = cl
		cl.StartRetentionCleanup(ctx, time.Duration(s.Config.CmdLogRetain)*24*time.Hour)
		defer cl.Close()
	}

	if s.Config.AliasFile != "" {
		if err := s.Console.LoadAliasFile(s.Config.AliasFile); err != nil {
			log.Printf("alias file: %v", err)
		}
		if s.Config.WatchAliasFile {
			if err := s.watchAliasFile(ctx, s.Config.AliasFile); err != nil {
				log.Printf("alias watcher: %v", err)
			}
		}
	}

	s.Metrics = NewMetrics(s.World, time.Now())
	s.Bus.SubscribeGlobal(s.Metrics)

	if s.Config.WebEnabled {
		s.web = NewWebServer(s)
		go func() {
			if err := s.web.Start(); err != nil {
				log.Printf("web server: %v", err)
			}
		}()
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.Config.Port))
	if err != nil {
		return fmt.Errorf("listener: %w", err)
	}
	s.listener = ln
	log.Printf("Listening on port %d", s.Config.Port)

	go func() {
		<-ctx.Done()
		ln.Close()
		if s.web != nil {
			s.web.Stop()
		}
	}()

	s.acceptLoop(ctx, ln)
	return nil
}

func (s *Server) acceptLoop(ctx context.Context, ln net.Listener) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) || ctx.Err() != nil {
				return
			}
			log.Printf("accept: %v", err)
			continue
		}
		go s.handleConn(conn)
	}
}

func (s *Server) addSession(sess *Session, transport string) {
	s.sessMu.Lock()
	s.sessions[sess.ID] = sess
	s.sessMu.Unlock()
	s.Bus.Subscribe(sess.ID, sess)
	if s.Metrics != nil {
		s.Metrics.sessionsConnected.WithLabelValues(transport).Inc()
		s.Metrics.connectionsTotal.WithLabelValues(transport).Inc()
	}
}

func (s *Server) removeSession(sess *Session, transport string) {
	s.Bus.Unsubscribe(sess.ID, sess)
	s.sessMu.Lock()
	delete(s.sessions, sess.ID)
	s.sessMu.Unlock()
	if s.Metrics != nil {
		s.Metrics.sessionsConnected.WithLabelValues(transport).Dec()
	}
}

// SessionCount returns the number of live sessions.
func (s *Server) SessionCount() int {
	s.sessMu.Lock()
	defer s.sessMu.Unlock()
	return len(s.sessions)
}

// RunLine executes one console line for a session. All sessions funnel
// through here so world mutation stays single-threaded.
func (s *Server) RunLine(sess *Session, line string) {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	sess.LastCmd = time.Now()
	sess.CmdCount++
	s.Console.Run(sess.ID, sess, line)
}

func (s *Server) handleConn(conn net.Conn) {
	sess := NewSession(conn)
	s.addSession(sess, "tcp")
	defer func() {
		s.removeSession(sess, "tcp")
		sess.Close()
		log.Printf("session %s from %s closed (%d commands)", sess.ID, sess.Addr, sess.CmdCount)
	}()

	log.Printf("session %s connected from %s", sess.ID, sess.Addr)
	greeting := fmt.Sprintf("%s console. Type 'help' for help, 'exit' to leave.", s.Config.ServerName)
	if s.World.Paused() {
		greeting += " (game is paused)"
	}
	sess.Send(greeting)

	for {
		line, err := sess.Reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimRight(line, "\r\n")
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "exit", "quit":
			sess.Send("Goodbye.")
			return
		}
		s.RunLine(sess, line)
	}
}
