package wire

import (
	"bufio"
	"encoding/json"
	"io"
	"net"
)

// Server listens on a Varlink-style address and dispatches every request it
// receives to a Service, making the local Registry reachable by another
// vsh process's `varlink` builtin.
type Server struct {
	ln  net.Listener
	svc *Service
}

// Listen binds address ("unix:/path" or "tcp:host:port") and returns a
// Server ready to Serve.
func Listen(address string, svc *Service) (*Server, error) {
	ln, err := listen(address)
	if err != nil {
		return nil, err
	}
	return &Server{ln: ln, svc: svc}, nil
}

// Addr returns the bound network address.
func (s *Server) Addr() net.Addr {
	return s.ln.Addr()
}

// Close stops accepting new connections.
func (s *Server) Close() error {
	return s.ln.Close()
}

// Serve accepts connections until the listener is closed, handling each
// one synchronously in its own goroutine (spec.md's concurrency model binds
// only pipeline-stage execution to a single thread; nothing forbids the
// transport from serving multiple peers concurrently).
func (s *Server) Serve() error {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return err
		}
		go s.handleConn(conn)
	}
}

func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()
	reader := bufio.NewReader(conn)
	for {
		line, err := reader.ReadBytes(0)
		if err != nil {
			if err != io.EOF {
				return
			}
			return
		}
		line = line[:len(line)-1]

		replies := s.svc.Handle(line)
		for _, r := range replies {
			body, err := json.Marshal(r)
			if err != nil {
				return
			}
			if _, err := conn.Write(append(body, 0)); err != nil {
				return
			}
		}
	}
}
